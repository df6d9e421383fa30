// Package query holds the pure collection helpers used to derive the
// dashboard projection. Nothing here performs I/O or mutates its inputs.
package query

import (
	"sort"
	"time"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
)

// Severity is the abstract display weight of a status, kept independent of
// any concrete UI toolkit.
type Severity string

const (
	SeverityPositive Severity = "Positive"
	SeverityNegative Severity = "Negative"
	SeverityWarning  Severity = "Warning"
)

// Filter returns the requests matching every populated predicate in opts.
// An empty FilterOptions matches everything. The input slice is never
// modified; the result is always a fresh slice.
func Filter(requests []domain.LeaveRequest, opts domain.FilterOptions) []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if opts.Status != nil && req.Status != *opts.Status {
			continue
		}
		out = append(out, req)
	}
	return out
}

// Sort returns a new slice ordered by the selected date field. The sort is
// stable; requests sharing the same date keep their input order. No
// secondary tie-break exists, so when the input order is itself unspecified
// the order of ties is unspecified too.
func Sort(requests []domain.LeaveRequest, opts domain.SortOptions) []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, len(requests))
	copy(out, requests)

	sort.SliceStable(out, func(i, j int) bool {
		a := sortKey(out[i], opts.Field)
		b := sortKey(out[j], opts.Field)
		if opts.Direction == domain.SortDescending {
			return a.After(b)
		}
		return a.Before(b)
	})
	return out
}

func sortKey(req domain.LeaveRequest, field domain.SortField) time.Time {
	value := req.DateRequested
	if field == domain.SortByStartDate {
		value = req.StartDate
	}
	// Unparseable dates compare as the zero time and gather at one end.
	t, _ := time.Parse(domain.DateLayout, value)
	return t
}

// FormatDateRange renders "start - end" for display. It is presentation
// only and plays no part in comparisons.
func FormatDateRange(startDate, endDate string) string {
	return displayDate(startDate) + " - " + displayDate(endDate)
}

func displayDate(value string) string {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return value
	}
	return t.Format("1/2/2006")
}

// StatusSeverity maps a status to its display severity. Anything
// unrecognized is treated like Pending.
func StatusSeverity(status domain.LeaveStatus) Severity {
	switch status {
	case domain.StatusApproved:
		return SeverityPositive
	case domain.StatusRejected:
		return SeverityNegative
	default:
		return SeverityWarning
	}
}
