package query_test

import (
	"testing"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/query"

	"github.com/stretchr/testify/assert"
)

func makeRequest(id string, status domain.LeaveStatus, startDate, dateRequested string) domain.LeaveRequest {
	return domain.LeaveRequest{
		ID:            id,
		EmployeeName:  "Employee " + id,
		LeaveType:     domain.TypeVacation,
		StartDate:     startDate,
		EndDate:       startDate,
		Status:        status,
		DateRequested: dateRequested,
	}
}

func ids(requests []domain.LeaveRequest) []string {
	out := make([]string, len(requests))
	for i, req := range requests {
		out[i] = req.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	requests := []domain.LeaveRequest{
		makeRequest("1", domain.StatusPending, "2025-04-10", "2025-04-06"),
		makeRequest("2", domain.StatusApproved, "2025-04-11", "2025-04-07"),
		makeRequest("3", domain.StatusPending, "2025-04-12", "2025-04-08"),
	}

	t.Run("no filter matches everything", func(t *testing.T) {
		out := query.Filter(requests, domain.FilterOptions{})
		assert.Equal(t, []string{"1", "2", "3"}, ids(out))
	})

	t.Run("status filter keeps exactly the matches", func(t *testing.T) {
		status := domain.StatusPending
		out := query.Filter(requests, domain.FilterOptions{Status: &status})
		assert.Equal(t, []string{"1", "3"}, ids(out))
		for _, req := range out {
			assert.Equal(t, domain.StatusPending, req.Status)
		}
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		status := domain.StatusRejected
		out := query.Filter(requests, domain.FilterOptions{Status: &status})
		assert.Empty(t, out)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		status := domain.StatusApproved
		before := make([]domain.LeaveRequest, len(requests))
		copy(before, requests)

		_ = query.Filter(requests, domain.FilterOptions{Status: &status})
		assert.Equal(t, before, requests)
	})
}

func TestSort(t *testing.T) {
	requests := []domain.LeaveRequest{
		makeRequest("b", domain.StatusPending, "2025-04-01", "2025-04-07"),
		makeRequest("a", domain.StatusPending, "2025-04-03", "2025-04-06"),
		makeRequest("c", domain.StatusPending, "2025-04-02", "2025-04-08"),
	}

	t.Run("ascending by date requested", func(t *testing.T) {
		out := query.Sort(requests, domain.SortOptions{
			Field:     domain.SortByDateRequested,
			Direction: domain.SortAscending,
		})
		assert.Equal(t, []string{"a", "b", "c"}, ids(out))
	})

	t.Run("descending by date requested is the exact reverse", func(t *testing.T) {
		out := query.Sort(requests, domain.SortOptions{
			Field:     domain.SortByDateRequested,
			Direction: domain.SortDescending,
		})
		assert.Equal(t, []string{"c", "b", "a"}, ids(out))
	})

	t.Run("ascending by start date", func(t *testing.T) {
		out := query.Sort(requests, domain.SortOptions{
			Field:     domain.SortByStartDate,
			Direction: domain.SortAscending,
		})
		assert.Equal(t, []string{"b", "c", "a"}, ids(out))
	})

	t.Run("length and id set are preserved", func(t *testing.T) {
		out := query.Sort(requests, domain.SortOptions{
			Field:     domain.SortByStartDate,
			Direction: domain.SortDescending,
		})
		assert.Len(t, out, len(requests))
		assert.ElementsMatch(t, ids(requests), ids(out))
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		ties := []domain.LeaveRequest{
			makeRequest("first", domain.StatusPending, "2025-04-01", "2025-04-06"),
			makeRequest("second", domain.StatusPending, "2025-04-01", "2025-04-06"),
			makeRequest("third", domain.StatusPending, "2025-04-01", "2025-04-06"),
		}
		out := query.Sort(ties, domain.SortOptions{
			Field:     domain.SortByDateRequested,
			Direction: domain.SortAscending,
		})
		assert.Equal(t, []string{"first", "second", "third"}, ids(out))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := make([]domain.LeaveRequest, len(requests))
		copy(before, requests)

		_ = query.Sort(requests, domain.SortOptions{
			Field:     domain.SortByDateRequested,
			Direction: domain.SortAscending,
		})
		assert.Equal(t, before, requests)
	})
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "4/9/2025 - 4/12/2025", query.FormatDateRange("2025-04-09", "2025-04-12"))

	// Unparseable input falls back to the raw value.
	assert.Equal(t, "not-a-date - 4/12/2025", query.FormatDateRange("not-a-date", "2025-04-12"))
}

func TestStatusSeverity(t *testing.T) {
	assert.Equal(t, query.SeverityPositive, query.StatusSeverity(domain.StatusApproved))
	assert.Equal(t, query.SeverityNegative, query.StatusSeverity(domain.StatusRejected))
	assert.Equal(t, query.SeverityWarning, query.StatusSeverity(domain.StatusPending))
	assert.Equal(t, query.SeverityWarning, query.StatusSeverity(domain.LeaveStatus("weird")))
}
