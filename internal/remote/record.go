package remote

import (
	"strings"
	"time"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	"github.com/google/uuid"
)

// record is the remote store's wire shape. The store is loosely typed:
// field names vary between the snake_case API keys and already-canonical
// camelCase leftovers, so every field carries its known aliases and the
// mapping code picks the first one present.
type record struct {
	ID string `json:"id"`

	Name         string `json:"name"`
	EmployeeName string `json:"employeeName"`

	TypeOfLeave string `json:"type_of_leave"`
	LeaveType   string `json:"leaveType"`

	DateFrom  string `json:"date_from"`
	StartDate string `json:"startDate"`

	DateTo  string `json:"date_to"`
	EndDate string `json:"endDate"`

	Status string `json:"status"`
	Reason string `json:"reason"`

	CreatedAt        string `json:"createdAt"`
	DateRequestedAlt string `json:"date_requested"`
	DateRequested    string `json:"dateRequested"`
}

// createPayload is the outgoing shape for POST /leave_requests.
type createPayload struct {
	Name        string `json:"name"`
	TypeOfLeave string `json:"type_of_leave"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// updatePayload is the sparse shape for PUT /leave_requests/{id}. Nil
// fields are omitted entirely so the store never overwrites what the caller
// did not provide.
type updatePayload struct {
	Name        *string `json:"name,omitempty"`
	TypeOfLeave *string `json:"type_of_leave,omitempty"`
	DateFrom    *string `json:"date_from,omitempty"`
	DateTo      *string `json:"date_to,omitempty"`
	Status      *string `json:"status,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

const unknownEmployee = "Unknown Employee"

func toDomain(rec record) domain.LeaveRequest {
	id := rec.ID
	if id == "" {
		// Last resort only; the store normally assigns identifiers.
		id = uuid.NewString()
	}

	name := strings.TrimSpace(firstNonEmpty(rec.Name, rec.EmployeeName))
	if name == "" {
		name = unknownEmployee
	}

	return domain.LeaveRequest{
		ID:            id,
		EmployeeName:  name,
		LeaveType:     mapLeaveType(firstNonEmpty(rec.TypeOfLeave, rec.LeaveType)),
		StartDate:     normalizeDate(firstNonEmpty(rec.DateFrom, rec.StartDate)),
		EndDate:       normalizeDate(firstNonEmpty(rec.DateTo, rec.EndDate)),
		Status:        mapStatus(rec.Status),
		Reason:        rec.Reason,
		DateRequested: normalizeDate(firstNonEmpty(rec.CreatedAt, rec.DateRequestedAlt, rec.DateRequested)),
	}
}

func toDomainList(recs []record) []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out
}

func toCreatePayload(draft domain.LeaveRequestDraft) createPayload {
	return createPayload{
		Name:        draft.EmployeeName,
		TypeOfLeave: toAPILeaveType(draft.LeaveType),
		DateFrom:    draft.StartDate,
		DateTo:      draft.EndDate,
		Status:      toAPIStatus(draft.Status),
		Reason:      draft.Reason,
	}
}

func toUpdatePayload(patch domain.LeaveRequestPatch) updatePayload {
	var out updatePayload
	if patch.EmployeeName != nil {
		out.Name = patch.EmployeeName
	}
	if patch.LeaveType != nil {
		v := toAPILeaveType(*patch.LeaveType)
		out.TypeOfLeave = &v
	}
	if patch.StartDate != nil {
		out.DateFrom = patch.StartDate
	}
	if patch.EndDate != nil {
		out.DateTo = patch.EndDate
	}
	if patch.Status != nil {
		v := toAPIStatus(*patch.Status)
		out.Status = &v
	}
	if patch.Reason != nil {
		out.Reason = patch.Reason
	}
	return out
}

// leaveTypeMap covers the store's category codes plus the lowercase legacy
// set written by an earlier client. Several store categories have no
// canonical counterpart and fold into Personal; PARENTAL always reads back
// as Maternity because the write side collapses both parental types onto it.
var leaveTypeMap = map[string]domain.LeaveType{
	"VACATION":    domain.TypeVacation,
	"SICK":        domain.TypeSick,
	"PERSONAL":    domain.TypePersonal,
	"BEREAVEMENT": domain.TypePersonal,
	"REMOTE":      domain.TypePersonal,
	"PARENTAL":    domain.TypeMaternity,
	"UNPAID":      domain.TypePersonal,
	"MILITARY":    domain.TypePersonal,
	"STUDY":       domain.TypePersonal,
	"EMERGENCY":   domain.TypePersonal,

	// Legacy values (lowercase)
	"vacation":  domain.TypeVacation,
	"sick":      domain.TypeSick,
	"personal":  domain.TypePersonal,
	"maternity": domain.TypeMaternity,
	"paternity": domain.TypePaternity,
}

func mapLeaveType(value string) domain.LeaveType {
	if t, ok := leaveTypeMap[value]; ok {
		return t
	}
	// Unrecognized categories deliberately default to Vacation. Existing
	// data depends on this, so do not change it here.
	return domain.TypeVacation
}

func mapStatus(value string) domain.LeaveStatus {
	switch strings.ToLower(value) {
	case "approved":
		return domain.StatusApproved
	case "rejected":
		return domain.StatusRejected
	case "pending":
		return domain.StatusPending
	default:
		return domain.StatusPending
	}
}

// toAPILeaveType collapses Maternity and Paternity into the store's single
// PARENTAL code. The collapse is lossy on purpose: the store predates the
// split and its data must keep round-tripping the same way.
func toAPILeaveType(t domain.LeaveType) string {
	switch t {
	case domain.TypeVacation:
		return "VACATION"
	case domain.TypeSick:
		return "SICK"
	case domain.TypePersonal:
		return "PERSONAL"
	case domain.TypeMaternity, domain.TypePaternity:
		return "PARENTAL"
	default:
		return "VACATION"
	}
}

func toAPIStatus(s domain.LeaveStatus) string {
	switch s {
	case domain.StatusApproved:
		return "APPROVED"
	case domain.StatusRejected:
		return "REJECTED"
	default:
		return "PENDING"
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	domain.DateLayout,
}

// normalizeDate collapses any timestamp or date string to the calendar date
// of its own UTC moment, so a record stamped near midnight UTC never shifts
// a day when viewed from another zone. Missing or unparseable input
// normalizes to today's UTC date rather than failing the record.
func normalizeDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(domain.DateLayout)
		}
	}
	return time.Now().UTC().Format(domain.DateLayout)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
