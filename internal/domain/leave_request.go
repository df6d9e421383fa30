// Package domain holds the canonical leave request model shared by the
// remote adapter, the query utilities, and the dashboard store.
package domain

// DateLayout is the calendar-date format used everywhere in the canonical
// model. Dates carry no time or timezone component.
const DateLayout = "2006-01-02"

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusRejected LeaveStatus = "Rejected"
)

type LeaveType string

const (
	TypeVacation  LeaveType = "Vacation"
	TypeSick      LeaveType = "Sick"
	TypePersonal  LeaveType = "Personal"
	TypeMaternity LeaveType = "Maternity"
	TypePaternity LeaveType = "Paternity"
)

// LeaveRequest is one leave request in canonical form. The ID is opaque and
// immutable once assigned; it comes from the remote store except as a
// client-side last resort. StartDate, EndDate and DateRequested are
// calendar dates in DateLayout.
type LeaveRequest struct {
	ID            string      `json:"id"`
	EmployeeName  string      `json:"employeeName"`
	LeaveType     LeaveType   `json:"leaveType"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	Status        LeaveStatus `json:"status"`
	Reason        string      `json:"reason,omitempty"`
	DateRequested string      `json:"dateRequested"`
}

// LeaveRequestDraft is the create input: a leave request without an
// identifier. Status is forced to Pending by the dashboard store before the
// draft reaches the remote store.
type LeaveRequestDraft struct {
	EmployeeName  string
	LeaveType     LeaveType
	StartDate     string
	EndDate       string
	Status        LeaveStatus
	Reason        string
	DateRequested string
}

// IsTerminal reports whether the status permits no further transition.
// Pending may move to Approved or Rejected; those two are final.
func (s LeaveStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
