package domain

// LeaveRequestPatch carries the fields of a sparse update. A nil field is
// absent and must not be sent to the remote store; a non-nil field is sent
// even when it points at a zero value. This keeps "not provided" distinct
// from "set to empty".
type LeaveRequestPatch struct {
	EmployeeName *string
	LeaveType    *LeaveType
	StartDate    *string
	EndDate      *string
	Status       *LeaveStatus
	Reason       *string
}

// IsZero reports whether the patch carries no fields at all.
func (p LeaveRequestPatch) IsZero() bool {
	return p.EmployeeName == nil &&
		p.LeaveType == nil &&
		p.StartDate == nil &&
		p.EndDate == nil &&
		p.Status == nil &&
		p.Reason == nil
}

// StatusPatch is the convenience patch used by status transitions.
func StatusPatch(status LeaveStatus) LeaveRequestPatch {
	return LeaveRequestPatch{Status: &status}
}
