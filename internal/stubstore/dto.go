package stubstore

// CreateRecordRequest validates POST bodies. The category list mirrors the
// upstream store's accepted codes, not the client's canonical enum.
type CreateRecordRequest struct {
	Name        string `json:"name" binding:"required"`
	TypeOfLeave string `json:"type_of_leave" binding:"required"`
	DateFrom    string `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo      string `json:"date_to" binding:"required,datetime=2006-01-02"`
	Status      string `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Reason      string `json:"reason"`
}

// UpdateRecordRequest carries a sparse update: only fields present in the
// body are applied, so nil means untouched.
type UpdateRecordRequest struct {
	Name        *string `json:"name" binding:"omitempty"`
	TypeOfLeave *string `json:"type_of_leave" binding:"omitempty"`
	DateFrom    *string `json:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo      *string `json:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Reason      *string `json:"reason"`
}
