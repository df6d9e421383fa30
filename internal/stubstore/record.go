// Package stubstore is a local stand-in for the remote leave request store.
// It serves the store's wire protocol (plain JSON bodies, snake_case keys)
// against an in-memory repository, for development and client testing.
package stubstore

// Record is a stored leave request in the store's own wire shape. The stub
// keeps whatever category and status codes the writer sent; normalization
// is the client's job, as it is with the real store.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TypeOfLeave string `json:"type_of_leave"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"createdAt"`
}
