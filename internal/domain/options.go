package domain

// FilterOptions narrows a collection of leave requests. Nil fields mean the
// predicate is not applied, so the zero value matches everything.
type FilterOptions struct {
	Status *LeaveStatus
}

type SortField string

const (
	SortByDateRequested SortField = "dateRequested"
	SortByStartDate     SortField = "startDate"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions is the dashboard's initial ordering: most recently
// requested first.
func DefaultSortOptions() SortOptions {
	return SortOptions{Field: SortByDateRequested, Direction: SortDescending}
}
