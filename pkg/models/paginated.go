package models

// PaginatedResponse is the envelope the API wraps around offset-paginated
// collections. Total and HasMore are pointers because the API omits them on
// some endpoints.
type PaginatedResponse[T any] struct {
	Data    []T    `json:"data"`
	Total   *int64 `json:"total,omitempty"`
	Offset  *int64 `json:"offset,omitempty"`
	Limit   *int64 `json:"limit,omitempty"`
	HasMore *bool  `json:"has_more,omitempty"`
}

// Len returns the number of items in this page.
func (r *PaginatedResponse[T]) Len() int {
	return len(r.Data)
}

// TotalCount returns the total item count and whether the API reported one.
func (r *PaginatedResponse[T]) TotalCount() (int64, bool) {
	if r.Total == nil {
		return 0, false
	}
	return *r.Total, true
}

// More reports whether the API signalled further pages. Absent metadata
// means no more pages.
func (r *PaginatedResponse[T]) More() bool {
	return r.HasMore != nil && *r.HasMore
}
