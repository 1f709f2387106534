package dto

// PageResponse is one page of a list endpoint.
type PageResponse[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
