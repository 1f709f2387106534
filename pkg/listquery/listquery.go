// Package listquery evaluates search + filter + paginate requests against an
// in-memory snapshot of a collection.
package listquery

import (
	"slices"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is a list request. Page is 1-based.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
	SortBy   string
	SortDesc bool
}

// Result is one page of the matched set.
type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Field returns the string form of one record field.
type Field[T any] func(T) string

// Schema names the fields of T that a Query may search, filter and sort on.
type Schema[T any] struct {
	Searchable []Field[T]
	Filterable map[string]Field[T]
	Sortable   map[string]func(a, b T) int
}

// Normalize clamps Page and PageSize to at least 1.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	return q
}

// WithFilter returns a copy of q with key set to value.
func (q Query) WithFilter(key, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}

// Evaluate returns the page of collection selected by q. It never fails:
// out-of-range pages yield an empty Items slice.
func Evaluate[T any](collection []T, q Query, s Schema[T]) Result[T] {
	q = q.Normalize()

	matched := Match(collection, q, s)
	if less, ok := s.Sortable[q.SortBy]; ok && q.SortBy != "" {
		slices.SortStableFunc(matched, func(a, b T) int {
			if q.SortDesc {
				return less(b, a)
			}
			return less(a, b)
		})
	}

	total := len(matched)
	totalPages := ceilDiv(total, q.PageSize)

	result := Result[T]{
		Items:      []T{},
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}

	// compare page numbers instead of offsets so huge pages cannot overflow
	if q.Page-1 >= totalPages {
		return result
	}

	offset := (q.Page - 1) * q.PageSize
	end := offset + q.PageSize
	if end > total {
		end = total
	}
	result.Items = append(result.Items, matched[offset:end]...)

	return result
}

// Match returns the records of collection that satisfy the search and every
// non-empty filter of q, in input order. The input slice is not modified.
func Match[T any](collection []T, q Query, s Schema[T]) []T {
	needle := strings.ToLower(q.Search)

	matched := make([]T, 0, len(collection))
	for _, item := range collection {
		if needle != "" && !matchesSearch(item, needle, s.Searchable) {
			continue
		}
		if !matchesFilters(item, q.Filters, s.Filterable) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesSearch[T any](item T, needle string, fields []Field[T]) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, fields map[string]Field[T]) bool {
	for key, want := range filters {
		if want == "" {
			continue
		}
		field, ok := fields[key]
		if !ok {
			continue
		}
		if field(item) != want {
			return false
		}
	}
	return true
}

func ceilDiv(total, size int) int {
	if total <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}
