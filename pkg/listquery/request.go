package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Query string parameter names.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSearch = "search"
	ParamSort   = "sort"
	ParamOrder  = "order"
)

// FromValues decodes a Query from request query parameters. Only the listed
// filter keys are picked up. Missing or non-positive page/limit fall back to
// the defaults and limit is capped at MaxPageSize.
func FromValues(values url.Values, filterKeys ...string) Query {
	page, err := strconv.Atoi(values.Get(ParamPage))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(values.Get(ParamLimit))
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filters := make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			filters[key] = v
		}
	}

	return Query{
		Page:     page,
		PageSize: limit,
		Search:   values.Get(ParamSearch),
		Filters:  filters,
		SortBy:   values.Get(ParamSort),
		SortDesc: strings.EqualFold(values.Get(ParamOrder), "desc"),
	}
}

// Limit reads a positive "limit" parameter, falling back to def and capping
// at MaxPageSize. Used by the non-paginated "recent"/"low stock" endpoints.
func Limit(values url.Values, def int) int {
	limit, err := strconv.Atoi(values.Get(ParamLimit))
	if err != nil || limit < 1 {
		return def
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
