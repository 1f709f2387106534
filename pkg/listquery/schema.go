package listquery

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a schemaless entity: field name to value.
type Record = map[string]any

// MapSchema builds a Schema over Record values. Missing fields read as "".
func MapSchema(searchable, filterable []string) Schema[Record] {
	s := Schema[Record]{
		Filterable: make(map[string]Field[Record], len(filterable)),
	}
	for _, name := range searchable {
		s.Searchable = append(s.Searchable, recordField(name))
	}
	for _, name := range filterable {
		s.Filterable[name] = recordField(name)
	}
	return s
}

func recordField(name string) Field[Record] {
	return func(r Record) string {
		v, ok := r[name]
		if !ok {
			return ""
		}
		return String(v)
	}
}

// String renders v in the canonical form used for filter comparison.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Date renders t as YYYY-MM-DD, or "" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ID renders a UUID, or "" for uuid.Nil.
func ID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// CompareStrings orders case-insensitively.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareTimes orders chronologically.
func CompareTimes(a, b time.Time) int {
	return a.Compare(b)
}

// CompareInts orders numerically.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareDecimals orders numerically.
func CompareDecimals(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
