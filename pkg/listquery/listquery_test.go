package listquery

import (
	"fmt"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name   string
	Email  string
	Status string
	Age    int
}

var personSchema = Schema[person]{
	Searchable: []Field[person]{
		func(p person) string { return p.Name },
		func(p person) string { return p.Email },
	},
	Filterable: map[string]Field[person]{
		"status": func(p person) string { return p.Status },
	},
	Sortable: map[string]func(a, b person) int{
		"age": func(a, b person) int { return CompareInts(a.Age, b.Age) },
	},
}

func people(active, inactive int) []person {
	var out []person
	for i := 0; i < active; i++ {
		out = append(out, person{Name: fmt.Sprintf("Active %d", i), Email: fmt.Sprintf("a%d@x.com", i), Status: "Active", Age: 20 + i})
	}
	for i := 0; i < inactive; i++ {
		out = append(out, person{Name: fmt.Sprintf("Inactive %d", i), Email: fmt.Sprintf("i%d@x.com", i), Status: "Inactive", Age: 60 - i})
	}
	return out
}

func TestEvaluate_FilterAndPaginate(t *testing.T) {
	collection := people(8, 4)

	res := Evaluate(collection, Query{Page: 1, PageSize: 5, Filters: map[string]string{"status": "Active"}}, personSchema)

	assert.Equal(t, 8, res.Total)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, "Active 0", res.Items[0].Name)

	res = Evaluate(collection, Query{Page: 2, PageSize: 5, Filters: map[string]string{"status": "Active"}}, personSchema)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "Active 5", res.Items[0].Name)
	assert.Equal(t, "Active 7", res.Items[2].Name)
}

func TestEvaluate_PageBeyondEnd(t *testing.T) {
	collection := people(3, 0)

	res := Evaluate(collection, Query{Page: 2, PageSize: 10}, personSchema)

	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.TotalPages)
}

func TestEvaluate_HugePageDoesNotOverflow(t *testing.T) {
	res := Evaluate(people(3, 0), Query{Page: math.MaxInt, PageSize: math.MaxInt}, personSchema)

	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.TotalPages)
}

func TestEvaluate_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	collection := []person{
		{Name: "John Doe", Email: "j@x.com"},
		{Name: "Jane Roe", Email: "jane@x.com"},
	}

	lower := Evaluate(collection, Query{Search: "doe"}, personSchema)
	upper := Evaluate(collection, Query{Search: "DOE"}, personSchema)

	require.Len(t, lower.Items, 1)
	assert.Equal(t, "John Doe", lower.Items[0].Name)
	assert.Equal(t, lower, upper)

	byEmail := Evaluate(collection, Query{Search: "JANE@"}, personSchema)
	require.Len(t, byEmail.Items, 1)
	assert.Equal(t, "Jane Roe", byEmail.Items[0].Name)
}

func TestEvaluate_FilterIsExactAndCaseSensitive(t *testing.T) {
	res := Evaluate(people(2, 2), Query{Filters: map[string]string{"status": "active"}}, personSchema)

	assert.Zero(t, res.Total)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.TotalPages)
}

func TestEvaluate_SearchAndFiltersAreConjunctive(t *testing.T) {
	res := Evaluate(people(8, 4), Query{Search: "active 1", Filters: map[string]string{"status": "Inactive"}}, personSchema)

	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Inactive 1", res.Items[0].Name)
}

func TestEvaluate_EmptyFilterValueAndUnknownKeyAreIgnored(t *testing.T) {
	collection := people(2, 1)

	res := Evaluate(collection, Query{Filters: map[string]string{"status": "", "ward": "ICU"}}, personSchema)

	assert.Equal(t, len(collection), res.Total)
}

func TestEvaluate_NoSearchNoFiltersReturnsWholeCollection(t *testing.T) {
	for _, n := range []int{0, 1, 10, 11, 25} {
		collection := people(n, 0)
		res := Evaluate(collection, Query{Page: 1, PageSize: 10}, personSchema)
		assert.Equal(t, n, res.Total, "n=%d", n)
	}
}

func TestEvaluate_ItemCountFormula(t *testing.T) {
	collection := people(23, 0)
	for page := 1; page <= 5; page++ {
		for _, size := range []int{1, 4, 10, 23, 50} {
			res := Evaluate(collection, Query{Page: page, PageSize: size}, personSchema)
			want := min(size, max(0, res.Total-(page-1)*size))
			assert.Len(t, res.Items, want, "page=%d size=%d", page, size)
		}
	}
}

func TestEvaluate_ClampsNonPositivePageAndSize(t *testing.T) {
	res := Evaluate(people(3, 0), Query{Page: 0, PageSize: -5}, personSchema)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.PageSize)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 3, res.TotalPages)
}

func TestEvaluate_IsIdempotentAndDoesNotMutateInput(t *testing.T) {
	collection := people(5, 5)
	snapshot := append([]person(nil), collection...)
	q := Query{Page: 1, PageSize: 4, SortBy: "age", SortDesc: true}

	first := Evaluate(collection, q, personSchema)
	second := Evaluate(collection, q, personSchema)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, collection)
}

func TestEvaluate_AddingFilterNeverIncreasesTotal(t *testing.T) {
	collection := people(6, 3)
	base := Query{Search: "x.com"}

	without := Evaluate(collection, base, personSchema)
	with := Evaluate(collection, base.WithFilter("status", "Inactive"), personSchema)

	assert.LessOrEqual(t, with.Total, without.Total)
	assert.Empty(t, base.Filters)
}

func TestEvaluate_SortIsStableAndOptional(t *testing.T) {
	collection := []person{
		{Name: "b", Age: 30},
		{Name: "a", Age: 20},
		{Name: "c", Age: 30},
	}

	asc := Evaluate(collection, Query{PageSize: 10, SortBy: "age"}, personSchema)
	assert.Equal(t, []string{"a", "b", "c"}, names(asc.Items))

	desc := Evaluate(collection, Query{PageSize: 10, SortBy: "age", SortDesc: true}, personSchema)
	assert.Equal(t, []string{"b", "c", "a"}, names(desc.Items))

	unknown := Evaluate(collection, Query{PageSize: 10, SortBy: "height"}, personSchema)
	assert.Equal(t, []string{"b", "a", "c"}, names(unknown.Items))
}

func TestMapSchema(t *testing.T) {
	schema := MapSchema([]string{"name", "email"}, []string{"status", "active"})
	collection := []Record{
		{"name": "John Doe", "email": "j@x.com", "status": "Active", "active": true},
		{"name": "Mary", "email": "mary@x.com", "status": "Inactive", "active": false},
		{"email": "anon@x.com"},
	}

	res := Evaluate(collection, Query{Search: "doe"}, schema)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "John Doe", res.Items[0]["name"])

	res = Evaluate(collection, Query{Filters: map[string]string{"active": "false"}}, schema)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Mary", res.Items[0]["name"])
}

func TestFromValues(t *testing.T) {
	values := url.Values{
		"page":    {"3"},
		"limit":   {"25"},
		"search":  {"smith"},
		"status":  {"Active"},
		"ignored": {"x"},
		"gender":  {""},
		"sort":    {"name"},
		"order":   {"DESC"},
	}

	q := FromValues(values, "status", "gender")

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "smith", q.Search)
	assert.Equal(t, map[string]string{"status": "Active"}, q.Filters)
	assert.Equal(t, "name", q.SortBy)
	assert.True(t, q.SortDesc)
}

func TestFromValues_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"empty", "", DefaultPage, DefaultPageSize},
		{"zero", "page=0&limit=0", DefaultPage, DefaultPageSize},
		{"negative", "page=-2&limit=-1", DefaultPage, DefaultPageSize},
		{"garbage", "page=abc&limit=x", DefaultPage, DefaultPageSize},
		{"capped", "page=2&limit=1000", 2, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			q := FromValues(values)
			assert.Equal(t, tt.page, q.Page)
			assert.Equal(t, tt.limit, q.PageSize)
			assert.False(t, q.SortDesc)
		})
	}
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 5, Limit(url.Values{}, 5))
	assert.Equal(t, 7, Limit(url.Values{"limit": {"7"}}, 5))
	assert.Equal(t, 5, Limit(url.Values{"limit": {"0"}}, 5))
	assert.Equal(t, MaxPageSize, Limit(url.Values{"limit": {"500"}}, 5))
}

func names(items []person) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}
