package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID       string
	Category string
	Text     string
	Size     int
}

var recordSchema = Schema[record]{
	Filters: map[string]func(record) string{
		"category": func(r record) string { return r.Category },
	},
	SearchText: func(r record) []string {
		return []string{r.Text}
	},
	Sorts: map[string]func(a, b record) int{
		"id":   func(a, b record) int { return strings.Compare(a.ID, b.ID) },
		"size": func(a, b record) int { return a.Size - b.Size },
	},
	DefaultSort: "id",
}

func testRecords() []record {
	return []record{
		{ID: "R1", Category: "alpha", Text: "first report", Size: 30},
		{ID: "R2", Category: "beta", Text: "second Report", Size: 10},
		{ID: "R3", Category: "alpha", Text: "summary", Size: 20},
		{ID: "R4", Category: "beta", Text: "inspection report", Size: 10},
		{ID: "R5", Category: "alpha", Text: "final notes", Size: 40},
	}
}

func TestRun_FilterAndSearchCompose(t *testing.T) {
	// Arrange
	params := Params{
		Page:     1,
		PageSize: 10,
		Filters:  map[string]string{"category": "beta"},
		Search:   "REPORT",
		SortBy:   "id",
		Order:    OrderAsc,
	}

	// Act
	page := Run(testRecords(), recordSchema, params)

	// Assert
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "R2", page.Items[0].ID)
	assert.Equal(t, "R4", page.Items[1].ID)
}

func TestRun_EmptyFilterValueIsIgnored(t *testing.T) {
	params := Params{
		Page:     1,
		PageSize: 10,
		Filters:  map[string]string{"category": ""},
	}

	page := Run(testRecords(), recordSchema, params)

	assert.Equal(t, 5, page.TotalCount)
}

func TestRun_UnknownFilterNameMatchesNothing(t *testing.T) {
	params := Params{
		Page:     1,
		PageSize: 10,
		Filters:  map[string]string{"owner": "anyone"},
	}

	page := Run(testRecords(), recordSchema, params)

	assert.Equal(t, 0, page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestRun_UnknownSortFallsBackToDefault(t *testing.T) {
	params := Params{Page: 1, PageSize: 10, SortBy: "made_up", Order: OrderAsc}

	page := Run(testRecords(), recordSchema, params)

	assert.Equal(t, "R1", page.Items[0].ID)
	assert.Equal(t, "R5", page.Items[4].ID)
}

func TestRun_StableSortKeepsInputOrderOnTies(t *testing.T) {
	// R2 and R4 share Size 10; input order must survive both directions.
	asc := Run(testRecords(), recordSchema, Params{Page: 1, PageSize: 10, SortBy: "size", Order: OrderAsc})
	desc := Run(testRecords(), recordSchema, Params{Page: 1, PageSize: 10, SortBy: "size", Order: OrderDesc})

	assert.Equal(t, "R2", asc.Items[0].ID)
	assert.Equal(t, "R4", asc.Items[1].ID)
	assert.Equal(t, "R2", desc.Items[3].ID)
	assert.Equal(t, "R4", desc.Items[4].ID)
}

func TestRun_TotalPagesIsCeiling(t *testing.T) {
	page := Run(testRecords(), recordSchema, Params{Page: 1, PageSize: 2})

	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

func TestRun_PagePastEndServesLastPage(t *testing.T) {
	page := Run(testRecords(), recordSchema, Params{Page: 9, PageSize: 2})

	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 1)
}

func TestRun_EmptyResultKeepsRequestedPage(t *testing.T) {
	params := Params{
		Page:     4,
		PageSize: 10,
		Filters:  map[string]string{"category": "nothing"},
	}

	page := Run(testRecords(), recordSchema, params)

	assert.Equal(t, 4, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestRun_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	page := Run(testRecords(), recordSchema, Params{Page: 1, PageSize: 10, Search: "repo"})

	assert.Equal(t, 3, page.TotalCount)
}
