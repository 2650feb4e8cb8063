// Package query implements the shared filter/search/sort/paginate pipeline
// used by the document, sensor, and alert listings. The engine is a pure
// function over a snapshot of records; it never mutates the backing store
// and never fails on empty results.
package query

import (
	"sort"
	"strings"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination bounds enforced at the handler boundary. The engine assumes
// params are already within range.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// Params is the immutable input bundle for one listing request.
type Params struct {
	Page     int
	PageSize int
	Filters  map[string]string
	Search   string
	SortBy   string
	Order    string
}

// Schema describes how the engine reads records of type T: which fields are
// filterable, which text fields participate in search, and which fields are
// sortable. The maps are explicit whitelists; anything not listed is
// ignored (filters) or falls back to DefaultSort (sorting).
type Schema[T any] struct {
	// Filters maps filter names to field accessors for exact matching.
	Filters map[string]func(T) string

	// SearchText returns the text fields searched case-insensitively.
	SearchText func(T) []string

	// Sorts maps sort field names to three-way comparators (a<b: negative,
	// a==b: zero, a>b: positive).
	Sorts map[string]func(a, b T) int

	// DefaultSort names the comparator used when SortBy is unrecognized.
	DefaultSort string
}

// Page is one served page plus pagination metadata.
type Page[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// Run executes the pipeline in fixed order: filter, search, sort, paginate.
//
// Categorical filters compose with AND; an unknown filter value simply
// matches nothing. Search matches when the term appears, case-insensitively,
// in any of the schema's text fields. Sorting is stable, so ties keep their
// relative input order. When the requested page is past the end and at least
// one page exists, the last page is served; an empty result keeps the
// requested page number.
func Run[T any](records []T, schema Schema[T], p Params) Page[T] {
	filtered := make([]T, 0, len(records))
	term := strings.ToLower(p.Search)

	for _, rec := range records {
		if !matchesFilters(rec, schema, p.Filters) {
			continue
		}
		if term != "" && !matchesSearch(rec, schema, term) {
			continue
		}
		filtered = append(filtered, rec)
	}

	cmp, ok := schema.Sorts[p.SortBy]
	if !ok {
		cmp = schema.Sorts[schema.DefaultSort]
	}
	if cmp != nil {
		desc := p.Order == OrderDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := cmp(filtered[i], filtered[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	return paginate(filtered, p.Page, p.PageSize)
}

func matchesFilters[T any](rec T, schema Schema[T], filters map[string]string) bool {
	for name, want := range filters {
		if want == "" {
			continue
		}
		accessor, ok := schema.Filters[name]
		if !ok {
			// Not a whitelisted filter field: nothing can match it.
			return false
		}
		if accessor(rec) != want {
			return false
		}
	}
	return true
}

func matchesSearch[T any](rec T, schema Schema[T], term string) bool {
	if schema.SearchText == nil {
		return false
	}
	for _, text := range schema.SearchText(rec) {
		if strings.Contains(strings.ToLower(text), term) {
			return true
		}
	}
	return false
}

func paginate[T any](records []T, page, pageSize int) Page[T] {
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      records[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
