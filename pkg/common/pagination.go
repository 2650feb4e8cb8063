package common

import (
	"fmt"
	"net/http"
	"strconv"

	"tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/query"
)

// ListDefaults are the per-endpoint defaults applied when a listing request
// omits pagination or sort parameters.
type ListDefaults struct {
	PageSize  int
	SortBy    string
	SortOrder string
}

// ListParams is the validated pagination/sort/search bundle extracted from
// a listing request.
type ListParams struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
}

// ExtractListParams reads page, page_size, search, sort_by, and sort_order
// from the request query. Out-of-range values are rejected here so the
// query engine can assume pre-validated bounds.
func ExtractListParams(r *http.Request, defaults ListDefaults) (ListParams, error) {
	params := ListParams{
		Page:      1,
		PageSize:  defaults.PageSize,
		SortBy:    defaults.SortBy,
		SortOrder: defaults.SortOrder,
	}
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return ListParams{}, errors.NewValidationError("page must be an integer >= 1")
		}
		params.Page = page
	}

	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < query.MinPageSize || size > query.MaxPageSize {
			return ListParams{}, errors.NewValidationError(
				fmt.Sprintf("page_size must be between %d and %d", query.MinPageSize, query.MaxPageSize))
		}
		params.PageSize = size
	}

	params.Search = q.Get("search")

	if sortBy := q.Get("sort_by"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := q.Get("sort_order"); order != "" {
		if order != query.OrderAsc && order != query.OrderDesc {
			return ListParams{}, errors.NewValidationError("sort_order must be asc or desc")
		}
		params.SortOrder = order
	}

	return params, nil
}

// QueryParams converts the bundle plus categorical filters into engine
// parameters.
func (p ListParams) QueryParams(filters map[string]string) query.Params {
	return query.Params{
		Page:     p.Page,
		PageSize: p.PageSize,
		Filters:  filters,
		Search:   p.Search,
		SortBy:   p.SortBy,
		Order:    p.SortOrder,
	}
}
