package dto

import (
	"net/http"
	"railbook/shared/constant"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries pagination from the request. Sorting is never taken from the client,
// repositories set SortBy and SortDir themselves.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=1"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=1,lte=100"`
	SortBy  string `json:"-"`
	SortDir string `json:"-"`
}

// FromRequest populates paging from the HTTP request, falling back to defaults when
// defaultRequest is set.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page, err := strconv.Atoi(queryParams.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(queryParams.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
