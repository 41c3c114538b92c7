package entities

import (
	"net/url"
	"strconv"
)

// HTTPFilter is the research/pagination filter of list endpoints
type HTTPFilter struct {
	Search string   `form:"search"`
	Page   int      `form:"page"`
	Size   int      `form:"size"`
	Sort   []string `form:"sort"`
}

// Values returns the query parameters representing the filter
func (f *HTTPFilter) Values() url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}

	if f.Search != "" {
		values.Set("search", f.Search)
	}
	values.Set("page", strconv.Itoa(f.Page))
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	for _, sort := range f.Sort {
		values.Add("sort", sort)
	}

	return values
}
