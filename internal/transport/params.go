package transport

import (
	"net/http"
	"net/url"
	"strings"

	"ambalaje-storefront/internal/product"
)

// Query parameters understood by catalog and search pages.
const (
	ParamSort  = "sort"
	ParamQuery = "q"
	ParamFrom  = "from"
	FromSearch = "search"
)

// Params is the browser-facing state of a catalog or search request.
type Params struct {
	Segments   []string
	Sort       product.SortSpec
	Query      string
	FromSearch bool
}

// FromRequest reads sort, q and from=search from r. catalogPath is the part
// of the URL path below the catalog root, e.g. "pahare/carton".
func FromRequest(r *http.Request, catalogPath string) Params {
	q := r.URL.Query()
	return Params{
		Segments:   Segments(catalogPath),
		Sort:       product.FindSort(q.Get(ParamSort)),
		Query:      strings.TrimSpace(q.Get(ParamQuery)),
		FromSearch: q.Get(ParamFrom) == FromSearch,
	}
}

// Segments splits p on "/", unescapes and trims each element and drops the
// blank ones.
func Segments(p string) []string {
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if s, err := url.PathUnescape(part); err == nil {
			part = s
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// Last returns the final segment, or "" when there are none.
func (p Params) Last() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}
