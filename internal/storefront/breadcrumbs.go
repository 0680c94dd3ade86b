package storefront

import (
	"net/url"
	"strings"

	"ambalaje-storefront/internal/category"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	catalogLabel = "Produse"
	searchLabel  = "Căutare"
)

// SearchCrumbs links back to the search results for q.
func SearchCrumbs(q string) []Crumb {
	return []Crumb{{Label: searchLabel, Href: "/search?q=" + url.QueryEscape(q)}}
}

// CatalogCrumbs starts at the catalog root and adds one crumb per segment,
// each linking to the cumulative path.
func CatalogCrumbs(segments []string) []Crumb {
	crumbs := make([]Crumb, 0, len(segments)+1)
	crumbs = append(crumbs, Crumb{Label: catalogLabel, Href: category.CatalogRoot})

	href := category.CatalogRoot
	for _, s := range segments {
		href += "/" + s
		crumbs = append(crumbs, Crumb{Label: Prettify(s), Href: href})
	}
	return crumbs
}

// Prettify turns a slug into a display label: "pahare-carton" -> "Pahare Carton".
func Prettify(s string) string {
	return cases.Title(language.Romanian).String(strings.ReplaceAll(s, "-", " "))
}

func catalogPath(segments []string) string {
	if len(segments) == 0 {
		return category.CatalogRoot
	}
	return category.CatalogRoot + "/" + strings.Join(segments, "/")
}
