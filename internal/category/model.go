package category

import "ambalaje-storefront/internal/shopify"

// CatalogRoot is the path every collection page lives under.
const CatalogRoot = "/produse"

type Collection struct {
	Handle      string         `json:"handle"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       *shopify.Image `json:"image,omitempty"`
	Path        string         `json:"path"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

// All is the synthetic collection covering the whole catalog.
func All() Collection {
	return Collection{
		Handle:      "",
		Title:       "All",
		Description: "All products",
		Path:        CatalogRoot,
	}
}
