package category

import (
	"strings"

	"ambalaje-storefront/internal/shopify"
)

// hiddenPrefix marks collections that exist only for internal merchandising.
const hiddenPrefix = "hidden"

type rawCollection struct {
	Handle      string         `json:"handle"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       *shopify.Image `json:"image"`
	UpdatedAt   string         `json:"updatedAt"`
}

func reshapeCollection(raw rawCollection) Collection {
	c := Collection{
		Handle:      raw.Handle,
		Title:       raw.Title,
		Description: raw.Description,
		Image:       raw.Image,
		Path:        CatalogRoot + "/" + raw.Handle,
		UpdatedAt:   raw.UpdatedAt,
	}
	if c.Image != nil && c.Image.AltText == "" {
		img := *c.Image
		img.AltText = raw.Title
		c.Image = &img
	}
	return c
}

func reshapeCollections(raws []rawCollection) []Collection {
	out := make([]Collection, 0, len(raws))
	for _, raw := range raws {
		if strings.HasPrefix(raw.Handle, hiddenPrefix) {
			continue
		}
		out = append(out, reshapeCollection(raw))
	}
	return out
}
