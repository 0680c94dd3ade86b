package product

import (
	"net/url"
	"path"
	"slices"
	"strings"

	"ambalaje-storefront/internal/shopify"

	"github.com/microcosm-cc/bluemonday"
)

// rawProduct is the Product object as the Storefront API returns it.
type rawProduct struct {
	ID               string                            `json:"id"`
	Handle           string                            `json:"handle"`
	AvailableForSale bool                              `json:"availableForSale"`
	Title            string                            `json:"title"`
	Description      string                            `json:"description"`
	DescriptionHTML  string                            `json:"descriptionHtml"`
	PriceRange       PriceRange                        `json:"priceRange"`
	Variants         shopify.Connection[Variant]       `json:"variants"`
	FeaturedImage    *shopify.Image                    `json:"featuredImage"`
	Images           shopify.Connection[shopify.Image] `json:"images"`
	Tags             []string                          `json:"tags"`
	UpdatedAt        string                            `json:"updatedAt"`
}

var descriptionPolicy = bluemonday.UGCPolicy()

// reshapeProduct unwraps connections and fills in image alt text. The second
// result is false when the product carries hiddenTag.
func reshapeProduct(raw rawProduct, hiddenTag string) (Product, bool) {
	if hiddenTag != "" && slices.Contains(raw.Tags, hiddenTag) {
		return Product{}, false
	}

	p := Product{
		ID:              raw.ID,
		Handle:          raw.Handle,
		Title:           raw.Title,
		Description:     raw.Description,
		DescriptionHTML: descriptionPolicy.Sanitize(raw.DescriptionHTML),
		Images:          reshapeImages(raw.Images.Nodes(), raw.Title),
		Variants:        raw.Variants.Nodes(),
		PriceRange:      raw.PriceRange,
		Tags:            raw.Tags,
		UpdatedAt:       raw.UpdatedAt,
	}
	if raw.FeaturedImage != nil {
		img := withAltText(*raw.FeaturedImage, raw.Title)
		p.FeaturedImage = &img
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, true
}

func reshapeProducts(raws []rawProduct, hiddenTag string) []Product {
	out := make([]Product, 0, len(raws))
	for _, raw := range raws {
		if p, ok := reshapeProduct(raw, hiddenTag); ok {
			out = append(out, p)
		}
	}
	return out
}

func reshapeImages(images []shopify.Image, title string) []shopify.Image {
	out := make([]shopify.Image, 0, len(images))
	for _, img := range images {
		out = append(out, withAltText(img, title))
	}
	return out
}

func withAltText(img shopify.Image, title string) shopify.Image {
	if img.AltText != "" {
		return img
	}
	if name := fileStem(img.URL); name != "" {
		img.AltText = title + " - " + name
	} else {
		img.AltText = title
	}
	return img
}

// fileStem is the last path element of rawURL without its extension.
func fileStem(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
