package product

import (
	"fmt"
	"strings"

	"ambalaje-storefront/internal/shopify"

	"github.com/shopspring/decimal"
)

type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

type Variant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Price            Money  `json:"price"`
	AvailableForSale bool   `json:"availableForSale"`
}

type Product struct {
	ID              string          `json:"id"`
	Handle          string          `json:"handle"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"descriptionHtml"`
	FeaturedImage   *shopify.Image  `json:"featuredImage,omitempty"`
	Images          []shopify.Image `json:"images"`
	Variants        []Variant       `json:"variants"`
	PriceRange      PriceRange      `json:"priceRange"`
	Tags            []string        `json:"tags"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

// Available reports whether any variant can be bought.
func (p Product) Available() bool {
	for _, v := range p.Variants {
		if v.AvailableForSale {
			return true
		}
	}
	return false
}

// DisplayImage is the first image, or nil.
func (p Product) DisplayImage() *shopify.Image {
	if len(p.Images) == 0 {
		return nil
	}
	img := p.Images[0]
	return &img
}

// Code is the numeric part of the product GID ("gid://shopify/Product/42" -> "42").
func (p Product) Code() string {
	if i := strings.LastIndex(p.ID, "/"); i >= 0 {
		return p.ID[i+1:]
	}
	return p.ID
}

// PriceLabel formats the minimum variant price in RON, prefixed with "De la"
// when the product has more than one variant.
func (p Product) PriceLabel() string {
	amount := p.PriceRange.MinVariantPrice.Amount.StringFixed(2)
	if len(p.Variants) > 1 {
		return fmt.Sprintf("De la %s RON", amount)
	}
	return fmt.Sprintf("%s RON", amount)
}

// QueryOptions drive the global products query.
type QueryOptions struct {
	Query   string
	SortKey SortKey
	Reverse bool
}

// ListOptions drive ListProducts. An empty CollectionHandle lists the whole
// catalog.
type ListOptions struct {
	CollectionHandle string
	SearchText       string
	SortKey          SortKey
	Reverse          bool
}
