package storefront

import (
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/shopify"
)

// Kind tells the renderer which view a catalog path resolved to.
type Kind string

const (
	KindProduct    Kind = "product"
	KindCategories Kind = "categories"
	KindProducts   Kind = "products"
	KindEmpty      Kind = "empty"
)

const EmptyCollectionMessage = "Nu am găsit produse în această categorie."

type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type ProductCard struct {
	Handle    string         `json:"handle"`
	Title     string         `json:"title"`
	Href      string         `json:"href"`
	Image     *shopify.Image `json:"image,omitempty"`
	Price     string         `json:"price"`
	Available bool           `json:"available"`
}

type ProductView struct {
	product.Product
	Code      string `json:"code"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

// Page is the JSON model of one catalog page.
type Page struct {
	Kind        Kind             `json:"kind"`
	Title       string           `json:"title"`
	Path        string           `json:"path"`
	Breadcrumbs []Crumb          `json:"breadcrumbs"`
	Sort        product.SortSpec `json:"sort"`
	Product     *ProductView     `json:"product,omitempty"`
	Categories  []menu.Node      `json:"categories,omitempty"`
	Products    []ProductCard    `json:"products,omitempty"`
	Message     string           `json:"message,omitempty"`
}

type SearchResult struct {
	Query       string           `json:"query"`
	Count       int              `json:"count"`
	ResultsText string           `json:"resultsText"`
	Sort        product.SortSpec `json:"sort"`
	Products    []ProductCard    `json:"products"`
}
