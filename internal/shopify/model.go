package shopify

import "context"

// Fetcher is what the catalog repositories need from the client. *Client
// implements it; tests substitute fakes.
type Fetcher interface {
	Do(ctx context.Context, r Request, out any) error
}

// Image is the Storefront API Image object.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}
