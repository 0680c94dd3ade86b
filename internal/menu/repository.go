package menu

import (
	"context"
	"fmt"

	"ambalaje-storefront/internal/shopify"
)

type Repository interface {
	// GetMenu returns the menu's items, or none when the handle is unknown.
	GetMenu(ctx context.Context, handle string) ([]RawItem, error)
}

type repository struct {
	client shopify.Fetcher
}

func NewRepository(client shopify.Fetcher) Repository {
	return &repository{client: client}
}

func (r *repository) GetMenu(ctx context.Context, handle string) ([]RawItem, error) {
	var res struct {
		Menu *struct {
			Items []RawItem `json:"items"`
		} `json:"menu"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query:     getMenuQuery,
		Variables: map[string]any{"handle": handle},
		Tags:      []string{shopify.TagCollections},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get menu %q: %w", handle, err)
	}

	if res.Menu == nil {
		return []RawItem{}, nil
	}
	return res.Menu.Items, nil
}
