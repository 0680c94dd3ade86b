package category

import (
	"context"
	"fmt"

	"ambalaje-storefront/internal/shopify"
)

type Repository interface {
	GetCollections(ctx context.Context) ([]Collection, error)
	GetCollection(ctx context.Context, handle string) (*Collection, error)
}

type repository struct {
	client shopify.Fetcher
}

func NewRepository(client shopify.Fetcher) Repository {
	return &repository{client: client}
}

func (r *repository) GetCollections(ctx context.Context) ([]Collection, error) {
	var res struct {
		Collections shopify.Connection[rawCollection] `json:"collections"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query: getCollectionsQuery,
		Tags:  []string{shopify.TagCollections},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}
	return reshapeCollections(res.Collections.Nodes()), nil
}

// GetCollection returns nil when handle is unknown or hidden.
func (r *repository) GetCollection(ctx context.Context, handle string) (*Collection, error) {
	var res struct {
		Collection *rawCollection `json:"collection"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query:     getCollectionQuery,
		Variables: map[string]any{"handle": handle},
		Tags:      []string{shopify.TagCollections},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get collection %q: %w", handle, err)
	}

	if res.Collection == nil {
		return nil, nil
	}
	visible := reshapeCollections([]rawCollection{*res.Collection})
	if len(visible) == 0 {
		return nil, nil
	}
	return &visible[0], nil
}
