package product

import (
	"context"
	"fmt"

	"ambalaje-storefront/internal/shopify"
)

type Repository interface {
	GetProducts(ctx context.Context, opts QueryOptions) ([]Product, error)
	// GetCollectionProducts returns an empty slice when the collection does
	// not exist.
	GetCollectionProducts(ctx context.Context, handle string, sortKey SortKey, reverse bool) ([]Product, error)
	// GetProductByHandle returns nil when no visible product has handle.
	GetProductByHandle(ctx context.Context, handle string) (*Product, error)
}

type repository struct {
	client    shopify.Fetcher
	hiddenTag string
}

func NewRepository(client shopify.Fetcher, hiddenTag string) Repository {
	return &repository{client: client, hiddenTag: hiddenTag}
}

func (r *repository) GetProducts(ctx context.Context, opts QueryOptions) ([]Product, error) {
	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = SortRelevance
	}

	vars := map[string]any{
		"sortKey": string(sortKey),
		"reverse": opts.Reverse,
	}
	if opts.Query != "" {
		vars["query"] = opts.Query
	}

	var res struct {
		Products shopify.Connection[rawProduct] `json:"products"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query:     getProductsQuery,
		Variables: vars,
		Tags:      []string{shopify.TagProducts},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return reshapeProducts(res.Products.Nodes(), r.hiddenTag), nil
}

func (r *repository) GetCollectionProducts(ctx context.Context, handle string, sortKey SortKey, reverse bool) ([]Product, error) {
	var res struct {
		Collection *struct {
			Products shopify.Connection[rawProduct] `json:"products"`
		} `json:"collection"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query: getCollectionProductsQuery,
		Variables: map[string]any{
			"handle":  handle,
			"sortKey": collectionSortKey(sortKey),
			"reverse": reverse,
		},
		Tags: []string{shopify.TagCollections, shopify.TagProducts},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get collection products %q: %w", handle, err)
	}

	if res.Collection == nil {
		return []Product{}, nil
	}
	return reshapeProducts(res.Collection.Products.Nodes(), r.hiddenTag), nil
}

func (r *repository) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var res struct {
		Product *rawProduct `json:"product"`
	}
	err := r.client.Do(ctx, shopify.Request{
		Query:     getProductQuery,
		Variables: map[string]any{"handle": handle},
		Tags:      []string{shopify.TagProducts},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", handle, err)
	}

	if res.Product == nil {
		return nil, nil
	}
	p, ok := reshapeProduct(*res.Product, r.hiddenTag)
	if !ok {
		return nil, nil
	}
	return &p, nil
}
