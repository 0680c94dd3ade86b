package product

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ambalaje-storefront/internal/shopify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher answers every request with body (the "data" object) and keeps
// the last request for inspection.
type fakeFetcher struct {
	body string
	err  error
	last shopify.Request
}

func (f *fakeFetcher) Do(_ context.Context, r shopify.Request, out any) error {
	f.last = r
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.body), out)
}

const productsBody = `{"products":{"edges":[
  {"node":{"id":"gid://shopify/Product/1","handle":"cutii-carton","title":"Cutii carton","tags":[],
    "variants":{"edges":[{"node":{"id":"v1","title":"Mica","availableForSale":false,"price":{"amount":"3.5","currencyCode":"RON"}}},
                         {"node":{"id":"v2","title":"Mare","availableForSale":true,"price":{"amount":"5.0","currencyCode":"RON"}}}]},
    "priceRange":{"minVariantPrice":{"amount":"3.5","currencyCode":"RON"},"maxVariantPrice":{"amount":"5.0","currencyCode":"RON"}},
    "images":{"edges":[{"node":{"url":"https://cdn.shopify.com/s/files/cutie-mare.jpg?v=17","altText":null}}]}}},
  {"node":{"id":"gid://shopify/Product/2","handle":"secret","title":"Secret","tags":["nextjs-frontend-hidden"]}}
]}}`

func TestRepository_GetProducts(t *testing.T) {
	f := &fakeFetcher{body: productsBody}
	repo := NewRepository(f, "nextjs-frontend-hidden")

	products, err := repo.GetProducts(context.Background(), QueryOptions{Query: AvailableQuery, SortKey: SortCreatedAt, Reverse: true})

	require.NoError(t, err)
	require.Len(t, products, 1, "hidden product is dropped")

	p := products[0]
	assert.Equal(t, "cutii-carton", p.Handle)
	assert.True(t, p.Available())
	require.Len(t, p.Variants, 2)
	assert.Equal(t, "Cutii carton - cutie-mare", p.Images[0].AltText)
	assert.Equal(t, "3.50", p.PriceRange.MinVariantPrice.Amount.StringFixed(2))

	assert.Equal(t, "CREATED_AT", f.last.Variables["sortKey"])
	assert.Equal(t, true, f.last.Variables["reverse"])
	assert.Equal(t, AvailableQuery, f.last.Variables["query"])
	assert.Equal(t, []string{shopify.TagProducts}, f.last.Tags)
}

func TestRepository_GetCollectionProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("CREATED_AT becomes CREATED", func(t *testing.T) {
		f := &fakeFetcher{body: `{"collection":{"products":{"edges":[]}}}`}
		repo := NewRepository(f, "nextjs-frontend-hidden")

		products, err := repo.GetCollectionProducts(ctx, "pahare", SortCreatedAt, true)

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.Equal(t, "CREATED", f.last.Variables["sortKey"])
		assert.Equal(t, "pahare", f.last.Variables["handle"])
		assert.ElementsMatch(t, []string{shopify.TagCollections, shopify.TagProducts}, f.last.Tags)
	})

	t.Run("Other keys pass through", func(t *testing.T) {
		f := &fakeFetcher{body: `{"collection":{"products":{"edges":[]}}}`}
		repo := NewRepository(f, "")

		_, err := repo.GetCollectionProducts(ctx, "pahare", SortPrice, false)

		require.NoError(t, err)
		assert.Equal(t, "PRICE", f.last.Variables["sortKey"])
	})

	t.Run("Missing collection is empty, not an error", func(t *testing.T) {
		f := &fakeFetcher{body: `{"collection":null}`}
		repo := NewRepository(f, "")

		products, err := repo.GetCollectionProducts(ctx, "nope", SortRelevance, false)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Hidden products are dropped", func(t *testing.T) {
		f := &fakeFetcher{body: `{"collection":{"products":{"edges":[
			{"node":{"handle":"a","title":"A","tags":["nextjs-frontend-hidden"]}},
			{"node":{"handle":"b","title":"B","tags":["eco"]}}]}}}`}
		repo := NewRepository(f, "nextjs-frontend-hidden")

		products, err := repo.GetCollectionProducts(ctx, "pahare", SortRelevance, false)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "b", products[0].Handle)
	})
}

func TestRepository_GetProductByHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		f := &fakeFetcher{body: `{"product":{"id":"gid://shopify/Product/9","handle":"pahar","title":"Pahar",
			"descriptionHtml":"<p>Bun<script>alert(1)</script></p>"}}`}
		repo := NewRepository(f, "nextjs-frontend-hidden")

		p, err := repo.GetProductByHandle(ctx, "pahar")

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "9", p.Code())
		assert.Equal(t, "<p>Bun</p>", p.DescriptionHTML)
	})

	t.Run("Absent", func(t *testing.T) {
		repo := NewRepository(&fakeFetcher{body: `{"product":null}`}, "")

		p, err := repo.GetProductByHandle(ctx, "pahar")

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Hidden", func(t *testing.T) {
		repo := NewRepository(&fakeFetcher{body: `{"product":{"handle":"x","tags":["nextjs-frontend-hidden"]}}`}, "nextjs-frontend-hidden")

		p, err := repo.GetProductByHandle(ctx, "x")

		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Fetch error is wrapped", func(t *testing.T) {
		remote := &shopify.RemoteQueryError{Message: "Throttled", Cause: "THROTTLED", Status: 500}
		repo := NewRepository(&fakeFetcher{err: remote}, "")

		_, err := repo.GetProductByHandle(ctx, "x")

		var target *shopify.RemoteQueryError
		assert.True(t, errors.As(err, &target))
	})
}
