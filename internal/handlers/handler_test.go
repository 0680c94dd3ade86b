package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/shopify"
	"ambalaje-storefront/internal/storefront"
	"ambalaje-storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockStorefront struct {
	mock.Mock
}

func (m *MockStorefront) Catalog(ctx context.Context, p transport.Params) (*storefront.Page, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.Page), args.Error(1)
}

func (m *MockStorefront) Search(ctx context.Context, q string, sort product.SortSpec) (*storefront.SearchResult, error) {
	args := m.Called(ctx, q, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.SearchResult), args.Error(1)
}

type MockMenus struct {
	mock.Mock
}

func (m *MockMenus) GetMenu(ctx context.Context, handle string) ([]menu.Node, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Node), args.Error(1)
}

func (m *MockMenus) GetProduseMenu(ctx context.Context) ([]menu.Node, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Node), args.Error(1)
}

type MockCollections struct {
	mock.Mock
}

func (m *MockCollections) GetCollections(ctx context.Context) ([]category.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Collection), args.Error(1)
}

func (m *MockCollections) GetCollection(ctx context.Context, handle string) (*category.Collection, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Collection), args.Error(1)
}

func (m *MockCollections) GetCollectionMap(ctx context.Context) (map[string]category.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]category.Collection), args.Error(1)
}

type fakeRevalidator struct {
	tags []string
}

func (f *fakeRevalidator) Revalidate(tag string) int {
	f.tags = append(f.tags, tag)
	return 3
}

// --- Helpers ---

type fixture struct {
	sf          *MockStorefront
	menus       *MockMenus
	collections *MockCollections
	cache       *fakeRevalidator
	router      chi.Router
}

func newFixture() fixture {
	f := fixture{
		sf:          new(MockStorefront),
		menus:       new(MockMenus),
		collections: new(MockCollections),
		cache:       &fakeRevalidator{},
	}
	h := New(f.sf, f.menus, f.collections, f.cache)
	r := chi.NewRouter()
	h.Routes(r, func(next http.Handler) http.Handler { return next })
	f.router = r
	return f
}

func (f fixture) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestHealth(t *testing.T) {
	w := newFixture().do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMetrics(t *testing.T) {
	w := newFixture().do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]uint64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "upstream_requests")
}

func TestGetMenu(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		f.menus.On("GetMenu", mock.Anything, "nextjs-frontend-menu").
			Return([]menu.Node{{Title: "Acasa", Path: "/", Children: []menu.Node{}}}, nil)

		w := f.do(http.MethodGet, "/api/menu/nextjs-frontend-menu", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var nodes []menu.Node
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nodes))
		assert.Equal(t, "/", nodes[0].Path)
	})

	t.Run("Upstream failure is a bad gateway", func(t *testing.T) {
		f := newFixture()
		f.menus.On("GetMenu", mock.Anything, "x").
			Return(nil, &shopify.RemoteQueryError{Message: "Throttled", Query: "query getMenu { x }"})

		w := f.do(http.MethodGet, "/api/menu/x", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.NotContains(t, w.Body.String(), "getMenu")
	})

	t.Run("Configuration failure", func(t *testing.T) {
		f := newFixture()
		f.menus.On("GetMenu", mock.Anything, "x").
			Return(nil, &shopify.ConfigurationError{Err: shopify.ErrMissingAccessToken})

		w := f.do(http.MethodGet, "/api/menu/x", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetCatalog(t *testing.T) {
	t.Run("Nested path and params", func(t *testing.T) {
		f := newFixture()
		want := transport.Params{
			Segments: []string{"pahare", "carton"},
			Sort:     product.FindSort("price-asc"),
		}
		f.sf.On("Catalog", mock.Anything, want).
			Return(&storefront.Page{Kind: storefront.KindProducts, Title: "Carton"}, nil)

		w := f.do(http.MethodGet, "/api/produse/pahare/carton?sort=price-asc", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var page storefront.Page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, storefront.KindProducts, page.Kind)
		f.sf.AssertExpectations(t)
	})

	t.Run("Catalog root", func(t *testing.T) {
		f := newFixture()
		f.sf.On("Catalog", mock.Anything, mock.MatchedBy(func(p transport.Params) bool {
			return len(p.Segments) == 0
		})).Return(&storefront.Page{Kind: storefront.KindCategories}, nil)

		w := f.do(http.MethodGet, "/api/produse", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		f.sf.AssertExpectations(t)
	})

	t.Run("Blank segments are dropped", func(t *testing.T) {
		f := newFixture()
		f.sf.On("Catalog", mock.Anything, mock.MatchedBy(func(p transport.Params) bool {
			return len(p.Segments) == 1 && p.Segments[0] == "pahare"
		})).Return(&storefront.Page{Kind: storefront.KindEmpty}, nil)
		f.sf.On("Catalog", mock.Anything, mock.MatchedBy(func(p transport.Params) bool {
			return len(p.Segments) == 0
		})).Return(&storefront.Page{Kind: storefront.KindCategories}, nil)

		root := f.do(http.MethodGet, "/api/produse/%20", nil)
		nested := f.do(http.MethodGet, "/api/produse/pahare/%20", nil)

		assert.Equal(t, http.StatusOK, root.Code)
		assert.Equal(t, http.StatusOK, nested.Code)
		f.sf.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		f := newFixture()
		f.sf.On("Catalog", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		w := f.do(http.MethodGet, "/api/produse/pahare", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"catalog unavailable"}`, w.Body.String())
	})
}

func TestSearch(t *testing.T) {
	f := newFixture()
	f.sf.On("Search", mock.Anything, "cutii", product.FindSort("latest-desc")).
		Return(&storefront.SearchResult{Query: "cutii", Count: 0, ResultsText: "0 rezultate", Products: []storefront.ProductCard{}}, nil)

	w := f.do(http.MethodGet, "/api/search?q=cutii&sort=latest-desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0 rezultate")
}

func TestGetCollections(t *testing.T) {
	f := newFixture()
	f.collections.On("GetCollections", mock.Anything).Return([]category.Collection{category.All()}, nil)

	w := f.do(http.MethodGet, "/api/collections", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var collections []category.Collection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collections))
	assert.Equal(t, "All", collections[0].Title)
}

func TestGetSorting(t *testing.T) {
	w := newFixture().do(http.MethodGet, "/api/sorting", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var specs []product.SortSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &specs))
	assert.Equal(t, product.Sorting, specs)
}

func TestRevalidate(t *testing.T) {
	tests := []struct {
		topic   string
		wantTag string
	}{
		{"collections/update", shopify.TagCollections},
		{"products/create", shopify.TagProducts},
		{"orders/create", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			f := newFixture()

			w := f.do(http.MethodPost, "/api/revalidate", http.Header{TopicHeader: {tt.topic}})

			require.Equal(t, http.StatusOK, w.Code)
			var body revalidateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotZero(t, body.Now)

			if tt.wantTag == "" {
				assert.False(t, body.Revalidated)
				assert.Empty(t, f.cache.tags)
				return
			}
			assert.True(t, body.Revalidated)
			assert.Equal(t, 3, body.Removed)
			assert.Equal(t, []string{tt.wantTag}, f.cache.tags)
		})
	}
}
