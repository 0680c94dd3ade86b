package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProducts(ctx context.Context, opts QueryOptions) ([]Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetCollectionProducts(ctx context.Context, handle string, sortKey SortKey, reverse bool) ([]Product, error) {
	args := m.Called(ctx, handle, sortKey, reverse)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

// --- Helpers ---

func titled(titles ...string) []Product {
	out := make([]Product, 0, len(titles))
	for _, t := range titles {
		out = append(out, Product{Title: t, Handle: t})
	}
	return out
}

func titlesOf(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

// --- Tests ---

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Global listing is restricted to available products", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, QueryOptions{Query: AvailableQuery, SortKey: SortPrice, Reverse: true}).
			Return(titled("Cutii carton", "Pahare plastic"), nil)

		products, err := svc.ListProducts(ctx, ListOptions{SortKey: SortPrice, Reverse: true})

		require.NoError(t, err)
		assert.Equal(t, []string{"Cutii carton", "Pahare plastic"}, titlesOf(products))
		repo.AssertExpectations(t)
	})

	t.Run("Empty sort key defaults to relevance", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, QueryOptions{Query: AvailableQuery, SortKey: SortRelevance}).
			Return([]Product{}, nil)

		_, err := svc.ListProducts(ctx, ListOptions{})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Collection handle uses the collection query", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetCollectionProducts", ctx, "pahare", SortCreatedAt, true).
			Return(titled("Pahare carton"), nil)

		products, err := svc.ListProducts(ctx, ListOptions{CollectionHandle: "pahare", SortKey: SortCreatedAt, Reverse: true})

		require.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	})

	t.Run("Search keeps matching titles only", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, mock.Anything).Return(titled("Cutii carton", "Pahare plastic"), nil)

		products, err := svc.ListProducts(ctx, ListOptions{SearchText: "cutii"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Cutii carton"}, titlesOf(products))
	})

	t.Run("Search ignores diacritics and keeps upstream order", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, mock.Anything).
			Return(titled("Tăvițe aluminiu", "Pahare", "TAVITE carton", "Tavite mici"), nil)

		products, err := svc.ListProducts(ctx, ListOptions{SearchText: "  tăviţe "})

		require.NoError(t, err)
		assert.Equal(t, []string{"Tăvițe aluminiu", "TAVITE carton", "Tavite mici"}, titlesOf(products))
	})

	t.Run("Unknown collection yields empty result", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetCollectionProducts", ctx, "nope", SortRelevance, false).Return([]Product{}, nil)

		products, err := svc.ListProducts(ctx, ListOptions{CollectionHandle: "nope"})

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProducts", ctx, mock.Anything).Return(nil, errors.New("upstream down"))

		products, err := svc.ListProducts(ctx, ListOptions{})

		assert.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestService_GetProductByHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProductByHandle", ctx, "cutie-pizza").Return(&Product{Handle: "cutie-pizza"}, nil)

		p, err := svc.GetProductByHandle(ctx, "cutie-pizza")

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "cutie-pizza", p.Handle)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProductByHandle", ctx, "pahare").Return(nil, nil)

		p, err := svc.GetProductByHandle(ctx, "pahare")

		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("Empty handle", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.GetProductByHandle(ctx, " ")

		assert.ErrorIs(t, err, ErrEmptyHandle)
	})
}
