package product

import (
	"context"
	"strings"
	"time"

	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/slug"

	"go.uber.org/zap"
)

// AvailableQuery restricts the global listing to purchasable products.
const AvailableQuery = "available_for_sale:true"

type Service interface {
	ListProducts(ctx context.Context, opts ListOptions) ([]Product, error)
	GetProductByHandle(ctx context.Context, handle string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.Service(ctx, "ListProducts")

	start := time.Now()

	if opts.SortKey == "" {
		opts.SortKey = SortRelevance
	}

	log.Debug("list products requested",
		zap.String("collection", opts.CollectionHandle),
		zap.String("search", opts.SearchText),
		zap.String("sort_key", string(opts.SortKey)),
		zap.Bool("reverse", opts.Reverse),
	)

	var (
		products []Product
		err      error
	)
	if opts.CollectionHandle != "" {
		products, err = s.repo.GetCollectionProducts(ctx, opts.CollectionHandle, opts.SortKey, opts.Reverse)
	} else {
		products, err = s.repo.GetProducts(ctx, QueryOptions{
			Query:   AvailableQuery,
			SortKey: opts.SortKey,
			Reverse: opts.Reverse,
		})
	}
	if err != nil {
		log.Error("failed to fetch products",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	products = filterByTitle(products, opts.SearchText)

	log.Info("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (s *service) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	log := logger.Service(ctx, "GetProductByHandle", zap.String("handle", handle))

	if strings.TrimSpace(handle) == "" {
		return nil, ErrEmptyHandle
	}

	p, err := s.repo.GetProductByHandle(ctx, handle)
	if err != nil {
		log.Error("failed to get product", zap.Error(err))
		return nil, err
	}
	if p == nil {
		log.Debug("product not found")
		return nil, nil
	}
	return p, nil
}

// filterByTitle keeps products whose title contains q, ignoring case and
// diacritics. Order is preserved.
func filterByTitle(products []Product, q string) []Product {
	if slug.NormalizeSearch(q) == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if slug.Contains(p.Title, q) {
			out = append(out, p)
		}
	}
	return out
}
