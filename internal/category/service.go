package category

import (
	"context"

	"ambalaje-storefront/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// GetCollections lists visible collections with All first.
	GetCollections(ctx context.Context) ([]Collection, error)
	GetCollection(ctx context.Context, handle string) (*Collection, error)
	// GetCollectionMap indexes visible collections by handle.
	GetCollectionMap(ctx context.Context) (map[string]Collection, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCollections(ctx context.Context) ([]Collection, error) {
	log := logger.Service(ctx, "GetCollections")
	log.Info("GetCollections started")

	collections, err := s.repo.GetCollections(ctx)
	if err != nil {
		log.Error("failed to get collections", zap.Error(err))
		return nil, err
	}

	out := make([]Collection, 0, len(collections)+1)
	out = append(out, All())
	out = append(out, collections...)

	log.Info("GetCollections success", zap.Int("count", len(out)))
	return out, nil
}

func (s *service) GetCollection(ctx context.Context, handle string) (*Collection, error) {
	if handle == "" {
		all := All()
		return &all, nil
	}

	c, err := s.repo.GetCollection(ctx, handle)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get collection",
			zap.String("layer", "service"),
			zap.String("handle", handle),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}

func (s *service) GetCollectionMap(ctx context.Context) (map[string]Collection, error) {
	collections, err := s.repo.GetCollections(ctx)
	if err != nil {
		return nil, err
	}
	return ByHandle(collections), nil
}

// ByHandle indexes collections by handle.
func ByHandle(collections []Collection) map[string]Collection {
	m := make(map[string]Collection, len(collections))
	for _, c := range collections {
		m[c.Handle] = c
	}
	return m
}
