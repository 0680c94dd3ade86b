package menu

import (
	"context"
	"strings"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CollectionSource supplies the handle index used for category imagery.
type CollectionSource interface {
	GetCollectionMap(ctx context.Context) (map[string]category.Collection, error)
}

type Config struct {
	StoreURL      string
	ProduseHandle string
}

type Service interface {
	GetMenu(ctx context.Context, handle string) ([]Node, error)
	// GetProduseMenu builds the catalog menu under /produse with collection
	// images attached.
	GetProduseMenu(ctx context.Context) ([]Node, error)
}

type service struct {
	repo        Repository
	collections CollectionSource
	cfg         Config
}

func NewService(repo Repository, collections CollectionSource, cfg Config) Service {
	return &service{repo: repo, collections: collections, cfg: cfg}
}

func (s *service) GetMenu(ctx context.Context, handle string) ([]Node, error) {
	log := logger.Service(ctx, "GetMenu", zap.String("handle", handle))
	log.Info("GetMenu started")

	items, err := s.repo.GetMenu(ctx, handle)
	if err != nil {
		log.Error("failed to get menu", zap.Error(err))
		return nil, err
	}

	nodes := Builder{StoreURL: s.cfg.StoreURL}.Build(items, nil)
	log.Info("GetMenu success", zap.Int("count", len(nodes)))
	return nodes, nil
}

func (s *service) GetProduseMenu(ctx context.Context) ([]Node, error) {
	log := logger.Service(ctx, "GetProduseMenu", zap.String("handle", s.cfg.ProduseHandle))
	log.Info("GetProduseMenu started")

	var (
		items       []RawItem
		collections map[string]category.Collection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.GetMenu(gctx, s.cfg.ProduseHandle)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = s.collections.GetCollectionMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load produse menu", zap.Error(err))
		return nil, err
	}

	root := strings.TrimPrefix(category.CatalogRoot, "/")
	nodes := Builder{StoreURL: s.cfg.StoreURL, Collections: collections}.Build(items, []string{root})

	log.Info("GetProduseMenu success", zap.Int("count", len(nodes)))
	return nodes, nil
}
