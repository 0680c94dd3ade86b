package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/transport"

	"go.uber.org/zap"
)

type Service interface {
	// Catalog composes the page for a path below /produse.
	Catalog(ctx context.Context, p transport.Params) (*Page, error)
	Search(ctx context.Context, q string, sort product.SortSpec) (*SearchResult, error)
}

type service struct {
	products    product.Service
	menus       menu.Service
	collections category.Service
}

func NewService(products product.Service, menus menu.Service, collections category.Service) Service {
	return &service{products: products, menus: menus, collections: collections}
}

func (s *service) Catalog(ctx context.Context, p transport.Params) (*Page, error) {
	log := logger.Service(ctx, "Catalog", zap.Strings("segments", p.Segments))
	log.Info("Catalog started")

	if len(p.Segments) == 0 {
		tree, err := s.menus.GetProduseMenu(ctx)
		if err != nil {
			log.Error("failed to get produse menu", zap.Error(err))
			return nil, err
		}
		return &Page{
			Kind:        KindCategories,
			Title:       catalogLabel,
			Path:        category.CatalogRoot,
			Breadcrumbs: CatalogCrumbs(nil),
			Sort:        p.Sort,
			Categories:  tree,
		}, nil
	}

	last := p.Last()

	prod, err := s.products.GetProductByHandle(ctx, last)
	if errors.Is(err, product.ErrEmptyHandle) {
		prod, err = nil, nil
	}
	if err != nil {
		log.Error("failed to look up product", zap.Error(err))
		return nil, err
	}
	if prod != nil {
		log.Info("Catalog success", zap.String("kind", string(KindProduct)))
		return s.productPage(p, prod), nil
	}

	tree, err := s.menus.GetProduseMenu(ctx)
	if err != nil {
		log.Error("failed to get produse menu", zap.Error(err))
		return nil, err
	}

	node, found := menu.Resolve(tree, p.Segments)
	if found && node.HasChildren() {
		log.Info("Catalog success", zap.String("kind", string(KindCategories)))
		return &Page{
			Kind:        KindCategories,
			Title:       node.Title,
			Path:        catalogPath(p.Segments),
			Breadcrumbs: CatalogCrumbs(p.Segments),
			Sort:        p.Sort,
			Categories:  node.Children,
		}, nil
	}

	title, err := s.collectionTitle(ctx, node, found, last)
	if err != nil {
		log.Error("failed to get collection", zap.Error(err))
		return nil, err
	}

	products, err := s.products.ListProducts(ctx, product.ListOptions{
		CollectionHandle: last,
		SortKey:          p.Sort.SortKey,
		Reverse:          p.Sort.Reverse,
	})
	if err != nil {
		log.Error("failed to list collection products", zap.Error(err))
		return nil, err
	}

	page := &Page{
		Kind:        KindProducts,
		Title:       title,
		Path:        catalogPath(p.Segments),
		Breadcrumbs: CatalogCrumbs(p.Segments),
		Sort:        p.Sort,
	}
	if len(products) == 0 {
		page.Kind = KindEmpty
		page.Message = EmptyCollectionMessage
	} else {
		page.Products = cards(products, func(h string) string {
			return catalogPath(append(p.Segments[:len(p.Segments):len(p.Segments)], h))
		})
	}

	log.Info("Catalog success",
		zap.String("kind", string(page.Kind)),
		zap.Int("count", len(products)),
	)
	return page, nil
}

func (s *service) Search(ctx context.Context, q string, sort product.SortSpec) (*SearchResult, error) {
	log := logger.Service(ctx, "Search", zap.String("q", q))
	log.Info("Search started")

	products, err := s.products.ListProducts(ctx, product.ListOptions{
		SearchText: q,
		SortKey:    sort.SortKey,
		Reverse:    sort.Reverse,
	})
	if err != nil {
		log.Error("failed to search products", zap.Error(err))
		return nil, err
	}

	res := &SearchResult{
		Query:       q,
		Count:       len(products),
		ResultsText: ResultsText(len(products)),
		Sort:        sort,
		Products: cards(products, func(h string) string {
			return searchHref(h, q)
		}),
	}

	log.Info("Search success", zap.Int("count", res.Count))
	return res, nil
}

func (s *service) productPage(p transport.Params, prod *product.Product) *Page {
	page := &Page{
		Kind:  KindProduct,
		Title: prod.Title,
		Path:  catalogPath(p.Segments),
		Sort:  p.Sort,
		Product: &ProductView{
			Product:   *prod,
			Code:      prod.Code(),
			Price:     prod.PriceLabel(),
			Available: prod.Available(),
		},
	}
	if p.FromSearch {
		page.Breadcrumbs = SearchCrumbs(p.Query)
	} else {
		page.Breadcrumbs = CatalogCrumbs(p.Segments)
		page.Breadcrumbs[len(page.Breadcrumbs)-1].Label = prod.Title
	}
	return page
}

// collectionTitle prefers the menu title, then the collection's own title,
// then the prettified handle.
func (s *service) collectionTitle(ctx context.Context, node *menu.Node, found bool, handle string) (string, error) {
	if found && node.Title != "" {
		return node.Title, nil
	}
	c, err := s.collections.GetCollection(ctx, handle)
	if err != nil {
		return "", err
	}
	if c != nil && c.Title != "" {
		return c.Title, nil
	}
	return Prettify(handle), nil
}

// ResultsText is the Romanian result count shown above search results.
func ResultsText(n int) string {
	if n == 1 {
		return "1 rezultat"
	}
	return fmt.Sprintf("%d rezultate", n)
}

func searchHref(handle, q string) string {
	v := url.Values{}
	v.Set(transport.ParamFrom, transport.FromSearch)
	v.Set(transport.ParamQuery, q)
	return catalogPath([]string{handle}) + "?" + v.Encode()
}

func cards(products []product.Product, href func(handle string) string) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, ProductCard{
			Handle:    p.Handle,
			Title:     p.Title,
			Href:      href(p.Handle),
			Image:     p.DisplayImage(),
			Price:     p.PriceLabel(),
			Available: p.Available(),
		})
	}
	return out
}
