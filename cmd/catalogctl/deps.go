package main

import (
	"ambalaje-storefront/internal/cache"
	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/config"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/shopify"
	"ambalaje-storefront/internal/storefront"
)

// Dependencies are the services commands run against.
type Dependencies struct {
	Config      *config.Config
	Menus       menu.Service
	Collections category.Service
	Storefront  storefront.Service
}

func buildDependencies() (Dependencies, error) {
	cfg := config.LoadConfig()

	client, err := shopify.NewClient(shopify.Config{
		StoreDomain: cfg.ShopifyStoreDomain,
		AccessToken: cfg.ShopifyAccessToken,
		APIVersion:  cfg.ShopifyAPIVersion,
		Timeout:     cfg.ShopifyTimeout,
	}, shopify.WithCache(cache.New(cfg.CacheSize, cfg.CacheTTL)))
	if err != nil {
		return Dependencies{}, err
	}

	collections := category.NewService(category.NewRepository(client))
	products := product.NewService(product.NewRepository(client, cfg.HiddenProductTag))
	menus := menu.NewService(menu.NewRepository(client), collections, menu.Config{
		StoreURL:      client.StoreURL(),
		ProduseHandle: cfg.ProduseMenuHandle,
	})

	return Dependencies{
		Config:      cfg,
		Menus:       menus,
		Collections: collections,
		Storefront:  storefront.NewService(products, menus, collections),
	}, nil
}
