package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort           = "8080"
	defaultAPIVersion        = "2024-10"
	defaultHiddenProductTag  = "nextjs-frontend-hidden"
	defaultNavbarMenuHandle  = "nextjs-frontend-menu"
	defaultFooterMenuHandle  = "nextjs-frontend-footer"
	defaultProduseMenuHandle = "nextjs-produse-menu"
	defaultCacheTTL          = 5 * time.Minute
	defaultCacheSize         = 512
	defaultShopifyTimeout    = 10 * time.Second
	defaultCORSOrigin        = "http://localhost:3000"
)

type Config struct {
	AppPort    string
	AppEnv     string
	CORSOrigin string

	ShopifyStoreDomain        string
	ShopifyAccessToken        string
	ShopifyAPIVersion         string
	ShopifyRevalidationSecret string
	ShopifyTimeout            time.Duration

	HiddenProductTag string

	NavbarMenuHandle  string
	FooterMenuHandle  string
	ProduseMenuHandle string

	CacheTTL  time.Duration
	CacheSize int
}

// LoadConfig reads .env (when present) and the process environment. Missing
// Shopify credentials are not fatal here: shopify.NewClient rejects them.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:    getEnv("APP_PORT", defaultAppPort),
		AppEnv:     os.Getenv("APP_ENV"),
		CORSOrigin: getEnv("CORS_ALLOWED_ORIGIN", defaultCORSOrigin),

		ShopifyStoreDomain:        os.Getenv("SHOPIFY_STORE_DOMAIN"),
		ShopifyAccessToken:        os.Getenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN"),
		ShopifyAPIVersion:         getEnv("SHOPIFY_API_VERSION", defaultAPIVersion),
		ShopifyRevalidationSecret: os.Getenv("SHOPIFY_REVALIDATION_SECRET"),
		ShopifyTimeout:            getDuration("SHOPIFY_TIMEOUT", defaultShopifyTimeout),

		HiddenProductTag: getEnv("HIDDEN_PRODUCT_TAG", defaultHiddenProductTag),

		NavbarMenuHandle:  getEnv("MENU_HANDLE_NAVBAR", defaultNavbarMenuHandle),
		FooterMenuHandle:  getEnv("MENU_HANDLE_FOOTER", defaultFooterMenuHandle),
		ProduseMenuHandle: getEnv("MENU_HANDLE_PRODUSE", defaultProduseMenuHandle),

		CacheTTL:  getDuration("CACHE_TTL", defaultCacheTTL),
		CacheSize: getInt("CACHE_SIZE", defaultCacheSize),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
