package shopify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ambalaje-storefront/internal/cache"
	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/metrics"
	"ambalaje-storefront/internal/utils"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

const (
	AccessTokenHeader = "X-Shopify-Storefront-Access-Token"
	DefaultAPIVersion = "2024-10"
	defaultTimeout    = 10 * time.Second
)

// Invalidation tags attached to cached responses.
const (
	TagCollections = "collections"
	TagProducts    = "products"
)

type CacheMode int

const (
	// CacheForce serves from the response cache when possible.
	CacheForce CacheMode = iota
	// CacheNoStore always goes to the network and stores nothing.
	CacheNoStore
)

type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Request is one GraphQL call against the Storefront API.
type Request struct {
	Query     string
	Variables map[string]any
	Cache     CacheMode
	Tags      []string
}

type Client struct {
	gql        *graphql.Client
	httpClient *http.Client
	cache      *cache.Cache
	token      string
	storeURL   string
	endpoint   string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// wrapped so error bodies can be inspected.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache enables response caching for requests using CacheForce.
func WithCache(rc *cache.Cache) Option {
	return func(c *Client) {
		c.cache = rc
	}
}

// WithEndpoint overrides the derived GraphQL endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// NewClient validates cfg and builds a client. A missing domain or token is a
// *ConfigurationError.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	domain := strings.TrimSpace(cfg.StoreDomain)
	if domain == "" {
		return nil, &ConfigurationError{Err: ErrMissingStoreDomain}
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, &ConfigurationError{Err: ErrMissingAccessToken}
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	storeURL := utils.EnsureStartsWith(strings.TrimSuffix(domain, "/"), "https://")
	c := &Client{
		token:      cfg.AccessToken,
		storeURL:   storeURL,
		endpoint:   fmt.Sprintf("%s/api/%s/graphql.json", storeURL, version),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = &recordingTransport{base: base}
	c.httpClient = &hc

	c.gql = graphql.NewClient(c.endpoint, graphql.WithHTTPClient(c.httpClient))
	c.gql.Log = func(s string) {
		logger.L().Debug(s, zap.String("layer", "shopify"))
	}

	return c, nil
}

// StoreURL is the store's https origin; menu item URLs are prefixed with it.
func (c *Client) StoreURL() string {
	return c.storeURL
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Revalidate drops cached responses carrying tag.
func (c *Client) Revalidate(tag string) int {
	if c.cache == nil {
		return 0
	}
	metrics.Revalidations.Inc()
	return c.cache.Revalidate(tag)
}

// Do runs r and decodes the response's "data" object into out.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	op, err := operationName(r.Query)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("parse query document: %w", err), Operation: "unknown", Query: r.Query}
	}

	log := logger.Upstream(ctx, op)

	var data []byte
	if r.Cache == CacheNoStore || c.cache == nil {
		data, err = c.fetch(ctx, r, op)
	} else {
		data, err = c.cache.GetOrFill(ctx, cacheKey(op, r), r.Tags, func(fillCtx context.Context) ([]byte, error) {
			return c.fetch(fillCtx, r, op)
		})
		if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			err = &TransportError{Err: err, Operation: op, Query: r.Query}
		}
	}
	if err != nil {
		log.Error("storefront query failed", zap.Error(err))
		return err
	}

	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Error("decode storefront data failed", zap.Error(err))
		return &TransportError{Err: fmt.Errorf("decode data: %w", err), Operation: op, Query: r.Query}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, r Request, op string) ([]byte, error) {
	metrics.UpstreamRequests.Inc()
	timer := metrics.StartTimer()

	req := graphql.NewRequest(r.Query)
	for k, v := range r.Variables {
		req.Var(k, v)
	}
	req.Header.Set(AccessTokenHeader, c.token)

	rec := &capture{}
	ctx = withCapture(ctx, rec)

	var data json.RawMessage
	if err := c.gql.Run(ctx, req, &data); err != nil {
		metrics.UpstreamFailures.Inc()
		if remote := remoteError(rec, op, r.Query); remote != nil {
			return nil, remote
		}
		return nil, &TransportError{Err: err, Operation: op, Query: r.Query}
	}
	if rec.status >= http.StatusBadRequest {
		metrics.UpstreamFailures.Inc()
		if remote := remoteError(rec, op, r.Query); remote != nil {
			return nil, remote
		}
		return nil, &TransportError{Err: fmt.Errorf("unexpected status %d", rec.status), Operation: op, Query: r.Query}
	}

	logger.Upstream(ctx, op).Debug("storefront query done",
		zap.Int("status", rec.status),
		zap.Duration("duration", timer.Duration()),
	)
	return data, nil
}

func cacheKey(op string, r Request) string {
	vars, _ := json.Marshal(r.Variables)
	sum := sha256.Sum256([]byte(r.Query + "\x00" + string(vars)))
	return op + ":" + hex.EncodeToString(sum[:])
}
