package handlers

import (
	"context"
	"errors"
	"net/http"

	"ambalaje-storefront/internal/category"
	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/menu"
	"ambalaje-storefront/internal/metrics"
	"ambalaje-storefront/internal/product"
	"ambalaje-storefront/internal/shopify"
	"ambalaje-storefront/internal/storefront"
	"ambalaje-storefront/internal/transport"
	"ambalaje-storefront/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Revalidator drops cached upstream responses by tag.
type Revalidator interface {
	Revalidate(tag string) int
}

type Handler struct {
	storefront  storefront.Service
	menus       menu.Service
	collections category.Service
	cache       Revalidator
}

func New(sf storefront.Service, menus menu.Service, collections category.Service, cache Revalidator) *Handler {
	return &Handler{storefront: sf, menus: menus, collections: collections, cache: cache}
}

// Routes mounts the API on r. guard wraps the revalidation webhook.
func (h *Handler) Routes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Get("/healthz", h.Health)
	r.Get("/metrics", h.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu/{handle}", h.GetMenu)
		r.Get("/produse", h.GetCatalog)
		r.Get("/produse/*", h.GetCatalog)
		r.Get("/search", h.Search)
		r.Get("/collections", h.GetCollections)
		r.Get("/sorting", h.GetSorting)
		r.With(guard).Post("/revalidate", h.Revalidate)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, metrics.Snapshot())
}

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.menus.GetMenu(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeFetchError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nodes)
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	params := transport.FromRequest(r, chi.URLParam(r, "*"))

	page, err := h.storefront.Catalog(r.Context(), params)
	if err != nil {
		writeFetchError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := transport.FromRequest(r, "")

	res, err := h.storefront.Search(r.Context(), params.Query, params.Sort)
	if err != nil {
		writeFetchError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collections.GetCollections(r.Context())
	if err != nil {
		writeFetchError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, collections)
}

func (h *Handler) GetSorting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, product.Sorting)
}

// writeFetchError hides upstream details from clients; the query document
// only goes to the log.
func writeFetchError(ctx context.Context, w http.ResponseWriter, err error) {
	fields := []zap.Field{zap.Error(err)}
	if q, ok := shopify.QueryOf(err); ok {
		fields = append(fields, zap.String("query", q))
	}
	logger.FromCtx(ctx).Error("catalog fetch failed", fields...)

	var cfgErr *shopify.ConfigurationError
	if errors.As(err, &cfgErr) {
		utils.WriteJSONError(w, "catalog is not configured", http.StatusInternalServerError)
		return
	}
	utils.WriteJSONError(w, "catalog unavailable", http.StatusBadGateway)
}
