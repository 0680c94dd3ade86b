package handlers

import (
	"net/http"
	"strings"
	"time"

	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/shopify"
	"ambalaje-storefront/internal/utils"

	"go.uber.org/zap"
)

const TopicHeader = "X-Shopify-Topic"

type revalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Tag         string `json:"tag,omitempty"`
	Removed     int    `json:"removed"`
	Now         int64  `json:"now"`
}

// Revalidate handles Shopify webhooks: collection topics drop everything
// tagged "collections", product topics everything tagged "products". Other
// topics are acknowledged without effect.
func (h *Handler) Revalidate(w http.ResponseWriter, r *http.Request) {
	topic := r.Header.Get(TopicHeader)
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("method", "Revalidate"),
		zap.String("topic", topic),
	)

	tag := tagForTopic(topic)
	if tag == "" {
		log.Info("ignoring webhook topic")
		utils.WriteJSON(w, http.StatusOK, revalidateResponse{Now: time.Now().UnixMilli()})
		return
	}

	removed := h.cache.Revalidate(tag)
	log.Info("revalidated", zap.String("tag", tag), zap.Int("removed", removed))

	utils.WriteJSON(w, http.StatusOK, revalidateResponse{
		Revalidated: true,
		Tag:         tag,
		Removed:     removed,
		Now:         time.Now().UnixMilli(),
	})
}

func tagForTopic(topic string) string {
	switch {
	case strings.HasPrefix(topic, "collections/"):
		return shopify.TagCollections
	case strings.HasPrefix(topic, "products/"):
		return shopify.TagProducts
	default:
		return ""
	}
}
