package middleware

import (
	"net/http"

	"ambalaje-storefront/internal/auth"
	"ambalaje-storefront/internal/logger"
	"ambalaje-storefront/internal/utils"

	"go.uber.org/zap"
)

// RequireSecret answers 401 unless the request carries secret.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.SecretMatches(auth.ExtractSecret(r), secret) {
				logger.FromCtx(r.Context()).Warn("invalid revalidation secret",
					zap.String("path", r.URL.Path),
				)
				utils.WriteJSONError(w, "invalid secret", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
