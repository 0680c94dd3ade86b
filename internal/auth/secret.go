package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const SecretHeader = "X-Revalidate-Secret"

// ExtractSecret reads the webhook secret from the "secret" query parameter,
// falling back to the X-Revalidate-Secret header.
func ExtractSecret(r *http.Request) string {
	if s := r.URL.Query().Get("secret"); s != "" {
		return s
	}
	return strings.TrimSpace(r.Header.Get(SecretHeader))
}

// SecretMatches compares in constant time. An empty want never matches.
func SecretMatches(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
