package shopify

import (
	"errors"
	"fmt"
)

var (
	ErrMissingStoreDomain = errors.New("shopify: store domain is not configured")
	ErrMissingAccessToken = errors.New("shopify: storefront access token is not configured")
)

// ConfigurationError is returned by NewClient when a required setting is
// missing.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string { return e.Err.Error() }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RemoteQueryError carries the first entry of the "errors" array returned by
// the Storefront API. It is never retried.
type RemoteQueryError struct {
	Message   string
	Cause     string
	Status    int
	Operation string
	Query     string
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("shopify: %s failed (status %d, cause %s): %s", e.Operation, e.Status, e.Cause, e.Message)
}

// TransportError covers network, timeout and decoding failures.
type TransportError struct {
	Err       error
	Operation string
	Query     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shopify: %s transport failure: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// QueryOf returns the query document attached to a fetch failure, if any.
func QueryOf(err error) (string, bool) {
	var remote *RemoteQueryError
	if errors.As(err, &remote) {
		return remote.Query, true
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport.Query, true
	}
	return "", false
}
