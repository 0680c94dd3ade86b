package shopify

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

type captureKey struct{}

// capture keeps the raw status and body of one round trip. The GraphQL client
// only surfaces the first error message; cause and status live in the body.
type capture struct {
	status int
	body   []byte
}

func withCapture(ctx context.Context, c *capture) context.Context {
	return context.WithValue(ctx, captureKey{}, c)
}

type recordingTransport struct {
	base http.RoundTripper
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	rec, ok := req.Context().Value(captureKey{}).(*capture)
	if !ok {
		return res, nil
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, err
	}

	rec.status = res.StatusCode
	rec.body = body
	res.Body = io.NopCloser(bytes.NewReader(body))
	return res, nil
}

// remoteError builds a RemoteQueryError from the captured body when it holds
// an "errors" member, or returns nil.
func remoteError(rec *capture, op, query string) *RemoteQueryError {
	if rec == nil || len(rec.body) == 0 {
		return nil
	}

	errs := gjson.GetBytes(rec.body, "errors")
	if !errs.Exists() {
		return nil
	}

	status := http.StatusInternalServerError
	if rec.status >= http.StatusBadRequest {
		status = rec.status
	}

	// 401/403 answers carry a bare string instead of a list.
	if errs.Type == gjson.String {
		return &RemoteQueryError{
			Message:   errs.String(),
			Cause:     "unknown",
			Status:    status,
			Operation: op,
			Query:     query,
		}
	}

	first := errs.Get("0")
	if !first.Exists() {
		return nil
	}

	cause := first.Get("cause").String()
	if cause == "" {
		cause = first.Get("extensions.code").String()
	}
	if cause == "" {
		cause = "unknown"
	}
	if s := first.Get("status").Int(); s > 0 {
		status = int(s)
	}

	return &RemoteQueryError{
		Message:   first.Get("message").String(),
		Cause:     cause,
		Status:    status,
		Operation: op,
		Query:     query,
	}
}
