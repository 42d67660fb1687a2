package analytics

import (
	"context"
	"fmt"
	"time"

	xhttp "FxPulse/pkg/http"
)

// HTTPServiceBase is the shared JSON-over-HTTP client for remote analytics
// services. It owns the retry policy.
type HTTPServiceBase struct {
	baseURL  string
	client   *xhttp.Client
	attempts int
	backoff  time.Duration
	// onAttempt sees the outcome of every try, nil on success.
	onAttempt func(err error)
}

func NewHTTPServiceBase(baseURL string, timeout time.Duration, attempts int, backoff time.Duration) *HTTPServiceBase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if attempts < 1 {
		attempts = 1
	}
	return &HTTPServiceBase{
		baseURL:  baseURL,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		attempts: attempts,
		backoff:  backoff,
	}
}

// PostJSON posts payload to path under baseURL and decodes JSON into dest.
func (b *HTTPServiceBase) PostJSON(ctx context.Context, path string, headers map[string]string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("analytics http client not initialized")
	}
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     b.baseURL + path,
		Headers: h,
		Body:    payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// PostJSONWithRetry retries transient failures with a doubling backoff.
// Anything else returns on the first failure.
func (b *HTTPServiceBase) PostJSONWithRetry(ctx context.Context, path string, headers map[string]string, payload interface{}, dest interface{}) error {
	delay := b.backoff
	var err error
	for i := 1; i <= b.attempts; i++ {
		err = b.PostJSON(ctx, path, headers, payload, dest)
		if b.onAttempt != nil {
			b.onAttempt(err)
		}
		if err == nil {
			return nil
		}
		if i == b.attempts || !xhttp.IsTransient(err) {
			return err
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}
