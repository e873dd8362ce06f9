package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Policy describes how a client retries failed requests.
type Policy struct {
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// Retries is the number of additional attempts after the first one.
	Retries int
	// Wait is the delay before the first retry.
	Wait time.Duration
	// Backoff doubles the delay on every retry when true, otherwise the
	// delay stays fixed at Wait.
	Backoff bool
	// RetryStatus retries 429 and 5xx responses in addition to transport errors.
	RetryStatus bool
}

// UpstreamPolicy retries 429, 5xx and connection errors with exponential
// backoff, matching what the forecast APIs tolerate.
func UpstreamPolicy(timeout time.Duration, retries int, backoff time.Duration) Policy {
	return Policy{
		Timeout:     timeout,
		Retries:     retries,
		Wait:        backoff,
		Backoff:     true,
		RetryStatus: true,
	}
}

// TransportPolicy retries transport errors only, with a fixed delay.
func TransportPolicy(timeout time.Duration, attempts int, delay time.Duration) Policy {
	retries := attempts - 1
	if retries < 0 {
		retries = 0
	}
	return Policy{
		Timeout: timeout,
		Retries: retries,
		Wait:    delay,
	}
}

// Client is a GET-only HTTP client with a retry policy. One instance is
// built at startup and shared by the provider clients that need it.
type Client struct {
	retryable *retryablehttp.Client
	userAgent string
}

// New creates a client using the given policy. logger receives retry
// attempts at debug level.
func New(policy Policy, userAgent string, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: policy.Timeout}
	rc.RetryMax = policy.Retries
	rc.RetryWaitMin = policy.Wait
	rc.RetryWaitMax = policy.Wait
	if policy.Backoff {
		rc.RetryWaitMax = policy.Wait << policy.Retries
		rc.Backoff = retryablehttp.DefaultBackoff
	} else {
		rc.Backoff = fixedBackoff
	}
	if policy.RetryStatus {
		rc.CheckRetry = retryablehttp.DefaultRetryPolicy
	} else {
		rc.CheckRetry = transportOnly
	}
	// Hand the final response back to the caller instead of a generic
	// "giving up" error so status codes can be reported upstream.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	if logger != nil {
		rc.Logger = logger.With("component", "http-client")
	}

	return &Client{
		retryable: rc,
		userAgent: userAgent,
	}
}

// Get issues a GET request and returns the response. The caller closes the body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.retryable.Do(req)
}

// ReadErrorBody drains a non-2xx body into a string for error messages.
func ReadErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))
	return string(data)
}

func fixedBackoff(min, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return min
}

func transportOnly(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err == nil {
		return false, nil
	}
	// A canceled request context surfaces here as a transport error too
	if errors.Is(err, context.Canceled) {
		return false, err
	}
	return true, nil
}
