package robusthttp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type LeveledSlog struct {
	inner *slog.Logger
}

// re-writes HTTP client ERROR to WARN level (failed lookups are routine for a chat bot)
func (l LeveledSlog) Error(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Warn(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Info(msg string, keysAndValues ...any) {
	l.inner.Info(msg, keysAndValues...)
}

func (l LeveledSlog) Debug(msg string, keysAndValues ...any) {
	l.inner.Debug(msg, keysAndValues...)
}

// Per-request timeout used when WithTimeout is not given.
const DefaultTimeout = 10 * time.Second

type options struct {
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	timeout      time.Duration
	logger       *slog.Logger
	transport    http.RoundTripper
}

type Option func(*options)

// WithMaxRetries sets the maximum number of retries. The default is zero: a failed request is reported immediately.
func WithMaxRetries(maxRetries int) Option {
	return func(o *options) {
		o.maxRetries = maxRetries
	}
}

// WithRetryWait sets the backoff bounds used when retries are enabled.
func WithRetryWait(waitMin, waitMax time.Duration) Option {
	return func(o *options) {
		o.retryWaitMin = waitMin
		o.retryWaitMax = waitMax
	}
}

// WithTimeout sets the overall per-request timeout, including any retries.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger sets a custom logger for the HTTP client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport sets a custom transport. It is still wrapped with OpenTelemetry instrumentation.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// Generates an HTTP client for the XRPC and DID document lookups the bot makes.
//
// The returned client has the stdlib http.Client interface, with Hashicorp
// retryablehttp logic inside. Unlike most service clients, retries are off by
// default: a failed lookup turns into a failure reply right away. Responses
// with error status codes are passed through to the caller (not converted to
// errors) so that XRPC error bodies can still be decoded.
func NewClient(opts ...Option) *http.Client {
	o := options{
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		timeout:      DefaultTimeout,
		logger:       slog.Default(),
		transport:    cleanhttp.DefaultPooledTransport(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Transport = otelhttp.NewTransport(o.transport)
	retryClient.RetryMax = o.maxRetries
	retryClient.RetryWaitMin = o.retryWaitMin
	retryClient.RetryWaitMax = o.retryWaitMax
	retryClient.Logger = retryablehttp.LeveledLogger(LeveledSlog{inner: o.logger.With("subsystem", "RobustHTTPClient")})
	retryClient.CheckRetry = DefaultRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := retryClient.StandardClient()
	client.Timeout = o.timeout
	return client
}

// DefaultRetryPolicy is a custom wrapper around retryablehttp.DefaultRetryPolicy.
// It treats `429 Too Many Requests` as non-retryable; rate-limit responses are
// reported to the user like any other failure.
func DefaultRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
