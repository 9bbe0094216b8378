package classifier

import (
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"
)

const (
	// Default retry configuration
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 20 * time.Second
)

// RetryConfig bounds the retry-with-backoff behavior of the HTTP client.
// Zero values fall back to the defaults above.
type RetryConfig struct {
	// Count is the number of retries after the initial attempt.
	Count int
	// WaitTime is the base delay; resty doubles it per attempt.
	WaitTime time.Duration
	// MaxWaitTime caps the delay between attempts.
	MaxWaitTime time.Duration
}

// NewHTTPClient creates an HTTP client with retry logic and exponential
// backoff for talking to the completion service. Retry attempts are
// logged at debug level through the given logger.
func NewHTTPClient(baseURL string, cfg RetryConfig, log zerolog.Logger) *resty.Client {
	if cfg.Count <= 0 {
		cfg.Count = defaultRetryCount
	}
	if cfg.WaitTime <= 0 {
		cfg.WaitTime = defaultRetryWaitTime
	}
	if cfg.MaxWaitTime <= 0 {
		cfg.MaxWaitTime = defaultRetryMaxWaitTime
	}

	// Completion calls are read-only on the remote side, so POSTs may
	// be retried.
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetAllowNonIdempotentRetry(true).
		SetRetryCount(cfg.Count).
		SetRetryWaitTime(cfg.WaitTime).
		SetRetryMaxWaitTime(cfg.MaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(newRetryHook(log))

	return client
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	// Retry on server errors (5xx)
	if r.StatusCode() >= 500 {
		return true
	}

	// Retry on rate limit (429)
	if r.StatusCode() == 429 {
		return true
	}

	// Retry on request timeout (408)
	if r.StatusCode() == 408 {
		return true
	}

	// Don't retry on client errors (4xx except 429)
	if r.StatusCode() >= 400 && r.StatusCode() < 500 {
		return false
	}

	return false
}

// newRetryHook logs retry attempts for observability
func newRetryHook(log zerolog.Logger) func(*resty.Response, error) {
	return func(r *resty.Response, err error) {
		if err != nil {
			log.Debug().
				Str("url", r.Request.URL).
				Int("attempt", r.Request.Attempt).
				Err(err).
				Msg("retrying request due to error")
			return
		}

		log.Debug().
			Str("url", r.Request.URL).
			Int("attempt", r.Request.Attempt).
			Int("status_code", r.StatusCode()).
			Msg("retrying request due to status code")
	}
}
