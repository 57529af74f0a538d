package client

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "vacancysleuth/1.0 (+https://github.com/fr4nk3nst1ner/vacancysleuth)"
)

// Options configures the HTTP client shared by the sources
type Options struct {
	Timeout    time.Duration
	RetryCount int
	ProxyURL   string
	UserAgent  string
}

// StatusError is returned when an API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// New creates a resty client. Retries are disabled unless RetryCount is set,
// so the first failed request ends the run.
func New(opts Options) *resty.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	c := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")

	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
			})
	}

	// Skip a malformed proxy rather than failing, same as the direct client
	if opts.ProxyURL != "" {
		if _, err := url.Parse(opts.ProxyURL); err == nil {
			c.SetProxy(opts.ProxyURL)
		}
	}

	return c
}

// CheckResponse turns a non-2xx response into a *StatusError
func CheckResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &StatusError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		URL:        resp.Request.URL,
	}
}
