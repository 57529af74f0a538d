package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, defaultTimeout, c.GetClient().Timeout)
	assert.Equal(t, defaultUserAgent, c.Header.Get("User-Agent"))
	assert.Equal(t, 0, c.RetryCount)
}

func TestCheckResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(Options{Timeout: time.Second})

	resp, err := c.R().SetContext(context.Background()).Get(srv.URL + "/ok")
	require.NoError(t, err)
	assert.NoError(t, CheckResponse(resp))

	resp, err = c.R().SetContext(context.Background()).Get(srv.URL + "/denied")
	require.NoError(t, err)

	err = CheckResponse(resp)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "403")
}

func TestNoRetryByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(Options{Timeout: time.Second})
	resp, err := c.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Error(t, CheckResponse(resp))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryWhenConfigured(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(Options{Timeout: time.Second, RetryCount: 3})
	c.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)

	resp, err := c.R().Get(srv.URL)
	require.NoError(t, err)
	assert.NoError(t, CheckResponse(resp))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
