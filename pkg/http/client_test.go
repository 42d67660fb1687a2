package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParse_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("overloaded"))
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, &out)
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "overloaded", se.Body)
	assert.True(t, IsTransient(err))
}

func TestSendAndParse_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "1", r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{
		Method:      MethodPost,
		URL:         srv.URL,
		QueryParams: map[string][]string{"t": {"1"}},
		Body:        map[string]int{"a": 1},
	}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(errors.New("bad json")))
	assert.False(t, IsTransient(&StatusError{Code: http.StatusBadRequest}))
	assert.True(t, IsTransient(&StatusError{Code: http.StatusTooManyRequests}))
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", &StatusError{Code: http.StatusBadGateway})))
	assert.True(t, IsTransient(context.DeadlineExceeded))

	// nothing listens on a closed server
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()
	_, err := NewClient().SendRequest(context.Background(), &RequestOptions{Method: MethodGet, URL: addr})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}
