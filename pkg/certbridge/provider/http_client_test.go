package provider_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("auth_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"products":[]}`))
	}))
	defer server.Close()

	client := provider.NewClient(server.URL)
	resp, err := client.Get(context.Background(), "/products", url.Values{"auth_key": []string{"secret"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, resp.Parsed)
	assert.Equal(t, true, resp.Parsed["success"])
}

func TestClientClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"description":"invalid csr"}`))
	}))
	defer server.Close()

	client := provider.NewClient(server.URL)
	resp, err := client.Get(context.Background(), "/order", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "invalid csr", resp.Parsed["description"])
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := provider.NewClient(server.URL)
	resp, err := client.Get(context.Background(), "/products", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := provider.NewClient(server.URL, provider.WithAttempts(2))
	_, err := client.Get(context.Background(), "/products", nil)
	require.ErrorIs(t, err, model.ErrProviderUnreachable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClientPostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "example.com", r.PostForm.Get("domain"))
		_, _ = w.Write([]byte(`{"order_id":123}`))
	}))
	defer server.Close()

	client := provider.NewClient(server.URL)
	resp, err := client.PostForm(context.Background(), "/order", url.Values{"domain": []string{"example.com"}})
	require.NoError(t, err)
	assert.Equal(t, float64(123), resp.Parsed["order_id"])
}

func TestClientPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"domain":"example.com"}`, string(raw))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := provider.NewClient(server.URL)
	_, err := client.PostJSON(context.Background(), "/order", map[string]string{"domain": "example.com"})
	require.NoError(t, err)
}

func TestClientContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := provider.NewClient("http://127.0.0.1:1")
	_, err := client.Get(ctx, "/products", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMaskURL(t *testing.T) {
	masked := provider.MaskURL("https://api.example.com/v1/products?auth_key=abc&page=2")
	assert.NotContains(t, masked, "abc")
	assert.Contains(t, masked, "auth_key=%2A%2A%2A")
	assert.Contains(t, masked, "page=2")

	masked = provider.MaskURL("https://api.example.com/v1?api_key=k&password=p&token=t&secret=s&key=x")
	for _, leaked := range []string{"k", "p", "t", "s", "x"} {
		assert.NotContains(t, masked, "="+leaked)
	}

	// No credential parameters leaves the URL untouched.
	plain := "https://api.example.com/v1/products?page=2"
	assert.Equal(t, plain, provider.MaskURL(plain))
}
