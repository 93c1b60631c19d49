package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunasearch/std/v1/observability"
)

// testObserver is a hand-rolled fake observer for tests.
type testObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *testObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *testObserver) Operations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(&Config{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 2,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	c, err := NewClient(&Config{BaseURL: "http://localhost:7700/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:7700", c.BaseURL())
}

func TestGetSetsAuthAndRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"available"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.Get(context.Background(), "/health", &out))

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "available", out.Status)
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"taskUid":1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out struct {
		TaskUID int64 `json:"taskUid"`
	}
	err := c.Post(context.Background(), "/indexes", map[string]string{"uid": "movies"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"uid":"movies"}`, string(gotBody))
	assert.Equal(t, int64(1), out.TaskUID)
}

func TestNon2xxDecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"embedder config is invalid","code":"invalid_settings_embedders","type":"invalid_request","link":"https://docs.example.com/errors"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Post(context.Background(), "/indexes/movies/settings/embedders", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid_settings_embedders", apiErr.Code)
	assert.Equal(t, "embedder config is invalid", apiErr.Message)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid API key","code":"invalid_api_key","type":"auth"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Get(context.Background(), "/tasks/1", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"task not found","code":"task_not_found","type":"invalid_request"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Get(context.Background(), "/tasks/999", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNonJSONErrorBodyKeptVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Post(context.Background(), "/indexes", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestGetRetriesTransportFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			// Kill the connection without a response.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"status":"available"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.Get(context.Background(), "/health", &out))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestMaxRetriesDefaultsWhenUnset(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 3 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"status":"available"}`))
	}))
	defer srv.Close()

	// No MaxRetries set: the documented default of 3 applies.
	c, err := NewClient(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	require.NoError(t, c.Get(context.Background(), "/health", nil))
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestGetDoesNotRetryAPIErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom","code":"internal","type":"internal"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Get(context.Background(), "/health", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostIsNeverRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	err := c.Post(context.Background(), "/indexes", map[string]string{"uid": "movies"}, nil)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestObserverSeesOperations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	obs := &testObserver{}
	c := newTestClient(t, srv.URL).WithObserver(obs)

	require.NoError(t, c.Get(context.Background(), "/health", nil))

	ops := obs.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "transport", ops[0].Component)
	assert.Equal(t, http.MethodGet, ops[0].Operation)
	assert.Equal(t, "/health", ops[0].Resource)
	assert.NoError(t, ops[0].Error)
}

func TestObserverNilIsSafe(t *testing.T) {
	var c *Client
	// Should not panic.
	c.observeOperation("GET", "/health", time.Millisecond, nil)
}
