package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunasearch/std/v1/transport"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tc, err := transport.NewClient(&transport.Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return NewService(tc, "profiles")
}

func TestSearchPostsToIndexRoute(t *testing.T) {
	var gotPath string
	var gotBody []byte
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(Result{
			Hits:               []map[string]interface{}{{"id": float64(1), "title": "Dune"}},
			Query:              "dune",
			Limit:              20,
			EstimatedTotalHits: 1,
			ProcessingTimeMs:   3,
		})
	})

	res, err := svc.Search(context.Background(), "dune", nil)
	require.NoError(t, err)

	assert.Equal(t, "/indexes/profiles/search", gotPath)
	assert.JSONEq(t, `{"q":"dune"}`, string(gotBody))

	require.Len(t, res.Hits, 1)
	assert.Equal(t, "Dune", res.Hits[0]["title"])
	assert.Equal(t, int64(1), res.EstimatedTotalHits)
	assert.Equal(t, int64(20), res.Limit)
	assert.Equal(t, int64(3), res.ProcessingTimeMs)
	assert.Equal(t, "dune", res.Query)
}

func TestSearchCarriesRequestParameters(t *testing.T) {
	var gotBody []byte
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(Result{})
	})

	_, err := svc.Search(context.Background(), "space", &Request{
		Limit:                5,
		Offset:               10,
		Filter:               "genre = scifi",
		AttributesToRetrieve: []string{"title"},
		ShowRankingScore:     true,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"q": "space",
		"limit": 5,
		"offset": 10,
		"filter": "genre = scifi",
		"attributesToRetrieve": ["title"],
		"showRankingScore": true
	}`, string(gotBody))
}

func TestSearchDoesNotMutateCallerRequest(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Result{})
	})

	req := &Request{Limit: 5}
	_, err := svc.Search(context.Background(), "dune", req)
	require.NoError(t, err)
	assert.Empty(t, req.Query)
}

func TestEmptyQueryIsValid(t *testing.T) {
	var gotBody []byte
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(Result{EstimatedTotalHits: 42})
	})

	// Placeholder search: no text, no media, returns everything.
	res, err := svc.Search(context.Background(), "", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(gotBody))
	assert.Equal(t, int64(42), res.EstimatedTotalHits)
}

func TestSearchWithMedia(t *testing.T) {
	var gotBody []byte
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		count := int64(2)
		_ = json.NewEncoder(w).Encode(Result{
			Hits: []map[string]interface{}{
				{"id": float64(7)},
				{"id": float64(9)},
			},
			EstimatedTotalHits: 2,
			SemanticHitCount:   &count,
		})
	})

	res, err := svc.SearchWithMedia(context.Background(),
		map[string]interface{}{"text": "space exploration"},
		&Request{Hybrid: &Hybrid{Embedder: "multimodal", SemanticRatio: 1.0}},
	)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"media": {"text": "space exploration"},
		"hybrid": {"embedder": "multimodal", "semanticRatio": 1.0}
	}`, string(gotBody))

	assert.Len(t, res.Hits, 2)
	require.NotNil(t, res.SemanticHitCount)
	assert.Equal(t, int64(2), *res.SemanticHitCount)
}

func TestSearchWithMediaRequiresEmbedder(t *testing.T) {
	called := false
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_ = json.NewEncoder(w).Encode(Result{})
	})

	media := map[string]interface{}{"image": "base64..."}

	_, err := svc.SearchWithMedia(context.Background(), media, nil)
	assert.True(t, errors.Is(err, ErrMissingEmbedder))

	_, err = svc.SearchWithMedia(context.Background(), media, &Request{Hybrid: &Hybrid{}})
	assert.True(t, errors.Is(err, ErrMissingEmbedder))

	assert.False(t, called, "missing embedder is rejected before the wire")
}

func TestSearchWithMediaServerRejection(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"embedder has no search fragment for modality image","code":"invalid_search_media","type":"invalid_request"}`))
	})

	_, err := svc.SearchWithMedia(context.Background(),
		map[string]interface{}{"image": "base64..."},
		&Request{Hybrid: &Hybrid{Embedder: "multimodal"}},
	)
	require.Error(t, err)

	apiErr, ok := transport.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_search_media", apiErr.Code)
}
