package search

import (
	"context"
	"fmt"

	"github.com/lunasearch/std/v1/transport"
)

// Service issues search queries against one index.
type Service struct {
	http     *transport.Client
	indexUID string
}

// NewService constructs a search Service for the given index.
func NewService(http *transport.Client, indexUID string) *Service {
	return &Service{http: http, indexUID: indexUID}
}

// IndexUID returns the index this service queries.
func (s *Service) IndexUID() string {
	return s.indexUID
}

func (s *Service) searchPath() string {
	return fmt.Sprintf("/indexes/%s/search", s.indexUID)
}

// Search runs a text query with optional extra parameters. req may be nil
// for a plain query with server defaults.
func (s *Service) Search(ctx context.Context, query string, req *Request) (*Result, error) {
	var body Request
	if req != nil {
		body = *req
	}
	body.Query = query

	return s.post(ctx, &body)
}

// SearchWithMedia runs a multimodal query: media is the complete query
// payload and no text query is required. The request must name the embedder
// serving it via req.Hybrid.Embedder; an embedder lacking fragment or
// template configuration for the requested modality is rejected by the
// service with a structured error, never a silent empty result.
func (s *Service) SearchWithMedia(ctx context.Context, media map[string]interface{}, req *Request) (*Result, error) {
	var body Request
	if req != nil {
		body = *req
	}
	body.Media = media

	if body.Hybrid == nil || body.Hybrid.Embedder == "" {
		return nil, ErrMissingEmbedder
	}

	return s.post(ctx, &body)
}

func (s *Service) post(ctx context.Context, body *Request) (*Result, error) {
	var result Result
	if err := s.http.Post(ctx, s.searchPath(), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
