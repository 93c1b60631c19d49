// Package search issues queries against a search index, including
// multimodal queries where the payload is media instead of (or alongside)
// text.
//
//	svc := search.NewService(httpClient, "movies")
//
//	res, err := svc.SearchWithMedia(ctx,
//	    map[string]interface{}{"text": "space exploration"},
//	    &search.Request{Hybrid: &search.Hybrid{Embedder: "default"}},
//	)
//
// Media queries require naming the serving embedder; the client rejects a
// media request without one (ErrMissingEmbedder) before any round trip.
// Whether the named embedder can actually serve the requested modality is
// the server's call and surfaces as a *transport.APIError.
package search
