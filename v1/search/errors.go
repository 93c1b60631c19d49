package search

import "errors"

// Common search errors.
var (
	// ErrMissingEmbedder is returned when a media query is issued without
	// naming the embedder that should serve it (Hybrid.Embedder).
	ErrMissingEmbedder = errors.New("search: media queries require hybrid.embedder")
)
