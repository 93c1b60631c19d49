package search

// Hybrid selects the embedder serving a semantic or multimodal query and
// how to mix semantic and keyword ranking.
type Hybrid struct {
	// Embedder names a configured embedder on the index. Required whenever
	// the request carries media or a semantic ratio.
	Embedder string `json:"embedder"`

	// SemanticRatio balances semantic (1.0) against keyword (0.0) ranking.
	// The server defaults to 0.5 when omitted.
	SemanticRatio float64 `json:"semanticRatio,omitempty"`
}

// Request carries all search parameters for one query.
type Request struct {
	// Query is the conventional text query. Optional: a media-only request
	// is a complete, valid query.
	Query string `json:"q,omitempty"`

	// Media is the non-text query payload, e.g. {"text": "..."} or richer
	// modality-tagged documents. Requires Hybrid.Embedder.
	Media map[string]interface{} `json:"media,omitempty"`

	// Hybrid configures semantic search. Required when Media is set.
	Hybrid *Hybrid `json:"hybrid,omitempty"`

	Limit  int64 `json:"limit,omitempty"`
	Offset int64 `json:"offset,omitempty"`

	// Filter is a filter expression: a string, or nested arrays of strings.
	Filter interface{} `json:"filter,omitempty"`

	AttributesToRetrieve []string `json:"attributesToRetrieve,omitempty"`
	AttributesToSearchOn []string `json:"attributesToSearchOn,omitempty"`
	Sort                 []string `json:"sort,omitempty"`
	ShowRankingScore     bool     `json:"showRankingScore,omitempty"`
	RetrieveVectors      bool     `json:"retrieveVectors,omitempty"`
}

// Result is the answer to one search request. Hits are a finite, ordered,
// one-shot sequence: re-running the query is the only way to read them again.
type Result struct {
	Hits               []map[string]interface{} `json:"hits"`
	ProcessingTimeMs   int64                    `json:"processingTimeMs"`
	Limit              int64                    `json:"limit"`
	Offset             int64                    `json:"offset"`
	EstimatedTotalHits int64                    `json:"estimatedTotalHits"`
	Query              string                   `json:"query"`
	SemanticHitCount   *int64                   `json:"semanticHitCount,omitempty"`
}
