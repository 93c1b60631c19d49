package features

// Flags is a partial update of the server's experimental feature switches.
// Only non-nil fields are sent, so an update never touches flags the caller
// did not mention. The typed fields make unknown flag names unrepresentable;
// the server rejects unknown keys rather than silently accepting typos.
type Flags struct {
	// Multimodal gates fragment-based embedder configuration and media
	// search payloads.
	Multimodal *bool `json:"multimodal,omitempty"`

	// VectorStore gates vector storage and hybrid search.
	VectorStore *bool `json:"vectorStore,omitempty"`

	// Metrics gates the /metrics endpoint on the server.
	Metrics *bool `json:"metrics,omitempty"`

	// LogsRoute gates the /logs route on the server.
	LogsRoute *bool `json:"logsRoute,omitempty"`

	// ContainsFilter gates the CONTAINS filter operator.
	ContainsFilter *bool `json:"containsFilter,omitempty"`

	// EditDocumentsByFunction gates function-based document edits.
	EditDocumentsByFunction *bool `json:"editDocumentsByFunction,omitempty"`
}

// Snapshot is the full flag state the server reports after a Get or Update.
// Every field is concrete: the server always answers with the complete set.
type Snapshot struct {
	Multimodal              bool `json:"multimodal"`
	VectorStore             bool `json:"vectorStore"`
	Metrics                 bool `json:"metrics"`
	LogsRoute               bool `json:"logsRoute"`
	ContainsFilter          bool `json:"containsFilter"`
	EditDocumentsByFunction bool `json:"editDocumentsByFunction"`
}

// boolPtr is a small helper for building Flags literals.
func boolPtr(v bool) *bool {
	return &v
}
