package embedders

// Source names the backend an embedder delegates to.
type Source string

// Supported embedder sources.
const (
	SourceRest         Source = "rest"
	SourceOpenAI       Source = "openAi"
	SourceHuggingFace  Source = "huggingFace"
	SourceOllama       Source = "ollama"
	SourceUserProvided Source = "userProvided"
	SourceComposite    Source = "composite"
)

// Fragment is a named sub-template used to extract one field or modality
// from a document (indexing side) or a query (search side) for separate
// embedding. The value is a template string or a nested template document,
// e.g. {"value": "{{doc.title}}"}.
type Fragment struct {
	Value interface{} `json:"value"`
}

// Distribution shifts the affine transformation applied to similarity
// scores of this embedder.
type Distribution struct {
	Mean  float64 `json:"mean"`
	Sigma float64 `json:"sigma"`
}

// Config is one named embedder's settings.
//
// All optional fields are pointers or nil-able maps so that a partial Config
// submitted through Manager.Update only carries the keys the caller set:
// the service merges per embedder, and omitted keys keep their server-side
// value. APIKey is write-only on the wire: the service never echoes it back
// on Get.
//
// DocumentTemplate and the fragment maps are mutually exclusive: an embedder
// either renders whole documents through one template, or splits them into
// typed fragments (multimodal). Validate enforces this before submission.
type Config struct {
	// Source selects the embedding backend. Required on creation.
	Source Source `json:"source,omitempty"`

	// URL of the embedding endpoint. Required for rest sources.
	URL string `json:"url,omitempty"`

	// APIKey authenticates against the embedding backend. Write-only.
	APIKey string `json:"apiKey,omitempty"`

	// Model names the backend model, for sources that take one.
	Model string `json:"model,omitempty"`

	// Dimensions is the embedding vector width. Must be positive when set;
	// required for userProvided sources.
	Dimensions *int `json:"dimensions,omitempty"`

	// DocumentTemplate renders a document into the text that gets embedded.
	// Mutually exclusive with the fragment maps.
	DocumentTemplate *string `json:"documentTemplate,omitempty"`

	// DocumentTemplateMaxBytes truncates rendered templates.
	DocumentTemplateMaxBytes *int `json:"documentTemplateMaxBytes,omitempty"`

	// IndexingFragments maps fragment-type names to the template extracting
	// that fragment from documents at indexing time.
	IndexingFragments map[string]Fragment `json:"indexingFragments,omitempty"`

	// SearchFragments maps fragment-type names to the template matching
	// that fragment in queries. An indexing fragment key without a search
	// counterpart is stored but not queryable.
	SearchFragments map[string]Fragment `json:"searchFragments,omitempty"`

	// Request is the body template sent to a rest embedding backend.
	// Required when Source is rest.
	Request map[string]interface{} `json:"request,omitempty"`

	// Response is the template locating the embedding in a rest backend's
	// answer. Required when Source is rest.
	Response map[string]interface{} `json:"response,omitempty"`

	// Headers are extra HTTP headers sent to a rest embedding backend.
	Headers map[string]string `json:"headers,omitempty"`

	// Distribution adjusts score normalization for this embedder.
	Distribution *Distribution `json:"distribution,omitempty"`

	// BinaryQuantized stores vectors as single bits when true. Irreversible
	// once documents are indexed.
	BinaryQuantized *bool `json:"binaryQuantized,omitempty"`
}

// HasFragments reports whether the config carries any fragment maps.
func (c *Config) HasFragments() bool {
	return len(c.IndexingFragments) > 0 || len(c.SearchFragments) > 0
}
