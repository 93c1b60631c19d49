// Package embedders manages the embedder configurations of a search index.
//
// An embedder names a way to turn documents and queries into vectors: which
// backend to call (Source), how to address it (URL, APIKey, Request/Response
// templates for rest sources), and how to extract the text or media to embed.
// Extraction takes exactly one of two shapes:
//
//   - DocumentTemplate: one template rendering the whole document
//   - IndexingFragments + SearchFragments: named per-modality templates
//     (multimodal; requires the server's multimodal experimental feature)
//
// Setting both is invalid and rejected client-side by Config.Validate.
//
// Updates are merges:
//
//	m := embedders.NewManager(httpClient, "profiles")
//
//	info, err := m.Update(ctx, map[string]embedders.Config{
//	    "default": {
//	        Source: embedders.SourceRest,
//	        URL:    "http://localhost:8000/embed",
//	        IndexingFragments: map[string]embedders.Fragment{
//	            "text": {Value: "{{doc.title}}"},
//	        },
//	        SearchFragments: map[string]embedders.Fragment{
//	            "text": {Value: "{{fragment}}"},
//	        },
//	        Request:  map[string]interface{}{"input": []string{"{{fragment}}"}},
//	        Response: map[string]interface{}{"data": []interface{}{map[string]interface{}{"embedding": "{{embedding}}"}}},
//	    },
//	})
//
// Only the keys present in each entry change; a later Update touching just
// IndexingFragments leaves url and dimensions as they were. The change is
// asynchronous: wait on the returned task and check Task.Err, which reports
// feature gating failures as tasks.ErrFeatureNotEnabled.
package embedders
