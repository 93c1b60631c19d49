package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lunasearch/std/v1/embedders"
	"github.com/lunasearch/std/v1/search"
	"github.com/lunasearch/std/v1/tasks"
)

// Index is a handle on one index of the search service. It bundles the
// per-index services (embedder settings, search) and forwards task waiting
// to the shared tracker.
type Index struct {
	// UID is the index's unique identifier.
	UID string

	client    *Client
	embedders *embedders.Manager
	search    *search.Service
}

func newIndex(c *Client, uid string) *Index {
	idx := &Index{
		UID:    uid,
		client: c,
		search: search.NewService(c.http, uid),
	}

	m := embedders.NewManager(c.http, uid)
	if c.logger != nil {
		m.WithLogger(c.logger)
	}
	idx.embedders = m

	return idx
}

// Embedders returns the embedder configuration manager for this index.
func (i *Index) Embedders() *embedders.Manager {
	return i.embedders
}

// Search returns the search service for this index.
func (i *Index) Search() *search.Service {
	return i.search
}

// UpdateEmbedders merge-updates the index's embedder configurations.
// Shorthand for Embedders().Update.
func (i *Index) UpdateEmbedders(ctx context.Context, configs map[string]embedders.Config) (*tasks.TaskInfo, error) {
	return i.embedders.Update(ctx, configs)
}

// GetEmbedders fetches the full current embedder snapshot.
// Shorthand for Embedders().Get.
func (i *Index) GetEmbedders(ctx context.Context) (map[string]embedders.Config, error) {
	return i.embedders.Get(ctx)
}

// ResetEmbedders removes all embedders from the index.
// Shorthand for Embedders().Reset.
func (i *Index) ResetEmbedders(ctx context.Context) (*tasks.TaskInfo, error) {
	return i.embedders.Reset(ctx)
}

// SearchWithMedia runs a multimodal query against this index.
// Shorthand for Search().SearchWithMedia.
func (i *Index) SearchWithMedia(ctx context.Context, media map[string]interface{}, req *search.Request) (*search.Result, error) {
	return i.search.SearchWithMedia(ctx, media, req)
}

// AddDocuments adds or replaces documents. docs must marshal to a JSON
// array of objects. primaryKey may be empty when the index already knows
// its key. Asynchronous: indexing (and any embedding calls it triggers)
// happens in the returned task.
func (i *Index) AddDocuments(ctx context.Context, docs interface{}, primaryKey string) (*tasks.TaskInfo, error) {
	path := fmt.Sprintf("/indexes/%s/documents", i.UID)
	if primaryKey != "" {
		query := url.Values{}
		query.Set("primaryKey", primaryKey)
		path += "?" + query.Encode()
	}

	var info tasks.TaskInfo
	if err := i.client.http.Post(ctx, path, docs, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// WaitForTask polls a task until terminal. Shorthand for the shared
// tracker; see the tasks package for the full contract.
func (i *Index) WaitForTask(ctx context.Context, taskUID int64, opts ...tasks.WaitOption) (*tasks.Task, error) {
	return i.client.tracker.WaitForTask(ctx, taskUID, opts...)
}
