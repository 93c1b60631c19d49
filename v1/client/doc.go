// Package client is the entrypoint of the Luna Search Go SDK.
//
// A Client is built once from an immutable transport.Config (base URL, API
// key) and then shared freely across goroutines. Per-index operations hang
// off Index handles:
//
//	c, err := client.New(&transport.Config{
//	    BaseURL: "http://localhost:7700",
//	    APIKey:  os.Getenv("LUNA_API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Enable the multimodal feature (server-wide).
//	if _, err := c.ExperimentalFeatures().EnableMultimodal(ctx); err != nil {
//	    return err
//	}
//
//	// Configure a fragment-based embedder on an index.
//	idx := c.Index("profiles")
//	info, err := idx.UpdateEmbedders(ctx, map[string]embedders.Config{...})
//	if err != nil {
//	    return err
//	}
//
//	// Settings changes are asynchronous tasks.
//	task, err := c.WaitForTask(ctx, info.TaskUID)
//	if err != nil {
//	    return err
//	}
//	if err := task.Err(); err != nil {
//	    return err
//	}
//
//	// Query with media instead of text.
//	res, err := idx.SearchWithMedia(ctx,
//	    map[string]interface{}{"text": "space exploration"},
//	    &search.Request{Hybrid: &search.Hybrid{Embedder: "default"}},
//	)
//
// Observability is opt-in through options: WithLogger threads a zap-backed
// logger through the transport, WithObserver records every operation (see
// v1/metrics for the Prometheus implementation).
package client
