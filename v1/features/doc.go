// Package features manages the search service's experimental feature flags.
//
// Flags are process-wide server state: enabling multimodal here affects
// every client of the same server. Updates are merges (only the fields set
// in Flags are sent) and the server answers with the complete resulting
// Snapshot, so a caller always reads its own write:
//
//	fc := features.NewClient(httpClient)
//
//	snap, err := fc.EnableMultimodal(ctx)
//	// snap.Multimodal == true
//
// Enable/Disable helpers are idempotent; calling them twice in a row is safe
// and returns the same snapshot.
package features
