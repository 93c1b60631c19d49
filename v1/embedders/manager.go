package embedders

import (
	"context"
	"fmt"

	"github.com/lunasearch/std/v1/tasks"
	"github.com/lunasearch/std/v1/transport"
)

// Logger defines the logging operations the embedders package needs.
// *logger.Logger from v1/logger satisfies this interface.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Manager validates and submits embedder configurations for one index.
//
// The manager holds no state beyond the index UID: every Get round-trips to
// the service and Update is a server-side merge, so concurrent managers for
// the same index follow last-write-wins exactly like the server itself.
type Manager struct {
	http     *transport.Client
	indexUID string
	logger   Logger
}

// NewManager constructs a Manager for the given index.
func NewManager(http *transport.Client, indexUID string) *Manager {
	return &Manager{http: http, indexUID: indexUID}
}

// WithLogger attaches a logger and returns the same manager for chaining.
func (m *Manager) WithLogger(logger Logger) *Manager {
	m.logger = logger
	return m
}

// IndexUID returns the index this manager operates on.
func (m *Manager) IndexUID() string {
	return m.indexUID
}

func (m *Manager) settingsPath() string {
	return fmt.Sprintf("/indexes/%s/settings/embedders", m.indexUID)
}

// Update submits a merge-style update of the index's embedders: for each
// named entry, fields present in the partial config overwrite, absent fields
// keep their server-side value, and new names create new embedders. Deleting
// an embedder goes through the service's replace/reset paths, not Update.
//
// Every entry is validated client-side first (see Config.Validate); a
// validation failure is returned synchronously and nothing is sent. Feature
// gating is left to the server and surfaces as a failed task.
//
// The returned TaskInfo tracks the asynchronous settings change; pass its
// TaskUID to tasks.Tracker.WaitForTask.
func (m *Manager) Update(ctx context.Context, configs map[string]Config) (*tasks.TaskInfo, error) {
	for name, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("embedder %q: %w", name, err)
		}
		if missing := cfg.UnqueryableFragments(); len(missing) > 0 && m.logger != nil {
			m.logger.Warn("indexing fragments without search matchers are not queryable", nil, map[string]interface{}{
				"index":    m.indexUID,
				"embedder": name,
				"keys":     missing,
			})
		}
	}

	var info tasks.TaskInfo
	if err := m.http.Patch(ctx, m.settingsPath(), configs, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Get fetches the full current snapshot of the index's embedders, keyed by
// embedder name. Entries configured with fragments expose both fragment maps
// as non-nil; entries without fragments leave them nil. API keys are never
// present: the service treats them as write-only.
func (m *Manager) Get(ctx context.Context) (map[string]Config, error) {
	configs := map[string]Config{}
	if err := m.http.Get(ctx, m.settingsPath(), &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// Reset removes all embedders from the index, restoring the default
// (empty) embedder settings. Asynchronous like every settings change.
func (m *Manager) Reset(ctx context.Context) (*tasks.TaskInfo, error) {
	var info tasks.TaskInfo
	if err := m.http.Delete(ctx, m.settingsPath(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}
