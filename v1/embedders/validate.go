package embedders

import "fmt"

// Validate checks the config invariants that can be decided client-side,
// before any bytes hit the wire:
//
//   - documentTemplate and fragment maps are mutually exclusive
//   - fragments are only valid on rest sources
//   - rest sources need request and response templates
//   - dimensions, when set, must be positive
//
// Because Update is a merge, a partial config may omit Source (and any other
// field) to keep the server-side value. Rules that depend on an omitted field
// cannot be decided client-side and are left to the server.
//
// Feature gating (fragments require the multimodal flag) is deliberately
// NOT checked here: the client cannot know the server's flag state without
// racing against other clients, so that invariant surfaces as a failed task
// (tasks.ErrFeatureNotEnabled via Task.Err).
func (c *Config) Validate() error {
	if c.DocumentTemplate != nil && c.HasFragments() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrTemplateFragmentConflict)
	}

	if c.HasFragments() && c.Source != "" && c.Source != SourceRest {
		return fmt.Errorf("%w: %w: source is %q", ErrInvalidConfig, ErrFragmentsRequireRest, c.Source)
	}

	if c.Source == SourceRest && (c.Request == nil || c.Response == nil) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingRestTemplates)
	}

	if c.Dimensions != nil && *c.Dimensions <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, ErrInvalidDimensions, *c.Dimensions)
	}

	return nil
}

// UnqueryableFragments returns the indexing fragment keys that have no
// search-side matcher. Such keys are stored by the service but cannot be
// queried; surfacing them lets callers log a warning instead of debugging
// silent empty results later.
func (c *Config) UnqueryableFragments() []string {
	if len(c.IndexingFragments) == 0 {
		return nil
	}

	var missing []string
	for key := range c.IndexingFragments {
		if _, ok := c.SearchFragments[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
