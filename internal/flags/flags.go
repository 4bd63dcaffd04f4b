// Package flags provides feature flag support. Flags are read-only after
// initialization and unknown flags are off.
package flags

import (
	"maps"

	"github.com/zjrosen/clipedit/internal/log"
)

const (
	// FlagMouseToolbar makes the toolbar buttons clickable.
	FlagMouseToolbar = "mouse-toolbar"

	// FlagMarkdownHelp renders the help overlay through glamour instead of
	// plain text.
	FlagMarkdownHelp = "markdown-help"
)

// Defaults returns the flag values used when the config sets none.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagMouseToolbar: true,
		FlagMarkdownHelp: true,
	}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from Defaults overridden by configured.
func New(configured map[string]bool) *Registry {
	flags := Defaults()
	maps.Copy(flags, configured)
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on. Unknown flags and a nil
// registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name)
	}
	return value
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return map[string]bool{}
	}
	return maps.Clone(r.flags)
}
