package scapegoat

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/scapegoat/bst"
)

// Config configures a scapegoat tree.
type Config[K any] struct {
	// Compare defines a total order on keys. Required.
	Compare func(a, b K) int
	// OnRebuild, if set, is called synchronously after every rebuild.
	OnRebuild func(RebuildEvent)
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrIllegalArguments)
	}
	return nil
}

func (cfg Config[K]) base() bst.Config[K] {
	return bst.Config[K]{Compare: cfg.Compare}
}

// Option tweaks the configuration of trees created by NewOrdered.
type Option[K any] func(*Config[K])

// WithRebuildHook installs fn as Config.OnRebuild.
func WithRebuildHook[K any](fn func(RebuildEvent)) Option[K] {
	return func(cfg *Config[K]) {
		cfg.OnRebuild = fn
	}
}

// OrderedConfig returns a configuration comparing keys with cmp.Compare.
func OrderedConfig[K cmp.Ordered](opts ...Option[K]) Config[K] {
	cfg := Config[K]{Compare: cmp.Compare[K]}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
