package cache

import "github.com/matzehuels/reeldesigner/pkg/reel"

// ScopedKeyer wraps a Keyer with a prefix so several deployments (or
// application versions whose markup differs) can share one Redis without
// reading each other's entries.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "reeldesigner:v2:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(d reel.Dimensions, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(d, opts)
}
