// Package cache stores rendered diagrams keyed by the content that
// produced them.
//
// Rendering is cheap, but the HTTP server answers the same default or
// catalogue reels over and over; a content-addressed cache lets several
// server instances share results. Keys are SHA-256 hashes of the
// dimension record plus every option that changes the markup, so a cached
// entry can never be served for a different drawing.
//
// Backends:
//   - [NullCache]: caching disabled
//   - [FileCache]: one file per entry, for a single machine
//   - [RedisCache]: shared across server instances
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// Cache stores opaque byte slices under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored data and true on a hit, nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts lists the render options that change the markup.
type RenderKeyOpts struct {
	View       string `json:"view"`        // "side" or "front"
	DrumRing   bool   `json:"drum_ring"`   // side view drum band toggle
	LabelsHash string `json:"labels_hash"` // hash of the label table in use
	Decimals   [2]int `json:"decimals"`    // millimeter and unit decimal places
}

// Keyer generates cache keys.
type Keyer interface {
	// RenderKey generates a key for one rendered view of a record.
	RenderKey(d reel.Dimensions, opts RenderKeyOpts) string
}

// DefaultKeyer hashes the record and options into "render:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey generates a key for one rendered view of a record.
func (DefaultKeyer) RenderKey(d reel.Dimensions, opts RenderKeyOpts) string {
	return hashKey("render", d, opts)
}
