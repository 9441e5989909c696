// Package pipeline runs the validate, render and cache steps shared by the
// CLI and the HTTP server.
//
// A record is validated first; only a record with no violations is
// rendered. Each requested view is looked up in the cache by a content
// hash of the record and render options, rendered on a miss, and stored.
// Cache failures never fail a render: they are logged and treated as
// misses.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, dims, pipeline.Options{View: pipeline.ViewBoth})
//	if errors.Is(err, errors.ErrCodeInvalidDimensions) {
//	    // result.Validation lists every violation
//	}
//	side, front := result.Side, result.Front
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/reeldesigner/pkg/cache"
	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/sink"
)

// View names.
const (
	ViewSide  = "side"
	ViewFront = "front"
	ViewBoth  = "both"
)

// DefaultCacheTTL is how long rendered markup stays cached.
const DefaultCacheTTL = 24 * time.Hour

// Options controls which views are rendered and how.
type Options struct {
	// View is "side", "front" or "both". Empty means both.
	View string `json:"view,omitempty"`
	// NoDrumRing omits the drum band and its dimension from the side view.
	NoDrumRing bool `json:"no_drum_ring,omitempty"`
	// Labels replaces the label table. Zero fields fall back to
	// [sink.DefaultLabels].
	Labels sink.Labels `json:"labels"`
	// Format is the number formatting policy. The zero value means
	// [sink.Invariant].
	Format sink.Format `json:"format"`
	// Refresh skips cache lookups but still stores fresh results.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills empty fields with their defaults.
func (o *Options) SetDefaults() {
	if o.View == "" {
		o.View = ViewBoth
	}
	o.Labels = o.Labels.Merge(sink.DefaultLabels())
	if o.Format == (sink.Format{}) {
		o.Format = sink.Invariant
	}
}

// Validate applies defaults and checks the option values.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := errors.ValidateView(o.View); err != nil {
		return err
	}
	if o.Format.MMDecimals < 0 || o.Format.UnitDecimals < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "decimal places must not be negative")
	}
	return nil
}

// Views expands View into the list of views to render, side first.
func (o Options) Views() []string {
	switch o.View {
	case ViewSide:
		return []string{ViewSide}
	case ViewFront:
		return []string{ViewFront}
	default:
		return []string{ViewSide, ViewFront}
	}
}

// svgOptions converts o into renderer options.
func (o Options) svgOptions() []sink.SVGOption {
	return []sink.SVGOption{
		sink.WithLabels(o.Labels),
		sink.WithFormat(o.Format),
		sink.WithDrumRing(!o.NoDrumRing),
	}
}

// keyOpts returns the cache key options for one view.
func (o Options) keyOpts(view string) cache.RenderKeyOpts {
	labels, _ := json.Marshal(o.Labels)
	return cache.RenderKeyOpts{
		View:       view,
		DrumRing:   view == ViewSide && !o.NoDrumRing,
		LabelsHash: cache.Hash(labels),
		Decimals:   [2]int{o.Format.MMDecimals, o.Format.UnitDecimals},
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dimensions is the record that was processed.
	Dimensions reel.Dimensions
	// Validation holds every violation found. Views are only rendered
	// when it is OK.
	Validation reel.Result
	// Side and Front hold the rendered markup of the requested views.
	Side  []byte
	Front []byte
	// Stats contains timing information.
	Stats Stats
	// CacheInfo tracks which views came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ValidateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per view.
type CacheInfo struct {
	SideHit  bool
	FrontHit bool
}

// AllHit reports whether every listed view came from the cache.
func (c CacheInfo) AllHit(views []string) bool {
	for _, v := range views {
		if v == ViewSide && !c.SideHit || v == ViewFront && !c.FrontHit {
			return false
		}
	}
	return true
}
