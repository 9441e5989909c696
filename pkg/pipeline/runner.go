package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reeldesigner/pkg/cache"
	"github.com/matzehuels/reeldesigner/pkg/observability"
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner keeps no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	CacheTTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means [cache.DefaultKeyer] and a nil logger means [log.Default].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		CacheTTL: DefaultCacheTTL,
	}
}

// Validate checks d and reports the result to the pipeline hooks.
func (r *Runner) Validate(ctx context.Context, d reel.Dimensions) reel.Result {
	start := time.Now()
	res := reel.Validate(d)
	observability.Pipeline().OnValidate(ctx, len(res.Violations), time.Since(start))
	return res
}

// Execute validates d and renders the requested views.
//
// An invalid record yields a Result carrying the violations together with
// an INVALID_DIMENSIONS error; no markup is produced in that case.
func (r *Runner) Execute(ctx context.Context, d reel.Dimensions, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Dimensions: d}

	validateStart := time.Now()
	result.Validation = r.Validate(ctx, d)
	result.Stats.ValidateTime = time.Since(validateStart)
	if !result.Validation.OK() {
		r.Logger.Debug("rejected dimensions", "violations", len(result.Validation.Violations))
		return result, result.Validation.Err()
	}

	renderStart := time.Now()
	for _, view := range opts.Views() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		svg, hit := r.RenderView(ctx, d, view, opts)
		switch view {
		case ViewSide:
			result.Side, result.CacheInfo.SideHit = svg, hit
		case ViewFront:
			result.Front, result.CacheInfo.FrontHit = svg, hit
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered views",
		"view", opts.View,
		"cached", result.CacheInfo.AllHit(opts.Views()),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderView renders one view of a record that already passed validation,
// consulting the cache first. It reports whether the markup was a cache
// hit. opts must have been validated.
func (r *Runner) RenderView(ctx context.Context, d reel.Dimensions, view string, opts Options) ([]byte, bool) {
	key := r.Keyer.RenderKey(d, opts.keyOpts(view))

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.cacheError(ctx, "get", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, view)
			return data, true
		}
		observability.Cache().OnCacheMiss(ctx, view)
	}

	observability.Pipeline().OnRenderStart(ctx, view)
	start := time.Now()
	svg := render(d, view, opts.svgOptions())
	observability.Pipeline().OnRenderComplete(ctx, view, len(svg), time.Since(start), nil)

	if err := r.Cache.Set(ctx, key, svg, r.CacheTTL); err != nil {
		r.cacheError(ctx, "set", err)
	} else {
		observability.Cache().OnCacheSet(ctx, view, len(svg))
	}
	return svg, false
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cacheError(ctx context.Context, op string, err error) {
	observability.Cache().OnCacheError(ctx, op, err)
	r.Logger.Warn("cache "+op+" failed", "err", err)
}

func render(d reel.Dimensions, view string, opts []sink.SVGOption) []byte {
	if view == ViewFront {
		return sink.RenderFront(d, opts...)
	}
	return sink.RenderSide(d, opts...)
}
