// Package pkg provides the libraries behind the reel designer.
//
// # Overview
//
// The reel designer takes the six dimensions of a wooden cable reel, checks
// them against their ranges and against each other, and draws annotated
// side-view and front-view diagrams as SVG. The same pipeline backs the
// command line and the web form.
//
// # Architecture
//
//	design file / form / query string
//	         ↓
//	    [io] or [server] (decode into reel.Dimensions)
//	         ↓
//	    [reel] (range and relational validation)
//	         ↓
//	    [pipeline] (cache lookup, render, cache store)
//	         ↓
//	    [render/sink] (SVG markup from [render/layout] geometry)
//
// # Main Packages
//
// [reel] - The dimension record, its field specs and [reel.Validate].
//
// [render/layout] - Pure geometry for both views: scale factors, circles,
// rectangles and dimension line positions.
//
// [render/sink] - SVG writers for the side and front views, caption and
// label tables, number formatting.
//
// [pipeline] - Validate then render one or both views, with optional
// caching and observability hooks.
//
// [cache] - Render cache backends (null, file, Redis) and key derivation.
//
// [config] - TOML configuration for server, cache, render options, labels
// and default dimensions.
//
// [server] - HTTP form and JSON/SVG API.
//
// [io] - Design file import and export (TOML, YAML, JSON) and SVG output.
//
// [errors] - Coded errors shared by every package.
//
// # Quick Start
//
//	d := reel.Default()
//	d.FlangeDiameter = 1600
//	if err := reel.Validate(d).Err(); err != nil {
//	    return err
//	}
//	side := sink.RenderSide(d)
//	front := sink.RenderFront(d)
//
// [reel]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/reel
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/server
// [io]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/reeldesigner/pkg/errors
package pkg
