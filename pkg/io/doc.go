// Package io reads reel design files and writes rendered diagrams.
//
// # Design Files
//
// A design file holds one [reel.Dimensions] record as a flat table of the
// six wire field names. TOML, YAML and JSON are accepted; the format is
// chosen by file extension:
//
//	# reel.toml
//	flangeDiameter    = 1400
//	barrelDiameter    = 700
//	width             = 880
//	arborHoleDiameter = 100
//	flangeThickness   = 60
//	drumThickness     = 30
//
// Fields missing from a file keep their [reel.Default] value, the same way
// an empty form starts from the defaults. Unknown keys are rejected so that
// a typo never silently falls back to a default.
//
// Reading does not validate; call [reel.Validate] on the result.
//
// # Output
//
// [ExportSVG] writes rendered markup to disk, creating parent directories.
// [OutputPaths] derives the side and front file names from a base path.
//
// [reel.Dimensions]: github.com/matzehuels/reeldesigner/pkg/reel.Dimensions
// [reel.Default]: github.com/matzehuels/reeldesigner/pkg/reel.Default
// [reel.Validate]: github.com/matzehuels/reeldesigner/pkg/reel.Validate
package io
