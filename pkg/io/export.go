package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// WriteDesign encodes d in the given format and writes it to w.
// The output can be read back with [ReadDesign].
func WriteDesign(w io.Writer, d reel.Dimensions, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported design format %q", format)
}

// ExportSVG writes rendered markup to path, creating parent directories.
func ExportSVG(path string, svg []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, svg, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OutputPaths derives "<base>_side.svg" and "<base>_front.svg".
// A design file extension on base is stripped first.
func OutputPaths(base string) (side, front string) {
	ext := filepath.Ext(base)
	for _, known := range errors.DesignExtensions {
		if strings.EqualFold(ext, known) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return base + "_side.svg", base + "_front.svg"
}
