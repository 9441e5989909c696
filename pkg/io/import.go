package io

import (
	"encoding/json"
	stderrors "errors"
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

// Format identifies a design file encoding.
type Format string

// Supported design file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the design format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateDesignPath(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

// ReadDesign decodes a design from r, starting from [reel.Default].
// ReadDesign does not close r.
func ReadDesign(r io.Reader, format Format) (reel.Dimensions, error) {
	return ReadDesignOver(r, format, reel.Default())
}

// ReadDesignOver decodes a design from r on top of base, so fields
// missing from the input keep their base value.
func ReadDesignOver(r io.Reader, format Format, base reel.Dimensions) (reel.Dimensions, error) {
	d := base

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return d, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return d, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !stderrors.Is(err, io.EOF) {
			return d, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil && !stderrors.Is(err, io.EOF) {
			return d, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return d, errors.New(errors.ErrCodeInvalidFormat, "unsupported design format %q", format)
	}

	return d, nil
}

// ImportDesign reads the design file at path.
//
// The format comes from the extension (see [FormatFromPath]). A missing
// file yields a FILE_NOT_FOUND error; decode failures are INVALID_FORMAT
// errors naming the path.
func ImportDesign(path string) (reel.Dimensions, error) {
	return ImportDesignOver(path, reel.Default())
}

// ImportDesignOver is [ImportDesign] with base in place of the defaults.
func ImportDesignOver(path string, base reel.Dimensions) (reel.Dimensions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return reel.Dimensions{}, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return reel.Dimensions{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "design file %s", path)
	}
	if err != nil {
		return reel.Dimensions{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDesignOver(f, format, base)
	if err != nil {
		return reel.Dimensions{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
