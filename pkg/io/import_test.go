package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

func TestReadDesignFormats(t *testing.T) {
	want := reel.Dimensions{FlangeDiameter: 800, BarrelDiameter: 300, Width: 600, ArborHoleDiameter: 50, FlangeThickness: 30, DrumThickness: 50}

	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "toml",
			format: FormatTOML,
			input: `flangeDiameter = 800
barrelDiameter = 300.0
width = 600
arborHoleDiameter = 50
flangeThickness = 30
drumThickness = 50
`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `flangeDiameter: 800
barrelDiameter: 300
width: 600
arborHoleDiameter: 50
flangeThickness: 30
drumThickness: 50
`,
		},
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"flangeDiameter":800,"barrelDiameter":300,"width":600,"arborHoleDiameter":50,"flangeThickness":30,"drumThickness":50}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDesign(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadDesign() error = %v", err)
			}
			if got != want {
				t.Errorf("ReadDesign() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestReadDesignOverlaysDefaults(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, "width = 1200\n"},
		{"yaml", FormatYAML, "width: 1200\n"},
		{"json", FormatJSON, `{"width": 1200}`},
	}

	want := reel.Default()
	want.Width = 1200

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDesign(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadDesign() error = %v", err)
			}
			if got != want {
				t.Errorf("ReadDesign() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestReadDesignEmptyInput(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		got, err := ReadDesign(strings.NewReader(""), format)
		if err != nil {
			t.Errorf("%s: ReadDesign(empty) error = %v", format, err)
			continue
		}
		if got != reel.Default() {
			t.Errorf("%s: ReadDesign(empty) = %+v, want defaults", format, got)
		}
	}
}

func TestReadDesignRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, "flangeDiamter = 900\n"},
		{"yaml", FormatYAML, "flangeDiamter: 900\n"},
		{"json", FormatJSON, `{"flangeDiamter": 900}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDesign(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadDesign() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestReadDesignMalformed(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, "width = = 3"},
		{"yaml", FormatYAML, "width: [1, 2"},
		{"json", FormatJSON, `{"width": "wide"}`},
		{"unknown format", Format("ini"), "width=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadDesign(strings.NewReader(tt.input), tt.format); err == nil {
				t.Error("ReadDesign() error = nil, want error")
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"reel.toml", FormatTOML, false},
		{"designs/reel.YAML", FormatYAML, false},
		{"reel.yml", FormatYAML, false},
		{"reel.json", FormatJSON, false},
		{"reel.svg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestImportDesign(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reel.toml")
	if err := os.WriteFile(path, []byte("flangeDiameter = 2000\nbarrelDiameter = 900\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportDesign(path)
	if err != nil {
		t.Fatalf("ImportDesign() error = %v", err)
	}
	if got.FlangeDiameter != 2000 || got.BarrelDiameter != 900 || got.Width != reel.Default().Width {
		t.Errorf("ImportDesign() = %+v", got)
	}
}

func TestImportDesignOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.yaml")
	if err := os.WriteFile(path, []byte("width: 1200\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base := reel.Default()
	base.FlangeDiameter = 1800

	got, err := ImportDesignOver(path, base)
	if err != nil {
		t.Fatalf("ImportDesignOver() error = %v", err)
	}
	want := base
	want.Width = 1200
	if got != want {
		t.Errorf("ImportDesignOver() = %+v, want %+v", got, want)
	}
}

func TestImportDesignMissingFile(t *testing.T) {
	_, err := ImportDesign(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportDesign(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestWriteDesignRoundTrip(t *testing.T) {
	d := reel.Dimensions{FlangeDiameter: 1250.5, BarrelDiameter: 640, Width: 700, ArborHoleDiameter: 82, FlangeThickness: 45, DrumThickness: 25}

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteDesign(&buf, d, format); err != nil {
				t.Fatalf("WriteDesign() error = %v", err)
			}
			got, err := ReadDesign(&buf, format)
			if err != nil {
				t.Fatalf("ReadDesign() error = %v\n%s", err, buf.String())
			}
			if got != d {
				t.Errorf("round trip = %+v, want %+v", got, d)
			}
		})
	}
}
