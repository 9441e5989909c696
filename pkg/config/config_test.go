package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/sink"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestReadOverlaysDefaults(t *testing.T) {
	src := `
[server]
addr = "127.0.0.1:9000"
read_timeout = "5s"

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"

[render]
drum_ring = false

[labels]
width = "inner width"

[defaults]
flangeDiameter = 1600
`
	cfg, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Std() != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout.Std())
	}
	if cfg.Server.WriteTimeout != Default().Server.WriteTimeout {
		t.Errorf("Server.WriteTimeout = %v, want default", cfg.Server.WriteTimeout.Std())
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Render.DrumRing {
		t.Error("Render.DrumRing = true, want false")
	}
	if cfg.Labels.Width != "inner width" {
		t.Errorf("Labels.Width = %q", cfg.Labels.Width)
	}
	if cfg.Labels.FlangeDiameter != sink.DefaultLabels().FlangeDiameter {
		t.Errorf("Labels.FlangeDiameter = %q, want default", cfg.Labels.FlangeDiameter)
	}

	want := reel.Default()
	want.FlangeDiameter = 1600
	if cfg.Defaults != want {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `[server`, ""},
		{"unknown key", "[server]\nport = 80\n", "unknown keys: server.port"},
		{"bad duration", "[server]\nread_timeout = \"soon\"\n", ""},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "cache.backend"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n", "redis_url"},
		{"bad view", "[render]\nview = \"top\"\n", "INVALID_VIEW"},
		{"invalid defaults", "[defaults]\nbarrelDiameter = 1400\n", "defaults"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Read() error = nil")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Read() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nview = \"side\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.View != pipeline.ViewSide {
		t.Errorf("Render.View = %q, want side", cfg.Render.View)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	if err := os.WriteFile(path, []byte("[cache]\nbackend = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(bad) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg != Default() {
		t.Error("LoadDefault() without a file should return Default()")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", AppName, "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ":9999"
	cfg.Defaults.Width = 900

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `read_timeout = "10s"`) {
		t.Errorf("durations should encode as strings:\n%s", buf.String())
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.DrumRing = false
	cfg.Render.View = pipeline.ViewFront

	opts := cfg.PipelineOptions()
	if !opts.NoDrumRing || opts.View != pipeline.ViewFront {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
	if opts.Format != sink.Invariant {
		t.Errorf("Format = %+v, want Invariant", opts.Format)
	}
}
