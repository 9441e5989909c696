// Package config loads the reeldesigner configuration file.
//
// The file is TOML with five optional sections:
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//
//	[cache]
//	backend = "redis"            # none, file or redis
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[render]
//	view = "both"
//	drum_ring = true
//
//	[labels]
//	width = "inner width"
//
//	[defaults]
//	flangeDiameter = 1600
//
// Every key is optional; omitted keys keep the values of [Default].
// Unknown keys are rejected so typos surface instead of being ignored.
package config

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/sink"
)

// AppName names the configuration and cache directories.
const AppName = "reeldesigner"

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the full configuration.
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Cache    CacheConfig     `toml:"cache"`
	Render   RenderConfig    `toml:"render"`
	Labels   sink.Labels     `toml:"labels"`
	Defaults reel.Dimensions `toml:"defaults"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// CacheConfig selects and configures the render cache.
type CacheConfig struct {
	Backend string `toml:"backend"`
	// Dir is the file backend directory. Empty means the user cache
	// directory.
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"`
	TTL      Duration `toml:"ttl"`
}

// RenderConfig holds render defaults shared by the CLI and the server.
type RenderConfig struct {
	View         string `toml:"view"`
	DrumRing     bool   `toml:"drum_ring"`
	MMDecimals   int    `toml:"mm_decimals"`
	UnitDecimals int    `toml:"unit_decimals"`
}

// Duration is a time.Duration written as a Go duration string ("10s").
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Prefix:  AppName + ":",
			TTL:     Duration(pipeline.DefaultCacheTTL),
		},
		Render: RenderConfig{
			View:         pipeline.ViewBoth,
			DrumRing:     true,
			MMDecimals:   sink.Invariant.MMDecimals,
			UnitDecimals: sink.Invariant.UnitDecimals,
		},
		Labels:   sink.DefaultLabels(),
		Defaults: reel.Default(),
	}
}

// DefaultPath returns the configuration file location following XDG
// (~/.config/reeldesigner/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the configuration file at path on top of [Default].
// A missing file is a FILE_NOT_FOUND error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath] when it exists and returns
// [Default] otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Read decodes a configuration from r on top of [Default] and validates
// it.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, stderrors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	cfg.Labels = cfg.Labels.Merge(sink.DefaultLabels())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be one of none, file, redis; got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if err := errors.ValidateView(c.Render.View); err != nil {
		return err
	}
	if c.Render.MMDecimals < 0 || c.Render.UnitDecimals < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render decimals must not be negative")
	}
	if err := reel.Validate(c.Defaults).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults")
	}
	return nil
}

// PipelineOptions converts the render section and label table into
// pipeline options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		View:       c.Render.View,
		NoDrumRing: !c.Render.DrumRing,
		Labels:     c.Labels,
		Format: sink.Format{
			MMDecimals:   c.Render.MMDecimals,
			UnitDecimals: c.Render.UnitDecimals,
		},
	}
}
