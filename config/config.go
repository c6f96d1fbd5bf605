// Package config loads codec and logging settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/mapbin/internal/logging"
	"github.com/danmuck/mapbin/internal/wire"
	"github.com/danmuck/mapbin/mapdata"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Codec CodecConfig `toml:"codec" yaml:"codec"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

type CodecConfig struct {
	CheckHeader    bool   `toml:"check_header" yaml:"check_header"`
	WriteHeader    bool   `toml:"write_header" yaml:"write_header"`
	MaxStringBytes uint64 `toml:"max_string_bytes" yaml:"max_string_bytes"`
	MaxDepth       int    `toml:"max_depth" yaml:"max_depth"`
}

type LogConfig struct {
	Level     string `toml:"level" yaml:"level"`
	Timestamp bool   `toml:"timestamp" yaml:"timestamp"`
	NoColor   bool   `toml:"no_color" yaml:"no_color"`
}

func Default() Config {
	return Config{
		Codec: CodecConfig{
			CheckHeader:    true,
			WriteHeader:    true,
			MaxStringBytes: wire.DefaultLimits().MaxStringBytes,
			MaxDepth:       wire.DefaultLimits().MaxDepth,
		},
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default values. The format is chosen by extension.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return Config{}, fmt.Errorf("config: unsupported file type %q", path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type tomlFile struct {
	Codec struct {
		CheckHeader    bool   `toml:"check_header"`
		WriteHeader    bool   `toml:"write_header"`
		MaxStringBytes uint64 `toml:"max_string_bytes"`
		MaxDepth       int    `toml:"max_depth"`
	} `toml:"codec"`
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
}

func loadTOML(path string) (Config, error) {
	cfg := Default()

	var raw tomlFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("codec", "check_header") {
		cfg.Codec.CheckHeader = raw.Codec.CheckHeader
	}
	if meta.IsDefined("codec", "write_header") {
		cfg.Codec.WriteHeader = raw.Codec.WriteHeader
	}
	if meta.IsDefined("codec", "max_string_bytes") {
		cfg.Codec.MaxStringBytes = raw.Codec.MaxStringBytes
	}
	if meta.IsDefined("codec", "max_depth") {
		cfg.Codec.MaxDepth = raw.Codec.MaxDepth
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}
	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	// Decoding into the defaults leaves absent keys untouched.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Codec.MaxStringBytes == 0 {
		return fmt.Errorf("config: codec.max_string_bytes must be positive")
	}
	if cfg.Codec.MaxDepth <= 0 {
		return fmt.Errorf("config: codec.max_depth must be positive")
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("config: unknown log.level %q", cfg.Log.Level)
	}
	return nil
}

// Options converts the codec section for mapdata.NewCodec.
func (c Config) Options() mapdata.Options {
	return mapdata.Options{
		CheckHeader:    c.Codec.CheckHeader,
		WriteHeader:    c.Codec.WriteHeader,
		MaxStringBytes: c.Codec.MaxStringBytes,
		MaxDepth:       c.Codec.MaxDepth,
	}
}

// Logging converts the log section. An unknown level falls back to info.
func (c Config) Logging() logging.Settings {
	level, ok := logging.ParseLevel(c.Log.Level)
	if !ok {
		level = zerolog.InfoLevel
	}
	return logging.Settings{
		Level:     level,
		Timestamp: c.Log.Timestamp,
		NoColor:   c.Log.NoColor,
	}
}

// ApplyLogging installs the log section as the global logger.
func (c Config) ApplyLogging() zerolog.Logger {
	return logging.Apply(c.Logging())
}
