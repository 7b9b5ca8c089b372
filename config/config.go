// Package config loads process settings for cmcutil: built-in defaults first,
// then an optional YAML or JSON file on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"

	"github.com/katalvlaran/cmcutils/internal/logx"
	"github.com/katalvlaran/cmcutils/join"
	"github.com/katalvlaran/cmcutils/seed"
	"github.com/katalvlaran/cmcutils/sound"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultFiles are probed, in order, when Load is given an empty path.
var DefaultFiles = []string{"cmcutils.yaml", "cmcutils.yml", "cmcutils.json"}

// Config holds process-wide settings.
type Config struct {
	Seed  SeedConfig
	Join  JoinConfig
	Sound SoundConfig
	Log   LogConfig
}

// SeedConfig drives seed.New.
type SeedConfig struct {
	Value         int64
	Devices       int
	Deterministic bool
}

// JoinConfig drives join.PreprocessingParams.
type JoinConfig struct {
	OnUnmatched string // skip, overwrite or error
}

// SoundConfig overrides the stock alert player. Empty fields keep the
// platform default.
type SoundConfig struct {
	Command  string
	Args     []string
	File     string
	Disabled bool
}

// LogConfig drives logx.Setup.
type LogConfig struct {
	Level  string
	Format string // text or json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:  SeedConfig{Value: seed.DefaultSeed, Devices: 1, Deterministic: true},
		Join:  JoinConfig{OnUnmatched: join.OnUnmatchedSkip.String()},
		Sound: SoundConfig{},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load returns Default overlaid with the file at path. An empty path probes
// DefaultFiles and keeps the defaults when none exists. Only fields present
// in the file override defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = FirstExisting(DefaultFiles...)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		logx.For("config").WithField("path", path).Debug("config file applied")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FirstExisting returns the first path that exists, or "".
func FirstExisting(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadFromFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fm fileModel
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fm); err != nil {
			return err
		}
	case ".json", "":
		if err := json.Unmarshal(b, &fm); err != nil {
			return err
		}
	default:
		return errors.New("unsupported config file format")
	}
	fm.apply(cfg)
	return nil
}

// Validate reports the first unusable setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Seed.Devices < 0 {
		return fmt.Errorf("%w: seed.devices must be >= 0, got %d", ErrInvalidConfig, c.Seed.Devices)
	}
	if _, err := join.ParseOnUnmatched(c.Join.OnUnmatched); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Generators builds seeded generators from the seed section.
func (s SeedConfig) Generators() *seed.Generators {
	return seed.New(s.Value, seed.WithDevices(s.Devices), seed.WithDeterministic(s.Deterministic))
}

// Options converts the join section into PreprocessingParams options.
func (j JoinConfig) Options() ([]join.Option, error) {
	p, err := join.ParseOnUnmatched(j.OnUnmatched)
	if err != nil {
		return nil, err
	}
	return []join.Option{join.WithOnUnmatched(p)}, nil
}

// Player returns the platform player with the section's overrides applied.
// A disabled section yields (nil, nil).
func (s SoundConfig) Player(opts ...sound.Option) (*sound.Player, error) {
	if s.Disabled {
		return nil, nil
	}
	var o []sound.Option
	if s.Command != "" {
		o = append(o, sound.WithCommand(s.Command, s.Args...))
	}
	if s.File != "" {
		o = append(o, sound.WithFile(s.File))
	}
	return sound.Default(append(o, opts...)...)
}

// Apply configures the process logger; w may be nil to keep the output.
func (l LogConfig) Apply(w io.Writer) error {
	return logx.Setup(l.Level, l.Format, w)
}

type fileModel struct {
	Seed  *fileSeed  `yaml:"seed" json:"seed"`
	Join  *fileJoin  `yaml:"join" json:"join"`
	Sound *fileSound `yaml:"sound" json:"sound"`
	Log   *fileLog   `yaml:"log" json:"log"`
}

type fileSeed struct {
	Value         *int64 `yaml:"value" json:"value"`
	Devices       *int   `yaml:"devices" json:"devices"`
	Deterministic *bool  `yaml:"deterministic" json:"deterministic"`
}

type fileJoin struct {
	OnUnmatched string `yaml:"on_unmatched" json:"on_unmatched"`
}

type fileSound struct {
	Command  string   `yaml:"command" json:"command"`
	Args     []string `yaml:"args" json:"args"`
	File     string   `yaml:"file" json:"file"`
	Disabled *bool    `yaml:"disabled" json:"disabled"`
}

type fileLog struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

func (fm fileModel) apply(cfg *Config) {
	if s := fm.Seed; s != nil {
		if s.Value != nil {
			cfg.Seed.Value = *s.Value
		}
		if s.Devices != nil {
			cfg.Seed.Devices = *s.Devices
		}
		if s.Deterministic != nil {
			cfg.Seed.Deterministic = *s.Deterministic
		}
	}
	if j := fm.Join; j != nil && j.OnUnmatched != "" {
		cfg.Join.OnUnmatched = j.OnUnmatched
	}
	if s := fm.Sound; s != nil {
		if s.Command != "" {
			cfg.Sound.Command = s.Command
			cfg.Sound.Args = s.Args
		}
		if s.File != "" {
			cfg.Sound.File = s.File
		}
		if s.Disabled != nil {
			cfg.Sound.Disabled = *s.Disabled
		}
	}
	if l := fm.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		if l.Format != "" {
			cfg.Log.Format = l.Format
		}
	}
}
