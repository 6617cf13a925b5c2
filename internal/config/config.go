// Package config resolves client settings from, in increasing priority:
// defaults, the TOML config file, a .env file, the environment, and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/Makepad-fr/tada/internal/api"
)

// Default values.
const (
	DefaultTheme    = "classic"
	DefaultColor    = "auto"
	DefaultLogLevel = "info"
	DefaultDotEnv   = ".env"
	configFileName  = "config.toml"
)

// Config holds everything the CLI and TUI need to start.
type Config struct {
	APIURL   string        `toml:"api_url"`
	Theme    string        `toml:"theme"`
	Color    string        `toml:"color"` // auto | always | never
	LogFile  string        `toml:"log_file"`
	LogLevel string        `toml:"log_level"`
	Timeout  time.Duration `toml:"timeout"`

	// Path of the config file that was read, if any.
	File string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.APIURL = api.DefaultBaseURL
	cfg.Theme = DefaultTheme
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
}

// flagValues mirrors the root flags before they are layered on top.
type flagValues struct {
	config   string
	apiURL   string
	theme    string
	color    bool
	noColor  bool
	logFile  string
	logLevel string
	timeout  time.Duration
}

// RegisterFlags adds the root flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ~/.tada/config.toml)")
	fs.String("api", "", "base URL of the to-do collection")
	fs.String("theme", "", "color theme: classic, neon or mono")
	fs.Bool("color", false, "force colored output")
	fs.Bool("no-color", false, "disable colored output")
	fs.String("log-file", "", "write debug logs to this file")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Duration("timeout", 0, "per-request timeout (0 uses the transport default)")
}

// Load parses args with fs (which must have RegisterFlags applied) and
// returns the resolved config plus the positional arguments.
func Load(fs *pflag.FlagSet, args []string) (*Config, []string, error) {
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}
	fv := readFlags(fs)

	cfg := &Config{}
	setDefaults(cfg)

	path, explicit := configPath(fv.config)
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.File = path
		}
	}

	dotenv, err := readDotEnv(DefaultDotEnv)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", DefaultDotEnv, err)
	}
	if err := applyEnv(cfg, envLookup(dotenv)); err != nil {
		return nil, nil, err
	}
	applyFlags(cfg, fs, fv)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: want auto, always or never, got %q", c.Color)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: want classic, neon or mono, got %q", c.Theme)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout: must not be negative")
	}
	return nil
}

func readFlags(fs *pflag.FlagSet) flagValues {
	var fv flagValues
	fv.config, _ = fs.GetString("config")
	fv.apiURL, _ = fs.GetString("api")
	fv.theme, _ = fs.GetString("theme")
	fv.color, _ = fs.GetBool("color")
	fv.noColor, _ = fs.GetBool("no-color")
	fv.logFile, _ = fs.GetString("log-file")
	fv.logLevel, _ = fs.GetString("log-level")
	fv.timeout, _ = fs.GetDuration("timeout")
	return fv
}

func applyFlags(cfg *Config, fs *pflag.FlagSet, fv flagValues) {
	if fs.Changed("api") {
		cfg.APIURL = fv.apiURL
	}
	if fs.Changed("theme") {
		cfg.Theme = fv.theme
	}
	if fs.Changed("color") && fv.color {
		cfg.Color = "always"
	}
	if fs.Changed("no-color") && fv.noColor {
		cfg.Color = "never"
	}
	if fs.Changed("log-file") {
		cfg.LogFile = fv.logFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if fs.Changed("timeout") {
		cfg.Timeout = fv.timeout
	}
}

// configPath returns the file to read and whether the user named it.
func configPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if v := strings.TrimSpace(os.Getenv("TADA_CONFIG")); v != "" {
		return v, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".tada", configFileName), false
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}

func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return godotenv.Read(path)
}

// envLookup prefers non-empty environment values over .env values.
func envLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("TADA_API_URL"); ok {
		cfg.APIURL = v
	}
	if v, ok := get("TADA_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := get("TADA_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := get("TADA_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if _, ok := get("NO_COLOR"); ok {
		cfg.Color = "never"
	}
	if v, ok := get("TADA_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TADA_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}
