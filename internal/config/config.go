// Package config loads repogen's per-project settings from .repogen.yml
// and REPOGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project directory.
const FileName = ".repogen.yml"

// EnvPrefix prefixes environment overrides, e.g. REPOGEN_APP_PATH.
const EnvPrefix = "REPOGEN"

const (
	DefaultAppPath   = "app"
	DefaultNamespace = "App"
	DefaultExtension = ".php"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds where generated files go and how they are namespaced.
type Config struct {
	// AppPath is the application source root, relative to the project directory.
	AppPath string `mapstructure:"app_path" yaml:"app_path"`
	// Namespace is the root namespace of generated classes.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
	// Extension is appended to every generated file name.
	Extension string `mapstructure:"extension" yaml:"extension"`
}

// Default returns the Laravel defaults: app/, App\, .php.
func Default() *Config {
	return &Config{
		AppPath:   DefaultAppPath,
		Namespace: DefaultNamespace,
		Extension: DefaultExtension,
	}
}

// Load reads the config for the project in dir on fsys. A missing config
// file is not an error; defaults and environment overrides still apply.
func Load(fsys afero.Fs, dir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetDefault("app_path", DefaultAppPath)
	v.SetDefault("namespace", DefaultNamespace)
	v.SetDefault("extension", DefaultExtension)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := filepath.Join(dir, FileName)
	found, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if found {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", FileName, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FileName, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config describes a usable layout. Call
// Normalize first; Validate does not clean the values it checks.
func (c *Config) Validate() error {
	if c.AppPath == "" || c.AppPath == "." {
		return fmt.Errorf("%w: app_path must not be empty", ErrInvalidConfig)
	}
	if filepath.IsAbs(c.AppPath) {
		return fmt.Errorf("%w: app_path must be relative to the project, got %q", ErrInvalidConfig, c.AppPath)
	}
	if c.AppPath == ".." || strings.HasPrefix(c.AppPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: app_path must stay inside the project, got %q", ErrInvalidConfig, c.AppPath)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace must not be empty", ErrInvalidConfig)
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("%w: extension must start with a dot, got %q", ErrInvalidConfig, c.Extension)
	}
	return nil
}

// Marshal renders the config as YAML, the format Load reads back.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Normalize trims whitespace, cleans app_path and strips namespace
// separators, so "./src/" and "src" describe the same layout.
func (c *Config) Normalize() {
	c.AppPath = strings.TrimSpace(c.AppPath)
	if c.AppPath != "" {
		c.AppPath = filepath.Clean(c.AppPath)
	}
	c.Namespace = strings.Trim(strings.TrimSpace(c.Namespace), `\`)
	c.Extension = strings.TrimSpace(c.Extension)
}
