package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCatalogFile is the catalog read from the working directory when nothing else is configured.
	DefaultCatalogFile = "CS 300 ABCU_Advising_Program_Input.csv"

	defaultDelimiter   = ","
	defaultLockTimeout = 5 * time.Second
)

// Environment keys consulted before the YAML file.
const (
	EnvCatalog  = "ADVISING_CATALOG"
	EnvLogLevel = "ADVISING_LOG_LEVEL"
	EnvSubjects = "ADVISING_SUBJECTS"
)

// Config is the in-memory representation of ~/.advising/advising.yaml.
type Config struct {
	CatalogPath string   `yaml:"catalog_path"`
	Delimiter   string   `yaml:"delimiter,omitempty"`
	Subjects    []string `yaml:"subjects,omitempty"`
	LockTimeout string   `yaml:"lock_timeout,omitempty"`
	LogLevel    string   `yaml:"log_level,omitempty"`

	// Warnings collects ignored lines from ~/.advising/.env.
	Warnings []string `yaml:"-"`
}

// AdvisingDir returns the absolute path to ~/.advising/.
func AdvisingDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".advising"), nil
}

// ConfigPath returns the absolute path to ~/.advising/advising.yaml.
func ConfigPath() (string, error) {
	dir, err := AdvisingDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "advising.yaml"), nil
}

// ExpandPath expands a leading ~ or ~/ to the user's home directory.
// Other users' homes (~name) are left as written.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config used when no file exists and written by advising init.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath: DefaultCatalogFile,
		Delimiter:   defaultDelimiter,
		Subjects:    []string{"CSCI", "MATH"},
		LockTimeout: defaultLockTimeout.String(),
		LogLevel:    "warn",
	}
}

// Load reads the config at path, or ~/.advising/advising.yaml when path is
// empty. A missing default file yields DefaultConfig. Environment variables
// and ~/.advising/.env override the file.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	cfg.CatalogPath, err = ExpandPath(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if _, err := cfg.DelimiterRune(); err != nil {
		return nil, err
	}
	if _, err := cfg.LockTimeoutDuration(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	env, err := LoadDotEnv()
	if err != nil {
		return err
	}
	c.Warnings = append(c.Warnings, env.Warnings...)

	if v := env.Lookup(EnvCatalog); v != "" {
		c.CatalogPath = v
	}
	if v := env.Lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := env.Lookup(EnvSubjects); v != "" {
		var subjects []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				subjects = append(subjects, s)
			}
		}
		if len(subjects) > 0 {
			c.Subjects = subjects
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogFile
	}
	if c.Delimiter == "" {
		c.Delimiter = defaultDelimiter
	}
	if len(c.Subjects) == 0 {
		c.Subjects = []string{"CSCI", "MATH"}
	}
	if c.LockTimeout == "" {
		c.LockTimeout = defaultLockTimeout.String()
	}
}

// DelimiterRune returns the configured field delimiter, which must be a single character.
func (c *Config) DelimiterRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError || size != len(c.Delimiter) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return r, nil
}

// LockTimeoutDuration parses LockTimeout.
func (c *Config) LockTimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.LockTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid lock_timeout %q: %w", c.LockTimeout, err)
	}
	return d, nil
}

// Save marshals cfg and writes it to ~/.advising/advising.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
