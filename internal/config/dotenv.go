package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// dotEnvKeys lists the keys ~/.advising/.env may set. Anything else is
// reported back as a warning rather than silently ignored.
var dotEnvKeys = map[string]bool{
	EnvCatalog:  true,
	EnvLogLevel: true,
	EnvSubjects: true,
}

// DotEnv is the parsed content of ~/.advising/.env.
type DotEnv struct {
	Values   map[string]string
	Warnings []string
}

// Lookup returns the override for key, preferring the process environment
// over the file.
func (d *DotEnv) Lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if d == nil {
		return ""
	}
	return d.Values[key]
}

// DotEnvPath returns the absolute path to the dotenv file (~/.advising/.env).
func DotEnvPath() (string, error) {
	dir, err := AdvisingDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.advising/.env. A missing file yields an empty DotEnv.
func LoadDotEnv() (*DotEnv, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return &DotEnv{Values: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	env, err := ParseDotEnv(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return env, nil
}

// ParseDotEnv parses KEY=VALUE lines.
//
// Blank lines and lines starting with '#' are skipped. A leading "export "
// is accepted. Values may be wrapped in double quotes (Go escapes apply) or
// single quotes (taken literally); unquoted values are trimmed. Lines
// without '=', unknown keys and bad quoting become Warnings.
func ParseDotEnv(r io.Reader) (*DotEnv, error) {
	env := &DotEnv{Values: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		k, v, ok := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			env.warnf("line %d: expected KEY=VALUE", lineNo)
			continue
		}
		if !dotEnvKeys[k] {
			env.warnf("line %d: unknown key %s", lineNo, k)
			continue
		}
		val, err := unquote(strings.TrimSpace(v))
		if err != nil {
			env.warnf("line %d: %s: %v", lineNo, k, err)
			continue
		}
		env.Values[k] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return env, nil
}

func (d *DotEnv) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

func unquote(v string) (string, error) {
	if len(v) < 2 {
		return v, nil
	}
	switch {
	case v[0] == '"' && v[len(v)-1] == '"':
		s, err := strconv.Unquote(v)
		if err != nil {
			return "", fmt.Errorf("invalid quoted value %s", v)
		}
		return s, nil
	case v[0] == '\'' && v[len(v)-1] == '\'':
		return v[1 : len(v)-1], nil
	}
	return v, nil
}

// EnsureDotEnvTemplate creates ~/.advising/.env if it does not already exist.
//
// The template lists the override keys commented out.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		"# Overrides for advising.yaml. Process environment variables win.\n" +
		"# " + EnvCatalog + "=\"/path/to/catalog.csv\"\n" +
		"# " + EnvLogLevel + "=info\n" +
		"# " + EnvSubjects + "=CSCI,MATH\n"

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
