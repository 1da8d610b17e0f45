// Package config provides configuration loading and validation for the
// server and CLI. Values come from an optional JSON file merged with
// environment variables; flags override both.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied when neither file, environment nor flags provide a value.
const (
	DefaultPort                 = 8080
	DefaultSkillsCutoff         = 5
	DefaultCertificationsCutoff = 3
	DefaultSessionTTLHours      = 2
)

// Config represents the application configuration. All fields are optional
// in the JSON file; missing values fall back to environment variables and
// then to defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Providers
	APIKey string   `json:"api_key,omitempty"` // Gemini API key
	Models []string `json:"models,omitempty"`  // Candidate model list, highest priority first

	// Document policy
	// Cutoffs are pointers so an explicit 0 ("everything hidden by
	// default") survives merging and is distinguishable from unset.
	SkillsCutoff         *int   `json:"skills_cutoff,omitempty"`         // Leading skills visible by default
	CertificationsCutoff *int   `json:"certifications_cutoff,omitempty"` // Leading certifications visible by default
	DefaultLanguage      string `json:"default_language,omitempty"`      // Output language when the request omits one
	SessionTTLHours      int    `json:"session_ttl_hours,omitempty"`     // Idle session lifetime

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA profile pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables
// leave the zero value so the result can be merged under a file config.
func FromEnv() *Config {
	cfg := &Config{
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		DefaultLanguage: os.Getenv("DEFAULT_LANGUAGE"),
	}

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("MODEL_CANDIDATES"); v != "" {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.Models = append(cfg.Models, m)
			}
		}
	}
	if v := os.Getenv("SKILLS_CUTOFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SkillsCutoff = &n
		}
	}
	if v := os.Getenv("CERTIFICATIONS_CUTOFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CertificationsCutoff = &n
		}
	}
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SessionTTLHours = n
		}
	}
	if v := os.Getenv("USE_BROWSER"); v != "" {
		cfg.UseBrowser = v == "1" || strings.EqualFold(v, "true")
	}

	return cfg
}

// Merge returns a new Config where empty fields of c are filled from
// fallback. Slices and booleans follow the same rule: only a zero value
// is replaced.
func (c *Config) Merge(fallback *Config) *Config {
	out := *c
	if out.Port == 0 {
		out.Port = fallback.Port
	}
	if out.APIKey == "" {
		out.APIKey = fallback.APIKey
	}
	if len(out.Models) == 0 {
		out.Models = fallback.Models
	}
	if out.SkillsCutoff == nil {
		out.SkillsCutoff = fallback.SkillsCutoff
	}
	if out.CertificationsCutoff == nil {
		out.CertificationsCutoff = fallback.CertificationsCutoff
	}
	if out.DefaultLanguage == "" {
		out.DefaultLanguage = fallback.DefaultLanguage
	}
	if out.SessionTTLHours == 0 {
		out.SessionTTLHours = fallback.SessionTTLHours
	}
	if !out.UseBrowser {
		out.UseBrowser = fallback.UseBrowser
	}
	if !out.Verbose {
		out.Verbose = fallback.Verbose
	}
	return &out
}

// WithDefaults fills any remaining zero field with the stock defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Port == 0 {
		out.Port = DefaultPort
	}
	if out.SkillsCutoff == nil {
		n := DefaultSkillsCutoff
		out.SkillsCutoff = &n
	}
	if out.CertificationsCutoff == nil {
		n := DefaultCertificationsCutoff
		out.CertificationsCutoff = &n
	}
	if out.SessionTTLHours == 0 {
		out.SessionTTLHours = DefaultSessionTTLHours
	}
	return &out
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.SkillsCutoff != nil && *c.SkillsCutoff < 0 {
		return fmt.Errorf("config error: 'skills_cutoff' must be non-negative")
	}
	if c.CertificationsCutoff != nil && *c.CertificationsCutoff < 0 {
		return fmt.Errorf("config error: 'certifications_cutoff' must be non-negative")
	}
	if c.SessionTTLHours < 0 {
		return fmt.Errorf("config error: 'session_ttl_hours' must be non-negative")
	}
	return nil
}
