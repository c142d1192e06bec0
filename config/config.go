package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for sbtup.
type Config struct {
	Registry    RegistryConfig `yaml:"registry"`
	Concurrency int            `yaml:"concurrency"` // max in-flight registry lookups
	Excludes    []string       `yaml:"excludes"`    // coordinate keys to skip ("group:artifact")
	Backup      bool           `yaml:"backup"`      // keep a .bak copy of rewritten files
}

// RegistryConfig describes the Maven repository that version lookups hit.
type RegistryConfig struct {
	URL            string `yaml:"url"`
	MaxRetries     int    `yaml:"max_retries"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:            "https://repo1.maven.org/maven2",
			MaxRetries:     3,
			TimeoutSeconds: 30,
		},
		Concurrency: 8,
		Backup:      true,
	}
}

// Load reads and parses a configuration file, expanding ${ENV_VAR}
// placeholders and filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(expandEnv(data), cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	applyDefaults(cfg)

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".sbtup.yaml",
		".sbtup.yml",
		"sbtup.yaml",
		"sbtup.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${ENV_VAR} references with their environment values
// before the YAML is parsed.
func expandEnv(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := string(envVarPattern.FindSubmatch(match)[1])
		if val := os.Getenv(varName); val != "" {
			return []byte(val)
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return nil
	})
}

func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Registry.URL == "" {
		cfg.Registry.URL = defaults.Registry.URL
	}
	if cfg.Registry.MaxRetries == 0 {
		cfg.Registry.MaxRetries = defaults.Registry.MaxRetries
	}
	if cfg.Registry.TimeoutSeconds == 0 {
		cfg.Registry.TimeoutSeconds = defaults.Registry.TimeoutSeconds
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = defaults.Concurrency
	}
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Registry.URL == "" {
		return errors.New("registry.url is required")
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.Registry.MaxRetries < 0 {
		return fmt.Errorf("registry.max_retries must not be negative, got %d", cfg.Registry.MaxRetries)
	}
	return nil
}
