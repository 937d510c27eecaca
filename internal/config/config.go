package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Output formats accepted by OutputFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DirName is the name of both the global (~/.pobbin) and repo (.pobbin)
// configuration directories.
const DirName = ".pobbin"

// Config holds application configuration.
type Config struct {
	// MaxBuildBytes bounds the size of an export code accepted for decoding.
	// Inflated payloads are not bounded separately.
	MaxBuildBytes int `json:"max_build_bytes"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is locked" errors).
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of type names to disable entirely.
	// Known types: "build", "item", "notes", "paste".
	DisabledTypes []string `json:"disabled_types,omitempty"`

	// OutputFormat is the default CLI output format, "json" or "yaml".
	OutputFormat string `json:"output_format,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxBuildBytes: 2 << 20,
		OutputFormat:  FormatJSON,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.pobbin.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.pobbin) and repo (.pobbin) directories.
// Repo config is found by walking upward from startDir to find the nearest .pobbin/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	return Merge(Merge(DefaultConfig(), global), repo), nil
}

// FindRepoConfig walks upward from startDir to find the nearest .pobbin/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, DirName, "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	return &Config{
		MaxBuildBytes:  firstNonZero(overlay.MaxBuildBytes, base.MaxBuildBytes),
		DBMaxOpenConns: firstNonZero(overlay.DBMaxOpenConns, base.DBMaxOpenConns),
		DBMaxIdleConns: firstNonZero(overlay.DBMaxIdleConns, base.DBMaxIdleConns),
		OutputFormat:   firstNonZero(strings.ToLower(strings.TrimSpace(overlay.OutputFormat)), base.OutputFormat),
		DisabledTools:  mergeStringSlice(base.DisabledTools, overlay.DisabledTools),
		DisabledTypes:  mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes),
	}
}

func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	result := make([]string, 0, len(a)+len(b))
	for _, s := range slices.Concat(a, b) {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(result, s) {
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
