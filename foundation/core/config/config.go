// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and accessing
//              configuration data from TOML and YAML files with environment
//              variable support, plus typed decoding for structured files
//              such as unit catalogs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Exported Decode/DetectFormat, removed lookup caches

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	handlers  []ChangeHandler
}

// ChangeHandler is called after the configuration file was reloaded
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration without values. Getters fall back to
// environment variables and defaults.
func Empty(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode unmarshals content of the given format into target
func Decode(content []byte, format Format, target interface{}) error {
	switch format {
	case FormatTOML, FormatAuto:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(target); err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Decode")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, target); err != nil {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Decode")
		}
	default:
		return mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := Decode(content, format, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch v := c.getValue(key).(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// getValue retrieves a configuration value by dotted key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue retrieves the environment override for a configuration key.
// Overrides are only consulted when a prefix is configured.
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// catalog.path -> CATALOG_PATH, with prefix MUNITS -> MUNITS_CATALOG_PATH
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(nested)
		} else {
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// OnChange registers a handler called after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers = append(c.handlers, handler)
}
