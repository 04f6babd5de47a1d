// File: validation.go
// Title: Configuration Validation
// Description: Rule-based validation of configuration values (presence,
//              type and allowed values).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with type, bounds, pattern and struct binding
// - 2026-10-17 v0.2.0: Reduced to presence, type, pattern and one-of checks

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	mdwerror "github.com/msto63/munits/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "bool", "number", "[]string"
	Pattern  string   // Regex pattern for string values
	OneOf    []string // Allowed string values (case-insensitive)
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Validate checks the configuration against rules and returns an error
// listing every failing key, or nil
func (c *Config) Validate(rules ValidationRules) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return mdwerror.New("configuration validation failed: " + strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if envValue := c.getEnvValue(key); envValue != "" {
			value = envValue
		}
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" && !matchesType(value, rule.Type) {
		return fmt.Errorf("field '%s' must be of type %s, got %T", key, rule.Type, value)
	}

	str, isString := value.(string)
	if rule.Pattern != "" && isString {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, str, rule.Pattern)
		}
	}

	if len(rule.OneOf) > 0 && isString {
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(allowed, str) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' value '%s' must be one of %s", key, str, strings.Join(rule.OneOf, ", "))
	}

	return nil
}

func matchesType(value interface{}, expected string) bool {
	switch expected {
	case "string":
		_, ok := value.(string)
		return ok
	case "bool":
		_, ok := value.(bool)
		return ok
	case "number":
		switch value.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
			return true
		}
		return false
	default:
		return false
	}
}
