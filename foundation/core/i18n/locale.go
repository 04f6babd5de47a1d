// File: locale.go
// Title: Locale Detection and Management Implementation
// Description: Parses locale identifiers into BCP 47 tags, picks the best
//              supported locale from Accept-Language style preference lists
//              and reads the process locale from the environment.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-17 v0.2.0: Replaced hand-written parsing with golang.org/x/text/language

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/stringx"
)

// ParseLocale parses a locale identifier such as "de-DE", "de_DE" or
// "de_DE.UTF-8" into a language tag
func ParseLocale(locale string) (language.Tag, error) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return language.Und, mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ParseLocale")
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "invalid locale format").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US'")
	}
	return tag, nil
}

// NormalizeLocale strips POSIX encoding and modifier suffixes and converts
// underscores to hyphens. "C" and "POSIX" normalize to the empty string.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// DetectLocale returns the supported locale that best matches an
// Accept-Language style preference list. The first supported locale is
// the fallback.
func DetectLocale(acceptLanguage string, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	if stringx.IsBlank(acceptLanguage) {
		return supported[0]
	}

	preferences, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(preferences) == 0 {
		return supported[0]
	}

	_, index, confidence := language.NewMatcher(supported).Match(preferences...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// SystemLocale returns the locale configured in the environment
// (LC_ALL, LC_NUMERIC, LANG in that order), or fallback
func SystemLocale(fallback language.Tag) language.Tag {
	value := stringx.FirstNonBlank(os.Getenv("LC_ALL"), os.Getenv("LC_NUMERIC"), os.Getenv("LANG"))
	if tag, err := ParseLocale(value); err == nil {
		return tag
	}
	return fallback
}

// DisplayName returns the name of a locale in its own language,
// e.g. "Deutsch" for de
func DisplayName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}
