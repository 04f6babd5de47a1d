// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests for translation loading, locale matching, and
//              locale-aware number formatting and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: fs.FS sources, number format tests

package i18n

import (
	"math"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/munits/foundation/core/error"
)

func testLocales() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.toml": {Data: []byte(`
[kinds]
length = "Length"
mass = "Mass"

[list]
units = "{{.count}} units"
`)},
		"locales/de.yaml": {Data: []byte(`
kinds:
  length: Länge
list:
  units: "{{.count}} Einheiten"
`)},
		"locales/README.md": {Data: []byte("ignored")},
	}
}

func TestNew(t *testing.T) {
	t.Run("loads all locales", func(t *testing.T) {
		m, err := New(Options{FS: testLocales(), Dir: "locales"})
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}

		if m.DefaultLocale() != language.English {
			t.Errorf("Expected default locale en, got %s", m.DefaultLocale())
		}
		locales := m.AvailableLocales()
		if len(locales) != 2 || locales[0] != language.English || locales[1] != language.German {
			t.Errorf("Expected [en de], got %v", locales)
		}
	})

	t.Run("missing default locale", func(t *testing.T) {
		_, err := New(Options{FS: testLocales(), Dir: "locales", DefaultLocale: language.French})
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := New(Options{FS: testLocales(), Dir: "absent"}); err == nil {
			t.Errorf("Expected error for missing directory")
		}
	})

	t.Run("nil source", func(t *testing.T) {
		if _, err := New(Options{}); err == nil {
			t.Errorf("Expected error for nil FS")
		}
	})
}

func TestTranslate(t *testing.T) {
	m, err := New(Options{FS: testLocales(), Dir: "locales"})
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if got := m.T("kinds.length"); got != "Length" {
		t.Errorf("Expected 'Length', got '%s'", got)
	}
	if got := m.T("list.units", map[string]interface{}{"count": 3}); got != "3 units" {
		t.Errorf("Expected '3 units', got '%s'", got)
	}

	if chosen := m.SetLocale(language.MustParse("de-AT")); chosen != language.German {
		t.Errorf("Expected de-AT to match de, got %s", chosen)
	}
	if got := m.T("kinds.length"); got != "Länge" {
		t.Errorf("Expected 'Länge', got '%s'", got)
	}
	if got := m.T("list.units", map[string]interface{}{"count": 3}); got != "3 Einheiten" {
		t.Errorf("Expected '3 Einheiten', got '%s'", got)
	}
	if got := m.T("kinds.mass"); got != "Mass" {
		t.Errorf("Expected fallback 'Mass', got '%s'", got)
	}
	if got := m.T("kinds.unknown"); got != "kinds.unknown" {
		t.Errorf("Expected key echo, got '%s'", got)
	}
	if _, err := m.TryT("kinds"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND for a table key, got %v", err)
	}
	if !m.HasTranslation("kinds.mass") || m.HasTranslation("kinds.angle") {
		t.Errorf("HasTranslation mismatch")
	}

	if chosen := m.SetLocale(language.Japanese); chosen != language.English {
		t.Errorf("Expected fallback to en, got %s", chosen)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected language.Tag
		wantErr  bool
	}{
		{"de", language.German, false},
		{"de_DE.UTF-8", language.MustParse("de-DE"), false},
		{"en-US", language.AmericanEnglish, false},
		{"fr_CH@euro", language.MustParse("fr-CH"), false},
		{"C", language.Und, true},
		{"", language.Und, true},
		{"not a locale", language.Und, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := ParseLocale(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tag != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tag)
			}
		})
	}
}

func TestDetectLocale(t *testing.T) {
	supported := []language.Tag{language.English, language.German, language.French}

	if got := DetectLocale("de-CH,de;q=0.9,en;q=0.8", supported); got != language.German {
		t.Errorf("Expected de, got %s", got)
	}
	if got := DetectLocale("ja", supported); got != language.English {
		t.Errorf("Expected fallback en, got %s", got)
	}
	if got := DetectLocale("", supported); got != language.English {
		t.Errorf("Expected fallback en for blank header, got %s", got)
	}
	if got := DetectLocale("fr", nil); got != language.Und {
		t.Errorf("Expected und without supported locales, got %s", got)
	}
}

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	if got := SystemLocale(language.English); got != language.MustParse("de-DE") {
		t.Errorf("Expected de-DE, got %s", got)
	}

	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "C")
	if got := SystemLocale(language.French); got != language.French {
		t.Errorf("Expected fallback fr, got %s", got)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(language.German); got != "Deutsch" {
		t.Errorf("Expected 'Deutsch', got '%s'", got)
	}
}

func TestNumberFormat(t *testing.T) {
	t.Run("english symbols", func(t *testing.T) {
		nf := NewNumberFormat(language.English)
		if nf.DecimalSeparator() != "." || nf.GroupSeparator() != "," {
			t.Errorf("Expected '.' and ',', got %q and %q", nf.DecimalSeparator(), nf.GroupSeparator())
		}
		if got := nf.Format("%g", 5); got != "5" {
			t.Errorf("Expected '5', got '%s'", got)
		}
		if got := nf.Format("%.2f", 1.5); got != "1.50" {
			t.Errorf("Expected '1.50', got '%s'", got)
		}
	})

	t.Run("german symbols", func(t *testing.T) {
		nf := NewNumberFormat(language.German)
		if nf.DecimalSeparator() != "," || nf.GroupSeparator() != "." {
			t.Errorf("Expected ',' and '.', got %q and %q", nf.DecimalSeparator(), nf.GroupSeparator())
		}
		v, err := nf.ParseFloat("1.234,5")
		if err != nil || v != 1234.5 {
			t.Errorf("Expected 1234.5, got %v (%v)", v, err)
		}
	})

	t.Run("parse", func(t *testing.T) {
		nf := NewNumberFormat(language.English)
		tests := []struct {
			input    string
			expected float64
		}{
			{"5", 5},
			{"-2.5", -2.5},
			{"+3", 3},
			{"1,234.5", 1234.5},
			{".5", 0.5},
			{"1e3", 1000},
			{"2.5E-2", 0.025},
			{"  7  ", 7},
		}
		for _, tt := range tests {
			v, err := nf.ParseFloat(tt.input)
			if err != nil {
				t.Errorf("ParseFloat(%q): unexpected error %v", tt.input, err)
				continue
			}
			if v != tt.expected {
				t.Errorf("ParseFloat(%q): expected %v, got %v", tt.input, tt.expected, v)
			}
		}
	})

	t.Run("rejects malformed", func(t *testing.T) {
		nf := NewNumberFormat(language.English)
		for _, input := range []string{"", "abc", "NaN", "Inf", "-inf", "1e999", "0x10", "1..2", "5 kg", "e5"} {
			_, err := nf.ParseFloat(input)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("ParseFloat(%q): expected INVALID_FORMAT, got %v", input, err)
			}
		}
	})

	t.Run("scientific notation", func(t *testing.T) {
		tests := []struct {
			tag      language.Tag
			input    string
			expected float64
		}{
			{language.English, "6.02×10²³", 6.02e23},
			{language.English, "1.234567×10⁰⁶", 1234567},
			{language.English, "1×10⁻⁰⁷", 1e-7},
			{language.English, "-1.5×10⁺⁰³", -1500},
			{language.German, "6,02·10²³", 6.02e23},
			{language.German, "1,234·10⁻⁰⁵", 1.234e-5},
			{language.German, "2,5E-2", 0.025},
		}
		for _, tt := range tests {
			nf := NewNumberFormat(tt.tag)
			v, err := nf.ParseFloat(tt.input)
			if err != nil {
				t.Errorf("%s: ParseFloat(%q): unexpected error %v", tt.tag, tt.input, err)
				continue
			}
			if math.Abs(v-tt.expected) > 1e-9*math.Abs(tt.expected) {
				t.Errorf("%s: ParseFloat(%q): expected %v, got %v", tt.tag, tt.input, tt.expected, v)
			}
		}

		nf := NewNumberFormat(language.English)
		for _, input := range []string{"1×10", "1×10²x", "1×10⁻", "×10²"} {
			if _, err := nf.ParseFloat(input); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("ParseFloat(%q): expected INVALID_FORMAT, got %v", input, err)
			}
		}
	})

	t.Run("digit grouping", func(t *testing.T) {
		tests := []struct {
			tag   language.Tag
			input string
			valid bool
		}{
			{language.English, "1,234", true},
			{language.English, "-12,345,678.25", true},
			{language.English, "1234567", true},
			{language.English, "1,5", false},
			{language.English, "5,,,0", false},
			{language.English, ",123", false},
			{language.English, "123,", false},
			{language.English, "1,2345", false},
			{language.English, "1234,567", false},
			{language.English, "1.234,5", false},
			{language.German, "1.234,5", true},
			{language.German, "1.5", false},
			{language.German, "1.2.3", false},
			{language.German, "1,5", true},
			{language.German, "1,2.5", false},
		}
		for _, tt := range tests {
			_, err := NewNumberFormat(tt.tag).ParseFloat(tt.input)
			if tt.valid && err != nil {
				t.Errorf("%s: ParseFloat(%q): unexpected error %v", tt.tag, tt.input, err)
			}
			if !tt.valid && !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("%s: ParseFloat(%q): expected INVALID_FORMAT, got %v", tt.tag, tt.input, err)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		values := []float64{0, 5, -2.5, 0.3048, 1234.5, 1609.5, 6.02e23, 0.0025, 1234567, 1e21, 1e-7, 1.234e-05, -4.5e-9}
		for _, tag := range []language.Tag{language.English, language.German, language.French, language.MustParse("de-CH")} {
			nf := NewNumberFormat(tag)
			for _, v := range values {
				text := nf.Format("%g", v)
				parsed, err := nf.ParseFloat(text)
				if err != nil {
					t.Errorf("%s: ParseFloat(%q) failed: %v", tag, text, err)
					continue
				}
				if math.Abs(parsed-v) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("%s: round trip of %v via %q gave %v", tag, v, text, parsed)
				}
			}
		}
	})
}
