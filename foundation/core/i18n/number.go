// File: number.go
// Title: Locale-Aware Number Formatting and Parsing
// Description: Formats floats with golang.org/x/text/message printers and
//              parses localized numeric literals back by deriving the
//              locale's digit, separator and minus symbols from the printer.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Typographic exponents, strict digit grouping

package i18n

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/stringx"
)

// literalPattern is the accepted shape after normalization: optional sign,
// digits with optional fraction, optional exponent
var literalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// spaceGroups are the spacing characters CLDR uses as group separators
var spaceGroups = []rune{' ', '\u00a0', '\u202f'}

// exponentMarkers precede a superscript exponent in scientific notation
// as printed by x/text ("6.02×10²³", "6,02·10²³")
var exponentMarkers = []string{"×10", "·10"}

// superscripts maps superscript exponent runes to their ASCII form
var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-', '⁺': '+',
}

// NumberFormat formats and parses numbers for one locale
type NumberFormat struct {
	tag     language.Tag
	printer *message.Printer
	zero    rune
	decimal string
	group   []rune
	minus   string

	// Digit grouping: the group next to the decimal separator has primary
	// digits, all others but the leading one have secondary digits
	primary   int
	secondary int

	markers []string
}

// NewNumberFormat creates a number format for tag
func NewNumberFormat(tag language.Tag) *NumberFormat {
	nf := &NumberFormat{
		tag:       tag,
		printer:   message.NewPrinter(tag),
		zero:      '0',
		decimal:   ".",
		minus:     "-",
		primary:   3,
		secondary: 3,
		markers:   exponentMarkers,
	}
	nf.deriveSymbols()
	return nf
}

// deriveSymbols reads the digit zero, decimal separator, group separator
// and minus sign from what the printer produces for known values
func (nf *NumberFormat) deriveSymbols() {
	if zero := []rune(nf.printer.Sprintf("%d", 0)); len(zero) == 1 && unicode.IsDigit(zero[0]) {
		nf.zero = zero[0]
	}

	var separators []string
	var runs []int
	var current strings.Builder
	digits := 0
	for _, r := range nf.printer.Sprintf("%.1f", 1234567.5) {
		if nf.isDigit(r) {
			if current.Len() > 0 {
				separators = append(separators, current.String())
				current.Reset()
			}
			digits++
			continue
		}
		if digits > 0 {
			runs = append(runs, digits)
			digits = 0
		}
		current.WriteRune(r)
	}

	// runs holds the integer digit groups; the fraction run is never closed
	if len(runs) >= 2 {
		nf.primary = runs[len(runs)-1]
		nf.secondary = runs[len(runs)-2]
	}

	if len(separators) > 0 {
		nf.decimal = separators[len(separators)-1]
	}
	if len(separators) > 1 {
		group := []rune(separators[0])
		if len(group) == 1 && unicode.IsSpace(group[0]) {
			group = spaceGroups
		}
		nf.group = group
	}

	negative := nf.printer.Sprintf("%d", -1)
	if sign := strings.TrimSuffix(negative, string(nf.zero+1)); sign != negative && sign != "" {
		nf.minus = sign
	}

	// The exponent marker is what follows the mantissa in "%e" output
	scientific := nf.printer.Sprintf("%e", 1.0)
	rest := strings.TrimLeftFunc(scientific, func(r rune) bool {
		return nf.isDigit(r) || strings.ContainsRune(nf.decimal, r)
	})
	if marker := strings.TrimRightFunc(rest, isSuperscript); marker != "" && marker != rest && !slices.Contains(nf.markers, marker) {
		nf.markers = append(slices.Clone(nf.markers), marker)
	}
}

func isSuperscript(r rune) bool {
	_, ok := superscripts[r]
	return ok
}

func (nf *NumberFormat) isGroup(r rune) bool {
	return slices.Contains(nf.group, r)
}

func (nf *NumberFormat) isDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= nf.zero && r <= nf.zero+9)
}

// Tag returns the locale of this format
func (nf *NumberFormat) Tag() language.Tag {
	return nf.tag
}

// DecimalSeparator returns the locale's decimal separator
func (nf *NumberFormat) DecimalSeparator() string {
	return nf.decimal
}

// GroupSeparator returns the locale's group separator, or "" if the
// locale does not group digits
func (nf *NumberFormat) GroupSeparator() string {
	if len(nf.group) == 0 {
		return ""
	}
	return string(nf.group[0])
}

// Format renders v with a printf float verb such as "%g" or "%.2f"
func (nf *NumberFormat) Format(verb string, v float64) string {
	return nf.printer.Sprintf(verb, v)
}

// Normalize converts a localized literal to the plain form strconv
// understands: ASCII digits, '.' as decimal separator, no grouping and an
// ASCII exponent. Group separators are accepted only between complete
// digit groups of the integer part.
func (nf *NumberFormat) Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if nf.minus != "-" {
		s = strings.ReplaceAll(s, nf.minus, "-")
	}
	s = strings.ReplaceAll(s, "\u2212", "-")
	if nf.zero != '0' {
		s = strings.Map(func(r rune) rune {
			if r >= nf.zero && r <= nf.zero+9 {
				return '0' + (r - nf.zero)
			}
			return r
		}, s)
	}

	mantissa, exponent, err := nf.splitExponent(s)
	if err != nil {
		return "", err
	}

	sign := ""
	if strings.HasPrefix(mantissa, "-") || strings.HasPrefix(mantissa, "+") {
		sign, mantissa = mantissa[:1], mantissa[1:]
	}

	integer, fraction, hasFraction := strings.Cut(mantissa, nf.decimal)
	if strings.ContainsFunc(fraction, nf.isGroup) {
		return "", nf.malformed(s, "group separator in fraction")
	}
	integer, err = nf.ungroup(s, integer)
	if err != nil {
		return "", err
	}

	if hasFraction {
		return sign + integer + "." + fraction + exponent, nil
	}
	return sign + integer + exponent, nil
}

// splitExponent separates a typographic ("×10⁻⁷") or ASCII ("e-7")
// exponent from the mantissa and returns the exponent in ASCII form
func (nf *NumberFormat) splitExponent(s string) (mantissa, exponent string, err error) {
	for _, marker := range nf.markers {
		i := strings.Index(s, marker)
		if i < 0 {
			continue
		}
		var b strings.Builder
		b.WriteByte('e')
		for _, r := range s[i+len(marker):] {
			ascii, ok := superscripts[r]
			if !ok {
				return "", "", nf.malformed(s, "invalid exponent")
			}
			b.WriteRune(ascii)
		}
		return s[:i], b.String(), nil
	}

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i], s[i:], nil
	}
	return s, "", nil
}

// ungroup validates the digit grouping of an integer part and removes the
// separators. Ungrouped integers are accepted as they are.
func (nf *NumberFormat) ungroup(input, integer string) (string, error) {
	if !strings.ContainsFunc(integer, nf.isGroup) {
		return integer, nil
	}

	var groups []int
	digits := 0
	for _, r := range integer {
		if nf.isGroup(r) {
			groups = append(groups, digits)
			digits = 0
			continue
		}
		digits++
	}
	groups = append(groups, digits)

	last := len(groups) - 1
	for i, size := range groups {
		switch {
		case i == last && size != nf.primary,
			i == 0 && (size < 1 || size > nf.secondary),
			i > 0 && i < last && size != nf.secondary:
			return "", nf.malformed(input, "misplaced group separator")
		}
	}
	return stringx.StripRunes(integer, nf.group...), nil
}

func (nf *NumberFormat) malformed(input, reason string) error {
	return mdwerror.New("malformed number: "+reason).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("i18n.ParseFloat").
		WithDetail("input", input).
		WithDetail("locale", nf.tag.String())
}

// ParseFloat parses a localized numeric literal. NaN, infinities and
// out-of-range values are rejected.
func (nf *NumberFormat) ParseFloat(s string) (float64, error) {
	normalized, err := nf.Normalize(s)
	if err != nil {
		return 0, err
	}
	if !literalPattern.MatchString(normalized) {
		return 0, nf.malformed(s, "not a numeric literal")
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, mdwerror.New("number out of range").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("i18n.ParseFloat").
			WithDetail("input", s).
			WithDetail("locale", nf.tag.String())
	}
	return v, nil
}
