package units

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/pkg/quantity"
)

func lengthProvider() *Provider {
	p := newTestProvider()
	p.SetDisplayUnit(quantity.Metre, "m")
	p.RegisterUnit(quantity.Kilometre, "km")
	p.RegisterUnit(quantity.Length(0.001), "mm")
	p.RegisterUnit(quantity.Foot, "ft")
	return p
}

func TestFormat(t *testing.T) {
	p := lengthProvider()

	tests := []struct {
		name     string
		format   string
		value    quantity.Length
		expected string
	}{
		{"display unit", "", 5, "5 m"},
		{"explicit unit", "km", 2500, "2.5 km"},
		{"verb only", "%.2f", 1.5, "1.50 m"},
		{"verb and unit", "%.1f km", 1500, "1.5 km"},
		{"verb glued to unit", "%.0fmm", 0.25, "250 mm"},
		{"surrounding whitespace", "  km ", 1000, "1 km"},
		{"negative", "", -4, "-4 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Format(tt.format, tt.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatGeneric(t *testing.T) {
	p := lengthProvider()

	got, err := Format(p, "km", quantity.New(3, quantity.Kilometre))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "3 km" {
		t.Errorf("Expected '3 km', got %q", got)
	}
}

func TestFormatMisconfiguration(t *testing.T) {
	t.Run("no display unit", func(t *testing.T) {
		p := newTestProvider()
		p.RegisterUnit(quantity.Kilogram, "kg")

		_, err := p.Format("", quantity.Mass(5))
		if !errors.Is(err, ErrNoDisplayUnit) {
			t.Fatalf("Expected ErrNoDisplayUnit, got %v", err)
		}
		if !mdwerror.HasCode(err, mdwerror.CodeNoDisplayUnit) {
			t.Errorf("Expected code NO_DISPLAY_UNIT, got %s", mdwerror.GetCode(err))
		}
		if mdwerror.GetSeverity(err) != mdwerror.SeverityHigh {
			t.Errorf("Expected high severity, got %s", mdwerror.GetSeverity(err))
		}

		var mdwErr *mdwerror.Error
		if !errors.As(err, &mdwErr) {
			t.Fatalf("Expected *mdwerror.Error")
		}
		if mdwErr.Operation() != "units.Format" {
			t.Errorf("Expected operation units.Format, got %s", mdwErr.Operation())
		}
		if mdwErr.Details()["kind"] != "mass" {
			t.Errorf("Expected kind detail 'mass', got %v", mdwErr.Details()["kind"])
		}
	})

	t.Run("verb without display unit", func(t *testing.T) {
		p := newTestProvider()
		if _, err := p.Format("%.2f", quantity.Mass(5)); !errors.Is(err, ErrNoDisplayUnit) {
			t.Errorf("Expected ErrNoDisplayUnit, got %v", err)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		p := lengthProvider()

		_, err := p.Format("%.1f xyz", quantity.Metre)
		if !errors.Is(err, ErrUnknownUnit) {
			t.Fatalf("Expected ErrUnknownUnit, got %v", err)
		}
		if !mdwerror.HasCode(err, mdwerror.CodeUnknownUnit) {
			t.Errorf("Expected code UNKNOWN_UNIT, got %s", mdwerror.GetCode(err))
		}
	})

	t.Run("unit of another kind", func(t *testing.T) {
		p := lengthProvider()
		p.RegisterUnit(quantity.Kilogram, "kg")

		if _, err := p.Format("kg", quantity.Metre); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Expected ErrUnknownUnit, got %v", err)
		}
	})

	t.Run("invalid verb", func(t *testing.T) {
		p := lengthProvider()
		if _, err := p.Format("%q m", quantity.Metre); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("Expected INVALID_FORMAT, got %v", err)
		}
	})

	t.Run("nil quantity", func(t *testing.T) {
		p := lengthProvider()
		if _, err := p.Format("", nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("Expected INVALID_INPUT, got %v", err)
		}
	})
}

func TestFormatUnitNamedLikeVerb(t *testing.T) {
	p := newTestProvider()
	p.SetDisplayUnit(quantity.Angle(1), "rad")
	p.RegisterUnit(quantity.Angle(0.01), "%")

	got, err := p.Format("%", quantity.Angle(0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "50 %" {
		t.Errorf("Expected '50 %%', got %q", got)
	}
}

func TestFormatLocale(t *testing.T) {
	p := lengthProvider().WithLocale(language.German)

	got, err := p.Format("", quantity.Length(1.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "1,5 m" {
		t.Errorf("Expected '1,5 m', got %q", got)
	}

	got, err = p.Format("%.2f km", quantity.Length(1234500))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, ",50 km") {
		t.Errorf("Expected German decimal comma, got %q", got)
	}
}
