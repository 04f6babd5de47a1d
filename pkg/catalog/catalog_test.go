package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/munits/foundation/core/config"
	mdwerror "github.com/msto63/munits/foundation/core/error"
	mdwlog "github.com/msto63/munits/foundation/core/log"
	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

func newProvider() *units.Provider {
	return units.New(units.Logger(mdwlog.NewNop()))
}

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	return path
}

const tomlCatalog = `
[[unit]]
kind = "length"
name = "m"
factor = 1.0
display = true

[[unit]]
kind = "length"
name = "ft"
factor = 0.3048
`

const yamlCatalog = `
unit:
  - kind: length
    name: m
    factor: 1
    display: true
  - kind: length
    name: ft
    factor: 0.3048
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	fromTOML, err := Load(writeCatalog(t, dir, "units.toml", tomlCatalog))
	if err != nil {
		t.Fatalf("TOML load failed: %v", err)
	}
	fromYAML, err := Load(writeCatalog(t, dir, "units.yaml", yamlCatalog))
	if err != nil {
		t.Fatalf("YAML load failed: %v", err)
	}

	expected := []Entry{
		{Kind: "length", Name: "m", Factor: 1, Display: true},
		{Kind: "length", Name: "ft", Factor: 0.3048},
	}
	if diff := cmp.Diff(expected, fromTOML.Units); diff != "" {
		t.Errorf("TOML entries mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expected, fromYAML.Units); diff != "" {
		t.Errorf("YAML entries mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(fromTOML.Source(), "units.toml") {
		t.Errorf("Expected source to be recorded, got %q", fromTOML.Source())
	}

	if _, err := Load(filepath.Join(dir, "absent.toml")); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
	broken := writeCatalog(t, dir, "broken.toml", "[[unit]\nkind=")
	if _, err := Load(broken); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Expected INVALID_CONFIG, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	c := &Catalog{Units: []Entry{
		{Kind: "length", Name: "m", Factor: 1, Display: true},
		{Kind: "length", Name: " ", Factor: 1},
		{Kind: "flux", Name: "Wb", Factor: 1},
		{Kind: "mass", Name: "kg", Factor: 0},
		{Kind: "mass", Name: "g", Factor: math.Inf(1)},
		{Kind: "length", Name: "km", Factor: 1000, Display: true},
	}}

	err := c.Validate()
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Fatalf("Expected VALIDATION_FAILED, got %v", err)
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("Expected *mdwerror.Error")
	}
	problems, _ := mdwErr.Details()["problems"].([]string)
	if len(problems) != 5 {
		t.Errorf("Expected 5 problems, got %d: %v", len(problems), problems)
	}

	if err := Standard().Validate(); err != nil {
		t.Errorf("Standard catalog must be valid: %v", err)
	}
}

func TestApply(t *testing.T) {
	t.Run("registers units and display units", func(t *testing.T) {
		c, err := Parse([]byte(tomlCatalog), config.FormatTOML)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		p := newProvider()
		if err := c.Apply(p); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}

		unit, name, ok := units.TryGetDisplayUnit[quantity.Length](p)
		if !ok || name != "m" || unit != quantity.Metre {
			t.Errorf("Expected display unit m, got (%v, %s, %v)", unit, name, ok)
		}
		if got, _ := p.GetUnit("ft"); got != quantity.Foot {
			t.Errorf("Expected ft to be Foot, got %v", got)
		}
	})

	t.Run("unknown kind registers nothing", func(t *testing.T) {
		c := &Catalog{Units: []Entry{
			{Kind: "length", Name: "m", Factor: 1},
			{Kind: "flux", Name: "Wb", Factor: 1},
		}}
		p := newProvider()

		err := c.Apply(p)
		if !mdwerror.HasCode(err, mdwerror.CodeUnknownKind) {
			t.Fatalf("Expected UNKNOWN_KIND, got %v", err)
		}
		if _, ok := p.GetUnit("m"); ok {
			t.Errorf("Expected nothing to be registered")
		}
	})

	t.Run("invalid entry registers nothing", func(t *testing.T) {
		c := &Catalog{Units: []Entry{
			{Kind: "length", Name: "m", Factor: 1},
			{Kind: "length", Name: "bad", Factor: -1},
		}}
		p := newProvider()

		if err := c.Apply(p); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Fatalf("Expected VALIDATION_FAILED, got %v", err)
		}
		if len(p.GetUnits(quantity.KindLength)) != 0 {
			t.Errorf("Expected nothing to be registered")
		}
	})
}

func TestStandard(t *testing.T) {
	p := newProvider()
	if err := Standard().Apply(p); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := Standard().Len(); got != 48 {
		t.Errorf("Expected 48 standard units, got %d", got)
	}

	expectedDisplay := map[quantity.Kind]string{
		quantity.KindLength:    "m",
		quantity.KindMass:      "kg",
		quantity.KindTime:      "s",
		quantity.KindArea:      "m²",
		quantity.KindVolume:    "m³",
		quantity.KindVelocity:  "m/s",
		quantity.KindForce:     "N",
		quantity.KindEnergy:    "J",
		quantity.KindPower:     "W",
		quantity.KindPressure:  "Pa",
		quantity.KindAngle:     "rad",
		quantity.KindFrequency: "Hz",
		quantity.KindData:      "B",
	}
	for kind, expected := range expectedDisplay {
		unit, name, ok := p.DisplayUnit(kind)
		if !ok || name != expected {
			t.Errorf("%s: expected display unit %s, got %s", kind, expected, name)
			continue
		}
		if unit.Value() != 1 {
			t.Errorf("%s: display unit should be the base unit, got %v", kind, unit.Value())
		}
		if base, _ := quantity.BaseUnit(kind); base != expected {
			t.Errorf("%s: display unit %s differs from base unit %s", kind, expected, base)
		}
	}

	conversions := []struct {
		kind     quantity.Kind
		input    string
		format   string
		expected string
	}{
		{quantity.KindLength, "1 mi", "%.3f km", "1.609 km"},
		{quantity.KindMass, "16 oz", "%.4f lb", "1.0000 lb"},
		{quantity.KindTime, "90 min", "h", "1.5 h"},
		{quantity.KindVelocity, "36 km/h", "%.1f", "10.0 m/s"},
		{quantity.KindAngle, "180 °", "%.5f rad", "3.14159 rad"},
		{quantity.KindData, "0.5 GB", "MB", "500 MB"},
		{quantity.KindArea, "2 ha", "%.2f km²", "0.02 km²"},
	}
	for _, tt := range conversions {
		t.Run(tt.input, func(t *testing.T) {
			value, unit, ok := p.Parse(tt.kind, tt.input)
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.input)
			}
			constructor, _ := quantity.Lookup(tt.kind)
			got, err := p.Format(tt.format, constructor(value*unit.Value()))
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}

	c := Standard()
	c.Units[0].Name = "changed"
	if Standard().Units[0].Name != "m" {
		t.Errorf("Standard must return independent copies")
	}
}

func TestMerge(t *testing.T) {
	extra := &Catalog{Units: []Entry{{Kind: "length", Name: "nmi", Factor: 1852}}}
	merged := Standard().Merge(extra)

	if merged.Len() != 49 {
		t.Errorf("Expected 49 entries, got %d", merged.Len())
	}
	if merged.Units[48].Name != "nmi" {
		t.Errorf("Expected merged entry last, got %s", merged.Units[48].Name)
	}
}
