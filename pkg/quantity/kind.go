// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     quantity
// Description: Quantity kinds, the type tag every unit is filed under
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package quantity

import (
	"strings"
	"sync"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/mapx"
)

// Kind identifies a category of physical measurement
type Kind string

const (
	KindLength    Kind = "length"
	KindMass      Kind = "mass"
	KindTime      Kind = "time"
	KindArea      Kind = "area"
	KindVolume    Kind = "volume"
	KindVelocity  Kind = "velocity"
	KindForce     Kind = "force"
	KindEnergy    Kind = "energy"
	KindPower     Kind = "power"
	KindPressure  Kind = "pressure"
	KindAngle     Kind = "angle"
	KindFrequency Kind = "frequency"
	KindData      Kind = "data"
)

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// Constructor turns a magnitude in the kind's base unit into a Quantity
type Constructor func(base float64) Quantity

type kindInfo struct {
	baseUnit    string
	constructor Constructor
}

var (
	kindsMu sync.RWMutex
	kinds   = map[Kind]kindInfo{
		KindLength:    {"m", func(v float64) Quantity { return Length(v) }},
		KindMass:      {"kg", func(v float64) Quantity { return Mass(v) }},
		KindTime:      {"s", func(v float64) Quantity { return Time(v) }},
		KindArea:      {"m²", func(v float64) Quantity { return Area(v) }},
		KindVolume:    {"m³", func(v float64) Quantity { return Volume(v) }},
		KindVelocity:  {"m/s", func(v float64) Quantity { return Velocity(v) }},
		KindForce:     {"N", func(v float64) Quantity { return Force(v) }},
		KindEnergy:    {"J", func(v float64) Quantity { return Energy(v) }},
		KindPower:     {"W", func(v float64) Quantity { return Power(v) }},
		KindPressure:  {"Pa", func(v float64) Quantity { return Pressure(v) }},
		KindAngle:     {"rad", func(v float64) Quantity { return Angle(v) }},
		KindFrequency: {"Hz", func(v float64) Quantity { return Frequency(v) }},
		KindData:      {"B", func(v float64) Quantity { return Data(v) }},
	}
)

// Register adds a kind so catalogs can construct quantities of it.
// Registering an existing kind replaces its constructor.
func Register(kind Kind, baseUnit string, constructor Constructor) error {
	if strings.TrimSpace(string(kind)) == "" || constructor == nil {
		return mdwerror.New("kind name and constructor are required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("quantity.Register").
			WithDetail("kind", string(kind))
	}

	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[kind] = kindInfo{baseUnit: baseUnit, constructor: constructor}
	return nil
}

// Lookup returns the constructor for kind
func Lookup(kind Kind) (Constructor, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	info, ok := kinds[kind]
	return info.constructor, ok
}

// BaseUnit returns the symbol of the unit Value() is expressed in
func BaseUnit(kind Kind) (string, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	info, ok := kinds[kind]
	return info.baseUnit, ok
}

// Kinds lists all known kinds in alphabetical order
func Kinds() []Kind {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	return mapx.SortedKeys(kinds)
}

// ParseKind resolves a kind name case-insensitively
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Lookup(kind); !ok {
		return "", mdwerror.New("unknown quantity kind").
			WithCode(mdwerror.CodeUnknownKind).
			WithOperation("quantity.ParseKind").
			WithDetail("kind", name)
	}
	return kind, nil
}
