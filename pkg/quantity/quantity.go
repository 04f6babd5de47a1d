// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     quantity
// Description: Quantity capability and the built-in quantity types
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package quantity

// Quantity is a physical value of one kind. Value is the magnitude in the
// kind's base unit (metres for Length, kilograms for Mass, ...).
type Quantity interface {
	Kind() Kind
	Value() float64
}

// Measure is a Quantity backed by a float64. Its zero value reports the
// kind, which lets generic code dispatch on the type parameter alone.
type Measure interface {
	Quantity
	~float64
}

// KindOf returns the kind of the quantity type T
func KindOf[T Measure]() Kind {
	var zero T
	return zero.Kind()
}

// New returns value times unit, e.g. New(5, Kilometre) is 5000 m
func New[T Measure](value float64, unit T) T {
	return T(value * float64(unit))
}

// In expresses q as a multiple of unit
func In[T Measure](q, unit T) float64 {
	return float64(q) / float64(unit)
}

// Length in metres
type Length float64

func (Length) Kind() Kind       { return KindLength }
func (q Length) Value() float64 { return float64(q) }

// Mass in kilograms
type Mass float64

func (Mass) Kind() Kind       { return KindMass }
func (q Mass) Value() float64 { return float64(q) }

// Time in seconds
type Time float64

func (Time) Kind() Kind       { return KindTime }
func (q Time) Value() float64 { return float64(q) }

// Area in square metres
type Area float64

func (Area) Kind() Kind       { return KindArea }
func (q Area) Value() float64 { return float64(q) }

// Volume in cubic metres
type Volume float64

func (Volume) Kind() Kind       { return KindVolume }
func (q Volume) Value() float64 { return float64(q) }

// Velocity in metres per second
type Velocity float64

func (Velocity) Kind() Kind       { return KindVelocity }
func (q Velocity) Value() float64 { return float64(q) }

// Force in newtons
type Force float64

func (Force) Kind() Kind       { return KindForce }
func (q Force) Value() float64 { return float64(q) }

// Energy in joules
type Energy float64

func (Energy) Kind() Kind       { return KindEnergy }
func (q Energy) Value() float64 { return float64(q) }

// Power in watts
type Power float64

func (Power) Kind() Kind       { return KindPower }
func (q Power) Value() float64 { return float64(q) }

// Pressure in pascals
type Pressure float64

func (Pressure) Kind() Kind       { return KindPressure }
func (q Pressure) Value() float64 { return float64(q) }

// Angle in radians
type Angle float64

func (Angle) Kind() Kind       { return KindAngle }
func (q Angle) Value() float64 { return float64(q) }

// Frequency in hertz
type Frequency float64

func (Frequency) Kind() Kind       { return KindFrequency }
func (q Frequency) Value() float64 { return float64(q) }

// Data in bytes
type Data float64

func (Data) Kind() Kind       { return KindData }
func (q Data) Value() float64 { return float64(q) }

// Common units
const (
	Metre     Length = 1
	Kilometre Length = 1000
	Foot      Length = 0.3048

	Kilogram Mass = 1
	Gram     Mass = 0.001
	Pound    Mass = 0.45359237

	Second Time = 1
	Minute Time = 60
	Hour   Time = 3600

	Byte     Data = 1
	Kilobyte Data = 1000
)
