// Package quantity defines the quantity capability used by the unit
// provider: a Kind tag, the Quantity interface and one float64-backed type
// per kind.
//
//	d := quantity.New(5, quantity.Kilometre) // Length(5000)
//	quantity.In(d, quantity.Foot)            // 16404.2
//
// Lookup maps a Kind back to a constructor so that units described in
// configuration files can be turned into typed quantities.
package quantity
