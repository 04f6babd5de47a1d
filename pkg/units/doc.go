// Package units implements the unit provider: a registry of named units
// per quantity kind plus one display unit per kind, used to format
// quantities as text and to parse text back into quantities.
//
//	p := units.New()
//	p.SetDisplayUnit(quantity.Metre, "m")
//	p.RegisterUnit(quantity.Kilometre, "km")
//
//	s, _ := p.Format("%.1f km", quantity.New(1500, quantity.Metre)) // "1.5 km"
//	v, unit, ok := units.TryParse[quantity.Length](p, "1.5 km")   // 1.5, Kilometre, true
//
// Numbers are written and read for the provider's locale
// (golang.org/x/text). Format reports misconfiguration as
// *mdwerror.Error values that match ErrNoDisplayUnit or ErrUnknownUnit
// with errors.Is; Parse and the lookups report misses with ok == false.
package units
