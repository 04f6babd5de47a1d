// Package catalog registers units from TOML or YAML files:
//
//	[[unit]]
//	kind = "length"
//	name = "ft"
//	factor = 0.3048   # metres per foot
//	display = false
//
// Standard returns the built-in SI and imperial set. A provider never
// loads it on its own:
//
//	p := units.New()
//	if err := catalog.Standard().Apply(p); err != nil {
//		return err
//	}
//
// Watch keeps a provider in sync with a catalog file.
package catalog
