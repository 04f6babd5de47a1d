// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package documentation for the i18n module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Number formatting, x/text locale handling

/*
Package i18n provides locale handling for mUnits.

Locales are golang.org/x/text/language tags. ParseLocale accepts POSIX
style values ("de_DE.UTF-8"), DetectLocale matches preference lists against
the supported set and SystemLocale reads LC_ALL, LC_NUMERIC and LANG.

NumberFormat renders and parses numbers for one locale:

	nf := i18n.NewNumberFormat(language.German)
	nf.Format("%.2f", 1234.5)   // "1.234,50"
	v, err := nf.ParseFloat("1.234,5")

Manager loads translated labels from TOML or YAML files named after their
locale (en.toml, de.yaml) from any fs.FS, typically an embed.FS:

	m, err := i18n.New(i18n.Options{FS: locales, Dir: "locales"})
	m.SetLocale(language.German)
	m.T("kinds.length") // "Länge"
*/
package i18n
