// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager that loads translations from TOML
//              and YAML language files (from any fs.FS) and resolves keys for
//              the best matching locale with template interpolation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2026-10-17 v0.2.0: fs.FS sources, language.Tag locales with CLDR matching,
//                      dropped pluralization and polling reload

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"

	"github.com/msto63/munits/foundation/core/config"
	mdwerror "github.com/msto63/munits/foundation/core/error"
)

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale language.Tag // Default locale (default: English)
	FS            fs.FS        // Source of <locale>.toml / <locale>.yaml files
	Dir           string       // Directory inside FS (default: ".")
}

// Manager manages translations for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale language.Tag
	currentLocale language.Tag
	tags          []language.Tag
	matcher       language.Matcher
	translations  map[language.Tag]map[string]interface{}
	templates     map[string]*template.Template
}

// New creates a new i18n manager and loads every language file it finds
func New(options Options) (*Manager, error) {
	if options.FS == nil {
		return nil, mdwerror.New("translation source cannot be nil").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.New")
	}
	if options.DefaultLocale == language.Und {
		options.DefaultLocale = language.English
	}
	if options.Dir == "" {
		options.Dir = "."
	}

	m := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		translations:  make(map[language.Tag]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	if err := m.loadAll(options.FS, options.Dir); err != nil {
		return nil, err
	}
	return m, nil
}

// loadAll loads all locale files from dir. The default locale must be present.
func (m *Manager) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		tag, err := language.Parse(strings.ReplaceAll(strings.TrimSuffix(name, path.Ext(name)), "_", "-"))
		if err != nil {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return mdwerror.Wrap(err, "failed to read locale file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("i18n.New").
				WithDetail("file", name)
		}

		var data map[string]interface{}
		if err := config.Decode(content, config.DetectFormat(name), &data); err != nil {
			return mdwerror.Wrap(err, "failed to parse locale file").
				WithOperation("i18n.New").
				WithDetail("file", name)
		}
		m.translations[tag] = data
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return mdwerror.New(fmt.Sprintf("default locale '%s' not found", m.defaultLocale)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("locale", m.defaultLocale.String())
	}

	// The default locale goes first so the matcher falls back to it
	m.tags = append(m.tags, m.defaultLocale)
	others := make([]language.Tag, 0, len(m.translations)-1)
	for tag := range m.translations {
		if tag != m.defaultLocale {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	m.tags = append(m.tags, others...)
	m.matcher = language.NewMatcher(m.tags)
	return nil
}

// T translates a key with optional template data. Unknown keys are
// returned unchanged.
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return key
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	translation := m.lookup(key, m.currentLocale)
	if translation == "" {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.render(key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.TryT").
				WithDetail("key", key)
		}
		return rendered, nil
	}
	return translation, nil
}

// lookup resolves key in locale, falling back to the default locale
func (m *Manager) lookup(key string, locale language.Tag) string {
	if value := nestedValue(m.translations[locale], key); value != "" {
		return value
	}
	if locale != m.defaultLocale {
		return nestedValue(m.translations[m.defaultLocale], key)
	}
	return ""
}

func nestedValue(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			if value, ok := current[k]; ok {
				if _, isMap := value.(map[string]interface{}); isMap {
					return ""
				}
				return fmt.Sprintf("%v", value)
			}
			return ""
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return ""
		}
		current = next
	}
	return ""
}

// render executes a translation template; callers hold the write lock
func (m *Manager) render(key, text string, data map[string]interface{}) (string, error) {
	cacheKey := m.currentLocale.String() + "/" + key
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(key).Parse(text)
		if err != nil {
			return text, err
		}
		m.templates[cacheKey] = tmpl
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, err
	}
	return result.String(), nil
}

// SetLocale switches to the available locale that best matches tag and
// returns it. Unsupported languages fall back to the default locale.
func (m *Manager) SetLocale(tag language.Tag) language.Tag {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, index, _ := m.matcher.Match(tag)
	m.currentLocale = m.tags[index]
	return m.currentLocale
}

// Locale returns the current active locale
func (m *Manager) Locale() language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// DefaultLocale returns the default locale
func (m *Manager) DefaultLocale() language.Tag {
	return m.defaultLocale
}

// AvailableLocales returns all loaded locales, default first
func (m *Manager) AvailableLocales() []language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]language.Tag, len(m.tags))
	copy(result, m.tags)
	return result
}

// HasTranslation reports whether key resolves in the current locale or the default
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(key, m.currentLocale) != ""
}
