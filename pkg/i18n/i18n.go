// Package i18n provides the display-language catalogs for the studio UI.
// Catalogs are embedded YAML files, one per supported language; lookups fall
// back to English and then to the key itself so a missing entry never fails.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is the end of the lookup fallback chain.
const DefaultLanguage = "en"

// Language pairs a language code with its self-described display name.
type Language struct {
	Code string
	Name string
}

// Supported lists the bundled languages in picker order.
func Supported() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "zh", Name: "中文"},
		{Code: "az", Name: "Azərbaycanca"},
	}
}

// IsSupported reports whether a language code has a bundled catalog.
func IsSupported(code string) bool {
	for _, l := range Supported() {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Manager resolves UI strings for the active display language and notifies
// listeners when the language changes.
type Manager struct {
	mu        sync.Mutex
	current   string
	catalogs  map[string]map[string]string
	listeners []func(code string)
}

// New loads all bundled catalogs and selects the given language.
// An unsupported code silently selects DefaultLanguage.
func New(lang string) (*Manager, error) {
	catalogs := make(map[string]map[string]string)
	for _, l := range Supported() {
		data, err := localeFS.ReadFile("locales/" + l.Code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", l.Code, err)
		}
		var nested map[string]any
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l.Code, err)
		}
		flat := make(map[string]string)
		flatten("", nested, flat)
		catalogs[l.Code] = flat
	}
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}
	return &Manager{current: lang, catalogs: catalogs}, nil
}

// flatten turns nested YAML maps into dotted keys ("group.file").
func flatten(prefix string, in map[string]any, out map[string]string) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		switch v := in[k].(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// Current returns the active language code.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetLanguage switches the active language and notifies listeners.
// Unsupported codes leave the language unchanged and return an error.
// Setting the already-active language is a no-op.
func (m *Manager) SetLanguage(code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("unsupported language: %s", code)
	}
	m.mu.Lock()
	if code == m.current {
		m.mu.Unlock()
		return nil
	}
	m.current = code
	listeners := make([]func(string), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(code)
	}
	return nil
}

// T resolves a catalog key for the active language, falling back to English
// and finally to the key itself.
func (m *Manager) T(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.catalogs[m.current][key]; ok {
		return s
	}
	if s, ok := m.catalogs[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// OnChange registers a listener invoked after every language switch.
func (m *Manager) OnChange(fn func(code string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}
