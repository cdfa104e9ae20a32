// File: i18n.go
// Title: Locale Table Implementation
// Description: Implements the Table type and the process-wide registry of
//              embedded locale tables loaded from TOML and YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2025-08-14 v0.2.0: Embedded locale tables, period marker aliases

package i18n

import (
	"embed"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	mdwlog "github.com/msto63/jcal/foundation/core/log"
	mdwstringx "github.com/msto63/jcal/foundation/utils/stringx"
)

// DefaultLocale is the locale returned by Default
const DefaultLocale = "fa"

//go:embed locales/*.toml locales/*.yaml
var localeFS embed.FS

// Format represents the language file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// tableFile is the on-disk shape of a locale table
type tableFile struct {
	Locale    string   `toml:"locale" yaml:"locale"`
	Name      string   `toml:"name" yaml:"name"`
	Direction string   `toml:"direction" yaml:"direction"`
	Months    []string `toml:"months" yaml:"months"`
	Period    struct {
		AM        string   `toml:"am" yaml:"am"`
		PM        string   `toml:"pm" yaml:"pm"`
		AMAliases []string `toml:"am_aliases" yaml:"am_aliases"`
		PMAliases []string `toml:"pm_aliases" yaml:"pm_aliases"`
	} `toml:"period" yaml:"period"`
	Labels map[string]string `toml:"labels" yaml:"labels"`
}

// Table is an immutable locale table
type Table struct {
	locale    string
	name      string
	direction string
	months    [12]string
	am        string
	pm        string
	amAliases []string
	pmAliases []string
	labels    map[string]string
}

// ParseTable parses a locale table from TOML or YAML content
func ParseTable(content []byte, format Format) (*Table, error) {
	var data tableFile

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse TOML locale table").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("i18n.ParseTable")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse YAML locale table").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("i18n.ParseTable")
		}
	default:
		return nil, mdwerror.New("unsupported locale table format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.ParseTable").
			WithDetail("format", format.String())
	}

	return newTable(data)
}

func newTable(data tableFile) (*Table, error) {
	if mdwstringx.IsBlank(data.Locale) {
		return nil, mdwerror.New("locale table has no locale").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("i18n.ParseTable")
	}
	if len(data.Months) != 12 {
		return nil, mdwerror.New("locale table must list 12 months").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ParseTable").
			WithDetail("locale", data.Locale).
			WithDetail("months", len(data.Months))
	}
	if mdwstringx.IsBlank(data.Period.AM) || mdwstringx.IsBlank(data.Period.PM) {
		return nil, mdwerror.New("locale table has no period markers").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("i18n.ParseTable").
			WithDetail("locale", data.Locale)
	}

	t := &Table{
		locale:    data.Locale,
		name:      mdwstringx.FromBlankDefault(data.Name, data.Locale),
		direction: mdwstringx.FromBlankDefault(data.Direction, "ltr"),
		am:        data.Period.AM,
		pm:        data.Period.PM,
		labels:    make(map[string]string, len(data.Labels)),
	}
	for i, m := range data.Months {
		t.months[i] = strings.TrimSpace(m)
	}
	for k, v := range data.Labels {
		t.labels[k] = v
	}

	// The canonical markers always count as aliases of themselves.
	t.amAliases = normalizeMarkers(append([]string{data.Period.AM}, data.Period.AMAliases...))
	t.pmAliases = normalizeMarkers(append([]string{data.Period.PM}, data.Period.PMAliases...))

	return t, nil
}

// NormalizeMarker strips whitespace and dots from a period marker and
// upper-cases Latin letters: "ب.ظ" -> "بظ", "p.m." -> "PM".
func NormalizeMarker(marker string) string {
	marker = strings.TrimSpace(marker)
	marker = strings.ReplaceAll(marker, ".", "")
	return strings.ToUpper(marker)
}

func normalizeMarkers(markers []string) []string {
	seen := make(map[string]bool, len(markers))
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		n := NormalizeMarker(m)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Locale returns the locale identifier, e.g. "fa"
func (t *Table) Locale() string { return t.locale }

// Name returns the display name of the locale
func (t *Table) Name() string { return t.name }

// Direction returns "rtl" or "ltr"
func (t *Table) Direction() string { return t.direction }

// Month returns the name of month m (1..12), or "" when out of range
func (t *Table) Month(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return t.months[m-1]
}

// Months returns a copy of the twelve month names
func (t *Table) Months() []string {
	out := make([]string, 12)
	copy(out, t.months[:])
	return out
}

// MonthIndex returns the 1-based index of an exact month name, or 0
func (t *Table) MonthIndex(name string) int {
	name = strings.TrimSpace(name)
	for i, m := range t.months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// AM returns the ante meridiem marker
func (t *Table) AM() string { return t.am }

// PM returns the post meridiem marker
func (t *Table) PM() string { return t.pm }

// PeriodOf classifies a period marker. ok is false when the marker is not
// one of this table's AM or PM aliases.
func (t *Table) PeriodOf(marker string) (pm bool, ok bool) {
	n := NormalizeMarker(marker)
	if n == "" {
		return false, false
	}
	for _, a := range t.pmAliases {
		if a == n {
			return true, true
		}
	}
	for _, a := range t.amAliases {
		if a == n {
			return false, true
		}
	}
	return false, false
}

// Label returns a display label, falling back to the key itself
func (t *Table) Label(key string) string {
	if v, ok := t.labels[key]; ok {
		return v
	}
	return key
}

// registry holds the embedded tables, loaded once
var registry struct {
	once   sync.Once
	tables map[string]*Table
	err    error
}

func loadRegistry() {
	logger := mdwlog.GetDefault().WithName("i18n")
	registry.tables = make(map[string]*Table)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		registry.err = mdwerror.Wrap(err, "failed to read embedded locales").
			WithCode(mdwerror.CodeInternal).
			WithOperation("i18n.loadRegistry")
		return
	}

	for _, entry := range entries {
		fileName := entry.Name()
		format := FormatTOML
		switch strings.ToLower(path.Ext(fileName)) {
		case ".toml":
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			continue
		}

		content, err := localeFS.ReadFile(path.Join("locales", fileName))
		if err != nil {
			registry.err = mdwerror.Wrap(err, "failed to read embedded locale").
				WithCode(mdwerror.CodeInternal).
				WithOperation("i18n.loadRegistry").
				WithDetail("file", fileName)
			return
		}

		table, err := ParseTable(content, format)
		if err != nil {
			registry.err = mdwerror.Wrap(err, "invalid embedded locale").
				WithOperation("i18n.loadRegistry").
				WithDetail("file", fileName)
			return
		}
		registry.tables[table.locale] = table
		logger.Debug("locale table loaded", mdwlog.Fields{
			"locale": table.locale,
			"file":   fileName,
			"format": format.String(),
		})
	}

	if _, ok := registry.tables[DefaultLocale]; !ok {
		registry.err = mdwerror.New("default locale table missing").
			WithCode(mdwerror.CodeInternal).
			WithOperation("i18n.loadRegistry").
			WithDetail("locale", DefaultLocale)
	}
}

func tables() (map[string]*Table, error) {
	registry.once.Do(loadRegistry)
	return registry.tables, registry.err
}

// Load returns the registered table for a locale
func Load(locale string) (*Table, error) {
	all, err := tables()
	if err != nil {
		return nil, err
	}

	if t, ok := all[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return t, nil
	}
	return nil, mdwerror.New("unknown locale").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("i18n.Load").
		WithDetail("locale", locale).
		WithDetail("available", Locales())
}

// Default returns the Persian table. It panics only if the embedded
// tables are corrupt, which is a build defect.
func Default() *Table {
	t, err := Load(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return t
}

// Locales returns the registered locale identifiers, sorted
func Locales() []string {
	all, _ := tables()
	out := make([]string, 0, len(all))
	for k := range all {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FindMonth resolves a month name against preferred first and then every
// registered table in locale order. It returns the 1-based month and the
// table that matched.
func FindMonth(name string, preferred *Table) (int, *Table, bool) {
	if preferred != nil {
		if m := preferred.MonthIndex(name); m > 0 {
			return m, preferred, true
		}
	}
	all, _ := tables()
	for _, locale := range Locales() {
		t := all[locale]
		if t == preferred {
			continue
		}
		if m := t.MonthIndex(name); m > 0 {
			return m, t, true
		}
	}
	return 0, nil, false
}

// FindPeriod classifies a marker against preferred first and then every
// registered table.
func FindPeriod(marker string, preferred *Table) (pm bool, ok bool) {
	if preferred != nil {
		if pm, ok := preferred.PeriodOf(marker); ok {
			return pm, true
		}
	}
	all, _ := tables()
	for _, locale := range Locales() {
		if pm, ok := all[locale].PeriodOf(marker); ok {
			return pm, true
		}
	}
	return false, false
}
