package iconset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/logger"
)

// rawConfig mirrors the on-disk document before normalization.
type rawConfig struct {
	Name       string        `toml:"name" yaml:"name"`
	Code       string        `toml:"code" yaml:"code"`
	Version    string        `toml:"version" yaml:"version"`
	Categories []rawCategory `toml:"categories" yaml:"categories"`
	Styles     []rawStyleDef `toml:"styles" yaml:"styles"`
	Example    []rawExample  `toml:"example" yaml:"example"`
	Symbols    []rawSymbol   `toml:"symbols" yaml:"symbols"`
}

type rawCategory struct {
	Name        string `toml:"name" yaml:"name"`
	DisplayName string `toml:"display_name" yaml:"display_name"`
}

type rawStyleDef struct {
	Name        string `toml:"name" yaml:"name"`
	DisplayName string `toml:"display_name" yaml:"display_name"`
}

type rawExample struct {
	Text  string `toml:"text" yaml:"text"`
	Desc  string `toml:"desc" yaml:"desc"`
	Style string `toml:"style" yaml:"style"`
}

type rawSymbol struct {
	Name          string            `toml:"name" yaml:"name"`
	File          string            `toml:"file" yaml:"file"`
	Ligature      interface{}       `toml:"ligature" yaml:"ligature"`
	Category      string            `toml:"category" yaml:"category"`
	Overflow      bool              `toml:"overflow" yaml:"overflow"`
	AddShadow     bool              `toml:"add-shadow" yaml:"add-shadow"`
	AddFlat       interface{}       `toml:"add-flat" yaml:"add-flat"`
	CreateLoyalty bool              `toml:"create-loyalty" yaml:"create-loyalty"`
	Variant       map[string]string `toml:"variant" yaml:"variant"`
	Style         map[string]string `toml:"style" yaml:"style"`
}

// FindConfig returns the config file path inside an icon-set directory,
// preferring config.toml over config.yaml.
func FindConfig(dir string) (string, bool) {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load parses and normalizes an icon-set configuration file. The
// format is chosen by extension: .toml or .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfig, "failed to read %s: %v", path, err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(errors.ErrConfig, "failed to parse %s: %v", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(errors.ErrConfig, "failed to parse %s: %v", path, err)
		}
	default:
		return nil, errors.NewConfigError("%s: unsupported config format %q", path, filepath.Ext(path))
	}

	cfg, err := normalize(&raw)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}

// normalize converts the raw document into the canonical Config shape,
// enforcing required fields and flattening string-or-list values.
func normalize(raw *rawConfig) (*Config, error) {
	if raw.Code == "" {
		return nil, errors.NewConfigError("missing required field 'code'")
	}
	if raw.Version == "" {
		return nil, errors.NewConfigError("missing required field 'version'")
	}
	if _, err := semver.NewVersion(raw.Version); err != nil {
		// The original builds never validated versions; keep this soft.
		logger.Warnf("icon set %s: version %q is not semantic versioning", raw.Code, raw.Version)
	}

	cfg := &Config{
		Code:    raw.Code,
		Name:    raw.Name,
		Version: raw.Version,
	}

	for _, c := range raw.Categories {
		display := c.DisplayName
		if display == "" {
			display = titleize(c.Name)
		}
		cfg.Categories = append(cfg.Categories, Category{Name: c.Name, DisplayName: display})
	}

	for _, s := range raw.Styles {
		display := s.DisplayName
		if display == "" {
			display = titleize(s.Name)
		}
		cfg.Styles = append(cfg.Styles, StyleDef{Name: s.Name, DisplayName: display})
	}

	for _, e := range raw.Example {
		cfg.Examples = append(cfg.Examples, Example{Text: e.Text, Desc: e.Desc, Style: e.Style})
	}

	seen := make(map[string]bool, len(raw.Symbols))
	for i, rs := range raw.Symbols {
		sym, err := normalizeSymbol(i, &rs)
		if err != nil {
			return nil, err
		}
		if seen[sym.Name] {
			return nil, errors.NewConfigError("duplicate symbol name %q", sym.Name)
		}
		seen[sym.Name] = true
		cfg.Symbols = append(cfg.Symbols, *sym)
	}

	return cfg, nil
}

func normalizeSymbol(index int, rs *rawSymbol) (*Symbol, error) {
	if rs.Name == "" {
		return nil, errors.NewConfigError("symbol #%d: missing required field 'name'", index+1)
	}
	if rs.Name == DefaultKey {
		return nil, errors.NewConfigError("symbol name %q is reserved", DefaultKey)
	}
	if rs.File == "" {
		return nil, errors.NewConfigError("symbol %q: missing required field 'file'", rs.Name)
	}

	ligatures, err := normalizeLigature(rs.Name, rs.Ligature)
	if err != nil {
		return nil, err
	}

	flatType, err := normalizeFlat(rs.Name, rs.AddFlat)
	if err != nil {
		return nil, err
	}

	sym := &Symbol{
		Name:          rs.Name,
		File:          rs.File,
		Ligatures:     ligatures,
		Category:      rs.Category,
		Overflow:      rs.Overflow,
		AddShadow:     rs.AddShadow,
		FlatType:      flatType,
		CreateLoyalty: rs.CreateLoyalty,
	}

	// Configuration maps carry no document order, so variants and
	// styles are ordered by name. Codepoint stability across builds
	// depends on this order being canonical.
	for _, name := range sortedKeys(rs.Variant) {
		if name == DefaultKey {
			return nil, errors.NewConfigError("symbol %q: variant name %q is reserved", rs.Name, DefaultKey)
		}
		sym.Variants = append(sym.Variants, Variant{Name: name, File: rs.Variant[name]})
	}

	styles := rs.Style
	if rs.AddShadow {
		// add-shadow is sugar for an explicit shadow style entry.
		if styles == nil {
			styles = map[string]string{}
		}
		if _, ok := styles[ShadowDir]; !ok {
			styles[ShadowDir] = ShadowDir
		}
	}
	for _, name := range sortedKeys(styles) {
		if name == DefaultKey {
			return nil, errors.NewConfigError("symbol %q: style name %q is reserved", rs.Name, DefaultKey)
		}
		sym.Styles = append(sym.Styles, Style{Name: name, Dir: styles[name]})
	}

	return sym, nil
}

// normalizeLigature flattens the string-or-list ligature field into an
// ordered slice of strings.
func normalizeLigature(symbol string, v interface{}) ([]string, error) {
	switch lig := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{lig}, nil
	case []interface{}:
		out := make([]string, 0, len(lig))
		for _, item := range lig {
			s, ok := item.(string)
			if !ok {
				return nil, errors.NewConfigError("symbol %q: ligature list contains non-string element %v", symbol, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return lig, nil
	default:
		return nil, errors.NewConfigError("symbol %q: ligature must be a string or a list of strings, got %T", symbol, v)
	}
}

// normalizeFlat flattens the bool-or-string add-flat field. A bare
// `true` selects the basic single-color treatment; a string names the
// treatment ("split" keeps per-part colors on a black disc).
func normalizeFlat(symbol string, v interface{}) (string, error) {
	switch flat := v.(type) {
	case nil:
		return "", nil
	case bool:
		if flat {
			return "basic", nil
		}
		return "", nil
	case string:
		if flat != "basic" && flat != "split" {
			return "", errors.NewConfigError("symbol %q: unknown flat treatment %q", symbol, flat)
		}
		return flat, nil
	default:
		return "", errors.NewConfigError("symbol %q: add-flat must be a boolean or a treatment name, got %T", symbol, v)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
