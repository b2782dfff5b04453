// Package iconset parses the per-icon-set configuration into a
// normalized symbol table.
//
// Each icon set lives in its own directory under the workspace icons
// path and carries a config.toml (or config.yaml) describing the font
// code, version, categories, styles, and symbols. Parsing normalizes
// the document's loose shapes (a ligature may be written as a single
// string or a list) into one canonical in-memory form so downstream
// stages never branch on shape.
package iconset

// ShadowDir is the conventional subdirectory for shadow-style artwork,
// registered implicitly by the add-shadow symbol flag.
const ShadowDir = "shadow"

// FlatDir is the conventional subdirectory for flat-style artwork
// produced by the flat generator.
const FlatDir = "flat"

// DefaultKey names the implicit default variant and default style.
const DefaultKey = "default"

// Symbol is a named icon concept within one icon set.
type Symbol struct {
	Name          string    // unique key within the icon set
	File          string    // default artwork file name
	Ligatures     []string  // ordered ligature trigger strings
	Category      string    // optional grouping tag for the preview
	Overflow      bool      // display hint: symbol renders wider than one cell
	AddShadow     bool      // sugar flag that registered the shadow style
	FlatType      string    // flat artwork generation: "", "basic", or "split"
	CreateLoyalty bool      // default artwork generated from loyalty components
	Variants      []Variant // non-default variants, canonical order
	Styles        []Style   // non-default styles, canonical order
}

// Variant is an alternate artwork file for a symbol, selected through
// the stylistic-alternate feature.
type Variant struct {
	Name string
	File string
}

// Style is a named substitution layer for a symbol. Dir is the
// artwork subdirectory holding that style's rendition of the symbol's
// files.
type Style struct {
	Name string
	Dir  string
}

// Category groups symbols in the preview document.
type Category struct {
	Name        string
	DisplayName string
}

// StyleDef is a top-level style declaration carrying a display name
// for the stylesheet's toggle class.
type StyleDef struct {
	Name        string
	DisplayName string
}

// Example is a sample text block rendered in the preview.
type Example struct {
	Text  string
	Desc  string
	Style string // optional style toggled for this block
}

// Config is the normalized icon-set definition.
type Config struct {
	Code       string // font/CSS namespace; required
	Name       string // display name
	Version    string // required
	Categories []Category
	Styles     []StyleDef
	Examples   []Example
	Symbols    []Symbol
}

// StyleDir returns the artwork subdirectory for the named style on
// this symbol, or the default directory for the default style.
func (s *Symbol) StyleDir(style string) (string, bool) {
	if style == DefaultKey {
		return DefaultKey, true
	}
	for _, st := range s.Styles {
		if st.Name == style {
			return st.Dir, true
		}
	}
	return "", false
}

// VariantFile returns the artwork file name for the named variant, or
// the symbol's base file for the default variant.
func (s *Symbol) VariantFile(variant string) (string, bool) {
	if variant == DefaultKey {
		return s.File, true
	}
	for _, v := range s.Variants {
		if v.Name == variant {
			return v.File, true
		}
	}
	return "", false
}

// Instances returns the number of glyph instances this symbol expands
// to: the full (variants+1) x (styles+1) cross-product.
func (s *Symbol) Instances() int {
	return (len(s.Variants) + 1) * (len(s.Styles) + 1)
}

// CategoryDisplayName resolves a category name to its configured
// display name, falling back to the name itself.
func (c *Config) CategoryDisplayName(name string) string {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat.DisplayName
		}
	}
	return name
}

// StyleDisplayName resolves a style name to its configured display
// name, falling back to the name itself.
func (c *Config) StyleDisplayName(name string) string {
	for _, st := range c.Styles {
		if st.Name == name {
			return st.DisplayName
		}
	}
	return name
}
