// Package workspace holds the tool-level configuration: where icon
// sets, build outputs, and scratch space live, which external commands
// perform font assembly, and how the dev server behaves.
//
// This is deliberately separate from package iconset, which parses the
// per-icon-set config.toml files. Workspace settings describe the
// machine and repository layout; icon-set configs describe fonts.
package workspace

// Config represents the tool configuration, loaded from chromana.toml
// (walking up from the working directory) with CHROMANA_* environment
// overrides.
type Config struct {
	Paths    PathsConfig    `mapstructure:"paths"`
	Font     FontConfig     `mapstructure:"font"`
	Assembly AssemblyConfig `mapstructure:"assembly"`
	Build    BuildConfig    `mapstructure:"build"`
	Server   ServerConfig   `mapstructure:"server"`
}

// PathsConfig configures the repository directory layout.
type PathsConfig struct {
	Icons string `mapstructure:"icons"` // icon-set source directories (default: icons)
	Dist  string `mapstructure:"dist"`  // final artifacts (default: dist)
	Demo  string `mapstructure:"demo"`  // CSS + HTML previews (default: demo)
	Temp  string `mapstructure:"temp"`  // scratch area, purged per run (default: temp)
	Build string `mapstructure:"build"` // assembler working dir (default: build)
}

// FontConfig configures font naming.
type FontConfig struct {
	FamilyPrefix string `mapstructure:"family_prefix"` // family = "<prefix>-<code>" (default: Chromana)
	MergedCode   string `mapstructure:"merged_code"`   // code of the merged all-sets font (default: chromana)
}

// AssemblyConfig configures the external font-assembly commands.
type AssemblyConfig struct {
	NanoemojiCommand string `mapstructure:"nanoemoji_command"` // base-font builder (default: nanoemoji)
	PythonCommand    string `mapstructure:"python_command"`    // interpreter for the fontTools driver (default: python3)
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`   // per-invocation timeout (default: 300)
}

// BuildConfig configures pipeline fan-out.
type BuildConfig struct {
	Workers int `mapstructure:"workers"` // concurrent icon-set pipelines; 0 = NumCPU
}

// ServerConfig configures the dev preview server.
type ServerConfig struct {
	Port              int     `mapstructure:"port"`                // default: 4213
	WatchDebounceSecs float64 `mapstructure:"watch_debounce_secs"` // min seconds between watch rebuilds (default: 1)
}

// DefaultServerPort is the dev server port when none is configured.
const DefaultServerPort = 4213
