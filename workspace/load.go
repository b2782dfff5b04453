package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/chromana/chromana/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the tool configuration, caching the result.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal workspace config")
	}

	applyFallbacks(&config)
	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read workspace config %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal workspace config %s", configPath)
	}

	applyFallbacks(&config)
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("CHROMANA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		// A missing or unreadable project file falls back to defaults;
		// the tool must work in a bare checkout.
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// SetDefaults installs the default workspace layout and tool commands.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("paths.icons", "icons")
	v.SetDefault("paths.dist", "dist")
	v.SetDefault("paths.demo", "demo")
	v.SetDefault("paths.temp", "temp")
	v.SetDefault("paths.build", "build")

	v.SetDefault("font.family_prefix", "Chromana")
	v.SetDefault("font.merged_code", "chromana")

	v.SetDefault("assembly.nanoemoji_command", "nanoemoji")
	v.SetDefault("assembly.python_command", "python3")
	v.SetDefault("assembly.timeout_seconds", 300)

	v.SetDefault("build.workers", 0)

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.watch_debounce_secs", 1.0)
}

func applyFallbacks(c *Config) {
	if c.Build.Workers <= 0 {
		c.Build.Workers = runtime.NumCPU()
	}
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Assembly.TimeoutSeconds <= 0 {
		c.Assembly.TimeoutSeconds = 300
	}
}

// findProjectConfig searches for chromana.toml by walking up the
// directory tree from the working directory. Returns the first match,
// or empty string if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "chromana.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
