// Package config loads the uibind configuration: built-in defaults, layered
// uibind.toml files, UIBIND_* environment variables and per-package
// .uibind.toml overrides.
package config

import "fmt"

// Config represents the uibind configuration
type Config struct {
	Annotation AnnotationConfig `mapstructure:"annotation" toml:"annotation" yaml:"annotation" json:"annotation"`
	Output     OutputConfig     `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Host       HostConfig       `mapstructure:"host" toml:"host" yaml:"host" json:"host"`
	Log        LogConfig        `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Watch      WatchConfig      `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
}

// AnnotationConfig configures how annotations are found and parsed
type AnnotationConfig struct {
	Key       string `mapstructure:"key" toml:"key" yaml:"key" json:"key"`                         // Struct tag key (default: imgui)
	Directive string `mapstructure:"directive" toml:"directive" yaml:"directive" json:"directive"` // Comment directive marking aggregates (default: uibind:draw)
	Shorthand string `mapstructure:"shorthand" toml:"shorthand" yaml:"shorthand" json:"shorthand"` // error or truncate
}

// OutputConfig configures the generated files
type OutputConfig struct {
	Suffix       string `mapstructure:"suffix" toml:"suffix" yaml:"suffix" json:"suffix"`                             // Generated file name suffix (default: _ui.go)
	EventsSuffix string `mapstructure:"events_suffix" toml:"events_suffix" yaml:"events_suffix" json:"events_suffix"` // Events type suffix (default: Events)
	Method       string `mapstructure:"method" toml:"method" yaml:"method" json:"method"`                             // Draw method name (default: Draw)
}

// HostConfig names the package generated code draws through
type HostConfig struct {
	Import  string `mapstructure:"import" toml:"import" yaml:"import" json:"import"`
	Package string `mapstructure:"package" toml:"package" yaml:"package" json:"package"`
}

// LogConfig configures log output
type LogConfig struct {
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme"` // everforest or gruvbox
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// WatchConfig configures `uibind watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// String returns a short summary of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Annotation: {Key: %s, Shorthand: %s}, Host: %s, Output: {Suffix: %s}}",
		c.Annotation.Key, c.Annotation.Shorthand, c.Host.Import, c.Output.Suffix)
}
