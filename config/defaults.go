package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/uibind/emit"
	"github.com/teranos/uibind/tag"
)

// Defaults that are not owned by another package
const (
	DefaultKey        = "imgui"
	DefaultDirective  = "uibind:draw"
	DefaultSuffix     = "_ui.go"
	DefaultTheme      = "everforest"
	DefaultDebounceMS = 300
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("annotation.key", DefaultKey)
	v.SetDefault("annotation.directive", DefaultDirective)
	v.SetDefault("annotation.shorthand", string(tag.ShorthandError))

	v.SetDefault("output.suffix", DefaultSuffix)
	v.SetDefault("output.events_suffix", emit.DefaultEventsSuffix)
	v.SetDefault("output.method", emit.DefaultMethod)

	v.SetDefault("host.import", emit.DefaultHostImport)
	v.SetDefault("host.package", emit.DefaultHostPackage)

	v.SetDefault("log.theme", DefaultTheme)
	v.SetDefault("log.json", false)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}

// Default returns the built-in configuration
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always unmarshal
		panic(err)
	}
	return cfg
}

// ShorthandMode returns the parsed shorthand policy
func (c *Config) ShorthandMode() tag.ShorthandMode {
	if c.Annotation.Shorthand == "" {
		return tag.ShorthandError
	}
	return tag.ShorthandMode(c.Annotation.Shorthand)
}

// EmitOptions returns the emitter options for this configuration
func (c *Config) EmitOptions(version string) emit.Options {
	return emit.Options{
		HostImport:   c.Host.Import,
		HostPackage:  c.Host.Package,
		EventsSuffix: c.Output.EventsSuffix,
		Method:       c.Output.Method,
		Version:      version,
	}
}
