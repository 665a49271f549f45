package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/uibind/errors"
)

// ProjectFile is the project config file name, found by walking up from the
// working directory
const ProjectFile = "uibind.toml"

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper

	// sources records which layer set each key during the last load
	sources = map[string]SourceInfo{}
)

// Load reads the uibind configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, without environment variables or other layers
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return cfg, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	sources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("UIBIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	wd, _ := os.Getwd()
	mergeConfigFiles(v, layerPaths(wd))

	viperInstance = v
	return v
}

// layer is one config file and the source it represents
type layer struct {
	source ConfigSource
	path   string
}

// layerPaths lists config files in precedence order, lowest first:
// system < user < project
func layerPaths(wd string) []layer {
	layers := []layer{{SourceSystem, "/etc/uibind/uibind.toml"}}
	if home, err := os.UserHomeDir(); err == nil {
		layers = append(layers, layer{SourceUser, filepath.Join(home, ".uibind", "uibind.toml")})
	}
	if project := findProjectConfig(wd); project != "" {
		layers = append(layers, layer{SourceProject, project})
	}
	return layers
}

// findProjectConfig searches for uibind.toml by walking up the directory tree.
// Returns an empty string when none is found.
func findProjectConfig(dir string) string {
	if dir == "" {
		return ""
	}
	for {
		path := filepath.Join(dir, ProjectFile)
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

// mergeConfigFiles merges the existing layers into v in order, recording the
// source of every key. Unreadable files are skipped.
func mergeConfigFiles(v *viper.Viper, layers []layer) {
	for _, l := range layers {
		if _, err := os.Stat(l.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(l.path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}

		for _, key := range tempViper.AllKeys() {
			v.Set(key, tempViper.Get(key))
			sources[key] = SourceInfo{Source: l.source, Path: l.path}
		}
	}
}

// Paths returns the config files that exist for the current directory, in
// precedence order
func Paths() []string {
	wd, _ := os.Getwd()
	var out []string
	for _, l := range layerPaths(wd) {
		if _, err := os.Stat(l.path); err == nil {
			out = append(out, l.path)
		}
	}
	return out
}
