package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/uibind/errors"
)

// Formats accepted by Marshal
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Marshal renders c in the given format
func Marshal(c *Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		data, err := toml.Marshal(c)
		return data, errors.Wrap(err, "failed to marshal config as toml")
	case FormatYAML:
		data, err := yaml.Marshal(c)
		return data, errors.Wrap(err, "failed to marshal config as yaml")
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config as json")
		}
		return append(data, '\n'), nil
	}
	return nil, errors.WithHint(errors.Newf("unknown format %q", format), "use toml, yaml or json")
}

// Init writes the default configuration to path. An existing file is left
// alone unless force is set, in which case it is first copied to path.back.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
		}
		if err := backup(path); err != nil {
			return err
		}
	}

	data, err := Marshal(Default(), FormatTOML)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if w := GetGlobalWatcher(); w != nil {
		w.MarkOwnWrite()
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func backup(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(path+".back", content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	return nil
}
