package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/teranos/uibind/errors"
)

// PackageFile is the per-package override file read from a package directory
const PackageFile = ".uibind.toml"

// Override is the subset of settings a package may change for itself.
// Unset fields keep the effective configuration.
type Override struct {
	Annotation struct {
		Key       string `toml:"key"`
		Shorthand string `toml:"shorthand"`
	} `toml:"annotation"`
	Output struct {
		Suffix       string `toml:"suffix"`
		EventsSuffix string `toml:"events_suffix"`
		Method       string `toml:"method"`
	} `toml:"output"`
	Host struct {
		Import  string `toml:"import"`
		Package string `toml:"package"`
	} `toml:"host"`
}

// ReadOverride decodes the .uibind.toml of dir. A missing file is not an
// error and yields nil. Keys the override does not support are rejected.
func ReadOverride(dir string) (*Override, error) {
	path := filepath.Join(dir, PackageFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var o Override
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.WithHint(
			errors.Newf("%s: unsupported keys %s", path, strings.Join(keys, ", ")),
			"a package override may set annotation.key, annotation.shorthand, output.* and host.*")
	}
	return &o, nil
}

// Apply returns a copy of c with the override's set fields applied
func (o *Override) Apply(c *Config) *Config {
	out := *c
	if o == nil {
		return &out
	}
	set(&out.Annotation.Key, o.Annotation.Key)
	set(&out.Annotation.Shorthand, o.Annotation.Shorthand)
	set(&out.Output.Suffix, o.Output.Suffix)
	set(&out.Output.EventsSuffix, o.Output.EventsSuffix)
	set(&out.Output.Method, o.Output.Method)
	set(&out.Host.Import, o.Host.Import)
	set(&out.Host.Package, o.Host.Package)
	return &out
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ForPackage returns the configuration effective for the package in dir:
// c with that directory's override applied and validated
func (c *Config) ForPackage(dir string) (*Config, error) {
	o, err := ReadOverride(dir)
	if err != nil {
		return nil, err
	}
	out := o.Apply(c)
	if err := out.Validate(); err != nil {
		return nil, errors.Wrapf(err, "configuration for %s", dir)
	}
	return out, nil
}
