package config

import (
	"go/token"
	"strings"

	"github.com/teranos/uibind/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Annotation.Key == "" || strings.ContainsAny(c.Annotation.Key, " :\"`") {
		return errors.WithHint(
			errors.Newf("annotation.key %q is not a valid struct tag key", c.Annotation.Key),
			"use a bare word such as imgui")
	}
	if c.Annotation.Directive == "" || strings.ContainsAny(c.Annotation.Directive, " \t") {
		return errors.Newf("annotation.directive %q must be a single word", c.Annotation.Directive)
	}
	if !c.ShorthandMode().Valid() {
		return errors.WithHint(
			errors.Newf("annotation.shorthand must be error or truncate, got %q", c.Annotation.Shorthand),
			"error reports entries after a label/display shorthand, truncate ignores them")
	}

	if !strings.HasSuffix(c.Output.Suffix, ".go") || strings.HasSuffix(c.Output.Suffix, "_test.go") {
		return errors.Newf("output.suffix must end in .go and not _test.go, got %q", c.Output.Suffix)
	}
	if !token.IsIdentifier(c.Output.EventsSuffix) {
		return errors.Newf("output.events_suffix must be an identifier, got %q", c.Output.EventsSuffix)
	}
	if !token.IsIdentifier(c.Output.Method) || !token.IsExported(c.Output.Method) {
		return errors.Newf("output.method must be an exported identifier, got %q", c.Output.Method)
	}

	if c.Host.Import == "" {
		return errors.New("host.import cannot be empty")
	}
	if !token.IsIdentifier(c.Host.Package) {
		return errors.Newf("host.package must be an identifier, got %q", c.Host.Package)
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox":
	default:
		return errors.Newf("log.theme must be everforest or gruvbox, got %q", c.Log.Theme)
	}

	// 0 = regenerate on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}
