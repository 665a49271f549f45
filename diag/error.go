package diag

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/uibind/errors"
)

// Error is a positioned annotation diagnostic. The first Error raised while
// compiling an aggregate aborts the whole compilation.
type Error struct {
	Kind        Kind     // Error category
	Param       string   // Parameter name for MissingParam
	Message     string   // Human-readable message
	Span        Span     // Byte range in Source
	Position    Position // Resolved start of Span (zero until located)
	Source      string   // Annotation text the span refers to (optional)
	Suggestions []string // Possible fixes
}

// New creates an Error of the given kind at span.
// An empty format falls back to the kind's default message.
func New(kind Kind, span Span, format string, args ...interface{}) *Error {
	msg := kind.Message()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Message: msg, Span: span}
}

// Missing creates a MissingParam error for the named parameter
func Missing(param string, span Span) *Error {
	return &Error{
		Kind:    MissingParam,
		Param:   param,
		Message: fmt.Sprintf("missing required parameter %q", param),
		Span:    span,
	}
}

// Error implements the error interface with a plain single-line rendering
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Position.IsValid() || e.Position.File != "" {
		sb.WriteString(e.Position.String())
		sb.WriteString(": ")
	}
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if culprit := e.Culprit(); culprit != "" {
		fmt.Fprintf(&sb, " (at %q)", culprit)
	}
	return sb.String()
}

// WithSource attaches the annotation text the span refers to
func (e *Error) WithSource(text string) *Error {
	e.Source = text
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *Error) WithSuggestion(format string, args ...interface{}) *Error {
	e.Suggestions = append(e.Suggestions, fmt.Sprintf(format, args...))
	return e
}

// Locate resolves Position through l unless it is already resolved
func (e *Error) Locate(l Locator) *Error {
	if l != nil && !e.Position.IsValid() {
		e.Position = l.Locate(e.Span.From)
	}
	return e
}

// Culprit returns the annotation text covered by Span, if Source is known
func (e *Error) Culprit() string {
	from, to := e.clamp()
	if from >= to {
		return ""
	}
	return e.Source[from:to]
}

func (e *Error) clamp() (int, int) {
	from, to := e.Span.From, e.Span.To
	if from < 0 {
		from = 0
	}
	if to > len(e.Source) {
		to = len(e.Source)
	}
	if from > to {
		from = to
	}
	return from, to
}

// Show renders the error for a terminal: kind header, location, the annotation
// with the culprit highlighted, a caret line and any suggestions.
func (e *Error) Show() string {
	var sb strings.Builder
	sb.WriteString(pterm.Red(fmt.Sprintf("error[%s]", e.Kind)))
	sb.WriteString(": ")
	sb.WriteString(pterm.Bold.Sprint(e.Message))

	if e.Position.IsValid() || e.Position.File != "" {
		fmt.Fprintf(&sb, "\n  %s %s", pterm.LightCyan("-->"), e.Position)
	}

	if e.Source != "" {
		from, to := e.clamp()
		culprit := e.Source[from:to]
		if culprit == "" {
			culprit = " "
		}
		fmt.Fprintf(&sb, "\n   %s %s%s%s",
			pterm.LightCyan("|"),
			e.Source[:from],
			pterm.Red(culprit),
			e.Source[to:],
		)
		fmt.Fprintf(&sb, "\n   %s %s%s",
			pterm.LightCyan("|"),
			strings.Repeat(" ", len([]rune(e.Source[:from]))),
			pterm.Red(strings.Repeat("^", len([]rune(culprit)))),
		)
	}

	for _, s := range e.Suggestions {
		fmt.Fprintf(&sb, "\n  %s %s", pterm.Green("help:"), s)
	}
	return sb.String()
}

// LSP converts the error to the shape of an LSP diagnostic. Lines and
// characters are 0-based as the protocol expects.
func (e *Error) LSP() map[string]interface{} {
	start := e.Position
	length := e.Span.Len()
	if length == 0 {
		length = 1
	}

	line, char := 0, 0
	if start.IsValid() {
		line, char = start.Line-1, start.Column-1
	}

	return map[string]interface{}{
		"range": map[string]interface{}{
			"start": map[string]interface{}{
				"line":      line,
				"character": char,
				"offset":    start.Offset,
			},
			"end": map[string]interface{}{
				"line":      line,
				"character": char + length,
				"offset":    start.Offset + length,
			},
		},
		"severity":    "error",
		"source":      "uibind",
		"code":        string(e.Kind),
		"message":     e.Message,
		"suggestions": e.Suggestions,
	}
}

// As extracts a diagnostic from an error chain
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// KindOf returns the diagnostic kind in err's chain, or "" if there is none
func KindOf(err error) Kind {
	if d, ok := As(err); ok {
		return d.Kind
	}
	return ""
}

// Is reports whether err carries a diagnostic of the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
