package diag

import "fmt"

// Span is a half-open byte range [From, To) into an annotation's text
type Span struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	if s.To < s.From {
		return 0
	}
	return s.To - s.From
}

// Join returns the smallest span covering both s and other
func (s Span) Join(other Span) Span {
	out := s
	if other.From < out.From {
		out.From = other.From
	}
	if other.To > out.To {
		out.To = other.To
	}
	return out
}

// Position is a resolved location in a Go source file.
// Line and Column are 1-based, Offset is the byte offset in the file.
type Position struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Offset int    `json:"offset" yaml:"offset"`
}

// IsValid reports whether the position has been resolved
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	switch {
	case !p.IsValid() && p.File == "":
		return "-"
	case !p.IsValid():
		return p.File
	case p.File == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
}

// Locator maps byte offsets of an annotation's text to file positions
type Locator interface {
	Locate(offset int) Position
}
