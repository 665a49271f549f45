package annotation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/teranos/uibind/diag"
)

// Origin maps byte offsets of decoded annotation text back to positions in
// the Go file that holds the struct tag.
type Origin struct {
	At      diag.Position // Position of the tag literal's opening quote
	Literal string        // Struct tag literal as written, quotes included
	offsets []int         // text offset -> Literal offset; nil means text starts at At
}

// Locate implements diag.Locator
func (o Origin) Locate(offset int) diag.Position {
	if !o.At.IsValid() {
		return diag.Position{File: o.At.File}
	}

	idx := offset
	if o.offsets != nil {
		switch {
		case offset < 0:
			idx = o.offsets[0]
		case offset >= len(o.offsets):
			idx = o.offsets[len(o.offsets)-1]
		default:
			idx = o.offsets[offset]
		}
	}

	pos := o.At
	pos.Offset += idx
	if o.Literal == "" || idx > len(o.Literal) {
		pos.Column += idx
		return pos
	}

	// Columns count bytes like go/token. Raw string tags may span lines.
	prefix := o.Literal[:idx]
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		pos.Line += strings.Count(prefix, "\n")
		pos.Column = len(prefix) - nl
		return pos
	}
	pos.Column += len(prefix)
	return pos
}

// Extract finds the annotation block stored under key in a struct tag
// literal exactly as written in source (backquoted or double-quoted). It
// returns nil, nil when the tag has no such key. A second block under the
// same key is a Multiple diagnostic positioned at the second key.
func Extract(literal, key string, at diag.Position) (*Source, error) {
	content, contentOffsets, err := decodeTagLiteral(literal)
	if err != nil {
		return nil, err
	}
	tagOrigin := Origin{At: at, Literal: literal, offsets: contentOffsets}

	blocks := scanTag(content)
	var found []tagBlock
	for _, b := range blocks {
		if b.key == key {
			found = append(found, b)
		}
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
	default:
		second := found[1]
		d := diag.New(diag.Multiple, second.keyAt,
			"field carries more than one %q annotation block", key).
			WithSource(content).
			WithSuggestion("merge the blocks into one comma-separated %s:\"...\" entry", key)
		return nil, d.Locate(tagOrigin)
	}

	b := found[0]
	text, valueOffsets, err := unquoteMapped(content[b.valueAt.From+1:b.valueAt.To-1], '"')
	if err != nil {
		d := diag.New(diag.InvalidFormat, b.valueAt, "malformed %s tag value: %v", key, err).
			WithSource(content)
		return nil, d.Locate(tagOrigin)
	}

	offsets := make([]int, len(valueOffsets))
	for i, off := range valueOffsets {
		offsets[i] = contentOffsets[b.valueAt.From+1+off]
	}

	src, err := ParseAt(text, Origin{At: at, Literal: literal, offsets: offsets})
	if err != nil {
		return nil, err
	}
	src.Key = key
	return src, nil
}

// Keys returns the keys present in a struct tag literal, in order
func Keys(literal string) []string {
	content, _, err := decodeTagLiteral(literal)
	if err != nil {
		return nil
	}
	var keys []string
	for _, b := range scanTag(content) {
		keys = append(keys, b.key)
	}
	return keys
}

type tagBlock struct {
	key     string
	keyAt   diag.Span
	valueAt diag.Span // includes the quotes
}

// scanTag splits conventional `key:"value" key2:"value2"` struct tag content
// the way reflect.StructTag.Lookup does, stopping at the first malformed entry.
func scanTag(tag string) []tagBlock {
	var blocks []tagBlock
	i := 0
	for i < len(tag) {
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		if i >= len(tag) {
			break
		}

		start := i
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == start || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}
		keyAt := diag.Span{From: start, To: i}

		i++ // ':'
		vStart := i
		i++ // opening quote
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			break
		}
		i++ // closing quote

		blocks = append(blocks, tagBlock{
			key:     tag[keyAt.From:keyAt.To],
			keyAt:   keyAt,
			valueAt: diag.Span{From: vStart, To: i},
		})
	}
	return blocks
}

// decodeTagLiteral strips the Go quoting of a struct tag literal and returns
// the content with a map from content offsets to literal offsets.
func decodeTagLiteral(literal string) (string, []int, error) {
	if len(literal) < 2 {
		return "", nil, diag.New(diag.InvalidFormat, diag.Span{To: len(literal)}, "malformed struct tag")
	}

	switch literal[0] {
	case '`':
		body := literal[1 : len(literal)-1]
		offsets := make([]int, len(body)+1)
		for i := range offsets {
			offsets[i] = i + 1
		}
		return body, offsets, nil
	case '"':
		body, offsets, err := unquoteMapped(literal[1:len(literal)-1], '"')
		if err != nil {
			return "", nil, diag.New(diag.InvalidFormat, diag.Span{To: len(literal)},
				"malformed struct tag: %v", err)
		}
		for i := range offsets {
			offsets[i]++
		}
		return body, offsets, nil
	}
	return "", nil, diag.New(diag.InvalidFormat, diag.Span{To: len(literal)}, "malformed struct tag")
}

// unquoteMapped decodes the body of a Go interpreted string literal. The
// returned offsets map every decoded byte (plus the end) to its offset in s.
func unquoteMapped(s string, quote byte) (string, []int, error) {
	var sb strings.Builder
	offsets := make([]int, 0, len(s)+1)

	for i := 0; i < len(s); {
		r, multibyte, tail, err := strconv.UnquoteChar(s[i:], quote)
		if err != nil {
			return "", nil, err
		}

		before := sb.Len()
		if r < utf8.RuneSelf || !multibyte {
			sb.WriteByte(byte(r))
		} else {
			sb.WriteRune(r)
		}
		for j := before; j < sb.Len(); j++ {
			offsets = append(offsets, i)
		}
		i = len(s) - len(tail)
	}

	offsets = append(offsets, len(s))
	return sb.String(), offsets, nil
}
