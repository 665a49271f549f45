package tag

import (
	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/logger"
)

// ShorthandMode decides what happens to entries that follow a
// `label = ...` / `display = ...` shorthand in the same list
type ShorthandMode string

const (
	// ShorthandError reports the first trailing entry as InvalidFormat
	ShorthandError ShorthandMode = "error"
	// ShorthandTruncate ignores trailing entries
	ShorthandTruncate ShorthandMode = "truncate"
)

// Valid reports whether m is a known mode
func (m ShorthandMode) Valid() bool {
	return m == ShorthandError || m == ShorthandTruncate
}

// Parser turns annotation meta-lists into tag trees
type Parser struct {
	Shorthand ShorthandMode
}

// NewParser creates a parser with the given shorthand policy
func NewParser(mode ShorthandMode) *Parser {
	return &Parser{Shorthand: mode}
}

// Parse parses src with the default parser
func Parse(src *annotation.Source) (Tree, error) {
	return NewParser(ShorthandError).Parse(src)
}

// Parse produces the tag tree of one field. An empty block is a bare Display.
// Diagnostics are positioned through src.
func (p *Parser) Parse(src *annotation.Source) (Tree, error) {
	if len(src.Nodes) == 0 {
		return Tree{&Display{}}, nil
	}
	tree, err := p.list(src.Nodes)
	if err != nil {
		return nil, src.Error(err)
	}
	return tree, nil
}

type state int

const (
	stateInit state = iota // no tag parsed yet, a shorthand may start
	stateTags
)

// list is the two-state scan over one meta-list
func (p *Parser) list(nodes []annotation.Node) (Tree, error) {
	var out Tree
	st := stateInit

	for _, n := range nodes {
		var tags []Tag
		var err error

		switch n := n.(type) {
		case *annotation.KeyValue:
			if st == stateInit && isShorthand(n.Name) {
				return p.shorthand(nodes)
			}
			return nil, diag.New(diag.InvalidFormat, n.At, "parameter %q outside of a tag", n.Name).
				WithSuggestion("parameters go inside a tag: name(%s = %s)", n.Name, n.Value.Raw)
		case *annotation.Literal:
			return nil, diag.New(diag.InvalidFormat, n.At, "literal %s where a tag was expected", n.Raw)
		case *annotation.Word:
			tags, err = p.construct(n.Name, n.At, nil, n.At)
		case *annotation.List:
			tags, err = p.construct(n.Name, n.NameAt, n.Nodes, n.At)
		}
		if err != nil {
			return nil, err
		}

		out = append(out, tags...)
		st = stateTags
	}
	return out, nil
}

func isShorthand(name string) bool {
	return name == "label" || name == "display"
}

// shorthand parses `label = lit, display = lit, args...` at the head of a list
func (p *Parser) shorthand(nodes []annotation.Node) (Tree, error) {
	end := 0
scan:
	for end < len(nodes) {
		switch n := nodes[end].(type) {
		case *annotation.KeyValue:
			if !isShorthand(n.Name) {
				break scan
			}
		case *annotation.Word, *annotation.Literal:
		default:
			break scan
		}
		end++
	}

	at := nodes[0].Span().Join(nodes[end-1].Span())
	d, err := p.display(nodes[:end], at)
	if err != nil {
		return nil, err
	}

	if end < len(nodes) {
		rest := nodes[end]
		if p.Shorthand == ShorthandTruncate {
			logger.Logger.Named("tag").Debugw("entries after display shorthand ignored",
				logger.FieldCount, len(nodes)-end,
				logger.FieldTag, annotation.NameOf(rest))
			return Tree{d}, nil
		}
		return nil, diag.New(diag.InvalidFormat, rest.Span(),
			"%q follows a display shorthand and would never be drawn", annotation.NameOf(rest)).
			WithSuggestion("use display(label = ...) to combine a label with other tags")
	}
	return Tree{d}, nil
}

// construct maps a tag name and its parameters to tags. A Word is passed with
// no parameters so required-parameter rules still apply.
func (p *Parser) construct(name string, nameAt diag.Span, params []annotation.Node, at diag.Span) ([]Tag, error) {
	b := base{At: at}

	switch name {
	case "separator", "new_line":
		if _, err := validate(name, noParams, params, at); err != nil {
			return nil, err
		}
		if name == "separator" {
			return []Tag{&Separator{base: b}}, nil
		}
		return []Tag{&NewLine{base: b}}, nil

	case "display", "label":
		d, err := p.display(params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{d}, nil

	case "checkbox":
		v, err := validate(name, checkboxParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Checkbox{base: b, Label: v.get("label"), Catch: v.get("catch")}}, nil

	case "input":
		v, err := validate(name, inputParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Input{
			base:     b,
			Label:    v.get("label"),
			Step:     v.get("step"),
			StepFast: v.get("step_fast"),
			Format:   v.get("format"),
			Flags:    v.get("flags"),
			Catch:    v.get("catch"),
			Map:      v.get("map"),
		}}, nil

	case "drag":
		v, err := validate(name, dragParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Drag{
			base:   b,
			Label:  v.get("label"),
			Min:    v.get("min"),
			Max:    v.get("max"),
			Speed:  v.get("speed"),
			Power:  v.get("power"),
			Format: v.get("format"),
			Catch:  v.get("catch"),
			Map:    v.get("map"),
		}}, nil

	case "slider":
		v, err := validate(name, sliderParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Slider{
			base:   b,
			Min:    v.get("min"),
			Max:    v.get("max"),
			Label:  v.get("label"),
			Format: v.get("format"),
			Power:  v.get("power"),
			Catch:  v.get("catch"),
			Map:    v.get("map"),
		}}, nil

	case "button":
		v, err := validate(name, buttonParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Button{base: b, Label: v.get("label"), Size: v.get("size"), Catch: v.get("catch")}}, nil

	case "nested":
		v, err := validate(name, nestedParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Nested{base: b, Catch: v.get("catch"), Map: v.get("map")}}, nil

	case "text", "text_wrap":
		lit, err := textLiteral(name, params, at)
		if err != nil {
			return nil, err
		}
		if name == "text" {
			return []Tag{&Text{base: b, Lit: lit}}, nil
		}
		return []Tag{&TextWrap{base: b, Lit: lit}}, nil

	case "bullet":
		return p.bullet(params, at)

	case "progress":
		v, err := validate(name, progressParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Progress{base: b, Overlay: v.get("overlay"), Size: v.get("size"), Map: v.get("map")}}, nil

	case "image":
		v, err := validate(name, imageParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&Image{
			base:   b,
			Size:   v.get("size"),
			Border: v.get("border"),
			Tint:   v.get("tint"),
			UV0:    v.get("uv0"),
			UV1:    v.get("uv1"),
		}}, nil

	case "image_button":
		v, err := validate(name, imageButtonParams, params, at)
		if err != nil {
			return nil, err
		}
		return []Tag{&ImageButton{
			base:         b,
			Size:         v.get("size"),
			Background:   v.get("background"),
			FramePadding: v.get("frame_padding"),
			UV0:          v.get("uv0"),
			UV1:          v.get("uv1"),
			Catch:        v.get("catch"),
		}}, nil

	case "color":
		return p.color(params)

	case "tree":
		return p.tree(params, at)

	case "vars":
		return p.vars(params, at)
	}

	return nil, diag.New(diag.UnexpectedMode, nameAt, "unknown tag %q", name).
		WithSuggestion("known tags: %s", knownTags)
}

const knownTags = "separator, new_line, nested, checkbox, input, drag, slider, button, bullet, " +
	"progress, display, label, text, text_wrap, image, image_button, color, tree, vars"

func (p *Parser) display(params []annotation.Node, at diag.Span) (*Display, error) {
	v, err := validate("display", displayParams, params, at)
	if err != nil {
		return nil, err
	}

	d := &Display{base: base{At: at}, Label: v.get("label"), Display: v.get("display")}
	for _, n := range v.positional {
		switch n := n.(type) {
		case *annotation.Word:
			d.Args = append(d.Args, Arg{Field: n.Name, At: n.At})
		case *annotation.Literal:
			lit, err := literalValue(n)
			if err != nil {
				return nil, err
			}
			d.Args = append(d.Args, Arg{Lit: lit, At: n.At})
		}
	}
	if len(d.Args) > 0 && !d.Display.IsSet() {
		return nil, diag.Missing("display", d.Args[0].At).
			WithSuggestion("add display = '...' with one verb per argument")
	}
	return d, nil
}

// textLiteral accepts text('...') and text(lit = '...')
func textLiteral(name string, params []annotation.Node, at diag.Span) (Value, error) {
	v, err := validate(name, textParams, params, at)
	if err != nil {
		return Value{}, err
	}

	lit := v.get("lit")
	for _, n := range v.positional {
		l, ok := n.(*annotation.Literal)
		if !ok {
			return Value{}, unexpectedParam(name, textParams, annotation.NameOf(n), n.Span())
		}
		if lit.IsSet() {
			return Value{}, diag.New(diag.AlreadyDefined, l.At, "text of %s is already defined", name)
		}
		if lit, err = coerce(l, kindStr, "lit"); err != nil {
			return Value{}, err
		}
	}

	if !lit.IsSet() {
		return Value{}, diag.Missing("lit", at).
			WithSuggestion("write %s('...') or %s(lit = '...')", name, name)
	}
	return lit, nil
}

// bullet tries the Bullet{text} parameters first and falls back to a nested
// tree: nothing is a bare BulletParent, one tag follows a BulletParent, more
// than one is an error.
func (p *Parser) bullet(params []annotation.Node, at diag.Span) ([]Tag, error) {
	if v, err := validate("bullet", bulletParams, params, at); err == nil {
		return []Tag{&Bullet{base: base{At: at}, Text: v.get("text")}}, nil
	}

	children, err := p.list(params)
	if err != nil {
		return nil, err
	}

	parent := &BulletParent{base: base{At: at}}
	switch len(children) {
	case 0:
		return []Tag{parent}, nil
	case 1:
		return []Tag{parent, children[0]}, nil
	}
	return nil, diag.New(diag.Bullet, at, "bullet wraps %d tags, at most one is allowed", len(children)).
		WithSuggestion("use one bullet per tag")
}

// color dispatches each inner entry to ColorEdit, ColorPicker or ColorButton
func (p *Parser) color(params []annotation.Node) ([]Tag, error) {
	var out []Tag
	for _, n := range params {
		var (
			name    string
			nameAt  diag.Span
			entries []annotation.Node
		)
		switch n := n.(type) {
		case *annotation.Word:
			name, nameAt = n.Name, n.At
		case *annotation.List:
			name, nameAt, entries = n.Name, n.NameAt, n.Nodes
		case *annotation.Literal:
			return nil, diag.New(diag.InvalidFormat, n.At, "literal %s inside color", n.Raw)
		default:
			return nil, diag.New(diag.UnexpectedMode, annotation.NameSpan(n),
				"color entries are edit, picker or button, found %q", annotation.NameOf(n))
		}

		b := base{At: n.Span()}
		switch name {
		case "edit", "picker":
			v, err := validate("color "+name, colorParams, entries, n.Span())
			if err != nil {
				return nil, err
			}
			if name == "edit" {
				out = append(out, &ColorEdit{base: b, Label: v.get("label"), Flags: v.get("flags"), Catch: v.get("catch")})
			} else {
				out = append(out, &ColorPicker{base: b, Label: v.get("label"), Flags: v.get("flags"), Catch: v.get("catch")})
			}
		case "button":
			v, err := validate("color button", colorButtonParams, entries, n.Span())
			if err != nil {
				return nil, err
			}
			out = append(out, &ColorButton{
				base:  b,
				Label: v.get("label"),
				Flags: v.get("flags"),
				Size:  v.get("size"),
				Catch: v.get("catch"),
			})
		default:
			return nil, diag.New(diag.UnexpectedMode, nameAt,
				"color entries are edit, picker or button, found %q", name)
		}
	}
	return out, nil
}

// children splits out the single nested child list of tree/vars
func (p *Parser) children(tagName, childName string, params []annotation.Node) (Tree, []annotation.Node, error) {
	var (
		child Tree
		seen  bool
		rest  []annotation.Node
	)
	for _, n := range params {
		l, ok := n.(*annotation.List)
		if !ok {
			rest = append(rest, n)
			continue
		}
		if l.Name != childName {
			return nil, nil, diag.New(diag.UnexpectedParam, l.NameAt,
				"unexpected list %q in %s", l.Name, tagName).
				WithSuggestion("nested tags go inside %s(...)", childName)
		}
		if seen {
			return nil, nil, diag.New(diag.AlreadyDefined, l.NameAt,
				"%s already has a %s list", tagName, childName)
		}
		seen = true

		tree, err := p.list(l.Nodes)
		if err != nil {
			return nil, nil, err
		}
		child = tree
	}
	return child, rest, nil
}

func (p *Parser) tree(params []annotation.Node, at diag.Span) ([]Tag, error) {
	child, rest, err := p.children("tree", "node", params)
	if err != nil {
		return nil, err
	}
	v, err := validate("tree", treeParams, rest, at)
	if err != nil {
		return nil, err
	}

	cond := v.get("cond")
	if cond.IsSet() && !validCondition(cond.Str) {
		return nil, diag.New(diag.ParseError, cond.At, "unknown tree condition %q", cond.Str).
			WithSuggestion("cond is one of Always, Once, FirstUseEver, Appearing")
	}

	return []Tag{&TreeNode{
		base:  base{At: at},
		Label: v.get("label"),
		Flags: v.get("flags"),
		Cond:  cond,
		Node:  child,
	}}, nil
}

func validCondition(s string) bool {
	for _, c := range Conditions {
		if c == s {
			return true
		}
	}
	return false
}

func (p *Parser) vars(params []annotation.Node, at diag.Span) ([]Tag, error) {
	child, rest, err := p.children("vars", "content", params)
	if err != nil {
		return nil, err
	}
	v, err := validate("vars", varsParams, rest, at)
	if err != nil {
		return nil, err
	}
	return []Tag{&Vars{
		base:    base{At: at},
		Style:   v.get("style"),
		Color:   v.get("color"),
		Content: child,
	}}, nil
}
