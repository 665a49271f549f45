package tag

import (
	"strings"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
)

// param declares one parameter slot of a tag
type param struct {
	name     string
	kind     paramKind
	required bool
}

func req(name string, kind paramKind) param { return param{name: name, kind: kind, required: true} }
func opt(name string, kind paramKind) param { return param{name: name, kind: kind} }

// table is the parameter contract of one tag kind
type table struct {
	params     []param
	positional bool // accepts bare words and literals
}

func (t table) lookup(name string) (param, bool) {
	for _, p := range t.params {
		if p.name == name {
			return p, true
		}
	}
	return param{}, false
}

func (t table) names() string {
	names := make([]string, len(t.params))
	for i, p := range t.params {
		names[i] = p.name
	}
	return strings.Join(names, ", ")
}

var (
	noParams = table{}

	displayParams = table{
		params:     []param{opt("label", kindStr), opt("display", kindStr)},
		positional: true,
	}
	checkboxParams = table{params: []param{
		opt("label", kindStr), opt("catch", kindStr),
	}}
	inputParams = table{params: []param{
		opt("label", kindStr), opt("step", kindNum), opt("step_fast", kindNum),
		opt("format", kindStr), opt("flags", kindFunc), opt("catch", kindStr), opt("map", kindFunc),
	}}
	dragParams = table{params: []param{
		opt("label", kindStr), opt("min", kindNum), opt("max", kindNum), opt("speed", kindNum),
		opt("power", kindNum), opt("format", kindStr), opt("catch", kindStr), opt("map", kindFunc),
	}}
	sliderParams = table{params: []param{
		req("min", kindNum), req("max", kindNum),
		opt("label", kindStr), opt("format", kindStr), opt("power", kindNum),
		opt("catch", kindStr), opt("map", kindFunc),
	}}
	buttonParams = table{params: []param{
		req("label", kindStr), opt("size", kindFunc), opt("catch", kindStr),
	}}
	nestedParams = table{params: []param{
		opt("catch", kindStr), opt("map", kindFunc),
	}}
	textParams = table{
		params:     []param{opt("lit", kindStr)},
		positional: true,
	}
	bulletParams = table{params: []param{
		opt("text", kindStr),
	}}
	progressParams = table{params: []param{
		opt("overlay", kindStr), opt("size", kindFunc), opt("map", kindFunc),
	}}
	imageParams = table{params: []param{
		req("size", kindFunc), opt("border", kindFunc), opt("tint", kindFunc),
		opt("uv0", kindFunc), opt("uv1", kindFunc),
	}}
	imageButtonParams = table{params: []param{
		req("size", kindFunc), opt("background", kindFunc), opt("frame_padding", kindInt),
		opt("uv0", kindFunc), opt("uv1", kindFunc), opt("catch", kindStr),
	}}
	colorParams = table{params: []param{
		opt("label", kindStr), opt("flags", kindFunc), opt("catch", kindStr),
	}}
	colorButtonParams = table{params: []param{
		opt("label", kindStr), opt("flags", kindFunc), opt("size", kindFunc), opt("catch", kindStr),
	}}
	treeParams = table{params: []param{
		opt("label", kindStr), opt("flags", kindFunc), opt("cond", kindStr),
	}}
	varsParams = table{params: []param{
		opt("style", kindFunc), opt("color", kindFunc),
	}}
)

// values holds the validated parameters of one tag
type values struct {
	named      map[string]Value
	positional []annotation.Node
}

func (v values) get(name string) Value {
	return v.named[name]
}

// validate applies the one parameter rule shared by every tag: known keys are
// stored once, repeats are AlreadyDefined, unknown keys are UnexpectedParam,
// and required slots left empty are MissingParam in declaration order.
func validate(tagName string, t table, nodes []annotation.Node, at diag.Span) (values, error) {
	v := values{named: make(map[string]Value)}

	for _, n := range nodes {
		switch n := n.(type) {
		case *annotation.KeyValue:
			p, ok := t.lookup(n.Name)
			if !ok {
				return values{}, unexpectedParam(tagName, t, n.Name, n.NameAt)
			}
			if _, dup := v.named[n.Name]; dup {
				return values{}, diag.New(diag.AlreadyDefined, n.At,
					"parameter %q is already defined for %s", n.Name, tagName)
			}
			val, err := coerce(n.Value, p.kind, n.Name)
			if err != nil {
				return values{}, err
			}
			v.named[n.Name] = val

		case *annotation.Word:
			if !t.positional {
				return values{}, unexpectedParam(tagName, t, n.Name, n.At)
			}
			v.positional = append(v.positional, n)

		case *annotation.Literal:
			if !t.positional {
				return values{}, diag.New(diag.InvalidFormat, n.At,
					"%s does not take positional literals", tagName).
					WithSuggestion("name the parameter: %s(name = %s)", tagName, n.Raw)
			}
			v.positional = append(v.positional, n)

		case *annotation.List:
			return values{}, unexpectedParam(tagName, t, n.Name, n.NameAt)
		}
	}

	for _, p := range t.params {
		if _, ok := v.named[p.name]; p.required && !ok {
			return values{}, diag.Missing(p.name, at).
				WithSuggestion("%s requires %s", tagName, requiredNames(t))
		}
	}
	return v, nil
}

func unexpectedParam(tagName string, t table, name string, at diag.Span) *diag.Error {
	d := diag.New(diag.UnexpectedParam, at, "unexpected parameter %q for %s", name, tagName)
	if len(t.params) == 0 {
		return d.WithSuggestion("%s takes no parameters", tagName)
	}
	return d.WithSuggestion("%s accepts %s", tagName, t.names())
}

func requiredNames(t table) string {
	var names []string
	for _, p := range t.params {
		if p.required {
			names = append(names, p.name)
		}
	}
	return strings.Join(names, ", ")
}
