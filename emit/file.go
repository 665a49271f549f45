package emit

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/model"
)

// Unit is the compiled output of one aggregate
type Unit struct {
	Aggregate *model.Aggregate
	Schema    *Schema
	Events    string // events type name
	Method    string // draw method name
	Code      string // events type, Any method and draw method
	NeedFmt   bool
}

// Compile runs both passes over an aggregate whose fields already carry tag
// trees: pass 1 synthesizes the event schema, pass 2 emits the statements.
// The first error aborts the aggregate.
func Compile(agg *model.Aggregate, opts Options) (*Unit, error) {
	schema, err := Synthesize(agg, opts)
	if err != nil {
		return nil, err
	}

	c := newContext(agg, schema, opts)
	c.indent = 1
	for _, f := range agg.Annotated() {
		if err := c.field(f); err != nil {
			return nil, err
		}
	}

	u := &Unit{
		Aggregate: agg,
		Schema:    schema,
		Events:    opts.EventsName(agg),
		Method:    opts.MethodName(agg),
		NeedFmt:   c.needFmt,
	}

	var sb strings.Builder
	writeEvents(&sb, u)
	fmt.Fprintf(&sb, "\n// %s draws %s and reports which widgets were interacted with.\n", u.Method, agg.Name)
	fmt.Fprintf(&sb, "func (%s *%s) %s(%s %s.Host) %s {\n", recv, agg.Name, u.Method, hostV, opts.host(), u.Events)
	fmt.Fprintf(&sb, "\tvar %s %s\n", events, u.Events)
	sb.WriteString(c.buf.String())
	fmt.Fprintf(&sb, "\treturn %s\n}\n", events)
	u.Code = sb.String()
	return u, nil
}

func writeEvents(sb *strings.Builder, u *Unit) {
	fmt.Fprintf(sb, "// %s reports the interactions of one %s.%s call.\n", u.Events, u.Aggregate.Name, u.Method)
	fmt.Fprintf(sb, "type %s struct {\n", u.Events)
	for _, ev := range u.Schema.Events {
		fmt.Fprintf(sb, "\t%s %s\n", ev.GoName, ev.Type)
	}
	sb.WriteString("}\n\n")

	var terms []string
	for _, ev := range u.Schema.Events {
		if ev.Kind == NestedEvent {
			terms = append(terms, "e."+ev.GoName+".Any()")
		} else {
			terms = append(terms, "e."+ev.GoName)
		}
	}
	if len(terms) == 0 {
		terms = []string{"false"}
	}
	sb.WriteString("// Any reports whether any widget was interacted with.\n")
	fmt.Fprintf(sb, "func (e %s) Any() bool {\n\treturn %s\n}\n", u.Events, strings.Join(terms, " || "))
}

// Header returns the first line of every generated file
func Header(version string) string {
	if version == "" {
		version = "(devel)"
	}
	return "// Code generated by uibind " + version + ". DO NOT EDIT."
}

var headerRE = regexp.MustCompile(`^// Code generated by uibind (\S+)\. DO NOT EDIT\.$`)

// HeaderVersion returns the generator version recorded in the first line of
// src, and false when src was not generated by uibind
func HeaderVersion(src []byte) (string, bool) {
	line := src
	if i := bytes.IndexByte(src, '\n'); i >= 0 {
		line = src[:i]
	}
	m := headerRE.FindSubmatch(bytes.TrimRight(line, "\r"))
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// File assembles the units of one package into a formatted Go source file
func File(filename, pkg string, units []*Unit, opts Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(Header(opts.Version))
	sb.WriteString("\n\npackage ")
	sb.WriteString(pkg)
	sb.WriteString("\n\n")

	needFmt := false
	for _, u := range units {
		needFmt = needFmt || u.NeedFmt
	}

	sb.WriteString("import (\n")
	if needFmt {
		sb.WriteString("\t\"fmt\"\n\n")
	}
	if path.Base(opts.hostImport()) != opts.host() {
		sb.WriteString("\t" + opts.host() + " ")
	} else {
		sb.WriteString("\t")
	}
	sb.WriteString(strconv.Quote(opts.hostImport()))
	sb.WriteString("\n)\n")

	for _, u := range units {
		sb.WriteString("\n")
		sb.WriteString(u.Code)
	}

	out, err := imports.Process(filename, []byte(sb.String()), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, errors.WithDetail(
			errors.Wrapf(err, "formatting generated %s", filename),
			sb.String())
	}
	return out, nil
}
