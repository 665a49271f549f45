package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/uibind/model"
	"github.com/teranos/uibind/tag"
)

// Names used inside generated Draw methods
const (
	recv   = "v"
	hostV  = "h"
	events = "events"
)

// Context is the emission state of one aggregate: the statement buffer, the
// resolved event schema and the imports the statements need. It is threaded
// through the recursive walk and discarded once the aggregate is emitted.
type Context struct {
	opts   Options
	agg    *model.Aggregate
	schema *Schema

	buf     strings.Builder
	indent  int
	needFmt bool
}

func newContext(agg *model.Aggregate, schema *Schema, opts Options) *Context {
	return &Context{opts: opts, agg: agg, schema: schema}
}

func (c *Context) line(format string, args ...interface{}) {
	c.buf.WriteString(strings.Repeat("\t", c.indent))
	fmt.Fprintf(&c.buf, format, args...)
	c.buf.WriteByte('\n')
}

// hostFn qualifies a host package identifier
func (c *Context) hostFn(name string) string {
	return c.opts.host() + "." + name
}

// fieldRef is the expression of field f on the receiver
func fieldRef(f *model.Field) string {
	return recv + "." + f.Name
}

// pointer is the address passed to widgets, or the map function applied to it
func pointer(f *model.Field, mapFn tag.Value) string {
	if mapFn.IsSet() {
		return mapFn.Str + "(&" + fieldRef(f) + ")"
	}
	return "&" + fieldRef(f)
}

// sequence is the slice expression over an array or slice field
func sequence(f *model.Field) string {
	if f.Type.Kind == model.Slice {
		return fieldRef(f)
	}
	return fieldRef(f) + "[:]"
}

// label quotes the label parameter, defaulting to the field name
func label(v tag.Value, f *model.Field) string {
	return strconv.Quote(v.Or(f.Name).Str)
}

// provide calls a provider function, or returns def when none is given
func provide(v tag.Value, def string) string {
	if v.IsSet() {
		return v.Str + "()"
	}
	return def
}

// options renders a composite literal with only the given fields set
func (c *Context) options(typ string, fields ...string) string {
	var set []string
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] != "" {
			set = append(set, fields[i]+": "+fields[i+1])
		}
	}
	return c.hostFn(typ) + "{" + strings.Join(set, ", ") + "}"
}

// val renders a set value as Go, or "" when unset
func val(v tag.Value) string {
	if !v.IsSet() {
		return ""
	}
	return v.Go()
}

// fn renders a provider call for a set value, or "" when unset
func fn(v tag.Value) string {
	return provide(v, "")
}
