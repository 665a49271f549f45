package tag

import (
	"reflect"

	"github.com/iancoleman/strcase"
)

var (
	valueType = reflect.TypeOf(Value{})
	treeType  = reflect.TypeOf(Tree{})
	argsType  = reflect.TypeOf([]Arg{})
)

// Dump renders a tree as plain maps for `uibind inspect` output. Each tag
// becomes {"tag": name, <set params>..., "children": [...], "args": [...]}.
func Dump(tree Tree) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tree))
	for _, t := range tree {
		out = append(out, dumpTag(t))
	}
	return out
}

func dumpTag(t Tag) map[string]interface{} {
	m := map[string]interface{}{"tag": t.Name()}

	rv := reflect.ValueOf(t).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		key := strcase.ToSnake(f.Name)
		if name, ok := f.Tag.Lookup("param"); ok {
			key = name
		}

		switch f.Type {
		case valueType:
			if v := rv.Field(i).Interface().(Value); v.IsSet() {
				m[key] = v.Interface()
			}
		case treeType:
			if child := rv.Field(i).Interface().(Tree); child != nil {
				m["children"] = Dump(child)
			}
		case argsType:
			args := rv.Field(i).Interface().([]Arg)
			if len(args) == 0 {
				continue
			}
			list := make([]interface{}, len(args))
			for j, a := range args {
				if a.Field != "" {
					list[j] = map[string]interface{}{"field": a.Field}
				} else {
					list[j] = a.Lit.Interface()
				}
			}
			m["args"] = list
		}
	}
	return m
}
