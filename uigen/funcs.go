package uigen

import (
	"go/types"
	"strings"

	"github.com/teranos/uibind/model"
)

// funcResolver resolves provider functions named in annotations against the
// scope of the package being generated, or of a package it imports
type funcResolver struct {
	pkg *types.Package
}

// Result returns the type of the single result of the named function
func (r funcResolver) Result(name string) (model.TypeDesc, bool) {
	scope := r.pkg.Scope()
	if pkgName, ident, ok := strings.Cut(name, "."); ok {
		scope = nil
		for _, imp := range r.pkg.Imports() {
			if imp.Name() == pkgName {
				scope = imp.Scope()
				break
			}
		}
		if scope == nil {
			return model.TypeDesc{}, false
		}
		name = ident
	}

	fn, ok := scope.Lookup(name).(*types.Func)
	if !ok {
		return model.TypeDesc{}, false
	}
	sig := fn.Type().(*types.Signature)
	if sig.Results().Len() != 1 {
		return model.TypeDesc{}, false
	}
	return model.Describe(sig.Results().At(0).Type(), types.RelativeTo(r.pkg)), true
}
