package opscheck

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Implementation is a named type implementing the checked interface
type Implementation struct {
	Package string
	Name    string
	// StatefulFields lists field paths that hold mutable shared state
	StatefulFields []string
}

// FindImplementations loads pkgPattern together with ifacePkgPath and returns
// every named struct type (or pointer to it) implementing ifaceName.
func FindImplementations(ifacePkgPath, ifaceName, pkgPattern string) ([]Implementation, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, ifacePkgPath, pkgPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var interfaceType *types.Interface
	for _, pkg := range pkgs {
		if pkg.PkgPath == ifacePkgPath && pkg.Types != nil {
			interfaceType = findInterfaceByName(ifaceName, pkg.Types)
		}
	}
	if interfaceType == nil {
		return nil, fmt.Errorf("interface %s.%s not found", ifacePkgPath, ifaceName)
	}

	var found []Implementation
	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.Types.Scope() == nil {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}

			// Ensure the type's underlying kind is a struct before asserting
			if _, ok := typeName.Type().Underlying().(*types.Struct); !ok {
				continue
			}

			if !types.Implements(typeName.Type(), interfaceType) &&
				!types.Implements(types.NewPointer(typeName.Type()), interfaceType) {
				continue
			}

			found = append(found, Implementation{
				Package:        pkg.PkgPath,
				Name:           typeName.Name(),
				StatefulFields: StatefulFields(typeName.Type()),
			})
		}
	}

	return found, nil
}

// findInterfaceByName looks up an interface by name in a package's scope
func findInterfaceByName(interfaceName string, pkg *types.Package) *types.Interface {
	obj := pkg.Scope().Lookup(interfaceName)
	if obj == nil {
		return nil
	}
	iface, _ := obj.Type().Underlying().(*types.Interface)
	return iface
}
