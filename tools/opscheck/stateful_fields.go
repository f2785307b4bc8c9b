package opscheck

import (
	"go/types"
)

// statefulPackages hold synchronization primitives; embedding them means the
// value carries shared mutable state
var statefulPackages = map[string]bool{
	"sync":        true,
	"sync/atomic": true,
}

// StatefulFields walks a struct type and returns the paths of fields that are
// channels, maps, funcs or sync types, following nested structs and pointers.
func StatefulFields(t types.Type) []string {
	var culprits []string
	walkFields(t, "", map[types.Type]bool{}, &culprits)
	return culprits
}

func walkFields(t types.Type, path string, seen map[types.Type]bool, culprits *[]string) {
	switch typ := t.(type) {
	case *types.Named:
		if pkg := typ.Obj().Pkg(); pkg != nil && statefulPackages[pkg.Path()] {
			*culprits = append(*culprits, path)
			return
		}
		// self-referencing types (linked nodes) are walked once per path
		if seen[typ] {
			return
		}
		seen[typ] = true
		walkFields(typ.Underlying(), path, seen, culprits)
		delete(seen, typ)

	case *types.Pointer:
		walkFields(typ.Elem(), path, seen, culprits)

	case *types.Struct:
		for i := 0; i < typ.NumFields(); i++ {
			field := typ.Field(i)
			fieldPath := field.Name()
			if path != "" {
				fieldPath = path + "." + fieldPath
			}
			walkFields(field.Type(), fieldPath, seen, culprits)
		}

	case *types.Map, *types.Chan, *types.Signature:
		*culprits = append(*culprits, path)

	default:
		// basic types, slices and arrays of them are copied with the value
	}
}
