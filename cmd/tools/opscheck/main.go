package main

import (
	"fmt"
	"os"

	"NumConv/tools/opscheck"
)

// Lists every ConversionOps implementation in the module and fails if one of
// them carries mutable state, since hosts share a single converter across
// connections without locking.
func main() {
	impls, err := opscheck.FindImplementations("NumConv/convops", "ConversionOps", "./...")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	failed := false
	for _, impl := range impls {
		if len(impl.StatefulFields) > 0 {
			failed = true
			fmt.Printf("%s.%s implements ConversionOps but holds mutable state: %v\n", impl.Package, impl.Name, impl.StatefulFields)
			continue
		}
		fmt.Printf("%s.%s implements ConversionOps and is stateless\n", impl.Package, impl.Name)
	}

	if failed {
		os.Exit(1)
	}
}
