package strictchecks

import "fmt"

func MustBeTrueOrPanic(condition bool, message string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(message, args...))
	}
}

// MustBeUnique panics when key was already registered in seen.
// Used while building lookup tables at init time.
func MustBeUnique[K comparable, V any](seen map[K]V, key K, what string) {
	_, dup := seen[key]
	MustBeTrueOrPanic(!dup, "duplicate %s: %v", what, key)
}
