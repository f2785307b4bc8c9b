package opscheck

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

const src = `package sample

import "sync"

type Limits struct {
	MaxPhrase int
	MaxText   int
}

type Pure struct {
	cfg *Limits
	name string
}

type Cached struct {
	mu    sync.RWMutex
	cache map[string]int64
	cfg   *Limits
	hook  func()
}

type Nested struct {
	inner struct {
		done chan struct{}
	}
}
`

func loadSample(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "sample.go", src, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("sample", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	return pkg
}

func TestStatefulFields(t *testing.T) {
	pkg := loadSample(t)
	lookup := func(name string) types.Type { return pkg.Scope().Lookup(name).Type() }

	require.Empty(t, StatefulFields(lookup("Pure")))
	require.Equal(t, []string{"mu", "cache", "hook"}, StatefulFields(lookup("Cached")))
	require.Equal(t, []string{"inner.done"}, StatefulFields(lookup("Nested")))
}
