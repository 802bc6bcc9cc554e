package binding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/actionlabel/styled"
)

func TestInterpolate(t *testing.T) {
	data := map[string]any{
		"user":  map[string]any{"name": "Ada", "tags": []any{"x", "y"}},
		"count": 3,
	}
	cases := map[string]string{
		"hi ${user.name}":       "hi Ada",
		"${ user.tags[1] }!":    "y!",
		"n=${count}":            "n=3",
		"${missing} stays":      "${missing} stays",
		"${user.tags[9]}":       "${user.tags[9]}",
		"${user.tags[x]}":       "${user.tags[x]}",
		"plain":                 "plain",
		"${user.name}${count}": "Ada3",
	}
	for in, want := range cases {
		assert.Equal(t, want, Interpolate(in, data), in)
	}
	assert.Equal(t, "${user.name}", Interpolate("${user.name}", nil))
}

func TestLookupStructsAndPointers(t *testing.T) {
	type item struct {
		Title  string
		hidden string
	}
	data := &struct {
		Items []*item
		Grid  [2][2]int
	}{
		Items: []*item{{Title: "first", hidden: "h"}, nil},
		Grid:  [2][2]int{{1, 2}, {3, 4}},
	}

	v, ok := Lookup(data, "Items[0].Title")
	require.True(t, ok)
	assert.Equal(t, "first", v)

	v, ok = Lookup(data, "Grid[1][0]")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Lookup(data, "Items[0].hidden")
	assert.False(t, ok, "unexported fields are not reachable")
	_, ok = Lookup(data, "Items[1].Title")
	assert.False(t, ok, "nil pointer")
	_, ok = Lookup(map[int]any{1: "x"}, "1")
	assert.False(t, ok, "non-string map keys")
}

func TestDefaultRegistry(t *testing.T) {
	var out bytes.Buffer
	r := NewDefaultRegistry(&out)
	assert.Equal(t, []string{"notify", "print"}, r.Names())

	a, ok := r.Lookup("print")
	require.True(t, ok)
	a.(styled.SubstringAction)("test")

	a, ok = r.Lookup("notify")
	require.True(t, ok)
	a.(styled.NoArgAction)()

	assert.Equal(t, "clicked: test\nclicked: no argument\n", out.String())

	_, ok = r.Lookup("open")
	assert.False(t, ok)
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", styled.NoArgAction(func() {})))
	assert.Error(t, r.Register("nil", styled.NoArgAction(nil)))
	assert.Error(t, r.Register("nil", styled.SubstringAction(nil)))
	assert.Error(t, r.Register("nil", nil))
	assert.Panics(t, func() { r.MustRegister("", nil) })

	var nilRegistry *Registry
	_, ok := nilRegistry.Lookup("print")
	assert.False(t, ok)
}
