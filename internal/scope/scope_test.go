package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
)

func TestDefineThenLookup(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	val := h.AllocNumber(42)
	Define(h, g, "x", val)

	got, err := Lookup(h, g, "x")
	require.NoError(t, err)
	assert.Equal(t, val, got)
}

func TestLookupUnboundIsNameError(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	_, err := Lookup(h, g, "nope")
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Name))
}

func TestChildSeesParentBindings(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	Define(h, g, "x", h.AllocNumber(1))

	c := Child(h, g)
	got, err := Lookup(h, c, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.Get(got).Int)
}

func TestChildDefineShadowsWithoutMutatingParent(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	Define(h, g, "x", h.AllocNumber(1))

	c := Child(h, g)
	Define(h, c, "x", h.AllocNumber(2))

	gotChild, err := Lookup(h, c, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), h.Get(gotChild).Int)

	gotParent, err := Lookup(h, g, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.Get(gotParent).Int)
}

func TestAssignWritesThroughToDefiningFrame(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	Define(h, g, "x", h.AllocNumber(1))

	c := Child(h, g)
	err := Assign(h, c, "x", h.AllocNumber(99))
	require.NoError(t, err)

	got, err := Lookup(h, g, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(99), h.Get(got).Int)
}

func TestAssignUnboundIsNameError(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	err := Assign(h, g, "nope", h.AllocNumber(1))
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Name))
}

func TestAssignPrefersInnermostDefiningFrame(t *testing.T) {
	h := heap.New(0)
	g := New(h)
	Define(h, g, "x", h.AllocNumber(1))
	c := Child(h, g)
	Define(h, c, "x", h.AllocNumber(2))

	require.NoError(t, Assign(h, c, "x", h.AllocNumber(3)))

	gotChild, _ := Lookup(h, c, "x")
	assert.Equal(t, int64(3), h.Get(gotChild).Int)
	gotParent, _ := Lookup(h, g, "x")
	assert.Equal(t, int64(1), h.Get(gotParent).Int)
}
