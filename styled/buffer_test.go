package styled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSetContentClearsOnEmpty(t *testing.T) {
	var b Buffer
	b.SetContent(demoText(NoArgAction(func() {})))
	require.Equal(t, 15, b.Len())
	gen := b.Generation()

	b.SetContent(nil)
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Snapshot())
	assert.Greater(t, b.Generation(), gen)

	b.SetContent(Plain(""))
	assert.Nil(t, b.Snapshot())
}

func TestBufferUniformAttributeOnEmptyIsNoop(t *testing.T) {
	var b Buffer
	gen := b.Generation()
	assert.False(t, b.ApplyUniformAttribute(KeyFont, Font{Size: 12}))
	assert.Equal(t, gen, b.Generation())
	assert.Nil(t, b.Snapshot())
}

func TestBufferUniformAttributeReplacesSnapshot(t *testing.T) {
	var b Buffer
	b.SetContent(demoText(NoArgAction(func() {})))
	before := b.Snapshot()

	require.True(t, b.ApplyUniformAttribute(KeyForegroundColor, RGB(0, 0, 255)))
	after := b.Snapshot()
	assert.NotSame(t, before, after)

	c, r, ok := after.AttributeAt(KeyForegroundColor, 12)
	require.True(t, ok)
	assert.Equal(t, RGB(0, 0, 255), c)
	assert.Equal(t, Range{Start: 0, End: 15}, r)

	_, ar, ok := b.ActionAt(12)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 11, End: 15}, ar)

	old, _, _ := before.AttributeAt(KeyForegroundColor, 12)
	assert.Equal(t, RGB(255, 0, 0), old)
}

func TestBufferReplaceDropsOldActions(t *testing.T) {
	var b Buffer
	b.SetContent(demoText(NoArgAction(func() {})))
	b.SetContent(Plain("other label txt"))

	_, _, ok := b.ActionAt(12)
	assert.False(t, ok)
}

func TestBufferUniformAttributeRejectsActionKey(t *testing.T) {
	var b Buffer
	b.SetContent(demoText(NoArgAction(func() {})))
	before, gen := b.Snapshot(), b.Generation()

	assert.False(t, b.ApplyUniformAttribute(KeyAction, NoArgAction(func() {})))
	assert.Same(t, before, b.Snapshot())
	assert.Equal(t, gen, b.Generation())

	_, _, ok := b.ActionAt(0)
	assert.False(t, ok, "uniform action must not be bound")
	_, r, ok := b.ActionAt(12)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 11, End: 15}, r)
}
