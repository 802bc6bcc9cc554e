package styled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoText(a Action) *Text {
	return NewBuilder("click labe test").
		AddAttribute(KeyForegroundColor, RGB(255, 0, 0), Range{Start: 11, End: 15}).
		AddAttribute(KeyUnderline, UnderlineSingle, Range{Start: 11, End: 15}).
		AddAction(Range{Start: 11, End: 15}, a).
		Text()
}

func TestActionAtReturnsEffectiveRange(t *testing.T) {
	var got string
	txt := demoText(SubstringAction(func(s string) { got = s }))

	a, r, ok := txt.ActionAt(12)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 11, End: 15}, r)
	assert.Equal(t, "test", txt.Substring(r))

	a.(SubstringAction)(txt.Substring(r))
	assert.Equal(t, "test", got)

	_, _, ok = txt.ActionAt(5)
	assert.False(t, ok)
	_, _, ok = txt.ActionAt(15)
	assert.False(t, ok, "range end is exclusive")
	_, _, ok = txt.ActionAt(-1)
	assert.False(t, ok)
}

func TestOverlappingActionsLastWriteWins(t *testing.T) {
	first := NoArgAction(func() {})
	second := NoArgAction(func() {})
	txt := NewBuilder("abcdefghij").
		AddAction(Range{Start: 0, End: 6}, first).
		AddAction(Range{Start: 3, End: 8}, second).
		Text()

	_, r, ok := txt.ActionAt(1)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 0, End: 3}, r)

	_, r, ok = txt.ActionAt(5)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 3, End: 8}, r)

	_, _, ok = txt.ActionAt(9)
	assert.False(t, ok)
}

func TestSplitBindingKeepsSeparatePieces(t *testing.T) {
	outer := NoArgAction(func() {})
	inner := NoArgAction(func() {})
	txt := NewBuilder("0123456789").
		AddAction(Range{Start: 0, End: 10}, outer).
		AddAction(Range{Start: 4, End: 6}, inner).
		Text()

	_, r, _ := txt.ActionAt(2)
	assert.Equal(t, Range{Start: 0, End: 4}, r)
	_, r, _ = txt.ActionAt(4)
	assert.Equal(t, Range{Start: 4, End: 6}, r)
	_, r, _ = txt.ActionAt(8)
	assert.Equal(t, Range{Start: 6, End: 10}, r)
}

func TestWithAttributePreservesActions(t *testing.T) {
	txt := demoText(NoArgAction(func() {}))
	font := Font{Family: "Go-Regular", Size: 18}

	updated := txt.WithAttribute(KeyFont, font)

	_, r, ok := updated.ActionAt(13)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 11, End: 15}, r)

	v, fr, ok := updated.AttributeAt(KeyFont, 0)
	require.True(t, ok)
	assert.Equal(t, font, v)
	assert.Equal(t, Range{Start: 0, End: 15}, fr)

	c, _, ok := updated.AttributeAt(KeyForegroundColor, 12)
	require.True(t, ok)
	assert.Equal(t, RGB(255, 0, 0), c)

	_, _, ok = txt.AttributeAt(KeyFont, 0)
	assert.False(t, ok, "original snapshot must not change")
}

func TestReservedKeyIgnoresNonActionValues(t *testing.T) {
	txt := NewBuilder("hello").
		AddAttribute(KeyAction, "not a func", Range{Start: 0, End: 5}).
		AddAttribute(KeyAction, SubstringAction(nil), Range{Start: 0, End: 5}).
		Text()
	assert.False(t, txt.HasActions())

	txt = txt.Mutable().AddAttribute(KeyAction, NoArgAction(func() {}), Range{Start: 1, End: 3}).Text()
	_, r, ok := txt.ActionAt(2)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 1, End: 3}, r)
}

func TestRangesAreClamped(t *testing.T) {
	txt := NewBuilder("abc").
		AddAction(Range{Start: -4, End: 99}, NoArgAction(func() {})).
		AddAttribute(KeyUnderline, UnderlineSingle, Range{Start: 5, End: 9}).
		Text()

	_, r, ok := txt.ActionAt(0)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 0, End: 3}, r)

	_, _, ok = txt.AttributeAt(KeyUnderline, 2)
	assert.False(t, ok)
}

func TestRunsSplitAtEveryBoundary(t *testing.T) {
	txt := NewBuilder("").
		Append("click labe ", nil).
		Append("test", map[Key]any{
			KeyForegroundColor: RGB(255, 0, 0),
			KeyAction:          NoArgAction(func() {}),
		}).
		Text()

	runs := txt.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, Range{Start: 0, End: 11}, runs[0].Range)
	assert.Nil(t, runs[0].Action)
	assert.Equal(t, Range{Start: 11, End: 15}, runs[1].Range)
	assert.NotNil(t, runs[1].Action)
	c, ok := runs[1].ForegroundColor()
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", c.Hex())
}

func TestNilTextIsEmpty(t *testing.T) {
	var txt *Text
	assert.Equal(t, 0, txt.Len())
	assert.Equal(t, "", txt.String())
	assert.Nil(t, txt.Runs())
	assert.Nil(t, txt.WithAttribute(KeyFont, Font{}))
	_, _, ok := txt.ActionAt(0)
	assert.False(t, ok)
}

func TestBuilderSnapshotsAreIndependent(t *testing.T) {
	b := NewBuilder("abc")
	first := b.Text()
	b.Append("def", nil).AddAction(Range{Start: 0, End: 6}, NoArgAction(func() {}))

	assert.Equal(t, "abc", first.String())
	assert.False(t, first.HasActions())
	assert.Equal(t, "abcdef", b.Text().String())
}

func TestSubstringUsesRuneOffsets(t *testing.T) {
	txt := Plain("点击标签 test")
	assert.Equal(t, 9, txt.Len())
	assert.Equal(t, "标签", txt.Substring(Range{Start: 2, End: 4}))
}
