package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/actionlabel/binding"
	"github.com/ByLCY/actionlabel/dsl"
	"github.com/ByLCY/actionlabel/styled"
)

const demo = `
label A {
  text "click labe "
  link "test" action=print
}
label B {
  text "hi "
  link "go" action=notify
}
`

func testModel(t *testing.T) *model {
	t.Helper()
	doc, err := dsl.ParseString(demo)
	require.NoError(t, err)
	actions := &bytes.Buffer{}
	labels, err := dsl.Compile(doc, nil, binding.NewDefaultRegistry(actions))
	require.NoError(t, err)
	return newModel(labels, actions, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func key(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestClickInvokesLinkAction(t *testing.T) {
	m := testModel(t)

	// 第一个标签占第 2-4 行，单行文本居中在第 3 行。
	m.Update(release(12, 3))
	assert.Equal(t, []string{"clicked: test"}, m.status)

	m.Update(release(3, 3))
	assert.Len(t, m.status, 1, "plain text is not clickable")

	// 第二个标签占第 6-8 行。
	m.Update(release(4, 7))
	assert.Equal(t, []string{"clicked: test", "clicked: no argument"}, m.status)

	press := release(12, 3)
	press.Action = tea.MouseActionPress
	m.Update(press)
	assert.Len(t, m.status, 2, "only releases trigger actions")
}

func TestKeysRestyleLabels(t *testing.T) {
	m := testModel(t)

	m.Update(key('c'))
	c, _, ok := m.entries[0].label.Text().AttributeAt(styled.KeyForegroundColor, 0)
	require.True(t, ok)
	assert.Equal(t, palette[1], c)

	m.Update(key('f'))
	f, _, ok := m.entries[1].label.Text().AttributeAt(styled.KeyFont, 0)
	require.True(t, ok)
	assert.Equal(t, "bold", f.(styled.Font).Style)

	// 改样式后链接仍可点击
	m.Update(release(12, 3))
	assert.Contains(t, m.status, "clicked: test")

	_, cmd := m.Update(key('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestResizeAndView(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 30.0, m.entries[0].rect.W)
	assert.Equal(t, 6.0, m.entries[1].rect.Y)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, float64(maxWidth), m.entries[0].rect.W)

	view := m.View()
	assert.Contains(t, view, "click labe")
	assert.Contains(t, view, "ActionLabel demo")
}

func TestStatusIsBounded(t *testing.T) {
	m := testModel(t)
	for i := 0; i < maxStatus+3; i++ {
		m.Update(release(12, 3))
	}
	assert.Len(t, m.status, maxStatus)
}
