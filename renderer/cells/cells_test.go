package cells

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/styled"
)

// plain 返回不输出任何转义序列的渲染器，便于直接比较文本。
func plain() *Renderer { return New(WithLipgloss(lipgloss.NewRenderer(io.Discard))) }

func frame(t *testing.T, r *Renderer, txt *styled.Text, rect layout.Rect) layout.Frame {
	t.Helper()
	g, err := layout.Build(txt, layout.Container{Width: rect.W, Height: rect.H}, layout.BuildOptions{Typesetter: r})
	require.NoError(t, err)
	return layout.NewFrame(rect, g)
}

func TestShapeMeasuresDisplayColumns(t *testing.T) {
	clusters, err := plain().Shape(styled.Plain("a中 \n"))
	require.NoError(t, err)
	require.Len(t, clusters, 4)

	widths := make([]float64, len(clusters))
	for i, c := range clusters {
		widths[i] = c.Width
		assert.Equal(t, 1.0, c.Height)
	}
	assert.Equal(t, []float64{1, 2, 1, 0}, widths)
	assert.True(t, clusters[3].Newline)
}

func TestRenderCentersSingleLine(t *testing.T) {
	r := plain()
	txt := styled.NewBuilder("click labe test").
		AddAttribute(styled.KeyForegroundColor, styled.RGB(255, 0, 0), styled.Range{Start: 11, End: 15}).
		Text()
	out, err := r.Render(frame(t, r, txt, layout.Rect{W: 20, H: 3}))
	require.NoError(t, err)

	blank := strings.Repeat(" ", 20)
	assert.Equal(t, blank+"\nclick labe test     \n"+blank, string(out))
}

func TestRenderWrapsAndClipsRows(t *testing.T) {
	r := plain()
	out, err := r.Render(frame(t, r, styled.Plain("ab cd ef"), layout.Rect{W: 3, H: 2}))
	require.NoError(t, err)
	assert.Equal(t, "ab \ncd ", string(out))
}

func TestRenderWideGlyph(t *testing.T) {
	r := plain()
	out, err := r.Render(frame(t, r, styled.Plain("中a"), layout.Rect{W: 5, H: 1}))
	require.NoError(t, err)
	assert.Equal(t, "中a  ", string(out))
}

func TestRenderEmpty(t *testing.T) {
	r := plain()
	out, err := r.Render(frame(t, r, nil, layout.Rect{W: 2, H: 1}))
	require.NoError(t, err)
	assert.Equal(t, "  ", string(out))

	out, err = r.Render(layout.Frame{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStyleKeys(t *testing.T) {
	r := plain()
	txt := styled.NewBuilder("ab").
		AddAttributes(map[styled.Key]any{
			styled.KeyForegroundColor: styled.RGB(255, 0, 0),
			styled.KeyUnderline:       styled.UnderlineSingle,
			styled.KeyFont:            styled.Font{Family: "Go", Size: 12, Style: "Bold"},
		}, styled.Range{Start: 1, End: 2}).
		Text()

	key, _ := r.styleAt(txt, 0)
	assert.Empty(t, key)

	key, st := r.styleAt(txt, 1)
	assert.Equal(t, "fg#ff0000ub", key)
	assert.True(t, st.GetUnderline())
	assert.True(t, st.GetBold())
}
