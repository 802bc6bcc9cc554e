// Package cells 是面向终端字符网格的排版后端与渲染器：每个字素簇的宽度为其显示列数，
// 行高固定为 1，坐标单位即终端单元格。
package cells

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/renderer"
	"github.com/ByLCY/actionlabel/styled"
)

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Renderer measures text in terminal cells and paints frames as lipgloss-styled rows.
type Renderer struct {
	style *lipgloss.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLipgloss 指定用于检测终端配色能力的 lipgloss 渲染器。
func WithLipgloss(r *lipgloss.Renderer) Option {
	return func(c *Renderer) { c.style = r }
}

// New creates a cell renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{style: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shape 实现 layout.Typesetter。
func (r *Renderer) Shape(text *styled.Text) ([]layout.Cluster, error) {
	clusters := layout.Segment(text)
	for i := range clusters {
		c := &clusters[i]
		if !c.Newline {
			c.Width = float64(runewidth.StringWidth(c.Text))
			if c.Space && c.Width == 0 {
				c.Width = 1
			}
		}
		c.Height = 1
		c.Ascent = 1
	}
	return clusters, nil
}

type cell struct {
	s    string
	key  string
	fill bool // 宽字符占据的后续单元格
}

// Render 按 frame.Rect 的尺寸输出若干行文本，行间以换行分隔；超出网格的字形被裁掉。
func (r *Renderer) Render(frame layout.Frame) ([]byte, error) {
	cols := int(math.Ceil(frame.Rect.W))
	rows := int(math.Ceil(frame.Rect.H))
	if cols <= 0 || rows <= 0 {
		return nil, nil
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
	}
	styles := map[string]lipgloss.Style{}

	g := frame.Geometry
	if !g.Empty() {
		text := g.Text()
		for _, ln := range g.Lines {
			y := int(math.Floor(frame.Offset + ln.Rect.Y))
			if y < 0 || y >= rows {
				continue
			}
			for _, gl := range ln.Glyphs {
				w := int(gl.Rect.W)
				x := int(math.Floor(gl.Rect.X))
				if w <= 0 || x < 0 || x+w > cols || strings.ContainsAny(gl.Text, "\r\n\t") {
					continue
				}
				key, st := r.styleAt(text, gl.Range.Start)
				styles[key] = st
				grid[y][x] = cell{s: gl.Text, key: key}
				for k := 1; k < w; k++ {
					grid[y][x+k] = cell{key: key, fill: true}
				}
			}
		}
	}

	var out strings.Builder
	for y, line := range grid {
		if y > 0 {
			out.WriteByte('\n')
		}
		writeRow(&out, line, styles)
	}
	return []byte(out.String()), nil
}

func writeRow(out *strings.Builder, line []cell, styles map[string]lipgloss.Style) {
	var seg strings.Builder
	key := ""
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		if key == "" {
			out.WriteString(seg.String())
		} else {
			out.WriteString(styles[key].Render(seg.String()))
		}
		seg.Reset()
	}
	for _, c := range line {
		if c.fill {
			continue
		}
		if c.key != key {
			flush()
			key = c.key
		}
		if c.s == "" {
			seg.WriteByte(' ')
		} else {
			seg.WriteString(c.s)
		}
	}
	flush()
}

// styleAt 根据 i 处的展示属性生成 lipgloss 样式；无样式时 key 为空。
func (r *Renderer) styleAt(text *styled.Text, i int) (string, lipgloss.Style) {
	st := r.style.NewStyle()
	var key strings.Builder
	if v, _, ok := text.AttributeAt(styled.KeyForegroundColor, i); ok {
		if c, ok := v.(styled.Color); ok {
			st = st.Foreground(lipgloss.Color(c.Hex()))
			key.WriteString("fg" + c.Hex())
		}
	}
	if v, _, ok := text.AttributeAt(styled.KeyBackgroundColor, i); ok {
		if c, ok := v.(styled.Color); ok {
			st = st.Background(lipgloss.Color(c.Hex()))
			key.WriteString("bg" + c.Hex())
		}
	}
	if v, _, ok := text.AttributeAt(styled.KeyUnderline, i); ok {
		if u, ok := v.(styled.UnderlineStyle); ok && u != styled.UnderlineNone {
			st = st.Underline(true)
			key.WriteString("u")
		}
	}
	if v, _, ok := text.AttributeAt(styled.KeyFont, i); ok {
		if f, ok := v.(styled.Font); ok && strings.Contains(strings.ToLower(f.Style), "bold") {
			st = st.Bold(true)
			key.WriteString("b")
		}
	}
	return key.String(), st
}
