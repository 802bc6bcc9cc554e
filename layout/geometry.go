package layout

import "github.com/ByLCY/actionlabel/styled"

// Geometry 是某一文本快照在某一容器约束下的排版结果。
// 它记住构建时使用的快照，命中测试必须用同一快照查询属性。
type Geometry struct {
	Container Container `json:"container"`
	Lines     []Line    `json:"lines"`
	Used      Rect      `json:"used"`

	text *styled.Text
}

// Text returns the snapshot the geometry was built from (nil when empty).
func (g *Geometry) Text() *styled.Text {
	if g == nil {
		return nil
	}
	return g.text
}

// Empty reports whether there is nothing laid out.
func (g *Geometry) Empty() bool {
	return g == nil || g.text.Len() == 0 || len(g.Lines) == 0
}

// UsedRect 返回字形实际占用的紧致矩形（可能小于容器）。
func (g *Geometry) UsedRect() Rect {
	if g == nil {
		return Rect{}
	}
	return g.Used
}

// VisibleWidth 返回字形可见的宽度，即容器宽度；不限宽时为 Unbounded。
// 超出部分的字形（clip 模式被截断的内容、行尾悬挂的空白）仍留在 Lines 中，但不会绘制。
func (g *Geometry) VisibleWidth() float64 {
	if g == nil {
		return 0
	}
	return g.Container.widthLimit()
}

// GlyphIndexForPoint 返回离 p 最近的字形所对应的字符索引。
// 点在首行之上按首行处理、在末行之下按末行处理；点在行首之左取行首字形，
// 超过行尾取该行最后一个非换行字形。结果总在 [0, Len-1] 内；空几何返回 0。
func (g *Geometry) GlyphIndexForPoint(p Point) int {
	if g.Empty() {
		return 0
	}
	ln := g.Lines[len(g.Lines)-1]
	for _, candidate := range g.Lines {
		if p.Y < candidate.Rect.Y+candidate.Rect.H {
			ln = candidate
			break
		}
	}

	glyphs := ln.Glyphs
	if n := len(glyphs); n > 1 && isNewline(glyphs[n-1].Text) {
		glyphs = glyphs[:n-1]
	}
	if len(glyphs) == 0 {
		return g.clampIndex(ln.Range.Start)
	}
	for _, gl := range glyphs {
		if p.X < gl.Rect.X+gl.Rect.W {
			return g.clampIndex(gl.Range.Start)
		}
	}
	return g.clampIndex(glyphs[len(glyphs)-1].Range.Start)
}

// BoundingRect 返回与 r 相交的所有已排版字形的外接矩形；没有相交字形时返回零矩形。
func (g *Geometry) BoundingRect(r styled.Range) Rect {
	var out Rect
	if g.Empty() || r.Empty() {
		return out
	}
	for _, ln := range g.Lines {
		if ln.Range.End <= r.Start {
			continue
		}
		if ln.Range.Start >= r.End {
			break
		}
		for _, gl := range ln.Glyphs {
			if gl.Range.Intersects(r) {
				out = out.Union(gl.Rect)
			}
		}
	}
	return out
}

func (g *Geometry) clampIndex(i int) int {
	n := g.text.Len()
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
