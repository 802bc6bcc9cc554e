// Package hittest 把指针坐标映射回字符索引，再映射到该索引上绑定的动作。
package hittest

import (
	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/styled"
)

// Hit 是一次成功的命中：索引所在的动作绑定及其覆盖的子串。
type Hit struct {
	Index     int
	Range     styled.Range
	Substring string
	Action    styled.Action
}

// Payload 返回动作调用时传入的参数；NoArgAction 没有参数。
func (h Hit) Payload() (string, bool) {
	if _, ok := h.Action.(styled.SubstringAction); ok {
		return h.Substring, true
	}
	return "", false
}

// Invoke 调用动作一次。
func (h Hit) Invoke() {
	switch fn := h.Action.(type) {
	case styled.SubstringAction:
		fn(h.Substring)
	case styled.NoArgAction:
		fn()
	}
}

// Resolve 在几何 g（按 drawRect 尺寸排版）上解析点 p 命中的动作。
// p 位于绘制矩形的坐标空间，会先去掉 drawRect 原点与居中偏移，还原到容器坐标。
// 任何一步失败都返回 ok=false，不会报错。
func Resolve(p layout.Point, drawRect layout.Rect, g *layout.Geometry) (Hit, bool) {
	text := g.Text()
	if g.Empty() {
		return Hit{}, false
	}

	offset := layout.VerticalOffset(drawRect.H, g.UsedRect().H)
	local := layout.Point{X: p.X - drawRect.X, Y: p.Y - drawRect.Y - offset}

	// 先用整段文本的外接矩形排除落在留白上的点，再做逐字查找。
	// 外接矩形按容器宽度截断，超出容器的字形不会绘制，也不能命中。
	bounds := g.BoundingRect(styled.Range{Start: 0, End: text.Len()})
	if limit := g.VisibleWidth(); bounds.X+bounds.W > limit {
		bounds.W = limit - bounds.X
	}
	if !bounds.Contains(local) {
		return Hit{}, false
	}

	index := g.GlyphIndexForPoint(local)
	action, r, ok := text.ActionAt(index)
	if !ok {
		return Hit{}, false
	}
	hit := Hit{Index: index, Range: r, Action: action}
	switch fn := action.(type) {
	case styled.SubstringAction:
		if fn == nil {
			return Hit{}, false
		}
		hit.Substring = text.Substring(r)
	case styled.NoArgAction:
		if fn == nil {
			return Hit{}, false
		}
		hit.Substring = text.Substring(r)
	default:
		return Hit{}, false
	}
	return hit, true
}
