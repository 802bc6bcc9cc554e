package layout

// VerticalOffset 计算让字形块在绘制区域内垂直居中所需的偏移。
// 内容高于绘制区域时返回 0，即顶部对齐，不会向上偏移。
func VerticalOffset(drawHeight, usedHeight float64) float64 {
	offset := (drawHeight - usedHeight) / 2
	if offset > 0 {
		return offset
	}
	return 0
}

// NewFrame 组装绘制指令：字形块在 rect 内垂直居中。
func NewFrame(rect Rect, g *Geometry) Frame {
	offset := VerticalOffset(rect.H, g.UsedRect().H)
	return Frame{
		Rect:     rect,
		Origin:   Point{X: rect.X, Y: rect.Y + offset},
		Offset:   offset,
		Content:  g.Text().String(),
		Geometry: g,
		Text:     g.Text(),
	}
}
