package layout

import "math"

// IntrinsicSize 返回几何的固有尺寸：已用矩形宽高向上取整，保证不会少报而裁掉内容。
// 空几何返回零尺寸。
func IntrinsicSize(g *Geometry) Size {
	if g.Empty() {
		return Size{}
	}
	used := g.UsedRect()
	return Size{W: math.Ceil(used.W), H: math.Ceil(used.H)}
}

// SizingContainer is the constraint used for intrinsic size queries: the preferred
// width with unbounded height.
func SizingContainer(maxWidth float64, lineBreak LineBreakMode, maxLines int) Container {
	return Container{Width: maxWidth, Height: Unbounded, LineBreak: lineBreak, MaxLines: maxLines}
}
