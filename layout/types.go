package layout

// 该文件定义几何类型与绘制结果，供排版、命中测试、渲染与调试 JSON 共用。
// 坐标单位为 pt，原点在左上角，y 轴向下。

import (
	"math"

	"github.com/ByLCY/actionlabel/styled"
)

// Unbounded 表示不限制的尺寸，例如尺寸计算时的容器高度。
const Unbounded = math.MaxFloat64

// Point 是二维坐标。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size 是宽高对。
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect 是轴对齐矩形。
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// IsZero reports whether r has no area.
func (r Rect) IsZero() bool { return r.W <= 0 && r.H <= 0 }

// Contains 判断点是否落在矩形内，四条边都算在内。
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Union returns the smallest rectangle covering r and o. A zero rect is the identity.
func (r Rect) Union(o Rect) Rect {
	if r.IsZero() {
		return o
	}
	if o.IsZero() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.X+r.W, o.X+o.W)
	y1 := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Cluster 是排版后端测量过的一个字素簇，覆盖字符区间 [Start, End)。
type Cluster struct {
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Text    string  `json:"text"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Ascent  float64 `json:"ascent"`
	Space   bool    `json:"space,omitempty"`
	Newline bool    `json:"newline,omitempty"`
}

// Glyph 是已定位的字素簇，Rect 的高度等于所在行高。
type Glyph struct {
	Range styled.Range `json:"range"`
	Rect  Rect         `json:"rect"`
	Text  string       `json:"text"`
}

// Line 是一行排版结果。Rect.W 不含行尾悬挂的空白。
type Line struct {
	Range    styled.Range `json:"range"`
	Rect     Rect         `json:"rect"`
	Baseline float64      `json:"baseline"`
	Glyphs   []Glyph      `json:"glyphs"`
}

// Frame 是一次绘制所需的全部信息：在 Origin 处绘制 Geometry 中的字形即可。
type Frame struct {
	Rect     Rect         `json:"rect"`
	Origin   Point        `json:"origin"`
	Offset   float64      `json:"offset"`
	Content  string       `json:"content"`
	Geometry *Geometry    `json:"geometry"`
	Text     *styled.Text `json:"-"`
}
