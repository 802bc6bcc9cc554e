package styled

import "fmt"

// Key 标识一种属性。KeyAction 是保留键，其余为纯展示属性。
type Key string

const (
	KeyFont            Key = "font"
	KeyForegroundColor Key = "foregroundColor"
	KeyBackgroundColor Key = "backgroundColor"
	KeyUnderline       Key = "underline"

	// KeyAction 绑定点击动作，值必须是 Action；动作单独存放，不与展示属性混在一起。
	KeyAction Key = "action"
)

// Font 描述字体：Family 为字体族名称，Size 以 pt 为单位，Style 如 "bold"、"italic"。
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Style  string  `json:"style,omitempty"`
}

// Color 采用 0-255 的 RGBA 分量。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// Hex formats c as #rrggbb, ignoring alpha.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// UnderlineStyle 对应下划线样式。
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
)

// Run 是所有属性与动作绑定都保持不变的最大连续区间。
type Run struct {
	Range  Range       `json:"range"`
	Attrs  map[Key]any `json:"-"`
	Action Action      `json:"-"`
}

// Font returns the run's font attribute, if any.
func (r Run) Font() (Font, bool) {
	f, ok := r.Attrs[KeyFont].(Font)
	return f, ok
}

// ForegroundColor returns the run's text color, if any.
func (r Run) ForegroundColor() (Color, bool) {
	c, ok := r.Attrs[KeyForegroundColor].(Color)
	return c, ok
}

// BackgroundColor returns the run's background color, if any.
func (r Run) BackgroundColor() (Color, bool) {
	c, ok := r.Attrs[KeyBackgroundColor].(Color)
	return c, ok
}

// Underline returns the run's underline style.
func (r Run) Underline() UnderlineStyle {
	u, _ := r.Attrs[KeyUnderline].(UnderlineStyle)
	return u
}
