package layout

import "github.com/ByLCY/actionlabel/styled"

// BuildOptions 配置排版阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Typesetter Typesetter
}

// Typesetter 负责字形测量：把文本切分为字素簇并给出每个簇的宽高。
// 簇必须按顺序连续覆盖 [0, text.Len())，且不跨越样式区间。
type Typesetter interface {
	Shape(text *styled.Text) ([]Cluster, error)
}

// LineBreakMode 折行策略。
type LineBreakMode int

const (
	// LineBreakWord 优先在空白处折行，单词超过行宽时在词内拆分（默认）。
	LineBreakWord LineBreakMode = iota
	// LineBreakChar 忽略空白，纯按宽度逐簇折行。
	LineBreakChar
	// LineBreakClip 只按显式换行划分，不基于宽度折行。
	LineBreakClip
)

// ParseLineBreak accepts word/anywhere, char/break-word and clip/nowrap.
func ParseLineBreak(s string) (LineBreakMode, bool) {
	switch s {
	case "", "word", "anywhere", "normal":
		return LineBreakWord, true
	case "char", "break-word":
		return LineBreakChar, true
	case "clip", "nowrap":
		return LineBreakClip, true
	default:
		return LineBreakWord, false
	}
}

func (m LineBreakMode) String() string {
	switch m {
	case LineBreakChar:
		return "char"
	case LineBreakClip:
		return "clip"
	default:
		return "word"
	}
}

// Container 描述排版约束。Width <= 0 表示不限宽；Height <= 0 或 Unbounded 表示不限高；
// MaxLines 为 0 表示不限行数。
type Container struct {
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	LineBreak LineBreakMode `json:"lineBreak"`
	MaxLines  int           `json:"maxLines"`
}

func (c Container) widthLimit() float64 {
	if c.Width <= 0 {
		return Unbounded
	}
	return c.Width
}

func (c Container) heightLimit() float64 {
	if c.Height <= 0 {
		return Unbounded
	}
	return c.Height
}
