package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/actionlabel/binding"
	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/styled"
)

const defaultFontSize = 17.0 // pt

var defaultColor = styled.RGB(30, 30, 30)

// Label 是编译后的标签配置：样式文本、绘制区域与布局参数，坐标单位为 pt。
type Label struct {
	Name      string
	Text      *styled.Text
	Frame     layout.Rect
	Font      styled.Font
	Color     styled.Color
	LineBreak layout.LineBreakMode
	MaxLines  int
	MaxWidth  float64
}

// Compile 编译文档中的全部标签；文本中的 ${path} 从 data 插值，action=<name> 在 reg 中查找。
func Compile(doc *Document, data any, reg *binding.Registry) ([]*Label, error) {
	if doc == nil || len(doc.Labels) == 0 {
		return nil, fmt.Errorf("文档中没有 label")
	}
	labels := make([]*Label, 0, len(doc.Labels))
	seen := map[string]bool{}
	for _, block := range doc.Labels {
		if seen[block.Name] {
			return nil, fmt.Errorf("label %s 重复定义（第 %d 行）", block.Name, block.Pos.Line)
		}
		seen[block.Name] = true
		l, err := CompileLabel(block, data, reg)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// CompileLabel compiles a single label block.
func CompileLabel(block *LabelBlock, data any, reg *binding.Registry) (*Label, error) {
	l := &Label{
		Name:  block.Name,
		Font:  styled.Font{Size: defaultFontSize},
		Color: defaultColor,
	}
	// 先收集属性，保证默认字体与颜色与语句顺序无关
	var spans []*Span
	for _, st := range block.Statements {
		switch {
		case st.Property != nil:
			if err := l.applyProperty(st.Property, data); err != nil {
				return nil, fmt.Errorf("label %s: %w", block.Name, err)
			}
		case st.Span != nil:
			spans = append(spans, st.Span)
		}
	}

	b := styled.NewBuilder("")
	for _, sp := range spans {
		attrs, err := l.spanAttributes(sp, reg)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", block.Name, err)
		}
		b.Append(binding.Interpolate(string(sp.Value), data), attrs)
	}
	l.Text = b.Text()
	return l, nil
}

func (l *Label) applyProperty(p *Property, data any) error {
	switch p.Key {
	case "frame":
		if len(p.Values) != 4 {
			return propErr(p, "需要 4 个值（x y width height）")
		}
		var v [4]float64
		for i, val := range p.Values {
			n, err := parseLength(val)
			if err != nil {
				return propErr(p, err.Error())
			}
			v[i] = n
		}
		l.Frame = layout.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	case "font":
		for _, val := range p.Values {
			switch {
			case val.Number != nil:
				n, err := parseLength(val)
				if err != nil {
					return propErr(p, err.Error())
				}
				l.Font.Size = n
			case l.Font.Family == "" && val.String != nil:
				l.Font.Family = binding.Interpolate(val.Raw(), data)
			default:
				l.Font.Style = strings.TrimSpace(l.Font.Style + " " + val.Raw())
			}
		}
	case "color":
		c, err := parseColor(p.Values[0].Raw())
		if err != nil {
			return propErr(p, err.Error())
		}
		l.Color = c
	case "line-break":
		mode, ok := layout.ParseLineBreak(p.Values[0].Raw())
		if !ok {
			return propErr(p, fmt.Sprintf("不支持的换行方式 %s", p.Values[0].Raw()))
		}
		l.LineBreak = mode
	case "max-lines":
		n, err := strconv.Atoi(p.Values[0].Raw())
		if err != nil || n < 0 {
			return propErr(p, "必须是非负整数")
		}
		l.MaxLines = n
	case "max-width":
		n, err := parseLength(p.Values[0])
		if err != nil {
			return propErr(p, err.Error())
		}
		l.MaxWidth = n
	default:
		return propErr(p, "未知属性")
	}
	return nil
}

// spanAttributes 合并标签默认样式与片段自身的选项；每个片段都带上完整的字体与颜色。
func (l *Label) spanAttributes(sp *Span, reg *binding.Registry) (map[styled.Key]any, error) {
	font := l.Font
	attrs := map[styled.Key]any{styled.KeyForegroundColor: l.Color}
	var action string
	for _, opt := range sp.Options {
		raw := opt.Value.Raw()
		switch opt.Key {
		case "action":
			action = raw
		case "color":
			c, err := parseColor(raw)
			if err != nil {
				return nil, spanErr(sp, err.Error())
			}
			attrs[styled.KeyForegroundColor] = c
		case "background":
			c, err := parseColor(raw)
			if err != nil {
				return nil, spanErr(sp, err.Error())
			}
			attrs[styled.KeyBackgroundColor] = c
		case "underline":
			u, ok := parseUnderline(raw)
			if !ok {
				return nil, spanErr(sp, fmt.Sprintf("不支持的下划线 %s", raw))
			}
			attrs[styled.KeyUnderline] = u
		case "font":
			font.Family = raw
		case "size":
			n, err := parseLength(opt.Value)
			if err != nil {
				return nil, spanErr(sp, err.Error())
			}
			font.Size = n
		case "style":
			font.Style = raw
		default:
			return nil, spanErr(sp, fmt.Sprintf("未知选项 %s", opt.Key))
		}
	}
	attrs[styled.KeyFont] = font

	switch {
	case action != "":
		a, ok := reg.Lookup(action)
		if !ok {
			return nil, spanErr(sp, fmt.Sprintf("未注册的动作 %s", action))
		}
		attrs[styled.KeyAction] = a
	case sp.Kind == "link":
		return nil, spanErr(sp, "link 缺少 action")
	}
	return attrs, nil
}

func propErr(p *Property, msg string) error {
	return fmt.Errorf("属性 %s（第 %d 行）%s", p.Key, p.Pos.Line, msg)
}

func spanErr(sp *Span, msg string) error {
	return fmt.Errorf("%s %q（第 %d 行）%s", sp.Kind, string(sp.Value), sp.Pos.Line, msg)
}

func parseLength(v *Value) (float64, error) {
	l, ok := layout.ParseLength(v.Raw())
	if !ok {
		return 0, fmt.Errorf("长度 %s 无法解析", v.Raw())
	}
	return l.PT(), nil
}

func parseUnderline(v string) (styled.UnderlineStyle, bool) {
	switch strings.ToLower(v) {
	case "none", "false":
		return styled.UnderlineNone, true
	case "single", "true":
		return styled.UnderlineSingle, true
	case "double":
		return styled.UnderlineDouble, true
	default:
		return styled.UnderlineNone, false
	}
}

func parseColor(value string) (styled.Color, error) {
	value = strings.TrimPrefix(value, "#")
	hex := func(s string) (uint8, error) {
		n, err := strconv.ParseUint(s, 16, 8)
		return uint8(n), err
	}
	var parts []string
	switch len(value) {
	case 3:
		for i := 0; i < 3; i++ {
			parts = append(parts, strings.Repeat(value[i:i+1], 2))
		}
	case 6, 8:
		for i := 0; i < len(value); i += 2 {
			parts = append(parts, value[i:i+2])
		}
	default:
		return styled.Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	c := styled.Color{A: 255}
	for i, dst := range []*uint8{&c.R, &c.G, &c.B, &c.A} {
		if i >= len(parts) {
			break
		}
		n, err := hex(parts[i])
		if err != nil {
			return styled.Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
		}
		*dst = n
	}
	return c, nil
}
