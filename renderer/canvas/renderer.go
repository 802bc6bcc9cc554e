package canvasrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/renderer"
	"github.com/ByLCY/actionlabel/styled"
)

const (
	defaultFontSize = 17.0 // pt
	underlineWidth  = 0.2  // mm
)

var defaultColor = styled.RGB(30, 30, 30)

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Renderer measures styled text with github.com/tdewolff/canvas fonts and paints frames into PDF.
// 对外坐标单位均为 pt；与 canvas 交互时在边界做 pt↔mm 换算。
type Renderer struct {
	*fontCache
	defaultFont styled.Font
	title       string
}

// Options configures the canvas renderer.
type Options struct {
	// Fonts 按字体族名注入字体数据，优先于内置的 Go 字体。
	Fonts map[string]Resource
	// DefaultFont 用于没有字体属性的文本；Size 为 0 时取 17pt。
	DefaultFont styled.Font
	// Title 写入 PDF 元信息。
	Title string
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer that uses the built-in Go fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected fonts.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontCache:   newFontCache(opts.Fonts),
		defaultFont: opts.DefaultFont,
		title:       opts.Title,
	}
	if r.defaultFont.Size <= 0 {
		r.defaultFont.Size = defaultFontSize
	}
	return r
}

// Shape 实现 layout.Typesetter：逐个字素簇按所在分段的字体测量宽度，行高与上升部取字体度量。
func (r *Renderer) Shape(text *styled.Text) ([]layout.Cluster, error) {
	clusters := layout.Segment(text)
	if len(clusters) == 0 {
		return clusters, nil
	}
	runs := text.Runs()
	ri := 0
	var face *canvas.FontFace
	for i := range clusters {
		c := &clusters[i]
		if face == nil || c.Start >= runs[ri].Range.End {
			for c.Start >= runs[ri].Range.End {
				ri++
			}
			var err error
			face, err = r.face(r.fontOf(runs[ri]), defaultColor)
			if err != nil {
				return nil, fmt.Errorf("测量第 %d 个字符失败: %w", c.Start, err)
			}
		}
		m := face.Metrics()
		c.Height = toPt(m.LineHeight)
		c.Ascent = toPt(m.Ascent)
		if !c.Newline {
			c.Width = toPt(face.TextWidth(c.Text))
		}
	}
	return clusters, nil
}

// Render 把 frame 绘制为单页 PDF，页面大小即绘制区域大小。
func (r *Renderer) Render(frame layout.Frame) ([]byte, error) {
	if frame.Rect.W <= 0 || frame.Rect.H <= 0 {
		return nil, errors.New("绘制区域为空")
	}
	width, height := toMm(frame.Rect.W), toMm(frame.Rect.H)

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	writer.SetInfo(r.title, "", "", "", "actionlabel")

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	if err := r.drawFrame(ctx, frame); err != nil {
		return nil, err
	}
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// segment 是一行中属性相同的一段连续字形。
type segment struct {
	run    styled.Run
	text   string
	x, w   float64
	top, h float64
	base   float64
}

func (r *Renderer) drawFrame(ctx *canvas.Context, frame layout.Frame) error {
	g := frame.Geometry
	if g.Empty() {
		return nil
	}
	runs := g.Text().Runs()
	for _, ln := range g.Lines {
		segs := lineSegments(ln, runs)
		// 背景先画，避免盖住文字
		for _, s := range segs {
			if bg, ok := s.run.BackgroundColor(); ok {
				ctx.SetFillColor(colorFromStyled(bg))
				ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
				ctx.DrawPath(toMm(s.x), toMm(frame.Offset+s.top), canvas.Rectangle(toMm(s.w), toMm(s.h)))
			}
		}
		for _, s := range segs {
			if err := r.drawSegment(ctx, s, frame.Offset); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) drawSegment(ctx *canvas.Context, s segment, offset float64) error {
	col, ok := s.run.ForegroundColor()
	if !ok {
		col = defaultColor
	}
	face, err := r.face(r.fontOf(s.run), col)
	if err != nil {
		return err
	}
	baseline := toMm(offset + s.base)
	if strings.TrimSpace(s.text) != "" {
		ctx.DrawText(toMm(s.x), baseline, canvas.NewTextLine(face, s.text, canvas.Left))
	}

	var count int
	switch s.run.Underline() {
	case styled.UnderlineSingle:
		count = 1
	case styled.UnderlineDouble:
		count = 2
	}
	ctx.SetStrokeColor(colorFromStyled(col))
	ctx.SetStrokeWidth(underlineWidth)
	for i := 0; i < count; i++ {
		y := baseline + face.Metrics().Descent/2 + float64(i)*underlineWidth*2
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(s.w), 0)
		ctx.DrawPath(toMm(s.x), y, p)
	}
	return nil
}

// lineSegments 把一行的字形按属性分段切开；换行符不参与绘制。
func lineSegments(ln layout.Line, runs []styled.Run) []segment {
	var out []segment
	for _, run := range runs {
		if !run.Range.Intersects(ln.Range) {
			continue
		}
		var (
			first, last *layout.Glyph
			sb          strings.Builder
		)
		for i := range ln.Glyphs {
			gl := &ln.Glyphs[i]
			if gl.Range.Start < run.Range.Start || gl.Range.Start >= run.Range.End || isLineEnd(gl.Text) {
				continue
			}
			if first == nil {
				first = gl
			}
			last = gl
			sb.WriteString(gl.Text)
		}
		if first == nil {
			continue
		}
		out = append(out, segment{
			run:  run,
			text: sb.String(),
			x:    first.Rect.X,
			w:    last.Rect.X + last.Rect.W - first.Rect.X,
			top:  ln.Rect.Y,
			h:    ln.Rect.H,
			base: ln.Baseline,
		})
	}
	return out
}

func isLineEnd(s string) bool { return strings.ContainsAny(s, "\r\n\u2028\u2029") }

func (r *Renderer) fontOf(run styled.Run) styled.Font {
	f, ok := run.Font()
	if !ok {
		return r.defaultFont
	}
	if f.Family == "" {
		f.Family = r.defaultFont.Family
	}
	if f.Size <= 0 {
		f.Size = r.defaultFont.Size
	}
	return f
}

func (r *Renderer) face(font styled.Font, col styled.Color) (*canvas.FontFace, error) {
	family, style, err := r.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return family.Face(font.Size, colorFromStyled(col), style, canvas.FontNormal), nil
}

func colorFromStyled(c styled.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
