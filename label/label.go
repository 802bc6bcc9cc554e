// Package label 实现可点击的样式文本标签：维护文本快照、按需排版并缓存几何、
// 计算居中偏移与固有尺寸，并把指针抬起事件解析为一次动作调用。
//
// Label 不是并发安全的，所有方法都应在同一个（界面）线程上串行调用。
package label

import (
	"log/slog"

	"github.com/ByLCY/actionlabel/hittest"
	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/styled"
)

// Label 是动作标签的控制器。
type Label struct {
	ts     layout.Typesetter
	buf    styled.Buffer
	logger *slog.Logger

	lineBreak         layout.LineBreakMode
	maxLines          int
	preferredMaxWidth float64

	drawCache cached
	sizeCache cached

	// 绘制回调执行期间的修改会排队，等本次绘制结束后再应用。
	rendering int
	pending   []func()
}

type cacheKey struct {
	generation uint64
	container  layout.Container
}

type cached struct {
	valid bool
	key   cacheKey
	geom  *layout.Geometry
}

// New creates an empty label that lays out text with ts.
func New(ts layout.Typesetter, opts ...Option) *Label {
	l := &Label{ts: ts, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Text returns the current content snapshot (nil when empty).
func (l *Label) Text() *styled.Text { return l.buf.Snapshot() }

// SetText 整体替换内容，之前绑定的动作全部失效。
func (l *Label) SetText(t *styled.Text) {
	l.mutate(func() { l.buf.SetContent(t) })
}

// SetFont 把字体覆盖到当前全部内容上，保留动作与其他属性。
func (l *Label) SetFont(f styled.Font) { l.SetAttribute(styled.KeyFont, f) }

// SetTextColor 把文字颜色覆盖到当前全部内容上。
func (l *Label) SetTextColor(c styled.Color) { l.SetAttribute(styled.KeyForegroundColor, c) }

// SetAttribute 以整段覆盖的方式应用一个展示属性；内容为空时不做任何事。
// styled.KeyAction 会被忽略，已有的动作绑定保持不变。
func (l *Label) SetAttribute(key styled.Key, value any) {
	l.mutate(func() {
		if !l.buf.ApplyUniformAttribute(key, value) {
			l.logger.Debug("忽略属性", "key", key, "length", l.buf.Len())
		}
	})
}

// SetLineBreak changes the line break mode.
func (l *Label) SetLineBreak(mode layout.LineBreakMode) {
	l.mutate(func() { l.lineBreak = mode })
}

// SetMaxLines changes the maximum number of lines; 0 means unlimited.
func (l *Label) SetMaxLines(n int) {
	l.mutate(func() { l.maxLines = n })
}

// SetPreferredMaxLayoutWidth changes the width used by IntrinsicContentSize.
func (l *Label) SetPreferredMaxLayoutWidth(w float64) {
	l.mutate(func() { l.preferredMaxWidth = w })
}

// Draw 返回在 rect 内绘制所需的几何与偏移。几何按容器尺寸缓存，内容不变时重复调用结果相同。
func (l *Label) Draw(rect layout.Rect) layout.Frame {
	g := l.geometry(l.container(rect), &l.drawCache)
	return layout.NewFrame(rect, g)
}

// Render 绘制并把结果交给 paint。paint 内对标签的修改会推迟到 paint 返回之后才生效，
// 保证本次绘制看到的几何始终一致。
func (l *Label) Render(rect layout.Rect, paint func(layout.Frame) error) error {
	l.rendering++
	defer func() {
		l.rendering--
		if l.rendering == 0 {
			l.flush()
		}
	}()
	return paint(l.Draw(rect))
}

// PointerUp 处理一次指针抬起：总是按当前 rect 重新排版（不复用尺寸查询的缓存），
// 命中时调用且只调用一个动作。返回是否调用了动作。
func (l *Label) PointerUp(p layout.Point, rect layout.Rect) bool {
	if l.buf.Len() == 0 {
		return false
	}
	g := l.build(l.container(rect))
	hit, ok := hittest.Resolve(p, rect, g)
	if !ok {
		l.logger.Debug("未命中动作", "x", p.X, "y", p.Y)
		return false
	}
	l.logger.Debug("命中动作", "index", hit.Index, "start", hit.Range.Start, "end", hit.Range.End, "text", hit.Substring)
	hit.Invoke()
	return true
}

// IntrinsicSize 返回宽度受 maxWidth 约束、高度不限时的固有尺寸；内容为空时为零尺寸。
// maxWidth <= 0 表示不限宽，此时返回单行（或按显式换行）排版的自然宽度，而不是零宽。
func (l *Label) IntrinsicSize(maxWidth float64) layout.Size {
	if l.buf.Len() == 0 {
		return layout.Size{}
	}
	c := layout.SizingContainer(maxWidth, l.lineBreak, l.maxLines)
	return layout.IntrinsicSize(l.geometry(c, &l.sizeCache))
}

// IntrinsicContentSize uses the preferred max layout width.
func (l *Label) IntrinsicContentSize() layout.Size {
	return l.IntrinsicSize(l.preferredMaxWidth)
}

func (l *Label) container(rect layout.Rect) layout.Container {
	return layout.Container{
		Width:     rect.W,
		Height:    rect.H,
		LineBreak: l.lineBreak,
		MaxLines:  l.maxLines,
	}
}

func (l *Label) geometry(c layout.Container, slot *cached) *layout.Geometry {
	key := cacheKey{generation: l.buf.Generation(), container: c}
	if slot.valid && slot.key == key {
		return slot.geom
	}
	g := l.build(c)
	*slot = cached{valid: true, key: key, geom: g}
	return g
}

// build 排版当前快照；排版后端出错时记录日志并退化为空几何。
func (l *Label) build(c layout.Container) *layout.Geometry {
	opts := layout.BuildOptions{Typesetter: l.ts}
	g, err := layout.Build(l.buf.Snapshot(), c, opts)
	if err != nil {
		l.logger.Warn("排版失败", "error", err, "length", l.buf.Len())
		g, _ = layout.Build(nil, c, opts)
	}
	return g
}

func (l *Label) mutate(fn func()) {
	if l.rendering > 0 {
		l.pending = append(l.pending, fn)
		return
	}
	fn()
	l.invalidate()
}

func (l *Label) flush() {
	for len(l.pending) > 0 {
		fn := l.pending[0]
		l.pending = l.pending[1:]
		fn()
	}
	l.pending = nil
	l.invalidate()
}

func (l *Label) invalidate() {
	l.drawCache = cached{}
	l.sizeCache = cached{}
}
