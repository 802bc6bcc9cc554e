package styled

// Buffer 持有当前显示的文本快照。所有修改都以“复制后替换”的方式进行，
// 已经交出去的快照不会被改动；每次修改都会递增 Generation。
type Buffer struct {
	text       *Text
	generation uint64
}

// SetContent 整体替换内容；nil 或空文本会清空缓冲区。
func (b *Buffer) SetContent(t *Text) {
	if t.Len() == 0 {
		t = nil
	}
	b.text = t
	b.generation++
}

// ApplyUniformAttribute 在整个内容范围上覆盖 key=value，保留其他属性与动作绑定。
// 缓冲区为空或 key 为 KeyAction 时不做任何事，返回 false；动作只能随内容一起设置。
func (b *Buffer) ApplyUniformAttribute(key Key, value any) bool {
	if b.text.Len() == 0 || key == KeyAction {
		return false
	}
	b.text = b.text.WithAttribute(key, value)
	b.generation++
	return true
}

// ActionAt looks up the action bound at i in the current snapshot.
func (b *Buffer) ActionAt(i int) (Action, Range, bool) { return b.text.ActionAt(i) }

// Snapshot returns the current content (nil when empty).
func (b *Buffer) Snapshot() *Text { return b.text }

// Len returns the current number of characters.
func (b *Buffer) Len() int { return b.text.Len() }

// Generation changes whenever the content is replaced.
func (b *Buffer) Generation() uint64 { return b.generation }
