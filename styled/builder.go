package styled

// Builder 用于构造 Text。Text() 返回独立副本，之后对 Builder 的修改不会影响已交出的快照。
type Builder struct {
	text *Text
}

// NewBuilder starts a Builder with unstyled content s.
func NewBuilder(s string) *Builder { return &Builder{text: Plain(s)} }

// Len returns the current number of characters.
func (b *Builder) Len() int { return b.text.Len() }

// Append 追加一段文本，并把 attrs 应用到新追加的区间（attrs 中的 KeyAction 会进入动作表）。
func (b *Builder) Append(s string, attrs map[Key]any) *Builder {
	start := len(b.text.runes)
	b.text.runes = append(b.text.runes, []rune(s)...)
	r := Range{Start: start, End: len(b.text.runes)}
	for key, value := range attrs {
		b.text.addAttribute(key, value, r)
	}
	return b
}

// AddAttribute 在 r 上覆盖 key=value。r 会被裁剪到内容范围内，空区间忽略。
// key 为 KeyAction 时 value 必须是 Action，否则忽略。
func (b *Builder) AddAttribute(key Key, value any, r Range) *Builder {
	b.text.addAttribute(key, value, r)
	return b
}

// AddAttributes applies every pair in attrs over r.
func (b *Builder) AddAttributes(attrs map[Key]any, r Range) *Builder {
	for key, value := range attrs {
		b.text.addAttribute(key, value, r)
	}
	return b
}

// AddAction binds a over r, replacing earlier bindings on the same characters.
func (b *Builder) AddAction(r Range, a Action) *Builder {
	b.text.addAttribute(KeyAction, a, r)
	return b
}

// Text returns a snapshot of the content built so far.
func (b *Builder) Text() *Text { return b.text.clone() }
