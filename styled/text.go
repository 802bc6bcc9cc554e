package styled

import (
	"slices"
	"sync/atomic"
)

var bindingSeq atomic.Uint64

func nextBindingID() uint64 { return bindingSeq.Add(1) }

// Text 是不可变的带样式文本快照：字符序列、按键分组的展示属性，以及独立的动作表。
// nil *Text 等价于空文本。
type Text struct {
	runes   []rune
	attrs   map[Key]*spanList[any]
	actions *spanList[binding]
}

func newText(runes []rune) *Text {
	return &Text{
		runes:   runes,
		attrs:   map[Key]*spanList[any]{},
		actions: &spanList[binding]{},
	}
}

// Plain returns an unstyled Text.
func Plain(s string) *Text { return newText([]rune(s)) }

// Len returns the number of characters.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return len(t.runes)
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(t.runes)
}

// Substring returns the characters covered by r, clamped to the content.
func (t *Text) Substring(r Range) string {
	if t == nil {
		return ""
	}
	r = r.Clamp(len(t.runes))
	return string(t.runes[r.Start:r.End])
}

// ActionAt 返回索引 i 处绑定的动作，以及共享同一绑定的最大连续区间。
func (t *Text) ActionAt(i int) (Action, Range, bool) {
	if t == nil || i < 0 || i >= len(t.runes) {
		return nil, Range{}, false
	}
	idx := t.actions.find(i)
	if idx < 0 {
		return nil, Range{}, false
	}
	r := t.actions.extent(idx, func(a, b binding) bool { return a.id == b.id })
	return t.actions.spans[idx].value.action, r, true
}

// AttributeAt 返回展示属性 key 在 i 处的值及其所在区间。KeyAction 请使用 ActionAt。
func (t *Text) AttributeAt(key Key, i int) (any, Range, bool) {
	if t == nil || i < 0 || i >= len(t.runes) {
		return nil, Range{}, false
	}
	l, ok := t.attrs[key]
	if !ok {
		return nil, Range{}, false
	}
	s, ok := l.at(i)
	if !ok {
		return nil, Range{}, false
	}
	return s.value, Range{Start: s.start, End: s.end}, true
}

// HasActions reports whether any range carries an action.
func (t *Text) HasActions() bool {
	return t != nil && len(t.actions.spans) > 0
}

// Runs 将文本切分为属性与动作均不变的区间，按顺序返回；空文本返回 nil。
func (t *Text) Runs() []Run {
	n := t.Len()
	if n == 0 {
		return nil
	}
	cuts := []int{0, n}
	for _, l := range t.attrs {
		cuts = l.boundaries(cuts)
	}
	cuts = t.actions.boundaries(cuts)
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	runs := make([]Run, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		start, end := cuts[i], cuts[i+1]
		if start >= n {
			break
		}
		run := Run{Range: Range{Start: start, End: end}, Attrs: map[Key]any{}}
		for key, l := range t.attrs {
			if s, ok := l.at(start); ok {
				run.Attrs[key] = s.value
			}
		}
		if s, ok := t.actions.at(start); ok {
			run.Action = s.value.action
		}
		runs = append(runs, run)
	}
	return runs
}

// WithAttribute 返回一份副本，把 value 覆盖到整个文本范围，其余属性与动作绑定保持不变。
// 空文本原样返回。
func (t *Text) WithAttribute(key Key, value any) *Text {
	if t.Len() == 0 {
		return t
	}
	out := t.clone()
	out.addAttribute(key, value, Range{Start: 0, End: len(out.runes)})
	return out
}

// Mutable returns a Builder seeded with a copy of t.
func (t *Text) Mutable() *Builder {
	if t == nil {
		return NewBuilder("")
	}
	return &Builder{text: t.clone()}
}

func (t *Text) clone() *Text {
	out := &Text{
		runes:   slices.Clone(t.runes),
		attrs:   make(map[Key]*spanList[any], len(t.attrs)),
		actions: t.actions.clone(),
	}
	for k, l := range t.attrs {
		out.attrs[k] = l.clone()
	}
	return out
}

func (t *Text) addAttribute(key Key, value any, r Range) {
	r = r.Clamp(len(t.runes))
	if r.Empty() {
		return
	}
	if key == KeyAction {
		if a, ok := value.(Action); ok && valid(a) {
			t.actions.overlay(r, binding{id: nextBindingID(), action: a})
		}
		return
	}
	l, ok := t.attrs[key]
	if !ok {
		l = &spanList[any]{}
		t.attrs[key] = l
	}
	l.overlay(r, value)
}
