package styled

import (
	"slices"
	"sort"
)

type span[T any] struct {
	start, end int
	value      T
}

// spanList 按起点排序、互不重叠的区间列表，查找使用二分。
type spanList[T any] struct {
	spans []span[T]
}

// overlay 以 value 覆盖 r：与 r 重叠的旧区间被裁剪，后写入者生效。
func (l *spanList[T]) overlay(r Range, value T) {
	out := make([]span[T], 0, len(l.spans)+2)
	for _, s := range l.spans {
		if s.end <= r.Start || s.start >= r.End {
			out = append(out, s)
			continue
		}
		if s.start < r.Start {
			out = append(out, span[T]{start: s.start, end: r.Start, value: s.value})
		}
		if s.end > r.End {
			out = append(out, span[T]{start: r.End, end: s.end, value: s.value})
		}
	}
	out = append(out, span[T]{start: r.Start, end: r.End, value: value})
	slices.SortFunc(out, func(a, b span[T]) int { return a.start - b.start })
	l.spans = out
}

// find returns the index of the span containing i, or -1.
func (l *spanList[T]) find(i int) int {
	idx := sort.Search(len(l.spans), func(k int) bool { return l.spans[k].end > i })
	if idx < len(l.spans) && l.spans[idx].start <= i {
		return idx
	}
	return -1
}

func (l *spanList[T]) at(i int) (span[T], bool) {
	idx := l.find(i)
	if idx < 0 {
		return span[T]{}, false
	}
	return l.spans[idx], true
}

// extent 从第 idx 个区间出发，合并相邻且 same 判定相同的区间，返回最大连续范围。
func (l *spanList[T]) extent(idx int, same func(a, b T) bool) Range {
	s := l.spans[idx]
	r := Range{Start: s.start, End: s.end}
	for k := idx - 1; k >= 0; k-- {
		prev := l.spans[k]
		if prev.end != r.Start || !same(prev.value, s.value) {
			break
		}
		r.Start = prev.start
	}
	for k := idx + 1; k < len(l.spans); k++ {
		next := l.spans[k]
		if next.start != r.End || !same(next.value, s.value) {
			break
		}
		r.End = next.end
	}
	return r
}

func (l *spanList[T]) clone() *spanList[T] {
	return &spanList[T]{spans: slices.Clone(l.spans)}
}

// boundaries appends every span edge to dst.
func (l *spanList[T]) boundaries(dst []int) []int {
	for _, s := range l.spans {
		dst = append(dst, s.start, s.end)
	}
	return dst
}
