package styled

// Range 是以字符（rune）偏移表示的半开区间 [Start, End)。
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by r.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r covers no characters.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether i lies inside the half-open range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Intersects reports whether r and o share at least one character.
func (r Range) Intersects(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Clamp 将区间裁剪到 [0, n)。
func (r Range) Clamp(n int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > n {
		r.End = n
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}
