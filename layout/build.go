package layout

import (
	"fmt"

	"github.com/ByLCY/actionlabel/styled"
)

const epsilon = 1e-9

// Build 根据文本与容器约束生成字形几何。每次调用都是独立的请求，不保留任何排版状态。
// 空文本直接返回空几何，不会调用排版后端。
func Build(text *styled.Text, c Container, opts BuildOptions) (*Geometry, error) {
	if text.Len() == 0 {
		return &Geometry{Container: c}, nil
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	clusters, err := opts.Typesetter.Shape(text)
	if err != nil {
		return nil, fmt.Errorf("字形测量失败: %w", err)
	}
	if err := checkClusters(clusters, text.Len()); err != nil {
		return nil, err
	}

	rows := breakLines(clusters, c.widthLimit(), c.LineBreak)
	g := &Geometry{Container: c, text: text}
	g.Lines = placeLines(rows, c)
	g.Used = usedRect(g.Lines, c)
	return g, nil
}

func checkClusters(clusters []Cluster, n int) error {
	next := 0
	for i, c := range clusters {
		if c.Start != next || c.End <= c.Start {
			return fmt.Errorf("排版后端返回的第 %d 个字素簇 [%d,%d) 不连续", i, c.Start, c.End)
		}
		next = c.End
	}
	if next != n {
		return fmt.Errorf("排版后端只覆盖了 %d/%d 个字符", next, n)
	}
	return nil
}

// row 是折行阶段的中间结果；空行沿用前一个换行符的度量。
type row struct {
	clusters []Cluster
	start    int
	height   float64
	ascent   float64
}

func (r row) end() int {
	if len(r.clusters) == 0 {
		return r.start
	}
	return r.clusters[len(r.clusters)-1].End
}

func (r row) metrics() (height, ascent float64) {
	if len(r.clusters) == 0 {
		return r.height, r.ascent
	}
	for _, c := range r.clusters {
		if c.Height > height {
			height = c.Height
		}
		if c.Ascent > ascent {
			ascent = c.Ascent
		}
	}
	return height, ascent
}

// breakLines 贪心折行。空白永远不触发折行，而是悬挂在行尾；文本以换行结尾时会多出一个空行。
func breakLines(clusters []Cluster, limit float64, mode LineBreakMode) []row {
	var rows []row
	cur := row{}
	x := 0.0

	emit := func(next int) {
		rows = append(rows, cur)
		cur = row{start: next}
		x = 0
	}
	place := func(c Cluster) {
		cur.clusters = append(cur.clusters, c)
		x += c.Width
	}
	overflows := func(w float64) bool {
		return len(cur.clusters) > 0 && x+w > limit+epsilon
	}

	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		switch {
		case c.Newline:
			place(c)
			emit(c.End)
			cur.height, cur.ascent = c.Height, c.Ascent
			continue
		case c.Space || mode == LineBreakClip:
			place(c)
			continue
		case mode == LineBreakChar:
			if overflows(c.Width) {
				emit(c.Start)
			}
			place(c)
			continue
		}

		// LineBreakWord：先尝试整词放入，放不下再换行，仍超宽时在词内逐簇拆分。
		j := i
		width := 0.0
		for j < len(clusters) && !clusters[j].Space && !clusters[j].Newline {
			width += clusters[j].Width
			j++
		}
		if overflows(width) {
			emit(c.Start)
		}
		for _, wc := range clusters[i:j] {
			if width > limit && overflows(wc.Width) {
				emit(wc.Start)
			}
			place(wc)
		}
		i = j - 1
	}
	rows = append(rows, cur)
	return rows
}

func placeLines(rows []row, c Container) []Line {
	lines := make([]Line, 0, len(rows))
	maxH := c.heightLimit()
	y := 0.0
	for i, r := range rows {
		if c.MaxLines > 0 && i >= c.MaxLines {
			break
		}
		h, ascent := r.metrics()
		if i > 0 && y+h > maxH+epsilon {
			break
		}
		line := Line{
			Range:    styled.Range{Start: r.start, End: r.end()},
			Baseline: y + ascent,
			Glyphs:   make([]Glyph, 0, len(r.clusters)),
		}
		x, used := 0.0, 0.0
		for _, cl := range r.clusters {
			line.Glyphs = append(line.Glyphs, Glyph{
				Range: styled.Range{Start: cl.Start, End: cl.End},
				Rect:  Rect{X: x, Y: y, W: cl.Width, H: h},
				Text:  cl.Text,
			})
			x += cl.Width
			if !cl.Space && !cl.Newline {
				used = x
			}
		}
		line.Rect = Rect{X: 0, Y: y, W: used, H: h}
		lines = append(lines, line)
		y += h
	}
	return lines
}

func usedRect(lines []Line, c Container) Rect {
	var used Rect
	for _, ln := range lines {
		if ln.Rect.W > used.W {
			used.W = ln.Rect.W
		}
		used.H = ln.Rect.Y + ln.Rect.H
	}
	if limit := c.widthLimit(); used.W > limit {
		used.W = limit
	}
	return used
}
