package layout

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/ByLCY/actionlabel/styled"
)

// Segment 把文本按样式区间与字素簇边界切分，返回尚未测量（宽高为 0）的簇。
// 排版后端在此基础上填充度量。
func Segment(text *styled.Text) []Cluster {
	runs := text.Runs()
	if len(runs) == 0 {
		return nil
	}
	clusters := make([]Cluster, 0, text.Len())
	for _, run := range runs {
		pos := run.Range.Start
		g := uniseg.NewGraphemes(text.Substring(run.Range))
		for g.Next() {
			runes := g.Runes()
			s := g.Str()
			c := Cluster{Start: pos, End: pos + len(runes), Text: s}
			c.Newline = isNewline(s)
			c.Space = !c.Newline && unicode.IsSpace(runes[0])
			clusters = append(clusters, c)
			pos = c.End
		}
	}
	return clusters
}

func isNewline(s string) bool {
	switch s {
	case "\n", "\r\n", "\r", "\u2028", "\u2029":
		return true
	default:
		return false
	}
}
