package layout

import (
	"strconv"
	"strings"
)

// 标签内部统一使用 pt；PDF 画布使用 mm，字体引擎的度量也以 mm 返回。

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Unit represents the unit a length was written in.
type Unit int

const (
	UnitNone Unit = iota
	UnitPT
	UnitPX // 与 pt 等价，按界面坐标理解
	UnitMM
)

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// PT converts the length to points; unit-less values are taken as points.
func (l Length) PT() float64 {
	if l.Unit == UnitMM {
		return l.Value * MmToPt
	}
	return l.Value
}

// ParseLength 解析 "18pt"、"24px"、"5mm" 或纯数字，保留原始单位；无法解析时返回 ok=false。
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitNone
	for _, suf := range []struct {
		s string
		u Unit
	}{{"pt", UnitPT}, {"px", UnitPX}, {"mm", UnitMM}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			v = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}
