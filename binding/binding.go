// Package binding 负责把外部数据绑定到标签：文本里的 ${path} 占位符插值，
// 以及按名称查找可挂到文本范围上的动作。
package binding

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 若 data 为空或路径不存在，则保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := Lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Lookup 按 "a.b[0].c" 形式的路径在 data 中取值；支持字符串键的 map、切片/数组与导出的结构体字段。
func Lookup(data any, path string) (any, bool) {
	current := reflect.ValueOf(data)
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := parseSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			if current, ok = descendField(current, name); !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			if current, ok = descendIndex(current, idx); !ok {
				return nil, false
			}
		}
	}
	current = indirect(current)
	if !current.IsValid() {
		return nil, false
	}
	return current.Interface(), true
}

// parseSegment 拆出 "items[1][2]" 里的名称与下标。
func parseSegment(segment string) (string, []int, bool) {
	name, rest, _ := strings.Cut(segment, "[")
	if rest == "" {
		return name, nil, true
	}
	rest = "[" + rest
	var indexes []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func descendField(current reflect.Value, key string) (reflect.Value, bool) {
	current = indirect(current)
	switch current.Kind() {
	case reflect.Map:
		if current.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		val := current.MapIndex(reflect.ValueOf(key).Convert(current.Type().Key()))
		return val, val.IsValid()
	case reflect.Struct:
		field, ok := current.Type().FieldByName(key)
		if !ok || !field.IsExported() {
			return reflect.Value{}, false
		}
		return current.FieldByIndex(field.Index), true
	default:
		return reflect.Value{}, false
	}
}

func descendIndex(current reflect.Value, idx int) (reflect.Value, bool) {
	current = indirect(current)
	switch current.Kind() {
	case reflect.Slice, reflect.Array:
		if idx < 0 || idx >= current.Len() {
			return reflect.Value{}, false
		}
		return current.Index(idx), true
	default:
		return reflect.Value{}, false
	}
}
