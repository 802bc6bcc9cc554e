// Package fonts 提供随程序一起分发的 Go 字体族，按名称读取 TTF 数据。
package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是找不到指定字体时使用的字体名。
const Default = "Go-Regular"

var builtin = map[string][]byte{
	"Go-Regular":    goregular.TTF,
	"Go-Bold":       gobold.TTF,
	"Go-Italic":     goitalic.TTF,
	"Go-BoldItalic": gobolditalic.TTF,
	"Go-Medium":     gomedium.TTF,
	"Go-Mono":       gomono.TTF,
	"Go-MonoBold":   gomonobold.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:Go-Regular" 或直接 "Go-Regular"，不区分大小写。
func Load(name string) ([]byte, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(name, "embed:"))
	if data, ok := builtin[clean]; ok {
		return data, nil
	}
	for k, data := range builtin {
		if strings.EqualFold(k, clean) {
			return data, nil
		}
	}
	return nil, fmt.Errorf("读取内置字体 %s 失败: 未知字体", clean)
}

// Names lists the built-in font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for k := range builtin {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
