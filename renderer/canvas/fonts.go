package canvasrenderer

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/actionlabel/fonts"
	"github.com/ByLCY/actionlabel/styled"
)

// fontCache 管理字体族的加载与缓存；同一族名与字重只解析一次。
type fontCache struct {
	fontBlobs map[string][]byte // by family name

	fontMu         sync.Mutex
	fontFamilies   map[string]*fontFamilyEntry
	fallbackFamily *canvas.FontFamily
}

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

func newFontCache(res map[string]Resource) *fontCache {
	f := &fontCache{
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*fontFamilyEntry{},
	}
	for name, r := range res {
		if name == "" {
			continue
		}
		if len(r.Bytes) > 0 {
			f.fontBlobs[name] = r.Bytes
			continue
		}
		if r.Path != "" {
			data, _ := os.ReadFile(r.Path) // 读取失败时按缺失处理，使用时回退到默认字体
			if len(data) > 0 {
				f.fontBlobs[name] = data
			}
		}
	}
	return f
}

func (f *fontCache) ensureFontFamily(font styled.Font) (*canvas.FontFamily, canvas.FontStyle, error) {
	key := fontCacheKey(font)
	f.fontMu.Lock()
	defer f.fontMu.Unlock()

	if entry, ok := f.fontFamilies[key]; ok {
		return entry.family, entry.style, nil
	}

	style := parseFontStyle(font.Style)
	familyName := font.Family
	if familyName == "" {
		familyName = fonts.Default
	}
	family := canvas.NewFontFamily(familyName)

	if err := f.loadFontIntoFamily(family, familyName, style); err != nil {
		fallback, fbStyle, fbErr := f.fallback()
		if fbErr != nil {
			return nil, canvas.FontRegular, err
		}
		f.fontFamilies[key] = &fontFamilyEntry{family: fallback, style: fbStyle}
		return fallback, fbStyle, nil
	}

	entry := &fontFamilyEntry{family: family, style: style}
	f.fontFamilies[key] = entry
	return family, style, nil
}

func (f *fontCache) loadFontIntoFamily(family *canvas.FontFamily, name string, style canvas.FontStyle) error {
	data, err := f.loadFontBytes(name, style)
	if err != nil {
		return err
	}
	return family.LoadFont(data, 0, style)
}

// loadFontBytes 优先使用注入的字体，否则在内置 Go 字体中查找；
// 内置字体按字重选择对应文件（如 Go + bold → Go-Bold）。
func (f *fontCache) loadFontBytes(name string, style canvas.FontStyle) ([]byte, error) {
	if blob, ok := f.fontBlobs[name]; ok {
		return blob, nil
	}
	if variant := builtinVariant(name, style); variant != "" {
		if data, err := fonts.Load(variant); err == nil {
			return data, nil
		}
	}
	return fonts.Load(name)
}

func builtinVariant(name string, style canvas.FontStyle) string {
	base := strings.TrimSuffix(name, "-Regular")
	italic := style&canvas.FontItalic != 0
	weight := style &^ canvas.FontItalic
	bold := weight == canvas.FontBold || weight == canvas.FontExtraBold || weight == canvas.FontBlack
	switch {
	case bold && italic:
		return base + "-BoldItalic"
	case bold:
		return base + "-Bold"
	case italic:
		return base + "-Italic"
	case weight == canvas.FontMedium:
		return base + "-Medium"
	}
	return ""
}

func (f *fontCache) fallback() (*canvas.FontFamily, canvas.FontStyle, error) {
	if f.fallbackFamily != nil {
		return f.fallbackFamily, canvas.FontRegular, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	family := canvas.NewFontFamily("actionlabel-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, canvas.FontRegular, err
	}
	f.fallbackFamily = family
	return family, canvas.FontRegular, nil
}

func parseFontStyle(style string) canvas.FontStyle {
	if style == "" {
		return canvas.FontRegular
	}
	s := strings.ToLower(style)
	result := canvas.FontRegular
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

func fontCacheKey(font styled.Font) string {
	return fmt.Sprintf("%s|%s", font.Family, strings.ToLower(font.Style))
}
