package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ByLCY/actionlabel/binding"
	"github.com/ByLCY/actionlabel/dsl"
	"github.com/ByLCY/actionlabel/label"
	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/renderer"
	canvasrenderer "github.com/ByLCY/actionlabel/renderer/canvas"
)

type config struct {
	input    string
	output   string
	debug    string
	name     string
	taps     []layout.Point
	fontSize float64
	data     any
}

func main() {
	input := flag.String("in", "examples/demo.label", "标记文件路径")
	output := flag.String("out", "output/demo.pdf", "PDF 输出路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	name := flag.String("label", "", "要渲染的 label 名称，默认取第一个")
	dataJSON := flag.String("data", "", "绑定到标记文件的 JSON 数据")
	tap := flag.String("tap", "", "模拟点击坐标（pt），形如 \"x,y\"，多个以 ; 分隔")
	fontSize := flag.Float64("font-size", 0, "统一覆盖字号（pt），0 表示不覆盖")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config{input: *input, output: *output, debug: *debug, name: *name, fontSize: *fontSize}
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &cfg.data); err != nil {
			logger.Error("解析 data JSON 失败", "error", err)
			os.Exit(1)
		}
	}
	taps, err := parseTaps(*tap)
	if err != nil {
		logger.Error("解析点击坐标失败", "error", err)
		os.Exit(1)
	}
	cfg.taps = taps

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{Title: filepath.Base(*input)})
	if err := run(cfg, r, os.Stdout, logger); err != nil {
		logger.Error("生成 PDF 失败", "error", err)
		os.Exit(1)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// run 串联解析、编译、排版与渲染，最后按 taps 模拟点击；动作输出写到 stdout。
func run(cfg config, r renderer.Renderer, stdout io.Writer, logger *slog.Logger) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	ts, ok := r.(layout.Typesetter)
	if !ok {
		return fmt.Errorf("renderer 未实现排版接口")
	}

	compiled, err := compile(cfg, stdout)
	if err != nil {
		return err
	}

	lbl := label.New(ts,
		label.WithLogger(logger),
		label.WithLineBreak(compiled.LineBreak),
		label.WithMaxLines(compiled.MaxLines),
		label.WithPreferredMaxLayoutWidth(compiled.MaxWidth),
	)
	lbl.SetText(compiled.Text)
	if cfg.fontSize > 0 {
		f := compiled.Font
		f.Size = cfg.fontSize
		lbl.SetFont(f)
	}

	rect := compiled.Frame
	if rect.W <= 0 || rect.H <= 0 {
		size := lbl.IntrinsicContentSize()
		rect.W, rect.H = size.W, size.H
	}
	logger.Debug("绘制标签", "label", compiled.Name, "x", rect.X, "y", rect.Y, "width", rect.W, "height", rect.H)

	err = lbl.Render(rect, func(frame layout.Frame) error {
		if cfg.debug != "" {
			if err := writeDebug(&frame, cfg.debug); err != nil {
				return err
			}
		}
		return writePDF(r, frame, cfg.output)
	})
	if err != nil {
		return err
	}

	for _, p := range cfg.taps {
		if !lbl.PointerUp(p, rect) {
			logger.Info("点击未命中动作", "x", p.X, "y", p.Y)
		}
	}
	return nil
}

func compile(cfg config, stdout io.Writer) (*dsl.Label, error) {
	file, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("无法打开标记文件 %s: %w", cfg.input, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析标记文件失败: %w", err)
	}
	labels, err := dsl.Compile(doc, cfg.data, binding.NewDefaultRegistry(stdout))
	if err != nil {
		return nil, fmt.Errorf("编译标记文件失败: %w", err)
	}
	if cfg.name == "" {
		return labels[0], nil
	}
	for _, l := range labels {
		if l.Name == cfg.name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("找不到 label %s", cfg.name)
}

func writePDF(r renderer.Renderer, frame layout.Frame, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := r.Render(frame)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

func writeDebug(frame *layout.Frame, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(frame, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// parseTaps 解析 "x,y;x,y" 形式的坐标列表。
func parseTaps(s string) ([]layout.Point, error) {
	var points []layout.Point
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("坐标 %q 缺少逗号", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("坐标 %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("坐标 %q: %w", part, err)
		}
		points = append(points, layout.Point{X: x, Y: y})
	}
	return points, nil
}
