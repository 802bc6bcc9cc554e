// actionlabel-tui 在终端里演示动作标签：鼠标点击链接触发动作，
// c 切换文字颜色，f 切换粗体，q 退出。
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ByLCY/actionlabel/binding"
	"github.com/ByLCY/actionlabel/dsl"
	"github.com/ByLCY/actionlabel/label"
	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/renderer/cells"
	"github.com/ByLCY/actionlabel/styled"
)

const (
	headerRows  = 2
	labelHeight = 3
	maxWidth    = 60
	maxStatus   = 5
)

var palette = []styled.Color{
	styled.RGB(0xe0, 0xe0, 0xe0),
	styled.RGB(0x0f, 0x62, 0xfe),
	styled.RGB(0x24, 0xa1, 0x48),
	styled.RGB(0xda, 0x1e, 0x28),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type entry struct {
	label *label.Label
	font  styled.Font
	rect  layout.Rect
}

type model struct {
	cells   *cells.Renderer
	entries []entry
	actions *bytes.Buffer // 动作输出，Update 中取出显示
	status  []string
	color   int
	bold    bool
}

func newModel(labels []*dsl.Label, actions *bytes.Buffer, logger *slog.Logger) *model {
	m := &model{cells: cells.New(), actions: actions}
	for _, l := range labels {
		lbl := label.New(m.cells,
			label.WithLogger(logger),
			label.WithLineBreak(l.LineBreak),
			label.WithMaxLines(l.MaxLines),
		)
		lbl.SetText(l.Text)
		m.entries = append(m.entries, entry{label: lbl, font: l.Font})
	}
	m.resize(maxWidth)
	return m
}

// resize 自上而下排列各标签，每个标签占 labelHeight 行，之间空一行。
func (m *model) resize(width int) {
	w := float64(min(width, maxWidth))
	for i := range m.entries {
		m.entries[i].rect = layout.Rect{X: 0, Y: float64(headerRows + i*(labelHeight+1)), W: w, H: labelHeight}
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			m.color = (m.color + 1) % len(palette)
			for _, e := range m.entries {
				e.label.SetTextColor(palette[m.color])
			}
			m.log(fmt.Sprintf("color %s", palette[m.color].Hex()))
		case "f":
			m.bold = !m.bold
			for _, e := range m.entries {
				f := e.font
				if m.bold {
					f.Style = "bold"
				}
				e.label.SetFont(f)
			}
			m.log(fmt.Sprintf("bold %v", m.bold))
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			break
		}
		// 取单元格中心作为点击位置
		p := layout.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}
		for _, e := range m.entries {
			if e.rect.Contains(p) && e.label.PointerUp(p, e.rect) {
				break
			}
		}
		for _, line := range strings.Split(strings.TrimSpace(m.actions.String()), "\n") {
			if line != "" {
				m.log(line)
			}
		}
		m.actions.Reset()
	}
	return m, nil
}

func (m *model) log(s string) {
	m.status = append(m.status, s)
	if len(m.status) > maxStatus {
		m.status = m.status[len(m.status)-maxStatus:]
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("ActionLabel demo: click a link · c color · f bold · q quit"))
	b.WriteString(strings.Repeat("\n", headerRows))
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		err := e.label.Render(e.rect, func(frame layout.Frame) error {
			out, err := m.cells.Render(frame)
			b.Write(out)
			return err
		})
		if err != nil {
			b.WriteString(err.Error())
		}
	}
	b.WriteString("\n\n")
	for _, s := range m.status {
		b.WriteString(statusStyle.Render(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func loadLabels(path string, data any, w io.Writer) ([]*dsl.Label, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开标记文件 %s: %w", path, err)
	}
	defer file.Close()
	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析标记文件失败: %w", err)
	}
	return dsl.Compile(doc, data, binding.NewDefaultRegistry(w))
}

func main() {
	input := flag.String("in", "examples/demo.label", "标记文件路径")
	dataJSON := flag.String("data", `{"user":{"name":"terminal"}}`, "绑定到标记文件的 JSON 数据")
	logPath := flag.String("log", "", "调试日志文件；界面占用终端，日志默认丢弃")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "创建日志文件失败:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var data any
	if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
		fmt.Fprintln(os.Stderr, "解析 data JSON 失败:", err)
		os.Exit(1)
	}
	actions := &bytes.Buffer{}
	labels, err := loadLabels(*input, data, actions)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(labels, actions, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "运行失败:", err)
		os.Exit(1)
	}
}
