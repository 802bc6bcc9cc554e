package renderer

import "github.com/ByLCY/actionlabel/layout"

// Renderer 将一次绘制指令输出为最终产物，例如 PDF 或终端文本。
// Render 返回生成的数据以及可能的错误。
type Renderer interface {
	Render(frame layout.Frame) ([]byte, error)
}
