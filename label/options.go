package label

import (
	"log/slog"

	"github.com/ByLCY/actionlabel/layout"
)

// Option configures a Label.
type Option func(*Label)

// WithLogger 指定日志输出；默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(l *Label) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLineBreak sets the line break mode passed to the layout stage.
func WithLineBreak(mode layout.LineBreakMode) Option {
	return func(l *Label) { l.lineBreak = mode }
}

// WithMaxLines limits the number of laid-out lines; 0 means unlimited.
func WithMaxLines(n int) Option {
	return func(l *Label) { l.maxLines = n }
}

// WithPreferredMaxLayoutWidth sets the width used by IntrinsicContentSize.
func WithPreferredMaxLayoutWidth(w float64) Option {
	return func(l *Label) { l.preferredMaxWidth = w }
}
