package banner

import (
	"strings"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Group splits items into rows of at most column entries, in order.
func Group[T any](items []T, column int) [][]T {
	column = max(column, 1)
	var rows [][]T
	for start := 0; start < len(items); start += column {
		end := min(start+column, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}

// bnRows renders the widget rows. Each badge gets whatever width is left
// in its row, so long text is cut with an ellipsis rather than wrapped;
// the finished row is then clipped to avail. Row gaps become blank lines.
func bnRows(widgets []widget.Widget, br BadgeRenderer, avail int, opts Options) []string {
	var visible []widget.Widget
	for _, w := range widgets {
		if w.Renderable() {
			visible = append(visible, w)
		}
	}

	gap := strings.Repeat(" ", opts.ColumnGap)
	var lines []string
	for i, row := range Group(visible, opts.Column) {
		if i > 0 {
			for range opts.RowGap {
				lines = append(lines, "")
			}
		}

		var b strings.Builder
		used := 0
		for j, w := range row {
			if j > 0 {
				if avail > 0 && used+opts.ColumnGap >= avail {
					break
				}
				b.WriteString(gap)
				used += opts.ColumnGap
			}
			limit := 0
			if avail > 0 {
				limit = avail - used
			}
			s := br.Render(w, limit)
			b.WriteString(s)
			used += components.VisibleLen(s)
		}

		line := b.String()
		if avail > 0 && components.VisibleLen(line) > avail {
			line = components.Clip(line, avail)
		}
		lines = append(lines, line)
	}
	return lines
}
