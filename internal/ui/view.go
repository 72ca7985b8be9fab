package ui

import (
	"strings"

	"github.com/atomicstack/tmux-context-menu/internal/format/table"
	uistate "github.com/atomicstack/tmux-context-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

var itemColumns = []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}

// View renders the backdrop, the status row and every open panel on top.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return ""
	}
	canvas := make([]string, h)
	blank := m.styles.Backdrop.Render(strings.Repeat(" ", w))
	for i := range canvas {
		canvas[i] = blank
	}
	if line := m.statusLine(w); line != "" {
		canvas[h-1] = line
	}
	if root := m.Menu(); root != nil {
		for _, p := range root.Panels() {
			box := strings.Split(m.renderPanel(p), "\n")
			overlayAt(canvas, box, w, p.Rect.X, p.Rect.Y, p.Rect.W)
		}
	}
	return strings.Join(canvas, "\n")
}

func (m *Model) statusLine(width int) string {
	var (
		text  string
		style *lipgloss.Style
	)
	switch {
	case m.errMsg != "":
		text, style = m.errMsg, m.styles.Error
	case m.infoMsg != "":
		text, style = m.infoMsg, m.styles.Info
	case m.Menu() != nil:
		if focus := m.root.Focus(); focus != nil && focus.Query() != "" {
			text, style = "search: "+focus.Query(), m.styles.Footer
		}
	case !m.oneShot:
		text, style = backdropHint, m.styles.Footer
	}
	if text == "" {
		return ""
	}
	text = padRight(truncate.StringWithTail(text, uint(width), "…"), width)
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) renderPanel(p *uistate.Panel) string {
	innerW := p.Rect.W - 2*uistate.FrameInset
	rows := make([][]string, len(p.Items))
	for i, item := range p.Items {
		mark, arrow := " ", " "
		if a, ok := item.Action(); ok && a.Checked {
			mark = m.styles.CheckMark
		}
		if _, ok := item.Submenu(); ok {
			arrow = m.styles.SubmenuArrow
		}
		label := truncate.StringWithTail(item.Node.Label(), uistate.MaxLabelWidth, "…")
		rows[i] = []string{mark, label, arrow}
	}
	lines := table.FormatGap(rows, itemColumns, " ")
	body := make([]string, len(p.Items))
	for i, item := range p.Items {
		if item.IsSeparator() {
			body[i] = m.styles.Separator.Render(strings.Repeat(m.styles.SeparatorRune, innerW))
			continue
		}
		style := m.styles.Item
		if a, ok := item.Action(); ok && !a.Enabled() {
			style = m.styles.DisabledItem
		}
		if i == p.Cursor {
			style = m.styles.SelectedItem
		}
		body[i] = style.Render(padRight(lines[i], innerW))
	}
	return m.styles.Panel.Render(strings.Join(body, "\n"))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if root := m.Menu(); root != nil {
		root.Layout(m.viewport())
	}
	m.openPending()
	return nil
}

// overlayAt splices fg over the background lines starting at column x, row y.
func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = ansi.Cut(fgLine, 0, fgW)
		}
		if x+fgW > w {
			fgLine = ansi.Cut(fgLine, 0, w-x)
		}

		bgLines[y+i] = left + fgLine + right
	}
}

func padRight(text string, width int) string {
	if n := ansi.StringWidth(text); n < width {
		return text + strings.Repeat(" ", width-n)
	}
	return text
}
