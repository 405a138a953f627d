package tcellhost

import "github.com/gdamore/tcell/v2"

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFocus   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// redraw repaints every pane and the status line. Safe to call from any
// goroutine; tcell screens serialize access internally.
func (h *Host) redraw() {
	h.mu.Lock()
	windows := make([]*Window, len(h.windows))
	copy(windows, h.windows)
	focus := h.focus
	status := h.status
	h.mu.Unlock()

	width, height := h.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	h.screen.Clear()

	paneHeight := height - 1
	if len(windows) > 0 && paneHeight > 0 {
		paneWidth := width / len(windows)
		for i, w := range windows {
			left := i * paneWidth
			right := left + paneWidth - 1
			if i == len(windows)-1 {
				right = width - 1
			}
			h.drawPane(w, left, right, paneHeight-1, i == focus)
		}
	}

	h.drawText(0, height-1, width, status, styleStatus)
	h.screen.Show()
}

// drawPane draws one bordered window pane between columns left..right
// and rows 0..bottom.
func (h *Host) drawPane(w *Window, left, right, bottom int, focused bool) {
	if right-left < 2 || bottom < 2 {
		return
	}

	border := styleBorder
	if focused {
		border = styleFocus
	}

	for x := left; x <= right; x++ {
		h.screen.SetContent(x, 0, tcell.RuneHLine, nil, border)
		h.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := 0; y <= bottom; y++ {
		h.screen.SetContent(left, y, tcell.RuneVLine, nil, border)
		h.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	h.screen.SetContent(left, 0, tcell.RuneULCorner, nil, border)
	h.screen.SetContent(right, 0, tcell.RuneURCorner, nil, border)
	h.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, border)
	h.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	h.drawText(left+2, 0, right-left-3, " "+w.Title()+" ", border)

	// Content shows the newest lines that fit.
	lines := w.Lines()
	rows := bottom - 1
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		h.drawText(left+1, 1+i, right-left-1, line, styleDefault)
	}
}

// drawText writes text at (x, y) clipped to max cells.
func (h *Host) drawText(x, y, max int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col-x >= max {
			return
		}
		h.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
