package vtgrid

import "sync"

// MemoryScrollback is the built-in in-memory ScrollbackProvider. Lines are
// evicted oldest-first, but the budget it enforces is display lines, not
// stored lines: a single logical line that is very wide (and would wrap to
// many display rows once rendered) counts against the budget by its own
// display height rather than as one unit.
//
// This mirrors the scrollback behavior exercised by
// test_very_long_lines_scrollback_limit: pushing one line whose display
// height alone exceeds the configured limit does not evict it to make
// room for nothing — it is kept alone, capped at the limit, and nothing
// else fits until it scrolls off in turn.
type MemoryScrollback struct {
	mu sync.Mutex

	lines    [][]Cell
	heights  []int
	maxLines int // budget expressed in display lines, not stored lines

	displayCols int // column width used to compute each line's display height
}

// NewMemoryScrollback creates a MemoryScrollback with the given display-line
// budget. cols is the viewport width used to compute each pushed line's
// display height; call SetDisplayCols if the viewport is resized so future
// pushes are measured against the new width.
func NewMemoryScrollback(maxLines, cols int) *MemoryScrollback {
	if cols <= 0 {
		cols = 80
	}
	return &MemoryScrollback{
		maxLines:    maxLines,
		displayCols: cols,
	}
}

// SetDisplayCols updates the column width used to measure newly pushed
// lines. Lines already stored keep the display height they were pushed
// with; re-measuring history is a reflow concern, not scrollback's.
func (m *MemoryScrollback) SetDisplayCols(cols int) {
	if cols <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.displayCols = cols
}

// Push appends a line, evicting the oldest lines until the line fits within
// the display-line budget. If the budget is unlimited (<= 0), nothing is
// evicted.
func (m *MemoryScrollback) Push(line []Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]Cell, len(line))
	copy(cp, line)

	h := displayHeight(cellRunWidth(cp), m.displayCols)

	m.lines = append(m.lines, cp)
	m.heights = append(m.heights, h)

	if m.maxLines <= 0 {
		return
	}

	for m.totalHeightLocked() > m.maxLines && len(m.lines) > 1 {
		m.lines = m.lines[1:]
		m.heights = m.heights[1:]
	}

	// A single line taller than the budget is kept alone rather than
	// discarded: there is nothing smaller to evict in its place.
}

func (m *MemoryScrollback) totalHeightLocked() int {
	total := 0
	for _, h := range m.heights {
		total += h
	}
	return total
}

// Len returns the number of stored lines (not display lines).
func (m *MemoryScrollback) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Line returns the line at index, where 0 is the oldest line.
func (m *MemoryScrollback) Line(index int) []Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.lines) {
		return nil
	}
	return m.lines[index]
}

// Clear removes all stored lines.
func (m *MemoryScrollback) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.heights = nil
}

// SetMaxLines sets the display-line budget, trimming oldest lines if the
// new budget is smaller than the current total.
func (m *MemoryScrollback) SetMaxLines(max int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxLines = max
	if m.maxLines <= 0 {
		return
	}
	for m.totalHeightLocked() > m.maxLines && len(m.lines) > 1 {
		m.lines = m.lines[1:]
		m.heights = m.heights[1:]
	}
}

// MaxLines returns the current display-line budget.
func (m *MemoryScrollback) MaxLines() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxLines
}

// cellRunWidth returns the display width of a row's trailing non-blank
// content, the same measure Reflow uses to decide wrap points.
func cellRunWidth(line []Cell) int {
	end := len(line)
	for end > 0 && isBlankTrailingCell(line[end-1]) {
		end--
	}
	width := 0
	for i := 0; i < end; i++ {
		if line[i].IsWideSpacer() {
			continue
		}
		if line[i].IsWide() {
			width += 2
		} else {
			width++
		}
	}
	return width
}

var _ ScrollbackProvider = (*MemoryScrollback)(nil)
