package vtgrid

import "github.com/google/uuid"

// displayHeight returns the number of display lines a logical row of the
// given character width occupies when wrapped at cols columns.
// A zero-width (empty) row still occupies exactly one display line.
func displayHeight(width, cols int) int {
	if cols <= 0 {
		return 1
	}
	if width <= 0 {
		return 1
	}
	h := (width + cols - 1) / cols
	if h < 1 {
		h = 1
	}
	return h
}

// newLineID mints a canonical identity for a logical row. The identity
// follows the row through wraps, scrollback eviction and reflow, and is
// the anchor key image placements use to decide whether their row still
// exists (see ImageManager.ReapOrphaned).
func newLineID() uuid.UUID {
	return uuid.New()
}
