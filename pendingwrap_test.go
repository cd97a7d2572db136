package vtgrid

import "testing"

// TestPendingWrapLatchesAtLastColumn verifies that printing into the last
// column does not wrap immediately; the wrap is deferred until the next
// printable character arrives (the xterm pending-wrap convention).
func TestPendingWrapLatchesAtLastColumn(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("0123456789") // exactly fills row 0

	row, col := term.CursorPos()
	if row != 0 || col != 9 {
		t.Fatalf("expected cursor to hold at (0,9), got (%d,%d)", row, col)
	}
	if term.IsWrapped(0) {
		t.Fatal("row should not be marked wrapped before the next character arrives")
	}

	term.WriteString("A")

	if !term.IsWrapped(0) {
		t.Fatal("expected row 0 to be marked wrapped once the next character forced the wrap")
	}
	row, col = term.CursorPos()
	if row != 1 || col != 1 {
		t.Fatalf("expected cursor at (1,1) after wrap, got (%d,%d)", row, col)
	}
	cell := term.Cell(1, 0)
	if cell == nil || cell.Char != 'A' {
		t.Fatalf("expected 'A' at (1,0), got %+v", cell)
	}
}

// TestPendingWrapClearedByCursorMotion verifies that an explicit cursor
// movement between filling the last column and the next printable
// character cancels the pending wrap instead of carrying it forward.
func TestPendingWrapClearedByCursorMotion(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("0123456789")
	term.WriteString("\r") // carriage return should clear the latch
	term.WriteString("A")

	row, col := term.CursorPos()
	if row != 0 || col != 1 {
		t.Fatalf("expected cursor at (0,1) after CR clears pending wrap, got (%d,%d)", row, col)
	}
	if term.IsWrapped(0) {
		t.Fatal("row should not be wrapped once the latch was cleared by CR")
	}
}

// TestWideCharacterWrapsAtLastColumn verifies a double-width character that
// would straddle the right edge pads the trailing column and wraps whole
// onto the next row rather than splitting across rows.
func TestWideCharacterWrapsAtLastColumn(t *testing.T) {
	term := New(WithSize(4, 4))

	term.WriteString("你好们") // three double-width CJK ideographs, 6 cols wide

	c00 := term.Cell(0, 0)
	c01 := term.Cell(0, 1)
	c02 := term.Cell(0, 2)
	c03 := term.Cell(0, 3)
	if c00 == nil || !c00.IsWide() || c00.Char != '你' {
		t.Fatalf("expected wide base '你' at (0,0), got %+v", c00)
	}
	if c01 == nil || !c01.IsWideSpacer() {
		t.Fatalf("expected wide spacer at (0,1), got %+v", c01)
	}
	if c02 == nil || !c02.IsWide() || c02.Char != '好' {
		t.Fatalf("expected wide base '好' at (0,2), got %+v", c02)
	}
	if c03 == nil || !c03.IsWideSpacer() {
		t.Fatalf("expected wide spacer at (0,3), got %+v", c03)
	}
	if !term.IsWrapped(0) {
		t.Fatal("expected row 0 to be wrapped after the third ideograph moved to row 1")
	}

	r10 := term.Cell(1, 0)
	r11 := term.Cell(1, 1)
	if r10 == nil || !r10.IsWide() || r10.Char != '们' {
		t.Fatalf("expected wide base '们' at (1,0), got %+v", r10)
	}
	if r11 == nil || !r11.IsWideSpacer() {
		t.Fatalf("expected wide spacer at (1,1), got %+v", r11)
	}
}

// TestCombiningMarkAttachesToPrecedingCell verifies a zero-width combining
// mark attaches to the previous base character instead of occupying its
// own column.
func TestCombiningMarkAttachesToPrecedingCell(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("é") // "e" + COMBINING ACUTE ACCENT

	row, col := term.CursorPos()
	if row != 0 || col != 1 {
		t.Fatalf("expected cursor to advance only past the base character, got (%d,%d)", row, col)
	}

	cell := term.Cell(0, 0)
	if cell == nil || cell.Char != 'e' {
		t.Fatalf("expected base 'e' at (0,0), got %+v", cell)
	}
	if len(cell.Combining) != 1 || cell.Combining[0] != '́' {
		t.Fatalf("expected combining acute accent attached, got %+v", cell.Combining)
	}

	next := term.Cell(0, 1)
	if next == nil || next.Char != ' ' {
		t.Fatalf("expected next cell untouched, got %+v", next)
	}
}

// TestCombiningMarkDroppedWithoutBase verifies a combining mark at the very
// start of the screen (no preceding cell) is silently dropped.
func TestCombiningMarkDroppedWithoutBase(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("́")

	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Fatalf("expected cursor to remain at origin, got (%d,%d)", row, col)
	}
}

// TestSelectedTextIncludesCombiningMarks verifies selection extraction
// reproduces the full grapheme cluster, not just the base rune.
func TestSelectedTextIncludesCombiningMarks(t *testing.T) {
	term := New(WithSize(5, 10))
	term.WriteString("éf")

	term.SetSelection(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1})

	got := term.GetSelectedText()
	want := "éf"
	if got != want {
		t.Fatalf("expected selected text %q, got %q", want, got)
	}
}
