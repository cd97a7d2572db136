package vtgrid

import "github.com/google/uuid"

// Reflow rewraps the visible grid to newCols, unwrapping logical lines
// (joining each row marked wrapped with the row after it) and rewrapping
// them at the new width.
// Scrollback content is left at its original wrap width: only the live
// viewport reflows on a resize.
//
// The cursor's current (row, col) is supplied so its logical line and
// offset can be re-anchored after rewrap; the new (row, col) is returned.
// Wide-character pairs are never split across a rewrap boundary: a wide
// cell that would land in the last column of a row is pushed to start the
// next row instead, mirroring the wrap behavior Input() applies when
// printing.
func (b *Buffer) Reflow(newCols, cursorRow, cursorCol int) (newCursorRow, newCursorCol int) {
	if newCols <= 0 || newCols == b.cols || b.rows == 0 {
		return cursorRow, cursorCol
	}

	type logicalLine struct {
		cells []Cell
		id    uuid.UUID
	}

	var logical []logicalLine
	cursorLogicalIdx, cursorLogicalOffset := -1, 0

	i := 0
	for i < b.rows {
		var line []Cell
		id := b.lineIDs[i]
		rowCursorOffset := -1

		for {
			row := b.cells[i]
			end := len(row)
			if !b.wrapped[i] {
				for end > 0 && isBlankTrailingCell(row[end-1]) {
					end--
				}
			}

			if i == cursorRow {
				c := cursorCol
				if c > end {
					c = end
				}
				rowCursorOffset = len(line) + c
			}

			line = append(line, row[:end]...)

			i++
			if i >= b.rows || !b.wrapped[i-1] {
				break
			}
		}

		if rowCursorOffset >= 0 {
			cursorLogicalIdx = len(logical)
			cursorLogicalOffset = rowCursorOffset
		}

		logical = append(logical, logicalLine{cells: line, id: id})
	}

	newRows := make([][]Cell, 0, b.rows)
	newWrapped := make([]bool, 0, b.rows)
	newIDs := make([]uuid.UUID, 0, b.rows)

	cursorTargetRow := -1
	newCursorCol = 0

	for li, ll := range logical {
		n := len(ll.cells)
		if n == 0 {
			newRows = append(newRows, blankRow(newCols))
			newWrapped = append(newWrapped, false)
			newIDs = append(newIDs, ll.id)
			if li == cursorLogicalIdx {
				cursorTargetRow = len(newRows) - 1
			}
			continue
		}

		pos := 0
		lastStart := 0
		for pos < n {
			take := newCols
			if pos+take > n {
				take = n - pos
			}
			if pos+take < n && take == newCols && ll.cells[pos+take-1].IsWide() {
				take--
			}
			if take <= 0 {
				take = 1
			}

			row := make([]Cell, newCols)
			copy(row, ll.cells[pos:pos+take])
			for c := take; c < newCols; c++ {
				row[c] = NewCell()
			}

			newRows = append(newRows, row)
			newWrapped = append(newWrapped, pos+take < n)
			newIDs = append(newIDs, ll.id)
			lastStart = pos

			if li == cursorLogicalIdx && cursorLogicalOffset >= pos && cursorLogicalOffset < pos+take {
				cursorTargetRow = len(newRows) - 1
				newCursorCol = cursorLogicalOffset - pos
			}

			pos += take
		}

		if li == cursorLogicalIdx && cursorTargetRow == -1 {
			cursorTargetRow = len(newRows) - 1
			newCursorCol = cursorLogicalOffset - lastStart
			if newCursorCol > newCols-1 {
				newCursorCol = newCols - 1
			}
		}
	}

	if len(newRows) == 0 {
		newRows = append(newRows, blankRow(newCols))
		newWrapped = append(newWrapped, false)
		newIDs = append(newIDs, newLineID())
	}

	b.cells = newRows
	b.wrapped = newWrapped
	b.lineIDs = newIDs
	b.rows = len(newRows)
	b.cols = newCols

	if cursorTargetRow >= 0 {
		newCursorRow = cursorTargetRow
	} else {
		newCursorRow = len(newRows) - 1
	}
	return newCursorRow, newCursorCol
}

func blankRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}

func isBlankTrailingCell(c Cell) bool {
	return c.Char == ' ' && c.Flags == 0 && c.Hyperlink == nil && c.Image == nil
}
