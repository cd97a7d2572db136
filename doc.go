// Package vtgrid provides a headless VT-compatible terminal grid.
//
// It emulates the state a terminal keeps after a byte stream has already
// been parsed into escape-sequence calls: the visible grid, scrollback,
// cursor, styling, scroll regions, the alternate screen, hyperlinks, and
// inline images. The byte-level parsing itself is not this package's job;
// [Terminal] implements the [go-ansicode] Handler interface so a parser can
// drive it directly. This makes the package useful for:
//
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Screen scraping and automation
//   - Rendering terminal output in a non-terminal UI
//
// # Quick Start
//
//	term := vtgrid.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the main emulator, implements the go-ansicode Handler interface
//   - [Buffer]: a grid of cells with scrollback support
//   - [Cell]: a single character with colors and attributes
//   - [Cursor]: tracks position and rendering style
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can write
// raw bytes containing ANSI escape sequences:
//
//	term := vtgrid.New(
//	    vtgrid.WithSize(24, 80),           // 24 rows, 80 columns
//	    vtgrid.WithScrollback(storage),    // Enable scrollback
//	    vtgrid.WithResponse(ptyWriter),    // Handle terminal responses
//	)
//
//	// Process output from a command
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Read the result
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Dual Buffers
//
// Terminal maintains two buffers:
//
//   - Primary buffer: Normal mode with optional scrollback storage
//   - Alternate buffer: Used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch buffers via ANSI sequences (CSI ?1049h/l). Check which
// buffer is active:
//
//	if term.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(vtgrid.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strike.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface. A cell's Fg/Bg holds
// one of: [*IndexedColor] (ANSI 16 or 256-color palette), [*NamedColor] (the
// terminal default foreground/background, which new and reset cells carry,
// or a semantic slot such as the cursor color or a dim variant), or
// [color.RGBA] (true color). There is no exported resolver
// function — callers that need a concrete RGBA for rendering type-switch on
// the color themselves, same as the palette lookup internal to SGR handling.
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later
// access. Implement [ScrollbackProvider] or use the built-in display-line
// budgeted storage:
//
//	// In-memory scrollback budgeted at 10000 display lines
//	storage := vtgrid.NewMemoryScrollback(10000, 80)
//	term := vtgrid.New(vtgrid.WithScrollback(storage))
//
//	// Access scrollback
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// A line's display height (how many terminal rows it occupies once wrapped
// at the current width) counts against the budget, not a flat one-line
// count: a single very wide line can, by itself, consume the whole budget
// and is kept rather than dropped for lack of anything smaller to evict.
//
// # Response Writer
//
// [ResponseProvider] writes terminal responses back to the PTY (cursor
// position reports, etc.):
//
//	term := vtgrid.New(vtgrid.WithResponse(os.Stdout))
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op defaults:
//
//   - [BellProvider]: Handles bell/beep events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw input for replay
//   - [SizeProvider]: Provides pixel cell dimensions for XTWINOPS queries and image placement
//
// Example with providers:
//
//	term := vtgrid.New(
//	    vtgrid.WithResponse(os.Stdout),
//	    vtgrid.WithBell(&MyBellHandler{}),
//	    vtgrid.WithTitle(&MyTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts ANSI handler calls for custom behavior:
//
//	mw := &vtgrid.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r) // Call default handler
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	term := vtgrid.New(vtgrid.WithMiddleware(mw))
//
// # Terminal Modes
//
// Various terminal behaviors are controlled by mode flags:
//
//	term.HasMode(vtgrid.ModeLineWrap)       // Auto line wrap enabled?
//	term.HasMode(vtgrid.ModeShowCursor)     // Cursor visible?
//	term.HasMode(vtgrid.ModeBracketedPaste) // Bracketed paste enabled?
//
// See [TerminalMode] for all available modes.
//
// # Dirty Tracking
//
// Track which cells changed for efficient rendering:
//
//	if term.HasDirty() {
//	    for _, pos := range term.DirtyCells() {
//	        // Redraw cell at pos.Row, pos.Col
//	    }
//	    term.ClearDirty()
//	}
//
// # Selection
//
// Manage text selections for copy/paste:
//
//	term.SetSelection(
//	    vtgrid.Position{Row: 0, Col: 0},
//	    vtgrid.Position{Row: 2, Col: 10},
//	)
//	text := term.GetSelectedText()
//	term.ClearSelection()
//
// # Search
//
// Find text in the visible screen or scrollback:
//
//	matches := term.Search("error")
//	for _, pos := range matches {
//	    fmt.Printf("Found at row %d, col %d\n", pos.Row, pos.Col)
//	}
//
//	// Search scrollback (returns negative row numbers)
//	scrollbackMatches := term.SearchScrollback("error")
//
// # Image Support
//
// The terminal supports inline images via Sixel and Kitty graphics protocols:
//
//	// Check if images are enabled
//	if term.SixelEnabled() || term.KittyEnabled() {
//	    // Process image sequences
//	}
//
//	// Access stored images
//	for _, placement := range term.ImagePlacements() {
//	    img := term.Image(placement.ImageID)
//	    // img.Data contains RGBA pixels
//	}
//
//	// Configure image memory budget
//	term.SetImageMaxMemory(100 * 1024 * 1024) // 100MB
//
// Each placement is anchored to the canonical identity of the row it was
// created against (see [ImagePlacement.AnchorID]). When that row is
// scrolled out of scrollback entirely, or the terminal is reset, orphaned
// placements are reaped automatically; a placement's Row/Col fields alone
// are not a reliable liveness check across a scroll or reset.
//
// # Auto-Resize Mode
//
// In auto-resize mode, the buffer grows instead of scrolling:
//
//	term := vtgrid.New(vtgrid.WithAutoResize())
//
//	// Capture complete output without truncation
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Buffer has grown to fit all output
//	fmt.Printf("Total rows: %d\n", term.Rows())
//
// # Reflow on Resize
//
// Resizing the column width unwraps each logical line (joining rows that
// were wrapped into one another) and rewraps it at the new width, rather
// than leaving ragged rows at the old width. The cursor's logical line and
// offset are preserved across the rewrap, and a wide character is never
// split across the new wrap boundary. Scrollback content already pushed
// out of the viewport keeps the wrap width it was stored at.
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use. The terminal uses internal
// locking to protect state. However, if you need to perform multiple operations
// atomically, you should use your own synchronization.
//
// # Supported ANSI Sequences
//
// The terminal supports a comprehensive set of ANSI escape sequences including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Shell integration marks (OSC 133)
//   - Sixel and Kitty graphics
//
// For the complete list of supported sequences, see the [go-ansicode] package
// documentation.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package vtgrid
