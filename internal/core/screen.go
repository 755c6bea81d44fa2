package core

// Cell is a single character cell in the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D buffer of cells representing the terminal display.
// Games draw into this buffer each frame, and the platform renders it
// to the actual terminal (or any other target).
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
// Dimensions are clamped to be at least 1x1.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// allocate creates the cell grid for the current dimensions.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := 0; y < s.height; y++ {
		row := make([]Cell, s.width)
		for x := 0; x < s.width; x++ {
			row[x] = Cell{Rune: ' ', Color: ColorDefault}
		}
		s.cells[y] = row
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving existing content
// where it still fits. New cells are filled with spaces.
func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()

	for y := 0; y < Min(oldH, height); y++ {
		for x := 0; x < Min(oldW, width); x++ {
			s.cells[y][x] = old[y][x]
		}
	}
}

// Clear fills the entire screen with spaces in the default color.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill sets every cell to the given rune in the default color.
func (s *Screen) Fill(r rune) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.cells[y][x] = Cell{Rune: r, Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Out-of-bounds coordinates return a space.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Out-of-bounds coordinates return a blank default cell.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string starting at the given position in the default
// color. Text that extends past the right edge is clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a string starting at the given position with a color.
// Text that extends past the right edge is clipped.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, r, c)
	}
}

// DrawTextCentered writes a string horizontally centered on the given row.
func (s *Screen) DrawTextCentered(y int, text string) {
	runes := []rune(text)
	x := (s.width - len(runes)) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular region with the given rune.
func (s *Screen) DrawRect(r Rect, ch rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ch)
		}
	}
}

// DrawBox draws a rectangular border using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}

	right := r.Right() - 1
	bottom := r.Bottom() - 1

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
}

// DrawHLine draws a horizontal line of the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line of the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// Row returns the runes of a single row. Out-of-range rows return nil.
// The slice is a copy and safe to retain.
func (s *Screen) Row(y int) []rune {
	if y < 0 || y >= s.height {
		return nil
	}
	row := make([]rune, s.width)
	for x := 0; x < s.width; x++ {
		row[x] = s.cells[y][x].Rune
	}
	return row
}

// String renders the screen buffer as plain text, one line per row.
// Colors are dropped. Useful for tests and debugging.
func (s *Screen) String() string {
	buf := make([]rune, 0, (s.width+1)*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			buf = append(buf, s.cells[y][x].Rune)
		}
		if y < s.height-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
