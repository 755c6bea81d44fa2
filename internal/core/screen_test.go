package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, '@', ColorYellow)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' || cell.Color != ColorYellow {
		t.Errorf("GetCell(4, 2) = %+v, want {@ yellow}", cell)
	}

	// Unset cells come back as blank default cells.
	cell = s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(0, 0) = %+v, want blank default", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer must be silently ignored.
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	// Reads outside the buffer return a blank cell.
	if got := s.Get(-1, -1); got != ' ' {
		t.Errorf("Get(-1, -1) = %q, want ' '", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, want ' '", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetCell(2, 1, '#', ColorRed)
	s.Clear()

	cell := s.GetCell(2, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(2, 1) = %+v, want blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after shrink, Get(2, 2) = %q, want 'A'", got)
	}

	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after grow, Get(2, 2) = %q, want 'A'", got)
	}
	if got := s.Get(11, 5); got != ' ' {
		t.Errorf("new cells should be blank, Get(11, 5) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes at expected positions")
	}

	// Text running off the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should draw the visible prefix")
	}
	if s.Get(0, 1) == 'n' {
		t.Error("DrawText must not wrap to the next row")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(0, 0, "ab", ColorGreen)

	if c := s.GetCell(0, 0); c.Color != ColorGreen {
		t.Errorf("DrawTextColor cell color = %v, want green", c.Color)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	// (11 - 3) / 2 = 4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: %q", string(s.Row(1)))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' {
		t.Errorf("top-left corner = %q, want '┌'", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("top-right corner = %q, want '┐'", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("bottom-left corner = %q, want '└'", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("bottom-right corner = %q, want '┘'", s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, want 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("line 0 = %q, want %q", lines[0], "a  ")
	}
	if lines[1] != "  b" {
		t.Errorf("line 1 = %q, want %q", lines[1], "  b")
	}
}
