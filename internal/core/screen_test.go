package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", s.Get(3, 2))
	}

	// Out of bounds should be ignored on write and return space on read
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in green", cell)
	}

	if s.GetCell(-1, -1).Color != ColorDefault {
		t.Error("out-of-bounds GetCell should have default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(0, 0, 'a', ColorRed)
	s.SetCell(3, 2, 'b', ColorRed)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) not cleared: %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should clip at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(8, 6)
	s.FillRect(2, 1, 3, 2, '█', ColorGreen)

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != ColorGreen {
				t.Fatalf("cell (%d, %d) not filled: %+v", x, y, cell)
			}
		}
	}
	if s.Get(5, 1) != ' ' {
		t.Error("FillRect wrote outside its rectangle")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'x')

	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Errorf("Resize() dimensions = %dx%d, expected 10x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'x' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != 'x' {
		t.Error("shrinking should keep content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}
