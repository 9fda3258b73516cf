package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads give a blank cell.
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetColored(p[0], p[1], 'A', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "ab", ColorCyan)
	s.Set(4, 1, 'c')

	if c := s.GetCell(1, 1); c.Rune != 'a' || c.Color != ColorCyan {
		t.Errorf("cell (1,1) = %+v, expected cyan 'a'", c)
	}
	if c := s.GetCell(2, 1); c.Rune != 'b' || c.Color != ColorCyan {
		t.Errorf("cell (2,1) = %+v, expected cyan 'b'", c)
	}
	if c := s.GetCell(4, 1); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("Clear should reset colors, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText wrote %q, expected Hello", got)
	}

	// Only "He" fits.
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	// Multi-byte runes advance one cell each.
	s.DrawText(0, 3, "→x")
	if s.Get(1, 3) != 'x' {
		t.Errorf("rune after arrow = %q, expected 'x'", s.Get(1, 3))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered placed text at the wrong column: %q", s.Row(2))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawLines(1, 1, "ab\ncd", ColorGreen)

	if s.Get(1, 1) != 'a' || s.Get(2, 2) != 'd' {
		t.Errorf("DrawLines output wrong:\n%s", s.String())
	}
	if s.GetCell(1, 2).Color != ColorGreen {
		t.Error("DrawLines should color every line")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for p, want := range corners {
		if got := s.Get(p[0], p[1]); got != want {
			t.Errorf("corner (%d, %d) = %q, expected %q", p[0], p[1], got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-')
	s.DrawVLine(3, 4, 4, '|')
	s.DrawRect(NewRect(7, 7, 2, 2), '#')

	if !strings.HasPrefix(s.Row(2)[2:], "-----") {
		t.Errorf("DrawHLine row = %q", s.Row(2))
	}
	for y := 4; y < 8; y++ {
		if s.Get(3, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
	if s.Get(8, 8) != '#' || s.Get(6, 6) != ' ' {
		t.Error("DrawRect filled the wrong area")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrinking String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "AAA   " {
		t.Errorf("after growing Row(0) = %q", got)
	}
	if got := s.Row(-1); got != "      " {
		t.Errorf("out of bounds Row = %q", got)
	}
}

func TestDrawOverlay(t *testing.T) {
	s := NewScreen(20, 7)
	s.Fill('x')
	s.DrawOverlay(10, 3, "WIN", "again?")

	if got := s.Row(2); !strings.Contains(got, "WIN") {
		t.Errorf("row 2 = %q", got)
	}
	if !strings.Contains(s.Row(3), "again?") {
		t.Errorf("row 3 = %q", s.Row(3))
	}
	if s.Get(0, 0) != 'x' {
		t.Error("overlay should only cover its box")
	}
	if s.Get(10, 1) != '─' {
		t.Errorf("top border missing, got %q", s.Get(10, 1))
	}
}
