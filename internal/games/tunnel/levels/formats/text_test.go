package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

func TestParseText(t *testing.T) {
	src := strings.Join([]string{
		"start gbd1/start.map 40,40,120",
		"    N learner",
		"",
		"learner gbd1/learner.map 30, 120, 30\r",
		"\tE END",
		"\tS start",
	}, "\n")

	doc, err := ParseText([]byte(src))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(doc.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(doc.Rooms))
	}

	start := doc.Rooms[0]
	if start.Name != "start" || start.Map != "gbd1/start.map" {
		t.Errorf("start room = %+v", start)
	}
	if start.Color != (core.RGB{R: 40, G: 40, B: 120}) {
		t.Errorf("start color = %+v", start.Color)
	}
	if start.Exits[core.Up] != (core.Target{Room: "learner"}) {
		t.Errorf("start N = %+v", start.Exits[core.Up])
	}

	learner := doc.Rooms[1]
	if learner.Color != (core.RGB{R: 30, G: 120, B: 30}) {
		t.Errorf("learner color = %+v", learner.Color)
	}
	if !learner.Exits[core.Right].End {
		t.Error("learner E should be END")
	}
	if learner.Exits[core.Down].Room != "start" {
		t.Errorf("learner S = %+v", learner.Exits[core.Down])
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"exit before room", "  N start\nstart a.map 1,2,3", 1},
		{"bad compass", "start a.map 1,2,3\n  X other", 2},
		{"bad color", "start a.map 1,2", 1},
		{"color out of range", "\nstart a.map 1,2,300", 2},
		{"missing color", "start a.map", 1},
		{"exit without target", "start a.map 1,2,3\n  N", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, expected %d (%v)", pe.Line, tt.line, err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	src := `
name: demo
rooms:
  - name: one
    grid: |
      #:#
      # #
      #:#
    color: [1, 2, 3]
    exits:
      N: two
      W: END
  - name: two
    map: maps/two.map
    color: [255, 0, 0]
`
	doc, err := ParseYAML([]byte(src))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if doc.Name != "demo" || len(doc.Rooms) != 2 {
		t.Fatalf("unexpected document %+v", doc)
	}
	one := doc.Rooms[0]
	if one.Grid != "#:#\n# #\n#:#\n" {
		t.Errorf("inline grid = %q", one.Grid)
	}
	if one.Exits[core.Up].Room != "two" || !one.Exits[core.Left].End {
		t.Errorf("exits = %+v", one.Exits)
	}
	if doc.Rooms[1].Map != "maps/two.map" {
		t.Errorf("map ref = %q", doc.Rooms[1].Map)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"both map and grid", "rooms:\n  - name: a\n    map: a.map\n    grid: ':'\n    color: [1,1,1]\n"},
		{"neither map nor grid", "rooms:\n  - name: a\n    color: [1,1,1]\n"},
		{"short color", "rooms:\n  - name: a\n    map: a.map\n    color: [1,1]\n"},
		{"bad compass", "rooms:\n  - name: a\n    map: a.map\n    color: [1,1,1]\n    exits:\n      Q: b\n"},
		{"not yaml", "rooms: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	if _, err := Parse(nil, ".json"); err == nil {
		t.Error("expected an error for .json")
	}
}
