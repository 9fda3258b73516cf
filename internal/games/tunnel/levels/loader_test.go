package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/assets"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels"
)

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	layout, err := levels.Default().Load(assets.DefaultLayout)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.Name != "gbd1" {
		t.Errorf("name = %q, expected gbd1", layout.Name)
	}
	if layout.Start().Name != "start" {
		t.Errorf("start room = %q", layout.Start().Name)
	}
	if next := layout.Next("split", core.Left); !next.Won {
		t.Error("split W should lead to END")
	}
}

func TestEmbeddedLayoutsAllLoad(t *testing.T) {
	loader := levels.Default()
	names, err := loader.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("expected at least 2 bundled layouts, got %v", names)
	}
	for _, name := range names {
		if _, err := loader.Load(name); err != nil {
			t.Errorf("bundled layout %s: %v", name, err)
		}
	}
}

func TestEmbeddedRoomsHaveEntryDoors(t *testing.T) {
	loader := levels.Default()
	names, _ := loader.List()

	for _, name := range names {
		layout, err := loader.Load(name)
		if err != nil {
			t.Fatalf("Load %s: %v", name, err)
		}
		for _, w := range levels.Lint(layout) {
			t.Errorf("%s: %s", name, w)
		}
	}
}

func TestLintFindsMissingEntryDoors(t *testing.T) {
	fsys := fstest.MapFS{
		"a.map":    file("#:#\n   \n# #\n"),
		"b.map":    file(":  \n   \n   \n"),
		"x.layout": file("a a.map 1,1,1\n  N b\nb b.map 2,2,2\n  W END\n"),
	}
	loader := levels.NewLoader(fsys)

	layout, err := loader.Load("x.layout")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	warnings := levels.Lint(layout)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, expected 2", warnings)
	}
	if warnings[0].Room != "a" || !strings.Contains(warnings[0].Message, "start room") {
		t.Errorf("first warning = %v", warnings[0])
	}
	if warnings[1].Room != "a" || !strings.Contains(warnings[1].Message, "exit N") {
		t.Errorf("second warning = %v", warnings[1])
	}
}

func TestLintFindsStrayDoors(t *testing.T) {
	fsys := fstest.MapFS{
		"a.map":    file("   \n :\n : \n"),
		"x.layout": file("a a.map 1,1,1\n  N END\n"),
	}

	layout, err := levels.NewLoader(fsys).Load("x.layout")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	warnings := levels.Lint(layout)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, expected 1", warnings)
	}
	if !strings.Contains(warnings[0].Message, "door at 1,1") {
		t.Errorf("warning = %v, expected the door at 1,1", warnings[0])
	}
}

func TestLoadResolvesMapsFromRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/a.map":        file("#:#\n   \n#:#\n"),
		"maps/b.map":        file(":  \n   \n  :"),
		"layouts/x.layout":  file("a maps/a.map 1,1,1\n  N b\nb maps/b.map 2,2,2\n  E END\n"),
		"layouts/notes.txt": file("ignored"),
	}
	loader := levels.NewLoader(fsys)

	layout, err := loader.Load("layouts/x.layout")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if layout.Name != "x" {
		t.Errorf("name = %q, expected x", layout.Name)
	}
	b, ok := layout.Room("b")
	if !ok {
		t.Fatal("room b missing")
	}
	if b.Map != "maps/b.map" || b.Grid.Count(core.KindDoor) != 2 {
		t.Errorf("room b = %+v", b)
	}

	names, err := loader.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"layouts/x.layout"}) {
		t.Errorf("List = %v", names)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.map":         file("#:#"),
		"empty.map":      file(""),
		"nodoor.map":     file("###\n# #"),
		"unknown.layout": file("a ok.map 1,1,1\n  N ghost\n"),
		"end.layout":     file("END ok.map 1,1,1\n"),
		"missing.layout": file("a gone.map 1,1,1\n"),
		"empty.layout":   file("a empty.map 1,1,1\n"),
		"nodoor.layout":  file("a nodoor.map 1,1,1\n"),
		"syntax.layout":  file("a ok.map 1,1,1\n  Z a\n"),
		"escape.layout":  file("a ../ok.map 1,1,1\n"),
	}
	loader := levels.NewLoader(fsys)

	tests := []struct {
		name string
		code string // LayoutError code, empty for other errors
	}{
		{"unknown.layout", "UNKNOWN_ROOM"},
		{"end.layout", "RESERVED_NAME"},
		{"missing.layout", ""},
		{"empty.layout", "EMPTY_MAP"},
		{"nodoor.layout", "NO_DOOR"},
		{"syntax.layout", ""},
		{"escape.layout", ""},
		{"absent.layout", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.name)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.code == "" {
				return
			}
			var le core.LayoutError
			if !errors.As(err, &le) || le.Code != tt.code {
				t.Errorf("error = %v, expected code %s", err, tt.code)
			}
		})
	}
}

func TestDirLoader(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "rooms"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, data string) {
		if err := os.WriteFile(filepath.Join(root, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("rooms/one.map", "#:#\r\n# #\r\n#:#\r\n")
	write("tour.yaml", "name: Tour\nrooms:\n  - name: one\n    map: rooms/one.map\n    color: [9, 9, 9]\n    exits:\n      N: END\n")

	loader := levels.ForRoot(root)
	layout, err := loader.Load("tour.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if layout.Name != "Tour" {
		t.Errorf("name = %q", layout.Name)
	}
	if got := layout.Start().Grid.String(); got != "#:#\n# #\n#:#" {
		t.Errorf("grid = %q, CRLF should be stripped", got)
	}

	names, _ := loader.List()
	if len(names) != 1 || !strings.HasSuffix(names[0], "tour.yaml") {
		t.Errorf("List = %v", names)
	}
}
