// Package levels loads Gremm Tunnel layouts and maps from an asset tree.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/assets"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels/formats"
)

// Loader reads layouts and maps from an asset tree.
// Every path it takes is slash separated and relative to the root of FS.
type Loader struct {
	FS fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader creates a loader rooted at a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Default returns a loader over the embedded assets.
func Default() *Loader {
	return NewLoader(assets.FS)
}

// ForRoot returns a loader for root, or the embedded assets when root is empty.
func ForRoot(root string) *Loader {
	if root == "" {
		return Default()
	}
	return NewDirLoader(root)
}

// Load parses the layout at name, reads the maps it references and validates
// the result.
func (l *Loader) Load(name string) (*core.Layout, error) {
	name = path.Clean(name)
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", name, err)
	}

	doc, err := formats.Parse(data, path.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", name, err)
	}

	rooms := make([]*core.Room, 0, len(doc.Rooms))
	for _, def := range doc.Rooms {
		grid, err := l.grid(def)
		if err != nil {
			return nil, fmt.Errorf("layout %s: room %q: %w", name, def.Name, err)
		}
		rooms = append(rooms, &core.Room{
			Name:  def.Name,
			Map:   def.Map,
			Grid:  grid,
			Color: def.Color,
			Exits: def.Exits,
		})
	}

	title := doc.Name
	if title == "" {
		title = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}

	layout, err := core.NewLayout(title, rooms)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", name, err)
	}
	return layout, nil
}

func (l *Loader) grid(def formats.Room) (*core.Grid, error) {
	if def.Grid != "" {
		return core.ParseGrid(def.Grid), nil
	}
	return l.ReadMap(def.Map)
}

// ReadMap reads a single map file.
func (l *Loader) ReadMap(ref string) (*core.Grid, error) {
	ref = path.Clean(ref)
	if !fs.ValidPath(ref) {
		return nil, fmt.Errorf("invalid map reference %q", ref)
	}
	data, err := fs.ReadFile(l.FS, ref)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", ref, err)
	}
	return core.ParseGrid(string(data)), nil
}

// List returns the paths of every layout file in the tree, sorted.
func (l *Loader) List() ([]string, error) {
	var names []string

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(path.Ext(p))) {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking assets: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
