// Package formats provides the layout file parsers for Gremm Tunnel.
package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

// Layout is a parsed layout document whose maps are not yet resolved.
type Layout struct {
	Name  string
	Rooms []Room
}

// Room is one parsed room declaration.
// Exactly one of Map (a reference relative to the assets root) or Grid
// (inline map text) is set.
type Room struct {
	Name  string
	Map   string
	Grid  string
	Color core.RGB
	Exits map[core.Heading]core.Target
}

// ParseError is a syntax error at a specific line of a layout file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// FormatExtensions returns supported layout file extensions.
func FormatExtensions() []string {
	return []string{".layout", ".yaml", ".yml"}
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (Layout, error) {
	switch strings.ToLower(ext) {
	case ".layout":
		return ParseText(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// parseColor reads "r,g,b" with each channel in 0..255.
func parseColor(s string) (core.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.RGB{}, fmt.Errorf("color %q: expected r,g,b", s)
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
		}
		ch[i] = v
	}
	return rgb(ch[:])
}

func rgb(ch []int) (core.RGB, error) {
	if len(ch) != 3 {
		return core.RGB{}, fmt.Errorf("color needs 3 channels, got %d", len(ch))
	}
	for _, v := range ch {
		if v < 0 || v > 255 {
			return core.RGB{}, fmt.Errorf("color channel %d out of range 0..255", v)
		}
	}
	return core.RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, nil
}

// parseExit reads a compass letter and target word.
func parseExit(letter, target string) (core.Heading, core.Target, error) {
	h, ok := core.ParseCompass(letter)
	if !ok {
		return 0, core.Target{}, fmt.Errorf("unknown compass letter %q (want N, E, S or W)", letter)
	}
	if target == "" {
		return 0, core.Target{}, fmt.Errorf("exit %s has no target", letter)
	}
	return h, core.ParseTarget(target), nil
}
