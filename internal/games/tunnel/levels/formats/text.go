package formats

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

// ParseText parses the line based .layout format:
//
//	start gbd1/start.map 40,40,120
//	    N learner
//	    E END
//
// An unindented line declares a room; an indented line adds an exit to the
// most recently declared room. Blank lines are ignored.
func ParseText(data []byte) (Layout, error) {
	var out Layout

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		fields := strings.Fields(text)

		if !unicode.IsSpace(rune(raw[0])) {
			if len(fields) < 3 {
				return Layout{}, errorf(line, "room needs a name, a map and a color")
			}
			color, err := parseColor(strings.Join(fields[2:], ""))
			if err != nil {
				return Layout{}, errorf(line, "%v", err)
			}
			out.Rooms = append(out.Rooms, Room{
				Name:  fields[0],
				Map:   fields[1],
				Color: color,
			})
			continue
		}

		if len(out.Rooms) == 0 {
			return Layout{}, errorf(line, "exit before any room")
		}
		if len(fields) != 2 {
			return Layout{}, errorf(line, "exit needs a compass letter and a target")
		}
		h, target, err := parseExit(fields[0], fields[1])
		if err != nil {
			return Layout{}, errorf(line, "%v", err)
		}
		last := &out.Rooms[len(out.Rooms)-1]
		if last.Exits == nil {
			last.Exits = make(map[core.Heading]core.Target)
		}
		last.Exits[h] = target
	}
	if err := sc.Err(); err != nil {
		return Layout{}, err
	}

	return out, nil
}
