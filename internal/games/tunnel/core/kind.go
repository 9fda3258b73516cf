package core

// Kind is the content of one grid cell.
type Kind uint8

const (
	// KindNone marks padding past the end of a short row or an unrecognized character.
	KindNone Kind = iota
	KindEmpty
	KindOccupied
	KindForwardMirror // '/'
	KindBackMirror    // '\'
	KindItem
	KindDoor
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindEmpty:
		return "Empty"
	case KindOccupied:
		return "Occupied"
	case KindForwardMirror:
		return "ForwardMirror"
	case KindBackMirror:
		return "BackMirror"
	case KindItem:
		return "Item"
	case KindDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// ParseKind maps a map-file character to a cell kind.
// Space and lowercase letters are empty floor; '#' and uppercase letters are walls.
func ParseKind(r rune) Kind {
	switch {
	case r == ' ' || (r >= 'a' && r <= 'z'):
		return KindEmpty
	case r == '#' || (r >= 'A' && r <= 'Z'):
		return KindOccupied
	case r == '/':
		return KindForwardMirror
	case r == '\\':
		return KindBackMirror
	case r == '*':
		return KindItem
	case r == ':':
		return KindDoor
	default:
		return KindNone
	}
}

// Rune returns the canonical map character for k.
func (k Kind) Rune() rune {
	switch k {
	case KindEmpty:
		return ' '
	case KindOccupied:
		return '#'
	case KindForwardMirror:
		return '/'
	case KindBackMirror:
		return '\\'
	case KindItem:
		return '*'
	case KindDoor:
		return ':'
	default:
		return '.'
	}
}
