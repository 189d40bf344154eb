package position

import "fmt"

// Position is a 1-based line/column pair, columns count runes
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// FromOffset resolves a byte offset into source to its line and column.
// Offsets past the end of source resolve to the position right after the last character.
func FromOffset(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := Position{Line: 1, Column: 1}
	for i, r := range source {
		if i >= offset {
			break
		}
		switch r {
		case '\n':
			pos.Line++
			pos.Column = 1
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				continue
			}
			pos.Line++
			pos.Column = 1
		default:
			pos.Column++
		}
	}
	return pos
}
