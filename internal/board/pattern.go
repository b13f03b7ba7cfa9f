package board

import (
	"fmt"
	"strings"
)

// Pattern is a rectangular stamp of occupied (true) and empty (false) cells.
// Rows may have different lengths; each row only covers its own columns.
type Pattern [][]bool

// Tetromino is the 4x4 bar stamped by the default spawn trigger.
var Tetromino = Pattern{
	{true, true, true, true},
	{false, false, false, false},
	{false, false, false, false},
	{false, false, false, false},
}

// ParsePattern reads a pattern from rows of '1'/'0' characters. '#' and '.'
// are accepted as aliases so trace output can be pasted back in.
func ParsePattern(rows []string) (Pattern, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidPattern)
	}
	p := make(Pattern, len(rows))
	for i, line := range rows {
		line = strings.TrimSpace(line)
		row := make([]bool, len(line))
		for j, ch := range line {
			switch ch {
			case '1', '#':
				row[j] = true
			case '0', '.':
			default:
				return nil, fmt.Errorf("%w: row %d has %q", ErrInvalidPattern, i, ch)
			}
		}
		p[i] = row
	}
	if p.Width() == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidPattern)
	}
	return p, nil
}

// Height returns the number of pattern rows.
func (p Pattern) Height() int { return len(p) }

// Width returns the length of the longest pattern row.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p {
		w = max(w, len(row))
	}
	return w
}

// Strings renders the pattern in the form ParsePattern reads.
func (p Pattern) Strings() []string {
	out := make([]string, len(p))
	for i, row := range p {
		var sb strings.Builder
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		out[i] = sb.String()
	}
	return out
}
