package jarena

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate computes the line and column of offset pos in text.
func locate(text []byte, pos int) LineCol {
	lc := LineCol{Line: 1}
	for i := 0; i < pos && i < len(text); i++ {
		if text[i] == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
