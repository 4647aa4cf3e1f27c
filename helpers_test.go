// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena_test

import (
	"strconv"
	"strings"

	"github.com/creachadair/jarena"
)

// shape renders the structure and values of a token tree compactly, for
// comparing trees in tests. Strings are rendered with their raw text.
func shape(t *jarena.Token) string {
	var buf strings.Builder
	writeShape(&buf, t)
	return buf.String()
}

func writeShape(buf *strings.Builder, t *jarena.Token) {
	if name, ok := t.Name(); ok {
		buf.WriteString(string(name))
		buf.WriteByte(':')
	}
	switch t.Kind() {
	case jarena.Object, jarena.Array:
		open, close := "{", "}"
		if t.Kind() == jarena.Array {
			open, close = "[", "]"
		}
		buf.WriteString(open)
		i := 0
		for c := range t.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeShape(buf, c)
			i++
		}
		buf.WriteString(close)
	case jarena.String:
		buf.WriteString(`"` + string(t.Text()) + `"`)
	case jarena.Integer:
		buf.WriteString(strconv.FormatInt(t.Int(), 10))
	case jarena.Real:
		buf.WriteString(strconv.FormatFloat(t.Real(), 'g', -1, 64))
	default:
		buf.WriteString(t.Kind().String())
	}
}

// mustParse parses input with a parser of n tokens, or panics.
func mustParse(input string, n int) *jarena.Parser {
	return jarena.MustParse([]byte(input), n)
}
