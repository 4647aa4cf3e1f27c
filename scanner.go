// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

import (
	"fmt"
	"math"

	"go4.org/mem"
)

// An input is a forward cursor over the text of a document.
// The scanning methods operate in place and do not allocate except to report
// an error.
type input struct {
	text []byte
	pos  int
}

// newInput returns an input over text, which ends at its first NUL byte.
func newInput(text []byte) input {
	if i := mem.IndexByte(mem.B(text), 0); i >= 0 {
		text = text[:i]
	}
	return input{text: text}
}

// atEnd reports whether the cursor is at the end of the input.
func (in *input) atEnd() bool { return in.pos >= len(in.text) }

// peek returns the current byte, or 0 at the end of the input.
func (in *input) peek() byte {
	if in.pos < len(in.text) {
		return in.text[in.pos]
	}
	return 0
}

// peekAt returns the byte at offset i past the cursor, or 0.
func (in *input) peekAt(i int) byte {
	if p := in.pos + i; p < len(in.text) {
		return in.text[p]
	}
	return 0
}

// skipBlank advances past blank characters. Reaching the end of the input is
// not an error.
func (in *input) skipBlank() {
	for in.pos < len(in.text) && isSpace(in.text[in.pos]) {
		in.pos++
	}
}

// scanString consumes a string literal starting at the cursor, which must be
// at a double quotation mark. It returns the raw text between the quotation
// marks, without decoding escapes, and skips any blanks that follow.
func (in *input) scanString() ([]byte, error) {
	if in.peek() != '"' {
		return nil, in.failf("got %s, want string", in.describe())
	}
	start := in.pos + 1
	var esc bool
	for i := start; i < len(in.text); i++ {
		ch := in.text[i]
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			in.pos = i + 1
			in.skipBlank()
			return in.text[start:i], nil
		}
	}
	in.pos = len(in.text)
	return nil, in.failf("unterminated string")
}

// maxExpDigits bounds the exponent accumulated by scanNumber. Any larger
// exponent already drives the value to zero or infinity.
const maxExpDigits = 1 << 16

// maxFracScale bounds the scale of the fraction accumulated by scanNumber.
// Beyond it, further digits are below the precision of a float64.
const maxFracScale = 1e18

// scanNumber consumes a number literal starting at the cursor and stores it
// into t as an Integer or Real.
//
// The value is accumulated in floating point: fraction digits are divided by
// the matching power of ten, and the exponent is applied by repeated
// multiplication or division by ten. This does not always produce the
// correctly-rounded value for long inputs.
func (in *input) scanNumber(t *Token) error {
	var neg bool
	if in.peek() == '-' {
		neg = true
		in.pos++
	}
	if !isDigit(in.peek()) {
		return in.failf("got %s, want digit", in.describe())
	}

	// Check for extra leading zeroes, which RFC 4627 disallows.
	// That is: 0.12 is OK, 01.2 is not.
	if in.peek() == '0' && isDigit(in.peekAt(1)) {
		return in.failf("extra leading zeroes")
	}

	var num float64
	for isDigit(in.peek()) {
		num = num*10 + float64(in.peek()-'0')
		in.pos++
	}

	isReal := false
	if in.peek() == '.' {
		in.pos++
		if !isDigit(in.peek()) {
			return in.failf("no digits after decimal point")
		}
		exp, dec := 1.0, 0.0
		for isDigit(in.peek()) {
			// Digits past maxFracScale cannot change the value.
			if exp < maxFracScale {
				dec = dec*10 + float64(in.peek()-'0')
				exp *= 10
			}
			in.pos++
		}
		num += dec / exp
		isReal = true
	}

	if ch := in.peek(); ch == 'e' || ch == 'E' {
		in.pos++
		var negExp bool
		switch in.peek() {
		case '-':
			negExp = true
			in.pos++
		case '+':
			in.pos++
		}
		if !isDigit(in.peek()) {
			return in.failf("missing exponent digits")
		}
		var n int
		for isDigit(in.peek()) {
			if n < maxExpDigits {
				n = n*10 + int(in.peek()-'0')
			}
			in.pos++
		}
		for ; n > 0 && num != 0 && !math.IsInf(num, 0); n-- {
			if negExp {
				num /= 10
			} else {
				num *= 10
			}
		}
		isReal = true
	}

	if neg {
		num = -num
	}
	if isReal {
		t.setReal(num)
	} else {
		t.setInt(narrow(num))
	}
	return nil
}

// narrow converts num to an int64, saturating at the limits of the type.
func narrow(num float64) int64 {
	switch {
	case num >= math.MaxInt64:
		return math.MaxInt64
	case num <= math.MinInt64:
		return math.MinInt64
	}
	return int64(num)
}

// constants are the keyword literals. RFC 4627 defines them in lower case
// only.
var constants = [...]struct {
	text mem.RO
	kind Kind
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

// scanConstant consumes one of the keyword literals into t.
func (in *input) scanConstant(t *Token) error {
	rest := mem.B(in.text[in.pos:])
	for _, c := range constants {
		if mem.HasPrefix(rest, c.text) {
			t.kind = c.kind
			in.pos += c.text.Len()
			return nil
		}
	}
	return in.failf("unknown constant")
}

// describe returns a human-readable label for the current byte.
func (in *input) describe() string {
	if in.atEnd() {
		return "end of input"
	}
	return fmt.Sprintf("%q", in.peek())
}

func (in *input) failf(msg string, args ...any) error {
	return &SyntaxError{
		Offset:   in.pos,
		Location: locate(in.text, in.pos),
		Message:  fmt.Sprintf(msg, args...),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
