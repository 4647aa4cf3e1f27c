// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

import (
	"iter"
	"math"

	"github.com/creachadair/jarena/internal/escape"

	"go4.org/mem"
)

// Kind is the type of a JSON value recorded by a Token.
type Kind byte

// Constants defining the valid Kind values.
const (
	String  Kind = iota // quoted string
	Integer             // number: integer with no fraction or exponent
	Real                // number with fraction and/or exponent
	Object              // object: { ... }
	Array               // array: [ ... ]
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	String:  "string",
	Integer: "integer",
	Real:    "real",
	Object:  "object",
	Array:   "array",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[v]
}

// A Token is a single JSON value stored in an Arena.
//
// The payload of a token is selected by its kind. A String token carries the
// raw text between its quotation marks; an Integer or Real token carries its
// numeric value; an Object or Array token links to its first child. The
// constants carry no payload.
//
// Name and text slices refer to the input of the parse that produced the
// token, and are valid only while that input is live and unmodified.
//
// The accessors accept a nil *Token, which reports kind Null and no payload,
// so the result of Find may be used without checking for a match:
//
//	id := p.Find("items.#.id").Int() // 0 if there is no match
type Token struct {
	kind  Kind
	name  []byte // member key, nil for array elements and the root
	text  []byte // String payload
	bits  uint64 // Integer or Real payload
	child *Token // first child of a container
	next  *Token // next sibling in document order
}

// Kind returns the kind of value recorded by t. A nil token reports Null.
func (t *Token) Kind() Kind {
	if t == nil {
		return Null
	}
	return t.kind
}

// Name returns the key of t if t is a member of an object. The second result
// is false for array elements and for the root of the document.
func (t *Token) Name() ([]byte, bool) {
	if t == nil {
		return nil, false
	}
	return t.name, t.name != nil
}

// Text returns the undecoded contents of a String token, without quotation
// marks. It returns nil if t is not a String. Escape sequences are reported
// as written; use Unquote to decode them.
func (t *Token) Text() []byte {
	if t.Kind() != String {
		return nil
	}
	return t.text
}

// Unquote decodes the escape sequences of a String token and returns the
// result as a new string. It reports an error if t is not a String or if its
// text contains an incomplete escape sequence.
func (t *Token) Unquote() (string, error) {
	if t.Kind() != String {
		return "", &kindError{want: String, got: t.Kind()}
	}
	dec, err := escape.Unquote(mem.B(t.text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Int returns the value of an Integer token, or 0 if t is not an Integer.
func (t *Token) Int() int64 {
	if t.Kind() != Integer {
		return 0
	}
	return int64(t.bits)
}

// Real returns the value of a Real token, or 0 if t is not a Real.
func (t *Token) Real() float64 {
	if t.Kind() != Real {
		return 0
	}
	return math.Float64frombits(t.bits)
}

// Bool returns the value of a True or False token. The second result is false
// if t is not a Boolean constant.
func (t *Token) Bool() (value, ok bool) {
	switch t.Kind() {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// IsContainer reports whether t is an Object or an Array.
func (t *Token) IsContainer() bool {
	k := t.Kind()
	return k == Object || k == Array
}

// FirstChild returns the first child of an Object or Array token, or nil if
// t is empty or is not a container.
func (t *Token) FirstChild() *Token {
	if !t.IsContainer() {
		return nil
	}
	return t.child
}

// Next returns the next sibling of t in its container, or nil if t is the
// last element.
func (t *Token) Next() *Token {
	if t == nil {
		return nil
	}
	return t.next
}

// Len returns the number of children of a container token, or 0.
func (t *Token) Len() int {
	var n int
	for c := t.FirstChild(); c != nil; c = c.next {
		n++
	}
	return n
}

// All returns an iterator over the children of a container token in
// document order. The sequence is empty if t is not a container.
func (t *Token) All() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for c := t.FirstChild(); c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// Find returns the first token below t matching path, or nil. See the
// package documentation for the syntax of paths. The tree must have been
// produced by a successful parse; use Parser.Find when that is not known.
func (t *Token) Find(path string) *Token {
	if t == nil || path == "" {
		return nil
	}
	return find(t, path)
}

func (t *Token) setInt(v int64)     { t.kind = Integer; t.bits = uint64(v) }
func (t *Token) setReal(v float64)  { t.kind = Real; t.bits = math.Float64bits(v) }
func (t *Token) setString(b []byte) { t.kind = String; t.text = b }
