// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed token tree.
//
// Tokens do not record their parents. A Cursor keeps the sequence of tokens
// from its origin to its current position, so that callers can move back up
// the tree and recover the ancestry of a value.
package cursor

import (
	"fmt"

	"github.com/creachadair/jarena"

	"go4.org/mem"
)

// Find traverses a sequential path into the structure of root where path
// elements are as documented for the Cursor.Down method.  This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Find(root *jarena.Token, path ...any) (*jarena.Token, error) {
	c := New(root).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a token tree.
type Cursor struct {
	org *jarena.Token
	stk []*jarena.Token
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *jarena.Token) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin token of c.
func (c *Cursor) Origin() *jarena.Token { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current token under the cursor.
func (c *Cursor) Value() *jarena.Token {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Parent reports the container of the current token, or nil if c is at its
// origin.
func (c *Cursor) Parent() *jarena.Token {
	switch n := len(c.stk); n {
	case 0:
		return nil
	case 1:
		return c.org
	default:
		return c.stk[n-2]
	}
}

// Path reports the complete sequence of tokens from the origin to the current
// location in c.
func (c *Cursor) Path() []*jarena.Token {
	return append([]*jarena.Token{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current token, where path elements are either strings (denoting object
// keys), integers (denoting offsets into containers), functions (see below),
// or nil.  If the path is valid, the token reached is returned. If the path
// cannot be completely consumed, traversal stops and an error is recorded.
// Use Err to recover the error.
//
// If a path element is a string, the corresponding token must be an object,
// and the string resolves to the first member with that key.
//
// If a path element is an integer, the corresponding token must be an array
// or object, and the integer resolves to an index among its children.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next token in the sequence. The function must have a signature
//
//	func(*jarena.Token) (*jarena.Token, error)
//
// If the function reports an error, traversal stops and the error is recorded.
// A nil path element is ignored. Traversal stops with an error if any other
// element is applied to a nil token.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		if cur == nil && elt != nil {
			return c.setErrorf("cannot traverse nil token with %T", elt)
		}
		switch t := elt.(type) {
		case string:
			if cur.Kind() != jarena.Object {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			m := findKey(cur, t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m)

		case int:
			if !cur.IsContainer() {
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), t)
			}
			n := cur.Len()
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("%v index %d out of bounds (n=%d)", cur.Kind(), t, n)
			}
			cur = c.push(nthChild(cur, i))

		case func(*jarena.Token) (*jarena.Token, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(t *jarena.Token) *jarena.Token { c.stk = append(c.stk, t); return t }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func findKey(obj *jarena.Token, key string) *jarena.Token {
	want := mem.S(key)
	for m := range obj.All() {
		if name, _ := m.Name(); mem.B(name).Equal(want) {
			return m
		}
	}
	return nil
}

func nthChild(t *jarena.Token, i int) *jarena.Token {
	c := t.FirstChild()
	for ; i > 0; i-- {
		c = c.Next()
	}
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
