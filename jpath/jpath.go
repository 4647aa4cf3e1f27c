// Package jpath implements the path syntax used to search a token tree.
package jpath

import (
	"errors"
	"strings"
)

/*
Grammar:

   path = segment
   path = segment "." path
   path = "#." [path]
segment = KEY

    KEY = { any text not containing "." }

A segment of "#." matches any element of an array. When it is the last
segment of a path, the array element itself is selected.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression. Unlike the lookup performed by
// jarena.Parser.Find, which treats an invalid path as one that matches
// nothing, Parse reports an error describing the problem.
func Parse(s string) (Expr, error) {
	if s == "" {
		return nil, errors.New("empty path")
	}
	var e Expr
	for s != "" {
		step, rest, last, ok := Next(s)
		if !ok {
			return nil, errors.New(`wildcard "#" must be followed by "."`)
		}
		e = append(e, step)
		if rest == "" && !last {
			return nil, errors.New("empty segment at end of path")
		}
		s = rest
	}
	return e, nil
}

// Next reads the first segment of path. It returns the segment, the remainder
// of the path following the segment, and whether the segment is the last of
// the path. It reports ok == false if path is empty or malformed at its start.
// Next does not allocate.
func Next(path string) (step Step, rest string, last, ok bool) {
	if path == "" {
		return Step{}, "", false, false
	}
	if path[0] == '#' {
		if len(path) < 2 || path[1] != '.' {
			return Step{}, path, false, false
		}
		rest = path[2:]
		return Step{Op: Wildcard, Key: "#"}, rest, rest == "", true
	}
	key, rest, found := strings.Cut(path, ".")
	return Step{Op: Key, Key: key}, rest, !found, true
}

func (e Expr) String() string {
	var buf strings.Builder
	for i, s := range e {
		switch s.Op {
		case Wildcard:
			buf.WriteString("#.")
		default:
			buf.WriteString(s.Key)
			if i < len(e)-1 {
				buf.WriteByte('.')
			}
		}
	}
	return buf.String()
}

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Key                // object member lookup by key
	Wildcard           // any array element (#.)
)

var opText = map[Op]string{
	Invalid:  "invalid",
	Key:      "key",
	Wildcard: "#.",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single segment of a path expression.
type Step struct {
	Op  Op
	Key string // the object key, for Key steps
}
