// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

import (
	"github.com/creachadair/jarena/jpath"

	"go4.org/mem"
)

// find searches below t for the first token matching path, depth-first in
// document order. The recursion depth is bounded by the number of segments
// in path.
func find(t *Token, path string) *Token {
	step, rest, last, ok := jpath.Next(path)
	if !ok {
		return nil
	}

	if step.Op == jpath.Wildcard {
		if t.kind != Array {
			return nil
		}
		for c := t.child; c != nil; c = c.next {
			if last {
				return c
			}
			if v := find(c, rest); v != nil {
				return v
			}
		}
		return nil
	}

	if t.kind != Object {
		return nil
	}
	key := mem.S(step.Key)
	for c := t.child; c != nil; c = c.next {
		if !mem.B(c.name).Equal(key) {
			continue
		}
		if last {
			return c
		}
		// A later member with the same key may still match the rest.
		if v := find(c, rest); v != nil {
			return v
		}
	}
	return nil
}
