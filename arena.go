// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

// An Arena is fixed-capacity storage for tokens. Tokens are handed out in
// allocation order and are never freed individually; Reset releases all of
// them at once. The capacity of an arena never changes.
type Arena struct {
	toks []Token
	next int // index of the next free slot
}

// NewArena constructs an arena with capacity for n tokens. It panics if n < 0.
func NewArena(n int) *Arena {
	if n < 0 {
		panic("jarena: negative arena capacity")
	}
	return &Arena{toks: make([]Token, n)}
}

// ArenaOf constructs an arena that uses buf as its storage. The contents of
// buf are cleared, and the capacity of the arena is len(buf). The caller must
// not use buf directly while the arena is in use.
func ArenaOf(buf []Token) *Arena {
	clear(buf)
	return &Arena{toks: buf}
}

// Alloc returns a zeroed token from a, or nil if a is exhausted.
func (a *Arena) Alloc() *Token {
	if a.next >= len(a.toks) {
		return nil
	}
	t := &a.toks[a.next]
	*t = Token{}
	a.next++
	return t
}

// Reset zeroes all tokens in a and rewinds it to empty.
func (a *Arena) Reset() {
	// Slots at or beyond next are never written, so only the prefix needs
	// to be cleared.
	clear(a.toks[:a.next])
	a.next = 0
}

// Len reports the number of tokens currently allocated from a.
func (a *Arena) Len() int { return a.next }

// Cap reports the total capacity of a in tokens.
func (a *Arena) Cap() int { return len(a.toks) }
