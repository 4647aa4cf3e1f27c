// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

import "fmt"

// A Parser parses JSON documents into a tree of tokens stored in an Arena.
// The tree produced by the most recent successful call to Parse remains valid
// until the next call to Parse or Reset.
type Parser struct {
	arena  *Arena
	root   Token
	stk    []frame // open containers, innermost last
	used   int     // tokens consumed by the last parse
	parsed bool
}

// A frame records an open container and its most recently added child.
type frame struct {
	tok, last *Token
}

// NewParser constructs a parser that stores tokens in a. The arena is reset.
func NewParser(a *Arena) *Parser {
	a.Reset()

	// Every open container except the root occupies a token of the arena, so
	// the stack can never be deeper than the arena capacity plus one.
	return &Parser{arena: a, stk: make([]frame, 0, a.Cap()+1)}
}

// New constructs a parser with its own arena of n tokens.
// It panics if n < 0.
func New(n int) *Parser { return NewParser(NewArena(n)) }

// Arena returns the arena used by p.
func (p *Parser) Arena() *Arena { return p.arena }

// Parse parses text, which must contain a single JSON object or array
// optionally surrounded by blanks. The text ends at its first NUL byte, if
// any. Tokens from any previous parse are discarded.
//
// If the input is not well-formed, Parse reports an error of concrete type
// *SyntaxError, matching ErrMalformed. If the arena cannot hold the document,
// Parse reports ErrOutOfTokens. After an error the tree is unusable: Root and
// Find return nil until a subsequent parse succeeds.
func (p *Parser) Parse(text []byte) error {
	p.Reset()

	in := newInput(text)
	in.skipBlank()
	switch in.peek() {
	case '{':
		p.root.kind = Object
	case '[':
		p.root.kind = Array
	default:
		return in.failf("got %s, want object or array", in.describe())
	}
	in.pos++
	p.stk = append(p.stk, frame{tok: &p.root})

	err := p.parseValues(&in)
	p.used = p.arena.Len() + 1
	if err != nil {
		return err
	}
	p.parsed = true
	return nil
}

// parseValues consumes the contents of the open containers until the root
// container is closed.
// Precondition: the root container is open and the cursor is past its
// opening delimiter.
func (p *Parser) parseValues(in *input) error {
	var needComma, afterComma bool
	for {
		in.skipBlank()
		if in.atEnd() {
			return in.failf("unexpected end of input")
		}
		top := &p.stk[len(p.stk)-1]
		ch := in.peek()

		// Check for the end of the current container.
		if ch == closerOf(top.tok.kind) {
			if afterComma {
				return in.failf("unexpected %q after comma", ch)
			}
			in.pos++
			p.stk = p.stk[:len(p.stk)-1]
			if len(p.stk) == 0 {
				in.skipBlank()
				if !in.atEnd() {
					return in.failf("unexpected %s after end of document", in.describe())
				}
				return nil
			}
			needComma = true // the container is a complete value of its parent
			continue
		}

		// Between values, only a comma may appear.
		if needComma {
			if ch != ',' {
				return in.failf("got %s, want \",\" or %q", in.describe(), closerOf(top.tok.kind))
			}
			in.pos++
			needComma, afterComma = false, true
			continue
		}

		// Check that a value (or key) can start here before consuming a token,
		// so that malformed input is not reported as exhaustion.
		if top.tok.kind == Object {
			if ch != '"' {
				return in.failf("got %s, want string", in.describe())
			}
		} else if !isValueStart(ch) {
			return in.failf("unexpected %s", in.describe())
		}

		t := p.arena.Alloc()
		if t == nil {
			return ErrOutOfTokens
		}
		if top.tok.kind == Object {
			if err := in.parseKey(t); err != nil {
				return err
			}
		}
		if top.last == nil {
			top.tok.child = t
		} else {
			top.last.next = t
		}
		top.last = t
		afterComma = false

		switch ch := in.peek(); {
		case ch == '{':
			t.kind = Object
		case ch == '[':
			t.kind = Array
		case ch == '"':
			text, err := in.scanString()
			if err != nil {
				return err
			}
			t.setString(text)
		case isNumStart(ch):
			if err := in.scanNumber(t); err != nil {
				return err
			}
		case ch == 't', ch == 'f', ch == 'n':
			if err := in.scanConstant(t); err != nil {
				return err
			}
		default:
			return in.failf("unexpected %s", in.describe())
		}

		if t.IsContainer() {
			in.pos++
			p.stk = append(p.stk, frame{tok: t})
			continue
		}
		needComma = true
	}
}

// parseKey consumes an object key and its colon into t.
func (in *input) parseKey(t *Token) error {
	name, err := in.scanString()
	if err != nil {
		return err
	}
	if in.peek() != ':' {
		return in.failf("got %s, want \":\"", in.describe())
	}
	in.pos++
	in.skipBlank()
	t.name = name
	return nil
}

// Reset discards the tree from the most recent parse and clears the arena.
func (p *Parser) Reset() {
	p.arena.Reset()
	p.root = Token{}
	p.stk = p.stk[:0]
	p.used = 0
	p.parsed = false
}

// Parsed reports whether the most recent call to Parse succeeded.
func (p *Parser) Parsed() bool { return p.parsed }

// Root returns the root token of the document, or nil if p does not hold a
// successfully-parsed document.
func (p *Parser) Root() *Token {
	if !p.parsed {
		return nil
	}
	return &p.root
}

// TokensUsed reports the number of tokens consumed by the most recent call to
// Parse, including the root token. It reports 0 after Reset, or if the input
// did not begin with an object or array. If Parse reported ErrOutOfTokens,
// the arena was filled, and TokensUsed reports its capacity plus the root.
func (p *Parser) TokensUsed() int { return p.used }

// Find returns the first token of the document matching path, or nil.
// Find returns nil if p does not hold a successfully-parsed document, if path
// is empty or malformed, or if no token matches.
func (p *Parser) Find(path string) *Token {
	if !p.parsed {
		return nil
	}
	return p.root.Find(path)
}

// closerOf returns the closing delimiter of a container of kind k.
func closerOf(k Kind) byte {
	if k == Object {
		return '}'
	}
	return ']'
}

func isValueStart(ch byte) bool {
	switch ch {
	case '{', '[', '"', 't', 'f', 'n':
		return true
	}
	return isNumStart(ch)
}

// Parse is a convenience function that parses text into a new parser with
// capacity for n tokens. It returns the parser only if parsing succeeded.
func Parse(text []byte, n int) (*Parser, error) {
	p := New(n)
	if err := p.Parse(text); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParse is as Parse, but panics if parsing fails.
func MustParse(text []byte, n int) *Parser {
	p, err := Parse(text, n)
	if err != nil {
		panic(fmt.Sprintf("jarena: parse failed: %v", err))
	}
	return p
}
