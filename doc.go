// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jarena implements an allocation-free JSON parser that builds a
// tree of tokens in a fixed-capacity arena.
//
// # Parsing
//
// A Parser is bound to an Arena whose capacity bounds the number of values a
// document may contain. Construct a parser and call its Parse method with a
// complete JSON text whose top-level value is an object or an array:
//
//	p := jarena.New(64)
//	if err := p.Parse(input); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse reports an error matching ErrMalformed if the input is not valid JSON,
// or ErrOutOfTokens if the arena is too small for the document. After either
// error the tree must not be used. Parsing does not allocate: each value of
// the input occupies one token of the arena, and string payloads and object
// keys are slices of the input text.
//
// The input must not be modified while any token derived from it is in use.
// A NUL byte in the input is treated as the end of the text.
//
// # Tokens
//
// Each Token records one JSON value. Object members carry their key, which is
// reported by the Name method. Containers link to their first child, and the
// children of a container are linked in document order:
//
//	for t := range p.Root().All() {
//	   name, _ := t.Name()
//	   log.Printf("%s: %v", name, t.Kind())
//	}
//
// String payloads are reported exactly as written, without decoding escape
// sequences. Use Token.Unquote to decode a string value on demand.
//
// # Search
//
// The Find method locates the first value matching a dot-separated path of
// object keys. A path segment of "#." matches any element of an array:
//
//	t := p.Find("items.#.id")  // id of the first element of items that has one
//
// Find returns nil if no value matches. Use the jpath package to check the
// syntax of a path separately. The recursion depth of a search is bounded by
// the number of segments in the path.
//
// # Concurrency
//
// A Parser and its Arena are not safe for concurrent use. Confine each parser
// to a single goroutine, or synchronize access externally.
package jarena
