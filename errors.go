// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is reported when the input is not well-formed JSON.
	// Errors with this cause have concrete type *SyntaxError.
	ErrMalformed = errors.New("malformed JSON input")

	// ErrOutOfTokens is reported when the arena does not have enough tokens
	// to hold the document.
	ErrOutOfTokens = errors.New("out of tokens")
)

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input
	Location LineCol // line and column of Offset
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. A *SyntaxError always wraps ErrMalformed.
func (s *SyntaxError) Unwrap() error { return ErrMalformed }

// Status summarizes the outcome of a parse.
type Status byte

// Constants defining the valid Status values.
const (
	OK             Status = iota // the document was parsed
	MalformedInput               // the input is not valid JSON
	OutOfTokens                  // the arena is too small for the document
)

var statusStr = [...]string{
	OK:             "ok",
	MalformedInput: "malformed input",
	OutOfTokens:    "out of tokens",
}

func (s Status) String() string {
	if int(s) >= len(statusStr) {
		return "invalid status"
	}
	return statusStr[s]
}

// StatusOf reports the Status corresponding to an error returned by
// Parser.Parse.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrOutOfTokens):
		return OutOfTokens
	default:
		return MalformedInput
	}
}

type kindError struct{ want, got Kind }

func (k *kindError) Error() string { return fmt.Sprintf("got %v, want %v", k.got, k.want) }
