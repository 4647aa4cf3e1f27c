// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jarena

// A Handler receives events from Walk describing the structure of a token
// tree. If a method reports an error, the walk stops and that error is
// returned to the caller. Walk ensures that corresponding Begin and End
// methods are correctly paired for a complete walk.
//
// Object members are reported as their values; use Token.Name to recover the
// key of a member.
type Handler interface {
	// Begin a new object.
	BeginObject(t *Token) error

	// End the most-recently-begun object.
	EndObject(t *Token) error

	// Begin a new array.
	BeginArray(t *Token) error

	// End the most-recently-begun array.
	EndArray(t *Token) error

	// Report a string, number, or constant value.
	Value(t *Token) error
}

// Walk traverses the tree rooted at t in document order, delivering events
// to h. The recursion depth of Walk is bounded by the nesting depth of the
// tree. If t == nil, Walk does nothing.
func Walk(t *Token, h Handler) error {
	if t == nil {
		return nil
	}
	switch t.kind {
	case Object:
		if err := h.BeginObject(t); err != nil {
			return err
		}
		if err := walkChildren(t, h); err != nil {
			return err
		}
		return h.EndObject(t)
	case Array:
		if err := h.BeginArray(t); err != nil {
			return err
		}
		if err := walkChildren(t, h); err != nil {
			return err
		}
		return h.EndArray(t)
	default:
		return h.Value(t)
	}
}

func walkChildren(t *Token, h Handler) error {
	for c := t.child; c != nil; c = c.next {
		if err := Walk(c, h); err != nil {
			return err
		}
	}
	return nil
}
