package jpath_test

import (
	"testing"

	"github.com/creachadair/jarena/jpath"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  jpath.Expr
	}{
		{"a", jpath.Expr{{Op: jpath.Key, Key: "a"}}},
		{"a.b", jpath.Expr{{Op: jpath.Key, Key: "a"}, {Op: jpath.Key, Key: "b"}}},
		{"c.#.d", jpath.Expr{
			{Op: jpath.Key, Key: "c"},
			{Op: jpath.Wildcard, Key: "#"},
			{Op: jpath.Key, Key: "d"},
		}},
		{"c.#.", jpath.Expr{{Op: jpath.Key, Key: "c"}, {Op: jpath.Wildcard, Key: "#"}}},
		{"#.#.", jpath.Expr{{Op: jpath.Wildcard, Key: "#"}, {Op: jpath.Wildcard, Key: "#"}}},
		{".x", jpath.Expr{{Op: jpath.Key, Key: ""}, {Op: jpath.Key, Key: "x"}}},
		{"a#.b", jpath.Expr{{Op: jpath.Key, Key: "a#"}, {Op: jpath.Key, Key: "b"}}},
		{"apple sauce.pear", jpath.Expr{{Op: jpath.Key, Key: "apple sauce"}, {Op: jpath.Key, Key: "pear"}}},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, e); diff != "" {
			t.Errorf("Parse %q (-want, +got):\n%s", test.input, diff)
		}
		if got := e.String(); got != test.input {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, test.input)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"#",
		"a.#",
		"#x",
		"a.#b",
		"a.",
		"a.b.",
	}
	for _, input := range tests {
		e, err := jpath.Parse(input)
		if err == nil {
			t.Errorf("Parse %q: got %v, want error", input, e)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		path     string
		step     jpath.Step
		rest     string
		last, ok bool
	}{
		{"", jpath.Step{}, "", false, false},
		{"#", jpath.Step{}, "#", false, false},
		{"#a", jpath.Step{}, "#a", false, false},
		{"a", jpath.Step{Op: jpath.Key, Key: "a"}, "", true, true},
		{"a.b.c", jpath.Step{Op: jpath.Key, Key: "a"}, "b.c", false, true},
		{"a.", jpath.Step{Op: jpath.Key, Key: "a"}, "", false, true},
		{"#.", jpath.Step{Op: jpath.Wildcard, Key: "#"}, "", true, true},
		{"#.x", jpath.Step{Op: jpath.Wildcard, Key: "#"}, "x", false, true},
	}
	for _, test := range tests {
		step, rest, last, ok := jpath.Next(test.path)
		if step != test.step || rest != test.rest || last != test.last || ok != test.ok {
			t.Errorf("Next(%q): got (%v, %q, %v, %v), want (%v, %q, %v, %v)",
				test.path, step, rest, last, ok, test.step, test.rest, test.last, test.ok)
		}
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[jpath.Op]string{
		jpath.Invalid:  "invalid",
		jpath.Key:      "key",
		jpath.Wildcard: "#.",
		jpath.Op(99):   "invalid",
	} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String(): got %q, want %q", op, got, want)
		}
	}
}
