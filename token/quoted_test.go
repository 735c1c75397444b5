package token

import (
	"strings"
	"testing"
)

type quotedTest struct {
	in   string
	want string
	e    string
}

func TestReadString(t *testing.T) {
	qts := []quotedTest{
		{in: `"hello"`, want: "hello"},
		{in: `'hello'`, want: "hello"},
		{in: `""`, want: ""},
		{in: `"a\tb"`, want: "a\tb"},
		{in: `"a\"b"`, want: `a"b`},
		{in: `"a\\b"`, want: `a\b`},
		{in: `"a\/b"`, want: "a/b"},
		{in: `"\b\f\n\r\t"`, want: "\b\f\n\r\t"},
		{in: `"\u0041"`, want: "A"},
		{in: `"\u00e9"`, want: "é"},
		{in: `"\u672c"`, want: "本"},
		{in: `"\u0041\u0042"`, want: "AB"},
		{in: `"caf\u00e9 \u672c"`, want: "café 本"},
		{in: `"a`, e: "Bad string"},
		{in: `"a\qb"`, e: `Bad escape \q`},
		{in: `"\u00g1"`, e: `Bad \u char g`},
		{in: "\"a\nb\"", e: "Bad string containing newline"},
		{in: "'a\rb'", e: "Bad string containing newline"},
	}
	for _, qt := range qts {
		s := NewScanner([]byte(qt.in))
		got, err := ReadString(s, true)
		if qt.e != "" {
			if err == nil {
				t.Errorf("%q: expected error %q, got %q", qt.in, qt.e, got)
			} else if !strings.Contains(err.Error(), qt.e) {
				t.Errorf("%q: error %q does not contain %q", qt.in, err, qt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", qt.in, err)
			continue
		}
		if got != qt.want {
			t.Errorf("%q: got %q, want %q", qt.in, got, qt.want)
		}
	}
}

func TestReadStringSurrogate(t *testing.T) {
	// each \u escape stands alone; a lone surrogate half is encoded
	// as-is rather than rejected or paired
	s := NewScanner([]byte(`"\ud83d"`))
	got, err := ReadString(s, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xed, 0xa0, 0xbd}
	if got != string(want) {
		t.Errorf("got % x, want % x", []byte(got), want)
	}
}

func TestReadStringMLSwitch(t *testing.T) {
	s := NewScanner([]byte("'''\nhi\n'''"))
	got, err := ReadString(s, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}

	// no multiline switch for keys
	s = NewScanner([]byte("'''"))
	got, err = ReadString(s, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestReadStringLeavesCursor(t *testing.T) {
	s := NewScanner([]byte(`"ab"rest`))
	if _, err := ReadString(s, true); err != nil {
		t.Fatal(err)
	}
	if s.Ch != 'r' {
		t.Errorf("cursor at %q, want 'r'", s.Ch)
	}
}
