package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/hjson-format/go-hjson/format"
	"github.com/signadot/hjson-format/go-hjson/ir"
	"github.com/signadot/hjson-format/go-hjson/parse"
)

func roundTrip(t *testing.T, in string, opts ...EncodeOption) string {
	t.Helper()
	v, err := parse.Parse([]byte(in), parse.WhitespaceAsComments(true))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		t.Fatalf("encode %q: %v", in, err)
	}
	return buf.String()
}

// encoding and re-parsing preserves semantics
func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		"{a: 1, b: 2, c: [true, null], d: {e: 1.5}}",
		"a: 1\nb: two\nc: [true, null]\n",
		"# top\n{\n  // k\n  x: y\n}\n",
		"[1, 2, 3]",
		"a: '''\n   line one\n   line two\n   '''",
		"{s: \"quoted, string\"}",
		"{}",
		"[]",
		"42",
		`"hi"`,
	}
	for _, in := range docs {
		want, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		wj, _ := want.MarshalJSON()
		for _, opts := range [][]EncodeOption{
			nil,
			{EncodeComments(true)},
			{EncodeFormat(format.JSONFormat)},
		} {
			out := roundTrip(t, in, opts...)
			got, err := parse.Parse([]byte(out))
			if err != nil {
				t.Errorf("%q: reparse of %q: %v", in, out, err)
				continue
			}
			gj, _ := got.MarshalJSON()
			if string(gj) != string(wj) {
				t.Errorf("%q: round trip changed %s to %s (via %q)", in, wj, gj, out)
			}
		}
	}
}

// with comments replayed from whitespace-bearing slots, simple
// documents come back verbatim
func TestEncodeCommentReplay(t *testing.T) {
	in := "# top\n{\n  // k\n  x: y\n}\n"
	out := roundTrip(t, in, EncodeComments(true))
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestEncodeJSON(t *testing.T) {
	v := ir.New(ir.MapType)
	v.Set("a b", ir.FromString("x\ny"))
	v.Set("n", ir.FromInt(2))
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	out := strings.TrimSpace(buf.String())
	if !strings.Contains(out, `"a b"`) || !strings.Contains(out, `"x\ny"`) {
		t.Errorf("got %q", out)
	}
}

func TestNeedsQuotes(t *testing.T) {
	quoted := []string{"", " x", "x ", "hello world", "true", "false", "null", "3", "-2.5", "{x", "a,b", "a#b", "a//b", "'q"}
	for _, s := range quoted {
		if !needsQuotes(s) {
			t.Errorf("%q: expected quotes", s)
		}
	}
	bare := []string{"hello", "a/b", "truex", "x-1"}
	for _, s := range bare {
		if needsQuotes(s) {
			t.Errorf("%q: expected quoteless", s)
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromInt(5)); got != "5" {
		t.Errorf("got %q", got)
	}
}
