package parse

import (
	"bytes"
	"testing"
)

// The parser must never panic, and parsing is deterministic.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"{a:1}",
		"[1,2,3,]",
		"# c\na: b c\n",
		"'''\n  x\n  '''",
		"{a: \"x\\u0041\"}",
		"a: 1 # t\nb: [true, null]\n",
		"{{",
		"[}",
		"{a: 'unter",
		"\"\\ud800\"",
		"-",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		v1, err1 := Parse(data, WhitespaceAsComments(true))
		v2, err2 := Parse(data, WhitespaceAsComments(true))
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("nondeterministic error: %v vs %v", err1, err2)
		}
		if err1 != nil {
			if _, ok := AsSyntaxError(err1); !ok {
				t.Fatalf("non-syntax parse error: %v", err1)
			}
			return
		}
		d1, err := v1.MarshalJSON()
		if err != nil {
			return
		}
		d2, _ := v2.MarshalJSON()
		if !bytes.Equal(d1, d2) {
			t.Fatalf("nondeterministic tree: %s vs %s", d1, d2)
		}
	})
}
