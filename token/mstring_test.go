package token

import (
	"strings"
	"testing"
)

// mlAt positions a scanner on the first '\'' of src and reads the
// string through ReadString's multiline switch.
func mlAt(t *testing.T, src string) (string, error) {
	t.Helper()
	s := NewScanner([]byte(src))
	for s.Ch != '\'' {
		if !s.Next() {
			t.Fatalf("no quote in %q", src)
		}
	}
	return ReadString(s, true)
}

func TestReadMLString(t *testing.T) {
	mts := []struct {
		in   string
		want string
		e    string
	}{
		{in: "'''\nhello\n'''", want: "hello"},
		{in: "  '''\n  hello\n  world\n  '''", want: "hello\nworld"},
		{in: "  '''\n  hello\n  '''", want: "hello"},
		// lines shorter than the opening indent lose all leading
		// whitespace
		{in: "    '''\n  a\n    b\n    '''", want: "a\nb"},
		// extra indentation beyond the opener's is content
		{in: "  '''\n    deep\n  '''", want: "  deep"},
		// fewer than three quotes are literal
		{in: "'''\nit''s\n'''", want: "it''s"},
		// carriage returns are dropped
		{in: "'''\r\nhello\r\n'''", want: "hello"},
		// inline body, no trailing newline to trim
		{in: "'''hello'''", want: "hello"},
		{in: "'''\nhello", e: "Bad multiline string"},
	}
	for _, mt := range mts {
		got, err := mlAt(t, mt.in)
		if mt.e != "" {
			if err == nil {
				t.Errorf("%q: expected error %q, got %q", mt.in, mt.e, got)
			} else if !strings.Contains(err.Error(), mt.e) {
				t.Errorf("%q: error %q does not contain %q", mt.in, err, mt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", mt.in, err)
			continue
		}
		if got != mt.want {
			t.Errorf("%q: got %q, want %q", mt.in, got, mt.want)
		}
	}
}
