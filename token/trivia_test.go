package token

import "testing"

func TestTrivia(t *testing.T) {
	tts := []struct {
		in   string
		o    TriviaOpts
		text string
		has  bool
		stop byte
	}{
		{in: "  x", o: TriviaOpts{Comments: true}, text: "  ", has: false, stop: 'x'},
		{in: "  x", o: TriviaOpts{Comments: true, WhitespaceAsComments: true}, text: "  ", has: true, stop: 'x'},
		{in: "# c\nx", o: TriviaOpts{Comments: true}, text: "# c\n", has: true, stop: 'x'},
		{in: "# c\nx", o: TriviaOpts{}, text: "# c\n", has: false, stop: 'x'},
		{in: "// c\n  x", o: TriviaOpts{Comments: true}, text: "// c\n  ", has: true, stop: 'x'},
		{in: "/* a\nb */x", o: TriviaOpts{Comments: true}, text: "/* a\nb */", has: true, stop: 'x'},
		{in: "/* open", o: TriviaOpts{Comments: true}, text: "/* open", has: true, stop: 0},
		{in: "x", o: TriviaOpts{WhitespaceAsComments: true}, text: "", has: false, stop: 'x'},
		{in: " \t\n # a\n // b\n /* c */ x", o: TriviaOpts{Comments: true}, text: " \t\n # a\n // b\n /* c */ ", has: true, stop: 'x'},
	}
	for _, tt := range tts {
		s := NewScanner([]byte(tt.in))
		ci := Trivia(s, tt.o)
		if got := ci.Raw(s.Data); got != tt.text {
			t.Errorf("%q: span %q, want %q", tt.in, got, tt.text)
		}
		if ci.Has != tt.has {
			t.Errorf("%q: has %v, want %v", tt.in, ci.Has, tt.has)
		}
		if s.Ch != tt.stop {
			t.Errorf("%q: stopped on %q, want %q", tt.in, s.Ch, tt.stop)
		}
	}
}

func TestTriviaLine(t *testing.T) {
	tts := []struct {
		in   string
		o    TriviaOpts
		text string
		has  bool
		stop byte
	}{
		// whitespace skipping stops at the newline
		{in: "  \nx", o: TriviaOpts{Comments: true}, text: "  ", has: false, stop: '\n'},
		{in: " # c\nx", o: TriviaOpts{Comments: true}, text: " # c", has: true, stop: '\n'},
		{in: " // c\nx", o: TriviaOpts{Comments: true}, text: " // c", has: true, stop: '\n'},
		// a block comment opened before the newline runs to its close
		{in: " /* a\nb */ x", o: TriviaOpts{Comments: true}, text: " /* a\nb */ ", has: true, stop: 'x'},
		{in: "x", o: TriviaOpts{WhitespaceAsComments: true}, text: "", has: true, stop: 'x'},
	}
	for _, tt := range tts {
		s := NewScanner([]byte(tt.in))
		ci := TriviaLine(s, tt.o)
		if got := ci.Raw(s.Data); got != tt.text {
			t.Errorf("%q: span %q, want %q", tt.in, got, tt.text)
		}
		if ci.Has != tt.has {
			t.Errorf("%q: has %v, want %v", tt.in, ci.Has, tt.has)
		}
		if s.Ch != tt.stop {
			t.Errorf("%q: stopped on %q, want %q", tt.in, s.Ch, tt.stop)
		}
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner([]byte("ab"))
	if s.Ch != 'a' || s.Pos() != 0 {
		t.Fatalf("ch %q pos %d", s.Ch, s.Pos())
	}
	if s.Peek(0) != 'b' || s.Peek(-1) != 'a' || s.Peek(5) != 0 || s.Peek(-5) != 0 {
		t.Fatal("peek")
	}
	if !s.Next() || s.Ch != 'b' {
		t.Fatal("next")
	}
	if s.Next() {
		t.Fatal("expected EOF")
	}
	if s.Ch != 0 {
		t.Fatal("EOF sentinel")
	}
	// the cursor keeps moving past the end on repeated reads at EOF
	s.Next()
	if s.Pos() <= len(s.Data)-1 {
		t.Fatalf("pos %d", s.Pos())
	}
	s.Reset()
	if s.Ch != 'a' {
		t.Fatal("reset")
	}
}

func TestErrAt(t *testing.T) {
	s := NewScanner([]byte("a: 1\nbb: 2\ncc: [x y\n"))
	for s.Ch != '[' {
		s.Next()
	}
	err := s.ErrAt("boom")
	if err.Line != 3 {
		t.Errorf("line %d, want 3", err.Line)
	}
	if err.Col != 4 {
		t.Errorf("col %d, want 4", err.Col)
	}
	if err.Context != "cc: [x y\n" {
		t.Errorf("context %q", err.Context)
	}
	if got, want := err.Error(), "boom at line 3,4 >>> cc: [x y\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
