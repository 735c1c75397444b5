package token

// CommentSpan marks a run of trivia in the input buffer. Start is the
// position of the first consumed byte, End the position of the first
// unconsumed byte. Has reports whether the run should populate a
// comment slot under the caller's options.
type CommentSpan struct {
	Start int
	End   int
	Has   bool
}

// Text extracts the span's source bytes. The returned string is a copy;
// the tree never borrows from the input buffer.
func (ci CommentSpan) Text(data []byte) string {
	if !ci.Has {
		return ""
	}
	return string(data[ci.Start:ci.End])
}

// Raw extracts the span's source bytes whether or not the span is
// interesting.
func (ci CommentSpan) Raw(data []byte) string {
	return string(data[ci.Start:ci.End])
}

// TriviaOpts configures what counts as an interesting span.
// WhitespaceAsComments implies Comments.
type TriviaOpts struct {
	Comments             bool
	WhitespaceAsComments bool
}

// Trivia consumes any mix of whitespace (newlines included), "#" and
// "//" line comments, and "/* */" block comments. Block comments do not
// nest; an unterminated block comment runs to end of input.
func Trivia(s *Scanner, o TriviaOpts) CommentSpan {
	ci := CommentSpan{Start: s.Pos()}

	for s.Ch > 0 {
		for s.Ch > 0 && s.Ch <= ' ' {
			s.Next()
		}
		if s.Ch == '#' || (s.Ch == '/' && s.Peek(0) == '/') {
			if o.Comments {
				ci.Has = true
			}
			for s.Ch > 0 && s.Ch != '\n' {
				s.Next()
			}
		} else if s.Ch == '/' && s.Peek(0) == '*' {
			if o.Comments {
				ci.Has = true
			}
			s.Next()
			s.Next()
			for s.Ch > 0 && !(s.Ch == '*' && s.Peek(0) == '/') {
				s.Next()
			}
			if s.Ch > 0 {
				s.Next()
				s.Next()
			}
		} else {
			break
		}
	}

	ci.End = s.Pos()
	ci.Has = ci.Has || (o.WhitespaceAsComments && ci.End > ci.Start)
	return ci
}

// TriviaLine is Trivia with whitespace skipping stopped at '\n'. It
// collects the after-comment of a value: trivia up to end of line
// belongs to the value just parsed, anything beyond to the next node.
// A block comment opened before the newline still runs to its "*/".
func TriviaLine(s *Scanner, o TriviaOpts) CommentSpan {
	ci := CommentSpan{Start: s.Pos(), Has: o.WhitespaceAsComments}

	for s.Ch > 0 {
		for s.Ch > 0 && s.Ch <= ' ' && s.Ch != '\n' {
			s.Next()
		}
		if s.Ch == '#' || (s.Ch == '/' && s.Peek(0) == '/') {
			if o.Comments {
				ci.Has = true
			}
			for s.Ch > 0 && s.Ch != '\n' {
				s.Next()
			}
		} else if s.Ch == '/' && s.Peek(0) == '*' {
			if o.Comments {
				ci.Has = true
			}
			s.Next()
			s.Next()
			for s.Ch > 0 && !(s.Ch == '*' && s.Peek(0) == '/') {
				s.Next()
			}
			if s.Ch > 0 {
				s.Next()
				s.Next()
			}
		} else {
			break
		}
	}

	ci.End = s.Pos()
	return ci
}
