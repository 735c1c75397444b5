package token

import (
	"fmt"

	"github.com/signadot/hjson-format/go-hjson/debug"
	"github.com/signadot/hjson-format/go-hjson/ir"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ReadTfnns reads a quoteless value: true, false, null, a number, or a
// bare string running to end of line or to a trailing "#", "//" or "/*"
// comment marker. On return the scanner sits
// immediately after the last byte of the value, so that trailing
// whitespace up to the newline can be attributed to the after-comment.
func ReadTfnns(s *Scanner) (*ir.Value, error) {
	ret, valEnd, err := readTfnns(s)
	if err != nil {
		return nil, err
	}
	// Make sure that we include whitespace after the value in the
	// after-comment.
	s.SetNext(valEnd)
	s.Next()
	if debug.Token() {
		debug.Logf("token: tfnns %s ending at %d\n", ret.Type, valEnd)
	}
	return ret, nil
}

func readTfnns(s *Scanner) (*ir.Value, int, error) {
	if isPunctuator(s.Ch) {
		return nil, 0, s.ErrAt(fmt.Sprintf("Found a punctuator character '%c' when expecting a quoteless string (check your syntax)", s.Ch))
	}
	valStart := s.Pos()
	valEnd := 0

	if isSpace(s.Ch) {
		valStart++
	} else {
		// valEnd is the first byte after the value.
		valEnd = s.next
	}

	for {
		s.Next()
		isEol := s.Ch == '\r' || s.Ch == '\n' || s.Ch == 0
		isComment := s.Ch == '#' ||
			(s.Ch == '/' && (s.Peek(0) == '/' || s.Peek(0) == '*'))
		if isEol || isComment ||
			s.Ch == ',' || s.Ch == '}' || s.Ch == ']' {
			// at EOF the cursor has run past the buffer; an empty
			// slice stands in for the missing value
			vs, ve := valStart, valEnd
			if n := len(s.Data); ve > n {
				ve = n
			}
			if vs > ve {
				vs = ve
			}
			val := s.Data[vs:ve]

			switch {
			case len(val) == 5 && string(val) == "false":
				return ir.FromBool(false), valEnd, nil
			case len(val) == 4 && string(val) == "null":
				return ir.Null(), valEnd, nil
			case len(val) == 4 && string(val) == "true":
				return ir.FromBool(true), valEnd, nil
			default:
				if len(val) > 0 && (val[0] == '-' || (val[0] >= '0' && val[0] <= '9')) {
					if number, ok := TryParseNumber(val); ok {
						return number, valEnd, nil
					}
				}
			}
			if isEol || isComment {
				// a ,/}/] mid-line is literal content and scanning
				// continues; end of line or a trailing comment marker
				// ends the string
				return ir.FromString(string(val)), valEnd, nil
			}
		}
		if isSpace(s.Ch) {
			if valEnd <= valStart {
				valStart++
			}
		} else {
			valEnd = s.next
		}
	}
}
