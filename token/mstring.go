package token

// ReadMLString reads a '''-delimited multiline string; the caller has
// consumed the opening triple quote. The opener's column, measured by
// walking backwards to the previous newline, is the maximum indent
// stripped from each body line; lines shorter than the indent lose all
// of their leading whitespace. '\r' is dropped, and a newline directly
// before the closing ''' is removed.
func ReadMLString(s *Scanner) (string, error) {
	var res []byte
	triple := 0

	// we are one past ''' - get indent
	indent := 0
	for {
		c := s.Peek(-indent - 5)
		if c == 0 || c == '\n' {
			break
		}
		indent++
	}

	skipIndent := func() {
		skip := indent
		for s.Ch > 0 && s.Ch <= ' ' && s.Ch != '\n' && skip > 0 {
			skip--
			s.Next()
		}
	}

	// skip inline whitespace up to the newline
	for s.Ch > 0 && s.Ch <= ' ' && s.Ch != '\n' {
		s.Next()
	}
	if s.Ch == '\n' {
		s.Next()
		skipIndent()
	}

	lastLf := false
	for {
		if s.Ch == 0 {
			return "", s.ErrAt("Bad multiline string")
		} else if s.Ch == '\'' {
			triple++
			s.Next()
			if triple == 3 {
				if lastLf {
					return string(res[:len(res)-1]), nil // remove last EOL
				}
				return string(res), nil
			}
			continue
		} else {
			for triple > 0 {
				res = append(res, '\'')
				triple--
				lastLf = false
			}
		}
		if s.Ch == '\n' {
			res = append(res, '\n')
			lastLf = true
			s.Next()
			skipIndent()
		} else {
			if s.Ch != '\r' {
				res = append(res, s.Ch)
				lastLf = false
			}
			s.Next()
		}
	}
}
