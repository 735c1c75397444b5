package token

import "fmt"

// ReadKeyname reads a map key. Quotes are optional unless the key
// contains one of {}[],: or whitespace; an unquoted key runs to the
// ':' separator, with surrounding whitespace left as trivia.
func ReadKeyname(s *Scanner) (string, error) {
	if s.Ch == '"' || s.Ch == '\'' {
		return ReadString(s, false)
	}

	// keyStart is the index of the first key byte, keyEnd the index of
	// the first byte after the key.
	keyStart := s.Pos()
	keyEnd := keyStart
	firstSpace := -1
	for {
		if s.Ch == ':' {
			if keyEnd <= keyStart {
				return "", s.ErrAt("Found ':' but no key name (for an empty key name use quotes)")
			} else if firstSpace >= 0 && firstSpace != keyEnd {
				s.SetNext(firstSpace + 1)
				return "", s.ErrAt("Found whitespace in your key name (use quotes to include)")
			}
			return string(s.Data[keyStart:keyEnd]), nil
		} else if s.Ch <= ' ' {
			if s.Ch == 0 {
				return "", s.ErrAt("Found EOF while looking for a key name (check your syntax)")
			}
			if firstSpace < 0 {
				firstSpace = s.Pos()
			}
		} else {
			if isPunctuator(s.Ch) {
				return "", s.ErrAt(fmt.Sprintf("Found '%c' where a key name was expected (check your syntax or use quotes if the key name includes {}[],: or whitespace)", s.Ch))
			}
			keyEnd = s.next
		}
		s.Next()
	}
}
