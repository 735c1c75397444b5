package token

import "fmt"

func escapee(c byte) byte {
	switch c {
	case '"', '\'', '\\', '/':
		return c
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return 0
}

// appendUTF8 encodes a code point the way the wire format defines it:
// each \uXXXX escape yields an independent code point, so surrogate
// halves are encoded as-is rather than paired.
func appendUTF8(res []byte, u uint32) []byte {
	switch {
	case u < 0x80:
		return append(res, byte(u))
	case u < 0x800:
		return append(res, 0xc0|byte(u>>6)&0x1f, 0x80|byte(u)&0x3f)
	case u < 0x10000:
		return append(res, 0xe0|byte(u>>12)&0xf, 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
	case u < 0x110000:
		return append(res, 0xf0|byte(u>>18)&0x7, 0x80|byte(u>>12)&0x3f, 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
	}
	panic("invalid unicode code point")
}

// ReadString reads a quoted string; the caller guarantees Ch is '"' or
// '\''. The decoded bytes are accumulated in a fresh buffer since
// escapes change the length. With allowML, an empty single-quoted body
// followed by a third '\'' switches to multiline mode.
func ReadString(s *Scanner, allowML bool) (string, error) {
	var res []byte

	exitCh := s.Ch
	for s.Next() {
		if s.Ch == exitCh {
			s.Next()
			if allowML && exitCh == '\'' && s.Ch == '\'' && len(res) == 0 {
				// ''' indicates a multiline string
				s.Next()
				return ReadMLString(s)
			}
			return string(res), nil
		}
		if s.Ch == '\\' {
			s.Next()
			if s.Ch == 'u' {
				var uffff uint32
				for i := 0; i < 4; i++ {
					s.Next()
					var hex uint32
					switch {
					case s.Ch >= '0' && s.Ch <= '9':
						hex = uint32(s.Ch - '0')
					case s.Ch >= 'a' && s.Ch <= 'f':
						hex = uint32(s.Ch-'a') + 0xa
					case s.Ch >= 'A' && s.Ch <= 'F':
						hex = uint32(s.Ch-'A') + 0xa
					default:
						return "", s.ErrAt(fmt.Sprintf("Bad \\u char %c", s.Ch))
					}
					uffff = uffff*16 + hex
				}
				res = appendUTF8(res, uffff)
			} else if ech := escapee(s.Ch); ech != 0 {
				res = append(res, ech)
			} else {
				return "", s.ErrAt(fmt.Sprintf("Bad escape \\%c", s.Ch))
			}
		} else if s.Ch == '\n' || s.Ch == '\r' {
			return "", s.ErrAt("Bad string containing newline")
		} else {
			res = append(res, s.Ch)
		}
	}

	return "", s.ErrAt("Bad string")
}
