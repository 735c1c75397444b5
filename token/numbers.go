package token

import (
	"strconv"

	"github.com/signadot/hjson-format/go-hjson/ir"
)

// TryParseNumber parses d as a JSON number. Integral values that fit
// int64 yield an Int value, everything else a Float. It reports false
// when d is not exactly a number (leading zeros included).
func TryParseNumber(d []byte) (*ir.Value, bool) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return nil, false
	}
	if digits > 1 && d[i] == '0' {
		// leading zero, rfc 7159
		return nil, false
	}
	f := fract(d[i+digits:])
	e := exp(d[i+digits+f:])
	if i+digits+f+e != len(d) {
		return nil, false
	}
	if f+e == 0 {
		n, err := strconv.ParseInt(string(d), 10, 64)
		if err == nil {
			return ir.FromInt(n), true
		}
		// out of int64 range, fall through to float
	}
	fl, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return nil, false
	}
	return ir.FromFloat(fl), true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 7159
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
