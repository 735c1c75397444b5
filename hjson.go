// Package hjson decodes Hjson documents — a superset of JSON designed
// for human editing — into trees of ir.Values, preserving every comment
// and piece of interstitial whitespace so the document can later be
// re-emitted with its original formatting.
package hjson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/ir"
	"github.com/signadot/hjson-format/go-hjson/parse"
)

// ErrFile wraps file open and read failures from UnmarshalFromFile.
var ErrFile = errors.New("file error")

// Unmarshal parses Hjson-encoded data and returns a tree of Values.
// A nil slice yields an undefined Value; an empty document yields an
// empty map. The input buffer is not retained by the returned tree.
func Unmarshal(data []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	if data == nil {
		return &ir.Value{PosKey: -1}, nil
	}
	return parse.Parse(data, opts...)
}

// UnmarshalString is Unmarshal on a string.
func UnmarshalString(data string, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse([]byte(data), opts...)
}

// UnmarshalFromFile reads the whole file, strips any trailing NUL
// bytes, one trailing newline, and one trailing carriage return, and
// decodes the rest.
func UnmarshalFromFile(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q for reading: %v", ErrFile, path, err)
	}
	n := len(data)
	for n > 0 && data[n-1] == 0 {
		n--
	}
	if n > 0 && data[n-1] == '\n' {
		n--
	}
	if n > 0 && data[n-1] == '\r' {
		n--
	}
	return parse.Parse(data[:n], opts...)
}

// Decode drains r and decodes the result.
func Decode(r io.Reader, opts ...parse.ParseOption) (*ir.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(data, opts...)
}
