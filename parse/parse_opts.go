package parse

import (
	"github.com/signadot/hjson-format/go-hjson/ir"
	"github.com/signadot/hjson-format/go-hjson/token"
)

// DuplicateKeyHandler runs at the root level before the uniqueness
// check. It may rewrite key in place, typically to de-duplicate it
// against the fields already present in m.
type DuplicateKeyHandler func(key *string, m *ir.Value)

type parseOpts struct {
	comments              bool
	whitespaceAsComments  bool
	duplicateKeyException bool
	duplicateKeyHandler   DuplicateKeyHandler
}

func (o *parseOpts) triviaOpts() token.TriviaOpts {
	return token.TriviaOpts{
		Comments:             o.comments,
		WhitespaceAsComments: o.whitespaceAsComments,
	}
}

type ParseOption func(*parseOpts)

// ParseComments populates the comment slots from "#", "//" and "/* */"
// trivia.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// WhitespaceAsComments populates the comment slots from all trivia,
// whitespace included. It implies ParseComments.
func WhitespaceAsComments(v bool) ParseOption {
	return func(o *parseOpts) { o.whitespaceAsComments = v }
}

// DuplicateKeyException makes the parser fail when a map key is already
// defined in the current map.
func DuplicateKeyException(v bool) ParseOption {
	return func(o *parseOpts) { o.duplicateKeyException = v }
}

// WithDuplicateKeyHandler installs a handler invoked for every key at
// the root level, before the duplicate check.
func WithDuplicateKeyHandler(h DuplicateKeyHandler) ParseOption {
	return func(o *parseOpts) { o.duplicateKeyHandler = h }
}
