package parse

import (
	"errors"

	"github.com/signadot/hjson-format/go-hjson/token"
)

// AsSyntaxError unwraps err to the positioned syntax error the parser
// raised, if any.
func AsSyntaxError(err error) (*token.SyntaxError, bool) {
	var se *token.SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
