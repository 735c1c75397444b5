package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/hjson-format/go-hjson/format"
	"github.com/signadot/hjson-format/go-hjson/ir"
	"github.com/signadot/hjson-format/go-hjson/token"
)

type EncState struct {
	indent   int
	comments bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.comments {
		es.comments = !es.format.IsJSON()
	}
	e := &encoder{w: w, es: es}
	if es.comments {
		e.ws(v.Comments.Before)
	}
	e.value(v, 0)
	if es.comments {
		e.ws(v.Comments.After)
	}
	if e.last != '\n' {
		e.ws("\n")
	}
	return e.err
}

type encoder struct {
	w    io.Writer
	es   *EncState
	err  error
	last byte

	// lastBare marks that the previous token was a quoteless string,
	// which only a newline can safely terminate
	lastBare bool
}

func (e *encoder) ws(s string) {
	if e.err != nil || len(s) == 0 {
		return
	}
	_, e.err = io.WriteString(e.w, s)
	e.last = s[len(s)-1]
	e.lastBare = false
}

func (e *encoder) color(t ir.Type, a ColorAttr, s string) string {
	if e.es.Color == nil {
		return s
	}
	return e.es.Color(t, a, s)
}

func (e *encoder) nl(depth int) {
	e.ws("\n" + strings.Repeat(" ", depth*e.es.indent))
}

func (e *encoder) value(v *ir.Value, depth int) {
	switch v.Type {
	case ir.UndefinedType, ir.NullType:
		e.ws(e.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		e.ws(e.color(ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntType:
		e.ws(e.color(ir.IntType, ValueColor, strconv.FormatInt(v.Int64, 10)))
	case ir.FloatType:
		e.ws(e.color(ir.FloatType, ValueColor, formatFloat(v.Float64)))
	case ir.StringType:
		e.str(v.String, depth)
	case ir.VectorType:
		e.vector(v, depth)
	case ir.MapType:
		e.object(v, depth)
	default:
		if e.err == nil {
			e.err = fmt.Errorf("cannot encode %s", v.Type)
		}
	}
}

func (e *encoder) str(s string, depth int) {
	if e.es.format.IsJSON() {
		e.ws(e.color(ir.StringType, ValueColor, quoteString(s)))
		return
	}
	if strings.ContainsAny(s, "\n\r") {
		e.mlString(s, depth)
		return
	}
	if needsQuotes(s) {
		e.ws(e.color(ir.StringType, ValueColor, quoteString(s)))
		return
	}
	e.ws(e.color(ir.StringType, ValueColor, s))
	e.lastBare = true
}

func (e *encoder) mlString(s string, depth int) {
	e.nl(depth + 1)
	e.ws(e.color(ir.StringType, LiteralMultiColor, "'''"))
	for _, ln := range strings.Split(strings.ReplaceAll(s, "\r", ""), "\n") {
		e.nl(depth + 1)
		e.ws(e.color(ir.StringType, LiteralMultiColor, ln))
	}
	e.nl(depth + 1)
	e.ws(e.color(ir.StringType, LiteralMultiColor, "'''"))
}

func (e *encoder) vector(v *ir.Value, depth int) {
	e.ws(e.color(ir.VectorType, SepColor, "["))
	if v.Len() == 0 {
		if e.es.comments {
			e.ws(v.Comments.Inside)
		}
		e.ws(e.color(ir.VectorType, SepColor, "]"))
		return
	}
	for i, c := range v.Values {
		e.elemLead(c, depth)
		e.value(c, depth+1)
		if e.es.comments {
			bare := e.lastBare
			e.ws(c.Comments.After)
			e.elemSep(v, i, depth, bare)
		} else if e.es.format.IsJSON() && i < v.Len()-1 {
			e.ws(",")
		}
	}
	if e.last != '\n' {
		e.nl(depth)
	} else {
		e.ws(strings.Repeat(" ", depth*e.es.indent))
	}
	e.ws(e.color(ir.VectorType, SepColor, "]"))
}

func (e *encoder) object(v *ir.Value, depth int) {
	e.ws(e.color(ir.MapType, SepColor, "{"))
	if v.Len() == 0 {
		if e.es.comments {
			e.ws(v.Comments.Inside)
		}
		e.ws(e.color(ir.MapType, SepColor, "}"))
		return
	}
	for i, f := range v.Fields {
		c := v.Values[i]
		e.elemLead(c, depth)
		key := keyString(f)
		if e.es.format.IsJSON() {
			key = quoteString(f)
		}
		e.ws(e.color(ir.MapType, FieldColor, key))
		e.ws(e.color(ir.MapType, SepColor, ":"))
		// the Key slot holds the trivia around the ':', replayed here
		if e.es.comments {
			e.ws(c.Comments.Key)
		}
		if e.last == ':' {
			e.ws(" ")
		}
		e.value(c, depth+1)
		if e.es.comments {
			bare := e.lastBare
			e.ws(c.Comments.After)
			e.elemSep(v, i, depth, bare)
		} else if e.es.format.IsJSON() && i < v.Len()-1 {
			e.ws(",")
		}
	}
	if e.last != '\n' {
		e.nl(depth)
	} else {
		e.ws(strings.Repeat(" ", depth*e.es.indent))
	}
	e.ws(e.color(ir.MapType, SepColor, "}"))
}

// elemSep keeps replayed elements apart: the separating commas were
// tokens, not trivia, so they are re-synthesized unless a newline
// already divides the elements.
func (e *encoder) elemSep(v *ir.Value, i, depth int, bare bool) {
	if i == v.Len()-1 || e.last == '\n' {
		return
	}
	if strings.HasPrefix(v.Values[i+1].Comments.Before, "\n") {
		return
	}
	if bare {
		e.nl(depth + 1)
		return
	}
	e.ws(e.color(v.Type, SepColor, ","))
}

// elemLead positions the writer for the next element: replayed trivia
// when the element carries any, a fresh indented line otherwise.
func (e *encoder) elemLead(c *ir.Value, depth int) {
	if e.es.comments && c.Comments.Before != "" {
		e.ws(e.color(ir.NullType, CommentColor, c.Comments.Before))
		return
	}
	if e.last != '\n' {
		e.nl(depth + 1)
	} else {
		e.ws(strings.Repeat(" ", (depth+1)*e.es.indent))
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// needsQuotes reports whether s cannot be emitted as a quoteless
// string: when it is empty, looks like another token, carries
// surrounding whitespace, or contains bytes that would terminate or
// restart scanning mid-value.
func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	switch s[0] {
	case '{', '}', '[', ']', ',', ':', '"', '\'', '#':
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if _, ok := token.TryParseNumber([]byte(s)); ok {
		return true
	}
	// a quoteless string runs to end of line, so anything that could
	// swallow a separator when replayed inline gets quotes
	if strings.ContainsAny(s, ",{}[]:# \t") {
		return true
	}
	if strings.Contains(s, "//") || strings.Contains(s, "/*") {
		return true
	}
	return false
}

func keyString(k string) string {
	if k == "" {
		return `""`
	}
	if strings.ContainsAny(k, "{}[],: \t\n\r\"'#") {
		return quoteString(k)
	}
	return k
}

// quoteString renders s as a double-quoted string valid in both JSON
// and Hjson; control characters are \u-escaped.
func quoteString(s string) string {
	d := make([]byte, 0, len(s)+2)
	d = append(d, '"')
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, fmt.Sprintf("\\u%04x", r)...)
			} else {
				d = append(d, string(r)...)
			}
		}
	}
	return string(append(d, '"'))
}
