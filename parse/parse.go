package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/hjson-format/go-hjson/debug"
	"github.com/signadot/hjson-format/go-hjson/ir"
	"github.com/signadot/hjson-format/go-hjson/token"
)

type parseState int

const (
	valueBegin parseState = iota
	valueEnd
	vectorBegin
	vectorElemEnd
	mapBegin
	mapElemBegin
	mapElemEnd
)

func (st parseState) String() string {
	return map[parseState]string{
		valueBegin:    "ValueBegin",
		valueEnd:      "ValueEnd",
		vectorBegin:   "VectorBegin",
		vectorElemEnd: "VectorElemEnd",
		mapBegin:      "MapBegin",
		mapElemBegin:  "MapElemBegin",
		mapElemEnd:    "MapElemEnd",
	}[st]
}

// frame holds per-container scratch while its value is being built:
// the accumulating value, the key being parsed, and the pending trivia
// spans for the next child.
type frame struct {
	val *ir.Value
	key string

	ciBefore     token.CommentSpan
	ciKey        token.CommentSpan
	ciElemBefore token.CommentSpan
	ciElemExtra  token.CommentSpan

	posKey  int
	posItem int
	isRoot  bool
}

type parser struct {
	s             *token.Scanner
	opt           *parseOpts
	withoutBraces bool
	states        []parseState
	frames        []*frame
}

// Parse decodes an Hjson document into an ir tree. Strict JSON is a
// subset of the accepted input.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.whitespaceAsComments {
		o.comments = true
	}
	p := &parser{s: token.NewScanner(d), opt: o}
	return p.rootValue()
}

func (p *parser) top() *frame {
	return p.frames[len(p.frames)-1]
}

func (p *parser) popFrame() *frame {
	f := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	return f
}

func (p *parser) pushState(st parseState) {
	p.states = append(p.states, st)
}

func (p *parser) setState(st parseState) {
	p.states[len(p.states)-1] = st
}

func (p *parser) popState() {
	p.states = p.states[:len(p.states)-1]
}

func (p *parser) white() token.CommentSpan {
	return token.Trivia(p.s, p.opt.triviaOpts())
}

func (p *parser) commentAfter() token.CommentSpan {
	return token.TriviaLine(p.s, p.opt.triviaOpts())
}

// setComment1 writes the span's text into the slot only when the span
// is interesting, leaving any existing text alone otherwise.
func (p *parser) setComment1(dst *string, ci token.CommentSpan) {
	if ci.Has {
		*dst = ci.Text(p.s.Data)
	}
}

// setComment2 always writes: the concatenation of the two spans'
// texts, which is empty when neither is interesting. Comment
// concatenation never drops bytes.
func (p *parser) setComment2(dst *string, ciA, ciB token.CommentSpan) {
	*dst = ciA.Text(p.s.Data) + ciB.Text(p.s.Data)
}

// appendAfter extends a value's after-comment with the trivia read
// past it. When the value already carries an after-comment (an inline
// comment from its own end of line), the spans are appended verbatim so
// that the run up to the separator is kept whole.
func (p *parser) appendAfter(elem *ir.Value, ciAfter, ciExtra token.CommentSpan) {
	existing := elem.Comments.After
	if existing != "" && p.opt.comments {
		elem.Comments.After = existing + ciAfter.Raw(p.s.Data) + ciExtra.Raw(p.s.Data)
		return
	}
	p.setComment2(&elem.Comments.After, ciAfter, ciExtra)
	if existing != "" {
		elem.Comments.After = existing + elem.Comments.After
	}
}

// Parse a value: an object, an array, a string, a number or a word.
func (p *parser) readValueBegin() error {
	f := &frame{posKey: -1}
	p.frames = append(p.frames, f)
	f.ciBefore = p.white()
	f.posItem = p.s.Pos()

	switch p.s.Ch {
	case '{':
		p.setState(mapBegin)
	case '[':
		p.setState(vectorBegin)
	case '"', '\'':
		str, err := token.ReadString(p.s, true)
		if err != nil {
			return err
		}
		f.val = ir.FromString(str)
		p.setState(valueEnd)
	default:
		v, err := token.ReadTfnns(p.s)
		if err != nil {
			return err
		}
		f.val = v
		p.setState(valueEnd)
	}
	return nil
}

func (p *parser) readValueEnd() {
	f := p.top()
	ciAfter := p.commentAfter()

	p.setComment1(&f.val.Comments.Before, f.ciBefore)
	p.setComment1(&f.val.Comments.After, ciAfter)
	f.val.PosItem = f.posItem

	p.popState()
}

// assuming Ch == '['
func (p *parser) readVectorBegin() {
	// skip '['
	p.s.Next()

	f := p.top()
	f.val = ir.New(ir.VectorType)
	f.ciElemBefore = p.white()
	f.ciElemExtra = token.CommentSpan{}

	if p.s.Ch == ']' {
		p.setComment1(&f.val.Comments.Inside, f.ciElemBefore)
		p.s.Next()
		p.setState(valueEnd)
	} else {
		p.setState(vectorElemEnd)
		p.pushState(valueBegin)
	}
}

func (p *parser) readVectorElemEnd() error {
	child := p.popFrame()
	elem := child.val
	f := p.top()

	p.setComment2(&elem.Comments.Before, f.ciElemBefore, f.ciElemExtra)
	ciAfter := p.white()
	// in Hjson the comma is optional and trailing commas are allowed
	if p.s.Ch == ',' {
		p.s.Next()
		// trivia after the comma joins the after-comment when ']'
		// follows, and the next element's before-comment otherwise
		f.ciElemExtra = p.white()
	} else {
		f.ciElemExtra = token.CommentSpan{}
	}
	if p.s.Ch == ']' {
		p.appendAfter(elem, ciAfter, f.ciElemExtra)
		p.s.Next()
		p.setState(valueEnd)
	} else {
		if p.s.Ch == 0 {
			return p.s.ErrAt("End of input while parsing an array (did you forget a closing ']'?)")
		}
		f.ciElemBefore = ciAfter
		p.pushState(valueBegin)
	}
	f.val.PushBack(elem)
	return nil
}

func (p *parser) readMapBegin() {
	f := p.top()
	f.val = ir.New(ir.MapType)

	if p.s.Ch == '{' {
		p.s.Next()
		f.ciElemBefore = p.white()
	} else {
		// braceless root: the leading trivia becomes the first
		// element's pending before-span
		f.ciElemBefore = f.ciBefore
		f.ciBefore = token.CommentSpan{}
	}

	// at a braceless root a '}' is not a closing brace; the key reader
	// rejects it
	if p.s.Ch == '}' && !(len(p.frames) == 1 && p.withoutBraces) {
		p.setComment1(&f.val.Comments.Inside, f.ciElemBefore)
		p.s.Next()
		p.setState(valueEnd)
	} else {
		p.setState(mapElemBegin)
	}
}

func (p *parser) readMapElemBegin() error {
	f := p.top()
	object := f.val

	if p.s.Ch == 0 {
		if len(p.frames) == 1 && p.withoutBraces {
			if object.Len() == 0 {
				p.setComment1(&object.Comments.Inside, f.ciElemBefore)
			} else {
				p.appendAfter(object.Values[object.Len()-1], f.ciElemBefore, f.ciElemExtra)
			}
			p.setState(valueEnd)
			return nil
		}
		return p.s.ErrAt("End of input while parsing an object (did you forget a closing '}'?)")
	}

	f.posKey = p.s.Pos()
	key, err := token.ReadKeyname(p.s)
	if err != nil {
		return err
	}
	f.key = key
	if f.isRoot && p.opt.duplicateKeyHandler != nil {
		p.opt.duplicateKeyHandler(&f.key, object)
	}
	if p.opt.duplicateKeyException && object.Get(f.key).Defined() {
		return p.s.ErrAt(fmt.Sprintf("Found duplicate of key '%s'", f.key))
	}
	f.ciKey = p.white()
	if p.s.Ch != ':' {
		return p.s.ErrAt(fmt.Sprintf("Expected ':' instead of '%c'", p.s.Ch))
	}
	p.s.Next()
	p.setState(mapElemEnd)
	p.pushState(valueBegin)
	return nil
}

func (p *parser) readMapElemEnd() error {
	child := p.popFrame()
	elem := child.val
	f := p.top()

	elem.PosKey = f.posKey
	p.setComment1(&elem.Comments.Key, f.ciKey)
	if elem.Comments.Before != "" {
		// trivia between the ':' and the value stays with the key
		// decoration; the entry's own before-span is pending on the
		// parent
		elem.Comments.Key = elem.Comments.Key + elem.Comments.Before
		elem.Comments.Before = ""
	}
	p.setComment2(&elem.Comments.Before, f.ciElemBefore, f.ciElemExtra)
	ciAfter := p.white()

	// in Hjson the comma is optional and trailing commas are allowed
	if p.s.Ch == ',' {
		p.s.Next()
		f.ciElemExtra = p.white()
	} else {
		f.ciElemExtra = token.CommentSpan{}
	}

	if p.s.Ch == '}' && !(len(p.frames) == 1 && p.withoutBraces) {
		p.appendAfter(elem, ciAfter, f.ciElemExtra)
		f.val.Set(f.key, elem)
		p.s.Next()
		p.setState(valueEnd)
	} else {
		f.val.Set(f.key, elem)
		f.ciElemBefore = ciAfter
		p.setState(mapElemBegin)
	}
	return nil
}

func (p *parser) parseLoop() error {
	for len(p.states) > 0 {
		st := p.states[len(p.states)-1]
		if debug.Parse() {
			debug.Logf("parse: %s depth=%d at %d\n", st, len(p.frames), p.s.Pos())
		}
		var err error
		switch st {
		case valueBegin:
			err = p.readValueBegin()
		case valueEnd:
			p.readValueEnd()
		case mapBegin:
			p.readMapBegin()
		case mapElemBegin:
			err = p.readMapElemBegin()
		case mapElemEnd:
			err = p.readMapElemEnd()
		case vectorBegin:
			p.readVectorBegin()
		case vectorElemEnd:
			err = p.readVectorElemEnd()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// run drives the state machine and then requires end of input, keeping
// whatever trailing trivia it finds in ciExtra.
func (p *parser) run(ciExtra *token.CommentSpan) error {
	if err := p.parseLoop(); err != nil {
		return err
	}
	*ciExtra = p.white()
	if p.s.Ch > 0 {
		return p.s.ErrAt("Syntax error, found trailing characters")
	}
	return nil
}

// Braces for the root object are optional.
func (p *parser) rootValue() (*ir.Value, error) {
	var ciExtra token.CommentSpan

	root := &frame{isRoot: true, posKey: -1}
	p.frames = append(p.frames, root)
	root.ciBefore = p.white()
	root.posItem = p.s.Pos()

	if p.s.Ch == '[' {
		p.pushState(vectorBegin)
	} else {
		if p.s.Ch != '{' {
			// assume root object without braces
			p.withoutBraces = true
		}
		p.pushState(mapBegin)
	}

	if err := p.run(&ciExtra); err != nil {
		var se *token.SyntaxError
		if !errors.As(err, &se) || !p.withoutBraces {
			return nil, err
		}
		// test if we are dealing with a single value instead
		// (true/false/null/number/string)
		p.s.Reset()
		p.frames = p.frames[:0]
		p.states = p.states[:0]
		p.pushState(valueBegin)
		if err2 := p.run(&ciExtra); err2 != nil {
			var se2 *token.SyntaxError
			if errors.As(err2, &se2) {
				// re-raise the original error, not the retry's
				return nil, err
			}
			return nil, err2
		}
	}

	ret := p.top().val
	// trailing trivia sticks to the root whenever comments are kept at
	// all, so an encoder can replay the document's final newline
	if ciExtra.Has || (p.opt.comments && ciExtra.End > ciExtra.Start) {
		existingAfter := ret.Comments.After
		ret.Comments.After = ciExtra.Raw(p.s.Data)
		if existingAfter != "" {
			ret.Comments.After = existingAfter + ret.Comments.After
		}
	}
	return ret, nil
}
