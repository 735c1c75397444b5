package ir

import "fmt"

// Comments are the four trivia slots decoded alongside a Value. Each
// holds verbatim source bytes (whitespace included), or is empty.
//
//   - Before: trivia preceding the value (or its key, inside a map).
//   - Key: trivia around the ':', between the key and the ':' followed
//     by any between the ':' and the value.
//   - Inside: trivia between the brackets of an empty container.
//   - After: trivia following the value up to the next separator or
//     end of line.
type Comments struct {
	Before string
	Key    string
	Inside string
	After  string
}

// Value is a node in the decoded tree. The zero Value is undefined;
// use the From* constructors or New to build defined ones.
//
// Maps keep insertion order in the parallel Fields/Values slices; for
// vectors, Fields is nil and Values holds the elements.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	Fields []string
	Values []*Value

	Comments Comments

	// PosKey is the byte offset of the key in the source for map
	// entries, -1 otherwise. PosItem is the byte offset of the value.
	PosKey  int
	PosItem int
}

func New(t Type) *Value {
	return &Value{Type: t, PosKey: -1}
}

func Null() *Value {
	return New(NullType)
}

func FromString(v string) *Value {
	res := New(StringType)
	res.String = v
	return res
}

func FromInt(v int64) *Value {
	res := New(IntType)
	res.Int64 = v
	return res
}

func FromFloat(v float64) *Value {
	res := New(FloatType)
	res.Float64 = v
	return res
}

func FromBool(v bool) *Value {
	res := New(BoolType)
	res.Bool = v
	return res
}

// Defined reports whether v is distinguishable from a freshly
// constructed placeholder. It is nil-safe.
func (v *Value) Defined() bool {
	return v != nil && v.Type != UndefinedType
}

func (v *Value) Len() int {
	return len(v.Values)
}

// At returns the i-th element of a vector.
func (v *Value) At(i int) (*Value, error) {
	if v.Type != VectorType {
		return nil, fmt.Errorf("%w: %s is not a vector", ErrTypeMismatch, v.Type)
	}
	if i < 0 || i >= len(v.Values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, i, len(v.Values))
	}
	return v.Values[i], nil
}

// Get returns the value stored under field, or nil if the map has no
// such field.
func (v *Value) Get(field string) *Value {
	for i := range v.Fields {
		if v.Fields[i] == field {
			return v.Values[i]
		}
	}
	return nil
}

// Set stores elem under field. An existing field keeps its insertion
// position and is replaced in place, comments and all; a new field is
// appended. This is the only mutation the decoder performs on an
// in-progress map.
func (v *Value) Set(field string, elem *Value) {
	for i := range v.Fields {
		if v.Fields[i] == field {
			v.Values[i] = elem
			return
		}
	}
	v.Fields = append(v.Fields, field)
	v.Values = append(v.Values, elem)
}

func (v *Value) PushBack(elem *Value) {
	v.Values = append(v.Values, elem)
}

func (v *Value) AsString() (string, error) {
	if v.Type != StringType {
		return "", fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, v.Type)
	}
	return v.String, nil
}

func (v *Value) AsInt() (int64, error) {
	switch v.Type {
	case IntType:
		return v.Int64, nil
	case FloatType:
		return int64(v.Float64), nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, v.Type)
}

func (v *Value) AsFloat() (float64, error) {
	switch v.Type {
	case IntType:
		return float64(v.Int64), nil
	case FloatType:
		return v.Float64, nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, v.Type)
}

func (v *Value) AsBool() (bool, error) {
	if v.Type != BoolType {
		return false, fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, v.Type)
	}
	return v.Bool, nil
}

// Visit walks the tree in source order, calling f once before and once
// after each node's children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Float64 = v.Float64
	dst.String = v.String
	dst.Comments = v.Comments
	dst.PosKey = v.PosKey
	dst.PosItem = v.PosItem
	if v.Fields != nil {
		dst.Fields = make([]string, len(v.Fields))
		copy(dst.Fields, v.Fields)
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			dst.Values[i] = vv.Clone()
		}
	}
	return dst
}
