package ir

import "fmt"

type Type int

const (
	// UndefinedType is the type of a freshly constructed Value that has
	// not been assigned. Defined() reports false for it.
	UndefinedType Type = iota
	NullType
	BoolType
	IntType
	FloatType
	StringType
	VectorType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType: "Undefined",
		NullType:      "Null",
		BoolType:      "Bool",
		IntType:       "Int",
		FloatType:     "Float",
		StringType:    "String",
		VectorType:    "Vector",
		MapType:       "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Undefined": UndefinedType,
		"Null":      NullType,
		"Bool":      BoolType,
		"Int":       IntType,
		"Float":     FloatType,
		"String":    StringType,
		"Vector":    VectorType,
		"Map":       MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		UndefinedType,
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		VectorType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case VectorType, MapType:
		return false
	default:
		return true
	}
}
