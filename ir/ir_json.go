package ir

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON renders the tree as strict JSON, dropping comments and
// positions. Map fields keep insertion order. Undefined marshals as
// null.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) appendJSON(buf *bytes.Buffer) error {
	switch v.Type {
	case UndefinedType, NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case IntType:
		buf.WriteString(strconv.FormatInt(v.Int64, 10))
	case FloatType:
		if math.IsInf(v.Float64, 0) || math.IsNaN(v.Float64) {
			return fmt.Errorf("%w: %v is not a JSON number", ErrTypeMismatch, v.Float64)
		}
		buf.Write(strconv.AppendFloat(nil, v.Float64, 'g', -1, 64))
	case StringType:
		buf.WriteString(strconv.Quote(v.String))
	case VectorType:
		buf.WriteByte('[')
		for i, e := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MapType:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Quote(f))
			buf.WriteByte(':')
			if err := v.Values[i].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot marshal %s", ErrTypeMismatch, v.Type)
	}
	return nil
}

// Interface converts the tree to plain Go values (nil, bool, int64,
// float64, string, []any, map[string]any). Map insertion order is lost.
func (v *Value) Interface() any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int64
	case FloatType:
		return v.Float64
	case StringType:
		return v.String
	case VectorType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = e.Interface()
		}
		return res
	case MapType:
		res := make(map[string]any, len(v.Fields))
		for i, f := range v.Fields {
			res[f] = v.Values[i].Interface()
		}
		return res
	default:
		return nil
	}
}
