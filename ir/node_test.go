package ir

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefined(t *testing.T) {
	var v Value
	if v.Defined() {
		t.Error("zero Value is defined")
	}
	if (*Value)(nil).Defined() {
		t.Error("nil Value is defined")
	}
	if !Null().Defined() {
		t.Error("null is not defined")
	}
}

func TestMapOrder(t *testing.T) {
	m := New(MapType)
	m.Set("b", FromInt(1))
	m.Set("a", FromInt(2))
	m.Set("c", FromInt(3))
	if got := m.Fields; !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("fields %v", got)
	}
	// re-assignment keeps the original insertion position
	repl := FromInt(4)
	repl.Comments.Before = "# kept\n"
	m.Set("a", repl)
	if got := m.Fields; !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("fields after replace %v", got)
	}
	if got := m.Get("a"); got.Int64 != 4 || got.Comments.Before != "# kept\n" {
		t.Fatalf("replace lost value or comments: %+v", got)
	}
	if m.Get("zzz") != nil {
		t.Fatal("missing key is non-nil")
	}
	if m.Get("zzz").Defined() {
		t.Fatal("missing key is defined")
	}
}

func TestAt(t *testing.T) {
	v := New(VectorType)
	v.PushBack(FromString("x"))
	e, err := v.At(0)
	if err != nil || e.String != "x" {
		t.Fatalf("At(0): %v %v", e, err)
	}
	if _, err := v.At(1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(1): %v", err)
	}
	if _, err := v.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(-1): %v", err)
	}
	if _, err := Null().At(0); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("At on null: %v", err)
	}
}

func TestAccessors(t *testing.T) {
	if s, err := FromString("hi").AsString(); err != nil || s != "hi" {
		t.Fatal(s, err)
	}
	if _, err := FromInt(1).AsString(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal(err)
	}
	if n, err := FromInt(7).AsInt(); err != nil || n != 7 {
		t.Fatal(n, err)
	}
	if f, err := FromInt(7).AsFloat(); err != nil || f != 7 {
		t.Fatal(f, err)
	}
	if n, err := FromFloat(2.9).AsInt(); err != nil || n != 2 {
		t.Fatal(n, err)
	}
	if b, err := FromBool(true).AsBool(); err != nil || !b {
		t.Fatal(b, err)
	}
	if _, err := Null().AsBool(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal(err)
	}
}

func TestMarshalJSON(t *testing.T) {
	m := New(MapType)
	m.Set("s", FromString("a\"b"))
	m.Set("n", FromInt(3))
	m.Set("f", FromFloat(1.5))
	m.Set("b", FromBool(false))
	m.Set("z", Null())
	arr := New(VectorType)
	arr.PushBack(FromInt(1))
	arr.PushBack(FromString("x"))
	m.Set("a", arr)
	d, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"s":"a\"b","n":3,"f":1.5,"b":false,"z":null,"a":[1,"x"]}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestInterface(t *testing.T) {
	m := New(MapType)
	m.Set("a", FromInt(1))
	arr := New(VectorType)
	arr.PushBack(FromBool(true))
	m.Set("v", arr)
	got := m.Interface()
	want := map[string]any{"a": int64(1), "v": []any{true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClone(t *testing.T) {
	m := New(MapType)
	inner := FromString("x")
	inner.Comments.After = " # c\n"
	m.Set("k", inner)
	c := m.Clone()
	c.Get("k").String = "y"
	if m.Get("k").String != "x" {
		t.Error("clone aliases values")
	}
	if c.Get("k").Comments.After != " # c\n" {
		t.Error("clone lost comments")
	}
}
