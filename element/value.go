package element

import (
	"strconv"
)

// Kind is the variant held by a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindRLEString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRLEString:
		return "rle-string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an attribute payload. The kind is part of its identity:
// String("a") and RLEString("a") are different values because they are framed
// differently on the wire. Values are comparable with ==.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float32
	s    string
}

func Bool(v bool) Value { return Value{kind: KindBool, b: v} }
func Int(v int32) Value { return Value{kind: KindInt, i: v} }
func Float(v float32) Value { return Value{kind: KindFloat, f: v} }
func String(v string) Value { return Value{kind: KindString, s: v} }
func RLEString(v string) Value { return Value{kind: KindRLEString, s: v} }

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Int() (int32, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) Float() (float32, bool) {
	return v.f, v.kind == KindFloat
}

// Text returns the payload of a String or RLEString value.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString || v.kind == KindRLEString
}

// String renders scalars plainly and text quoted.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	default:
		return strconv.Quote(v.s)
	}
}
