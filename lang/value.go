package lang

import "strconv"

// ValueType enumerates the runtime value categories.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeNumber
	TypeString
)

func (vt ValueType) String() string {
	switch vt {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value represents any runtime object in the interpreter.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Nil is the singleton nil value.
var Nil = Value{Type: TypeNil}

// BoolValue constructs a boolean Value.
func BoolValue(b bool) Value {
	return Value{Type: TypeBool, payload: b}
}

// NumberValue constructs a number Value.
func NumberValue(f float64) Value {
	return Value{Type: TypeNumber, payload: f}
}

// StringValue constructs a string Value.
func StringValue(s string) Value {
	return Value{Type: TypeString, payload: s}
}

func (v Value) Bool() bool {
	if b, ok := v.payload.(bool); ok {
		return b
	}
	return false
}

func (v Value) Num() float64 {
	if f, ok := v.payload.(float64); ok {
		return f
	}
	return 0
}

func (v Value) Str() string {
	if s, ok := v.payload.(string); ok {
		return s
	}
	return ""
}

// Truthy reports how the value behaves in conditional contexts: nil and
// false are falsy, everything else (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case TypeNil:
		return false
	case TypeBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal implements language equality: values of different types are never
// equal, nil equals nil, numbers and strings compare by value.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeNil:
		return true
	case TypeBool:
		return v.Bool() == other.Bool()
	case TypeNumber:
		return v.Num() == other.Num()
	case TypeString:
		return v.Str() == other.Str()
	default:
		return false
	}
}

// String renders the value the way print does: numbers without a trailing
// .0 when integral, booleans as true/false, nil as nil, strings raw.
func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	case TypeNumber:
		return strconv.FormatFloat(v.Num(), 'g', -1, 64)
	case TypeString:
		return v.Str()
	default:
		return "<unknown>"
	}
}
