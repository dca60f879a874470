package runtime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindNull
	KindBool
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val int64
}

func (v NumberValue) Kind() Kind { return KindNumber }

func (v NumberValue) String() string { return strconv.FormatInt(v.Val, 10) }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

func (NullValue) String() string { return "null" }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

//-----------------------------------------------------------------------------
// Objects
//-----------------------------------------------------------------------------

// ObjectValue maps property names to values. Objects have value semantics:
// every read out of an environment or another object hands back a Clone.
type ObjectValue struct {
	Fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() ObjectValue {
	return ObjectValue{Fields: make(map[string]Value)}
}

func (v ObjectValue) Kind() Kind { return KindObject }

// Get returns a copy of the named field.
func (v ObjectValue) Get(key string) (Value, bool) {
	field, ok := v.Fields[key]
	if !ok {
		return nil, false
	}
	return Clone(field), true
}

// Keys returns the field names in sorted order.
func (v ObjectValue) Keys() []string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders `{key: value, ...}` with keys sorted so output is stable.
func (v ObjectValue) String() string {
	if len(v.Fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range v.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(Render(v.Fields[key]))
	}
	b.WriteByte('}')
	return b.String()
}

//-----------------------------------------------------------------------------
// Helpers
//-----------------------------------------------------------------------------

// Render returns the canonical text of v; a nil Value renders as null.
func Render(v Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// Clone returns an independent copy of v.
func Clone(v Value) Value {
	obj, ok := v.(ObjectValue)
	if !ok {
		return v
	}
	out := ObjectValue{Fields: make(map[string]Value, len(obj.Fields))}
	for k, field := range obj.Fields {
		out.Fields[k] = Clone(field)
	}
	return out
}

// Equal compares values structurally. Object key order is irrelevant.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case ObjectValue:
		bv, ok := b.(ObjectValue)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for k, field := range av.Fields {
			other, ok := bv.Fields[k]
			if !ok || !Equal(field, other) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
