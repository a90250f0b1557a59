package toonparser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	NullKind Kind = iota + 1
	BoolKind
	IntegerKind
	DecimalKind
	StringKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	return kindToDescription[k]
}

func (k Kind) GoString() string {
	return kindToDescription[k]
}

func init() {
	// make sure we panic if a description isn't declared
	for k := NullKind; k <= MappingKind; k++ {
		if kindToDescription[k] == "" {
			panic("you have not updated kindToDescription")
		}
	}
}

var kindToDescription = map[Kind]string{
	NullKind:     "NullKind",
	BoolKind:     "BoolKind",
	IntegerKind:  "IntegerKind",
	DecimalKind:  "DecimalKind",
	StringKind:   "StringKind",
	SequenceKind: "SequenceKind",
	MappingKind:  "MappingKind",
}

// Value is the tagged variant produced by decoding and consumed by encoding.
// Only the field selected by Kind is meaningful. Mappings are a slice of
// Field so that key order survives a parse/emit round trip.
type Value struct {
	Kind    Kind
	Bool    bool
	Integer int64
	Decimal decimal.Decimal
	Str     string
	Items   []Value
	Fields  []Field
}

type Field struct {
	Key   string
	Value Value
}

func NullValue() Value           { return Value{Kind: NullKind} }
func BoolValue(v bool) Value     { return Value{Kind: BoolKind, Bool: v} }
func IntValue(v int64) Value     { return Value{Kind: IntegerKind, Integer: v} }
func StringValue(s string) Value { return Value{Kind: StringKind, Str: s} }

func DecimalValue(d decimal.Decimal) Value {
	return Value{Kind: DecimalKind, Decimal: d}
}

func SequenceValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: SequenceKind, Items: items}
}

func MappingValue(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{Kind: MappingKind, Fields: fields}
}

func KV(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Lookup returns the value stored under key in a mapping.
func (v Value) Lookup(key string) (Value, bool) {
	if v.Kind != MappingKind {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the mapping keys in insertion order.
func (v Value) Keys() []string {
	if v.Kind != MappingKind {
		return nil
	}
	result := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		result[i] = f.Key
	}
	return result
}

// set stores key=value; a repeated key replaces the previous value but keeps
// its original position.
func (v *Value) set(key string, value Value) (replaced bool) {
	for i := range v.Fields {
		if v.Fields[i].Key == key {
			v.Fields[i].Value = value
			return true
		}
	}
	v.Fields = append(v.Fields, Field{Key: key, Value: value})
	return false
}

// Equal is structural equality. Decimal comparison is numeric, so 1.5 and
// 1.50 are equal; Integer(1) and Decimal(1) are not, they are distinct kinds.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case NullKind:
		return true
	case BoolKind:
		return v.Bool == other.Bool
	case IntegerKind:
		return v.Integer == other.Integer
	case DecimalKind:
		return v.Decimal.Equal(other.Decimal)
	case StringKind:
		return v.Str == other.Str
	case SequenceKind:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case MappingKind:
		if len(v.Fields) != len(other.Fields) {
			return false
		}
		for i := range v.Fields {
			if v.Fields[i].Key != other.Fields[i].Key {
				return false
			}
			if !v.Fields[i].Value.Equal(other.Fields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a compact single-line debug form; not TOON syntax, just
// meant for test failure output and logging.
func (v Value) String() string {
	var b strings.Builder
	v.debugTo(&b)
	return b.String()
}

func (v Value) debugTo(b *strings.Builder) {
	switch v.Kind {
	case NullKind:
		b.WriteString("null")
	case BoolKind:
		fmt.Fprintf(b, "%v", v.Bool)
	case IntegerKind:
		fmt.Fprintf(b, "%d", v.Integer)
	case DecimalKind:
		b.WriteString(v.Decimal.String())
	case StringKind:
		fmt.Fprintf(b, "%q", v.Str)
	case SequenceKind:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.debugTo(b)
		}
		b.WriteByte(']')
	case MappingKind:
		b.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%q:", f.Key)
			f.Value.debugTo(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("<invalid>")
	}
}
