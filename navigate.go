package toon

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vexpera-br/toon-go/toonparser"
)

// Typed navigation over a decoded Value tree. These helpers are a thin
// adapter for callers that know the shape they expect; the codec itself
// never uses them.

// Get walks a dotted path: mapping segments are key lookups, and a decimal
// segment indexes into a sequence ("users.0.name").
func Get(v Value, path string) (Value, bool) {
	if path == "" {
		return v, true
	}
	current := v
	for _, segment := range strings.Split(path, ".") {
		switch current.Kind {
		case toonparser.MappingKind:
			next, ok := current.Lookup(segment)
			if !ok {
				return Value{}, false
			}
			current = next
		case toonparser.SequenceKind:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return Value{}, false
			}
			next, ok := Index(current, idx)
			if !ok {
				return Value{}, false
			}
			current = next
		default:
			return Value{}, false
		}
	}
	return current, true
}

// Index returns the i-th element of a sequence.
func Index(v Value, i int) (Value, bool) {
	if v.Kind != toonparser.SequenceKind || i < 0 || i >= len(v.Items) {
		return Value{}, false
	}
	return v.Items[i], true
}

func AsString(v Value) (string, bool) {
	if v.Kind != toonparser.StringKind {
		return "", false
	}
	return v.Str, true
}

func AsBool(v Value) (bool, bool) {
	if v.Kind != toonparser.BoolKind {
		return false, false
	}
	return v.Bool, true
}

// AsInt coerces integers and integral decimals.
func AsInt(v Value) (int64, bool) {
	switch v.Kind {
	case toonparser.IntegerKind:
		return v.Integer, true
	case toonparser.DecimalKind:
		if v.Decimal.IsInteger() {
			return v.Decimal.IntPart(), true
		}
	}
	return 0, false
}

// AsDecimal coerces both number kinds.
func AsDecimal(v Value) (decimal.Decimal, bool) {
	switch v.Kind {
	case toonparser.IntegerKind:
		return decimal.NewFromInt(v.Integer), true
	case toonparser.DecimalKind:
		return v.Decimal, true
	}
	return decimal.Decimal{}, false
}

// AsFloat coerces both number kinds to float64, possibly losing precision.
func AsFloat(v Value) (float64, bool) {
	d, ok := AsDecimal(v)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}
