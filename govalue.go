package toon

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vexpera-br/toon-go/toonparser"
)

// FromGoValue normalizes a plain Go value into the Value model. Maps get
// their keys sorted so output is deterministic; use a []Field (or a Value
// built with MappingValue) when insertion order matters. Non-finite floats
// become null, matching the lossy-by-design number rule.
func FromGoValue(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return toonparser.NullValue(), nil
	case Value:
		return t, nil
	case []Field:
		return toonparser.MappingValue(t...), nil
	case bool:
		return toonparser.BoolValue(t), nil
	case string:
		return toonparser.StringValue(t), nil
	case int:
		return toonparser.IntValue(int64(t)), nil
	case int8:
		return toonparser.IntValue(int64(t)), nil
	case int16:
		return toonparser.IntValue(int64(t)), nil
	case int32:
		return toonparser.IntValue(int64(t)), nil
	case int64:
		return toonparser.IntValue(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return toonparser.IntValue(int64(t)), nil
	case uint16:
		return toonparser.IntValue(int64(t)), nil
	case uint32:
		return toonparser.IntValue(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return fromFloat(float64(t)), nil
	case float64:
		return fromFloat(t), nil
	case decimal.Decimal:
		return toonparser.DecimalValue(t), nil
	case json.Number:
		return fromJSONNumber(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			value, err := FromGoValue(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, value)
		}
		return toonparser.SequenceValue(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			value, err := FromGoValue(t[k])
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, toonparser.KV(k, value))
		}
		return toonparser.MappingValue(fields...), nil
	default:
		return Value{}, EncodeError{Message: fmt.Sprintf("unsupported value of type %T", v)}
	}
}

func fromUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return toonparser.IntValue(int64(u))
	}
	return toonparser.DecimalValue(decimal.NewFromUint64(u))
}

func fromFloat(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return toonparser.NullValue()
	}
	return toonparser.DecimalValue(decimal.NewFromFloat(f))
}

func fromJSONNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return toonparser.IntValue(i), nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return Value{}, EncodeError{Message: "invalid number literal " + n.String()}
	}
	return toonparser.DecimalValue(d), nil
}
