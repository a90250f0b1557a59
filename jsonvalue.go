package toon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vexpera-br/toon-go/toonparser"
)

// FromJSON decodes a JSON document into a Value, preserving object key
// order. It walks the token stream rather than unmarshalling into maps,
// which is the only way encoding/json exposes ordering; numbers stay
// integer or decimal according to their literal.
func FromJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := readJSONValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("trailing content after JSON value")
	}
	return v, nil
}

// FromJSONBytes is FromJSON over a byte slice.
func FromJSONBytes(data []byte) (Value, error) {
	return FromJSON(bytes.NewReader(data))
}

func readJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return jsonTokenValue(dec, tok)
}

func jsonTokenValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			result := toonparser.MappingValue()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is not a string")
				}
				value, err := readJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				result.Fields = append(result.Fields, toonparser.KV(key, value))
			}
			// consume the closing '}'
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return result, nil
		case '[':
			result := toonparser.SequenceValue()
			for dec.More() {
				value, err := readJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				result.Items = append(result.Items, value)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return result, nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case nil:
		return toonparser.NullValue(), nil
	case bool:
		return toonparser.BoolValue(t), nil
	case string:
		return toonparser.StringValue(t), nil
	case json.Number:
		return fromJSONNumber(t)
	default:
		return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// ValueToJSON renders a Value as JSON, keeping mapping key order. indent is
// the per-level indent string; empty means compact output.
func ValueToJSON(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case toonparser.NullKind:
		buf.WriteString("null")
	case toonparser.BoolKind:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case toonparser.IntegerKind:
		fmt.Fprintf(buf, "%d", v.Integer)
	case toonparser.DecimalKind:
		buf.WriteString(formatDecimal(v.Decimal))
	case toonparser.StringKind:
		data, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(data)
	case toonparser.SequenceKind:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case toonparser.MappingKind:
		buf.WriteByte('{')
		for i, field := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(field.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, field.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("invalid value kind")
	}
	return nil
}
