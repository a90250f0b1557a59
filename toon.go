package toon

import (
	"github.com/vexpera-br/toon-go/toonparser"
)

// Unmarshal decodes a TOON document into a Value tree.
func Unmarshal(data []byte, opts ...DecodeOption) (Value, error) {
	return UnmarshalString(string(data), opts...)
}

// UnmarshalString decodes a TOON document into a Value tree. The decoder is
// strict unless Lenient() is passed.
func UnmarshalString(doc string, opts ...DecodeOption) (Value, error) {
	cfg := toonparser.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return toonparser.ParseString(doc, cfg)
}

// Marshal renders a Go value as a TOON document. v is first normalized into
// the Value model (see FromGoValue), then encoded; the output carries no
// trailing newline.
func Marshal(v any, opts ...EncodeOption) ([]byte, error) {
	s, err := MarshalString(v, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(v any, opts ...EncodeOption) (string, error) {
	value, err := FromGoValue(v)
	if err != nil {
		return "", err
	}
	return MarshalValue(value, opts...)
}

// MarshalValue encodes an already-built Value tree.
func MarshalValue(v Value, opts ...EncodeOption) (string, error) {
	cfg := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	state := &encodeState{cfg: cfg}
	if err := state.encodeRoot(v); err != nil {
		return "", err
	}
	return state.output(), nil
}
