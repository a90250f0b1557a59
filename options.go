package toon

import (
	"github.com/sirupsen/logrus"

	"github.com/vexpera-br/toon-go/toonparser"
)

// Convenience aliases so callers normally only import this package.
type Value = toonparser.Value
type Field = toonparser.Field

const (
	Comma = toonparser.DelimiterComma
	Tab   = toonparser.DelimiterTab
	Pipe  = toonparser.DelimiterPipe
)

// DecodeOption adjusts decoder behavior. The default is strict mode with a
// two-space indent and no debug sink.
type DecodeOption func(*toonparser.Options)

// Lenient demotes layout errors (tabs, misindentation, blank lines inside
// arrays, count mismatches, duplicate keys) to best-effort recovery.
func Lenient() DecodeOption {
	return func(o *toonparser.Options) { o.Strict = false }
}

// IndentWidth sets the number of spaces per indentation level.
func IndentWidth(n int) DecodeOption {
	return func(o *toonparser.Options) { o.IndentWidth = n }
}

// DebugLogger installs a trace sink for the decoder.
func DebugLogger(logger logrus.FieldLogger) DecodeOption {
	return func(o *toonparser.Options) { o.Logger = logger }
}

type encodeOptions struct {
	indentWidth  int
	delimiter    toonparser.Delimiter
	lengthMarker bool
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{indentWidth: 2, delimiter: toonparser.DelimiterComma}
}

// EncodeOption adjusts encoder output. The default is a two-space indent,
// comma delimiter and plain [N] length prefixes.
type EncodeOption func(*encodeOptions)

// Indent sets the number of spaces per indentation level in the output.
func Indent(n int) EncodeOption {
	return func(o *encodeOptions) {
		if n > 0 {
			o.indentWidth = n
		}
	}
}

// Delimiter selects the separator used in tabular rows, header fields and
// inline arrays.
func Delimiter(d toonparser.Delimiter) EncodeOption {
	return func(o *encodeOptions) { o.delimiter = d }
}

// LengthMarker emits [#N] instead of [N] in array headers.
func LengthMarker() EncodeOption {
	return func(o *encodeOptions) { o.lengthMarker = true }
}
