package toon

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/vexpera-br/toon-go/toonparser"
)

// EncodeError is the single error kind raised for input shapes the format
// cannot express.
type EncodeError struct {
	Message string
}

func (e EncodeError) Error() string {
	return "toon: " + e.Message
}

type encodeState struct {
	cfg   encodeOptions
	lines []string
}

func (s *encodeState) emit(line string) {
	s.lines = append(s.lines, line)
}

func (s *encodeState) indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(" ", level*s.cfg.indentWidth)
}

func (s *encodeState) output() string {
	return strings.Join(s.lines, "\n")
}

func (s *encodeState) encodeRoot(v Value) error {
	switch v.Kind {
	case toonparser.MappingKind:
		return s.encodeMapping(v, 0)
	case toonparser.SequenceKind:
		// a root sequence has no key of its own; emit it under 'items'
		return s.encodeSequence("items", v.Items, 0)
	case toonparser.NullKind, toonparser.BoolKind, toonparser.IntegerKind,
		toonparser.DecimalKind, toonparser.StringKind:
		s.emit(s.formatScalar(v, scalarContext{}))
		return nil
	default:
		return EncodeError{Message: "unsupported value kind"}
	}
}

func (s *encodeState) encodeMapping(v Value, level int) error {
	indent := s.indent(level)
	for _, field := range v.Fields {
		switch field.Value.Kind {
		case toonparser.SequenceKind:
			if err := s.encodeSequence(field.Key, field.Value.Items, level); err != nil {
				return err
			}
		case toonparser.MappingKind:
			s.emit(indent + s.encodeKey(field.Key) + ":")
			if err := s.encodeMapping(field.Value, level+1); err != nil {
				return err
			}
		case toonparser.NullKind, toonparser.BoolKind, toonparser.IntegerKind,
			toonparser.DecimalKind, toonparser.StringKind:
			s.emit(indent + s.encodeKey(field.Key) + ": " + s.formatScalar(field.Value, scalarContext{}))
		default:
			return EncodeError{Message: "unsupported value kind under key " + field.Key}
		}
	}
	return nil
}

// encodeSequence picks the array form: tabular for homogeneous rows of
// mappings, a single inline line when every item is a scalar. Any other
// sequence holds a nested container, which the '-' list form cannot carry,
// so it is refused with an EncodeError.
func (s *encodeState) encodeSequence(key string, items []Value, level int) error {
	indent := s.indent(level)
	cell := scalarContext{cell: true, delim: s.cfg.delimiter.Byte()}

	if fields, ok := tabularFields(items); ok {
		s.emit(indent + s.renderHeader(key, len(items), fields))
		rowIndent := s.indent(level + 1)
		for _, row := range items {
			cells := make([]string, len(fields))
			for i, field := range fields {
				v, _ := row.Lookup(field)
				cells[i] = s.formatScalar(v, cell)
			}
			s.emit(rowIndent + strings.Join(cells, string(s.cfg.delimiter.Byte())))
		}
		return nil
	}

	if allScalars(items) {
		line := indent + s.renderHeader(key, len(items), nil)
		if len(items) > 0 {
			rendered := make([]string, len(items))
			for i, item := range items {
				rendered[i] = s.formatScalar(item, cell)
			}
			line += " " + strings.Join(rendered, string(s.cfg.delimiter.Byte()))
		}
		s.emit(line)
		return nil
	}

	s.emit(indent + s.renderHeader(key, len(items), nil))
	itemIndent := s.indent(level + 1)
	for _, item := range items {
		switch item.Kind {
		case toonparser.NullKind, toonparser.BoolKind, toonparser.IntegerKind,
			toonparser.DecimalKind, toonparser.StringKind:
			s.emit(itemIndent + "- " + s.formatScalar(item, scalarContext{}))
		default:
			// the '-' list form only carries primitives; nested containers
			// inside a non-tabular sequence have no expressible encoding
			return EncodeError{Message: "cannot encode nested containers in a mixed sequence"}
		}
	}
	return nil
}

func (s *encodeState) renderHeader(key string, length int, fields []string) string {
	var b strings.Builder
	if key != "" {
		b.WriteString(s.encodeKey(key))
	}
	b.WriteByte('[')
	if s.cfg.lengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	if s.cfg.delimiter != toonparser.DelimiterComma {
		b.WriteByte(s.cfg.delimiter.Byte())
	}
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(s.cfg.delimiter.Byte())
			}
			b.WriteString(s.encodeKey(field))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

// tabularFields reports whether items form a homogeneous table: non-empty,
// every element a mapping of scalars, all sharing the first element's keys
// in the same order, none of them empty.
func tabularFields(items []Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first := items[0]
	if first.Kind != toonparser.MappingKind || len(first.Fields) == 0 {
		return nil, false
	}
	fields := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		if f.Key == "" || !isScalar(f.Value) {
			return nil, false
		}
		fields[i] = f.Key
	}
	for _, item := range items[1:] {
		if item.Kind != toonparser.MappingKind || len(item.Fields) != len(fields) {
			return nil, false
		}
		for i, f := range item.Fields {
			if f.Key != fields[i] || !isScalar(f.Value) {
				return nil, false
			}
		}
	}
	return fields, true
}

func isScalar(v Value) bool {
	switch v.Kind {
	case toonparser.NullKind, toonparser.BoolKind, toonparser.IntegerKind,
		toonparser.DecimalKind, toonparser.StringKind:
		return true
	default:
		return false
	}
}

func allScalars(items []Value) bool {
	for _, item := range items {
		if !isScalar(item) {
			return false
		}
	}
	return true
}

// scalarContext: in cell position (tabular cells, inline values) only the
// active delimiter is ambiguous; elsewhere all three delimiter characters
// force quotes.
type scalarContext struct {
	cell  bool
	delim byte
}

func (s *encodeState) formatScalar(v Value, ctx scalarContext) string {
	switch v.Kind {
	case toonparser.NullKind:
		return "null"
	case toonparser.BoolKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case toonparser.IntegerKind:
		return strconv.FormatInt(v.Integer, 10)
	case toonparser.DecimalKind:
		return formatDecimal(v.Decimal)
	case toonparser.StringKind:
		if needsQuoting(v.Str, ctx) {
			return quoteString(v.Str)
		}
		return v.Str
	default:
		return "null"
	}
}

// formatDecimal renders the canonical plain-decimal form: no exponent, no
// trailing fractional zeros, -0 collapses to 0.
func formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func needsQuoting(str string, ctx scalarContext) bool {
	if str == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(str)
	last, _ := utf8.DecodeLastRuneInString(str)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	switch str {
	case "true", "false", "null", "~":
		return true
	}
	if toonparser.LooksNumeric(str) {
		return true
	}
	if str[0] == '-' || str[0] == '#' {
		return true
	}
	if strings.ContainsAny(str, ":\"\\[]{}\n\r") {
		return true
	}
	if ctx.cell {
		return strings.IndexByte(str, ctx.delim) != -1
	}
	return strings.ContainsAny(str, ",|\t")
}

func quoteString(str string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(str); i++ {
		switch c := str[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (s *encodeState) encodeKey(key string) string {
	if toonparser.IsValidUnquotedKey(key) {
		return key
	}
	return quoteString(key)
}
