// Recursive descent parser over classified lines. The grammar is
// line-oriented: a mapping line either introduces a nested block (empty
// right-hand side, or an array header) or carries its whole value; arrays
// own the lines one level deeper than their header.
//
// CONVENTION: array parse functions take the already-consumed line that
// triggered them (the header line, the list item line) and consume
// everything belonging to the construct; parseMapping takes only its base
// depth. On return the cursor is at the first line that is not part of the
// construct. Array parsers leave trailing blanks to the caller; parseMapping
// skips blank and comment lines as it goes.
package toonparser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Options is the decoder configuration. Strict mode promotes layout
// advisories (tabs, misindentation, blank lines in tables, count
// mismatches) to errors; lenient mode skips or truncates and returns a
// best-effort value. Logger, when set, receives a parse trace.
type Options struct {
	Strict      bool
	IndentWidth int
	Logger      logrus.FieldLogger
}

func DefaultOptions() Options {
	return Options{Strict: true, IndentWidth: 2}
}

// ParseString decodes a whole TOON document into a Value.
func ParseString(input string, opts Options) (Value, error) {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	scan, err := NewScanner(input, opts)
	if err != nil {
		return Value{}, err
	}
	p := &parser{scan: scan, opts: opts}
	result, err := p.parseDocument()
	if err != nil {
		return Value{}, err
	}
	if err := p.checkTrailingContent(); err != nil {
		return Value{}, err
	}
	return result, nil
}

type parser struct {
	scan *Scanner
	opts Options
}

func (p *parser) debugf(format string, a ...any) {
	if p.opts.Logger != nil {
		p.opts.Logger.Debugf(format, a...)
	}
}

// parseDocument detects the root form from the non-blank depth-0 lines: a
// keyless header makes the root an array, a single line that is neither a
// header nor a key/value pair is a bare primitive, anything else is a
// mapping (an empty document is an empty mapping).
func (p *parser) parseDocument() (Value, error) {
	var rootLines []Line
	for _, line := range p.scan.Remaining() {
		if line.Blank || line.IsComment() {
			continue
		}
		if line.Depth == 0 {
			rootLines = append(rootLines, line)
		}
	}
	if len(rootLines) == 0 {
		p.debugf("document has no significant root lines; empty mapping")
		return MappingValue(), nil
	}

	first := rootLines[0]
	header, isHeader, err := TryParseHeader(first.Content)
	if err != nil {
		return Value{}, wrapAt(first, err)
	}

	if isHeader && !header.HasKey {
		p.debugf("root form: array, length %d", header.Length)
		if err := p.advanceTo(first); err != nil {
			return Value{}, err
		}
		p.scan.Skip()
		return p.parseArrayBody(header, first)
	}

	if len(rootLines) == 1 && !isHeader && FirstUnquotedIndex(first.Content, ':') == -1 {
		p.debugf("root form: primitive")
		if err := p.advanceTo(first); err != nil {
			return Value{}, err
		}
		p.scan.Skip()
		v, err := ParsePrimitive(first.Content)
		if err != nil {
			return Value{}, wrapAt(first, err)
		}
		return v, nil
	}

	p.debugf("root form: mapping")
	return p.parseMapping(0)
}

// advanceTo moves the cursor onto target. Blanks and comments on the way
// are skipped; any other line before the root value is mis-indented.
func (p *parser) advanceTo(target Line) error {
	for {
		line, ok := p.scan.Peek()
		if !ok || line.Number == target.Number {
			return nil
		}
		if !line.Blank && !line.IsComment() && p.opts.Strict {
			return errorAt(line, "Unexpected indentation")
		}
		p.scan.Skip()
	}
}

// checkTrailingContent runs after the root value is consumed; leftover
// blanks and comments are always fine, anything else is an error in strict
// mode.
func (p *parser) checkTrailingContent() error {
	for {
		line, ok := p.scan.Next()
		if !ok {
			return nil
		}
		if line.Blank || line.IsComment() {
			continue
		}
		if p.opts.Strict {
			return errorAt(line, "Trailing content after root value")
		}
		p.debugf("line %d: ignoring trailing content", line.Number)
	}
}

// parseMapping consumes key/value lines at exactly base depth. Dispatch per
// line, in order: the anonymous '-:' sentinel, an array header, a key/value
// pair; a line no handler accepts ends the mapping.
func (p *parser) parseMapping(base int) (Value, error) {
	result := MappingValue()
	for {
		line, ok := p.scan.Peek()
		if !ok {
			break
		}
		if line.Blank || line.IsComment() {
			p.scan.Skip()
			continue
		}
		if line.Depth < base {
			break
		}
		if line.Depth > base {
			if p.opts.Strict {
				return Value{}, errorAt(line, "Unexpected indentation")
			}
			p.debugf("line %d: skipping over-indented line", line.Number)
			p.scan.Skip()
			continue
		}

		content := line.Content

		if strings.HasPrefix(content, "-:") {
			p.scan.Skip()
			v, err := ParsePrimitive(strings.TrimSpace(content[2:]))
			if err != nil {
				return Value{}, wrapAt(line, err)
			}
			if err := p.setKey(&result, "", v, line); err != nil {
				return Value{}, err
			}
			continue
		}

		header, isHeader, err := TryParseHeader(content)
		if err != nil {
			return Value{}, wrapAt(line, err)
		}
		if isHeader {
			if !header.HasKey {
				return Value{}, errorAt(line, "Header at object level must have a key")
			}
			p.scan.Skip()
			v, err := p.parseArrayBody(header, line)
			if err != nil {
				return Value{}, err
			}
			if err := p.setKey(&result, header.Key, v, line); err != nil {
				return Value{}, err
			}
			continue
		}

		colon := FirstUnquotedIndex(content, ':')
		if colon != -1 {
			p.scan.Skip()
			key, err := DecodeKey(strings.TrimSpace(content[:colon]))
			if err != nil {
				return Value{}, wrapAt(line, err)
			}
			rest := strings.TrimSpace(content[colon+1:])
			var v Value
			if rest == "" {
				v, err = p.parseMapping(base + 1)
			} else {
				v, err = ParsePrimitive(rest)
				err = wrapAt(line, err)
			}
			if err != nil {
				return Value{}, err
			}
			if err := p.setKey(&result, key, v, line); err != nil {
				return Value{}, err
			}
			continue
		}

		if FirstUnquotedIndex(content, '[') != -1 {
			return Value{}, errorAt(line, "Missing colon in header")
		}
		// no handler accepts; the mapping ends here and the caller decides
		// whether the line is trailing garbage
		break
	}
	return result, nil
}

// setKey enforces the duplicate-key policy: an error in strict mode, a
// replace-in-place in lenient mode.
func (p *parser) setKey(m *Value, key string, v Value, line Line) error {
	if _, exists := m.Lookup(key); exists {
		if p.opts.Strict {
			return errorAt(line, "Duplicate key: "+key)
		}
		p.debugf("line %d: duplicate key %q replaces earlier value", line.Number, key)
	}
	m.set(key, v)
	return nil
}

func (p *parser) parseArrayBody(header Header, headerLine Line) (Value, error) {
	switch {
	case header.Fields != nil:
		return p.parseTabular(header, headerLine)
	case header.Inline != "":
		return p.parseInline(header, headerLine)
	default:
		return p.parseExpandedList(header, headerLine)
	}
}

// parseInline handles the values after the colon on the header line itself.
func (p *parser) parseInline(header Header, headerLine Line) (Value, error) {
	parts, err := SplitDelimited(header.Inline, header.Delimiter.Byte())
	if err != nil {
		return Value{}, wrapAt(headerLine, err)
	}
	items := make([]Value, 0, len(parts))
	for _, part := range parts {
		v, err := ParsePrimitive(strings.TrimSpace(part))
		if err != nil {
			return Value{}, wrapAt(headerLine, err)
		}
		items = append(items, v)
	}
	if p.opts.Strict && len(items) != header.Length {
		return Value{}, errorAtf(headerLine, "Inline array length mismatch: expected %d, got %d",
			header.Length, len(items))
	}
	return SequenceValue(items...), nil
}

// endsArrayOnBlank implements the shared blank-line policy for tabular and
// list bodies: a blank ends the array when nothing at body depth follows;
// otherwise it is an error in strict mode and skipped in lenient mode.
func (p *parser) endsArrayOnBlank(bodyDepth int, blank Line, strictMsg string) (ended bool, err error) {
	next, ok := p.scan.NextNonBlankAfter()
	if !ok || next.Depth < bodyDepth {
		return true, nil
	}
	if p.opts.Strict {
		return false, errorAt(blank, strictMsg)
	}
	p.debugf("line %d: skipping blank line inside array", blank.Number)
	p.scan.Skip()
	return false, nil
}

// parseTabular consumes the delimited rows one level below the header.
func (p *parser) parseTabular(header Header, headerLine Line) (Value, error) {
	rowDepth := headerLine.Depth + 1
	delim := header.Delimiter.Byte()
	rows := make([]Value, 0, header.Length)
	for {
		line, ok := p.scan.Peek()
		if !ok {
			break
		}
		if line.Blank {
			ended, err := p.endsArrayOnBlank(rowDepth, line, "Blank line inside tabular rows is not allowed")
			if err != nil {
				return Value{}, err
			}
			if ended {
				break
			}
			continue
		}
		if line.Depth < rowDepth {
			break
		}
		if line.Depth > rowDepth {
			if p.opts.Strict {
				return Value{}, errorAt(line, "Unexpected indentation")
			}
			p.scan.Skip()
			continue
		}

		// a ':' before the first delimiter means this is a nested key of
		// whatever encloses the table, not a row
		colonIdx := FirstUnquotedIndex(line.Content, ':')
		delimIdx := FirstUnquotedIndex(line.Content, delim)
		if colonIdx != -1 && (delimIdx == -1 || colonIdx < delimIdx) {
			break
		}

		p.scan.Skip()
		parts, err := SplitDelimited(line.Content, delim)
		if err != nil {
			return Value{}, wrapAt(line, err)
		}
		if p.opts.Strict && len(parts) != len(header.Fields) {
			return Value{}, errorAtf(line, "Tabular row width mismatch: expected %d cells, got %d",
				len(header.Fields), len(parts))
		}
		row := MappingValue()
		for i, field := range header.Fields {
			if i >= len(parts) {
				break
			}
			v, err := ParsePrimitive(strings.TrimSpace(parts[i]))
			if err != nil {
				return Value{}, wrapAt(line, err)
			}
			row.set(field, v)
		}
		rows = append(rows, row)
		if p.opts.Strict && len(rows) > header.Length {
			return Value{}, errorAt(line, "Too many tabular rows")
		}
	}
	if p.opts.Strict && len(rows) != header.Length {
		return Value{}, errorAtf(headerLine, "Expected %d rows, got %d", header.Length, len(rows))
	}
	p.debugf("parsed tabular array: %d rows of %d fields", len(rows), len(header.Fields))
	return SequenceValue(rows...), nil
}

// parseExpandedList consumes '- item' lines one level below the header.
func (p *parser) parseExpandedList(header Header, headerLine Line) (Value, error) {
	itemDepth := headerLine.Depth + 1
	items := make([]Value, 0, header.Length)
	for {
		line, ok := p.scan.Peek()
		if !ok {
			break
		}
		if line.Blank {
			ended, err := p.endsArrayOnBlank(itemDepth, line, "Blank line inside list items is not allowed")
			if err != nil {
				return Value{}, err
			}
			if ended {
				break
			}
			continue
		}
		if line.Depth < itemDepth {
			break
		}
		if line.Depth > itemDepth {
			if p.opts.Strict {
				return Value{}, errorAt(line, "Unexpected indentation")
			}
			p.scan.Skip()
			continue
		}

		var body string
		if line.Content == "-" {
			body = ""
		} else if strings.HasPrefix(line.Content, "- ") {
			body = strings.TrimSpace(line.Content[2:])
		} else {
			if p.opts.Strict {
				return Value{}, errorAt(line, "Expected list item starting with '-'")
			}
			// lenient: not an item, the list ends here
			break
		}
		p.scan.Skip()

		if strings.HasPrefix(body, "[") || strings.HasPrefix(body, "{") || FirstUnquotedIndex(body, ':') != -1 {
			if p.opts.Strict {
				return Value{}, errorAt(line, "List item maps are not supported in strict mode")
			}
			item, err := p.parseLenientMappingItem(body, line, headerLine.Depth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
			continue
		}

		v, err := ParsePrimitive(body)
		if err != nil {
			return Value{}, wrapAt(line, err)
		}
		items = append(items, v)
	}
	if p.opts.Strict && len(items) != header.Length {
		return Value{}, errorAtf(headerLine, "List array item count mismatch: expected %d items, got %d",
			header.Length, len(items))
	}
	return SequenceValue(items...), nil
}

// parseLenientMappingItem handles '- key: ...' items in lenient mode as a
// single-key mapping, possibly with a nested block under it.
func (p *parser) parseLenientMappingItem(body string, line Line, headerDepth int) (Value, error) {
	colon := FirstUnquotedIndex(body, ':')
	if colon == -1 {
		v, err := ParsePrimitive(body)
		if err != nil {
			return Value{}, wrapAt(line, err)
		}
		return v, nil
	}
	key, err := DecodeKey(strings.TrimSpace(body[:colon]))
	if err != nil {
		return Value{}, wrapAt(line, err)
	}
	rest := strings.TrimSpace(body[colon+1:])
	var v Value
	if rest == "" {
		v, err = p.parseMapping(headerDepth + 2)
	} else {
		v, err = ParsePrimitive(rest)
		err = wrapAt(line, err)
	}
	if err != nil {
		return Value{}, err
	}
	return MappingValue(KV(key, v)), nil
}
