package toonparser

import (
	"strconv"
	"strings"
)

type Delimiter int

const (
	DelimiterComma Delimiter = iota + 1
	DelimiterTab
	DelimiterPipe
)

func (d Delimiter) Byte() byte {
	switch d {
	case DelimiterTab:
		return '\t'
	case DelimiterPipe:
		return '|'
	default:
		return ','
	}
}

func (d Delimiter) String() string {
	return delimiterToDescription[d]
}

func init() {
	for d := DelimiterComma; d <= DelimiterPipe; d++ {
		if delimiterToDescription[d] == "" {
			panic("you have not updated delimiterToDescription")
		}
	}
}

var delimiterToDescription = map[Delimiter]string{
	DelimiterComma: "comma",
	DelimiterTab:   "tab",
	DelimiterPipe:  "pipe",
}

// Header is a recognized array-header line:
//
//	key?[#?N<d>?]{fields}?: inline?
//
// Fields != nil means the array is tabular; Inline != "" means the values
// follow on the header line itself. Neither means an expanded '-' list.
type Header struct {
	Key          string
	HasKey       bool
	Length       int
	LengthMarker bool
	Delimiter    Delimiter
	Fields       []string
	Inline       string
}

// TryParseHeader recognizes an array header. A line is a header iff its
// part left of the first unquoted ':' contains a matched [...]; a line
// without that is simply not a header (ok=false), while a malformed bracket
// or fields segment is an error.
func TryParseHeader(content string) (Header, bool, error) {
	colon := FirstUnquotedIndex(content, ':')
	if colon == -1 {
		return Header{}, false, nil
	}
	left := content[:colon]
	tail := strings.TrimSpace(content[colon+1:])

	bracketStart := FirstUnquotedIndex(left, '[')
	if bracketStart == -1 {
		return Header{}, false, nil
	}
	closeOffset := FirstUnquotedIndex(left[bracketStart+1:], ']')
	if closeOffset == -1 {
		return Header{}, false, Error{Message: "Invalid array header (missing [...])"}
	}

	header := Header{Delimiter: DelimiterComma}

	keyToken := strings.TrimSpace(left[:bracketStart])
	if keyToken != "" {
		key, err := DecodeKey(keyToken)
		if err != nil {
			return Header{}, false, err
		}
		header.Key = key
		header.HasKey = true
	}

	if err := parseBracketSegment(left[bracketStart+1:bracketStart+1+closeOffset], &header); err != nil {
		return Header{}, false, err
	}

	fieldsSegment := strings.TrimSpace(left[bracketStart+1+closeOffset+1:])
	if fieldsSegment != "" {
		fields, err := parseFieldsSegment(fieldsSegment, header.Delimiter)
		if err != nil {
			return Header{}, false, err
		}
		header.Fields = fields
		if tail != "" {
			return Header{}, false, Error{Message: "Unexpected inline values after tabular fields"}
		}
	}

	header.Inline = tail
	return header, true, nil
}

// parseBracketSegment handles the '#?N<d>?' part between the brackets.
func parseBracketSegment(segment string, header *Header) error {
	if strings.HasPrefix(segment, "#") {
		header.LengthMarker = true
		segment = segment[1:]
	}
	digits := segment
	switch {
	case strings.HasSuffix(segment, "\t"):
		header.Delimiter = DelimiterTab
		digits = segment[:len(segment)-1]
	case strings.HasSuffix(segment, "|"):
		header.Delimiter = DelimiterPipe
		digits = segment[:len(segment)-1]
	}
	if digits == "" {
		return Error{Message: "Invalid array length"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Error{Message: "Invalid array length"}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Error{Message: "Invalid array length"}
	}
	header.Length = n
	return nil
}

func parseFieldsSegment(segment string, delim Delimiter) ([]string, error) {
	if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return nil, Error{Message: "Invalid header fields segment"}
	}
	inner := segment[1 : len(segment)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, Error{Message: "Missing fields in tabular header"}
	}
	tokens, err := SplitDelimited(inner, delim.Byte())
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		field, err := DecodeKey(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
