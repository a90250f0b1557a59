package toonparser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var numberRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)
var unquotedKeyRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ParsePrimitive converts one already-trimmed token into a scalar Value.
// The rules, in order: empty token is the empty string; a leading '"' forces
// strict quoted-string decoding; the reserved literals true/false/null (and
// '~', accepted on decode only); numeric tokens, except that an integer part
// with leading zeros stays a string so zero-padded identifiers survive;
// anything else is an unquoted string equal to the token.
func ParsePrimitive(token string) (Value, error) {
	if token == "" {
		return StringValue(""), nil
	}
	if token[0] == '"' {
		s, err := UnquoteString(token)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	}
	switch token {
	case "true":
		return BoolValue(true), nil
	case "false":
		return BoolValue(false), nil
	case "null", "~":
		return NullValue(), nil
	}
	if numberRegexp.MatchString(token) {
		if hasLeadingZeroIntPart(token) {
			return StringValue(token), nil
		}
		return parseNumber(token)
	}
	return StringValue(token), nil
}

// hasLeadingZeroIntPart reports whether the integer part of a token already
// known to look numeric has leading zeros (05, 00123, -007); plain 0 and
// 0.5 are legitimate numbers.
func hasLeadingZeroIntPart(token string) bool {
	intPart := token
	if i := strings.IndexAny(intPart, ".eE"); i != -1 {
		intPart = intPart[:i]
	}
	intPart = strings.TrimPrefix(intPart, "-")
	return len(intPart) > 1 && intPart[0] == '0'
}

func parseNumber(token string) (Value, error) {
	if !strings.ContainsAny(token, ".eE") {
		n, err := strconv.ParseInt(token, 10, 64)
		if err == nil {
			if n == 0 {
				// normalizes -0
				return IntValue(0), nil
			}
			return IntValue(n), nil
		}
		var numErr *strconv.NumError
		if !(errors.As(err, &numErr) && numErr.Err == strconv.ErrRange) {
			return Value{}, Error{Message: "Invalid number: " + token}
		}
		// falls through: too wide for int64, keep it as a decimal
	}
	d, err := decimal.NewFromString(token)
	if err != nil {
		return Value{}, Error{Message: "Invalid number: " + token}
	}
	return DecimalValue(d), nil
}

// UnquoteString decodes a strict double-quoted string token. Exactly five
// escapes exist: \\ \" \n \r \t.
func UnquoteString(token string) (string, error) {
	if len(token) < 2 || token[0] != '"' {
		return "", Error{Message: "Unterminated string"}
	}
	var b strings.Builder
	i := 1
	for i < len(token) {
		c := token[i]
		switch c {
		case '"':
			if i != len(token)-1 {
				return "", Error{Message: "Unexpected content after closing quote"}
			}
			return b.String(), nil
		case '\\':
			if i+1 >= len(token) {
				return "", Error{Message: "Unterminated escape"}
			}
			switch token[i+1] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", Error{Message: "Invalid escape sequence: \\" + string(token[i+1])}
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", Error{Message: "Unterminated string"}
}

// DecodeKey decodes a mapping key or header field token: either a quoted
// string, or a bare token matching [A-Za-z_][A-Za-z0-9_.]*.
func DecodeKey(token string) (string, error) {
	if token == "" {
		return "", Error{Message: "Invalid unquoted key: empty"}
	}
	if token[0] == '"' {
		return UnquoteString(token)
	}
	if !unquotedKeyRegexp.MatchString(token) {
		return "", Error{Message: "Invalid unquoted key: " + strconv.Quote(token)}
	}
	return token, nil
}

// IsValidUnquotedKey reports whether the encoder may emit key without quotes.
func IsValidUnquotedKey(key string) bool {
	return unquotedKeyRegexp.MatchString(key)
}

// LooksNumeric reports whether s matches the numeric token shape, including
// the leading-zero forms that decode back to strings; the encoder quotes
// both so string/number identity survives a round trip.
func LooksNumeric(s string) bool {
	return numberRegexp.MatchString(s)
}
