package toonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryParseHeader(t *testing.T) {
	test := func(content string, expected Header) func(*testing.T) {
		return func(t *testing.T) {
			header, ok, err := TryParseHeader(content)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, expected, header)
		}
	}

	t.Run("", test("tags[3]: red,green,blue", Header{
		Key: "tags", HasKey: true, Length: 3, Delimiter: DelimiterComma,
		Inline: "red,green,blue",
	}))
	t.Run("", test("users[2]{id,name}:", Header{
		Key: "users", HasKey: true, Length: 2, Delimiter: DelimiterComma,
		Fields: []string{"id", "name"},
	}))
	t.Run("", test("users[#2]{id,name}:", Header{
		Key: "users", HasKey: true, Length: 2, LengthMarker: true,
		Delimiter: DelimiterComma, Fields: []string{"id", "name"},
	}))
	t.Run("", test("[4]:", Header{Length: 4, Delimiter: DelimiterComma}))
	t.Run("", test("[#0]:", Header{Length: 0, LengthMarker: true, Delimiter: DelimiterComma}))
	t.Run("", test("rows[2|]{a|b}:", Header{
		Key: "rows", HasKey: true, Length: 2, Delimiter: DelimiterPipe,
		Fields: []string{"a", "b"},
	}))
	t.Run("", test("rows[2\t]{a\tb}:", Header{
		Key: "rows", HasKey: true, Length: 2, Delimiter: DelimiterTab,
		Fields: []string{"a", "b"},
	}))
	t.Run("", test(`"odd key"[1]: x`, Header{
		Key: "odd key", HasKey: true, Length: 1, Delimiter: DelimiterComma,
		Inline: "x",
	}))
	t.Run("", test(`items[2]{"field one",second}:`, Header{
		Key: "items", HasKey: true, Length: 2, Delimiter: DelimiterComma,
		Fields: []string{"field one", "second"},
	}))

	notHeader := func(content string) func(*testing.T) {
		return func(t *testing.T) {
			_, ok, err := TryParseHeader(content)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	}

	t.Run("", notHeader("key: value"))
	t.Run("", notHeader("plain text"))
	t.Run("", notHeader("a[1]"))              // no colon at all
	t.Run("", notHeader("note: see [1]"))     // bracket only right of the colon
	t.Run("", notHeader(`"k[2]": v`))         // bracket inside a quoted key
	t.Run("", notHeader("x: y[3]: z"))        // bracket after the first colon
}

func TestTryParseHeaderErrors(t *testing.T) {
	errtest := func(content, expectedMsg string) func(*testing.T) {
		return func(t *testing.T) {
			_, _, err := TryParseHeader(content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), expectedMsg)
		}
	}

	t.Run("", errtest("a[2:", "Invalid array header (missing [...])"))
	t.Run("", errtest("a[]:", "Invalid array length"))
	t.Run("", errtest("a[#]:", "Invalid array length"))
	t.Run("", errtest("a[x]:", "Invalid array length"))
	t.Run("", errtest("a[1.5]:", "Invalid array length"))
	t.Run("", errtest("a[-1]:", "Invalid array length"))
	t.Run("", errtest("a[2]{}:", "Missing fields in tabular header"))
	t.Run("", errtest("a[2]junk:", "Invalid header fields segment"))
	t.Run("", errtest("a[2]{x}: 1,2", "Unexpected inline values after tabular fields"))
	t.Run("", errtest("9bad[2]: 1,2", "Invalid unquoted key"))
	// a declared tab delimiter makes a comma-separated field list invalid
	t.Run("", errtest("rows[2\t]{a,b}:", "Invalid unquoted key"))
}
