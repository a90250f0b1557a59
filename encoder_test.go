package toon

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexpera-br/toon-go/toonparser"
)

func dec(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func mustMarshal(t *testing.T, v any, opts ...EncodeOption) string {
	t.Helper()
	out, err := MarshalString(v, opts...)
	require.NoError(t, err)
	return out
}

func TestEncodeScalars(t *testing.T) {
	test := func(v Value, expected string) func(*testing.T) {
		return func(t *testing.T) {
			out, err := MarshalValue(v)
			require.NoError(t, err)
			assert.Equal(t, expected, out)
		}
	}

	t.Run("", test(toonparser.NullValue(), "null"))
	t.Run("", test(toonparser.BoolValue(true), "true"))
	t.Run("", test(toonparser.BoolValue(false), "false"))
	t.Run("", test(toonparser.IntValue(42), "42"))
	t.Run("", test(toonparser.IntValue(-7), "-7"))
	t.Run("", test(toonparser.StringValue("hello"), "hello"))
	t.Run("", test(toonparser.StringValue(""), `""`))
	t.Run("", test(toonparser.DecimalValue(decimal.New(15, -1)), "1.5"))
}

func TestNonFiniteFloatsBecomeNull(t *testing.T) {
	nan, err := FromGoValue(math.NaN())
	require.NoError(t, err)
	inf, err := FromGoValue(math.Inf(1))
	require.NoError(t, err)
	ninf, err := FromGoValue(math.Inf(-1))
	require.NoError(t, err)

	out := mustMarshal(t, []Field{
		toonparser.KV("ok", toonparser.IntValue(42)),
		toonparser.KV("nan", nan),
		toonparser.KV("inf", inf),
		toonparser.KV("ninf", ninf),
	})
	assert.Equal(t, strings.Join([]string{
		"ok: 42",
		"nan: null",
		"inf: null",
		"ninf: null",
	}, "\n"), out)
}

func TestCanonicalNumberFormatting(t *testing.T) {
	out := mustMarshal(t, []Field{
		toonparser.KV("a", toonparser.DecimalValue(dec(t, "1.5000"))),
		toonparser.KV("b", toonparser.DecimalValue(dec(t, "1e-3"))),
		toonparser.KV("c", toonparser.DecimalValue(dec(t, "0.000001"))),
		toonparser.KV("d", toonparser.DecimalValue(dec(t, "-0.0"))),
	})
	assert.Equal(t, strings.Join([]string{
		"a: 1.5",
		"b: 0.001",
		"c: 0.000001",
		"d: 0",
	}, "\n"), out)
}

func TestStringQuoting(t *testing.T) {
	test := func(s, expected string) func(*testing.T) {
		return func(t *testing.T) {
			out := mustMarshal(t, []Field{toonparser.KV("k", toonparser.StringValue(s))})
			assert.Equal(t, "k: "+expected, out)
		}
	}

	t.Run("", test("plain", "plain"))
	t.Run("", test("two words", "two words"))
	t.Run("", test("", `""`))
	t.Run("", test(" lead", `" lead"`))
	t.Run("", test("trail ", `"trail "`))
	t.Run("", test("true", `"true"`))
	t.Run("", test("null", `"null"`))
	t.Run("", test("~", `"~"`))
	t.Run("", test("42", `"42"`))
	t.Run("", test("05", `"05"`))
	t.Run("", test("1e3", `"1e3"`))
	t.Run("", test("-lead", `"-lead"`))
	t.Run("", test("#tag", `"#tag"`))
	t.Run("", test("a,b", `"a,b"`))
	t.Run("", test("a|b", `"a|b"`))
	t.Run("", test("with: colon", `"with: colon"`))
	t.Run("", test("bra[ck]et", `"bra[ck]et"`))
	t.Run("", test("line\nbreak", `"line\nbreak"`))
	t.Run("", test(`q"q`, `"q\"q"`))
	t.Run("", test(`back\slash`, `"back\\slash"`))
}

func TestKeyQuoting(t *testing.T) {
	out := mustMarshal(t, []Field{
		toonparser.KV("plain_key", toonparser.IntValue(1)),
		toonparser.KV("odd key", toonparser.IntValue(2)),
		toonparser.KV("", toonparser.IntValue(3)),
	})
	assert.Equal(t, strings.Join([]string{
		"plain_key: 1",
		`"odd key": 2`,
		`"": 3`,
	}, "\n"), out)
}

func TestEncodeTabular(t *testing.T) {
	users := toonparser.SequenceValue(
		toonparser.MappingValue(
			toonparser.KV("id", toonparser.IntValue(1)),
			toonparser.KV("name", toonparser.StringValue("Alice")),
			toonparser.KV("role", toonparser.StringValue("admin")),
		),
		toonparser.MappingValue(
			toonparser.KV("id", toonparser.IntValue(2)),
			toonparser.KV("name", toonparser.StringValue("Bob")),
			toonparser.KV("role", toonparser.StringValue("user")),
		),
	)
	out := mustMarshal(t, []Field{toonparser.KV("users", users)})
	assert.Equal(t, strings.Join([]string{
		"users[2]{id,name,role}:",
		"  1,Alice,admin",
		"  2,Bob,user",
	}, "\n"), out)

	marked := mustMarshal(t, []Field{toonparser.KV("users", users)}, LengthMarker())
	assert.True(t, strings.HasPrefix(marked, "users[#2]{id,name,role}:"))
}

func TestTabularNotEligible(t *testing.T) {
	// differing key order falls back to the list form and, since the rows
	// are mappings, encoding refuses
	rows := toonparser.SequenceValue(
		toonparser.MappingValue(toonparser.KV("a", toonparser.IntValue(1)), toonparser.KV("b", toonparser.IntValue(2))),
		toonparser.MappingValue(toonparser.KV("b", toonparser.IntValue(2)), toonparser.KV("a", toonparser.IntValue(1))),
	)
	_, err := MarshalValue(toonparser.MappingValue(toonparser.KV("rows", rows)))
	require.Error(t, err)
	assert.IsType(t, EncodeError{}, err)
}

func TestEncodeInlineArray(t *testing.T) {
	tags := toonparser.SequenceValue(
		toonparser.StringValue("red"), toonparser.StringValue("green"), toonparser.StringValue("blue"))
	out := mustMarshal(t, []Field{toonparser.KV("tags", tags)})
	assert.Equal(t, "tags[3]: red,green,blue", out)

	empty := toonparser.SequenceValue()
	out = mustMarshal(t, []Field{toonparser.KV("none", empty)})
	assert.Equal(t, "none[0]:", out)
}

func TestEncodeMixedList(t *testing.T) {
	mixed := toonparser.SequenceValue(
		toonparser.IntValue(1),
		toonparser.StringValue("two"),
		toonparser.SequenceValue(toonparser.IntValue(3)),
	)
	// nested sequence forces list form; scalars would be fine, the nested
	// container is not
	_, err := MarshalValue(toonparser.MappingValue(toonparser.KV("x", mixed)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toon:")
}

func TestEncodeRootSequence(t *testing.T) {
	out, err := MarshalValue(toonparser.SequenceValue(
		toonparser.IntValue(1), toonparser.IntValue(2)))
	require.NoError(t, err)
	assert.Equal(t, "items[2]: 1,2", out)
}

func TestEncodeDelimiterOptions(t *testing.T) {
	row := toonparser.MappingValue(
		toonparser.KV("a", toonparser.IntValue(1)),
		toonparser.KV("b", toonparser.StringValue("x,y")),
	)
	seq := toonparser.SequenceValue(row)

	// with a pipe delimiter the comma in the cell needs no quotes
	out := mustMarshal(t, []Field{toonparser.KV("r", seq)}, Delimiter(Pipe))
	assert.Equal(t, "r[1|]{a|b}:\n  1|x,y", out)

	// with the default comma it does
	out = mustMarshal(t, []Field{toonparser.KV("r", seq)})
	assert.Equal(t, "r[1]{a,b}:\n  1,\"x,y\"", out)

	out = mustMarshal(t, []Field{toonparser.KV("r", seq)}, Delimiter(Tab))
	assert.Equal(t, "r[1\t]{a\tb}:\n  1\tx,y", out)
}

func TestEncodeNestedMapping(t *testing.T) {
	v := toonparser.MappingValue(
		toonparser.KV("config", toonparser.MappingValue(
			toonparser.KV("title", toonparser.StringValue("My App")),
			toonparser.KV("debug", toonparser.BoolValue(true)),
			toonparser.KV("limits", toonparser.MappingValue(
				toonparser.KV("retries", toonparser.IntValue(3)),
				toonparser.KV("timeout", toonparser.DecimalValue(dec(t, "5.5"))),
			)),
		)),
	)
	out, err := MarshalValue(v)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"config:",
		"  title: My App",
		"  debug: true",
		"  limits:",
		"    retries: 3",
		"    timeout: 5.5",
	}, "\n"), out)
}

func TestEncodeIndentOption(t *testing.T) {
	v := toonparser.MappingValue(
		toonparser.KV("a", toonparser.MappingValue(
			toonparser.KV("b", toonparser.IntValue(1)))))
	out, err := MarshalValue(v, Indent(4))
	require.NoError(t, err)
	assert.Equal(t, "a:\n    b: 1", out)
}

func TestEncodeInvalidKind(t *testing.T) {
	_, err := MarshalValue(Value{})
	require.Error(t, err)
	assert.IsType(t, EncodeError{}, err)
}

func TestMarshalGoValues(t *testing.T) {
	out := mustMarshal(t, map[string]any{
		"b": 2,
		"a": 1,
	})
	// map keys come out sorted
	assert.Equal(t, "a: 1\nb: 2", out)

	out = mustMarshal(t, []any{1, "two", true, nil})
	assert.Equal(t, "items[4]: 1,two,true,null", out)

	_, err := MarshalString(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value")
}
