package toonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	assert.True(t, NullValue().Equal(NullValue()))
	assert.True(t, BoolValue(true).Equal(BoolValue(true)))
	assert.False(t, BoolValue(true).Equal(BoolValue(false)))
	assert.True(t, IntValue(5).Equal(IntValue(5)))
	assert.False(t, IntValue(5).Equal(IntValue(6)))
	assert.True(t, StringValue("x").Equal(StringValue("x")))

	// decimal equality is numeric, not representational
	a, _ := ParsePrimitive("1.5")
	b, _ := ParsePrimitive("1.50")
	assert.True(t, a.Equal(b))

	// integer and decimal are distinct kinds even for the same number
	five, _ := ParsePrimitive("5")
	fived, _ := ParsePrimitive("5.0")
	assert.False(t, five.Equal(fived))

	assert.False(t, NullValue().Equal(StringValue("null")))

	seq := SequenceValue(IntValue(1), StringValue("two"))
	assert.True(t, seq.Equal(SequenceValue(IntValue(1), StringValue("two"))))
	assert.False(t, seq.Equal(SequenceValue(IntValue(1))))
	assert.False(t, seq.Equal(SequenceValue(StringValue("two"), IntValue(1))))

	m := MappingValue(KV("a", IntValue(1)), KV("b", IntValue(2)))
	assert.True(t, m.Equal(MappingValue(KV("a", IntValue(1)), KV("b", IntValue(2)))))
	// key order is part of mapping identity
	assert.False(t, m.Equal(MappingValue(KV("b", IntValue(2)), KV("a", IntValue(1)))))

	// empty mapping and empty sequence are distinct
	assert.False(t, MappingValue().Equal(SequenceValue()))
}

func TestMappingSetAndLookup(t *testing.T) {
	m := MappingValue()
	assert.False(t, m.set("a", IntValue(1)))
	assert.False(t, m.set("b", IntValue(2)))
	// replacing keeps the original position
	assert.True(t, m.set("a", IntValue(3)))
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, IntValue(3), v)

	_, ok = m.Lookup("missing")
	assert.False(t, ok)

	_, ok = IntValue(1).Lookup("a")
	assert.False(t, ok)
}

func TestValueDebugString(t *testing.T) {
	v := MappingValue(
		KV("a", SequenceValue(IntValue(1), NullValue())),
		KV("b", StringValue("x")),
	)
	assert.Equal(t, `{"a":[1,null],"b":"x"}`, v.String())
}
