package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerArithmetic(t *testing.T) {
	st := New()
	st.Integers.Push(7)
	st.Integers.Push(3)
	callInstr(t, st, "INTEGER.-")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(4), v)
}

func TestIntegerFloorDivisionAndModulo(t *testing.T) {
	st := New()
	st.Integers.Push(-7)
	st.Integers.Push(2)
	callInstr(t, st, "INTEGER./")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(-4), v, "floor division rounds toward negative infinity")

	st2 := New()
	st2.Integers.Push(-7)
	st2.Integers.Push(2)
	callInstr(t, st2, "INTEGER.%")
	v, ok = st2.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(1), v, "floor modulo takes the sign of the divisor")
}

func TestIntegerDivideByZeroNoOps(t *testing.T) {
	st := New()
	st.Integers.Push(5)
	st.Integers.Push(0)
	callInstr(t, st, "INTEGER./")
	assert.Equal(t, 2, st.Integers.Size(), "zero divisor leaves both operands untouched")
}

func TestIntegerComparisons(t *testing.T) {
	st := New()
	st.Integers.Push(2)
	st.Integers.Push(5)
	callInstr(t, st, "INTEGER.<")
	b, ok := st.Booleans.Pop()
	require.True(t, ok)
	assert.True(t, b)
}

func TestIntegerMinMax(t *testing.T) {
	st := New()
	st.Integers.Push(9)
	st.Integers.Push(3)
	callInstr(t, st, "INTEGER.MIN")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}

func TestIntegerFromBooleanAndFloat(t *testing.T) {
	st := New()
	st.Booleans.Push(true)
	callInstr(t, st, "INTEGER.FROMBOOLEAN")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	st.Floats.Push(3.9)
	callInstr(t, st, "INTEGER.FROMFLOAT")
	v, ok = st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}

func TestIntegerRandWithinConfiguredRange(t *testing.T) {
	st := New(WithRandomIntegerRange(-5, 5))
	callInstr(t, st, "INTEGER.RAND")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.GreaterOrEqual(t, v, int32(-5))
	assert.LessOrEqual(t, v, int32(5))
}

func TestIntegerDefine(t *testing.T) {
	st := New()
	st.Names.Push("x")
	st.Integers.Push(10)
	callInstr(t, st, "INTEGER.DEFINE")
	val, ok := st.lookup("x")
	require.True(t, ok)
	assert.Equal(t, int32(10), val.Int())
}
