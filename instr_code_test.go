package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callInstr(t *testing.T, st *State, name string) {
	t.Helper()
	fn, ok := st.Registry.Get(name)
	require.True(t, ok, "instruction %s must be registered", name)
	fn(st)
}

func TestCodeConsCarCdr(t *testing.T) {
	st := New()
	st.Code.Push(IntItem(1))
	st.Code.Push(ListItem(IntItem(2), IntItem(3)))
	callInstr(t, st, "CODE.CONS")
	top, ok := st.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, "(1 2 3)", top.Render())

	callInstr(t, st, "CODE.CAR")
	top, ok = st.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(1), top.Int())
}

func TestCodeAtomAndNull(t *testing.T) {
	st := New()
	st.Code.Push(IntItem(5))
	callInstr(t, st, "CODE.ATOM")
	b, ok := st.Booleans.Pop()
	require.True(t, ok)
	assert.True(t, b)

	st.Code.Push(EmptyList())
	callInstr(t, st, "CODE.NULL")
	b, ok = st.Booleans.Pop()
	require.True(t, ok)
	assert.True(t, b)
}

func TestCodeLengthAndSize(t *testing.T) {
	st := New()
	st.Code.Push(ListItem(IntItem(1), IntItem(2), ListItem(IntItem(3))))
	callInstr(t, st, "CODE.LENGTH")
	n, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), n)

	callInstr(t, st, "CODE.SIZE")
	n, ok = st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(5), n)
}

func TestCodeExtractAndInsert(t *testing.T) {
	st := New()
	st.Integers.Push(3) // index of the "2" in pre-order
	st.Code.Push(ListItem(IntItem(1), ListItem(IntItem(2), IntItem(9))))
	callInstr(t, st, "CODE.EXTRACT")
	top, ok := st.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(2), top.Int())

	st2 := New()
	st2.Integers.Push(2)
	st2.Code.Push(IntItem(99))
	st2.Code.Push(ListItem(IntItem(1), IntItem(2), IntItem(3)))
	callInstr(t, st2, "CODE.INSERT")
	top, ok = st2.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, "(1 99 3)", top.Render())
}

func TestCodeDiscrepancy(t *testing.T) {
	st := New()
	st.Code.Push(ListItem(IntItem(1), IntItem(2), IntItem(3)))
	st.Code.Push(ListItem(IntItem(1), IntItem(9)))
	callInstr(t, st, "CODE.DISCREPANCY")
	n, ok := st.Integers.Pop()
	require.True(t, ok)
	// second element differs (2 vs 9) plus length difference of 1
	assert.Equal(t, int32(2), n)
}

func TestCodeQuoteAndIf(t *testing.T) {
	st := New()
	st.Exec.Push(IntItem(42))
	callInstr(t, st, "CODE.QUOTE")
	top, ok := st.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(42), top.Int())

	st2 := New()
	st2.Code.Push(IntItem(1)) // "true" branch (second)
	st2.Code.Push(IntItem(2)) // "false" branch (top)
	st2.Booleans.Push(true)
	callInstr(t, st2, "CODE.IF")
	top, ok = st2.Exec.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(1), top.Int())
}

func TestCodeDefineAndDefinition(t *testing.T) {
	st := New()
	st.Names.Push("square")
	st.Code.Push(ListItem(InstructionItem("INTEGER.DUP"), InstructionItem("INTEGER.*")))
	callInstr(t, st, "CODE.DEFINE")
	// DEFINE peeks, doesn't pop, the CODE value
	_, ok := st.Code.Peek()
	require.True(t, ok)

	st.Names.Push("square")
	callInstr(t, st, "CODE.DEFINITION")
	top, ok := st.Code.Peek()
	require.True(t, ok)
	assert.Equal(t, "(INTEGER.DUP INTEGER.*)", top.Render())
}

func TestCodeRandRespectsCap(t *testing.T) {
	st := New(WithMaxPointsInRandomExpressions(5))
	st.Integers.Push(1000)
	callInstr(t, st, "CODE.RAND")
	top, ok := st.Code.Peek()
	require.True(t, ok)
	assert.LessOrEqual(t, top.Size(), 5)
}
