package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecIf(t *testing.T) {
	st := New()
	st.Exec.Push(IntItem(1)) // false branch (second)
	st.Exec.Push(IntItem(2)) // true branch (top)
	st.Booleans.Push(true)
	callInstr(t, st, "EXEC.IF")
	top, ok := st.Exec.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(2), top.Int())

	st2 := New()
	st2.Exec.Push(IntItem(1))
	st2.Exec.Push(IntItem(2))
	st2.Booleans.Push(false)
	callInstr(t, st2, "EXEC.IF")
	top, ok = st2.Exec.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(1), top.Int())
}

func TestExecK(t *testing.T) {
	st := New()
	st.Exec.Push(IntItem(1))
	st.Exec.Push(IntItem(2))
	callInstr(t, st, "EXEC.K")
	require.Equal(t, 1, st.Exec.Size())
	top, ok := st.Exec.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(2), top.Int())
}

func TestExecS(t *testing.T) {
	st := New()
	st.Exec.Push(IntItem(1)) // A
	st.Exec.Push(IntItem(2)) // B
	st.Exec.Push(IntItem(3)) // C
	callInstr(t, st, "EXEC.S")
	require.Equal(t, 3, st.Exec.Size())
	top, ok := st.Exec.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(1), top.Int())
	top, ok = st.Exec.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), top.Int())
	top, ok = st.Exec.Pop()
	require.True(t, ok)
	assert.Equal(t, "(2 3)", top.Render())
}

func TestExecY(t *testing.T) {
	st := New()
	st.Exec.Push(InstructionItem("INTEGER.POP"))
	callInstr(t, st, "EXEC.Y")
	require.Equal(t, 2, st.Exec.Size())
	top, ok := st.Exec.Pop()
	require.True(t, ok)
	assert.Equal(t, KindInstruction, top.Kind())
	second, ok := st.Exec.Pop()
	require.True(t, ok)
	assert.Equal(t, "(EXEC.Y INTEGER.POP)", second.Render())
}

func TestExecDefine(t *testing.T) {
	st := New()
	st.Names.Push("double")
	st.Exec.Push(ListItem(InstructionItem("INTEGER.DUP"), InstructionItem("INTEGER.+")))
	callInstr(t, st, "EXEC.DEFINE")
	val, ok := st.lookup("double")
	require.True(t, ok)
	assert.Equal(t, "(INTEGER.DUP INTEGER.+)", val.Render())
	// EXEC.DEFINE peeks, leaving the definition body on EXEC too
	_, ok = st.Exec.Peek()
	assert.True(t, ok)
}

func TestExecLoopStopsWhenCurrentReachesDestination(t *testing.T) {
	st := New()
	st.Indexes.Push(Index{Current: 4, Destination: 4})
	st.Exec.Push(InstructionItem("INTEGER.POP"))
	callInstr(t, st, "EXEC.LOOP")
	assert.Equal(t, 0, st.Exec.Size())
	assert.Equal(t, 0, st.Indexes.Size(), "a terminated loop pops its spent INDEX")
}

func TestExecLoopContinuesOneStep(t *testing.T) {
	st := New()
	st.Indexes.Push(Index{Current: 0, Destination: 2})
	st.Exec.Push(InstructionItem("INDEX.CURRENT"))
	callInstr(t, st, "EXEC.LOOP")
	require.Equal(t, 2, st.Exec.Size())
	top, ok := st.Exec.Peek()
	require.True(t, ok)
	assert.Equal(t, KindInstruction, top.Kind())
}
