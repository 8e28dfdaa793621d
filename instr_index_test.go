package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexDefine(t *testing.T) {
	st := New()
	st.Integers.Push(5)
	callInstr(t, st, "INDEX.DEFINE")
	idx, ok := st.Indexes.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(0), idx.Current)
	assert.Equal(t, int32(5), idx.Destination)
}

func TestIndexDefineClampsNegative(t *testing.T) {
	st := New()
	st.Integers.Push(-3)
	callInstr(t, st, "INDEX.DEFINE")
	idx, ok := st.Indexes.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(0), idx.Destination)
}

func TestIndexIncreaseStopsAtDestination(t *testing.T) {
	st := New()
	st.Indexes.Push(Index{Current: 4, Destination: 4})
	callInstr(t, st, "INDEX.INCREASE")
	idx, ok := st.Indexes.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(4), idx.Current)
}

func TestIndexIncreaseAdvances(t *testing.T) {
	st := New()
	st.Indexes.Push(Index{Current: 1, Destination: 4})
	callInstr(t, st, "INDEX.INCREASE")
	idx, ok := st.Indexes.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(2), idx.Current)
}

func TestIndexCurrent(t *testing.T) {
	st := New()
	st.Indexes.Push(Index{Current: 3, Destination: 9})
	callInstr(t, st, "INDEX.CURRENT")
	v, ok := st.Integers.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}
