package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, st *State, source string) Result {
	t.Helper()
	program := Parse(source, st.Registry)
	result, err := Run(context.Background(), st, program)
	require.NoError(t, err)
	return result
}

func TestScenarioArithmeticAndBoolean(t *testing.T) {
	st := New()
	result := runProgram(t, st, "( 2 3 INTEGER.* 4.1 5.2 FLOAT.+ TRUE FALSE BOOLEAN.OR )")
	assert.Equal(t, Halted, result.Termination)

	i, ok := st.Integers.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(6), i)

	f, ok := st.Floats.Peek()
	require.True(t, ok)
	assert.InDelta(t, 9.3, f, 0.001)

	b, ok := st.Booleans.Peek()
	require.True(t, ok)
	assert.True(t, b)
}

func TestScenarioPotentiation(t *testing.T) {
	st := New()
	st.Integers.Push(4)
	st.Floats.Push(2.0)
	result := runProgram(t, st,
		"( ARG FLOAT.DEFINE EXEC.Y ( ARG FLOAT.* 1 INTEGER.- INTEGER.DUP 0 INTEGER.> EXEC.IF ( ) EXEC.POP ) )")
	assert.Equal(t, Halted, result.Termination)

	f, ok := st.Floats.Peek()
	require.True(t, ok)
	assert.InDelta(t, 16.0, f, 0.001)
}

func TestScenarioFactorial(t *testing.T) {
	st := New()
	st.Integers.Push(4)
	result := runProgram(t, st,
		"( CODE.QUOTE ( INTEGER.POP 1 ) CODE.QUOTE ( CODE.DUP INTEGER.DUP 1 INTEGER.- CODE.DO INTEGER.* ) INTEGER.DUP 2 INTEGER.< CODE.IF )")
	assert.Equal(t, Halted, result.Termination)

	i, ok := st.Integers.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(24), i)
}

func TestScenarioCountedSum(t *testing.T) {
	st := New()
	result := runProgram(t, st, "( 0 4 INDEX.DEFINE EXEC.LOOP ( INDEX.CURRENT INTEGER.+ ) )")
	assert.Equal(t, Halted, result.Termination)

	i, ok := st.Integers.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(6), i)
	assert.Equal(t, 0, st.Indexes.Size())
}

func TestScenarioZeroIterationLoop(t *testing.T) {
	st := New()
	result := runProgram(t, st, "( 0 0 INDEX.DEFINE EXEC.LOOP ( INDEX.CURRENT INTEGER.+ ) )")
	assert.Equal(t, Halted, result.Termination)

	i, ok := st.Integers.Peek()
	require.True(t, ok)
	assert.Equal(t, int32(0), i, "body never runs when current already equals destination")
}

func TestScenarioVectorAlignment(t *testing.T) {
	st := New()
	st.Integers.Push(0)
	runProgram(t, st, "BOOL[1,1,1,1,0,0,0,0] BOOL[1,0,1,0,1,0,1,0] BOOLVECTOR.AND")
	v, ok := st.BoolVectors.Peek()
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true, false, false, false, false, false}, v)

	st2 := New()
	st2.Integers.Push(8)
	runProgram(t, st2, "BOOL[1,1,1,1,0,0,0,0] BOOL[1,0,1,0,1,0,1,0] BOOLVECTOR.AND")
	v2, ok := st2.BoolVectors.Peek()
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true, false, true, false, true, false}, v2)
}

func TestStepLimitExceeded(t *testing.T) {
	st := New(WithEvalPushLimit(3))
	result := runProgram(t, st, "( EXEC.Y ( 1 INTEGER.POP ) )")
	assert.Equal(t, StepLimitExceeded, result.Termination)
}

func TestGrowthCapExceeded(t *testing.T) {
	st := New(WithGrowthCap(2), WithEvalPushLimit(100))
	result := runProgram(t, st, "( 1 2 3 4 5 6 7 8 9 10 )")
	assert.Equal(t, GrowthCapExceeded, result.Termination)
}

func TestEmptyProgramHalts(t *testing.T) {
	st := New()
	result := runProgram(t, st, "")
	assert.Equal(t, Halted, result.Termination)
	assert.Equal(t, 1, result.Steps) // one step expands the empty top-level list
}
