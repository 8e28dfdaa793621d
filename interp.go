package main

import (
	"context"
	"time"

	"github.com/pushlang/push/internal/panicerr"
)

// Termination names why a run stopped.
type Termination int

const (
	// Halted means EXEC ran empty: the program finished normally.
	Halted Termination = iota
	// StepLimitExceeded means Config.EvalPushLimit steps were exhausted.
	StepLimitExceeded
	// TimeLimitExceeded means Config.EvalTimeLimit (or the caller's
	// context) elapsed before EXEC emptied.
	TimeLimitExceeded
	// GrowthCapExceeded means a single step grew State.TotalSize() by
	// more than Config.GrowthCap.
	GrowthCapExceeded
)

func (t Termination) String() string {
	switch t {
	case Halted:
		return "halted"
	case StepLimitExceeded:
		return "step limit exceeded"
	case TimeLimitExceeded:
		return "time limit exceeded"
	case GrowthCapExceeded:
		return "growth cap exceeded"
	default:
		return "unknown termination"
	}
}

// Result reports how a run ended.
type Result struct {
	Termination Termination
	Steps       int
}

// Run executes program against st until EXEC empties or one of the three
// budgets in spec §4.6 trips. Before the first step, the initial EXEC
// contents are copied onto CODE so CODE-manipulating instructions can
// reference the whole program, per spec §4.6.
//
// Run is single-threaded and cooperative: no instruction suspends, and
// the only checkpoint is between steps, matching spec §5. ctx layers an
// external deadline on top of Config.EvalTimeLimit, mirroring how
// gothird's own CLI threads a context.Context through vm.Run — the two
// are otherwise equivalent "ran out of wall-clock budget" conditions and
// are reported identically as TimeLimitExceeded.
func Run(ctx context.Context, st *State, program Item) (Result, error) {
	st.Exec.Push(program)
	st.Code.Push(program.Clone())

	var result Result
	err := panicerr.Recover("push.Run", func() error {
		start := time.Now()
		steps := 0
		for {
			if st.Exec.Size() == 0 {
				result = Result{Termination: Halted, Steps: steps}
				return nil
			}

			steps++
			if st.Config.EvalPushLimit > 0 && steps > st.Config.EvalPushLimit {
				result = Result{Termination: StepLimitExceeded, Steps: steps}
				return nil
			}
			if st.Config.EvalTimeLimit > 0 && time.Since(start) > st.Config.EvalTimeLimit {
				result = Result{Termination: TimeLimitExceeded, Steps: steps}
				return nil
			}
			if err := ctx.Err(); err != nil {
				result = Result{Termination: TimeLimitExceeded, Steps: steps}
				return nil
			}

			if st.Config.Logf != nil {
				if top, ok := st.Exec.Peek(); ok {
					st.Config.Logf("step %d: exec top %s", steps, top.Render())
				}
			}

			before := st.TotalSize()
			st.step()
			after := st.TotalSize()

			if cap := st.Config.GrowthCap; cap > 0 && after-before > cap {
				result = Result{Termination: GrowthCapExceeded, Steps: steps}
				return nil
			}
		}
	})
	return result, err
}

// step pops the top of EXEC and dispatches by kind (spec §4.6).
func (st *State) step() {
	top, ok := st.Exec.Pop()
	if !ok {
		return
	}

	switch top.Kind() {
	case KindList:
		st.Exec.PushVec(top.Children())

	case KindBoolean:
		st.Booleans.Push(top.Bool())
	case KindInteger:
		st.Integers.Push(top.Int())
	case KindFloat:
		st.Floats.Push(top.Float())
	case KindBoolVector:
		st.BoolVectors.Push(top.BoolVec())
	case KindIntVector:
		st.IntVectors.Push(top.IntVec())
	case KindFloatVector:
		st.FloatVectors.Push(top.FloatVec())
	case KindIndex:
		st.Indexes.Push(top.Index())

	case KindInstruction:
		if fn, ok := st.Registry.Get(top.Text()); ok {
			fn(st)
		}
		// unregistered instruction reference: no-op, per spec §4.6.

	case KindIdentifier:
		if st.quoteName {
			st.quoteName = false
			st.Names.Push(top.Text())
			return
		}
		if val, ok := st.lookup(top.Text()); ok {
			st.Exec.Push(val)
			return
		}
		st.Names.Push(top.Text())
	}
}
