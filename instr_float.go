package main

import "math"

func registerFloatInstructions(r *Registry) {
	registerStackAlgebra(r, "FLOAT", func(st *State) *Stack[float32] { return &st.Floats }, func(a, b float32) bool { return a == b })

	binFloatOp := func(name string, f func(a, b float32) (float32, bool)) {
		r.register(name, func(st *State) {
			vs, ok := st.Floats.CopyVec(2)
			if !ok {
				return
			}
			result, ok := f(vs[1], vs[0])
			if !ok {
				return
			}
			st.Floats.PopVec(2)
			st.Floats.Push(result)
		})
	}

	binFloatOp("FLOAT.+", func(a, b float32) (float32, bool) { return a + b, true })
	binFloatOp("FLOAT.-", func(a, b float32) (float32, bool) { return a - b, true })
	binFloatOp("FLOAT.*", func(a, b float32) (float32, bool) { return a * b, true })
	binFloatOp("FLOAT./", func(a, b float32) (float32, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	})
	binFloatOp("FLOAT.%", func(a, b float32) (float32, bool) {
		if b == 0 {
			return 0, false
		}
		return float32(floorModFloat(float64(a), float64(b))), true
	})

	binFloatCmp := func(name string, f func(a, b float32) bool) {
		r.register(name, func(st *State) {
			vs, ok := st.Floats.CopyVec(2)
			if !ok {
				return
			}
			st.Floats.PopVec(2)
			st.Booleans.Push(f(vs[1], vs[0]))
		})
	}
	binFloatCmp("FLOAT.<", func(a, b float32) bool { return a < b })
	binFloatCmp("FLOAT.>", func(a, b float32) bool { return a > b })

	r.register("FLOAT.MIN", func(st *State) {
		vs, ok := st.Floats.CopyVec(2)
		if !ok {
			return
		}
		st.Floats.PopVec(2)
		if vs[0] < vs[1] {
			st.Floats.Push(vs[0])
		} else {
			st.Floats.Push(vs[1])
		}
	})
	r.register("FLOAT.MAX", func(st *State) {
		vs, ok := st.Floats.CopyVec(2)
		if !ok {
			return
		}
		st.Floats.PopVec(2)
		if vs[0] > vs[1] {
			st.Floats.Push(vs[0])
		} else {
			st.Floats.Push(vs[1])
		}
	})

	r.register("FLOAT.FROMBOOLEAN", func(st *State) {
		v, ok := st.Booleans.Pop()
		if !ok {
			return
		}
		if v {
			st.Floats.Push(1)
		} else {
			st.Floats.Push(0)
		}
	})
	r.register("FLOAT.FROMINTEGER", func(st *State) {
		v, ok := st.Integers.Pop()
		if !ok {
			return
		}
		st.Floats.Push(float32(v))
	})

	r.register("FLOAT.RAND", func(st *State) {
		lo, hi := st.Config.MinRandomFloat, st.Config.MaxRandomFloat
		if hi <= lo {
			return
		}
		st.Floats.Push(lo + st.rng.Float32()*(hi-lo))
	})

	r.register("FLOAT.DEFINE", func(st *State) {
		defineFromPop(st, st.Floats.Pop, FloatItem)
	})
}

func floorModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
