package main

func registerIntegerInstructions(r *Registry) {
	registerStackAlgebra(r, "INTEGER", func(st *State) *Stack[int32] { return &st.Integers }, func(a, b int32) bool { return a == b })

	binIntOp := func(name string, f func(a, b int32) (int32, bool)) {
		r.register(name, func(st *State) {
			vs, ok := st.Integers.CopyVec(2)
			if !ok {
				return
			}
			// vs[0] is top (B), vs[1] is second-from-top (A): A op B.
			result, ok := f(vs[1], vs[0])
			if !ok {
				return
			}
			st.Integers.PopVec(2)
			st.Integers.Push(result)
		})
	}

	binIntOp("INTEGER.+", func(a, b int32) (int32, bool) { return a + b, true })
	binIntOp("INTEGER.-", func(a, b int32) (int32, bool) { return a - b, true })
	binIntOp("INTEGER.*", func(a, b int32) (int32, bool) { return a * b, true })
	binIntOp("INTEGER./", func(a, b int32) (int32, bool) {
		if b == 0 {
			return 0, false
		}
		return floorDivInt(a, b), true
	})
	binIntOp("INTEGER.%", func(a, b int32) (int32, bool) {
		if b == 0 {
			return 0, false
		}
		return floorModInt(a, b), true
	})

	binIntCmp := func(name string, f func(a, b int32) bool) {
		r.register(name, func(st *State) {
			vs, ok := st.Integers.CopyVec(2)
			if !ok {
				return
			}
			st.Integers.PopVec(2)
			st.Booleans.Push(f(vs[1], vs[0]))
		})
	}
	binIntCmp("INTEGER.<", func(a, b int32) bool { return a < b })
	binIntCmp("INTEGER.>", func(a, b int32) bool { return a > b })

	r.register("INTEGER.MIN", func(st *State) {
		vs, ok := st.Integers.CopyVec(2)
		if !ok {
			return
		}
		st.Integers.PopVec(2)
		if vs[0] < vs[1] {
			st.Integers.Push(vs[0])
		} else {
			st.Integers.Push(vs[1])
		}
	})
	r.register("INTEGER.MAX", func(st *State) {
		vs, ok := st.Integers.CopyVec(2)
		if !ok {
			return
		}
		st.Integers.PopVec(2)
		if vs[0] > vs[1] {
			st.Integers.Push(vs[0])
		} else {
			st.Integers.Push(vs[1])
		}
	})

	r.register("INTEGER.FROMBOOLEAN", func(st *State) {
		v, ok := st.Booleans.Pop()
		if !ok {
			return
		}
		if v {
			st.Integers.Push(1)
		} else {
			st.Integers.Push(0)
		}
	})
	r.register("INTEGER.FROMFLOAT", func(st *State) {
		v, ok := st.Floats.Pop()
		if !ok {
			return
		}
		st.Integers.Push(int32(v))
	})

	r.register("INTEGER.RAND", func(st *State) {
		lo, hi := st.Config.MinRandomInteger, st.Config.MaxRandomInteger
		if hi <= lo {
			return
		}
		st.Integers.Push(lo + st.rng.Int31n(hi-lo+1))
	})

	r.register("INTEGER.DEFINE", func(st *State) {
		defineFromPop(st, st.Integers.Pop, IntItem)
	})
}

// floorDivInt and floorModInt implement truncation toward negative
// infinity, as spec §4.7 requires for signed remainder (and, by the same
// convention, division).
func floorDivInt(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int32) int32 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
