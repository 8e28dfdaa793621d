package main

func registerBooleanInstructions(r *Registry) {
	registerStackAlgebra(r, "BOOLEAN", func(st *State) *Stack[bool] { return &st.Booleans }, func(a, b bool) bool { return a == b })

	r.register("BOOLEAN.AND", func(st *State) {
		vs, ok := st.Booleans.CopyVec(2)
		if !ok {
			return
		}
		st.Booleans.PopVec(2)
		st.Booleans.Push(vs[0] && vs[1])
	})
	r.register("BOOLEAN.OR", func(st *State) {
		vs, ok := st.Booleans.CopyVec(2)
		if !ok {
			return
		}
		st.Booleans.PopVec(2)
		st.Booleans.Push(vs[0] || vs[1])
	})
	r.register("BOOLEAN.NOT", func(st *State) {
		v, ok := st.Booleans.Pop()
		if !ok {
			return
		}
		st.Booleans.Push(!v)
	})

	r.register("BOOLEAN.FROMFLOAT", func(st *State) {
		v, ok := st.Floats.Pop()
		if !ok {
			return
		}
		st.Booleans.Push(v == 0.0)
	})
	r.register("BOOLEAN.FROMINTEGER", func(st *State) {
		v, ok := st.Integers.Pop()
		if !ok {
			return
		}
		st.Booleans.Push(v == 0)
	})

	r.register("BOOLEAN.RAND", func(st *State) {
		st.Booleans.Push(st.rng.Intn(2) == 1)
	})

	r.register("BOOLEAN.DEFINE", func(st *State) {
		defineFromPop(st, st.Booleans.Pop, BoolItem)
	})
}
