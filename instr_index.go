package main

func registerIndexInstructions(r *Registry) {
	// INDEX.DEFINE consumes the top INTEGER (clamped to >= 0) and creates
	// an Index with current = 0, destination = n (spec §4.11).
	r.register("INDEX.DEFINE", func(st *State) {
		n, ok := st.Integers.Pop()
		if !ok {
			return
		}
		st.Indexes.Push(Index{Current: 0, Destination: clampNonNegative(n)})
	})

	// INDEX.INCREASE bumps current up to but never past destination.
	r.register("INDEX.INCREASE", func(st *State) {
		idx, ok := st.Indexes.Peek()
		if !ok {
			return
		}
		if idx.Current < idx.Destination {
			idx.Current++
		}
		st.Indexes.Set(0, idx)
	})

	// INDEX.CURRENT peeks the top INDEX and pushes its current counter
	// onto INTEGER; needed by EXEC.LOOP bodies (spec §8 scenarios 4-5) to
	// observe the loop counter, though not separately named in §4.11.
	r.register("INDEX.CURRENT", func(st *State) {
		idx, ok := st.Indexes.Peek()
		if !ok {
			return
		}
		st.Integers.Push(idx.Current)
	})
}
