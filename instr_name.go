package main

import "strconv"

func registerNameInstructions(r *Registry) {
	registerStackAlgebra(r, "NAME", func(st *State) *Stack[string] { return &st.Names }, func(a, b string) bool { return a == b })

	// NAME.DEFINE: spec §4.7's "consumes top NAME and top value" applied
	// to NAME's own native domain — the value half is itself a name.
	r.register("NAME.DEFINE", func(st *State) {
		vs, ok := st.Names.CopyVec(2)
		if !ok {
			return
		}
		st.Names.PopVec(2)
		key, value := vs[1], vs[0]
		st.define(key, IdentifierItem(value))
	})

	// NAME.QUOTE sets the one-shot flag the interpreter's identifier rule
	// consumes (spec §4.6, §4.11).
	r.register("NAME.QUOTE", func(st *State) {
		st.quoteName = true
	})

	r.register("NAME.RAND", func(st *State) {
		for i := 0; ; i++ {
			candidate := "VAR" + strconv.Itoa(int(st.rng.Int31()))
			if _, bound := st.Env[candidate]; !bound {
				st.Names.Push(candidate)
				return
			}
			if i > 16 {
				st.Names.Push(candidate) // fresh-enough after repeated collisions
				return
			}
		}
	})

	r.register("NAME.RANDBOUNDNAME", func(st *State) {
		names := st.boundNames()
		if len(names) == 0 {
			return
		}
		st.Names.Push(names[st.rng.Intn(len(names))])
	})
}
