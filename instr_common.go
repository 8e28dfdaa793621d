package main

// registerStackAlgebra wires the repertoire every scalar family in spec
// §4.7 shares — equality, duplicate, flush, pop, rot, swap, shove,
// stackdepth, yank, yank-dup — onto one of State's typed stacks.
// RAND and DEFINE differ enough per family (value domain, randomness
// source) that each family registers them on its own. The index operand
// for SHOVE/YANK/YANKDUP is always drawn from the INTEGER stack, per the
// convention used throughout §4.7-4.11 (even INTEGER's own SHOVE/YANK
// pulls its index off INTEGER first, then positions within what's left).
func registerStackAlgebra[T any](r *Registry, prefix string, stack func(*State) *Stack[T], eq func(a, b T) bool) {
	r.register(prefix+".=", func(st *State) {
		s := stack(st)
		vs, ok := s.CopyVec(2)
		if !ok {
			return
		}
		s.PopVec(2)
		st.Booleans.Push(eq(vs[0], vs[1]))
	})
	r.register(prefix+".DUP", func(st *State) { stack(st).Dup() })
	r.register(prefix+".FLUSH", func(st *State) { stack(st).Flush() })
	r.register(prefix+".POP", func(st *State) { stack(st).Pop() })
	r.register(prefix+".ROT", func(st *State) { stack(st).Rot() })
	r.register(prefix+".SWAP", func(st *State) { stack(st).Swap() })
	r.register(prefix+".SHOVE", func(st *State) {
		i, ok := st.Integers.Pop()
		if !ok {
			return
		}
		if !stack(st).Shove(int(i)) {
			st.Integers.Push(i)
		}
	})
	r.register(prefix+".STACKDEPTH", func(st *State) {
		st.Integers.Push(int32(stack(st).Size()))
	})
	r.register(prefix+".YANK", func(st *State) {
		i, ok := st.Integers.Pop()
		if !ok {
			return
		}
		if !stack(st).Yank(int(i)) {
			st.Integers.Push(i)
		}
	})
	r.register(prefix+".YANKDUP", func(st *State) {
		i, ok := st.Integers.Pop()
		if !ok {
			return
		}
		if !stack(st).YankDup(int(i)) {
			st.Integers.Push(i)
		}
	})
}

// defineFromPop is the shared shape of `*.DEFINE` for BOOLEAN, INTEGER,
// FLOAT and the three vector stacks (spec §4.7: "consumes top NAME and top
// value"): pop the binding
// name, pop the value, bind name -> wrap(value). Both pops must succeed or
// the instruction is a no-op, restoring whichever it already took.
func defineFromPop[T any](st *State, pop func() (T, bool), wrap func(T) Item) {
	name, ok := st.Names.Pop()
	if !ok {
		return
	}
	v, ok := pop()
	if !ok {
		st.Names.Push(name)
		return
	}
	st.define(name, wrap(v))
}

func clampNonNegative(n int32) int32 {
	if n < 0 {
		return 0
	}
	return n
}
