package main

func registerExecInstructions(r *Registry) {
	stack := func(st *State) *Stack[Item] { return &st.Exec }
	registerStackAlgebra(r, "EXEC", stack, func(a, b Item) bool { return a.Equal(b) })

	// EXEC.IF consumes BOOLEAN and the top two EXEC items; TRUE keeps the
	// top (discarding second), FALSE keeps the second (discarding top) -
	// the mirror image of CODE.IF's convention (spec §4.10).
	r.register("EXEC.IF", func(st *State) {
		b, ok := st.Booleans.Pop()
		if !ok {
			return
		}
		vs, ok := st.Exec.CopyVec(2)
		if !ok {
			st.Booleans.Push(b)
			return
		}
		st.Exec.PopVec(2)
		top, second := vs[0], vs[1]
		if b {
			st.Exec.Push(top)
		} else {
			st.Exec.Push(second)
		}
	})

	// EXEC.K discards the second item, keeping only the top to execute.
	r.register("EXEC.K", func(st *State) {
		vs, ok := st.Exec.CopyVec(2)
		if !ok {
			return
		}
		st.Exec.PopVec(2)
		st.Exec.Push(vs[0])
	})

	// EXEC.S: given A (third), B (second), C (top), arranges execution so
	// A runs first, applied to (B C), then C runs again: push (B C), then
	// C, then A, so A ends up on top and runs first.
	r.register("EXEC.S", func(st *State) {
		vs, ok := st.Exec.CopyVec(3)
		if !ok {
			return
		}
		st.Exec.PopVec(3)
		c, b, a := vs[0], vs[1], vs[2]
		st.Exec.Push(ListItem(b, c))
		st.Exec.Push(c)
		st.Exec.Push(a)
	})

	// EXEC.Y: pops the top and pushes it back with a self-replicating
	// continuation (EXEC.Y top-clone) beneath it, so the top runs once more
	// with EXEC.Y still available beneath it to recurse.
	r.register("EXEC.Y", func(st *State) {
		top, ok := st.Exec.Pop()
		if !ok {
			return
		}
		st.Exec.Push(ListItem(InstructionItem("EXEC.Y"), top.Clone()))
		st.Exec.Push(top)
	})

	// EXEC.DEFINE peeks (does not pop) the top EXEC item and binds it to
	// the next NAME, mirroring CODE.DEFINE's non-consuming convention.
	r.register("EXEC.DEFINE", func(st *State) {
		name, ok := st.Names.Pop()
		if !ok {
			return
		}
		val, ok := st.Exec.Peek()
		if !ok {
			st.Names.Push(name)
			return
		}
		st.define(name, val)
	})

	// EXEC.LOOP drives the counted INDEX loop of spec §4.10/§4.11. The
	// continuation splices INDEX.INCREASE, then EXEC.LOOP, then a cloned
	// copy of the body - EXEC.LOOP's own dispatch immediately pops that
	// trailing clone as its operand before it would otherwise auto-run,
	// which is what avoids executing the body twice per index step.
	r.register("EXEC.LOOP", func(st *State) {
		body, ok := st.Exec.Pop()
		if !ok {
			return
		}
		idx, ok := st.Indexes.Peek()
		if !ok {
			return
		}
		if idx.Current >= idx.Destination {
			st.Indexes.Pop()
			return
		}
		continuation := ListItem(InstructionItem("INDEX.INCREASE"), InstructionItem("EXEC.LOOP"), body.Clone())
		st.Exec.Push(continuation)
		st.Exec.Push(body)
	})
}
