package main

import (
	"strconv"
	"strings"
)

func registerCodeInstructions(r *Registry) {
	stack := func(st *State) *Stack[Item] { return &st.Code }
	registerStackAlgebra(r, "CODE", stack, func(a, b Item) bool { return a.Equal(b) })

	r.register("CODE.APPEND", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		result := ListItem(vs[1], vs[0])
		if !withinProgramCap(st, result) {
			return
		}
		st.Code.PopVec(2)
		st.Code.Push(result)
	})

	r.register("CODE.ATOM", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.Booleans.Push(top.IsAtom())
	})

	r.register("CODE.CAR", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok || !top.IsList() {
			return
		}
		children := top.Children()
		if len(children) == 0 {
			return
		}
		st.Code.Pop()
		st.Code.Push(children[0])
	})

	r.register("CODE.CDR", func(st *State) {
		top, ok := st.Code.Pop()
		if !ok {
			return
		}
		if !top.IsList() || len(top.Children()) == 0 {
			st.Code.Push(EmptyList())
			return
		}
		st.Code.Push(ListItem(top.Children()[1:]...))
	})

	r.register("CODE.CONS", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		first, second := vs[0], vs[1]
		var result Item
		if first.IsList() {
			result = ListItem(append([]Item{second}, first.Children()...)...)
		} else {
			result = ListItem(second, first)
		}
		if !withinProgramCap(st, result) {
			return
		}
		st.Code.PopVec(2)
		st.Code.Push(result)
	})

	r.register("CODE.LIST", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		result := ListItem(vs[1], vs[0])
		if !withinProgramCap(st, result) {
			return
		}
		st.Code.PopVec(2)
		st.Code.Push(result)
	})

	r.register("CODE.LENGTH", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.Integers.Push(int32(top.ShallowSize()))
	})

	r.register("CODE.SIZE", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.Integers.Push(int32(top.Size()))
	})

	r.register("CODE.EXTRACT", func(st *State) {
		idx, ok := st.Integers.Pop()
		if !ok {
			return
		}
		top, ok := st.Code.Pop()
		if !ok {
			st.Integers.Push(idx)
			return
		}
		sub, _ := top.Traverse(clampIndex(idx, top.Size()))
		st.Code.Push(sub)
	})

	r.register("CODE.INSERT", func(st *State) {
		idx, ok := st.Integers.Pop()
		if !ok {
			return
		}
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			st.Integers.Push(idx)
			return
		}
		target, replacement := vs[0], vs[1]
		result := target.Insert(replacement, clampIndex(idx, target.Size()))
		if !withinProgramCap(st, result) {
			st.Integers.Push(idx)
			return
		}
		st.Code.PopVec(2)
		st.Code.Push(result)
	})

	r.register("CODE.NTH", func(st *State) {
		idx, ok := st.Integers.Pop()
		if !ok {
			return
		}
		top, ok := st.Code.Pop()
		if !ok {
			st.Integers.Push(idx)
			return
		}
		children := top.Children()
		if !top.IsList() || len(children) == 0 {
			st.Code.Push(top)
			st.Integers.Push(idx)
			return
		}
		st.Code.Push(children[clampIndex(idx, len(children))])
	})

	r.register("CODE.NULL", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.Booleans.Push(top.IsList() && len(top.Children()) == 0)
	})

	r.register("CODE.CONTAINS", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		st.Code.PopVec(2)
		needle, haystack := vs[0], vs[1]
		st.Booleans.Push(Contains(needle, haystack))
	})

	r.register("CODE.MEMBER", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		st.Code.PopVec(2)
		needle, haystack := vs[0], vs[1]
		found := false
		for d := 0; d < haystack.Size(); d++ {
			sub, ok := haystack.Traverse(d)
			if ok && sub.Equal(needle) {
				found = true
				break
			}
		}
		st.Booleans.Push(found)
	})

	r.register("CODE.POSITION", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		st.Code.PopVec(2)
		needle, haystack := vs[0], vs[1]
		position := int32(-1)
		for d := 0; d < haystack.Size(); d++ {
			sub, ok := haystack.Traverse(d)
			if ok && sub.Equal(needle) {
				position = int32(d)
				break
			}
		}
		st.Integers.Push(position)
	})

	r.register("CODE.CONTAINER", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		needle, haystack := vs[0], vs[1]
		sub, found := Container(needle, haystack)
		if !found {
			return
		}
		st.Code.PopVec(2)
		st.Code.Push(sub)
	})

	r.register("CODE.SUBST", func(st *State) {
		vs, ok := st.Code.CopyVec(3)
		if !ok {
			return
		}
		replacement, target, pattern := vs[0], vs[1], vs[2]
		replaced := strings.ReplaceAll(target.Render(), pattern.Render(), replacement.Render())
		result := Parse(replaced, st.Registry)
		if !withinProgramCap(st, result) {
			return
		}
		st.Code.PopVec(3)
		if children := result.Children(); len(children) == 1 {
			st.Code.Push(children[0])
		} else {
			st.Code.Push(result)
		}
	})

	r.register("CODE.DISCREPANCY", func(st *State) {
		vs, ok := st.Code.CopyVec(2)
		if !ok {
			return
		}
		st.Code.PopVec(2)
		a, b := vs[0], vs[1]
		if a.IsList() && b.IsList() {
			ca, cb := a.Children(), b.Children()
			n := len(ca)
			if len(cb) < n {
				n = len(cb)
			}
			mismatches := 0
			for i := 0; i < n; i++ {
				if !ca[i].Equal(cb[i]) {
					mismatches++
				}
			}
			diff := len(ca) - len(cb)
			if diff < 0 {
				diff = -diff
			}
			st.Integers.Push(int32(mismatches + diff))
			return
		}
		if a.Render() != b.Render() {
			st.Integers.Push(1)
		} else {
			st.Integers.Push(0)
		}
	})

	r.register("CODE.DO", func(st *State) {
		top, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.Exec.Push(InstructionItem("CODE.POP"))
		st.Exec.Push(top)
	})

	r.register("CODE.DO*", func(st *State) {
		top, ok := st.Code.Pop()
		if !ok {
			return
		}
		st.Exec.Push(top)
	})

	r.register("CODE.QUOTE", func(st *State) {
		top, ok := st.Exec.Pop()
		if !ok {
			return
		}
		st.Code.Push(top)
	})

	r.register("CODE.IF", func(st *State) {
		b, ok := st.Booleans.Pop()
		if !ok {
			return
		}
		items, ok := st.Code.CopyVec(2)
		if !ok {
			st.Booleans.Push(b)
			return
		}
		st.Code.PopVec(2)
		top, second := items[0], items[1]
		if b {
			st.Exec.Push(second)
		} else {
			st.Exec.Push(top)
		}
	})

	r.register("CODE.DO*RANGE", codeDoRange)
	r.register("CODE.DO*COUNT", codeDoCount)
	r.register("CODE.DO*TIMES", codeDoTimes)

	r.register("CODE.RAND", func(st *State) {
		n, ok := st.Integers.Pop()
		if !ok {
			return
		}
		cap := absInt32(n)
		if cap > int32(st.Config.MaxPointsInRandomExpressions) {
			cap = int32(st.Config.MaxPointsInRandomExpressions)
		}
		if cap < 1 {
			cap = 1
		}
		result := randomCodeItem(st, int(cap))
		if !withinProgramCap(st, result) {
			return
		}
		st.Code.Push(result)
	})

	r.register("CODE.DEFINE", func(st *State) {
		name, ok := st.Names.Pop()
		if !ok {
			return
		}
		val, ok := st.Code.Peek()
		if !ok {
			st.Names.Push(name)
			return
		}
		st.define(name, val)
	})

	r.register("CODE.DEFINITION", func(st *State) {
		name, ok := st.Names.Peek()
		if !ok {
			return
		}
		val, ok := st.lookup(name)
		if !ok {
			return
		}
		st.Names.Pop()
		st.Code.Push(val)
	})
}

// codeDoRange implements the inclusive counted loop of spec §4.9: current
// and destination come from INTEGER (destination on top, current below),
// body stays on CODE throughout (peeked, never popped) so the recursive
// continuation can always find it again.
func codeDoRange(st *State) {
	ints, ok := st.Integers.CopyVec(2)
	if !ok {
		return
	}
	body, ok := st.Code.Peek()
	if !ok {
		return
	}
	st.Integers.PopVec(2)
	destination, current := ints[0], ints[1]
	st.Integers.Push(current)

	if current == destination {
		st.Exec.Push(body)
		return
	}
	next := current + 1
	if current > destination {
		next = current - 1
	}
	continuation := ListItem(IntItem(next), IntItem(destination), InstructionItem("CODE.DO*RANGE"))
	st.Exec.Push(continuation)
	st.Exec.Push(body)
}

func codeDoCount(st *State) {
	n, ok := st.Integers.Peek()
	if !ok || n <= 0 {
		return
	}
	body, ok := st.Exec.Pop()
	if !ok {
		return
	}
	st.Integers.Pop()
	st.Code.Push(body)
	trigger := ListItem(IntItem(0), IntItem(n-1), InstructionItem("CODE.DO*RANGE"))
	st.Exec.Push(trigger)
}

func codeDoTimes(st *State) {
	n, ok := st.Integers.Peek()
	if !ok || n <= 0 {
		return
	}
	body, ok := st.Exec.Pop()
	if !ok {
		return
	}
	st.Integers.Pop()
	wrapped := ListItem(InstructionItem("INTEGER.POP"), body)
	st.Code.Push(wrapped)
	trigger := ListItem(IntItem(0), IntItem(n-1), InstructionItem("CODE.DO*RANGE"))
	st.Exec.Push(trigger)
}

// withinProgramCap reports whether item's size respects
// Config.MaxPointsInProgram (spec §6: instructions that would exceed it
// are no-ops). A zero cap means unbounded.
func withinProgramCap(st *State, item Item) bool {
	if st.Config.MaxPointsInProgram <= 0 {
		return true
	}
	return item.Size() <= st.Config.MaxPointsInProgram
}

func absInt32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// randomCodeItem implements the generator contract of spec §9: a
// well-formed Item tree of size <= budget, drawing from literals,
// instructions, lists, and names.
func randomCodeItem(st *State, budget int) Item {
	if budget <= 1 || st.rng.Float64() < 0.5 {
		return randomCodeLeaf(st)
	}
	n := 1 + st.rng.Intn(3)
	remaining := budget - 1
	children := make([]Item, 0, n)
	for i := 0; i < n && remaining > 0; i++ {
		share := remaining / (n - i)
		if share < 1 {
			share = 1
		}
		child := randomCodeItem(st, share)
		children = append(children, child)
		remaining -= child.Size()
	}
	return ListItem(children...)
}

func randomCodeLeaf(st *State) Item {
	switch st.rng.Intn(4) {
	case 0:
		return BoolItem(st.rng.Intn(2) == 1)
	case 1:
		lo, hi := st.Config.MinRandomInteger, st.Config.MaxRandomInteger
		if hi <= lo {
			return IntItem(0)
		}
		return IntItem(lo + st.rng.Int31n(hi-lo+1))
	case 2:
		names := st.Registry.Names()
		if len(names) == 0 {
			return BoolItem(true)
		}
		return InstructionItem(names[st.rng.Intn(len(names))])
	default:
		bound := st.boundNames()
		if st.rng.Float64() < st.Config.NewERCNameProbability || len(bound) == 0 {
			return IdentifierItem("VAR" + strconv.Itoa(int(st.rng.Int31())))
		}
		return IdentifierItem(bound[st.rng.Intn(len(bound))])
	}
}
