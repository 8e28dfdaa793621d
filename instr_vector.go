package main

// registerElementwiseOp wires the aligned elementwise family described in
// spec §4.8: given top A and second-from-top B and an offset k popped from
// INTEGER, for each index i of B, if i+k lands inside A, A[i+k] becomes
// op(A[i+k], B[i]); otherwise it is untouched. Both operands are popped
// and the result, built on a copy of the top (B's values are only read),
// is pushed, so an offset that slides every index out of range pushes the
// top back unchanged.
// If op ever reports failure (a zero divisor), the whole instruction
// no-ops — nothing is consumed — rather than leaving a partially-combined
// vector.
func registerElementwiseOp[T any](r *Registry, name string, stack func(*State) *Stack[[]T], op func(a, b T) (T, bool)) {
	r.register(name, func(st *State) {
		vecs, ok := stack(st).CopyVec(2)
		if !ok {
			return
		}
		k, ok := st.Integers.Peek()
		if !ok {
			return
		}
		top, second := vecs[0], vecs[1]
		result := append([]T(nil), top...)
		for i := 0; i < len(second); i++ {
			j := i + int(k)
			if j < 0 || j >= len(result) {
				continue
			}
			v, ok := op(result[j], second[i])
			if !ok {
				return
			}
			result[j] = v
		}
		st.Integers.Pop()
		stack(st).PopVec(2)
		stack(st).Push(result)
	})
}

func registerVectorGetSet[T any](r *Registry, prefix string, stack func(*State) *Stack[[]T], scalar func(*State) *Stack[T]) {
	r.register(prefix+".GET", func(st *State) {
		idx, ok := st.Integers.Pop()
		if !ok {
			return
		}
		v, ok := stack(st).Peek()
		if !ok || len(v) == 0 {
			st.Integers.Push(idx)
			return
		}
		scalar(st).Push(v[clampIndex(idx, len(v))])
	})

	r.register(prefix+".SET", func(st *State) {
		idx, ok := st.Integers.Pop()
		if !ok {
			return
		}
		val, ok := scalar(st).Pop()
		if !ok {
			st.Integers.Push(idx)
			return
		}
		v, ok := stack(st).Pop()
		if !ok || len(v) == 0 {
			st.Integers.Push(idx)
			scalar(st).Push(val)
			return
		}
		updated := append([]T(nil), v...)
		updated[clampIndex(idx, len(updated))] = val
		stack(st).Push(updated)
	})
}

func registerBoolVectorInstructions(r *Registry) {
	stack := func(st *State) *Stack[[]bool] { return &st.BoolVectors }
	registerStackAlgebra(r, "BOOLVECTOR", stack, equalSlice[bool])
	registerVectorGetSet(r, "BOOLVECTOR", stack, func(st *State) *Stack[bool] { return &st.Booleans })
	r.register("BOOLVECTOR.DEFINE", func(st *State) { defineFromPop(st, stack(st).Pop, BoolVectorItem) })

	registerElementwiseOp(r, "BOOLVECTOR.AND", stack, func(a, b bool) (bool, bool) { return a && b, true })
	registerElementwiseOp(r, "BOOLVECTOR.OR", stack, func(a, b bool) (bool, bool) { return a || b, true })

	r.register("BOOLVECTOR.NOT", func(st *State) {
		v, ok := stack(st).Pop()
		if !ok {
			return
		}
		negated := make([]bool, len(v))
		for i, b := range v {
			negated[i] = !b
		}
		stack(st).Push(negated)
	})

	r.register("BOOLVECTOR.RAND", func(st *State) {
		size, ok := st.Integers.Peek()
		if !ok {
			return
		}
		sparsity, ok := st.Floats.Peek()
		if !ok {
			return
		}
		if size < 0 || sparsity < 0 || sparsity > 1 {
			return
		}
		st.Integers.Pop()
		st.Floats.Pop()
		v := make([]bool, size)
		for i := range v {
			v[i] = st.rng.Float64() >= float64(sparsity)
		}
		stack(st).Push(v)
	})
}

func registerIntVectorInstructions(r *Registry) {
	stack := func(st *State) *Stack[[]int32] { return &st.IntVectors }
	registerStackAlgebra(r, "INTVECTOR", stack, equalSlice[int32])
	registerVectorGetSet(r, "INTVECTOR", stack, func(st *State) *Stack[int32] { return &st.Integers })
	r.register("INTVECTOR.DEFINE", func(st *State) { defineFromPop(st, stack(st).Pop, IntVectorItem) })

	registerElementwiseOp(r, "INTVECTOR.ADD", stack, func(a, b int32) (int32, bool) { return a + b, true })
	registerElementwiseOp(r, "INTVECTOR.SUBTRACT", stack, func(a, b int32) (int32, bool) { return a - b, true })
	registerElementwiseOp(r, "INTVECTOR.MULTIPLY", stack, func(a, b int32) (int32, bool) { return a * b, true })
	registerElementwiseOp(r, "INTVECTOR.DIVIDE", stack, func(a, b int32) (int32, bool) {
		if b == 0 {
			return 0, false
		}
		return floorDivInt(a, b), true
	})

	r.register("INTVECTOR.RAND", func(st *State) {
		ints, ok := st.Integers.CopyVec(3)
		if !ok {
			return
		}
		max, min, size := ints[0], ints[1], ints[2]
		if size < 0 || max < min {
			return
		}
		st.Integers.PopVec(3)
		v := make([]int32, size)
		for i := range v {
			v[i] = min + st.rng.Int31n(max-min+1)
		}
		stack(st).Push(v)
	})

	r.register("INTVECTOR.BOOLINDEX", func(st *State) {
		v, ok := st.BoolVectors.Pop()
		if !ok {
			return
		}
		var indices []int32
		for i, b := range v {
			if b {
				indices = append(indices, int32(i))
			}
		}
		stack(st).Push(indices)
	})
}

func registerFloatVectorInstructions(r *Registry) {
	stack := func(st *State) *Stack[[]float32] { return &st.FloatVectors }
	registerStackAlgebra(r, "FLOATVECTOR", stack, equalSlice[float32])
	registerVectorGetSet(r, "FLOATVECTOR", stack, func(st *State) *Stack[float32] { return &st.Floats })
	r.register("FLOATVECTOR.DEFINE", func(st *State) { defineFromPop(st, stack(st).Pop, FloatVectorItem) })

	registerElementwiseOp(r, "FLOATVECTOR.ADD", stack, func(a, b float32) (float32, bool) { return a + b, true })
	registerElementwiseOp(r, "FLOATVECTOR.SUBTRACT", stack, func(a, b float32) (float32, bool) { return a - b, true })
	registerElementwiseOp(r, "FLOATVECTOR.MULTIPLY", stack, func(a, b float32) (float32, bool) { return a * b, true })
	registerElementwiseOp(r, "FLOATVECTOR.DIVIDE", stack, func(a, b float32) (float32, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	})

	r.register("FLOATVECTOR.RAND", func(st *State) {
		size, ok := st.Integers.Peek()
		if !ok {
			return
		}
		floats, ok := st.Floats.CopyVec(2)
		if !ok {
			return
		}
		stddev, mean := floats[0], floats[1]
		if size < 0 || stddev < 0 {
			return
		}
		st.Integers.Pop()
		st.Floats.PopVec(2)
		v := make([]float32, size)
		for i := range v {
			v[i] = mean + float32(st.rng.NormFloat64())*stddev
		}
		stack(st).Push(v)
	})
}

// registerVectorInstructions wires all three vector domains; split into
// per-domain functions above since each couples to a different scalar
// stack and a different element type.
func registerVectorInstructions(r *Registry) {
	registerBoolVectorInstructions(r)
	registerIntVectorInstructions(r)
	registerFloatVectorInstructions(r)
}
