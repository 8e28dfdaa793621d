package main

import "math/rand"

// State is the aggregate of everything one Push run mutates: all ten
// typed stacks, the name environment, the one-shot quote flag, the run's
// Config, and the instruction Registry it dispatches through. It plays
// the same "everything the interpreter touches lives in one struct"
// role gothird's VM struct plays for FIRST/THIRD, generalized from one
// linear memory + one data stack to Push's eight value domains plus the
// two Item-valued control stacks.
//
// A State is created fresh per run (New) and is never safe to share
// between concurrent runs; see spec §5.
type State struct {
	Booleans      Stack[bool]
	Integers      Stack[int32]
	Floats        Stack[float32]
	Names         Stack[string]
	BoolVectors   Stack[[]bool]
	IntVectors    Stack[[]int32]
	FloatVectors  Stack[[]float32]
	Indexes       Stack[Index]
	Code          Stack[Item]
	Exec          Stack[Item]

	Env map[string]Item

	quoteName bool

	Config   Config
	Registry *Registry

	rng *rand.Rand
}

// New builds a fresh State with the registry loaded and Config built from
// defaultConfig plus any overrides, matching gothird's New(opts...)
// pattern in spirit (see SPEC_FULL.md's config section).
func New(opts ...Option) *State {
	return &State{
		Env:      make(map[string]Item),
		Config:   defaultConfig.apply(opts...),
		Registry: NewRegistry(),
		rng:      rand.New(rand.NewSource(1)),
	}
}

// TotalSize sums every stack's size plus the environment's size; the
// interpreter's growth-cap check (spec §4.6) compares successive
// snapshots of this value.
func (st *State) TotalSize() int {
	total := st.Booleans.Size() +
		st.Integers.Size() +
		st.Floats.Size() +
		st.Names.Size() +
		st.BoolVectors.Size() +
		st.IntVectors.Size() +
		st.FloatVectors.Size() +
		st.Indexes.Size() +
		st.Code.Size() +
		st.Exec.Size() +
		len(st.Env)
	return total
}

// define binds name to a clone of value in the environment, overwriting
// any prior binding.
func (st *State) define(name string, value Item) {
	st.Env[name] = value.Clone()
}

// lookup returns a clone of the Item bound to name, if any.
func (st *State) lookup(name string) (Item, bool) {
	v, ok := st.Env[name]
	if !ok {
		return Item{}, false
	}
	return v.Clone(), true
}

// boundNames returns a snapshot of every currently-bound name, used by
// NAME.RANDBOUNDNAME.
func (st *State) boundNames() []string {
	names := make([]string, 0, len(st.Env))
	for name := range st.Env {
		names = append(names, name)
	}
	return names
}
