package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the domain a Item's scalar payload (if any) belongs to.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindBoolVector
	KindIntVector
	KindFloatVector
	KindIndex
	KindIdentifier
	KindInstruction
	KindList
)

// Index is a counted-loop cursor: current <= destination is an invariant
// established by construction and preserved by INDEX.INCREASE.
type Index struct {
	Current     int32
	Destination int32
}

// Item is the single recursive value that every Push stack and the name
// environment traffics in: a literal of one of seven scalar domains, a
// reference to a registered instruction, a user identifier, or an ordered
// list of child Items. Items are value types; copying (Clone) yields
// independent substructure, mirroring gothird's own preference for owned,
// non-aliased state (see memcore.go's page-owned slices) generalized to a
// recursive tree instead of a flat buffer.
type Item struct {
	kind Kind

	b  bool
	i  int32
	f  float32
	bv []bool
	iv []int32
	fv []float32
	ix Index

	text string // Identifier name or InstructionReference name

	list []Item
}

func BoolItem(b bool) Item           { return Item{kind: KindBoolean, b: b} }
func IntItem(i int32) Item           { return Item{kind: KindInteger, i: i} }
func FloatItem(f float32) Item       { return Item{kind: KindFloat, f: f} }
func IndexItem(ix Index) Item        { return Item{kind: KindIndex, ix: ix} }
func IdentifierItem(name string) Item {
	return Item{kind: KindIdentifier, text: name}
}
func InstructionItem(name string) Item {
	return Item{kind: KindInstruction, text: name}
}

func BoolVectorItem(v []bool) Item {
	return Item{kind: KindBoolVector, bv: append([]bool(nil), v...)}
}
func IntVectorItem(v []int32) Item {
	return Item{kind: KindIntVector, iv: append([]int32(nil), v...)}
}
func FloatVectorItem(v []float32) Item {
	return Item{kind: KindFloatVector, fv: append([]float32(nil), v...)}
}

// ListItem builds a List Item from already-owned children; it does not
// clone them, matching the parser's append-as-you-go usage.
func ListItem(children ...Item) Item {
	return Item{kind: KindList, list: children}
}

// EmptyList is the canonical empty list, i.e. NULL's positive case.
func EmptyList() Item { return Item{kind: KindList} }

func (it Item) Kind() Kind    { return it.kind }
func (it Item) IsList() bool  { return it.kind == KindList }
func (it Item) IsAtom() bool  { return it.kind != KindList }
func (it Item) Children() []Item {
	return it.list
}

func (it Item) Bool() bool         { return it.b }
func (it Item) Int() int32         { return it.i }
func (it Item) Float() float32     { return it.f }
func (it Item) BoolVec() []bool    { return it.bv }
func (it Item) IntVec() []int32    { return it.iv }
func (it Item) FloatVec() []float32 { return it.fv }
func (it Item) Index() Index       { return it.ix }
func (it Item) Text() string       { return it.text }

// Clone returns a deep copy: independent child slices and list backing
// arrays, so that mutating the result never aliases it.
func (it Item) Clone() Item {
	switch it.kind {
	case KindBoolVector:
		it.bv = append([]bool(nil), it.bv...)
	case KindIntVector:
		it.iv = append([]int32(nil), it.iv...)
	case KindFloatVector:
		it.fv = append([]float32(nil), it.fv...)
	case KindList:
		cp := make([]Item, len(it.list))
		for i, c := range it.list {
			cp[i] = c.Clone()
		}
		it.list = cp
	}
	return it
}

// Size is the total count of sub-items and parentheses: every atom counts
// 1, every list contributes 1 plus the sum of its children's sizes.
func (it Item) Size() int {
	if it.kind != KindList {
		return 1
	}
	total := 1
	for _, c := range it.list {
		total += c.Size()
	}
	return total
}

// ShallowSize is 1 for an atom, or the direct child count for a list.
func (it Item) ShallowSize() int {
	if it.kind != KindList {
		return 1
	}
	return len(it.list)
}

// Traverse performs depth-first pre-order indexing: index 0 is the item
// itself, subsequent indices descend into child lists in order.
func (it Item) Traverse(depth int) (Item, bool) {
	if depth == 0 {
		return it, true
	}
	depth--
	if it.kind != KindList {
		return Item{}, false
	}
	for _, c := range it.list {
		sz := c.Size()
		if depth < sz {
			return c.Traverse(depth)
		}
		depth -= sz
	}
	return Item{}, false
}

// Insert replaces the sub-item at the given pre-order position with a copy
// of n, using the same indexing as Traverse. It is a no-op (returns it
// unchanged) if depth is out of range.
func (it Item) Insert(n Item, depth int) Item {
	if depth == 0 {
		return n.Clone()
	}
	if it.kind != KindList {
		return it
	}
	depth--
	newList := append([]Item(nil), it.list...)
	for i, c := range newList {
		sz := c.Size()
		if depth < sz {
			newList[i] = c.Insert(n, depth)
			it.list = newList
			return it
		}
		depth -= sz
	}
	return it
}

// clampIndex normalizes a CODE.EXTRACT/INSERT-style index: absolute value,
// modulo size. size is assumed >= 1 (every Item has size >= 1).
func clampIndex(i int32, size int) int {
	n := int(i)
	if n < 0 {
		n = -n
	}
	return n % size
}

// Equal reports value equality. Non-list items compare tag and scalar
// value directly; equality involving a list renders both sides to their
// canonical string form, per spec: the instruction set uses deep equality
// only via string rendering, never structural comparison.
func (it Item) Equal(other Item) bool {
	if it.kind != other.kind {
		return false
	}
	switch it.kind {
	case KindBoolean:
		return it.b == other.b
	case KindInteger:
		return it.i == other.i
	case KindFloat:
		return it.f == other.f
	case KindIndex:
		return it.ix == other.ix
	case KindIdentifier, KindInstruction:
		return it.text == other.text
	case KindBoolVector:
		return equalSlice(it.bv, other.bv)
	case KindIntVector:
		return equalSlice(it.iv, other.iv)
	case KindFloatVector:
		return equalSlice(it.fv, other.fv)
	default: // KindList
		return it.Render() == other.Render()
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Render produces the canonical, parse-round-trippable rendering used both
// for diagnostics and by the CODE family's string-based structural
// predicates (CONTAINS, MEMBER, POSITION, CONTAINER, DISCREPANCY, and
// list equality). See spec §9: a faithful implementation must produce
// stable, injective renderings, and accepts that substring matching can
// produce false positives across list boundaries. Index items render as
// INDEX[current,destination], which Parse does not read back as an Index
// (it yields an identifier).
func (it Item) Render() string {
	var sb strings.Builder
	it.render(&sb)
	return sb.String()
}

func (it Item) render(sb *strings.Builder) {
	switch it.kind {
	case KindBoolean:
		if it.b {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case KindInteger:
		sb.WriteString(strconv.FormatInt(int64(it.i), 10))
	case KindFloat:
		s := strconv.FormatFloat(float64(it.f), 'f', -1, 32)
		if !strings.ContainsAny(s, ".NI") { // keep whole floats distinct from integers
			s += ".0"
		}
		sb.WriteString(s)
	case KindIndex:
		fmt.Fprintf(sb, "INDEX[%v,%v]", it.ix.Current, it.ix.Destination)
	case KindIdentifier:
		sb.WriteString(it.text)
	case KindInstruction:
		sb.WriteString(it.text)
	case KindBoolVector:
		sb.WriteString("BOOL[")
		for i, v := range it.bv {
			if i > 0 {
				sb.WriteByte(',')
			}
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	case KindIntVector:
		sb.WriteString("INT[")
		for i, v := range it.iv {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte(']')
	case KindFloatVector:
		sb.WriteString("FLOAT[")
		for i, v := range it.fv {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
		sb.WriteByte(']')
	case KindList:
		sb.WriteByte('(')
		for i, c := range it.list {
			if i > 0 {
				sb.WriteByte(' ')
			}
			c.render(sb)
		}
		sb.WriteByte(')')
	}
}

// Contains reports whether needle's rendering appears anywhere in
// haystack's rendering.
func Contains(needle, haystack Item) bool {
	return strings.Contains(haystack.Render(), needle.Render())
}

// Container locates the smallest list sub-item of haystack whose rendering
// contains needle's rendering, preferring the first (pre-order) of any
// tie. It reports false if nothing matches.
func Container(needle, haystack Item) (Item, bool) {
	var best Item
	found := false
	sz := haystack.Size()
	for d := 0; d < sz; d++ {
		sub, ok := haystack.Traverse(d)
		if !ok || !sub.IsList() {
			continue
		}
		if strings.Contains(sub.Render(), needle.Render()) {
			if !found || sub.Size() < best.Size() {
				best, found = sub, true
			}
		}
	}
	return best, found
}
