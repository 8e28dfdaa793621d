package main

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse turns a whitespace-delimited program source into the single
// top-level List Item the interpreter expects on EXEC (spec §4.5, §3
// invariant 4). Unbalanced ')' at any depth is tolerated as a no-op;
// unbalanced '(' still open at end of input is closed implicitly — see
// SPEC_FULL.md's resolution of the open parenthesis-balancing question.
func Parse(source string, reg *Registry) Item {
	frames := [][]Item{nil}
	for _, tok := range tokenize(source) {
		switch tok {
		case "(":
			frames = append(frames, nil)
		case ")":
			if len(frames) == 1 {
				continue // stray close, tolerated no-op
			}
			children := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			top := len(frames) - 1
			frames[top] = append(frames[top], ListItem(children...))
		default:
			if item, ok := parseToken(tok, reg); ok {
				top := len(frames) - 1
				frames[top] = append(frames[top], item)
			}
		}
	}
	for len(frames) > 1 {
		children := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		top := len(frames) - 1
		frames[top] = append(frames[top], ListItem(children...))
	}
	return ListItem(frames[0]...)
}

// tokenize splits source on whitespace, additionally treating '(' and ')'
// as always-standalone tokens regardless of adjacent whitespace.
func tokenize(source string) []string {
	var tokens []string
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}
	for _, r := range source {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func parseToken(tok string, reg *Registry) (Item, bool) {
	switch tok {
	case "TRUE":
		return BoolItem(true), true
	case "FALSE":
		return BoolItem(false), true
	}

	if isVectorToken(tok) {
		return parseVectorToken(tok) // malformed vectors are discarded entirely
	}

	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return IntItem(int32(n)), true
	}

	if strings.Contains(tok, ".") {
		if f, err := strconv.ParseFloat(tok, 32); err == nil {
			return FloatItem(float32(f)), true
		}
	}

	if reg != nil && reg.IsInstruction(tok) {
		return InstructionItem(tok), true
	}

	return IdentifierItem(tok), true
}

func isVectorToken(tok string) bool {
	return strings.HasPrefix(tok, "BOOL[") ||
		strings.HasPrefix(tok, "INT[") ||
		strings.HasPrefix(tok, "FLOAT[")
}

func parseVectorToken(tok string) (Item, bool) {
	var prefix string
	switch {
	case strings.HasPrefix(tok, "BOOL["):
		prefix = "BOOL["
	case strings.HasPrefix(tok, "INT["):
		prefix = "INT["
	case strings.HasPrefix(tok, "FLOAT["):
		prefix = "FLOAT["
	}
	if !strings.HasSuffix(tok, "]") {
		return Item{}, false
	}
	inner := tok[len(prefix) : len(tok)-1]
	var parts []string
	if inner != "" {
		parts = strings.Split(inner, ",")
	}

	switch prefix {
	case "BOOL[":
		vals := make([]bool, len(parts))
		for i, p := range parts {
			switch p {
			case "1":
				vals[i] = true
			case "0":
				vals[i] = false
			default:
				return Item{}, false
			}
		}
		return BoolVectorItem(vals), true

	case "INT[":
		vals := make([]int32, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(p, 10, 32)
			if err != nil {
				return Item{}, false
			}
			vals[i] = int32(n)
		}
		return IntVectorItem(vals), true

	default: // "FLOAT["
		vals := make([]float32, len(parts))
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 32)
			if err != nil {
				return Item{}, false
			}
			vals[i] = float32(f)
		}
		return FloatVectorItem(vals), true
	}
}
