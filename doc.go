/* Package main: a Push-family genetic programming interpreter

Push is a stack-based language where programs and data share one
representation: CODE items are read, written, and executed by the same
running program. This repository implements the core of that language -
ten typed stacks (BOOLEAN, INTEGER, FLOAT, NAME, BOOLVECTOR, INTVECTOR,
FLOATVECTOR, INDEX, CODE, EXEC), a canonical parenthesized program syntax,
and a fetch-dispatch interpreter loop bounded by a step count, a
wall-clock deadline, and a per-step state-growth cap.

Every instruction is total: an instruction that cannot apply to the
current stack contents (wrong arity, division by zero, an out-of-range
vector) is a no-op rather than a panic or an error. A run only ever ends
one of four ways, reported as a Termination: EXEC emptied normally, or
one of the three budgets tripped first.

Item (item.go) is the single recursive value every stack holds: a scalar
of one of seven literal domains, an instruction reference, a user
identifier, or an ordered list of child Items. State (state.go) bundles
the ten stacks, the name environment, and a run's Config. Registry
(registry.go) is the name -> instruction-function table that Parse
(parser.go) and the interpreter (interp.go) both consult.

The instruction families live in instr_*.go, one file per stack domain,
sharing a handful of generic helpers (instr_common.go) for the stack
algebra every domain repeats (=, DUP, FLUSH, POP, ROT, SHOVE,
STACKDEPTH, SWAP, YANK, YANKDUP).

main.go is the command-line entry point: each named program source file
is parsed and run in its own State, concurrently, with a non-zero exit
if any run ends in a budget-exceeded termination.

*/
package main
