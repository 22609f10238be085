package main

// op is one of the six bytecode opcodes.
type op uint8

const (
	opPushPrim op = iota
	opPushPrint
	opPushCompare
	opMakeApply
	opInvoke
	opHalt
)

func (o op) String() string {
	switch o {
	case opPushPrim:
		return "PushPrim"
	case opPushPrint:
		return "PushPrint"
	case opPushCompare:
		return "PushCompare"
	case opMakeApply:
		return "MakeApply"
	case opInvoke:
		return "Invoke"
	case opHalt:
		return "Halt"
	default:
		return "?"
	}
}

// instr is a single bytecode word: at most one immediate.
//
//   - opPushPrim:    prim holds the primitive tag to push.
//   - opPushPrint:   char holds the scalar argument of `.x`.
//   - opPushCompare: char holds the scalar argument of `?x`.
//   - opMakeApply:   match holds the index of the instruction following the
//     matching Invoke, and operand holds the unevaluated operand
//     expression -- both exist solely so the VM can build a promise
//     without compiling/running the operand when the operator turns out
//     to be d, which never evaluates its argument.
//   - opInvoke, opHalt: no immediate.
type instr struct {
	op      op
	prim    prim
	char    rune
	match   int
	operand *expr
}

// program is a compiled Unlambda module: a flat instruction sequence ending
// in Halt. Only relative position and count of instructions matter -- no
// absolute jump addresses are encoded anywhere except the MakeApply/Invoke
// match index, which always points within this same slice.
type program struct {
	code []instr
}

func (p *program) len() int { return len(p.code) }
