package main

// compiler lowers an expression tree into a flat bytecode program. It is a
// single-pass, single-use recursive emitter: one compiler value compiles
// exactly one program.
type compiler struct {
	prog program
}

// compile lowers e into bytecode, ending with Halt. The resulting
// instruction count is always 2*A + L + 1, where A is the number of
// applications in e and L is the number of leaves.
func compile(e *expr) *program {
	var c compiler
	c.emit(e)
	c.prog.code = append(c.prog.code, instr{op: opHalt})
	return &c.prog
}

// emit appends the instructions that leave the value of e on top of the
// operand stack.
func (c *compiler) emit(e *expr) {
	switch e.kind {
	case exprPrim:
		c.prog.code = append(c.prog.code, instr{op: opPushPrim, prim: e.prim})

	case exprPrint:
		c.prog.code = append(c.prog.code, instr{op: opPushPrint, char: e.char})

	case exprCompare:
		c.prog.code = append(c.prog.code, instr{op: opPushCompare, char: e.char})

	case exprApply:
		c.emit(e.op)

		makeAt := len(c.prog.code)
		c.prog.code = append(c.prog.code, instr{op: opMakeApply, operand: e.arg})

		c.emit(e.arg)

		invokeAt := len(c.prog.code)
		c.prog.code = append(c.prog.code, instr{op: opInvoke})

		// the matching Invoke's successor is where the VM jumps to when it
		// discovers, at MakeApply time, that the operator is d -- skipping
		// over the operand code we just emitted instead of running it.
		c.prog.code[makeAt].match = invokeAt + 1
	}
}
