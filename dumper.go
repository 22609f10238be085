package main

import (
	"fmt"
	"io"
)

// vmDumper renders a -dump disassembly of a compiled program and, when
// attached to a running vm, its current pc and operand stack.
type vmDumper struct {
	prog *program
	m    *vm
	out  io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# relambda bytecode dump\n")
	for i, in := range dump.prog.code {
		marker := "  "
		if dump.m != nil && dump.m.pc == i {
			marker = "->"
		}
		fmt.Fprintf(dump.out, "%s %4d  %s\n", marker, i, dump.formatInstr(i, in))
	}
	if dump.m != nil {
		fmt.Fprintf(dump.out, "# stack: %v\n", dump.m.stack)
		fmt.Fprintf(dump.out, "# char:  %v\n", dump.charString())
	}
}

func (dump vmDumper) charString() string {
	if dump.m == nil || !dump.m.haveChar {
		return "none"
	}
	return charForm(dump.m.curChar)
}

func (dump vmDumper) formatInstr(i int, in instr) string {
	switch in.op {
	case opPushPrim:
		return fmt.Sprintf("%-10s %s", in.op, primValue{tag: in.prim})
	case opPushPrint:
		return fmt.Sprintf("%-10s %s", in.op, primValue{tag: primPrint, char: in.char})
	case opPushCompare:
		return fmt.Sprintf("%-10s %s", in.op, primValue{tag: primCompare, char: in.char})
	case opMakeApply:
		return fmt.Sprintf("%-10s match=%d", in.op, in.match)
	case opInvoke, opHalt:
		return in.op.String()
	default:
		return fmt.Sprintf("%v", in.op)
	}
}
