package main

import "strconv"

// exprKind discriminates the shape of an expression-tree node: a primitive,
// a print/compare leaf carrying one Unicode scalar, or an application of
// one node to another.
type exprKind uint8

const (
	exprPrim exprKind = iota
	exprPrint
	exprCompare
	exprApply
)

// expr is a node of the parsed (and canonicalised: comments stripped, case
// folded) expression tree that the compiler lowers into bytecode.
type expr struct {
	kind exprKind

	prim prim // valid when kind == exprPrim
	char rune // valid when kind == exprPrint or kind == exprCompare

	op  *expr // operator child, valid when kind == exprApply
	arg *expr // operand child, valid when kind == exprApply

	pos position // source position, for diagnostics
}

type position struct {
	name   string
	line   int
	column int
}

func (p position) String() string {
	if p.name == "" {
		return "?"
	}
	return p.name + ":" + strconv.Itoa(p.line) + ":" + strconv.Itoa(p.column)
}

func primNode(p prim, pos position) *expr {
	return &expr{kind: exprPrim, prim: p, pos: pos}
}

func printNode(c rune, pos position) *expr {
	return &expr{kind: exprPrint, char: c, pos: pos}
}

func compareNode(c rune, pos position) *expr {
	return &expr{kind: exprCompare, char: c, pos: pos}
}

func applyNode(op, arg *expr, pos position) *expr {
	return &expr{kind: exprApply, op: op, arg: arg, pos: pos}
}

// countLeavesAndApplies walks e, returning the leaf count L and application
// count A: a compiled program always has length 2*A + L + 1 (the trailing
// Halt), since emit lowers every leaf to one instruction and every apply to
// a MakeApply/Invoke pair.
func countLeavesAndApplies(e *expr) (leaves, applies int) {
	if e == nil {
		return 0, 0
	}
	if e.kind == exprApply {
		opL, opA := countLeavesAndApplies(e.op)
		argL, argA := countLeavesAndApplies(e.arg)
		return opL + argL, opA + argA + 1
	}
	return 1, 0
}
