package main

import (
	"fmt"

	"github.com/relambda/relambda/internal/runeio"
)

// prim identifies a built-in function by its single-character tag. print
// and compare built-ins additionally carry the Unicode scalar they were
// parameterised with.
type prim byte

const (
	primS       prim = 's'
	primK       prim = 'k'
	primI       prim = 'i'
	primV       prim = 'v'
	primC       prim = 'c'
	primD       prim = 'd'
	primR       prim = 'r'
	primE       prim = 'e'
	primAt      prim = '@'
	primBar     prim = '|'
	primPrint   prim = '.'
	primCompare prim = '?'
)

// value is a fully evaluated Unlambda runtime value: every value on the
// VM's operand stack, and every value returned by apply, is a value.
// Weak head normal form is not a meaningful notion here -- Unlambda values
// are atomic, built from a closed set of concrete types.
type value interface {
	fmt.Stringer
	isValue()
}

// primValue is a bare built-in: s k i v c d r e @ | or a print/compare
// built-in parameterised by a scalar.
type primValue struct {
	tag  prim
	char rune // meaningful only when tag is primPrint or primCompare
}

func (primValue) isValue() {}

func (p primValue) String() string {
	switch p.tag {
	case primPrint:
		return "." + charForm(p.char)
	case primCompare:
		return "?" + charForm(p.char)
	default:
		return string(rune(p.tag))
	}
}

// charForm renders a rune for trace/dump output, using its caret-escaped
// form when it's a control character so a literal newline or NUL doesn't
// disrupt the surrounding line.
func charForm(r rune) string {
	if caret := runeio.CaretForm(r); caret != "" {
		return caret
	}
	return string(r)
}

// s1Value is S applied to one argument: `sa, awaiting a second.
type s1Value struct{ a value }

func (s1Value) isValue()        {}
func (s s1Value) String() string { return fmt.Sprintf("`s%v", s.a) }

// s2Value is S applied to two arguments: ``sab, awaiting a third.
type s2Value struct{ a, b value }

func (s2Value) isValue()        {}
func (s s2Value) String() string { return fmt.Sprintf("``s%v%v", s.a, s.b) }

// k1Value is K applied to one argument: `ka, awaiting (and discarding) a
// second.
type k1Value struct{ a value }

func (k1Value) isValue()        {}
func (k k1Value) String() string { return fmt.Sprintf("`k%v", k.a) }

// cmp1Value is the transient binding formed by applying a compare built-in
// to its one argument. Unlike s1Value/k1Value/s2Value it is resolved the
// instant it is built, so it never survives to be pushed back onto the
// operand stack -- it exists only for the duration of one apply call (see
// (*vm).forceCmp1).
type cmp1Value struct {
	x rune
	a value
}

func (cmp1Value) isValue()        {}
func (c cmp1Value) String() string { return fmt.Sprintf("`?%v%v", string(c.x), c.a) }

// promiseValue is the result of applying d to an expression: an unevaluated
// reference to that expression, forced by being applied to another value.
// No memoisation: each application of a promiseValue re-evaluates its body
// from scratch and applies the result to the argument.
type promiseValue struct{ body *expr }

func (promiseValue) isValue()        {}
func (promiseValue) String() string { return "<promise>" }

// continuationValue is a reified evaluation context captured by c. Applying
// it abandons the current computation and resumes the snapshot with the
// argument as the result of the Invoke that originally captured it.
type continuationValue struct{ snap *snapshot }

func (continuationValue) isValue()        {}
func (continuationValue) String() string { return "<continuation>" }

// snapshot is the opaque, immutable VM state captured by c: the program
// counter and the entire operand stack (including apply markers) at the
// moment c's operand was entered. Stacks are shared-by-value: every entry
// is an already-evaluated, immutable value, so copying the slice is
// O(stack depth) without deep-copying any value.
type snapshot struct {
	pc    int
	stack []stackItem
}
