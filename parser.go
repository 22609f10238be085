package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// exprAST is the participle grammar root: every Unlambda term is either an
// application of one term to another, a bare primitive, or a print/compare
// built-in carrying its literal argument character.
type exprAST struct {
	Pos lexer.Position

	Apply *applyAST `  @@`
	Print *string   `| @Print`
	Cmp   *string   `| @Cmp`
	Prim  *string   `| @Prim`
}

// applyAST is a backtick followed by the operator and operand terms.
type applyAST struct {
	Pos lexer.Position

	Op  *exprAST `Tick @@`
	Arg *exprAST `@@`
}

// unlambdaLexer tokenizes source the way Unlambda actually reads it: Print
// and Cmp each swallow their literal argument character as part of the
// token itself, so that character is never subject to whitespace-skipping,
// comment-stripping, or case folding -- it can be any Unicode scalar,
// including a backtick, `#`, or newline.
var unlambdaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Print", Pattern: `\.(?s:.)`},
	{Name: "Cmp", Pattern: `\?(?s:.)`},
	{Name: "Tick", Pattern: "\x60"},
	{Name: "Prim", Pattern: `[sSkKiIvVcCdDrReE@|]`},
})

var unlambdaParser = participle.MustBuild[exprAST](
	participle.Lexer(unlambdaLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseError reports a source position alongside the underlying parse
// failure, so callers (the REPL in particular) can point at the offending
// line without reparsing participle's own error text.
type ParseError struct {
	Pos position
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%v: %v", e.Pos, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Parse compiles Unlambda source text into an expression tree, case-folding
// bare primitive tokens (but never a Print/Cmp argument character) and
// stripping comments along the way.
func Parse(name, source string) (*expr, error) {
	ast, err := unlambdaParser.ParseString(name, source)
	if err != nil {
		pos := position{name: name}
		if le, ok := err.(interface{ Position() lexer.Position }); ok {
			pos.line, pos.column = le.Position().Line, le.Position().Column
		}
		return nil, &ParseError{Pos: pos, Err: err}
	}
	return toExpr(ast), nil
}

func toExpr(a *exprAST) *expr {
	pos := position{name: a.Pos.Filename, line: a.Pos.Line, column: a.Pos.Column}
	switch {
	case a.Apply != nil:
		return applyNode(toExpr(a.Apply.Op), toExpr(a.Apply.Arg), pos)
	case a.Print != nil:
		return printNode(argRune(*a.Print), pos)
	case a.Cmp != nil:
		return compareNode(argRune(*a.Cmp), pos)
	case a.Prim != nil:
		c := strings.ToLower(*a.Prim)[0]
		return primNode(prim(c), pos)
	default:
		panic(fmt.Errorf("relambda: empty parse node at %v", pos))
	}
}

// argRune extracts the literal argument character from a two-byte-or-more
// Print/Cmp token (the leading '.' or '?' plus one Unicode scalar).
func argRune(tok string) rune {
	r := []rune(tok)
	return r[1]
}
