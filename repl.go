package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// runREPL reads Unlambda terms one at a time from r, compiling and running
// each against the same vm: the stack machine's current-character register
// and I/O state carry over from one term to the next, matching how the
// reference implementation's interactive top level behaves. A term that
// fails to parse is reported and skipped; the reader continues with
// whatever source follows it.
func runREPL(ctx context.Context, m *vm, r io.Reader) error {
	rd := bufio.NewReader(r)
	name := "<stdin>"

	for n := 1; ; n++ {
		source, err := readTerm(rd)
		if source == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		termName := fmt.Sprintf("%s:%d", name, n)
		if perr := Load(m, termName, source); perr != nil {
			fmt.Fprintln(m.out, perr)
			continue
		}
		if _, rerr := m.Run(ctx); rerr != nil {
			return rerr
		}

		if err != nil {
			return nil // io.EOF reached exactly at the end of the final term
		}
	}
}

// readTerm reads just enough of rd to contain one complete Unlambda term.
// It tracks how many more leaf tokens are needed to close every backtick
// seen so far (one backtick trades itself for two required leaves), and
// stops the instant that count reaches zero. It does not compile or
// validate the term -- Load does that -- it only finds where the term ends
// so the REPL can feed terms to the VM one at a time.
func readTerm(rd *bufio.Reader) (string, error) {
	var buf []byte
	need := 1

	for need > 0 {
		r, _, err := rd.ReadRune()
		if err != nil {
			return string(buf), err
		}

		switch {
		case r == '#':
			buf = append(buf, '#')
			for {
				r, _, err := rd.ReadRune()
				if err != nil {
					return string(buf), err
				}
				buf = append(buf, string(r)...)
				if r == '\n' {
					break
				}
			}

		case r == '.' || r == '?':
			buf = append(buf, string(r)...)
			arg, _, err := rd.ReadRune()
			if err != nil {
				return string(buf), err
			}
			buf = append(buf, string(arg)...)
			need--

		case r == '`':
			buf = append(buf, '`')
			need++

		case isSpace(r):
			buf = append(buf, string(r)...)

		default:
			buf = append(buf, string(r)...)
			need--
		}
	}
	return string(buf), nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
