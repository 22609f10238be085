package main

import (
	"context"
	"errors"
	"io"

	"github.com/relambda/relambda/internal/panicerr"
)

// New constructs a vm ready to Run, applying defaults (discard output, no
// input) and then the given options in order.
func New(opts ...VMOption) *vm {
	var m vm
	defaultOptions.apply(&m)
	VMOptions(opts...).apply(&m)
	return &m
}

// Load compiles source into m, replacing any previously loaded program.
func Load(m *vm, name, source string) error {
	e, err := Parse(name, source)
	if err != nil {
		return err
	}
	m.prog = compile(e)
	m.pc = 0
	return nil
}

// Run drives m's main loop to completion, recovering internal panics
// (vmHalt excepted, which run already recovers) into a returned error, and
// flushes m's output once the loop stops. It
// returns the final value produced by e or the program's Halt instruction,
// along with any error -- a parse error never reaches here, since Load must
// succeed before Run is called.
func (m *vm) Run(ctx context.Context) (value, error) {
	err := panicerr.Recover(ctx, "relambda", func() error {
		return m.run(ctx)
	})
	if m.out != nil {
		if ferr := m.out.Flush(); err == nil {
			err = ferr
		}
	}
	if err == nil || errors.Is(err, io.EOF) {
		return m.result, nil
	}
	var h vmHalt
	if errors.As(err, &h) {
		err = h.err
	}
	return m.result, err
}

func WithInput(r io.Reader) VMOption         { return withInput(r) }
func WithInputWriter(w io.WriterTo) VMOption { return withInputWriter(w) }
func WithOutput(w io.Writer) VMOption        { return withOutput(w) }
func WithTee(w io.Writer) VMOption           { return withTee(w) }
func WithMaxStack(n int) VMOption            { return withMaxStack(n) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
