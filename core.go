package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/relambda/relambda/internal/fileinput"
	"github.com/relambda/relambda/internal/flushio"
	"github.com/relambda/relambda/internal/runeio"
)

// core is the VM's host I/O boundary: read one character, write one
// character, flush, and (through vmHalt) signal end of program. readRune
// treats end of input as an ordinary outcome rather than a halt, so that @
// can branch on it instead of the whole program dying.
type core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (c *core) close() (err error) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// halt flushes output, logs the cause, and panics vmHalt{err: err} --
// recovered exactly once, at the top of (*vm).run. I/O and
// resource-exhaustion errors are uncatchable from within an Unlambda
// program itself, so this is the only way either kind terminates the VM.
func (c *core) halt(err error) {
	func() {
		defer func() { recover() }()
		if c.out != nil {
			if ferr := c.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	func() {
		defer func() { recover() }()
		c.logf("#", "halt error: %v", err)
	}()

	panic(vmHalt{err: err})
}

func (c *core) writeRune(r rune) {
	if _, err := runeio.WriteANSIRune(c.out, r); err != nil {
		c.halt(err)
	}
}

// readRune reads one Unicode scalar. ok is false only on end of input;
// any other I/O error halts the VM.
func (c *core) readRune() (r rune, ok bool) {
	if c.out != nil {
		if err := c.out.Flush(); err != nil {
			c.halt(err)
		}
	}

	r, n, err := c.Input.ReadRune()
	for err == nil && n == 0 {
		// an exhausted source was just swapped for the next queued one;
		// nothing was actually read yet
		r, n, err = c.Input.ReadRune()
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false
		}
		c.halt(err)
	}
	return r, true
}

// logging is a leveled trace-prefix helper used to format -trace output.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
