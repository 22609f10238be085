// Command relambda interprets Unlambda 2.0 programs.
//
// Usage:
//
//	relambda [flags] [file]
//	relambda -e program [flags]
//	relambda -s [flags]
//
// With no file, -e, and no -s, the program is read from standard input and
// run as a REPL: each complete term read is compiled and evaluated in
// turn, sharing one vm (and so one current-character register and one
// operand stack) across terms, the way an interactive Unlambda top level
// behaves. -s instead reads the whole of standard input as a single
// program, runs it once, and exits -- the mode a conformance test runner
// wants.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/relambda/relambda/internal/logio"
)

func main() {
	var (
		source   string
		stdinAll bool
		maxStack int
		timeout  time.Duration
		trace    bool
		dump     bool
	)
	flag.StringVar(&source, "e", "", "evaluate program text instead of reading a file/stdin")
	flag.BoolVar(&stdinAll, "s", false, "read standard input as a single program, execute, and exit")
	flag.IntVar(&maxStack, "max-stack", 0, "limit the operand stack depth (0: unlimited)")
	flag.DurationVar(&timeout, "timeout", 0, "abort after a time limit")
	flag.BoolVar(&trace, "trace", false, "enable instruction trace logging")
	flag.BoolVar(&dump, "dump", false, "print a bytecode/stack dump after execution")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var logfn func(mess string, args ...interface{})
	if trace {
		logfn = log.Leveledf("TRACE")
	}

	m := New(
		WithLogf(logfn),
		WithMaxStack(maxStack),
		WithOutput(os.Stdout),
	)

	defer log.Unwrap()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var err error
	switch {
	case source != "":
		err = loadAndRun(ctx, m, "<-e>", source)
	case stdinAll:
		err = runReaderOnce(ctx, m, "<stdin>", os.Stdin)
	case flag.NArg() > 0:
		err = runFile(ctx, m, flag.Arg(0))
	default:
		err = runREPL(ctx, m, os.Stdin)
	}

	if dump && m.prog != nil {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer vmDumper{prog: m.prog, m: m, out: lw}.dump()
	}

	if cerr := m.close(); cerr != nil && err == nil {
		err = cerr
	}

	log.ErrorIf(err)
}

func runFile(ctx context.Context, m *vm, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return loadAndRun(ctx, m, path, string(b))
}

func runReaderOnce(ctx context.Context, m *vm, name string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return loadAndRun(ctx, m, name, string(b))
}

func loadAndRun(ctx context.Context, m *vm, name, source string) error {
	if err := Load(m, name, source); err != nil {
		return err
	}
	_, err := m.Run(ctx)
	return err
}
