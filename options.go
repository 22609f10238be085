package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/relambda/relambda/internal/flushio"
)

// VMOption configures a vm at construction time, following the functional
// options pattern: each option closes over what it needs and knows how to
// apply itself to a *vm.
type VMOption interface{ apply(m *vm) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
)

// VMOptions flattens a set of options into one, so New can apply a single
// combined option in two passes (defaults, then caller-supplied).
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(m *vm) {}

type options []VMOption

func (opts options) apply(m *vm) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(m *vm) { m.logfn = logfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type maxStackOption int

func withInput(r io.Reader) inputOption       { return inputOption{r} }
func withOutput(w io.Writer) outputOption     { return outputOption{w} }
func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withMaxStack(n int) maxStackOption       { return maxStackOption(n) }

func withInputWriter(wto io.WriterTo) pipeInput {
	r, w := io.Pipe()
	go func() {
		defer w.Close()
		wto.WriteTo(w)
	}()
	return pipeInput{r, nameOf(wto)}
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

func (i inputOption) apply(m *vm) {
	m.Queue = append(m.Queue, i.Reader)
}

func (o outputOption) apply(m *vm) {
	if m.out != nil {
		m.out.Flush()
	}
	m.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		m.closers = append(m.closers, cl)
	}
}

func (o teeOption) apply(m *vm) {
	m.out = flushio.WriteFlushers(m.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		m.closers = append(m.closers, cl)
	}
}

func (n maxStackOption) apply(m *vm) { m.maxStack = int(n) }

type pipeInput struct {
	*io.PipeReader
	name string
}

func (pi pipeInput) Name() string { return pi.name }

func (pi pipeInput) apply(m *vm) {
	m.Queue = append(m.Queue, pi)
	m.closers = append(m.closers, pi)
}
