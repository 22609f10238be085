package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, source, stdin string) (stdout string, result value, err error) {
	t.Helper()
	var out bytes.Buffer
	m := New(WithInput(strings.NewReader(stdin)), WithOutput(&out))
	require.NoError(t, Load(m, t.Name(), source))
	result, err = m.Run(context.Background())
	return out.String(), result, err
}

func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		stdin  string
		want   string
	}{
		{
			"hello world",
			"`r`.!`.d`.l`.r`.o`.w`. `.,`.o`.l`.l`.e`.Hi",
			"",
			"Hello, world!\n",
		},
		{"i composes application", "``.a.bi", "", "ab"},
		{"d delays its operand", "``d.x`.yi", "", "yx"},
		{"read and echo via pipe", "``@|i", "Q", "Q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runProgram(t, tc.source, tc.stdin)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestExitPrimitiveStopsImmediately(t *testing.T) {
	out, result, err := runProgram(t, "`ei", "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, primValue{tag: primI}, result)
}

func TestContinuationReentersCapturedPoint(t *testing.T) {
	// ``ci.x -- apply(c,i) captures the continuation for "the result of
	// this inner application" and, since i just returns its argument,
	// hands that continuation straight back out as the value of `ci.
	// The outer application then invokes it with .x as the argument,
	// which jumps back to the inner application's call site and resumes
	// it as if `ci had evaluated to .x instead -- so the whole program
	// re-runs from there as ``.x.x, printing x once.
	out, result, err := runProgram(t, "``ci.x", "")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
	assert.Equal(t, primValue{tag: primPrint, char: 'x'}, result)
}

func TestIdentityIsTransparent(t *testing.T) {
	// `iP must behave exactly like P.
	const hello = "`r`.!`.d`.l`.r`.o`.w`. `.,`.o`.l`.l`.e`.Hi"
	plain, _, err := runProgram(t, hello, "")
	require.NoError(t, err)

	wrapped, _, err := runProgram(t, "`i"+hello, "")
	require.NoError(t, err)

	assert.Equal(t, plain, wrapped)
}

func TestApplyDispatchTable(t *testing.T) {
	var m vm
	i := primValue{tag: primI}
	k := primValue{tag: primK}
	s := primValue{tag: primS}
	v := primValue{tag: primV}

	assert.Equal(t, i, m.apply(i, i), "apply(apply(i, v)) = v, here v = i")

	a, b := primValue{tag: primS}, primValue{tag: primK}
	assert.Equal(t, a, m.apply(m.apply(k, a), b), "apply(apply(k,a),b) = a")

	assert.Equal(t,
		m.apply(m.apply(a, b), m.apply(a, b)),
		m.apply(m.apply(m.apply(s, a), a), b),
		"apply(apply(apply(s,a),b),c) = apply(apply(a,c),apply(b,c))",
	)

	assert.Equal(t, v, m.apply(v, i), "apply(v, x) = v")
}

func TestAtBranchesOnReadSuccessAndEOF(t *testing.T) {
	// `@i applies i to whatever @ reads: i on success (branch taken when
	// a character is available), v on EOF (branch taken when input is
	// exhausted). Neither branch prints anything.
	out, result, err := runProgram(t, "`@i", "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, primValue{tag: primV}, result)

	out, result, err = runProgram(t, "`@i", "Q")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, primValue{tag: primI}, result)
}
