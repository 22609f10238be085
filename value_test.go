package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimValueString(t *testing.T) {
	cases := []struct {
		name string
		v    primValue
		want string
	}{
		{"bare s", primValue{tag: primS}, "s"},
		{"bare k", primValue{tag: primK}, "k"},
		{"print ascii", primValue{tag: primPrint, char: 'x'}, ".x"},
		{"print newline", primValue{tag: primPrint, char: '\n'}, ".^J"},
		{"compare ascii", primValue{tag: primCompare, char: 'Q'}, "?Q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.String())
		})
	}
}

func TestPartialApplicationStrings(t *testing.T) {
	i := primValue{tag: primI}
	assert.Equal(t, "`si", s1Value{a: i}.String())
	assert.Equal(t, "``sii", s2Value{a: i, b: i}.String())
	assert.Equal(t, "`ki", k1Value{a: i}.String())
}

func TestPromiseAndContinuationStrings(t *testing.T) {
	assert.Equal(t, "<promise>", promiseValue{}.String())
	assert.Equal(t, "<continuation>", continuationValue{}.String())
}
