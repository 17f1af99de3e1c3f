package boolstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/envkit/pkg/boolstr"
)

func TestFromBool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", boolstr.FromBool(true))
	assert.Equal(t, "false", boolstr.FromBool(false))
}

func TestToBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "canonical true", input: "true", expected: true},
		{name: "canonical false", input: "false", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "zero", input: "0", expected: false},
		{name: "no", input: "no", expected: false},
		{name: "upper FALSE", input: "FALSE", expected: false},
		{name: "mixed No", input: "No", expected: false},
		{name: "padded false", input: "  false\n", expected: false},
		{name: "whitespace only", input: "   ", expected: false},
		{name: "one", input: "1", expected: true},
		{name: "yes", input: "yes", expected: true},
		{name: "unrecognized", input: "maybe", expected: true},
		{name: "off is not recognized", input: "off", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, boolstr.ToBool(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []bool{true, false} {
		s := boolstr.FromBool(v)
		assert.True(t, boolstr.IsCanonical(s))
		assert.Equal(t, v, boolstr.ToBool(s))
	}
}

func TestIsCanonical(t *testing.T) {
	t.Parallel()

	assert.True(t, boolstr.IsCanonical("true"))
	assert.True(t, boolstr.IsCanonical("false"))
	assert.False(t, boolstr.IsCanonical("TRUE"))
	assert.False(t, boolstr.IsCanonical("1"))
	assert.False(t, boolstr.IsCanonical(""))
}
