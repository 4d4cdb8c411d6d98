package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUncondTokens(t *testing.T) {
	toks := UncondTokens()
	require.Len(t, toks, MaxTextLen)
	assert.Equal(t, StartOfText, toks[0])
	for i := 1; i < MaxTextLen; i++ {
		assert.Equal(t, EndOfText, toks[i], "index %d", i)
	}

	// callers get a copy, not the shared constant
	toks[0] = 0
	assert.Equal(t, StartOfText, UncondTokens()[0])
}

func TestShapeError(t *testing.T) {
	err := &ShapeError{Call: "noise predictor", Want: []int{1, 64, 64, 4}, Got: []int{1, 64, 64, 3}}
	assert.Equal(t, "noise predictor: unexpected tensor shape: want [1 64 64 4], got [1 64 64 3]", err.Error())
}

func TestRegistry(t *testing.T) {
	Register("test-empty", func() (Models, error) {
		return Models{}, nil
	})

	_, err := New("test-empty")
	assert.ErrorContains(t, err, "incomplete")

	_, err = New("no-such-backend")
	assert.ErrorContains(t, err, "unknown backend")

	assert.Contains(t, List(), "test-empty")

	assert.Panics(t, func() {
		Register("test-empty", func() (Models, error) { return Models{}, nil })
	})
}
