package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	x, err := New(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, x.Shape)
	assert.Equal(t, 24, x.Numel())

	_, err = New()
	assert.Error(t, err)

	_, err = New(2, 0, 4)
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, x.Data[5])

	_, err = FromSlice([]float64{1, 2, 3}, 2, 3)
	assert.Error(t, err)
}

func TestRandnDeterministic(t *testing.T) {
	a, err := Randn(rand.New(rand.NewPCG(42, 0)), 1, 8, 8, 4)
	require.NoError(t, err)
	b, err := Randn(rand.New(rand.NewPCG(42, 0)), 1, 8, 8, 4)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different tensors (-a +b):\n%s", diff)
	}

	c, err := Randn(rand.New(rand.NewPCG(43, 0)), 1, 8, 8, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a.Data, c.Data)
}

func TestRepeat(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3}, 1, 3)
	require.NoError(t, err)

	y, err := x.Repeat(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, y.Shape)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3, 1, 2, 3}, y.Data)

	// repeating a batched tensor is an error, not an implicit broadcast
	_, err = y.Repeat(2)
	assert.Error(t, err)

	_, err = x.Repeat(0)
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	x, err := FromSlice([]float64{1, 2}, 1, 2)
	require.NoError(t, err)

	y := x.Clone()
	y.Data[0] = 9
	assert.Equal(t, 1.0, x.Data[0])
}

func TestString(t *testing.T) {
	x, err := New(1, 64, 64, 4)
	require.NoError(t, err)
	assert.Equal(t, "f64[1 64 64 4]", x.String())
}
