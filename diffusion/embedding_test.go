package diffusion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestepEmbeddingShape(t *testing.T) {
	emb, err := TimestepEmbedding(501, EmbeddingDim, MaxPeriod)
	require.NoError(t, err)
	assert.Equal(t, []int{1, EmbeddingDim}, emb.Shape)
}

func TestTimestepEmbeddingValues(t *testing.T) {
	emb, err := TimestepEmbedding(7, 320, MaxPeriod)
	require.NoError(t, err)

	// frequency index 0 is exactly 1, so the first cos/sin pair is cos(t), sin(t)
	assert.InDelta(t, math.Cos(7), emb.Data[0], 1e-12)
	assert.InDelta(t, math.Sin(7), emb.Data[160], 1e-12)

	for i := range 160 {
		freq := math.Exp(-math.Log(MaxPeriod) * float64(i) / 160)
		assert.InDelta(t, math.Cos(7*freq), emb.Data[i], 1e-12)
		assert.InDelta(t, math.Sin(7*freq), emb.Data[160+i], 1e-12)
	}
}

func TestTimestepEmbeddingZero(t *testing.T) {
	emb, err := TimestepEmbedding(0, 8, MaxPeriod)
	require.NoError(t, err)
	// cos(0)=1 for the first half, sin(0)=0 for the second
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, emb.Data)
}

func TestTimestepEmbeddingDeterministic(t *testing.T) {
	a, err := TimestepEmbedding(981, EmbeddingDim, MaxPeriod)
	require.NoError(t, err)
	b, err := TimestepEmbedding(981, EmbeddingDim, MaxPeriod)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("embedding not deterministic (-a +b):\n%s", diff)
	}
}

func TestTimestepEmbeddingOddDim(t *testing.T) {
	for _, dim := range []int{-2, 0, 1, 321} {
		_, err := TimestepEmbedding(1, dim, MaxPeriod)
		assert.Error(t, err, "dim %d", dim)
	}
}
