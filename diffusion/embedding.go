// embedding.go - Sinusfoermige Zeitschritt-Einbettung
// Bildet einen Diffusions-Zeitschritt auf einen Konditionierungsvektor ab.
package diffusion

import (
	"fmt"
	"math"

	"github.com/latentscape/diffuse/tensor"
)

// Timestep embedding defaults, matching the noise predictor's contract.
const (
	EmbeddingDim = 320
	MaxPeriod    = 10000
)

// TimestepEmbedding maps an integer timestep to a sinusoidal vector of
// shape [1, dim]: half log-spaced cosines followed by half sines. It is a
// pure function of its arguments; callers repeat the result across the
// batch before handing it to the noise predictor. dim must be even.
func TimestepEmbedding(t, dim int, maxPeriod float64) (*tensor.Tensor, error) {
	if dim <= 0 || dim%2 != 0 {
		return nil, fmt.Errorf("diffusion: embedding dim must be positive and even, got %d", dim)
	}

	half := dim / 2
	emb := make([]float64, dim)
	for i := range half {
		freq := math.Exp(-math.Log(maxPeriod) * float64(i) / float64(half))
		arg := float64(t) * freq
		emb[i] = math.Cos(arg)
		emb[half+i] = math.Sin(arg)
	}
	return tensor.FromSlice(emb, 1, dim)
}
