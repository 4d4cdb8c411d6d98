// step.go - Deterministischer DDIM-Update-Schritt
// Berechnet aus Latent und Noise-Schaetzung den Latent des vorherigen
// Zeitschritts sowie den vorhergesagten sauberen Latent.
package diffusion

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/latentscape/diffuse/tensor"
)

var ErrAlphaDomain = errors.New("diffusion: alpha coefficients must be in (0,1]")

// Step applies the DDIM update to latent using the guided noise estimate
// and the schedule coefficients for the current and previous timestep.
// It returns the latent at the less-corrupted timestep and the predicted
// clean latent:
//
//	predX0 = (latent - sqrt(1-alphaT)*noise) / sqrt(alphaT)
//	prev   = sqrt(alphaPrev)*predX0 + sqrt(1-alphaPrev-sigma^2)*noise
//
// With sigma == 0 the update is fully deterministic and rng may be nil.
// sigma > 0 adds sigma*N(0,1)*temperature to prev; the canonical sampler
// never takes that path but the contract keeps it open.
func Step(latent, noise *tensor.Tensor, alphaT, alphaPrev, sigma, temperature float64, rng *rand.Rand) (prev, predX0 *tensor.Tensor, err error) {
	if alphaT <= 0 || alphaT > 1 || alphaPrev <= 0 || alphaPrev > 1 {
		return nil, nil, fmt.Errorf("%w: alpha_t=%v alpha_prev=%v", ErrAlphaDomain, alphaT, alphaPrev)
	}
	if !latent.SameShape(noise) {
		return nil, nil, fmt.Errorf("diffusion: step shape mismatch: latent %v, noise %v", latent.Shape, noise.Shape)
	}
	dirSquared := 1 - alphaPrev - sigma*sigma
	if dirSquared < 0 {
		return nil, nil, fmt.Errorf("diffusion: sigma %v too large for alpha_prev %v", sigma, alphaPrev)
	}

	predX0 = latent.Clone()
	floats.AddScaled(predX0.Data, -math.Sqrt(1-alphaT), noise.Data)
	floats.Scale(1/math.Sqrt(alphaT), predX0.Data)

	// Direction pointing to x_t
	prev = predX0.Clone()
	floats.Scale(math.Sqrt(alphaPrev), prev.Data)
	floats.AddScaled(prev.Data, math.Sqrt(dirSquared), noise.Data)

	if sigma > 0 {
		if rng == nil {
			return nil, nil, errors.New("diffusion: sigma > 0 requires a noise source")
		}
		for i := range prev.Data {
			prev.Data[i] += sigma * rng.NormFloat64() * temperature
		}
	}

	return prev, predX0, nil
}
