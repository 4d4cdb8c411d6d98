// guidance.go - Classifier-Free Guidance
// Kombiniert konditionierte und unkonditionierte Noise-Schaetzung.
package diffusion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/latentscape/diffuse/tensor"
)

// Guide blends an unconditional and a conditional noise estimate into a
// single guided estimate: uncond + scale*(cond - uncond). This is an
// affine extrapolation, not a convex blend; scale > 1 is the common case.
// scale == 1 reduces to the conditional estimate, scale == 0 to the
// unconditional one. Both inputs must have identical shapes.
func Guide(uncond, cond *tensor.Tensor, scale float64) (*tensor.Tensor, error) {
	if !uncond.SameShape(cond) {
		return nil, fmt.Errorf("diffusion: guidance shape mismatch: unconditional %v, conditional %v", uncond.Shape, cond.Shape)
	}

	out := uncond.Clone()
	diff := make([]float64, len(out.Data))
	floats.SubTo(diff, cond.Data, uncond.Data)
	floats.AddScaled(out.Data, scale, diff)
	return out, nil
}
