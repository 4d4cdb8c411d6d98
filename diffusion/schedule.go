// schedule.go - Zeitschritt-Planung und Alpha-Lookup fuer DDIM-Sampling
// Dieses Modul enthaelt:
// - AlphaCumprod: Lookup in die kumulative Alpha-Tabelle
// - NewSchedule: Subsampling der Trainings-Zeitschritte fuer einen Lauf
package diffusion

import (
	"errors"
	"fmt"
)

// NumTrainTimesteps is the number of timesteps the noise schedule was
// built for. Valid diffusion timesteps lie in [1, NumTrainTimesteps).
const NumTrainTimesteps = 1000

var (
	ErrTimestepRange = errors.New("diffusion: timestep out of range")
	ErrBadSteps      = errors.New("diffusion: step count must be positive")
)

// AlphaCumprod returns the cumulative signal-retention coefficient for a
// training timestep. The table is immutable and safe for concurrent use.
func AlphaCumprod(t int) (float64, error) {
	if t < 0 || t >= NumTrainTimesteps {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrTimestepRange, t, NumTrainTimesteps)
	}
	return alphasCumprod[t], nil
}

// Schedule is the per-run subsampled timestep plan. Timesteps are stored
// ascending; the sampler walks them from the last index down to 0.
// AlphasPrev is aligned to Timesteps with AlphasPrev[0] == 1 (no signal
// loss before the first training step) and AlphasPrev[i] == Alphas[i-1].
type Schedule struct {
	Timesteps  []int
	Alphas     []float64
	AlphasPrev []float64
}

// NewSchedule subsamples the training timesteps for a run of nSteps,
// taking every (NumTrainTimesteps/nSteps)-th step starting at 1. For
// nSteps > NumTrainTimesteps the stride collapses to 1 and the schedule
// holds fewer than nSteps distinct timesteps; callers get every training
// step rather than an error.
func NewSchedule(nSteps int) (*Schedule, error) {
	if nSteps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSteps, nSteps)
	}

	stride := NumTrainTimesteps / nSteps
	if stride < 1 {
		stride = 1
	}

	s := &Schedule{}
	for t := 1; t < NumTrainTimesteps; t += stride {
		s.Timesteps = append(s.Timesteps, t)
		s.Alphas = append(s.Alphas, alphasCumprod[t])
	}

	s.AlphasPrev = append([]float64{1.0}, s.Alphas[:len(s.Alphas)-1]...)
	return s, nil
}

// Len returns the number of denoising steps in the schedule.
func (s *Schedule) Len() int { return len(s.Timesteps) }
