// Package pipeline - Sampling-Orchestrator fuer Text-zu-Bild-Generierung
//
// Dieses Paket treibt die Ende-zu-Ende-Schleife: Text-Encoding (einmal),
// Latent-Initialisierung, DDIM-Denoising ueber den subsampelten Zeitplan
// und abschliessendes Decoding zu Pixeln. Es haengt nur an den abstrakten
// Modell-Schnittstellen aus dem model-Paket.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/latentscape/diffuse/diffusion"
	"github.com/latentscape/diffuse/imaging"
	"github.com/latentscape/diffuse/model"
	"github.com/latentscape/diffuse/tensor"
)

// ErrPromptTooLong is returned when a prompt encodes to MaxTextLen or
// more tokens and leaves no room in the fixed-length sequence.
var ErrPromptTooLong = errors.New("pipeline: prompt is too long")

// Pipeline generates images from text prompts with an injected model set.
// It holds no mutable state across runs; a single Pipeline is safe for
// concurrent use as long as the injected models are.
type Pipeline struct {
	models model.Models
}

// New returns a pipeline over the given model set.
func New(m model.Models) (*Pipeline, error) {
	if m.Tokenizer == nil || m.TextEncoder == nil || m.NoisePredictor == nil || m.ImageDecoder == nil {
		return nil, errors.New("pipeline: all four model collaborators are required")
	}
	return &Pipeline{models: m}, nil
}

// Generate runs the full sampling loop and returns one image per batch
// element. Cancellation is honored between denoising steps; a step is an
// atomic unit of progress. Any model returning a tensor off-contract
// aborts the run with a [model.ShapeError].
func (p *Pipeline) Generate(ctx context.Context, cfg Config) ([]*image.NRGBA, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	b := cfg.BatchSize
	latentH, latentW := cfg.Height/8, cfg.Width/8

	// Conditioning context, built once and reused across all steps. The
	// text encoder runs exactly twice per generation.
	context_, uncondContext, err := p.encodePrompt(ctx, cfg.Prompt, b)
	if err != nil {
		return nil, err
	}

	sched, err := diffusion.NewSchedule(cfg.Steps)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int64()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	latent, err := tensor.Randn(rng, b, latentH, latentW, model.LatentChannels)
	if err != nil {
		return nil, err
	}

	slog.Debug("starting generation", "steps", sched.Len(), "guidance", cfg.GuidanceScale,
		"seed", seed, "latent", latent.String())

	total := sched.Len()
	if cfg.Progress != nil {
		cfg.Progress(0, total)
	}

	// Denoising walks the ascending schedule from the back.
	for i := total - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stepStart := time.Now()

		timestep := sched.Timesteps[i]
		guided, err := p.predictNoise(ctx, latent, timestep, context_, uncondContext, cfg.GuidanceScale, b)
		if err != nil {
			return nil, err
		}

		latent, _, err = diffusion.Step(latent, guided, sched.Alphas[i], sched.AlphasPrev[i], 0, cfg.Temperature, rng)
		if err != nil {
			return nil, err
		}

		slog.Debug("denoise step", "step", total-i, "total", total,
			"timestep", timestep, "duration", time.Since(stepStart))
		if cfg.Progress != nil {
			cfg.Progress(total-i, total)
		}
	}

	return p.decode(ctx, latent, cfg, b, latentH, latentW)
}

// encodePrompt tokenizes the prompt and builds both conditioning contexts.
func (p *Pipeline) encodePrompt(ctx context.Context, prompt string, batch int) (context_, uncond *tensor.Tensor, err error) {
	tokens, err := p.models.Tokenizer.Encode(prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenize prompt: %w", err)
	}
	if len(tokens) >= model.MaxTextLen {
		return nil, nil, fmt.Errorf("%w: %d tokens, limit is %d", ErrPromptTooLong, len(tokens), model.MaxTextLen-1)
	}

	phrase := make([]int32, model.MaxTextLen)
	copy(phrase, tokens)
	for i := len(tokens); i < model.MaxTextLen; i++ {
		phrase[i] = model.EndOfText
	}

	positionRow := make([]int32, model.MaxTextLen)
	for i := range positionRow {
		positionRow[i] = int32(i)
	}
	positions := repeatRow(positionRow, batch)

	wantShape := []int{batch, model.MaxTextLen, model.ContextDim}

	context_, err = p.models.TextEncoder.Encode(ctx, repeatRow(phrase, batch), positions)
	if err != nil {
		return nil, nil, fmt.Errorf("text encoder (prompt): %w", err)
	}
	if err := checkShape("text encoder (prompt)", context_, wantShape); err != nil {
		return nil, nil, err
	}

	uncond, err = p.models.TextEncoder.Encode(ctx, repeatRow(model.UncondTokens(), batch), positions)
	if err != nil {
		return nil, nil, fmt.Errorf("text encoder (unconditional): %w", err)
	}
	if err := checkShape("text encoder (unconditional)", uncond, wantShape); err != nil {
		return nil, nil, err
	}

	return context_, uncond, nil
}

// predictNoise runs the noise predictor for both contexts and blends the
// estimates. The two calls are independent and run concurrently; the
// blend is a deterministic elementwise function of the two outputs, so
// this changes throughput but never the result.
func (p *Pipeline) predictNoise(ctx context.Context, latent *tensor.Tensor, timestep int, context_, uncondContext *tensor.Tensor, scale float64, batch int) (*tensor.Tensor, error) {
	temb, err := diffusion.TimestepEmbedding(timestep, model.TimestepDim, diffusion.MaxPeriod)
	if err != nil {
		return nil, err
	}
	tembBatch, err := temb.Repeat(batch)
	if err != nil {
		return nil, err
	}

	var uncondNoise, condNoise *tensor.Tensor
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := p.models.NoisePredictor.Predict(gctx, latent, tembBatch, uncondContext)
		if err != nil {
			return fmt.Errorf("noise predictor (unconditional): %w", err)
		}
		if !out.SameShape(latent) {
			return &model.ShapeError{Call: "noise predictor (unconditional)", Want: latent.Shape, Got: out.Shape}
		}
		uncondNoise = out
		return nil
	})
	g.Go(func() error {
		out, err := p.models.NoisePredictor.Predict(gctx, latent, tembBatch, context_)
		if err != nil {
			return fmt.Errorf("noise predictor (conditional): %w", err)
		}
		if !out.SameShape(latent) {
			return &model.ShapeError{Call: "noise predictor (conditional)", Want: latent.Shape, Got: out.Shape}
		}
		condNoise = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return diffusion.Guide(uncondNoise, condNoise, scale)
}

// decode hands the final latent to the image decoder and rescales pixels
// to 8-bit, resizing when the requested size is not a multiple of 8.
func (p *Pipeline) decode(ctx context.Context, latent *tensor.Tensor, cfg Config, batch, latentH, latentW int) ([]*image.NRGBA, error) {
	decoded, err := p.models.ImageDecoder.Decode(ctx, latent)
	if err != nil {
		return nil, fmt.Errorf("image decoder: %w", err)
	}
	if err := checkShape("image decoder", decoded, []int{batch, latentH * 8, latentW * 8, 3}); err != nil {
		return nil, err
	}

	imgs, err := imaging.ToImages(decoded)
	if err != nil {
		return nil, err
	}
	for i, img := range imgs {
		imgs[i] = imaging.Resize(img, cfg.Width, cfg.Height)
	}
	return imgs, nil
}

func checkShape(call string, t *tensor.Tensor, want []int) error {
	probe := &tensor.Tensor{Shape: want}
	if !t.SameShape(probe) {
		return &model.ShapeError{Call: call, Want: want, Got: t.Shape}
	}
	return nil
}

// repeatRow copies one token row batch times, the pipeline's explicit
// stand-in for broadcasting.
func repeatRow(row []int32, batch int) model.TokenBatch {
	out := make(model.TokenBatch, batch)
	for i := range out {
		r := make([]int32, len(row))
		copy(r, row)
		out[i] = r
	}
	return out
}
