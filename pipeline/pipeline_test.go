package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latentscape/diffuse/imaging"
	"github.com/latentscape/diffuse/model"
	"github.com/latentscape/diffuse/tensor"
)

// stubTokenizer encodes one token per whitespace-separated word.
type stubTokenizer struct{}

func (stubTokenizer) Encode(text string) ([]int32, error) {
	fields := strings.Fields(text)
	toks := make([]int32, len(fields))
	for i, f := range fields {
		toks[i] = int32(len(f))
	}
	return toks, nil
}

// stubEncoder returns a context derived deterministically from the token
// ids and counts its invocations.
type stubEncoder struct{ calls atomic.Int32 }

func (e *stubEncoder) Encode(_ context.Context, tokens, positions model.TokenBatch) (*tensor.Tensor, error) {
	e.calls.Add(1)
	b := len(tokens)
	out, err := tensor.New(b, model.MaxTextLen, model.ContextDim)
	if err != nil {
		return nil, err
	}
	for n := range b {
		for s := range model.MaxTextLen {
			v := float64(tokens[n][s]) / 50000 * float64(positions[n][s]+1)
			for d := range model.ContextDim {
				out.Data[(n*model.MaxTextLen+s)*model.ContextDim+d] = v / float64(d+1)
			}
		}
	}
	return out, nil
}

// stubPredictor returns a deterministic elementwise function of latent,
// embedding and context.
type stubPredictor struct{}

func (stubPredictor) Predict(_ context.Context, latent, temb, context_ *tensor.Tensor) (*tensor.Tensor, error) {
	ctxMean := 0.0
	for _, v := range context_.Data {
		ctxMean += v
	}
	ctxMean /= float64(len(context_.Data))

	out := latent.Clone()
	for i := range out.Data {
		out.Data[i] = 0.3*out.Data[i] + 0.01*ctxMean + 0.001*temb.Data[i%len(temb.Data)]
	}
	return out, nil
}

// zeroPredictor always predicts zero noise.
type zeroPredictor struct{}

func (zeroPredictor) Predict(_ context.Context, latent, _, _ *tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.New(latent.Shape...)
}

// stubDecoder upsamples each latent cell to an 8x8 pixel block.
type stubDecoder struct{}

func (stubDecoder) Decode(_ context.Context, latent *tensor.Tensor) (*tensor.Tensor, error) {
	b, h, w := latent.Shape[0], latent.Shape[1], latent.Shape[2]
	out, err := tensor.New(b, h*8, w*8, 3)
	if err != nil {
		return nil, err
	}
	for n := range b {
		for y := range h * 8 {
			for x := range w * 8 {
				for c := range 3 {
					v := latent.Data[((n*h+y/8)*w+x/8)*model.LatentChannels+c]
					out.Data[((n*(h*8)+y)*(w*8)+x)*3+c] = math.Tanh(v)
				}
			}
		}
	}
	return out, nil
}

func stubModels() model.Models {
	return model.Models{
		Tokenizer:      stubTokenizer{},
		TextEncoder:    &stubEncoder{},
		NoisePredictor: stubPredictor{},
		ImageDecoder:   stubDecoder{},
	}
}

func TestNewRequiresAllModels(t *testing.T) {
	m := stubModels()
	m.ImageDecoder = nil
	_, err := New(m)
	assert.Error(t, err)

	_, err = New(stubModels())
	assert.NoError(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	run := func() []byte {
		p, err := New(stubModels())
		require.NoError(t, err)

		imgs, err := p.Generate(context.Background(), Config{
			Prompt:        "a photograph of an astronaut riding a horse",
			Width:         64,
			Height:        64,
			Steps:         25,
			GuidanceScale: 7.5,
			Seed:          1234,
		})
		require.NoError(t, err)
		require.Len(t, imgs, 1)

		var buf bytes.Buffer
		require.NoError(t, imaging.EncodePNG(&buf, imgs[0]))
		return buf.Bytes()
	}

	first := run()
	second := run()
	assert.True(t, bytes.Equal(first, second), "same seed must produce byte-identical images")
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	cfg := DefaultConfig("a lighthouse at dusk")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 5

	cfg.Seed = 1
	a, err := p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Seed = 2
	b, err := p.Generate(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a[0].Pix, b[0].Pix)
}

func TestGenerateEncodesContextOnce(t *testing.T) {
	enc := &stubEncoder{}
	m := stubModels()
	m.TextEncoder = enc
	p, err := New(m)
	require.NoError(t, err)

	cfg := DefaultConfig("a red bicycle")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 8
	cfg.Seed = 7
	_, err = p.Generate(context.Background(), cfg)
	require.NoError(t, err)

	// once for the prompt, once for the unconditional context
	assert.Equal(t, int32(2), enc.calls.Load())
}

func TestGeneratePromptBoundary(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	cfg := DefaultConfig(strings.TrimSpace(strings.Repeat("x ", 76)))
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 2
	cfg.Seed = 7
	_, err = p.Generate(context.Background(), cfg)
	assert.NoError(t, err, "76 tokens leave room for padding")

	cfg.Prompt = strings.TrimSpace(strings.Repeat("x ", 77))
	_, err = p.Generate(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrPromptTooLong)
}

func TestGenerateBatch(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	cfg := DefaultConfig("three copies")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 3
	cfg.BatchSize = 3
	cfg.Seed = 9
	imgs, err := p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, imgs, 3)
}

func TestGenerateProgress(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	var got []int
	cfg := DefaultConfig("progress")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 4
	cfg.Seed = 3
	cfg.Progress = func(completed, total int) {
		assert.Equal(t, 4, total)
		got = append(got, completed)
	}
	_, err = p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestGenerateCancellation(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cfg := DefaultConfig("cancel me")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 10
	cfg.Seed = 3
	cfg.Progress = func(completed, total int) {
		if completed == 2 {
			cancel()
		}
	}
	_, err = p.Generate(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateShapeMismatchIsFatal(t *testing.T) {
	badPredictor := predictorFunc(func(_ context.Context, latent, _, _ *tensor.Tensor) (*tensor.Tensor, error) {
		return tensor.New(latent.Shape[0], latent.Shape[1], latent.Shape[2], 3)
	})

	m := stubModels()
	m.NoisePredictor = badPredictor
	p, err := New(m)
	require.NoError(t, err)

	cfg := DefaultConfig("bad shapes")
	cfg.Width, cfg.Height = 64, 64
	cfg.Steps = 2
	cfg.Seed = 1
	_, err = p.Generate(context.Background(), cfg)

	var shapeErr *model.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Call, "noise predictor")
	assert.Equal(t, []int{1, 8, 8, 4}, shapeErr.Want)
}

func TestGenerateEncoderShapeChecked(t *testing.T) {
	m := stubModels()
	m.TextEncoder = encoderFunc(func(context.Context, model.TokenBatch, model.TokenBatch) (*tensor.Tensor, error) {
		return tensor.New(1, model.MaxTextLen, 512)
	})
	p, err := New(m)
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), DefaultConfig("wrong width"))
	var shapeErr *model.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Call, "text encoder")
}

func TestGenerateZeroPredictor(t *testing.T) {
	// with zero predicted noise the final latent is the initial latent
	// scaled by prod(sqrt(alpha_prev_i)/sqrt(alpha_i)) over the walk;
	// the run must complete without error and stay finite
	m := stubModels()
	m.NoisePredictor = zeroPredictor{}
	p, err := New(m)
	require.NoError(t, err)

	cfg := DefaultConfig("zero noise")
	cfg.Width, cfg.Height = 32, 32
	cfg.Seed = 21
	imgs, err := p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, imgs, 1)
}

func TestGenerateFullScheduleDegrades(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	var total int
	cfg := DefaultConfig("every timestep")
	cfg.Width, cfg.Height = 16, 16
	cfg.Steps = 1000
	cfg.Seed = 2
	cfg.Progress = func(_, t int) { total = t }
	_, err = p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 999, total)
}

func TestGenerateNonMultipleOf8(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	// latent works on the floor of size/8; output is resized to fit
	cfg := DefaultConfig("odd size")
	cfg.Width, cfg.Height = 100, 60
	cfg.Steps = 2
	cfg.Seed = 5
	imgs, err := p.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, imgs[0].Bounds().Dx())
	assert.Equal(t, 60, imgs[0].Bounds().Dy())
}

func TestGenerateValidation(t *testing.T) {
	p, err := New(stubModels())
	require.NoError(t, err)

	for _, cfg := range []Config{
		{Prompt: ""},
		{Prompt: "p", Width: 4, Height: 64},
		{Prompt: "p", Width: 64, Height: 64, GuidanceScale: -1},
		{Prompt: "p", Width: 64, Height: 64, BatchSize: -2},
	} {
		_, err := p.Generate(context.Background(), cfg)
		assert.Error(t, err, fmt.Sprintf("%+v", cfg))
	}
}

func TestGenerateModelErrorPropagates(t *testing.T) {
	wantErr := errors.New("weights on fire")
	m := stubModels()
	m.NoisePredictor = predictorFunc(func(context.Context, *tensor.Tensor, *tensor.Tensor, *tensor.Tensor) (*tensor.Tensor, error) {
		return nil, wantErr
	})
	p, err := New(m)
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), DefaultConfig("boom"))
	assert.ErrorIs(t, err, wantErr)
}

type predictorFunc func(ctx context.Context, latent, temb, context_ *tensor.Tensor) (*tensor.Tensor, error)

func (f predictorFunc) Predict(ctx context.Context, latent, temb, context_ *tensor.Tensor) (*tensor.Tensor, error) {
	return f(ctx, latent, temb, context_)
}

type encoderFunc func(ctx context.Context, tokens, positions model.TokenBatch) (*tensor.Tensor, error)

func (f encoderFunc) Encode(ctx context.Context, tokens, positions model.TokenBatch) (*tensor.Tensor, error) {
	return f(ctx, tokens, positions)
}
