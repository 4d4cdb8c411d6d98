// Package model - Schnittstellen der externen Modell-Kollaborateure
//
// Dieses Paket definiert die Vertraege der drei neuronalen Modelle und des
// Tokenizers, die der Sampler konsumiert, sowie die Backend-Registry, ueber
// die konkrete Implementierungen eingehaengt werden.
//
// Hauptkomponenten:
// - Tokenizer, TextEncoder, NoisePredictor, ImageDecoder: Interfaces
// - ShapeError: fataler Kontraktfehler bei unerwarteter Tensor-Shape
// - Register/New: Backend-Registry fuer konkrete Modell-Saetze
package model

import (
	"context"

	"github.com/latentscape/diffuse/tensor"
)

// Contract dimensions shared by every collaborator.
const (
	// MaxTextLen is the fixed token sequence length. Prompts must encode
	// to strictly fewer tokens; the rest is end-token padding.
	MaxTextLen = 77

	// ContextDim is the width of the text-encoder output embedding.
	ContextDim = 768

	// TimestepDim is the width of the sinusoidal timestep embedding the
	// noise predictor expects.
	TimestepDim = 320

	// LatentChannels is the channel count of the latent space.
	LatentChannels = 4
)

// TokenBatch is an integer token tensor of shape [batch, MaxTextLen].
// Every row has exactly MaxTextLen entries.
type TokenBatch [][]int32

// Tokenizer converts prompt text into token ids. The returned sequence
// excludes padding; the orchestrator pads it to MaxTextLen itself.
type Tokenizer interface {
	Encode(text string) ([]int32, error)
}

// TextEncoder maps token ids plus position ids to a conditioning context
// of shape [batch, MaxTextLen, ContextDim]. It is a pure function; the
// orchestrator calls it exactly twice per run.
type TextEncoder interface {
	Encode(ctx context.Context, tokens, positions TokenBatch) (*tensor.Tensor, error)
}

// NoisePredictor estimates the noise component of a latent given a
// timestep embedding of shape [batch, TimestepDim] and a conditioning
// context. The output must have the latent's shape.
type NoisePredictor interface {
	Predict(ctx context.Context, latent, timestepEmbedding, context_ *tensor.Tensor) (*tensor.Tensor, error)
}

// ImageDecoder decodes a final latent [batch, h, w, LatentChannels] to
// pixels [batch, 8h, 8w, 3] in an approximately [-1,1] range.
type ImageDecoder interface {
	Decode(ctx context.Context, latent *tensor.Tensor) (*tensor.Tensor, error)
}

// Models bundles one concrete set of collaborators.
type Models struct {
	Tokenizer      Tokenizer
	TextEncoder    TextEncoder
	NoisePredictor NoisePredictor
	ImageDecoder   ImageDecoder
}
