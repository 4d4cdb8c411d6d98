// config.go - Generierungs-Optionen und Defaults
package pipeline

import "fmt"

// Defaults matching the canonical sampler configuration.
const (
	DefaultSize          = 512
	DefaultSteps         = 25
	DefaultGuidanceScale = 7.5
	DefaultTemperature   = 1.0
)

// Config holds the options for one generation run.
//
// GuidanceScale is used as given: 0 means unconditional-only sampling,
// 1 plain conditional sampling. Use DefaultConfig for the usual 7.5.
type Config struct {
	Prompt string

	// Width and Height are the requested output size in pixels. The
	// latent works on the floor of size/8; outputs whose requested size
	// is not a multiple of 8 are resized to fit exactly.
	Width  int
	Height int

	BatchSize     int
	Steps         int
	GuidanceScale float64

	// Temperature scales stochastic noise. The deterministic sampler
	// injects none, so it only matters if a stochastic variant is wired
	// in later.
	Temperature float64

	// Seed fixes the initial latent noise. 0 picks a random seed.
	Seed int64

	// Progress, if set, is called after every completed denoising step
	// with (completed, total). It is also called once with (0, total)
	// before the first step.
	Progress func(completed, total int)
}

// DefaultConfig returns a Config with the canonical defaults for prompt.
func DefaultConfig(prompt string) Config {
	return Config{
		Prompt:        prompt,
		Width:         DefaultSize,
		Height:        DefaultSize,
		BatchSize:     1,
		Steps:         DefaultSteps,
		GuidanceScale: DefaultGuidanceScale,
		Temperature:   DefaultTemperature,
	}
}

// applyDefaults fills structural zero values. GuidanceScale is left
// alone: zero is a valid scale.
func (c *Config) applyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultSize
	}
	if c.Height == 0 {
		c.Height = DefaultSize
	}
	if c.BatchSize == 0 {
		c.BatchSize = 1
	}
	if c.Steps == 0 {
		c.Steps = DefaultSteps
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
}

func (c *Config) validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("pipeline: empty prompt")
	}
	if c.Width < 8 || c.Height < 8 {
		return fmt.Errorf("pipeline: image size %dx%d below the 8x8 minimum", c.Width, c.Height)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("pipeline: batch size must be positive, got %d", c.BatchSize)
	}
	if c.GuidanceScale < 0 {
		return fmt.Errorf("pipeline: guidance scale must be >= 0, got %v", c.GuidanceScale)
	}
	return nil
}
