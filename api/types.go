// types.go - Request- und Response-Typen der diffuse-API
package api

import "fmt"

// GenerateRequest is the request for [Client.Generate].
type GenerateRequest struct {
	// Prompt is the text to generate an image for.
	Prompt string `json:"prompt"`

	// Width and Height of the requested image in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Steps is the number of denoising steps. Zero selects the server
	// default.
	Steps int `json:"steps,omitempty"`

	// GuidanceScale controls classifier-free guidance. Nil selects the
	// server default; an explicit 0 disables guidance.
	GuidanceScale *float64 `json:"guidance,omitempty"`

	// Seed fixes the initial latent noise; 0 picks a random seed.
	Seed int64 `json:"seed,omitempty"`
}

// GenerateResponse is one streamed event from the generate endpoint:
// progress updates while sampling, then a final event carrying the image.
type GenerateResponse struct {
	// Completed and Total report denoising progress.
	Completed int `json:"completed,omitempty"`
	Total     int `json:"total,omitempty"`

	// Image is the base64-encoded PNG, set on the final event only.
	Image string `json:"image,omitempty"`

	// Seed is the effective seed of the run, set on the final event.
	Seed int64 `json:"seed,omitempty"`

	Done bool `json:"done"`
}

// StatusError is the error for a non-2xx response from the server.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		return "something went wrong, please see the diffuse server logs for details"
	}
}
