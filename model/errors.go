// errors.go - Kontraktfehler der Modell-Schnittstellen
package model

import "fmt"

// ShapeError reports a collaborator returning a tensor whose shape breaks
// its contract. It is fatal for the run; the sampler performs no retries.
type ShapeError struct {
	Call string // which collaborator call produced the tensor
	Want []int
	Got  []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unexpected tensor shape: want %v, got %v", e.Call, e.Want, e.Got)
}
