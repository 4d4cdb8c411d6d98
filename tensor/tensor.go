// tensor.go - Dichter float64-Tensor mit expliziter Shape
// Dieses Modul enthaelt Konstruktion, Zufalls-Initialisierung und
// Shape-Pruefung fuer die Sampling-Pipeline.
package tensor

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Tensor is a dense floating-point tensor with an explicit shape. The
// first dimension is always the batch dimension; there is no implicit
// broadcasting anywhere in this package. Data is laid out row-major.
type Tensor struct {
	Shape []int
	Data  []float64
}

// New returns a zero-filled tensor of the given shape.
func New(shape ...int) (*Tensor, error) {
	n, err := numel(shape)
	if err != nil {
		return nil, err
	}
	return &Tensor{Shape: slices.Clone(shape), Data: make([]float64, n)}, nil
}

// FromSlice wraps data in a tensor of the given shape. The slice is not
// copied; it must have exactly as many elements as the shape requires.
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	n, err := numel(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("tensor: shape %v requires %d elements, got %d", shape, n, len(data))
	}
	return &Tensor{Shape: slices.Clone(shape), Data: data}, nil
}

// Randn returns a tensor of the given shape filled with independent
// standard-normal samples drawn from rng.
func Randn(rng *rand.Rand, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.Data {
		t.Data[i] = rng.NormFloat64()
	}
	return t, nil
}

// Numel returns the number of elements.
func (t *Tensor) Numel() int { return len(t.Data) }

// SameShape reports whether t and o have identical shapes.
func (t *Tensor) SameShape(o *Tensor) bool {
	return slices.Equal(t.Shape, o.Shape)
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{Shape: slices.Clone(t.Shape), Data: slices.Clone(t.Data)}
}

// Repeat copies a single-batch tensor n times along the batch axis,
// returning a tensor whose leading dimension is n. Repetition is the only
// broadcast operation the pipeline performs, and it is always explicit.
func (t *Tensor) Repeat(n int) (*Tensor, error) {
	if len(t.Shape) == 0 || t.Shape[0] != 1 {
		return nil, fmt.Errorf("tensor: repeat requires batch dimension 1, got shape %v", t.Shape)
	}
	if n < 1 {
		return nil, fmt.Errorf("tensor: repeat count must be positive, got %d", n)
	}

	shape := slices.Clone(t.Shape)
	shape[0] = n
	out := &Tensor{Shape: shape, Data: make([]float64, 0, n*len(t.Data))}
	for range n {
		out.Data = append(out.Data, t.Data...)
	}
	return out, nil
}

// String renders the dtype and shape, e.g. "f64[1 64 64 4]".
func (t *Tensor) String() string {
	dims := make([]string, len(t.Shape))
	for i, d := range t.Shape {
		dims[i] = fmt.Sprint(d)
	}
	return "f64[" + strings.Join(dims, " ") + "]"
}

func numel(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("tensor: empty shape")
	}
	n := 1
	for _, d := range shape {
		if d < 1 {
			return 0, fmt.Errorf("tensor: invalid dimension %d in shape %v", d, shape)
		}
		n *= d
	}
	return n, nil
}
