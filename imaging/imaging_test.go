package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latentscape/diffuse/tensor"
)

func TestToByte(t *testing.T) {
	assert.Equal(t, uint8(0), toByte(-1))
	assert.Equal(t, uint8(255), toByte(1))
	assert.Equal(t, uint8(127), toByte(0))

	// out-of-range decoder output clamps rather than wraps
	assert.Equal(t, uint8(0), toByte(-3))
	assert.Equal(t, uint8(255), toByte(2.5))
}

func TestToImages(t *testing.T) {
	// batch of two 1x2 images
	data := []float64{
		1, -1, 0, // pixel (0,0) of image 0
		-1, 1, -1, // pixel (1,0) of image 0
		0, 0, 0,
		1, 1, 1,
	}
	px, err := tensor.FromSlice(data, 2, 1, 2, 3)
	require.NoError(t, err)

	imgs, err := ToImages(px)
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	assert.Equal(t, image.Rect(0, 0, 2, 1), imgs[0].Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 127, A: 255}, imgs[0].NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, imgs[0].NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 127, G: 127, B: 127, A: 255}, imgs[1].NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, imgs[1].NRGBAAt(1, 0))
}

func TestToImagesBadShape(t *testing.T) {
	px, err := tensor.New(1, 8, 8, 4)
	require.NoError(t, err)
	_, err = ToImages(px)
	assert.Error(t, err)

	px, err = tensor.New(8, 8, 3)
	require.NoError(t, err)
	_, err = ToImages(px)
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	dst := Resize(src, 5, 3)
	assert.Equal(t, image.Rect(0, 0, 5, 3), dst.Bounds())

	// same-size NRGBA passes through untouched
	assert.Same(t, src, Resize(src, 8, 8))
}

func TestEncodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}
