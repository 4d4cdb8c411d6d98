// Package imaging - Konvertierung von Decoder-Ausgaben zu 8-Bit-Bildern
// Enthaelt die [-1,1]->[0,255] Reskalierung, PNG-Encoding und optionales
// Resizing auf die exakt angeforderte Groesse.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/latentscape/diffuse/tensor"
)

// ToImages converts a decoded pixel tensor of shape [batch, h, w, 3] with
// values in an approximately [-1,1] range into 8-bit images, one per batch
// element: v = ((x+1)/2)*255, clamped to [0,255] and truncated.
func ToImages(t *tensor.Tensor) ([]*image.NRGBA, error) {
	if len(t.Shape) != 4 || t.Shape[3] != 3 {
		return nil, fmt.Errorf("imaging: expected pixel tensor [batch h w 3], got %v", t.Shape)
	}

	b, h, w := t.Shape[0], t.Shape[1], t.Shape[2]
	imgs := make([]*image.NRGBA, b)
	for n := range b {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		base := n * h * w * 3
		for y := range h {
			for x := range w {
				off := base + (y*w+x)*3
				img.SetNRGBA(x, y, color.NRGBA{
					R: toByte(t.Data[off]),
					G: toByte(t.Data[off+1]),
					B: toByte(t.Data[off+2]),
					A: 255,
				})
			}
		}
		imgs[n] = img
	}
	return imgs, nil
}

// Resize scales img to the exact width and height using Catmull-Rom
// interpolation. Decoder output is always a multiple of 8 per side, so
// this covers requested sizes that are not.
func Resize(img image.Image, width, height int) *image.NRGBA {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		if nrgba, ok := img.(*image.NRGBA); ok {
			return nrgba
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// toByte rescales one channel value from [-1,1] to [0,255].
func toByte(v float64) uint8 {
	v = ((v + 1) / 2) * 255
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
