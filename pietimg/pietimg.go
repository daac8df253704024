// Package pietimg converts between a piet.Grid and the PNG/GIF pixel
// images Piet programs are conventionally distributed as (spec.md
// section 4.8): one canonical color per codel, replicated into an
// s x s block of pixels on encode. Decode returns the full-resolution
// image; piet.NewGridFromImage samples it down to one color per codel.
package pietimg

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // registers the GIF decoder with image.Decode
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/kranzsten/pietvm/piet"
)

// Encode writes g as a PNG image, replicating each codel into a
// codelSize x codelSize block of pixels. Scaling is done with
// golang.org/x/image/draw's nearest-neighbor sampler over an
// intermediate one-pixel-per-codel image, rather than hand-rolled
// pixel replication, so the block boundaries are exact (nearest
// neighbor never blends across a codel edge).
func Encode(g *piet.Grid, codelSize int, w io.Writer) error {
	if codelSize < 1 {
		return fmt.Errorf("pietimg: codel size must be positive, got %d", codelSize)
	}

	small := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			rgba := piet.ToRGBA(g.ColorAt(x, y))
			small.Set(x, y, color.NRGBA{rgba.R, rgba.G, rgba.B, rgba.A})
		}
	}

	big := image.NewNRGBA(image.Rect(0, 0, g.Width()*codelSize, g.Height()*codelSize))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Over, nil)

	return png.Encode(w, big)
}

// Decode reads a Piet source image, recognizing both PNG and GIF
// (spec.md section 6), registering both codecs with the image package
// so a single image.Decode call handles either.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pietimg: decode: %w", err)
	}
	return img, nil
}
