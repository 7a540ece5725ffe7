package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

var (
	// ErrEmptyImage is returned when an image or layer has no pixels.
	ErrEmptyImage = errors.New("image has zero or negative dimensions")

	// ErrInvalidRadius is returned for a negative corner radius.
	ErrInvalidRadius = errors.New("corner radius must not be negative")

	// ErrMaskBounds is returned when a mask does not match its target's size.
	ErrMaskBounds = errors.New("mask size does not match image size")
)

// ClampRadius limits radius to half of the shorter side of a w×h rectangle.
// Larger radii would make opposite arcs overlap.
func ClampRadius(w, h int, radius float64) float64 {
	limit := math.Min(float64(w), float64(h)) / 2
	if radius > limit {
		return limit
	}
	return radius
}

// RoundedMask renders a single-channel opacity mask of size w×h covering the
// full bounds with a rounded rectangle of the given corner radius.
//
// Pixels inside the rounded rectangle are 255, pixels outside the corner
// arcs are 0, and pixels crossed by an arc are anti-aliased. A radius of 0
// yields a fully opaque mask; a radius larger than half the shorter side is
// clamped.
func RoundedMask(w, h int, radius float64) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	radius = ClampRadius(w, h, radius)

	dc := gg.NewContext(w, h)
	if radius == 0 {
		dc.DrawRectangle(0, 0, float64(w), float64(h))
	} else {
		dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	}
	dc.SetColor(color.White)
	dc.Fill()

	return dc.AsMask(), nil
}

// ApplyMask returns a copy of img whose alpha channel is replaced by mask.
//
// Color channels are kept as-is, so pixels that were transparent in img
// become visible wherever the mask is opaque. Both images must have the
// same width and height.
func ApplyMask(img image.Image, mask *image.Alpha) (*image.NRGBA, error) {
	ib, mb := img.Bounds(), mask.Bounds()
	if ib.Dx() != mb.Dx() || ib.Dy() != mb.Dy() {
		return nil, fmt.Errorf("%w: image %dx%d, mask %dx%d",
			ErrMaskBounds, ib.Dx(), ib.Dy(), mb.Dx(), mb.Dy())
	}

	out := imaging.Clone(img)
	w, h := ib.Dx(), ib.Dy()
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+3] = mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
		}
	}
	return out, nil
}

// RoundCorners converts img to NRGBA and makes everything outside a
// rounded rectangle of the given radius fully transparent.
//
// The output has exactly the input's width and height. Any color model is
// accepted; the alpha of every pixel is taken from the mask, not the source.
func RoundCorners(img image.Image, radius float64) (*image.NRGBA, error) {
	b := img.Bounds()
	mask, err := RoundedMask(b.Dx(), b.Dy(), radius)
	if err != nil {
		return nil, err
	}
	return ApplyMask(img, mask)
}
