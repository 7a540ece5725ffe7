package blur

import (
	"image"

	bildblur "github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Bild uses "github.com/anthonynsimon/bild/blur"
//
// bild convolves with a full 2D kernel, so large sigmas are noticeably
// slower than the separable imaging and gift backends.
type Bild struct{}

var _ Blurrer = (*Bild)(nil)

// Blur applies a Gaussian blur with the given sigma; sigma <= 0 returns a copy.
func (b *Bild) Blur(img image.Image, sigma float64) *image.NRGBA {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Clone(bildblur.Gaussian(img, sigma))
}
