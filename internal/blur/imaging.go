package blur

import (
	"image"

	"github.com/disintegration/imaging"
)

// Imaging uses "github.com/disintegration/imaging"
type Imaging struct{}

var _ Blurrer = (*Imaging)(nil)

// Blur delegates to imaging.Blur. A non-positive sigma returns a copy.
func (b *Imaging) Blur(img image.Image, sigma float64) *image.NRGBA {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, sigma)
}
