package blur

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

// Gift uses "github.com/disintegration/gift"
type Gift struct{}

var _ Blurrer = (*Gift)(nil)

// Blur runs gift.GaussianBlur over img, returning a copy when sigma <= 0.
func (b *Gift) Blur(img image.Image, sigma float64) *image.NRGBA {
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	g := gift.New(gift.GaussianBlur(float32(sigma)))
	m := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(m, img)
	return m
}
