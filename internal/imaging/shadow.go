package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ironsheep/shotframe/internal/blur"
)

// ErrInvalidShadow is returned for negative blur or spread values.
var ErrInvalidShadow = errors.New("shadow blur and spread must not be negative")

// ShadowOptions configures DropShadow.
type ShadowOptions struct {
	// Color is the shadow fill before blurring, including its opacity.
	Color color.NRGBA

	// Blur is the Gaussian standard deviation in pixels. 0 disables blurring.
	Blur int

	// Spread is extra room around the image, in pixels, on top of Blur.
	Spread int

	// Radius is the corner radius of the shadow shape. It should match the
	// radius the image was rounded with.
	Radius float64

	// Blurrer performs the Gaussian blur. nil selects the imaging backend.
	Blurrer blur.Blurrer
}

// Padding is the number of pixels added on each side of the image.
func (o ShadowOptions) Padding() int {
	return o.Spread + o.Blur
}

// ShadowLayer renders the blurred shadow shape for an image of size w×h on
// a transparent canvas padded by o.Padding() on each side.
func ShadowLayer(w, h int, o ShadowOptions) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	if o.Blur < 0 || o.Spread < 0 {
		return nil, fmt.Errorf("%w: blur=%d spread=%d", ErrInvalidShadow, o.Blur, o.Spread)
	}
	if o.Radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, o.Radius)
	}

	pad := o.Padding()
	dc := gg.NewContext(w+2*pad, h+2*pad)
	radius := ClampRadius(w, h, o.Radius)
	if radius == 0 {
		dc.DrawRectangle(float64(pad), float64(pad), float64(w), float64(h))
	} else {
		dc.DrawRoundedRectangle(float64(pad), float64(pad), float64(w), float64(h), radius)
	}
	dc.SetColor(o.Color)
	dc.Fill()

	b := o.Blurrer
	if b == nil {
		b = &blur.Imaging{}
	}
	return b.Blur(dc.Image(), float64(o.Blur)), nil
}

// DropShadow places img on a canvas padded by Spread+Blur on every side,
// above a blurred rounded-rectangle shadow of the same size.
//
// The shadow is composited first, then img at the padding offset using its
// own alpha. Output dimensions are the input dimensions plus
// 2*(Spread+Blur) along each axis.
func DropShadow(img image.Image, o ShadowOptions) (*image.NRGBA, error) {
	b := img.Bounds()
	shadow, err := ShadowLayer(b.Dx(), b.Dy(), o)
	if err != nil {
		return nil, err
	}

	pad := o.Padding()
	sb := shadow.Bounds()
	canvas := imaging.New(sb.Dx(), sb.Dy(), color.NRGBA{})
	canvas = imaging.Overlay(canvas, shadow, image.Pt(0, 0), 1.0)
	canvas = imaging.Overlay(canvas, img, image.Pt(pad, pad), 1.0)
	return canvas, nil
}
