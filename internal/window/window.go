// Package window frames a screenshot as a terminal window.
//
// Frame draws window chrome (a dark panel, a darker header bar, three
// traffic-light buttons and a centered title), pastes the screenshot below
// the header, rounds the window's corners and places it over a soft offset
// shadow. The shadow is a single low-opacity rounded rectangle rather than a
// blurred one.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/ironsheep/shotframe/internal/fonts"
	shotimg "github.com/ironsheep/shotframe/internal/imaging"
)

// ErrInvalidOptions is returned for negative geometry.
var ErrInvalidOptions = errors.New("invalid window options")

const (
	buttonRadius = 6
	buttonMargin = 8

	// shadowGrow is how much larger the shadow layer is than the window.
	shadowGrow = 10
)

// Button colors, left to right.
var (
	CloseColor    = color.NRGBA{255, 95, 86, 255}
	MinimizeColor = color.NRGBA{255, 189, 46, 255}
	MaximizeColor = color.NRGBA{39, 201, 63, 255}

	shadowColor = color.NRGBA{0, 0, 0, 60}
)

// Options configures Frame.
type Options struct {
	Title string

	// Padding surrounds the content on all sides inside the window.
	Padding int
	// HeaderHeight is the height of the title bar.
	HeaderHeight int
	// CornerRadius rounds the window corners.
	CornerRadius int
	// ShadowPadding is extra transparent room right and below the window.
	ShadowPadding int
	// ShadowOffset shifts the shadow layer right and down.
	ShadowOffset int
	// FontSize is the title size in pixels.
	FontSize float64

	Background color.NRGBA
	Header     color.NRGBA
	TitleColor color.NRGBA

	// Fonts resolves the title font. nil uses fonts.DefaultChain.
	Fonts *fonts.Chain
}

// DefaultOptions returns the stock macOS-style terminal look.
func DefaultOptions() Options {
	return Options{
		Title:         "pong-game ~/preview",
		Padding:       20,
		HeaderHeight:  40,
		CornerRadius:  10,
		ShadowPadding: 40,
		ShadowOffset:  10,
		FontSize:      12,
		Background:    color.NRGBA{46, 46, 46, 255},
		Header:        color.NRGBA{30, 30, 30, 255},
		TitleColor:    color.NRGBA{200, 200, 200, 255},
	}
}

func (o Options) validate() error {
	switch {
	case o.Padding < 0:
		return fmt.Errorf("%w: padding %d", ErrInvalidOptions, o.Padding)
	case o.HeaderHeight < 0:
		return fmt.Errorf("%w: header height %d", ErrInvalidOptions, o.HeaderHeight)
	case o.CornerRadius < 0:
		return fmt.Errorf("%w: corner radius %d", ErrInvalidOptions, o.CornerRadius)
	case o.ShadowPadding < 0:
		return fmt.Errorf("%w: shadow padding %d", ErrInvalidOptions, o.ShadowPadding)
	case o.ShadowOffset < 0:
		return fmt.Errorf("%w: shadow offset %d", ErrInvalidOptions, o.ShadowOffset)
	case o.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidOptions, o.FontSize)
	}
	return nil
}

// Button is one traffic-light circle in the header.
type Button struct {
	Center image.Point
	Radius int
	Color  color.NRGBA
}

// Layout describes where everything lands. Coordinates are relative to the
// window's top-left corner, which sits at the canvas origin.
type Layout struct {
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`

	Content image.Rectangle `json:"content"`
	Buttons []Button        `json:"-"`

	// TitleOrigin is the top-left of the title text.
	TitleOrigin image.Point `json:"title_origin"`
	// Font names the fallback source that rendered the title.
	Font string `json:"font"`
	// SkippedFonts holds one error per font candidate tried before Font.
	SkippedFonts []error `json:"-"`
}

// NewLayout computes the geometry for content of size cw×ch. The title
// position is filled in by Frame once the font is known.
func NewLayout(cw, ch int, o Options) (Layout, error) {
	if cw <= 0 || ch <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d", shotimg.ErrEmptyImage, cw, ch)
	}
	if err := o.validate(); err != nil {
		return Layout{}, err
	}

	w := cw + 2*o.Padding
	h := ch + o.HeaderHeight + 2*o.Padding
	origin := image.Pt(o.Padding, o.HeaderHeight+o.Padding)

	buttonY := o.HeaderHeight / 2
	x1 := o.Padding
	x2 := x1 + 2*buttonRadius + buttonMargin
	x3 := x2 + 2*buttonRadius + buttonMargin

	return Layout{
		WindowWidth:  w,
		WindowHeight: h,
		CanvasWidth:  w + o.ShadowPadding,
		CanvasHeight: h + o.ShadowPadding,
		Content:      image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cw, ch))},
		Buttons: []Button{
			{Center: image.Pt(x1, buttonY), Radius: buttonRadius, Color: CloseColor},
			{Center: image.Pt(x2, buttonY), Radius: buttonRadius, Color: MinimizeColor},
			{Center: image.Pt(x3, buttonY), Radius: buttonRadius, Color: MaximizeColor},
		},
	}, nil
}

// Frame renders content inside a terminal window and returns the final
// canvas together with its layout.
func Frame(content image.Image, o Options) (*image.NRGBA, Layout, error) {
	cb := content.Bounds()
	layout, err := NewLayout(cb.Dx(), cb.Dy(), o)
	if err != nil {
		return nil, Layout{}, err
	}

	chain := o.Fonts
	if chain == nil {
		chain = fonts.DefaultChain()
	}
	res := chain.Resolve(o.FontSize)
	layout.Font = res.Source
	layout.SkippedFonts = res.Skipped

	win, err := drawWindow(content, o, res.Face, &layout)
	if err != nil {
		return nil, Layout{}, err
	}

	shadow := drawShadow(layout.WindowWidth, layout.WindowHeight, o.CornerRadius)

	canvas := imaging.New(layout.CanvasWidth, layout.CanvasHeight, color.NRGBA{})
	canvas = imaging.Overlay(canvas, shadow, image.Pt(o.ShadowOffset, o.ShadowOffset), 1.0)
	canvas = imaging.Overlay(canvas, win, image.Pt(0, 0), 1.0)
	return canvas, layout, nil
}

// drawWindow paints the chrome, rounds it (header corners included) and
// pastes the content.
func drawWindow(content image.Image, o Options, face font.Face, layout *Layout) (*image.NRGBA, error) {
	w, h := layout.WindowWidth, layout.WindowHeight
	dc := gg.NewContext(w, h)

	dc.SetColor(o.Background)
	dc.Clear()

	if o.HeaderHeight > 0 {
		dc.SetColor(o.Header)
		dc.DrawRectangle(0, 0, float64(w), float64(o.HeaderHeight))
		dc.Fill()

		for _, b := range layout.Buttons {
			dc.SetColor(b.Color)
			dc.DrawCircle(float64(b.Center.X), float64(b.Center.Y), float64(b.Radius))
			dc.Fill()
		}
	}

	if o.Title != "" {
		dc.SetFontFace(face)
		tw, _ := dc.MeasureString(o.Title)
		x := int(math.Floor((float64(w) - tw) / 2))
		y := (o.HeaderHeight - int(o.FontSize)) / 2
		layout.TitleOrigin = image.Pt(x, y)

		dc.SetColor(o.TitleColor)
		ascent := face.Metrics().Ascent.Ceil()
		dc.DrawString(o.Title, float64(x), float64(y+ascent))
	}

	mask, err := shotimg.RoundedMask(w, h, float64(o.CornerRadius))
	if err != nil {
		return nil, err
	}
	chrome, err := shotimg.ApplyMask(dc.Image(), mask)
	if err != nil {
		return nil, err
	}

	// Content keeps its own alpha; it is pasted after rounding.
	return imaging.Paste(chrome, content, layout.Content.Min), nil
}

// drawShadow renders the approximate shadow: one translucent rounded
// rectangle, inset by half the growth, with a slightly larger radius.
func drawShadow(w, h, radius int) *image.NRGBA {
	inset := shadowGrow / 2
	dc := gg.NewContext(w+shadowGrow, h+shadowGrow)
	dc.DrawRoundedRectangle(float64(inset), float64(inset), float64(w), float64(h),
		shotimg.ClampRadius(w, h, float64(radius+inset)))
	dc.SetColor(shadowColor)
	dc.Fill()
	return imaging.Clone(dc.Image())
}
