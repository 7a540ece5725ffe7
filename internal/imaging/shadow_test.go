package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/shotframe/internal/blur"
)

func defaultTestShadow() ShadowOptions {
	return ShadowOptions{
		Color:  color.NRGBA{0, 0, 0, 250},
		Blur:   6,
		Spread: 4,
		Radius: 8,
	}
}

func TestDropShadow_Dimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		blur, spread int
	}{
		{"small", 40, 30, 6, 4},
		{"no blur", 40, 30, 0, 10},
		{"no spread", 40, 30, 5, 0},
		{"none", 25, 25, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.w, tt.h, color.RGBA{255, 255, 255, 255})
			opts := defaultTestShadow()
			opts.Blur = tt.blur
			opts.Spread = tt.spread

			result, err := DropShadow(img, opts)
			if err != nil {
				t.Fatalf("DropShadow failed: %v", err)
			}

			wantW := tt.w + 2*(tt.spread+tt.blur)
			wantH := tt.h + 2*(tt.spread+tt.blur)
			b := result.Bounds()
			if b.Dx() != wantW || b.Dy() != wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
			}
		})
	}
}

func TestDropShadow_ContentOnTop(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{255, 0, 0, 255})
	opts := defaultTestShadow()

	result, err := DropShadow(img, opts)
	if err != nil {
		t.Fatalf("DropShadow failed: %v", err)
	}

	pad := opts.Padding()
	got := result.NRGBAAt(pad+20, pad+15)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("content pixel: got %v, want opaque red", got)
	}
}

func TestDropShadow_ShadowVisibleAroundContent(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{255, 255, 255, 255})
	rounded, err := RoundCorners(img, 8)
	if err != nil {
		t.Fatalf("RoundCorners failed: %v", err)
	}
	opts := defaultTestShadow()
	opts.Spread = 20

	result, err := DropShadow(rounded, opts)
	if err != nil {
		t.Fatalf("DropShadow failed: %v", err)
	}

	pad := opts.Padding()
	// Just outside the content edge the blurred shadow bleeds through.
	edge := result.NRGBAAt(pad-2, pad+15)
	if edge.A == 0 {
		t.Error("expected shadow alpha just outside the content edge")
	}
	if edge.R > 10 || edge.G > 10 || edge.B > 10 {
		t.Errorf("shadow should be dark, got %v", edge)
	}
	// The outermost corner is beyond the blur kernel's reach.
	if a := result.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("canvas corner alpha: got %d, want 0", a)
	}
}

func TestDropShadow_NoBlurIsSharp(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 255, 255, 255})
	opts := ShadowOptions{Color: color.NRGBA{0, 0, 0, 255}, Spread: 5}

	result, err := DropShadow(img, opts)
	if err != nil {
		t.Fatalf("DropShadow failed: %v", err)
	}

	// Without blur the shadow is exactly covered by the content.
	if a := result.NRGBAAt(2, 10).A; a != 0 {
		t.Errorf("alpha outside content: got %d, want 0", a)
	}
}

func TestDropShadow_Invalid(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	opts := defaultTestShadow()
	opts.Blur = -1
	if _, err := DropShadow(img, opts); !errors.Is(err, ErrInvalidShadow) {
		t.Errorf("negative blur: got %v, want ErrInvalidShadow", err)
	}

	opts = defaultTestShadow()
	opts.Spread = -3
	if _, err := DropShadow(img, opts); !errors.Is(err, ErrInvalidShadow) {
		t.Errorf("negative spread: got %v, want ErrInvalidShadow", err)
	}

	opts = defaultTestShadow()
	opts.Radius = -3
	if _, err := DropShadow(img, opts); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("negative radius: got %v, want ErrInvalidRadius", err)
	}

	if _, err := DropShadow(image.NewNRGBA(image.Rect(0, 0, 0, 0)), defaultTestShadow()); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image: got %v, want ErrEmptyImage", err)
	}
}

func TestDropShadow_Deterministic(t *testing.T) {
	img := createPatternImage(60, 40)
	opts := defaultTestShadow()

	encode := func() []byte {
		t.Helper()
		rounded, err := RoundCorners(img, 8)
		if err != nil {
			t.Fatalf("RoundCorners failed: %v", err)
		}
		result, err := DropShadow(rounded, opts)
		if err != nil {
			t.Fatalf("DropShadow failed: %v", err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, result); err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(encode(), encode()) {
		t.Error("two runs produced different output")
	}
}

func TestDropShadow_Backends(t *testing.T) {
	img := createInMemoryImage(30, 20, color.RGBA{255, 255, 255, 255})

	for _, name := range blur.Names() {
		t.Run(name, func(t *testing.T) {
			b, err := blur.ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			opts := defaultTestShadow()
			opts.Blurrer = b

			result, err := DropShadow(img, opts)
			if err != nil {
				t.Fatalf("DropShadow failed: %v", err)
			}
			if got := result.Bounds().Dx(); got != 30+2*opts.Padding() {
				t.Errorf("width: got %d, want %d", got, 30+2*opts.Padding())
			}
		})
	}
}
