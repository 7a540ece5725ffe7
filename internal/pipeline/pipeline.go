// Package pipeline runs the two screenshot styling jobs end to end.
//
// ProcessImage rounds an image's corners and adds a blurred drop shadow.
// CreateTerminalWindow frames a screenshot as a terminal window. Both read one
// input file, write one PNG, and produce byte-identical output for identical
// input and configuration.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/ironsheep/shotframe/internal/blur"
	"github.com/ironsheep/shotframe/internal/imaging"
	"github.com/ironsheep/shotframe/internal/window"
)

// ProcessConfig configures the rounded-corner + shadow pipeline.
type ProcessConfig struct {
	CornerRadius int
	ShadowColor  color.NRGBA
	ShadowBlur   int
	ShadowSpread int
	// BlurEngine names a blur backend; see blur.Names.
	BlurEngine string

	// Logger receives per-stage debug lines. nil disables them.
	Logger *log.Logger
}

// DefaultProcessConfig returns the settings used for the README screenshots.
func DefaultProcessConfig() ProcessConfig {
	return ProcessConfig{
		CornerRadius: 60,
		ShadowColor:  color.NRGBA{0, 0, 0, 250},
		ShadowBlur:   45,
		ShadowSpread: 40,
		BlurEngine:   blur.DefaultName,
	}
}

// TerminalConfig configures the terminal-window pipeline.
type TerminalConfig struct {
	Window window.Options

	// Logger receives per-stage debug lines. nil disables them.
	Logger *log.Logger
}

// DefaultTerminalConfig returns the stock terminal-window settings.
func DefaultTerminalConfig() TerminalConfig {
	return TerminalConfig{Window: window.DefaultOptions()}
}

// Result describes a written output image.
type Result struct {
	OutputPath string `json:"output_path,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	// Font is set by the terminal-window pipeline.
	Font string `json:"font,omitempty"`
}

func debugf(l *log.Logger, format string, args ...interface{}) {
	if l != nil {
		l.Printf(format, args...)
	}
}

// Process applies rounded corners and a drop shadow to img in memory.
func Process(img image.Image, cfg ProcessConfig) (*image.NRGBA, error) {
	b, err := blur.ByName(cfg.BlurEngine)
	if err != nil {
		return nil, err
	}

	rounded, err := imaging.RoundCorners(img, float64(cfg.CornerRadius))
	if err != nil {
		return nil, fmt.Errorf("failed to round corners: %w", err)
	}
	debugf(cfg.Logger, "rounded corners (radius %d) on %dx%d image",
		cfg.CornerRadius, rounded.Bounds().Dx(), rounded.Bounds().Dy())

	out, err := imaging.DropShadow(rounded, imaging.ShadowOptions{
		Color:   cfg.ShadowColor,
		Blur:    cfg.ShadowBlur,
		Spread:  cfg.ShadowSpread,
		Radius:  float64(cfg.CornerRadius),
		Blurrer: b,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add drop shadow: %w", err)
	}
	debugf(cfg.Logger, "drop shadow (blur %d, spread %d, engine %s) -> %dx%d",
		cfg.ShadowBlur, cfg.ShadowSpread, cfg.BlurEngine, out.Bounds().Dx(), out.Bounds().Dy())
	return out, nil
}

// ProcessImage loads inputPath, applies Process and writes a PNG to outputPath.
func ProcessImage(ctx context.Context, inputPath, outputPath string, cfg ProcessConfig) (*Result, error) {
	img, err := load(ctx, inputPath, cfg.Logger)
	if err != nil {
		return nil, err
	}

	out, err := Process(img, cfg)
	if err != nil {
		return nil, err
	}

	return save(ctx, out, outputPath, "", cfg.Logger)
}

// Frame renders img inside a terminal window in memory.
func Frame(img image.Image, cfg TerminalConfig) (*image.NRGBA, window.Layout, error) {
	out, layout, err := window.Frame(img, cfg.Window)
	if err != nil {
		return nil, window.Layout{}, fmt.Errorf("failed to frame image: %w", err)
	}
	for _, skipped := range layout.SkippedFonts {
		debugf(cfg.Logger, "font skipped: %v", skipped)
	}
	debugf(cfg.Logger, "terminal window %dx%d (canvas %dx%d), title font %q",
		layout.WindowWidth, layout.WindowHeight, layout.CanvasWidth, layout.CanvasHeight, layout.Font)
	return out, layout, nil
}

// CreateTerminalWindow loads inputPath, frames it and writes a PNG to outputPath.
func CreateTerminalWindow(ctx context.Context, inputPath, outputPath string, cfg TerminalConfig) (*Result, error) {
	img, err := load(ctx, inputPath, cfg.Logger)
	if err != nil {
		return nil, err
	}

	out, layout, err := Frame(img, cfg)
	if err != nil {
		return nil, err
	}

	return save(ctx, out, outputPath, layout.Font, cfg.Logger)
}

func load(ctx context.Context, path string, l *log.Logger) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	debugf(l, "loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

func save(ctx context.Context, img *image.NRGBA, path, fontName string, l *log.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := imaging.SavePNG(img, path); err != nil {
		return nil, err
	}
	debugf(l, "saved to %s", path)
	return &Result{
		OutputPath: path,
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
		Font:       fontName,
	}, nil
}
