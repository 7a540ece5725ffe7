// Package fonts resolves a font face from an ordered list of candidates.
//
// A Chain tries each Source in order and returns the first face that loads.
// Failures are collected rather than returned, and the chain always ends in
// the built-in basicfont face, so resolving a font never fails.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Source produces a font face at a given pixel size.
type Source interface {
	// Name identifies the source in logs and resolution results.
	Name() string

	// Face loads the font at size pixels (72 DPI).
	Face(size float64) (font.Face, error)
}

// FileSource loads a font from a specific file path.
//
// ".ttf" files are parsed with freetype; ".otf" and ".ttc" files go through
// x/image/font/opentype, using the first font of a collection.
type FileSource struct {
	Path string
}

// Name returns the font file path.
func (s FileSource) Name() string { return s.Path }

// Face reads and parses the file at size pixels.
func (s FileSource) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return parseFace(data, strings.ToLower(filepath.Ext(s.Path)), size)
}

func parseFace(data []byte, ext string, size float64) (font.Face, error) {
	switch ext {
	case ".otf", ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create face: %w", err)
		}
		return face, nil
	default:
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
	}
}

// GoMono is the Go Mono TrueType font compiled into the binary.
type GoMono struct{}

// Name reports the embedded font label.
func (GoMono) Name() string { return "Go Mono (embedded)" }

// Face parses the embedded TTF at size pixels.
func (GoMono) Face(size float64) (font.Face, error) {
	return parseFace(gomono.TTF, ".ttf", size)
}

// Basic is the 7x13 bitmap face from x/image. It ignores the requested
// size and cannot fail.
type Basic struct{}

// Name reports the bitmap face label.
func (Basic) Name() string { return "basicfont 7x13" }

// Face returns basicfont.Face7x13 regardless of size.
func (Basic) Face(float64) (font.Face, error) { return basicfont.Face7x13, nil }
