package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNG(t *testing.T) {
	img := createPatternImage(32, 16)
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")

	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("dimensions: got %dx%d, want 32x16", b.Dx(), b.Dy())
	}
}

func TestSavePNG_IgnoresExtension(t *testing.T) {
	img := createInMemoryImage(8, 8, color.RGBA{1, 2, 3, 255})
	path := filepath.Join(t.TempDir(), "out.jpg")

	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output should be PNG-encoded")
	}
}

func TestSavePNG_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	img := createInMemoryImage(4, 4, color.White)
	if err := SavePNG(img, filepath.Join(blocker, "out.png")); err == nil {
		t.Error("SavePNG should fail when the parent is a regular file")
	}
}

func TestEncodePNGBase64(t *testing.T) {
	img := createInMemoryImage(20, 10, color.RGBA{255, 0, 0, 255})

	result, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}

	if result.Width != 20 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("payload is not a PNG: %v", err)
	}
}
