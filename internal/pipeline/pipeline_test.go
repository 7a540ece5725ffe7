package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/shotframe/internal/blur"
	"github.com/ironsheep/shotframe/internal/fonts"
)

func writeTestPNG(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

// smallProcessConfig keeps blur small so tests run fast.
func smallProcessConfig() ProcessConfig {
	cfg := DefaultProcessConfig()
	cfg.CornerRadius = 8
	cfg.ShadowBlur = 4
	cfg.ShadowSpread = 6
	return cfg
}

func terminalTestConfig() TerminalConfig {
	cfg := DefaultTerminalConfig()
	cfg.Window.Fonts = fonts.NewChain(fonts.GoMono{})
	return cfg
}

func TestDefaultProcessConfig(t *testing.T) {
	cfg := DefaultProcessConfig()
	assert.Equal(t, 60, cfg.CornerRadius)
	assert.Equal(t, color.NRGBA{0, 0, 0, 250}, cfg.ShadowColor)
	assert.Equal(t, 45, cfg.ShadowBlur)
	assert.Equal(t, 40, cfg.ShadowSpread)
	assert.Equal(t, blur.DefaultName, cfg.BlurEngine)
}

func TestProcessImage(t *testing.T) {
	in := writeTestPNG(t, 80, 50, color.NRGBA{255, 255, 255, 255})
	out := filepath.Join(t.TempDir(), "nested", "out.png")

	res, err := ProcessImage(context.Background(), in, out, smallProcessConfig())
	require.NoError(t, err)

	pad := 2 * (4 + 6)
	assert.Equal(t, out, res.OutputPath)
	assert.Equal(t, 80+pad, res.Width)
	assert.Equal(t, 50+pad, res.Height)

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, res.Width, res.Height), img.Bounds())
}

func TestProcessImage_Idempotent(t *testing.T) {
	in := writeTestPNG(t, 40, 30, color.NRGBA{20, 120, 220, 255})
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")

	_, err := ProcessImage(context.Background(), in, a, smallProcessConfig())
	require.NoError(t, err)
	_, err = ProcessImage(context.Background(), in, b, smallProcessConfig())
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(da, db), "outputs differ")
}

func TestProcessImage_MissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := ProcessImage(context.Background(), "/nonexistent/in.png", out, smallProcessConfig())
	assert.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output should be written")
}

func TestProcessImage_UnknownEngine(t *testing.T) {
	in := writeTestPNG(t, 10, 10, color.NRGBA{A: 255})
	cfg := smallProcessConfig()
	cfg.BlurEngine = "box"

	_, err := ProcessImage(context.Background(), in, filepath.Join(t.TempDir(), "o.png"), cfg)
	assert.ErrorIs(t, err, blur.ErrUnknownBlurrer)
}

func TestProcessImage_Canceled(t *testing.T) {
	in := writeTestPNG(t, 10, 10, color.NRGBA{A: 255})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessImage(ctx, in, filepath.Join(t.TempDir(), "o.png"), smallProcessConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := smallProcessConfig()
	cfg.Logger = log.New(&buf, "", 0)

	_, err := Process(image.NewNRGBA(image.Rect(0, 0, 20, 20)), cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rounded corners")
	assert.Contains(t, buf.String(), "drop shadow")
}

func TestCreateTerminalWindow(t *testing.T) {
	in := writeTestPNG(t, 120, 60, color.NRGBA{0, 0, 0, 255})
	out := filepath.Join(t.TempDir(), "term.png")

	res, err := CreateTerminalWindow(context.Background(), in, out, terminalTestConfig())
	require.NoError(t, err)

	// window = content + 2*padding (+ header), canvas adds shadow padding
	assert.Equal(t, 120+40+40, res.Width)
	assert.Equal(t, 60+40+40+40, res.Height)
	assert.Equal(t, fonts.GoMono{}.Name(), res.Font)

	img := readPNG(t, out)
	assert.Equal(t, res.Width, img.Bounds().Dx())
	assert.Equal(t, res.Height, img.Bounds().Dy())
}

func TestCreateTerminalWindow_Idempotent(t *testing.T) {
	in := writeTestPNG(t, 50, 30, color.NRGBA{200, 10, 10, 255})
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")

	_, err := CreateTerminalWindow(context.Background(), in, a, terminalTestConfig())
	require.NoError(t, err)
	_, err = CreateTerminalWindow(context.Background(), in, b, terminalTestConfig())
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(da, db), "outputs differ")
}

func TestCreateTerminalWindow_MissingInput(t *testing.T) {
	_, err := CreateTerminalWindow(context.Background(), "/nonexistent/in.png",
		filepath.Join(t.TempDir(), "o.png"), terminalTestConfig())
	assert.Error(t, err)
}

func TestFrame_LogsSkippedFonts(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTerminalConfig()
	cfg.Window.Fonts = fonts.NewChain(fonts.FileSource{Path: "/nonexistent/Menlo.ttf"}, fonts.GoMono{})
	cfg.Logger = log.New(&buf, "", 0)

	_, layout, err := Frame(image.NewNRGBA(image.Rect(0, 0, 30, 20)), cfg)
	require.NoError(t, err)
	assert.Equal(t, fonts.GoMono{}.Name(), layout.Font)
	assert.Contains(t, buf.String(), "font skipped: /nonexistent/Menlo.ttf")
}
