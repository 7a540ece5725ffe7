package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

// writeFont stores the embedded Go Mono TTF under dir/name.
func writeFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))
	return path
}

type failingSource struct{ name string }

func (f failingSource) Name() string                    { return f.name }
func (f failingSource) Face(float64) (font.Face, error) { return nil, errors.New("unavailable") }

func TestFileSource_TTF(t *testing.T) {
	path := writeFont(t, t.TempDir(), "mono.ttf")

	face, err := FileSource{Path: path}.Face(12)
	require.NoError(t, err)
	require.NotNil(t, face)

	adv := font.MeasureString(face, "abc")
	assert.Greater(t, adv.Ceil(), 0)
}

func TestFileSource_OpenTypeExtension(t *testing.T) {
	path := writeFont(t, t.TempDir(), "mono.otf")

	face, err := FileSource{Path: path}.Face(12)
	require.NoError(t, err)
	assert.NotNil(t, face)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.ttf")}.Face(12)
	assert.Error(t, err)
}

func TestFileSource_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := FileSource{Path: path}.Face(12)
	assert.Error(t, err)
}

func TestChain_FirstAvailableWins(t *testing.T) {
	dir := t.TempDir()
	second := writeFont(t, dir, "second.ttf")
	third := writeFont(t, dir, "third.ttf")

	chain := NewChain(
		FileSource{Path: filepath.Join(dir, "Menlo.ttf")},
		FileSource{Path: second},
		FileSource{Path: third},
	)

	res := chain.Resolve(12)
	require.NotNil(t, res.Face)
	assert.Equal(t, second, res.Source)
	assert.Len(t, res.Skipped, 1)
}

func TestChain_AllFailFallsBackToBasic(t *testing.T) {
	chain := NewChain(failingSource{"a"}, failingSource{"b"})

	res := chain.Resolve(12)
	assert.Equal(t, basicfont.Face7x13, res.Face)
	assert.Equal(t, Basic{}.Name(), res.Source)
	assert.Len(t, res.Skipped, 2)
}

func TestChain_Empty(t *testing.T) {
	res := NewChain().Resolve(12)
	assert.Equal(t, basicfont.Face7x13, res.Face)
	assert.Empty(t, res.Skipped)
}

func TestNewChain_SourcesExcludeBasic(t *testing.T) {
	chain := NewChain(GoMono{}, failingSource{"a"})

	sources := chain.Sources()
	require.Len(t, sources, 2)
	for _, src := range sources {
		assert.NotEqual(t, Basic{}.Name(), src.Name())
	}
	assert.Empty(t, NewChain().Sources())
}

func TestDefaultChain_AlwaysResolves(t *testing.T) {
	chain := DefaultChain()
	require.Len(t, chain.Sources(), 4)

	res := chain.Resolve(12)
	assert.NotNil(t, res.Face)
	assert.NotEmpty(t, res.Source)
}

func TestSystemSource_SearchesDirs(t *testing.T) {
	dir := t.TempDir()
	want := writeFont(t, dir, filepath.Join("truetype", "dejavu", "DejaVuSansMono.ttf"))

	src := &SystemSource{Label: "DejaVuSansMono", Files: []string{"dejavusansmono.ttf"}, Dirs: []string{dir}}
	face, err := src.Face(12)
	require.NoError(t, err)
	assert.NotNil(t, face)
	assert.Equal(t, want, src.path)
}

func TestSystemSource_NotFound(t *testing.T) {
	src := &SystemSource{Label: "Menlo", Files: []string{"Menlo-missing.ttf"}, Dirs: []string{t.TempDir(), "/nonexistent/fonts"}}

	_, err := src.Face(12)
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed lookup is cached.
	_, err = src.Face(14)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoMono(t *testing.T) {
	face, err := GoMono{}.Face(12)
	require.NoError(t, err)

	// Monospace: every glyph has the same advance.
	a, _ := face.GlyphAdvance('i')
	b, _ := face.GlyphAdvance('W')
	assert.Equal(t, a, b)
}
