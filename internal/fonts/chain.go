package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
)

// ErrNotFound is returned by SystemSource when no matching file exists.
var ErrNotFound = errors.New("font file not found")

// SystemSource looks a font up by file name in the platform font directories.
//
// Each file name is first tried as a path relative to the working directory,
// then searched recursively under Dirs. Matching is case-insensitive on the
// base name. The lookup result is cached for the lifetime of the source.
type SystemSource struct {
	Label string
	Files []string
	Dirs  []string

	once sync.Once
	path string
	err  error
}

// NewSystemSource creates a SystemSource searching the default font directories.
func NewSystemSource(label string, files ...string) *SystemSource {
	return &SystemSource{Label: label, Files: files, Dirs: DefaultDirs()}
}

// Name returns the label, not the resolved path.
func (s *SystemSource) Name() string { return s.Label }

// Face loads the located file at size pixels.
func (s *SystemSource) Face(size float64) (font.Face, error) {
	s.once.Do(func() { s.path, s.err = s.locate() })
	if s.err != nil {
		return nil, s.err
	}
	return FileSource{Path: s.path}.Face(size)
}

func (s *SystemSource) locate() (string, error) {
	want := make(map[string]bool, len(s.Files))
	for _, f := range s.Files {
		if fi, err := os.Stat(f); err == nil && !fi.IsDir() {
			return f, nil
		}
		want[strings.ToLower(filepath.Base(f))] = true
	}

	for _, dir := range s.Dirs {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && want[strings.ToLower(d.Name())] {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, strings.Join(s.Files, ", "))
}

// DefaultDirs returns the font directories for the running platform.
func DefaultDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

// Resolution is the outcome of Chain.Resolve.
type Resolution struct {
	// Face is the loaded face. Never nil.
	Face font.Face

	// Source is the Name of the source that produced Face.
	Source string

	// Skipped holds one error per candidate that failed before Source.
	Skipped []error
}

// Chain is an ordered font fallback list.
type Chain struct {
	sources []Source
}

// NewChain creates a chain trying sources in order. Resolve falls back to
// Basic when every source fails; Basic is not listed in Sources.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// DefaultChain tries Menlo (macOS), DejaVu Sans Mono (Linux) and Consolas
// (Windows), then the embedded Go Mono font.
func DefaultChain() *Chain {
	return NewChain(
		NewSystemSource("Menlo", "Menlo.ttf", "Menlo.ttc"),
		NewSystemSource("DejaVuSansMono", "DejaVuSansMono.ttf"),
		NewSystemSource("Consolas", "consola.ttf", "Consolas.ttf"),
		GoMono{},
	)
}

// Sources returns the configured candidates, excluding the implicit Basic fallback.
func (c *Chain) Sources() []Source {
	return append([]Source(nil), c.sources...)
}

// Resolve returns the first face that loads at size pixels.
func (c *Chain) Resolve(size float64) Resolution {
	var skipped []error
	for _, src := range c.sources {
		face, err := src.Face(size)
		if err == nil && face != nil {
			return Resolution{Face: face, Source: src.Name(), Skipped: skipped}
		}
		if err == nil {
			err = errors.New("no face returned")
		}
		skipped = append(skipped, fmt.Errorf("%s: %w", src.Name(), err))
	}

	b := Basic{}
	face, _ := b.Face(size)
	return Resolution{Face: face, Source: b.Name(), Skipped: skipped}
}
