// Package blur provides interchangeable Gaussian blur backends.
//
// Every backend takes the Gaussian standard deviation (sigma) in pixels and
// returns a non-premultiplied image with the same bounds size as its input.
// The imaging backend is the default used by the drop-shadow renderer; gift
// and bild are available for comparison or when their edge handling suits a
// particular screenshot better.
package blur

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
)

// ErrUnknownBlurrer is returned by ByName for an unregistered backend name.
var ErrUnknownBlurrer = errors.New("unknown blur engine")

// Blurrer applies a Gaussian blur with the given sigma.
type Blurrer interface {
	Blur(img image.Image, sigma float64) *image.NRGBA
}

// DefaultName is the backend used when none is configured.
const DefaultName = "imaging"

var registry = map[string]Blurrer{
	"imaging": &Imaging{},
	"gift":    &Gift{},
	"bild":    &Bild{},
}

// ByName returns the registered backend for name. An empty name selects
// DefaultName. Lookup is case-insensitive.
func ByName(name string) (Blurrer, error) {
	if name == "" {
		name = DefaultName
	}
	b, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBlurrer, name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
