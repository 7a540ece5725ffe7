// Package imaging provides the raster building blocks used to style screenshots.
//
// It covers loading and caching source images, writing PNG output, sampling
// colors, and the two compositing primitives the pipelines are built from:
// rounded-corner masking and drop-shadow rendering. All operations work with
// standard Go image.Image values and produce *image.NRGBA results whose bounds
// start at (0,0).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Compositing Order
//
// DropShadow builds a transparent canvas padded by Spread+Blur, composites the
// blurred shadow layer, then composites the source image at the padding offset
// using its own alpha. RoundCorners replaces the source alpha with the mask
// rather than multiplying into it.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions allocate
// their own buffers and never mutate their inputs.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Empty images (ErrEmptyImage)
//   - Negative corner radii (ErrInvalidRadius)
//   - Negative shadow blur or spread (ErrInvalidShadow)
//   - Masks whose size does not match the target (ErrMaskBounds)
//   - File I/O and encoding errors, wrapped with %w
package imaging
