package vision

// Surface is the capability contract a raster representation implements.
// The pipeline and convolution engine are written against this interface
// only, so an alternative backing store (tiled, mapped, GPU-read-back)
// can flow through every transform without touching the algorithms.
// *Raster is the software implementation.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// At returns the pixel at (x, y).
	// Coordinates outside the surface are a caller error and panic.
	At(x, y int) RGBA

	// Similar builds a new surface of the same dimensions with content
	// from f, evaluated once per coordinate.
	Similar(f func(x, y int) RGBA) Surface

	// Blank builds a new all-black surface of the given dimensions.
	Blank(width, height int) Surface
}
