package vision

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]; intermediate transform
// arithmetic (convolution sums, additive noise) may leave that range, and
// values are clamped only at the byte boundary.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Gray creates an opaque gray color with all channels set to v.
func Gray(v float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1.0}
}

// Add returns the channel-wise sum of two colors, alpha included.
func (c RGBA) Add(other RGBA) RGBA {
	return RGBA{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Sub returns the channel-wise difference of two colors, alpha included.
// Callers that need the left operand's alpha preserved must restore it
// with WithAlpha afterward.
func (c RGBA) Sub(other RGBA) RGBA {
	return RGBA{
		R: c.R - other.R,
		G: c.G - other.G,
		B: c.B - other.B,
		A: c.A - other.A,
	}
}

// Mul returns the channel-wise product of two colors, alpha included.
func (c RGBA) Mul(other RGBA) RGBA {
	return RGBA{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// Div returns the color with every channel divided by the scalar s.
func (c RGBA) Div(s float64) RGBA {
	return RGBA{R: c.R / s, G: c.G / s, B: c.B / s, A: c.A / s}
}

// Min returns the channel-wise minimum of two colors.
func (c RGBA) Min(other RGBA) RGBA {
	return RGBA{
		R: min(c.R, other.R),
		G: min(c.G, other.G),
		B: min(c.B, other.B),
		A: min(c.A, other.A),
	}
}

// Max returns the channel-wise maximum of two colors.
func (c RGBA) Max(other RGBA) RGBA {
	return RGBA{
		R: max(c.R, other.R),
		G: max(c.G, other.G),
		B: max(c.B, other.B),
		A: max(c.A, other.A),
	}
}

// Map applies f to every channel, alpha included.
func (c RGBA) Map(f func(float64) float64) RGBA {
	return RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

// WithAlpha returns the color with its alpha channel replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Grayscale reduces the color to luminance: the channels are weighted by
// GrayscaleFactor and replaced with their average. Alpha is preserved.
func (c RGBA) Grayscale() RGBA {
	w := c.Mul(GrayscaleFactor)
	v := (w.R + w.G + w.B) / 3
	return RGBA{R: v, G: v, B: v, A: c.A}
}

// Less reports whether c orders before other, comparing channels
// lexicographically as R, G, B, A.
func (c RGBA) Less(other RGBA) bool {
	switch {
	case c.R != other.R:
		return c.R < other.R
	case c.G != other.G:
		return c.G < other.G
	case c.B != other.B:
		return c.B < other.B
	default:
		return c.A < other.A
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Violet      = RGB(1, 0, 1)
	Transparent = RGBA{}
)

// GrayscaleFactor holds the per-channel luminance weights used by Grayscale.
var GrayscaleFactor = RGBA{R: 0.3, G: 0.59, B: 0.11, A: 1.0}

// packChannel converts one channel to a byte: clamp to [0, 1], scale by 256,
// truncate, cap at 255.
func packChannel(v float64) uint8 {
	v = clamp01(v) * 256
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// unpackChannel converts one byte to a channel value in [0, 1).
func unpackChannel(b uint8) float64 {
	return float64(b) / 256
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
