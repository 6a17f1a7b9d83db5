package vision

import (
	"fmt"
	"math"
)

// gradientKernel is the fixed 3x3 directional-difference kernel:
//
//	 0  -1   0
//	-1   0   1
//	 0   1   0
//
// Negative weights above and left of center, positive below and right.
func gradientKernel(x, y int) RGBA {
	switch {
	case (x == 1 && y == 0) || (x == 0 && y == 1):
		return White.Map(func(v float64) float64 { return -v })
	case (x == 1 && y == 2) || (x == 2 && y == 1):
		return White
	case x == 1 && y == 1, (x == 0 || x == 2) && (y == 0 || y == 2):
		return Black
	default:
		panic(fmt.Sprintf("vision: gradient kernel index (%d, %d) out of domain", x, y))
	}
}

// Gradient approximates the gradient magnitude with a single 3x3
// directional-difference convolution followed by a per-channel absolute
// value. It is deliberately simpler than a Sobel operator: one kernel
// instead of a horizontal and vertical pair.
func (p Pipeline) Gradient() Pipeline {
	return p.Convolve(3, 3, gradientKernel, CombineWith(RGBA.Add)).
		commit(func(img Surface) Surface {
			return img.Similar(func(x, y int) RGBA {
				return img.At(x, y).Map(math.Abs)
			})
		})
}

// NonMaxSuppress thins edges: a pixel survives only if it is strictly
// greater than both of its neighbors along at least one of the four scan
// directions (horizontal, vertical, both diagonals); every other pixel
// becomes black. Neighbor coordinates past the surface edge clamp to the
// border, and pixels compare channel-lexicographically.
func (p Pipeline) NonMaxSuppress() Pipeline {
	return p.commit(func(img Surface) Surface {
		w, h := img.Width(), img.Height()
		return img.Similar(func(x, y int) RGBA {
			center := img.At(x, y)
			peak := func(x0, y0, x1, y1 int) bool {
				return img.At(x0, y0).Less(center) && img.At(x1, y1).Less(center)
			}

			xp, xn := max(x-1, 0), min(x+1, w-1)
			yp, yn := max(y-1, 0), min(y+1, h-1)

			if peak(xp, yp, xn, yn) ||
				peak(xp, y, xn, y) ||
				peak(x, yp, x, yn) ||
				peak(xp, yn, xn, yp) {
				return center
			}
			return Black
		})
	})
}

// Quantize reduces every pixel to one of len(thresholds)+1 discrete gray
// levels. The pixel's intensity, the mean of its R, G and B channels, is
// classified against the thresholds in descending order with a final 0.0
// catch-all: the first threshold the intensity meets or exceeds selects
// the level. Levels grow from 0 at the highest threshold to 1 below the
// lowest, so stronger intensities map to darker output.
//
// Thresholds must be given in ascending order. An empty list panics.
func (p Pipeline) Quantize(thresholds ...float64) Pipeline {
	n := len(thresholds)
	if n == 0 {
		panic("vision: quantize needs at least one threshold")
	}

	type level struct {
		color RGBA
		floor float64
	}
	levels := make([]level, n+1)
	for k := 0; k <= n; k++ {
		floor := 0.0
		if k < n {
			floor = thresholds[n-1-k]
		}
		levels[k] = level{color: Gray(float64(k) / float64(n)), floor: floor}
	}

	return p.commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			c := img.At(x, y)
			intensity := (c.R + c.G + c.B) / 3
			for _, l := range levels {
				if intensity >= l.floor {
					return l.color
				}
			}
			return levels[n].color
		})
	})
}

// Canny runs the five-stage edge detector: grayscale, Gaussian blur,
// gradient, non-max suppression, quantization against the given
// thresholds.
func (p Pipeline) Canny(thresholds ...float64) Pipeline {
	return p.
		Grayscale().
		GaussianBlur(5, 0.6).
		Gradient().
		NonMaxSuppress().
		Quantize(thresholds...)
}
