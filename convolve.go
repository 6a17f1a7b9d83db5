package vision

import (
	"fmt"
)

// CombineWith lifts a per-pixel operation into a pipeline combinator: the
// returned function merges two pipelines into one whose output applies op
// channel-wise to the outputs of both. Used with Convolve to fold kernel
// cells with something other than addition, for example RGBA.Min or
// RGBA.Max for morphological filters.
func CombineWith(op func(RGBA, RGBA) RGBA) func(Pipeline, Pipeline) Pipeline {
	return func(p, other Pipeline) Pipeline {
		return p.commit(func(img Surface) Surface {
			applied := other.Generate(img.Width(), img.Height())
			return img.Similar(func(x, y int) RGBA {
				return op(img.At(x, y), applied.At(x, y))
			})
		})
	}
}

// Convolve declares a kernel-driven combination of shifted, weighted
// copies of the surface. For every kernel cell the input is frozen,
// offset so the cell aligns with the kernel center, and dimmed by the
// cell's weight from kernel(x, y); the per-cell pipelines are then folded
// pairwise with combine, seeded from the first cell, and the fold is
// materialized at the input's dimensions. With combine = Pipeline.Add
// this is a standard weighted-sum convolution; min or max combinators
// yield erosion- and dilation-like filters from the same primitives.
//
// The cost is one full-surface pass per kernel cell, the same O(pixels x
// kernel area) class as a nested kernel loop.
func (p Pipeline) Convolve(kernelWidth, kernelHeight int, kernel func(x, y int) RGBA, combine func(Pipeline, Pipeline) Pipeline) Pipeline {
	if kernelWidth < 1 || kernelHeight < 1 {
		panic(fmt.Sprintf("vision: convolution kernel %dx%d is empty", kernelWidth, kernelHeight))
	}
	return p.commit(func(img Surface) Surface {
		var folded Pipeline
		for x := 0; x < kernelWidth; x++ {
			for y := 0; y < kernelHeight; y++ {
				cell := Pipeline{}.
					commit(func(Surface) Surface { return img }).
					Offset(x-kernelWidth/2, y-kernelHeight/2).
					Dim(kernel(x, y))
				if x == 0 && y == 0 {
					folded = cell
				} else {
					folded = combine(folded, cell)
				}
			}
		}
		return folded.Apply(img.Blank(img.Width(), img.Height()))
	})
}

// ConvolveBy convolves with a precomputed kernel surface.
func (p Pipeline) ConvolveBy(kernel Surface, combine func(Pipeline, Pipeline) Pipeline) Pipeline {
	return p.Convolve(kernel.Width(), kernel.Height(), kernel.At, combine)
}

// Filter is a tagged choice of filtering strategy: either a convolution
// kernel expressed as its own needle pipeline, or a structural size for
// the median approximation. Build values with Convoluted or Median.
type Filter struct {
	kernel Pipeline
	size   int
	median bool
}

// Convoluted wraps a needle pipeline as a convolution filter. The needle
// must be self-sufficient: materialized with Generate(0, 0), it ignores
// the requested size and yields the kernel surface on its own.
func Convoluted(kernel Pipeline) Filter {
	return Filter{kernel: kernel}
}

// Median declares a median-approximation filter over a size x size
// neighborhood.
func Median(size int) Filter {
	if size < 1 {
		panic(fmt.Sprintf("vision: median window %d is empty", size))
	}
	return Filter{size: size, median: true}
}

// Filter declares the application of f to the surface.
//
// A Convoluted filter materializes its needle pipeline into a kernel and
// convolves with Add, the standard weighted sum.
//
// A Median filter approximates the neighborhood median as the average of
// two morphological convolutions against an all-white kernel, one folded
// with Min and one with Max. This is a cheap proxy, not exact order
// statistics: on heavy-tailed noise it behaves closer to a mid-range
// filter.
func (p Pipeline) Filter(f Filter) Pipeline {
	if f.median {
		size := f.size
		return p.commit(func(img Surface) Surface {
			needle := FromPixel(size, size, White)
			lower := Pipeline{}.ConvolveBy(needle, CombineWith(RGBA.Min)).Apply(img)
			upper := Pipeline{}.ConvolveBy(needle, CombineWith(RGBA.Max)).Apply(img)
			return img.Similar(func(x, y int) RGBA {
				return lower.At(x, y).Add(upper.At(x, y)).Div(2)
			})
		})
	}
	return p.ConvolveBy(f.kernel.Generate(0, 0), Pipeline.Add)
}

// GaussianBlur declares a Gaussian smoothing pass. The size and variance
// arguments are accepted for symmetry with the other stages but are not
// honored: the kernel is fixed at 5x5 with variance 0.6.
func (p Pipeline) GaussianBlur(size int, variance float64) Pipeline {
	return p.Filter(NewGenerator(5).GaussianNeedle(0.6))
}
