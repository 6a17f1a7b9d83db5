package vision

import (
	"time"
)

// Step is a single raster transform: it consumes the surface produced so
// far and returns a new one. Steps never mutate their input.
type Step func(Surface) Surface

// Pipeline is an ordered sequence of transform steps with deferred
// execution: builder calls only declare work, nothing runs until Apply or
// Generate. Appending a step returns a new Pipeline value and leaves the
// receiver untouched, so pipelines can be shared, extended in several
// directions, and passed as operands to combinators like Add and Sub.
// The zero value is the identity pipeline.
type Pipeline struct {
	steps []Step
}

// commit appends a step, copying the step list so the receiver keeps its
// own view.
func (p Pipeline) commit(s Step) Pipeline {
	steps := make([]Step, len(p.steps)+1)
	copy(steps, p.steps)
	steps[len(p.steps)] = s
	return Pipeline{steps: steps}
}

// Apply runs the declared steps in order against img and returns the
// final surface. The input is never mutated; every step emits a fresh
// surface. An empty pipeline returns img unchanged.
func (p Pipeline) Apply(img Surface) Surface {
	start := time.Now()
	out := img
	for _, step := range p.steps {
		out = step(out)
	}
	Logger().Debug("pipeline applied",
		"steps", len(p.steps),
		"width", out.Width(),
		"height", out.Height(),
		"duration", time.Since(start))
	return out
}

// Generate applies the pipeline to a fresh all-black raster of the given
// dimensions. Use it when the output should not depend on an input image,
// such as materializing a kernel or a standalone noise field. Alternative
// surface implementations go through Apply with their own blank canvas.
func (p Pipeline) Generate(width, height int) Surface {
	return p.Apply(NewRaster(width, height))
}

// Offset shifts the surface content by (dx, dy). Look-ups past the edge
// replicate the nearest edge pixel.
func (p Pipeline) Offset(dx, dy int) Pipeline {
	return p.commit(func(img Surface) Surface {
		w, h := img.Width(), img.Height()
		return img.Similar(func(x, y int) RGBA {
			sx := min(max(x+dx, 0), w-1)
			sy := min(max(y+dy, 0), h-1)
			return img.At(sx, sy)
		})
	})
}

// Dim multiplies every pixel channel-wise by factor.
func (p Pipeline) Dim(factor RGBA) Pipeline {
	return p.commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			return img.At(x, y).Mul(factor)
		})
	})
}

// Add applies other to the surface the receiver has produced so far and
// adds the two channel-wise.
func (p Pipeline) Add(other Pipeline) Pipeline {
	return p.commit(func(img Surface) Surface {
		applied := other.Apply(img)
		return img.Similar(func(x, y int) RGBA {
			return img.At(x, y).Add(applied.At(x, y))
		})
	})
}

// Sub applies other to the surface the receiver has produced so far and
// subtracts it channel-wise. Unlike Add, the result keeps the left
// operand's alpha.
func (p Pipeline) Sub(other Pipeline) Pipeline {
	return p.commit(func(img Surface) Surface {
		applied := other.Apply(img)
		return img.Similar(func(x, y int) RGBA {
			left := img.At(x, y)
			return left.Sub(applied.At(x, y)).WithAlpha(left.A)
		})
	})
}

// Ennoise perturbs the surface with the output of a noise pipeline. The
// noise surface is recentered around zero (its values are expected in
// [0, 1] around neutral gray 0.5) and scaled to full signed range before
// being added.
func (p Pipeline) Ennoise(noise Pipeline) Pipeline {
	return p.commit(func(img Surface) Surface {
		applied := noise.Apply(img)
		return img.Similar(func(x, y int) RGBA {
			n := applied.At(x, y).Sub(Gray(0.5)).Mul(Gray(2))
			return img.At(x, y).Add(n)
		})
	})
}

// Invert replaces every channel value v with 1 - v, alpha included.
func (p Pipeline) Invert() Pipeline {
	return p.commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			return White.Sub(img.At(x, y))
		})
	})
}

// Grayscale reduces the surface to luminance. The luminance weighting is
// applied twice: once as a Dim by GrayscaleFactor and once more inside
// the per-pixel reduction.
func (p Pipeline) Grayscale() Pipeline {
	return p.Dim(GrayscaleFactor).commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			return img.At(x, y).Grayscale()
		})
	})
}

// Tap declares a step that passes the intermediate surface to f and
// forwards it unchanged. Useful for snapshotting between stages.
func (p Pipeline) Tap(f func(Surface)) Pipeline {
	return p.commit(func(img Surface) Surface {
		f(img)
		return img
	})
}
