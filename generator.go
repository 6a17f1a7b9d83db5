package vision

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces noise pipelines and kernel filters, keyed by a
// single size. It is the only seam through which randomness enters the
// system; inject a seeded source with WithSource for reproducible noise.
type Generator struct {
	size int
	rng  *rand.Rand
}

// NewGenerator creates a generator. The size parameterizes the kernels
// built by AverageNeedle and GaussianNeedle; noise pipelines take their
// dimensions from the surface they are applied to and ignore it.
func NewGenerator(size int, opts ...GeneratorOption) *Generator {
	var o generatorOptions
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{size: size}
	if o.source != nil {
		g.rng = rand.New(o.source)
	}
	return g
}

// Size returns the kernel size the generator was created with.
func (g *Generator) Size() int {
	return g.size
}

// uniform draws a sample from [0, 1).
func (g *Generator) uniform() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}

// coin draws a fair boolean.
func (g *Generator) coin() bool {
	if g.rng != nil {
		return g.rng.IntN(2) == 0
	}
	return rand.IntN(2) == 0
}

// GaussianNoise declares a pipeline producing a full-surface noise field.
// Each pixel independently becomes gray 0.5 +- density(u)*intensity,
// where u is uniform in [0, 1), density is the Gaussian probability
// density with the given mean and variance, and the sign is a fair coin.
// The input surface contributes only its dimensions.
func (g *Generator) GaussianNoise(mean, variance, intensity float64) Pipeline {
	pdf := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	return Pipeline{}.commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			v := pdf.Prob(g.uniform()) * intensity
			if !g.coin() {
				v = -v
			}
			return Gray(0.5 + v)
		})
	})
}

// SaltAndPepperNoise declares a pipeline producing impulse noise: per
// pixel a uniform sample is scored against a Gaussian density centered
// at 0.5 with the given variance, and when the density exceeds 0.6 the
// pixel is pushed to pure white or pure black by a fair coin; otherwise
// it stays neutral gray. Smaller variances perturb more pixels.
func (g *Generator) SaltAndPepperNoise(variance float64) Pipeline {
	pdf := distuv.Normal{Mu: 0.5, Sigma: math.Sqrt(variance)}
	return Pipeline{}.commit(func(img Surface) Surface {
		return img.Similar(func(x, y int) RGBA {
			if pdf.Prob(g.uniform()) > 0.6 {
				if g.coin() {
					return Gray(1)
				}
				return Gray(0)
			}
			return Gray(0.5)
		})
	})
}

// AverageNeedle builds a uniform box kernel: every cell weighs
// 1/(size*size), so convolving with it averages the neighborhood. The
// generator size must be odd for a well-defined center.
func (g *Generator) AverageNeedle() Filter {
	g.oddSize()
	size := g.size
	weight := Gray(1 / float64(size*size))
	return Convoluted(Pipeline{}.commit(func(Surface) Surface {
		return FromPixel(size, size, weight)
	}))
}

// GaussianNeedle builds a size x size kernel whose cell weights follow a
// radially symmetric Gaussian density of the Euclidean distance from the
// kernel center. The generator size must be odd for a well-defined
// center.
func (g *Generator) GaussianNeedle(variance float64) Filter {
	g.oddSize()
	size := g.size
	pdf := distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance)}
	return Convoluted(Pipeline{}.commit(func(Surface) Surface {
		return FromFunc(size, size, func(x, y int) RGBA {
			center := size / 2
			dx := float64(x - center)
			dy := float64(y - center)
			return Gray(pdf.Prob(math.Hypot(dx, dy)))
		})
	}))
}

func (g *Generator) oddSize() {
	if g.size < 1 || g.size%2 == 0 {
		panic(fmt.Sprintf("vision: needle size %d must be positive and odd", g.size))
	}
}
