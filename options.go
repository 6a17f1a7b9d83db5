package vision

import (
	"math/rand/v2"
)

// GeneratorOption configures a Generator during creation.
// Use functional options to customize Generator behavior.
//
// Example:
//
//	// Nondeterministic noise from the shared global source
//	gen := vision.NewGenerator(64)
//
//	// Reproducible noise (dependency injection of the random source)
//	gen := vision.NewGenerator(64, vision.WithSource(rand.NewPCG(1, 2)))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	source rand.Source
}

// WithSource sets the random source the generator samples from. Without
// it the generator draws from the process-global source and its noise
// pipelines are not reproducible across runs.
func WithSource(src rand.Source) GeneratorOption {
	return func(o *generatorOptions) {
		o.source = src
	}
}
