// Package vision provides a composable image-transform engine for Go.
//
// # Overview
//
// vision builds image transforms as deferred pipelines: a Pipeline is an
// ordered list of raster-to-raster steps that is declared up front and
// only executed when applied to a concrete surface. Blur, noise
// injection, morphological filtering and a multi-stage edge detector are
// all assembled from the same small set of primitives (offset, dim,
// channel-wise combination, convolution).
//
// # Quick Start
//
//	import "github.com/gopixel/vision"
//
//	// Load pixels into a raster (4 bytes per pixel, row-major RGBA)
//	img := vision.FromBytes(width, height, data)
//
//	// Declare a pipeline; nothing runs yet
//	edges := vision.Pipeline{}.Canny(0.1, 0.3)
//
//	// Execute it
//	out := edges.Apply(img)
//
//	// Back to bytes for encoding
//	_ = out.(*vision.Raster).Bytes()
//
// # Architecture
//
// The library is organized into:
//   - Pixel algebra: RGBA values with channel-wise arithmetic
//   - Surfaces: the Raster grid and the Surface capability contract
//   - Pipeline: deferred, immutable, composable transform sequences
//   - Convolution: kernel-driven filters built from offset/dim/combine
//   - Generators: parameterized noise fields and convolution kernels
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. Channel
// values live in [0, 1] at the byte boundary; intermediate arithmetic may
// leave that range and is clamped only when packing bytes.
//
// # Execution Model
//
// Pipelines are values: appending a step returns a new Pipeline and
// never mutates the receiver, so partial pipelines can be shared and
// extended freely. Application is synchronous and single-threaded;
// independent Apply calls over independent values are safe to run
// concurrently.
package vision

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
