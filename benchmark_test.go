package vision

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchRaster(size int) *Raster {
	rng := rand.New(rand.NewPCG(3, 5))
	return FromFunc(size, size, func(x, y int) RGBA {
		return Gray(rng.Float64())
	})
}

// BenchmarkRaster_Bytes benchmarks packing rasters of various sizes.
func BenchmarkRaster_Bytes(b *testing.B) {
	for _, size := range []int{64, 256} {
		r := benchRaster(size)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size * size * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = r.Bytes()
			}
		})
	}
}

// BenchmarkPipeline_Primitives benchmarks the single-pass transform steps.
func BenchmarkPipeline_Primitives(b *testing.B) {
	r := benchRaster(128)
	benchmarks := []struct {
		name string
		p    Pipeline
	}{
		{"offset", Pipeline{}.Offset(3, -2)},
		{"dim", Pipeline{}.Dim(Gray(0.5))},
		{"invert", Pipeline{}.Invert()},
		{"grayscale", Pipeline{}.Grayscale()},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bm.p.Apply(r)
			}
		})
	}
}

// BenchmarkConvolve benchmarks the kernel-driven filters. Cost scales
// with kernel area: one full-surface pass per cell.
func BenchmarkConvolve(b *testing.B) {
	r := benchRaster(64)
	benchmarks := []struct {
		name string
		p    Pipeline
	}{
		{"average3", Pipeline{}.Filter(NewGenerator(3).AverageNeedle())},
		{"gaussian5", Pipeline{}.GaussianBlur(5, 0.6)},
		{"median3", Pipeline{}.Filter(Median(3))},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bm.p.Apply(r)
			}
		})
	}
}

// BenchmarkCanny benchmarks the full edge-detector pipeline.
func BenchmarkCanny(b *testing.B) {
	for _, size := range []int{32, 64} {
		r := benchRaster(size)
		p := Pipeline{}.Canny(0.1, 0.3)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = p.Apply(r)
			}
		})
	}
}
