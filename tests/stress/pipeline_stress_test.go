// Copyright 2026 The gopixel Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build stress

package stress

import (
	"math/rand/v2"
	"runtime"
	"sync"
	"testing"

	"github.com/gopixel/vision"
)

// =============================================================================
// Stress Tests for the Transform Pipeline
// These tests verify stability under extreme conditions
// =============================================================================

// TestStressLargeCanny runs the full edge detector on a 512x512 surface.
func TestStressLargeCanny(t *testing.T) {
	img := gradientScene(512)

	out := vision.Pipeline{}.Canny(0.1, 0.3).Apply(img)

	if out.Width() != 512 || out.Height() != 512 {
		t.Fatalf("output is %dx%d, want 512x512", out.Width(), out.Height())
	}

	// Every pixel must land on a quantization level.
	levels := map[float64]int{}
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			levels[out.At(x, y).R]++
		}
	}
	if len(levels) > 3 {
		t.Errorf("expected at most 3 quantization levels, got %d", len(levels))
	}

	t.Logf("512x512 canny: %d distinct levels", len(levels))
}

// TestStressDeepPipeline chains 1000 steps on a small surface.
func TestStressDeepPipeline(t *testing.T) {
	p := vision.Pipeline{}
	for i := 0; i < 500; i++ {
		p = p.Invert().Invert()
	}

	img := gradientScene(16)
	out := p.Apply(img)

	// An even number of inversions is the identity.
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if out.At(x, y) != img.At(x, y) {
				t.Fatalf("pixel (%d, %d) drifted after 1000 steps", x, y)
			}
		}
	}

	t.Logf("deep pipeline: 1000 steps applied")
}

// TestStressWideKernel convolves with a 15x15 kernel.
func TestStressWideKernel(t *testing.T) {
	img := gradientScene(64)

	out := vision.Pipeline{}.
		Filter(vision.NewGenerator(15).GaussianNeedle(2.5)).
		Apply(img)

	if out.Width() != 64 || out.Height() != 64 {
		t.Fatalf("output is %dx%d, want 64x64", out.Width(), out.Height())
	}
}

// TestStressConcurrentApply applies one shared pipeline from many
// goroutines (pipelines are immutable values and must not share state).
func TestStressConcurrentApply(t *testing.T) {
	p := vision.Pipeline{}.Grayscale().Filter(vision.Median(3)).Invert()
	want := p.Apply(gradientScene(64))

	const goroutines = 8
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := p.Apply(gradientScene(64))
			for y := 0; y < got.Height(); y++ {
				for x := 0; x < got.Width(); x++ {
					if got.At(x, y) != want.At(x, y) {
						t.Errorf("concurrent apply diverged at (%d, %d)", x, y)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

// TestStressRepeatedNoise draws from one seeded generator across many
// pipeline applications.
func TestStressRepeatedNoise(t *testing.T) {
	gen := vision.NewGenerator(64, vision.WithSource(rand.NewPCG(11, 11)))
	img := gradientScene(64)

	for i := 0; i < 50; i++ {
		out := vision.Pipeline{}.
			Ennoise(gen.GaussianNoise(0.5, 0.05, 0.2)).
			Apply(img)
		if out.Width() != 64 || out.Height() != 64 {
			t.Fatalf("iteration %d: output is %dx%d", i, out.Width(), out.Height())
		}
	}
}

// =============================================================================
// Memory Usage Tests
// =============================================================================

// TestMemoryUsageCanny tests memory usage of a full detector run.
func TestMemoryUsageCanny(t *testing.T) {
	// Force GC to get clean baseline
	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	out := vision.Pipeline{}.Canny(0.2).Apply(gradientScene(256))
	_ = out.At(0, 0)

	runtime.GC()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)

	allocatedMB := (m2.TotalAlloc - m1.TotalAlloc) / (1024 * 1024)
	t.Logf("256x256 canny: ~%d MB allocated", allocatedMB)

	// Each convolution cell materializes a full surface, so the bound is
	// generous; it catches runaway growth, not steady-state cost.
	if allocatedMB > 4096 {
		t.Errorf("unexpected high memory usage: %d MB", allocatedMB)
	}
}

// TestMemoryUsageBytes tests memory usage of the byte conversions.
func TestMemoryUsageBytes(t *testing.T) {
	img := gradientScene(1024)

	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	for i := 0; i < 10; i++ {
		data := img.Bytes()
		_ = vision.FromBytes(1024, 1024, data)
	}

	runtime.GC()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)

	allocatedMB := (m2.TotalAlloc - m1.TotalAlloc) / (1024 * 1024)
	t.Logf("1024x1024 byte round trips: ~%d MB allocated", allocatedMB)

	// 10 round trips of 4 MB byte buffers plus 32 MB pixel grids.
	if allocatedMB > 512 {
		t.Errorf("unexpected high memory usage: %d MB", allocatedMB)
	}
}

// =============================================================================
// Helper Functions
// =============================================================================

// gradientScene builds a smooth two-axis gradient for test input.
func gradientScene(size int) *vision.Raster {
	return vision.FromFunc(size, size, func(x, y int) vision.RGBA {
		return vision.RGBA{
			R: float64(x) / float64(size),
			G: float64(y) / float64(size),
			B: float64(x+y) / float64(2 * size),
			A: 1,
		}
	})
}
