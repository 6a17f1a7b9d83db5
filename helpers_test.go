package vision

import (
	"math"
	"testing"
)

// Helpers shared by the package tests.

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func rgbaNear(a, b RGBA, tol float64) bool {
	return near(a.R, b.R, tol) && near(a.G, b.G, tol) &&
		near(a.B, b.B, tol) && near(a.A, b.A, tol)
}

// surfacesMatch fails the test on the first pixel where got and want
// differ by more than tol on any channel.
func surfacesMatch(t *testing.T, got, want Surface, tol float64) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions = %dx%d, want %dx%d",
			got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < got.Height(); y++ {
		for x := 0; x < got.Width(); x++ {
			if !rgbaNear(got.At(x, y), want.At(x, y), tol) {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
				return
			}
		}
	}
}

// mustPanic fails the test unless f panics.
func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	f()
}
