package vision

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/gopixel/vision/internal/parallel"
)

// Raster is a dense rectangular grid of RGBA pixels. Dimensions are fixed
// at construction; indexing outside [0, width) x [0, height) panics.
type Raster struct {
	width  int
	height int
	pix    []RGBA
}

// NewRaster creates a raster of the given dimensions filled with Black.
func NewRaster(width, height int) *Raster {
	return FromPixel(width, height, Black)
}

// FromPixel creates a raster of the given dimensions filled with c.
func FromPixel(width, height int, c RGBA) *Raster {
	pix := make([]RGBA, width*height)
	for i := range pix {
		pix[i] = c
	}
	return &Raster{width: width, height: height, pix: pix}
}

// FromFunc creates a raster by evaluating f once per coordinate, in
// row-major order on a single goroutine. Stateful f, such as the noise
// samplers, can rely on that order.
func FromFunc(width, height int, f func(x, y int) RGBA) *Raster {
	pix := make([]RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = f(x, y)
		}
	}
	return &Raster{width: width, height: height, pix: pix}
}

// FromBytes creates a raster from a flat buffer of 4 bytes per pixel in
// row-major RGBA order. Each byte b becomes the channel value b/256.
// The buffer length must be exactly width*height*4.
func FromBytes(width, height int, data []byte) *Raster {
	if len(data) != width*height*4 {
		panic(fmt.Sprintf("vision: byte buffer length %d, want %d for %dx%d",
			len(data), width*height*4, width, height))
	}
	pix := make([]RGBA, width*height)
	parallel.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			pix[i] = RGBA{
				R: unpackChannel(data[i*4+0]),
				G: unpackChannel(data[i*4+1]),
				B: unpackChannel(data[i*4+2]),
				A: unpackChannel(data[i*4+3]),
			}
		}
	})
	return &Raster{width: width, height: height, pix: pix}
}

// FromImage creates a raster from an image.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return FromBytes(bounds.Dx(), bounds.Dy(), rgba.Pix)
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) RGBA {
	r.check(x, y)
	return r.pix[y*r.width+x]
}

// Set replaces the pixel at (x, y).
func (r *Raster) Set(x, y int, c RGBA) {
	r.check(x, y)
	r.pix[y*r.width+x] = c
}

func (r *Raster) check(x, y int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		panic(fmt.Sprintf("vision: raster index (%d, %d) out of bounds %dx%d",
			x, y, r.width, r.height))
	}
}

// Similar builds a new raster of the same dimensions with content from f.
func (r *Raster) Similar(f func(x, y int) RGBA) Surface {
	return FromFunc(r.width, r.height, f)
}

// Blank builds a new all-black raster of the given dimensions.
func (r *Raster) Blank(width, height int) Surface {
	return NewRaster(width, height)
}

// Bytes converts the raster to a flat buffer of 4 bytes per pixel in
// row-major RGBA order. Each channel is clamped to [0, 1], scaled by 256
// and truncated, capping at 255.
func (r *Raster) Bytes() []byte {
	data := make([]byte, len(r.pix)*4)
	parallel.Rows(r.height, func(y0, y1 int) {
		for i := y0 * r.width; i < y1*r.width; i++ {
			c := r.pix[i]
			data[i*4+0] = packChannel(c.R)
			data[i*4+1] = packChannel(c.G)
			data[i*4+2] = packChannel(c.B)
			data[i*4+3] = packChannel(c.A)
		}
	})
	return data
}

// ToImage converts the raster to an image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.Bytes())
	return img
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToImage())
}
