// Package imageio bridges vision rasters to image files on disk. It
// decodes and encodes the standard interchange formats and converts
// between image.Image pixels and the raster's flat byte layout.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode-only format registration

	"github.com/gopixel/vision"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DefaultJPEGQuality is the quality Save uses for JPEG output.
const DefaultJPEGQuality = 90

// Load reads an image file into a raster, auto-detecting the format.
// Supported formats: PNG, JPEG, BMP, TIFF, WebP (decode only).
func Load(path string) (*vision.Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r, err := Decode(f)
	if err != nil {
		return nil, err
	}
	vision.Logger().Info("image decoded",
		"path", path, "width", r.Width(), "height", r.Height())
	return r, nil
}

// DecodeBytes decodes an image from a byte slice, auto-detecting the format.
func DecodeBytes(data []byte) (*vision.Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*vision.Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return fromStd(img), nil
}

// Save writes a surface to a file, choosing the format from the path
// extension. Supported extensions: .png, .jpg, .jpeg, .bmp, .tif, .tiff.
func Save(path string, s vision.Surface) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, s, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}

	vision.Logger().Info("image written",
		"path", path, "format", format, "width", s.Width(), "height", s.Height())
	return nil
}

// Encode writes a surface to w in the named format: "png", "jpeg",
// "bmp" or "tiff". JPEG uses DefaultJPEGQuality; use EncodeJPEG for
// explicit quality control.
func Encode(w io.Writer, s vision.Surface, format string) error {
	img := stdImage(s)
	switch format {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case "jpeg", "jpg":
		return EncodeJPEG(w, s, DefaultJPEGQuality)
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode BMP: %w", err)
		}
	case "tiff", "tif":
		if err := tiff.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// EncodeJPEG writes a surface to w as JPEG with the given quality (1-100).
func EncodeJPEG(w io.Writer, s vision.Surface, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, stdImage(s), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode JPEG: %w", err)
	}
	return nil
}

// formatForPath maps a file extension to an encoder format name.
func formatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromStd converts a decoded image to a raster through straight-alpha
// bytes, so channel values survive translucency untouched.
func fromStd(img image.Image) *vision.Raster {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return vision.FromBytes(bounds.Dx(), bounds.Dy(), nrgba.Pix)
}

// stdImage converts any surface to a straight-alpha image for encoding.
func stdImage(s vision.Surface) *image.NRGBA {
	r, ok := s.(*vision.Raster)
	if !ok {
		r = vision.FromFunc(s.Width(), s.Height(), s.At)
	}
	img := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	copy(img.Pix, r.Bytes())
	return img
}
