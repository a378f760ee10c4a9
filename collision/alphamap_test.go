package collision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAlphaMap(t *testing.T) {
	t.Run("One byte per pixel", func(t *testing.T) {
		m := NewAlphaMap([]byte{0, 128, 255, 7}, 2, 2, FormatGray)
		require.Equal(t, 2, m.Width())
		require.Equal(t, 2, m.Height())
		require.EqualValues(t, 0, m.At(0, 0))
		require.EqualValues(t, 128, m.At(1, 0))
		require.EqualValues(t, 255, m.At(0, 1))
		require.EqualValues(t, 7, m.At(1, 1))
	})

	t.Run("Two bytes per pixel", func(t *testing.T) {
		// ARGB4444 read little-endian: alpha is the top nibble.
		f := PixelFormat{BytesPerPixel: 2, AlphaMask: 0xf000, AlphaShift: 12}
		m := NewAlphaMap([]byte{0x34, 0xf2, 0x00, 0x00}, 2, 1, f)
		require.EqualValues(t, 0xf, m.At(0, 0))
		require.EqualValues(t, 0x0, m.At(1, 0))
	})

	t.Run("Three bytes per pixel honors byte order", func(t *testing.T) {
		pixels := []byte{0xaa, 0xbb, 0xcc}
		f := PixelFormat{BytesPerPixel: 3, AlphaMask: 0xff0000, AlphaShift: 16}

		le := NewAlphaMap(pixels, 1, 1, f)
		require.EqualValues(t, 0xcc, le.At(0, 0))

		f.BigEndian = true
		be := NewAlphaMap(pixels, 1, 1, f)
		require.EqualValues(t, 0xaa, be.At(0, 0))
	})

	t.Run("Four bytes per pixel", func(t *testing.T) {
		pixels := []byte{
			10, 20, 30, 0, // transparent
			10, 20, 30, 200,
		}
		m := NewAlphaMap(pixels, 2, 1, FormatRGBA)
		require.EqualValues(t, 0, m.At(0, 0))
		require.EqualValues(t, 200, m.At(1, 0))
	})

	t.Run("Missing alpha channel decodes opaque", func(t *testing.T) {
		f := PixelFormat{BytesPerPixel: 3}
		m := NewAlphaMap([]byte{1, 2, 3, 4, 5, 6}, 2, 1, f)
		require.EqualValues(t, 255, m.At(0, 0))
		require.EqualValues(t, 255, m.At(1, 0))
	})

	t.Run("Row pitch with padding", func(t *testing.T) {
		f := FormatGray
		f.Pitch = 4 // two pixels plus two padding bytes per row
		m := NewAlphaMap([]byte{
			1, 2, 0xee, 0xee,
			3, 4, 0xee, 0xee,
		}, 2, 2, f)
		require.EqualValues(t, 1, m.At(0, 0))
		require.EqualValues(t, 4, m.At(1, 1))
	})

	t.Run("Unsupported width panics", func(t *testing.T) {
		f := PixelFormat{BytesPerPixel: 5}
		require.Panics(t, func() {
			NewAlphaMap(make([]byte, 5), 1, 1, f)
		})
	})
}

func TestAlphaMapFromImage(t *testing.T) {
	t.Run("RGBA fast path", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 3, 2))
		img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
		img.SetRGBA(2, 1, color.RGBA{G: 255, A: 90})
		m := AlphaMapFromImage(img)
		require.Equal(t, 3, m.Width())
		require.Equal(t, 2, m.Height())
		require.EqualValues(t, 255, m.At(0, 0))
		require.EqualValues(t, 90, m.At(2, 1))
		require.EqualValues(t, 0, m.At(1, 0))
	})

	t.Run("Generic image path", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		m := AlphaMapFromImage(img)
		require.EqualValues(t, 255, m.At(1, 1))
		require.EqualValues(t, 0, m.At(0, 0))
	})
}
