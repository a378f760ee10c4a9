package collision

import (
	"fmt"
	"image"
)

// PixelFormat describes the layout of a raw decoded pixel buffer.
type PixelFormat struct {
	// BytesPerPixel must be 1, 2, 3 or 4; anything else is an unsupported
	// format and NewAlphaMap panics rather than decode garbage.
	BytesPerPixel int

	// Pitch is the row stride in bytes. Zero means width*BytesPerPixel.
	Pitch int

	// BigEndian selects the byte order used to assemble 3-byte pixels.
	// 1-, 2- and 4-byte pixels are always read little-endian.
	BigEndian bool

	// AlphaMask and AlphaShift locate the alpha channel inside the packed
	// pixel value. A zero mask means the format carries no alpha channel
	// and every pixel decodes as fully opaque.
	AlphaMask  uint32
	AlphaShift uint
}

// FormatRGBA matches image.RGBA's byte layout (R, G, B, A per pixel).
var FormatRGBA = PixelFormat{BytesPerPixel: 4, AlphaMask: 0xff000000, AlphaShift: 24}

// FormatGray treats each single byte as the opacity value directly.
var FormatGray = PixelFormat{BytesPerPixel: 1, AlphaMask: 0xff}

// AlphaMap is a sprite silhouette: one opacity value (0-255) per pixel,
// row-major. A map is immutable once built; the one attached to a loaded
// asset is shared by every collision query against that asset and lives as
// long as the asset does.
type AlphaMap struct {
	w, h int
	pix  []uint8
}

// NewAlphaMap decodes the alpha channel of every pixel in the buffer into a
// fresh w x h map. It runs once per loaded asset.
func NewAlphaMap(pixels []byte, w, h int, f PixelFormat) *AlphaMap {
	pitch := f.Pitch
	if pitch == 0 {
		pitch = w * f.BytesPerPixel
	}
	m := &AlphaMap{w: w, h: h, pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		row := pixels[y*pitch:]
		for x := 0; x < w; x++ {
			m.pix[y*w+x] = f.alpha(row[x*f.BytesPerPixel:])
		}
	}
	return m
}

func (f PixelFormat) alpha(p []byte) uint8 {
	var packed uint32
	switch f.BytesPerPixel {
	case 1:
		packed = uint32(p[0])
	case 2:
		packed = uint32(p[0]) | uint32(p[1])<<8
	case 3:
		if f.BigEndian {
			packed = uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		} else {
			packed = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
		}
	case 4:
		packed = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
	default:
		panic(fmt.Sprintf("collision: unsupported pixel format: %d bytes per pixel", f.BytesPerPixel))
	}
	if f.AlphaMask == 0 {
		return 255
	}
	return uint8((packed & f.AlphaMask) >> f.AlphaShift)
}

// AlphaMapFromImage extracts the alpha channel of a decoded image. The fast
// path reads image.RGBA buffers through the raw extractor; other image types
// go through the generic color API.
func AlphaMapFromImage(img image.Image) *AlphaMap {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		f := FormatRGBA
		f.Pitch = rgba.Stride
		return NewAlphaMap(rgba.Pix, b.Dx(), b.Dy(), f)
	}
	m := &AlphaMap{w: b.Dx(), h: b.Dy(), pix: make([]uint8, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.pix[y*m.w+x] = uint8(a >> 8)
		}
	}
	return m
}

// Width returns the map width in pixels.
func (m *AlphaMap) Width() int { return m.w }

// Height returns the map height in pixels.
func (m *AlphaMap) Height() int { return m.h }

// At returns the opacity at (x, y). The coordinates must be in range.
func (m *AlphaMap) At(x, y int) uint8 {
	return m.pix[y*m.w+x]
}

// opaqueAt reports whether the cell at (x, y) is nonzero, treating anything
// outside the map as transparent.
func (m *AlphaMap) opaqueAt(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h && m.pix[y*m.w+x] != 0
}
