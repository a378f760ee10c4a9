package collision

// Resized returns a new w2 x h2 map resampled from m with bilinear
// interpolation, independently per axis, for both up- and downscaling.
// Both target dimensions must be positive; that is the caller's contract.
//
// The sample coordinates are carried in 16.16 fixed point so repeated
// queries stay bit-for-bit deterministic. The step ratio divides dim-1, not
// dim: the truncated sample coordinate then never exceeds dim-2, which is
// what keeps the +1 neighbor reads below in bounds for every target cell.
func (m *AlphaMap) Resized(w2, h2 int) *AlphaMap {
	out := &AlphaMap{w: w2, h: h2, pix: make([]uint8, w2*h2)}
	xRatio := int64(((m.w - 1) << 16) / w2)
	yRatio := int64(((m.h - 1) << 16) / h2)

	// A 1-wide or 1-tall source has no +1 neighbor, but its fractional
	// offset is always zero, so sampling the same cell twice is exact.
	bStep := 1
	if m.w == 1 {
		bStep = 0
	}
	cStep := m.w
	if m.h == 1 {
		cStep = 0
	}

	offset := 0
	var y int64
	for i := 0; i < h2; i++ {
		yr := int(y >> 16)
		yDiff := y - int64(yr)<<16
		oneMinYDiff := 65536 - yDiff
		yIndex := yr * m.w
		var x int64
		for j := 0; j < w2; j++ {
			xr := int(x >> 16)
			xDiff := x - int64(xr)<<16
			oneMinXDiff := 65536 - xDiff
			index := yIndex + xr

			a := int64(m.pix[index])
			b := int64(m.pix[index+bStep])
			c := int64(m.pix[index+cStep])
			d := int64(m.pix[index+bStep+cStep])

			// A(1-dx)(1-dy) + B dx(1-dy) + C (1-dx)dy + D dx dy
			out.pix[offset] = uint8((a*oneMinXDiff*oneMinYDiff +
				b*xDiff*oneMinYDiff +
				c*yDiff*oneMinXDiff +
				d*xDiff*yDiff) >> 32)
			offset++

			x += xRatio
		}
		y += yRatio
	}
	return out
}
