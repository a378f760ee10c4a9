// Package collision decides whether two independently scaled and rotated
// sprites visually overlap, using per-pixel opacity maps built once at asset
// load time instead of bounding-box approximations.
//
// Everything here is a deterministic pure function over in-memory buffers:
// no shared state, no goroutines, no error channel. Queries against the same
// immutable maps are safe to run concurrently.
package collision

// The narrow-phase steps are reached through these variables so tests can
// count invocations; queries rejected by the bounding-box test must never
// get this far.
var (
	resizeAlpha = (*AlphaMap).Resized
	rotateAlpha = (*AlphaMap).Rotated
)

// Check reports whether the opaque pixels of two sprites overlap. Each
// sprite is given as its native-resolution silhouette, the destination rect
// it is drawn into this frame, and its rotation angle in degrees.
//
// The rotated bounding boxes are intersected first; an empty intersection
// answers false without touching the resampler or rotator, which keeps the
// common non-overlapping case cheap inside a per-frame loop. Otherwise each
// map is resampled to its destination size, rotated to its angle, and the
// intersection region is scanned for the first co-occurring opaque pixel.
// The scratch maps are locals and die with the call.
func Check(a *AlphaMap, rectA Rect, angleA float64, b *AlphaMap, rectB Rect, angleB float64) bool {
	boxA := BoundingBox(rectA, angleA)
	boxB := BoundingBox(rectB, angleB)
	overlap := Intersection(boxA, boxB)
	if overlap.W == 0 {
		return false
	}

	mapA := rotateAlpha(resizeAlpha(a, rectA.W, rectA.H), angleA)
	mapB := rotateAlpha(resizeAlpha(b, rectB.W, rectB.H), angleB)

	// The rotator sizes its output by the box of the mirrored angle, which
	// for odd dimensions can be a pixel smaller than the scan box here;
	// opaqueAt treats those cells as transparent.
	for y := overlap.Y; y < overlap.Y+overlap.H; y++ {
		for x := overlap.X; x < overlap.X+overlap.W; x++ {
			if mapA.opaqueAt(x-boxA.X, y-boxA.Y) && mapB.opaqueAt(x-boxB.X, y-boxB.Y) {
				return true
			}
		}
	}
	return false
}
