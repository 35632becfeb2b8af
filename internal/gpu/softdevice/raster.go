package softdevice

import "github.com/go-gl/mathgl/mgl32"

// Vertices this close to the eye plane are treated as clipped.
const minClipW = 1e-6

type screenVertex struct {
	x, y, z float32
}

// project runs a position through mvp, the perspective divide and the
// viewport transform. Triangles with a vertex behind the eye are dropped
// rather than clipped.
func (t *Target) project(p mgl32.Vec3, mvp mgl32.Mat4) (screenVertex, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= minClipW {
		return screenVertex{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	return screenVertex{
		x: (ndc.X() + 1) * 0.5 * float32(t.width),
		y: (ndc.Y() + 1) * 0.5 * float32(t.height),
		z: (ndc.Z() + 1) * 0.5,
	}, true
}

func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillTriangle samples pixel centres inside the triangle regardless of
// winding and keeps the nearest fragment per pixel.
func (t *Target) fillTriangle(v [3]screenVertex, id uint32) {
	area := edge(v[0], v[1], v[2].x, v[2].y)
	if area == 0 {
		return
	}

	minX, maxX := bounds(v[0].x, v[1].x, v[2].x)
	minY, maxY := bounds(v[0].y, v[1].y, v[2].y)
	x0, x1 := clampSpan(minX, maxX, t.width)
	y0, y1 := clampSpan(minY, maxY, t.height)

	for py := y0; py <= y1; py++ {
		cy := float32(py) + 0.5
		for px := x0; px <= x1; px++ {
			cx := float32(px) + 0.5
			w0 := edge(v[1], v[2], cx, cy) / area
			w1 := edge(v[2], v[0], cx, cy) / area
			w2 := edge(v[0], v[1], cx, cy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v[0].z + w1*v[1].z + w2*v[2].z
			if z < 0 || z > 1 {
				continue
			}
			i := py*t.width + px
			if z < t.depth[i] {
				t.depth[i] = z
				t.color[i] = id
			}
		}
	}
}

func bounds(a, b, c float32) (float32, float32) {
	lo, hi := a, a
	for _, v := range [2]float32{b, c} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clampSpan(lo, hi float32, size int) (int, int) {
	start := int(lo)
	end := int(hi)
	if start < 0 {
		start = 0
	}
	if end > size-1 {
		end = size - 1
	}
	return start, end
}
