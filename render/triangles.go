package render

import (
	"sort"

	"github.com/mayjs/mayjs3d"
)

type polygonVertex struct {
	world  mayjs3d.Vector
	normal mayjs3d.Vector
	color  mayjs3d.Color
	clip   mayjs3d.Vector // clip-space position; W holds view depth

	screenX, screenY float32
}

func (v polygonVertex) lerp(other polygonVertex, t float64) polygonVertex {
	return polygonVertex{
		world:  v.world.Lerp(other.world, t),
		normal: v.normal.Lerp(other.normal, t).Unit(),
		color:  v.color.Mix(other.color, float32(t)),
		clip:   v.clip.Lerp(other.clip, t),
	}
}

// polygon is a triangle that may have gained a fourth vertex from near-plane clipping.
type polygon struct {
	verts [4]polygonVertex
	count int
}

// clipNear clips the polygon against the plane where view depth equals near, keeping the part in front of the camera.
// A triangle with one vertex behind the plane becomes a quad; with two behind, a smaller triangle; with three, nothing.
func (p polygon) clipNear(near float64) polygon {

	out := polygon{}

	for i := 0; i < p.count; i++ {

		cur := p.verts[i]
		next := p.verts[(i+1)%p.count]

		curIn := cur.clip.W >= near
		nextIn := next.clip.W >= near

		if curIn {
			out.verts[out.count] = cur
			out.count++
		}

		if curIn != nextIn {
			t := (near - cur.clip.W) / (next.clip.W - cur.clip.W)
			out.verts[out.count] = cur.lerp(next, t)
			out.count++
		}

	}

	return out

}

// sortingTriangle is a screen-ready triangle with the average view depth used for painter sorting.
type sortingTriangle struct {
	verts [3]polygonVertex
	depth float64
}

// sortBackToFront orders triangles from the farthest to the nearest, so nearer triangles are drawn over farther ones.
// Triangles of equal depth keep their scene order.
func sortBackToFront(tris []sortingTriangle) {
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].depth > tris[j].depth
	})
}
