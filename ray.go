package mayjs3d

import (
	"math"
	"sort"
)

// RayHit represents the result of a raycast test.
type RayHit struct {
	Object   INode  // Object is a pointer to the Node that was struck by the raycast.
	Position Vector // Position is the world position where the object was struck.
	Normal   Vector // Normal is the normal of the surface the ray struck.
	from     Vector // The starting position of the Ray
}

// Slope returns the slope of the RayHit's normal, in radians. This ranges from 0 (straight up) to pi (straight down).
func (r RayHit) Slope() float64 {
	return WorldUp.Angle(r.Normal)
}

// Distance returns the distance from the RayHit's originating ray source point to the struck position.
func (r RayHit) Distance() float64 {
	return r.from.Distance(r.Position)
}

// RayTestOptions is a struct designed to control what options to use when performing a ray test.
type RayTestOptions struct {
	From Vector // The position to cast rays from.
	To   Vector // The position to cast rays to.

	// TestAgainst is the selection of Nodes to test against. BoundingAABBs are tested directly;
	// Models are tested using their world-space mesh bounds. Other Nodes are ignored.
	TestAgainst []INode

	// OnHit is a callback called for each hit a cast Ray returns, in order of distance from the starting point.
	// index is the index of the hit out of the maximum number of hits found by the function (count).
	// The returned boolean indicates whether to keep iterating through all found rayhits, or to stop after the current one.
	OnHit func(hit RayHit, index, count int) bool
}

// WithOnHit sets the callback to be called for each hit a cast Ray returns, sorted by distance from the starting point.
func (r RayTestOptions) WithOnHit(onHit func(hit RayHit, index, count int) bool) RayTestOptions {
	r.OnHit = onHit
	return r
}

// WithTestAgainst sets the Nodes to test against.
func (r RayTestOptions) WithTestAgainst(nodes ...INode) RayTestOptions {
	r.TestAgainst = nodes
	return r
}

// NewRayTestOptionsDirection returns RayTestOptions for a ray cast from the origin along the given direction for the given length.
func NewRayTestOptionsDirection(origin, direction Vector, length float64) RayTestOptions {
	return RayTestOptions{
		From: origin,
		To:   origin.Add(direction.Unit().Scale(length)),
	}
}

// RayTestAll casts a ray from the "from" world position to the "to" world position, testing against the provided Nodes.
// All hits are returned, sorted by distance from the starting point. A box that contains the starting point
// of the ray is not struck. A zero-length ray strikes nothing.
func RayTestAll(options RayTestOptions) []RayHit {

	hits := []RayHit{}

	if options.To.Sub(options.From).IsZero() {
		return hits
	}

	for _, node := range options.TestAgainst {

		switch test := node.(type) {

		case *BoundingAABB:
			if result, ok := boundingAABBRayTest(options.From, options.To, test.WorldDimensions()); ok {
				result.Object = test
				result.Normal = test.normalFromContactPoint(result.Position)
				hits = append(hits, result)
			}

		case *Model:
			if dim, ok := test.WorldDimensions(); ok {
				if result, ok := boundingAABBRayTest(options.From, options.To, dim); ok {
					result.Object = test
					hits = append(hits, result)
				}
			}

		}

	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Position.DistanceSquared(hits[i].from) < hits[j].Position.DistanceSquared(hits[j].from)
	})

	if options.OnHit != nil {
		for i, r := range hits {
			if !options.OnHit(r, i, len(hits)) {
				break
			}
		}
	}

	return hits

}

// RayTest casts a ray from the "from" world position to the "to" world position while testing against the provided Nodes.
// The function returns the nearest struck object; if none were struck, it returns nil.
func RayTest(options RayTestOptions) *RayHit {
	hits := RayTestAll(options)
	if len(hits) > 0 {
		return &hits[0]
	}
	return nil
}

// boundingAABBRayTest performs a slab test of the segment from -> to against the world-space box given.
// Boxes with zero thickness along an axis are supported, as are rays parallel to an axis.
func boundingAABBRayTest(from, to Vector, dim Dimensions) (RayHit, bool) {

	rayLine := to.Sub(from)
	length := rayLine.Magnitude()
	dir := rayLine.Unit()

	if dim.Contains(from) {
		return RayHit{}, false
	}

	tmin := 0.0
	tmax := length

	slab := func(origin, d, min, max float64) bool {
		if math.Abs(d) < 1e-12 {
			// Parallel to this slab; only a hit if the origin is already between its planes.
			return origin >= min && origin <= max
		}
		t1 := (min - origin) / d
		t2 := (max - origin) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		return tmin <= tmax
	}

	if !slab(from.X, dir.X, dim.Min.X, dim.Max.X) ||
		!slab(from.Y, dir.Y, dim.Min.Y, dim.Max.Y) ||
		!slab(from.Z, dir.Z, dim.Min.Z, dim.Max.Z) {
		return RayHit{}, false
	}

	return RayHit{
		Position: from.Add(dir.Scale(tmin)),
		from:     from,
	}, true

}
