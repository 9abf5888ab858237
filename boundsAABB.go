package mayjs3d

import "math"

// BoundingAABB represents a 3D AABB (Axis-Aligned Bounding Box), a 3D cube of varying width, height, and depth that cannot rotate.
// The primary purpose of a BoundingAABB is to be struck by ray tests and to test for overlap with other boxes.
// A BoundingAABB may have zero thickness along an axis, in which case it behaves like an axis-aligned wall plane.
type BoundingAABB struct {
	*Node
	internalSize Vector
	// Dimensions are the extents of the box relative to its world position, after scale and rotation are applied.
	Dimensions Dimensions
}

// NewBoundingAABB returns a new BoundingAABB Node. Negative sizes are treated as zero.
func NewBoundingAABB(name string, width, height, depth float64) *BoundingAABB {
	bounds := &BoundingAABB{
		Node:         NewNode(name),
		internalSize: NewVector(math.Max(width, 0), math.Max(height, 0), math.Max(depth, 0)),
	}
	bounds.Node.onTransformUpdate = bounds.updateSize
	bounds.updateSize()
	return bounds
}

// updateSize updates the BoundingAABB's external Dimensions property to reflect its size after reposition, rotation, or resizing.
// This is called automatically as necessary after the node's transform is updated.
func (box *BoundingAABB) updateSize() {

	_, s, r := box.Node.Transform().Decompose()

	half := box.internalSize.MultComp(s).Scale(0.5)
	local := Dimensions{Min: half.Invert().SetW(0), Max: half}

	box.Dimensions = local.Transformed(r)

}

// SetDimensions sets the BoundingAABB's internal dimensions (prior to resizing or rotating the Node).
func (box *BoundingAABB) SetDimensions(newWidth, newHeight, newDepth float64) {

	newWidth = math.Max(newWidth, 0)
	newHeight = math.Max(newHeight, 0)
	newDepth = math.Max(newDepth, 0)

	if box.internalSize.X != newWidth || box.internalSize.Y != newHeight || box.internalSize.Z != newDepth {
		box.internalSize = NewVector(newWidth, newHeight, newDepth)
		box.updateSize()
	}

}

// Size returns the internal (unscaled, unrotated) size of the box.
func (box *BoundingAABB) Size() Vector {
	return box.internalSize
}

// WorldDimensions returns the box's extents in world space.
func (box *BoundingAABB) WorldDimensions() Dimensions {
	pos := box.WorldPosition()
	return box.Dimensions.Translated(pos)
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (box *BoundingAABB) AddChildren(children ...INode) {
	// We do this manually so that addChildren() parents the children to the BoundingAABB, rather than to the BoundingAABB.Node.
	box.addChildren(box, children...)
}

// Unparent unparents the BoundingAABB from its parent, removing it from the scenegraph.
func (box *BoundingAABB) Unparent() {
	if box.parent != nil {
		box.parent.RemoveChildren(box)
	}
}

// ClosestPoint returns the closest point, to the point given, on the inside or surface of the BoundingAABB.
func (box *BoundingAABB) ClosestPoint(point Vector) Vector {
	dim := box.WorldDimensions()
	point.X = math.Max(dim.Min.X, math.Min(point.X, dim.Max.X))
	point.Y = math.Max(dim.Min.Y, math.Min(point.Y, dim.Max.Y))
	point.Z = math.Max(dim.Min.Z, math.Min(point.Z, dim.Max.Z))
	return point
}

// PointInside returns true if the point given lies inside the box or on its surface.
func (box *BoundingAABB) PointInside(point Vector) bool {
	return box.WorldDimensions().Contains(point)
}

// Colliding returns true if the BoundingAABB overlaps another BoundingAABB.
func (box *BoundingAABB) Colliding(other *BoundingAABB) bool {
	if other == box {
		return false
	}
	return box.WorldDimensions().Overlaps(other.WorldDimensions())
}

// normalFromContactPoint guesses the face normal for a point lying on the surface of the box.
func (box *BoundingAABB) normalFromContactPoint(contact Vector) Vector {

	dim := box.WorldDimensions()
	best := math.MaxFloat64
	normal := NewVectorZero()

	check := func(d float64, n Vector) {
		if d = math.Abs(d); d < best {
			best = d
			normal = n
		}
	}

	check(contact.X-dim.Min.X, NewVector(-1, 0, 0))
	check(contact.X-dim.Max.X, NewVector(1, 0, 0))
	check(contact.Y-dim.Min.Y, NewVector(0, -1, 0))
	check(contact.Y-dim.Max.Y, NewVector(0, 1, 0))
	check(contact.Z-dim.Min.Z, NewVector(0, 0, -1))
	check(contact.Z-dim.Max.Z, NewVector(0, 0, 1))

	return normal

}

// Type returns the NodeType for this object.
func (box *BoundingAABB) Type() NodeType {
	return NodeTypeBoundingAABB
}
