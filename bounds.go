package mayjs3d

import "math"

// Dimensions represents the minimum and maximum spatial extents of a Mesh or bounding object.
type Dimensions struct {
	Min, Max Vector
}

// NewEmptyDimensions returns a Dimensions set that any point will expand; its Min is +MaxFloat64 and its Max is -MaxFloat64.
func NewEmptyDimensions() Dimensions {
	return Dimensions{
		Min: NewVector(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: NewVector(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}
}

// Expand returns a copy of the Dimensions, grown to include the point given.
func (dim Dimensions) Expand(point Vector) Dimensions {
	dim.Min.X = math.Min(dim.Min.X, point.X)
	dim.Min.Y = math.Min(dim.Min.Y, point.Y)
	dim.Min.Z = math.Min(dim.Min.Z, point.Z)
	dim.Max.X = math.Max(dim.Max.X, point.X)
	dim.Max.Y = math.Max(dim.Max.Y, point.Y)
	dim.Max.Z = math.Max(dim.Max.Z, point.Z)
	return dim
}

// Valid returns true if the Dimensions have been expanded by at least one point.
func (dim Dimensions) Valid() bool {
	return dim.Min.X <= dim.Max.X && dim.Min.Y <= dim.Max.Y && dim.Min.Z <= dim.Max.Z
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

// Size returns the width, height and depth of the Dimensions as a Vector.
func (dim Dimensions) Size() Vector {
	return dim.Max.Sub(dim.Min)
}

func (dim Dimensions) Width() float64 {
	return dim.Max.X - dim.Min.X
}

func (dim Dimensions) Height() float64 {
	return dim.Max.Y - dim.Min.Y
}

func (dim Dimensions) Depth() float64 {
	return dim.Max.Z - dim.Min.Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Contains returns true if the point lies inside the Dimensions or on their surface.
func (dim Dimensions) Contains(point Vector) bool {
	return point.X >= dim.Min.X && point.X <= dim.Max.X &&
		point.Y >= dim.Min.Y && point.Y <= dim.Max.Y &&
		point.Z >= dim.Min.Z && point.Z <= dim.Max.Z
}

// Overlaps returns true if the two Dimensions share any volume or surface.
func (dim Dimensions) Overlaps(other Dimensions) bool {
	return dim.Min.X <= other.Max.X && dim.Max.X >= other.Min.X &&
		dim.Min.Y <= other.Max.Y && dim.Max.Y >= other.Min.Y &&
		dim.Min.Z <= other.Max.Z && dim.Max.Z >= other.Min.Z
}

// Translated returns a copy of the Dimensions offset by the vector given.
func (dim Dimensions) Translated(offset Vector) Dimensions {
	dim.Min = dim.Min.Add(offset)
	dim.Max = dim.Max.Add(offset)
	return dim
}

// Transformed returns the axis-aligned Dimensions enclosing these Dimensions after every corner has been
// transformed by the given Matrix4.
func (dim Dimensions) Transformed(transform Matrix4) Dimensions {
	out := NewEmptyDimensions()
	for _, c := range dim.corners() {
		out = out.Expand(transform.MultVec(c))
	}
	return out
}

func (dim Dimensions) corners() [8]Vector {
	return [8]Vector{
		NewVector(dim.Min.X, dim.Min.Y, dim.Min.Z),
		NewVector(dim.Max.X, dim.Min.Y, dim.Min.Z),
		NewVector(dim.Min.X, dim.Max.Y, dim.Min.Z),
		NewVector(dim.Max.X, dim.Max.Y, dim.Min.Z),
		NewVector(dim.Min.X, dim.Min.Y, dim.Max.Z),
		NewVector(dim.Max.X, dim.Min.Y, dim.Max.Z),
		NewVector(dim.Min.X, dim.Max.Y, dim.Max.Z),
		NewVector(dim.Max.X, dim.Max.Y, dim.Max.Z),
	}
}
