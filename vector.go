package mayjs3d

import (
	"math"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system (right).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of +Y on the right-handed coordinate system (upwards).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of +Z on the right-handed coordinate system (backwards, towards you).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// The fourth component, W, can be ignored and is used for projection.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
	W float64 // The w (4th) component of the Vector; not used for most Vector functions
}

// NewVector creates a new Vector with the specified x, y, and z components. The W component is set to 0.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 0}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided (ignoring the W component).
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it (ignoring the W component).
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
// This function ignores the W component of both Vectors.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	vec.W = -vec.W
	return vec
}

// Magnitude returns the length of the Vector (ignoring the Vector's W component).
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector (ignoring the Vector's W component); this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance from the calling Vector to the other Vector provided.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance from the calling Vector to the other Vector provided.
func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// MultComp returns a copy of the Vector with each component multiplied by the matching component of the other Vector.
func (vec Vector) MultComp(other Vector) Vector {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// SetX sets the X component in the vector to the value provided.
func (vec Vector) SetX(x float64) Vector {
	vec.X = x
	return vec
}

// SetY sets the Y component in the vector to the value provided.
func (vec Vector) SetY(y float64) Vector {
	vec.Y = y
	return vec
}

// SetZ sets the Z component in the vector to the value provided.
func (vec Vector) SetZ(z float64) Vector {
	vec.Z = z
	return vec
}

// SetW sets the W component in the vector to the value provided.
func (vec Vector) SetW(w float64) Vector {
	vec.W = w
	return vec
}

// Set sets the values in the Vector to the x, y, and z values provided.
func (vec Vector) Set(x, y, z float64) Vector {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Equals returns true if the two Vectors are close enough in all values (excluding W).
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0 (excluding W).
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Rotate returns a copy of the Vector, rotated around the Vector axis provided by the angle provided (in radians).
// Rotating around WorldRight, WorldUp or WorldBackward takes a fast path.
// Note that this function ignores the W component of both Vectors.
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	cos, sin := math.Cos(angle), math.Sin(angle)

	if axis.Equals(WorldRight) {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis.Equals(WorldUp) {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis.Equals(WorldBackward) {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	// Rodrigues' rotation formula
	u := axis.Unit()
	d := u.Dot(vec)
	x := u.Cross(vec)

	w := vec.W
	vec = vec.Scale(cos).Add(x.Scale(sin)).Add(u.Scale(d * (1 - cos)))
	vec.W = w

	return vec

}

// Angle returns the angle between the calling Vector and the provided other Vector (ignoring the W component).
func (vec Vector) Angle(other Vector) float64 {
	dot := vec.Unit().Dot(other.Unit())
	// Rounding can push the dot product just outside of [-1, 1]
	dot = math.Max(-1, math.Min(1, dot))
	return math.Acos(dot)
}

// Scale scales a Vector by the given scalar (ignoring the W component).
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar (ignoring the W component).
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector (ignoring the W component).
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Lerp returns a copy of the Vector, linearly interpolated towards the other Vector by the percentage provided (0 to 1).
func (vec Vector) Lerp(other Vector, percentage float64) Vector {
	return vec.Add(other.Sub(vec).Scale(percentage))
}

// Floats returns a [4]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [4]float64 {
	return [4]float64{vec.X, vec.Y, vec.Z, vec.W}
}
