package mayjs3d

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and Vectors are multiplied as row vectors (v * M), so transforms compose left to right.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// Clone clones the Matrix4, returning a new copy.
func (matrix Matrix4) Clone() Matrix4 {
	return matrix
}

// Set allows you to set the Matrix4 to the same values as another Matrix4.
func (matrix *Matrix4) Set(other Matrix4) {
	*matrix = other
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := NewVector(x, y, z).Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y + vector.Z*s
	mat[0][2] = m*vector.Z*vector.X - vector.Y*s

	mat[1][0] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z + vector.X*s

	mat[2][0] = m*vector.Z*vector.X + vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// NewMatrix4FromQuaternion returns a rotation Matrix4 equivalent to the unit quaternion (x, y, z, w) provided, as stored in glTF files.
func NewMatrix4FromQuaternion(x, y, z, w float64) Matrix4 {

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(y*y+z*z)
	mat[0][1] = 2 * (x*y + z*w)
	mat[0][2] = 2 * (x*z - y*w)

	mat[1][0] = 2 * (x*y - z*w)
	mat[1][1] = 1 - 2*(x*x+z*z)
	mat[1][2] = 2 * (y*z + x*w)

	mat[2][0] = 2 * (x*z + y*w)
	mat[2][1] = 2 * (y*z - x*w)
	mat[2][2] = 1 - 2*(x*x+y*y)

	return mat

}

// Right returns the right-facing rotational component of the Matrix4. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix4) Right() Vector {
	return NewVector(matrix[0][0], matrix[0][1], matrix[0][2]).Unit()
}

// Up returns the upward rotational component of the Matrix4. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix4) Up() Vector {
	return NewVector(matrix[1][0], matrix[1][1], matrix[1][2]).Unit()
}

// Forward returns the forward rotational component of the Matrix4. For an identity matrix, this would be [0, 0, 1], or +Z (towards camera).
func (matrix Matrix4) Forward() Vector {
	return NewVector(matrix[2][0], matrix[2][1], matrix[2][2]).Unit()
}

// Decompose decomposes the Matrix4 and returns three components - the position (a 3D Vector), scale (another 3D Vector), and rotation (a Matrix4)
// indicated by the Matrix4. Negative scales are not supported.
func (matrix Matrix4) Decompose() (Vector, Vector, Matrix4) {

	position := NewVector(matrix[3][0], matrix[3][1], matrix[3][2])

	scale := NewVector(matrix.Row(0).Magnitude(), matrix.Row(1).Magnitude(), matrix.Row(2).Magnitude())

	rotation := NewMatrix4()
	rotation.SetRow(0, matrix.Row(0).Unit().SetW(0))
	rotation.SetRow(1, matrix.Row(1).Unit().SetW(0))
	rotation.SetRow(2, matrix.Row(2).Unit().SetW(0))

	return position, scale, rotation

}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices (matrices
// that have rows that are normalized (having a length of 1), like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	transposed := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			transposed[i][j] = matrix[j][i]
		}
	}

	return transposed

}

// Inverted returns an inverted version of the Matrix4 (cofactor expansion). A singular Matrix4 returns the identity.
func (matrix Matrix4) Inverted() Matrix4 {

	a2323 := matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	a1323 := matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	a1223 := matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	a0323 := matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	a0223 := matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	a0123 := matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	a2313 := matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	a1313 := matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	a1213 := matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	a2312 := matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	a1312 := matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	a1212 := matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	a0313 := matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	a0213 := matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	a0312 := matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	a0212 := matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	a0113 := matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	a0112 := matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	det := matrix[0][0]*(matrix[1][1]*a2323-matrix[1][2]*a1323+matrix[1][3]*a1223) -
		matrix[0][1]*(matrix[1][0]*a2323-matrix[1][2]*a0323+matrix[1][3]*a0223) +
		matrix[0][2]*(matrix[1][0]*a1323-matrix[1][1]*a0323+matrix[1][3]*a0123) -
		matrix[0][3]*(matrix[1][0]*a1223-matrix[1][1]*a0223+matrix[1][2]*a0123)

	if det == 0 {
		return NewMatrix4()
	}

	det = 1 / det

	m := NewMatrix4()

	m[0][0] = det * (matrix[1][1]*a2323 - matrix[1][2]*a1323 + matrix[1][3]*a1223)
	m[0][1] = det * -(matrix[0][1]*a2323 - matrix[0][2]*a1323 + matrix[0][3]*a1223)
	m[0][2] = det * (matrix[0][1]*a2313 - matrix[0][2]*a1313 + matrix[0][3]*a1213)
	m[0][3] = det * -(matrix[0][1]*a2312 - matrix[0][2]*a1312 + matrix[0][3]*a1212)
	m[1][0] = det * -(matrix[1][0]*a2323 - matrix[1][2]*a0323 + matrix[1][3]*a0223)
	m[1][1] = det * (matrix[0][0]*a2323 - matrix[0][2]*a0323 + matrix[0][3]*a0223)
	m[1][2] = det * -(matrix[0][0]*a2313 - matrix[0][2]*a0313 + matrix[0][3]*a0213)
	m[1][3] = det * (matrix[0][0]*a2312 - matrix[0][2]*a0312 + matrix[0][3]*a0212)
	m[2][0] = det * (matrix[1][0]*a1323 - matrix[1][1]*a0323 + matrix[1][3]*a0123)
	m[2][1] = det * -(matrix[0][0]*a1323 - matrix[0][1]*a0323 + matrix[0][3]*a0123)
	m[2][2] = det * (matrix[0][0]*a1313 - matrix[0][1]*a0313 + matrix[0][3]*a0113)
	m[2][3] = det * -(matrix[0][0]*a1312 - matrix[0][1]*a0312 + matrix[0][3]*a0112)
	m[3][0] = det * -(matrix[1][0]*a1223 - matrix[1][1]*a0223 + matrix[1][2]*a0123)
	m[3][1] = det * (matrix[0][0]*a1223 - matrix[0][1]*a0223 + matrix[0][2]*a0123)
	m[3][2] = det * -(matrix[0][0]*a1213 - matrix[0][1]*a0213 + matrix[0][2]*a0113)
	m[3][3] = det * (matrix[0][0]*a1212 - matrix[0][1]*a0212 + matrix[0][2]*a0112)

	return m

}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := 0.0001 // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// Row returns the indiced row from the Matrix4 as a Vector (including W).
func (matrix Matrix4) Row(rowIndex int) Vector {
	return Vector{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
		W: matrix[rowIndex][3],
	}
}

// SetRow sets the Matrix4 with the row in rowIndex set to the 4D vector passed.
func (matrix *Matrix4) SetRow(rowIndex int, vec Vector) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
	matrix[rowIndex][3] = vec.W
}

// Rotated returns a clone of the Matrix4 rotated along the local axis by the angle given (in radians). The axis is relative to any existing
// rotation contained in the matrix.
func (matrix Matrix4) Rotated(x, y, z, angle float64) Matrix4 {
	return NewMatrix4Rotate(x, y, z, angle).Mult(matrix)
}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, near and far are the near and far clipping plane,
// while viewWidth and viewHeight is the width and height of the view. Generally, you won't need to use this directly.
// After projection, W holds the view depth (distance in front of the camera).
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float64) Matrix4 {

	aspect := viewWidth / viewHeight
	e := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{e / aspect, 0, 0, 0},
		{0, e, 0, 0},
		{0, 0, -(far + near) / (far - near), -1},
		{0, 0, -(2 * far * near) / (far - near), 0},
	}

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVecW(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var newMat Matrix4

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}

	return newMat

}

// NewLookAtMatrix generates a new Matrix4 to rotate an object to point towards another object. to is the target's world position,
// from is the world position of the object looking towards the target, and up is the upward vector ( usually +Y, or [0, 1, 0] ).
// The resulting Matrix4's Forward() points from the target back towards from, since Cameras look down -Z.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	z := from.Sub(to).Unit()

	up = up.Unit()

	// If z == up, then the matrix will be unusable, so we sub up out with another angle
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(WorldRight) {
			up = WorldRight
		} else {
			up = WorldBackward
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)
	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
