package mayjs3d

import (
	"math"
	"testing"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Rotate(0, 1, 0.2, 0.24).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Rotate(0, 1, 0, 0.1),
		NewMatrix4Translate(-10, 0.1, 3232.1976),
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4Rotate(1, 0, 0.1, 0.334)).Mult(NewMatrix4Scale(10, 1, 2)),
	}

	for i, mat := range matrices {

		// Multiplying a matrix by its inverse should give the identity matrix.
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}

	}

}

func TestMatrixSingularInversion(t *testing.T) {
	if !NewMatrix4Scale(1, 1, 0).Inverted().IsIdentity() {
		t.Fatal("a singular matrix should invert to identity")
	}
}

func TestMatrixRotateY(t *testing.T) {

	// Row vectors: a positive rotation about +Y turns +X towards -Z.
	got := NewMatrix4Rotate(0, 1, 0, math.Pi/2).MultVec(NewVector(1, 0, 0))
	if got.Distance(NewVector(0, 0, -1)) > 1e-9 {
		t.Fatal("expected -Z, got", got)
	}

}

func TestMatrixDecompose(t *testing.T) {

	rot := NewMatrix4Rotate(0, 1, 0, 0.5)
	mat := NewMatrix4Scale(2, 3, 4).Mult(rot).Mult(NewMatrix4Translate(5, 6, 7))

	p, s, r := mat.Decompose()

	if !p.Equals(NewVector(5, 6, 7)) {
		t.Fatal("wrong position", p)
	}
	if s.Distance(NewVector(2, 3, 4)) > 1e-9 {
		t.Fatal("wrong scale", s)
	}
	if !r.Equals(rot) {
		t.Fatal("wrong rotation", r)
	}

}

func TestMatrixLookAt(t *testing.T) {
	m := NewLookAtMatrix(NewVector(0, 0, 10), NewVector(0, 0, 0), WorldUp)
	// Looking down -Z from +Z means no rotation at all.
	if !m.Equals(NewMatrix4()) {
		t.Fatal("expected identity look-at, got", m)
	}
}

func TestMatrixQuaternion(t *testing.T) {
	// Quarter turn about +Y.
	s := math.Sin(math.Pi / 4)
	q := NewMatrix4FromQuaternion(0, s, 0, math.Cos(math.Pi/4))
	if !q.Equals(NewMatrix4Rotate(0, 1, 0, math.Pi/2)) {
		t.Fatal("quaternion matrix differs from axis-angle matrix", q)
	}
}
