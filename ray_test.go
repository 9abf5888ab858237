package mayjs3d

import (
	"math"
	"testing"
)

func TestRayTestAABB(t *testing.T) {

	box := NewBoundingAABB("box", 2, 2, 2)
	box.SetLocalPosition(0, 0, -10)

	hit := RayTest(RayTestOptions{From: NewVector(0, 0, 0), To: NewVector(0, 0, -20), TestAgainst: []INode{box}})
	if hit == nil {
		t.Fatal("expected the ray to hit the box")
	}

	if math.Abs(hit.Distance()-9) > 1e-9 {
		t.Fatal("expected a hit 9 units away, got", hit.Distance())
	}

	if !hit.Normal.Equals(NewVector(0, 0, 1)) {
		t.Fatal("expected the +Z face normal, got", hit.Normal)
	}

	if hit.Object != box {
		t.Fatal("hit the wrong object")
	}

}

func TestRayTestShortRayMisses(t *testing.T) {
	box := NewBoundingAABB("box", 2, 2, 2)
	box.SetLocalPosition(0, 0, -10)
	if hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 0, 0), NewVector(0, 0, -1), 5).WithTestAgainst(box)); hit != nil {
		t.Fatal("a 5 unit ray should not reach a box 9 units away")
	}
}

func TestRayTestSortsByDistance(t *testing.T) {

	far := NewBoundingAABB("far", 1, 1, 1)
	far.SetLocalPosition(20, 0, 0)
	near := NewBoundingAABB("near", 1, 1, 1)
	near.SetLocalPosition(5, 0, 0)

	hits := RayTestAll(RayTestOptions{From: NewVector(0, 0, 0), To: NewVector(100, 0, 0), TestAgainst: []INode{far, near}})

	if len(hits) != 2 {
		t.Fatal("expected two hits, got", len(hits))
	}

	if hits[0].Object != near || hits[1].Object != far {
		t.Fatal("hits are not sorted nearest first")
	}

	count := 0
	RayTestAll(RayTestOptions{
		From:        NewVector(0, 0, 0),
		To:          NewVector(100, 0, 0),
		TestAgainst: []INode{far, near},
	}.WithOnHit(func(hit RayHit, index, total int) bool {
		count++
		return false
	}))

	if count != 1 {
		t.Fatal("OnHit returning false should stop iteration")
	}

}

func TestRayTestIgnoresContainingBox(t *testing.T) {
	box := NewBoundingAABB("self", 4, 4, 4)
	if hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 0, 0), WorldRight, 10).WithTestAgainst(box)); hit != nil {
		t.Fatal("a ray starting inside a box should not hit it")
	}
}

func TestRayTestZeroThicknessWall(t *testing.T) {

	// A wall spanning Z at x = 10, with no thickness along X.
	wall := NewBoundingAABB("wall", 0, 30, 360)
	wall.SetLocalPosition(10, 15, 0)

	hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 15, 3), WorldRight, 50).WithTestAgainst(wall))
	if hit == nil {
		t.Fatal("expected to hit the zero-thickness wall")
	}
	if math.Abs(hit.Distance()-10) > 1e-9 {
		t.Fatal("expected a hit 10 units away, got", hit.Distance())
	}

	// Parallel to the wall's plane and off to the side.
	if hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 15, 3), WorldBackward, 50).WithTestAgainst(wall)); hit != nil {
		t.Fatal("a ray parallel to the wall should not hit it")
	}

}

func TestRayTestZeroLengthRay(t *testing.T) {
	box := NewBoundingAABB("box", 1, 1, 1)
	box.SetLocalPosition(1, 0, 0)
	if hits := RayTestAll(RayTestOptions{From: NewVector(0, 0, 0), To: NewVector(0, 0, 0), TestAgainst: []INode{box}}); len(hits) != 0 {
		t.Fatal("a zero-length ray should not hit anything")
	}
}

func TestRayTestFollowsParent(t *testing.T) {

	parent := NewNode("parent")
	box := NewBoundingAABB("box", 2, 2, 2)
	parent.AddChildren(box)

	parent.SetLocalPosition(0, 0, -10)

	if hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 0, 0), NewVector(0, 0, -1), 100).WithTestAgainst(box)); hit == nil {
		t.Fatal("the box should have moved with its parent")
	}

}

func TestRayTestModel(t *testing.T) {

	model := NewModel(NewCubeMesh(2, 2, 2), "cube")
	model.SetLocalPosition(0, 0, -10)
	model.SetLocalScale(2, 2, 2)

	hit := RayTest(NewRayTestOptionsDirection(NewVector(0, 0, 0), NewVector(0, 0, -1), 100).WithTestAgainst(model))
	if hit == nil {
		t.Fatal("expected to hit the model")
	}
	if math.Abs(hit.Distance()-8) > 1e-9 {
		t.Fatal("expected the scaled model's face 8 units away, got", hit.Distance())
	}

}

func TestBoundingAABBRotated(t *testing.T) {
	box := NewBoundingAABB("box", 2, 2, 10)
	box.Rotate(0, 1, 0, math.Pi/2)
	dim := box.WorldDimensions()
	if math.Abs(dim.Width()-10) > 1e-9 || math.Abs(dim.Depth()-2) > 1e-9 {
		t.Fatal("a quarter turn should swap width and depth, got", dim.Size())
	}
}
