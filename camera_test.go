package mayjs3d

import (
	"math"
	"testing"
)

func newTestCamera() *Camera {
	cam := NewCamera(800, 600)
	cam.SetFieldOfView(60)
	cam.SetNear(1)
	cam.SetFar(2000)
	cam.SetLocalPosition(0, 0, 10)
	return cam
}

func TestCameraProjectsCenter(t *testing.T) {

	cam := newTestCamera()

	screen, ok := cam.WorldToScreenPixels(NewVector(0, 0, 0))
	if !ok {
		t.Fatal("the origin should be in front of the camera")
	}

	if math.Abs(screen.X-400) > 1e-6 || math.Abs(screen.Y-300) > 1e-6 {
		t.Fatal("expected the origin at the screen center, got", screen)
	}

	above, _ := cam.WorldToScreenPixels(NewVector(0, 1, 0))
	if above.Y >= 300 {
		t.Fatal("a point above the origin should be drawn higher on screen, got", above)
	}

	if _, ok := cam.WorldToScreenPixels(NewVector(0, 0, 20)); ok {
		t.Fatal("a point behind the camera should not project")
	}

}

func TestCameraClipDepth(t *testing.T) {
	cam := newTestCamera()
	clip := cam.WorldToClip(NewVector(0, 0, -5))
	if math.Abs(clip.W-15) > 1e-9 {
		t.Fatal("clip W should hold the view depth, got", clip.W)
	}
}

func TestCameraScreenRoundTrip(t *testing.T) {

	cam := newTestCamera()
	cam.Rotate(0, 1, 0, 0.3)
	cam.Rotate(1, 0, 0, -0.2)

	for _, p := range [][2]int{{400, 300}, {10, 20}, {790, 580}, {123, 456}} {

		world := cam.ScreenToWorldPixels(p[0], p[1], 50)
		screen, ok := cam.WorldToScreenPixels(world)

		if !ok {
			t.Fatal("unprojected point should be in front of the camera")
		}

		if math.Abs(screen.X-float64(p[0])) > 1e-6 || math.Abs(screen.Y-float64(p[1])) > 1e-6 {
			t.Fatal("round trip of", p, "gave", screen)
		}

	}

}

func TestCameraLookDirection(t *testing.T) {

	cam := newTestCamera()
	if !cam.LookDirection().Equals(NewVector(0, 0, -1)) {
		t.Fatal("an unrotated camera should look down -Z, got", cam.LookDirection())
	}

	cam.Rotate(0, 1, 0, math.Pi/2)
	if cam.LookDirection().Distance(NewVector(-1, 0, 0)) > 1e-9 {
		t.Fatal("a quarter turn left should look down -X, got", cam.LookDirection())
	}

	_, dir := cam.MouseRay(400, 300)
	if dir.Distance(cam.LookDirection()) > 1e-9 {
		t.Fatal("the ray through the screen center should match the look direction")
	}

}

func TestCameraMouseRayTest(t *testing.T) {
	cam := newTestCamera()
	target := NewModel(NewCubeMesh(2, 2, 2), "target")
	decoy := NewModel(NewCubeMesh(2, 2, 2), "decoy")
	decoy.SetLocalPosition(30, 0, 0)
	if hit := cam.MouseRayTest(400, 300, decoy, target); hit == nil || hit.Object != target {
		t.Fatal("expected the center ray to hit the target")
	}
}

func TestCameraResize(t *testing.T) {
	cam := newTestCamera()
	before := cam.Projection()
	cam.Resize(400, 600)
	if cam.Projection().Equals(before) {
		t.Fatal("resizing should change the projection aspect")
	}
	if cam.AspectRatio() != 400.0/600.0 {
		t.Fatal("wrong aspect ratio", cam.AspectRatio())
	}
	if !cam.PointInFrustum(NewVector(0, 0, 0)) || cam.PointInFrustum(NewVector(0, 0, 20)) {
		t.Fatal("frustum check failed")
	}
}
