package viewer

import (
	"math"
	"testing"

	"github.com/mayjs/mayjs3d"
	"github.com/stretchr/testify/assert"
)

func newTestOrbit() *Orbit {
	camera := mayjs3d.NewCamera(320, 240)
	camera.SetLocalPosition(-50, 100, 230)
	return NewOrbit(camera, mayjs3d.Vector{}, 100, 800, math.Pi*0.45)
}

func assertLooksAtTarget(t *testing.T, orbit *Orbit) {
	t.Helper()
	want := orbit.Target.Sub(orbit.Camera.WorldPosition()).Unit()
	got := orbit.Camera.LookDirection()
	assert.InDelta(t, 1, want.Dot(got), 1e-9, "camera looks along %v, not at the target (%v)", got, want)
}

func TestOrbitKeepsStartingPosition(t *testing.T) {

	orbit := newTestOrbit()

	pos := orbit.Camera.WorldPosition()
	assert.InDelta(t, -50, pos.X, 1e-9)
	assert.InDelta(t, 100, pos.Y, 1e-9)
	assert.InDelta(t, 230, pos.Z, 1e-9)
	assert.InDelta(t, math.Sqrt(50*50+100*100+230*230), orbit.Distance(), 1e-9)

	assertLooksAtTarget(t, orbit)

}

func TestOrbitRotate(t *testing.T) {

	orbit := newTestOrbit()
	distance := orbit.Distance()

	orbit.Rotate(math.Pi/2, 0)
	assertLooksAtTarget(t, orbit)
	assert.InDelta(t, distance, orbit.Camera.WorldPosition().Magnitude(), 1e-9)

	orbit.Rotate(0, 10)
	assert.InDelta(t, math.Pi*0.45, orbit.Polar(), 1e-9, "the camera can't dip below the ground")
	assert.Greater(t, orbit.Camera.WorldPosition().Y, 0.0)

	orbit.Rotate(0, -10)
	assert.InDelta(t, minPolarAngle, orbit.Polar(), 1e-9)
	assertLooksAtTarget(t, orbit)

}

func TestOrbitZoom(t *testing.T) {

	orbit := newTestOrbit()

	orbit.Zoom(0.01)
	assert.InDelta(t, 100, orbit.Distance(), 1e-9)
	assert.InDelta(t, 100, orbit.Camera.WorldPosition().Magnitude(), 1e-9)

	orbit.Zoom(100)
	assert.InDelta(t, 800, orbit.Distance(), 1e-9)

	orbit.Zoom(-1)
	assert.InDelta(t, 800, orbit.Distance(), 1e-9, "non-positive factors are ignored")

}

func TestOrbitTarget(t *testing.T) {

	orbit := newTestOrbit()
	orbit.Target = mayjs3d.NewVector(10, 0, -10)
	orbit.Rotate(0, 0)

	assertLooksAtTarget(t, orbit)
	assert.InDelta(t, orbit.Distance(), orbit.Camera.WorldPosition().Distance(orbit.Target), 1e-9)

}
