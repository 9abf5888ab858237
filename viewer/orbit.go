package viewer

import (
	"math"

	"github.com/mayjs/mayjs3d"
)

// minPolarAngle keeps the orbit from passing exactly over the top of the target, where the view would flip.
const minPolarAngle = 1e-6

// Orbit swings a Camera around a target point, always looking at it. The camera's position is kept as spherical
// coordinates: an azimuth around the Y axis, a polar angle down from straight up, and a distance.
type Orbit struct {
	Camera *mayjs3d.Camera
	Target mayjs3d.Vector

	MinDistance   float64
	MaxDistance   float64
	MaxPolarAngle float64

	azimuth  float64
	polar    float64
	distance float64
}

// NewOrbit creates an Orbit that starts from wherever camera currently is, clamped to the allowed range.
func NewOrbit(camera *mayjs3d.Camera, target mayjs3d.Vector, minDistance, maxDistance, maxPolarAngle float64) *Orbit {

	orbit := &Orbit{
		Camera:        camera,
		Target:        target,
		MinDistance:   minDistance,
		MaxDistance:   maxDistance,
		MaxPolarAngle: maxPolarAngle,
	}

	offset := camera.WorldPosition().Sub(target)
	orbit.distance = offset.Magnitude()
	if orbit.distance > 0 {
		orbit.azimuth = math.Atan2(offset.X, offset.Z)
		orbit.polar = math.Acos(clampUnit(offset.Y / orbit.distance))
	}

	orbit.update()

	return orbit

}

// Rotate swings the camera by the given azimuth and polar angles in radians.
func (orbit *Orbit) Rotate(azimuth, polar float64) {
	orbit.azimuth += azimuth
	orbit.polar += polar
	orbit.update()
}

// Zoom scales the distance to the target; factors below 1 move the camera closer.
func (orbit *Orbit) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	orbit.distance *= factor
	orbit.update()
}

func (orbit *Orbit) Azimuth() float64 { return orbit.azimuth }

func (orbit *Orbit) Polar() float64 { return orbit.polar }

func (orbit *Orbit) Distance() float64 { return orbit.distance }

func (orbit *Orbit) update() {

	orbit.polar = math.Max(minPolarAngle, math.Min(orbit.polar, orbit.MaxPolarAngle))
	orbit.distance = math.Max(orbit.MinDistance, math.Min(orbit.distance, orbit.MaxDistance))

	sin := math.Sin(orbit.polar)
	offset := mayjs3d.NewVector(
		orbit.distance*sin*math.Sin(orbit.azimuth),
		orbit.distance*math.Cos(orbit.polar),
		orbit.distance*sin*math.Cos(orbit.azimuth),
	)

	position := orbit.Target.Add(offset)
	orbit.Camera.SetLocalPositionVec(position)
	orbit.Camera.SetLocalRotation(mayjs3d.NewLookAtMatrix(position, orbit.Target, mayjs3d.WorldUp))

}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(v, 1))
}
