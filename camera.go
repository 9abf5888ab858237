package mayjs3d

import (
	"math"
)

// Camera represents a perspective camera (where you look from). A Camera looks down its local -Z axis.
// Camera only holds projection math; drawing is done by a renderer that reads the Camera's matrices.
type Camera struct {
	*Node

	width, height int
	near, far     float64 // The near and far clipping plane.
	fieldOfView   float64 // Vertical field of view in degrees

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4
}

// NewCamera creates a new Camera with the specified view width and height. The field of view defaults to 60 degrees,
// the near plane to 0.1 and the far plane to 100.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		Node:                   NewNode("Camera"),
		near:                   0.1,
		far:                    100,
		fieldOfView:            60,
		updateProjectionMatrix: true,
	}

	cam.Resize(w, h)

	return cam

}

// Resize sets the width and height of the view the Camera projects to. Values lower than 1 are raised to 1.
func (camera *Camera) Resize(w, h int) {
	w = max(w, 1)
	h = max(h, 1)
	if w == camera.width && h == camera.height {
		return
	}
	camera.width = w
	camera.height = h
	camera.updateProjectionMatrix = true
}

// Size returns the width and height of the camera's view.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	return float64(camera.width) / float64(camera.height)
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() Matrix4 {

	camPos := camera.WorldPosition().Invert()
	transform := NewMatrix4Translate(camPos.X, camPos.Y, camPos.Z)

	// We invert the rotation because the Camera is looking down -Z
	transform = transform.Mult(camera.WorldRotation().Transposed())

	return transform

}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.updateProjectionMatrix = false
	camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float64(camera.width), float64(camera.height))

	return camera.cachedProjectionMatrix

}

// ViewProjection returns the combined view and projection Matrix4.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection())
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// LookDirection returns the unit world-space direction the camera is facing (its -Z axis).
func (camera *Camera) LookDirection() Vector {
	return camera.WorldRotation().Forward().Invert().SetW(0)
}

// WorldToClip transforms a 3D position in the world to clip coordinates (before screen normalization).
// The W component of the result is the depth of the point in front of the camera.
func (camera *Camera) WorldToClip(vert Vector) Vector {
	return camera.ViewProjection().MultVecW(vert)
}

// ClipToScreen remaps a clip-space vertex to screen pixel coordinates. Z holds normalized depth.
// Vertices behind the camera (W <= 0) should be clipped before calling this.
func (camera *Camera) ClipToScreen(vert Vector) Vector {

	width, height := float64(camera.width), float64(camera.height)

	w := vert.W
	if w == 0 {
		w = 0.000001
	}

	vert.X = (vert.X/w)*width/2 + (width / 2)
	vert.Y = (vert.Y/w*-1)*height/2 + (height / 2)
	vert.Z = vert.Z / w
	vert.W = 1

	return vert

}

// WorldToScreenPixels transforms a 3D position in the world to a position onscreen, with X and Y representing the pixels.
// The boolean returned is false if the point is behind the camera.
func (camera *Camera) WorldToScreenPixels(vert Vector) (Vector, bool) {
	clip := camera.WorldToClip(vert)
	if clip.W <= 0 {
		return Vector{}, false
	}
	return camera.ClipToScreen(clip), true
}

// ScreenToWorldPixels converts an x and y pixel position on screen to a 3D point in front of the camera.
// The depth argument changes how far away from the camera the returned Vector is in 3D world units.
func (camera *Camera) ScreenToWorldPixels(x, y int, depth float64) Vector {
	_, dir := camera.MouseRay(x, y)
	return camera.WorldPosition().Add(dir.Scale(depth))
}

// MouseRay returns the world-space origin and unit direction of the ray passing from the camera through the given screen pixel.
func (camera *Camera) MouseRay(x, y int) (origin, direction Vector) {

	x = clamp(x, 0, camera.width)
	y = clamp(y, 0, camera.height)

	nx := float64(x)/float64(camera.width)*2 - 1
	ny := -(float64(y)/float64(camera.height)*2 - 1)

	tan := math.Tan(camera.fieldOfView * math.Pi / 360)

	local := NewVector(nx*tan*camera.AspectRatio(), ny*tan, -1)

	direction = camera.WorldRotation().MultVec(local).Unit()
	origin = camera.WorldPosition()

	return origin, direction

}

// MouseRayTest casts a ray from the camera through the given screen pixel, out to the camera's far plane,
// against the provided Nodes, and returns the nearest hit (or nil).
func (camera *Camera) MouseRayTest(x, y int, testAgainst ...INode) *RayHit {
	origin, dir := camera.MouseRay(x, y)
	return RayTest(NewRayTestOptionsDirection(origin, dir, camera.far).WithTestAgainst(testAgainst...))
}

// PointInFrustum returns true if the point is between the near and far planes and within the camera's field of view.
func (camera *Camera) PointInFrustum(point Vector) bool {
	clip := camera.WorldToClip(point)
	if clip.W < camera.near || clip.W > camera.far {
		return false
	}
	return math.Abs(clip.X) <= clip.W && math.Abs(clip.Y) <= clip.W
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (camera *Camera) AddChildren(children ...INode) {
	camera.addChildren(camera, children...)
}

// Unparent unparents the Camera from its parent, removing it from the scenegraph.
func (camera *Camera) Unparent() {
	if camera.parent != nil {
		camera.parent.RemoveChildren(camera)
	}
}

// Type returns the NodeType for this object.
func (camera *Camera) Type() NodeType {
	return NodeTypeCamera
}
