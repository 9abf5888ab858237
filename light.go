package mayjs3d

import (
	"math"
)

// ILight represents an interface that is fulfilled by an object that emits light, returning the color a vertex should be given
// that vertex's world position and world normal.
type ILight interface {
	INode
	// beginRender caches anything the light needs per frame (world position, facing) so Light can be called per vertex cheaply.
	beginRender()
	// Light returns the R, G, and B contribution of the light to a surface point at the given world position with the given world normal.
	Light(position, normal Vector) (float32, float32, float32)
	// IsOn returns if the light is on.
	IsOn() bool
	// SetOn sets the light to be on or off.
	SetOn(on bool)
}

//---------------//

// AmbientLight represents an ambient light that colors the entire Scene.
type AmbientLight struct {
	*Node
	Color Color // Color is the color of the AmbientLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience.
	Energy float32
	On     bool // If the light is on and contributing to the scene.
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, r, g, b, energy float32) *AmbientLight {
	return &AmbientLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

func (amb *AmbientLight) beginRender() {}

// Light returns the light level for the ambient light. It doesn't use the provided position or normal.
func (amb *AmbientLight) Light(position, normal Vector) (float32, float32, float32) {
	return amb.Color.R * amb.Energy, amb.Color.G * amb.Energy, amb.Color.B * amb.Energy
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (amb *AmbientLight) AddChildren(children ...INode) {
	amb.addChildren(amb, children...)
}

// Unparent unparents the AmbientLight from its parent, removing it from the scenegraph.
func (amb *AmbientLight) Unparent() {
	if amb.parent != nil {
		amb.parent.RemoveChildren(amb)
	}
}

func (amb *AmbientLight) IsOn() bool { return amb.On }
func (amb *AmbientLight) SetOn(on bool) { amb.On = on }
func (amb *AmbientLight) Type() NodeType { return NodeTypeAmbientLight }

//---------------//

// HemisphereLight lights surfaces with a sky color from above and a ground color from below, blending by how far
// the surface normal points upwards.
type HemisphereLight struct {
	*Node
	SkyColor    Color
	GroundColor Color
	Energy      float32
	On          bool
}

// NewHemisphereLight returns a new HemisphereLight.
func NewHemisphereLight(name string, sky, ground Color, energy float32) *HemisphereLight {
	return &HemisphereLight{
		Node:        NewNode(name),
		SkyColor:    sky,
		GroundColor: ground,
		Energy:      energy,
		On:          true,
	}
}

func (hemi *HemisphereLight) beginRender() {}

// Light returns the R, G, and B values for the hemisphere light given the world normal provided.
func (hemi *HemisphereLight) Light(position, normal Vector) (float32, float32, float32) {
	w := float32(0.5*normal.Unit().Y + 0.5)
	c := hemi.GroundColor.Mix(hemi.SkyColor, w)
	return c.R * hemi.Energy, c.G * hemi.Energy, c.B * hemi.Energy
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (hemi *HemisphereLight) AddChildren(children ...INode) {
	hemi.addChildren(hemi, children...)
}

// Unparent unparents the HemisphereLight from its parent, removing it from the scenegraph.
func (hemi *HemisphereLight) Unparent() {
	if hemi.parent != nil {
		hemi.parent.RemoveChildren(hemi)
	}
}

func (hemi *HemisphereLight) IsOn() bool { return hemi.On }
func (hemi *HemisphereLight) SetOn(on bool) { hemi.On = on }
func (hemi *HemisphereLight) Type() NodeType { return NodeTypeHemisphereLight }

//---------------//

// PointLight represents a point light of infinite point-ness.
type PointLight struct {
	*Node
	Distance float64 // Distance represents the distance after which the light fully attenuates. If this is 0 (the default), it falls off using something akin to the inverse square law.
	Color    Color   // Color is the color of the PointLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience.
	Energy float32
	On     bool // If the light is on and contributing to the scene.

	worldPosition Vector
}

// NewPointLight creates a new Point light.
func NewPointLight(name string, r, g, b, energy float32) *PointLight {
	return &PointLight{
		Node:     NewNode(name),
		Distance: 0,
		Energy:   energy,
		Color:    NewColor(r, g, b, 1),
		On:       true,
	}
}

func (point *PointLight) beginRender() {
	point.worldPosition = point.WorldPosition()
}

// Light returns the R, G, and B values for the point light given the world position and normal provided.
func (point *PointLight) Light(position, normal Vector) (float32, float32, float32) {
	f := float32(pointAttenuation(point.worldPosition, position, normal, point.Distance)) * point.Energy
	return point.Color.R * f, point.Color.G * f, point.Color.B * f
}

func pointAttenuation(lightPos, vertPos, normal Vector, maxDistance float64) float64 {

	lightVec := lightPos.Sub(vertPos).Unit()

	diffuse := normal.Dot(lightVec)
	if diffuse < 0 {
		diffuse = 0
	}

	distance := lightPos.DistanceSquared(vertPos)

	if maxDistance == 0 {
		return diffuse * (1.0 / (1.0 + (0.1 * distance))) * 2
	}

	pd := maxDistance * maxDistance
	return diffuse * math.Max(math.Min(1.0-math.Pow(distance/pd, 4), 1), 0)

}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (point *PointLight) AddChildren(children ...INode) {
	point.addChildren(point, children...)
}

// Unparent unparents the PointLight from its parent, removing it from the scenegraph.
func (point *PointLight) Unparent() {
	if point.parent != nil {
		point.parent.RemoveChildren(point)
	}
}

func (point *PointLight) IsOn() bool { return point.On }
func (point *PointLight) SetOn(on bool) { point.On = on }
func (point *PointLight) Type() NodeType { return NodeTypePointLight }

//---------------//

// SpotLight is a PointLight restricted to a cone. It shines down its local -Z axis, so a SpotLight parented to a Camera
// with no rotation of its own lights whatever the Camera looks at.
type SpotLight struct {
	*Node
	Distance float64 // Distance after which the light fully attenuates; 0 uses inverse-square-like falloff.
	Angle    float64 // Angle is the half-angle of the cone in radians.
	Penumbra float64 // Penumbra is the fraction (0 to 1) of the cone that fades out towards its edge.
	Color    Color
	Energy   float32
	On       bool

	worldPosition Vector
	direction     Vector
}

// NewSpotLight creates a new SpotLight with a cone half-angle of 60 degrees.
func NewSpotLight(name string, r, g, b, energy float32) *SpotLight {
	return &SpotLight{
		Node:   NewNode(name),
		Angle:  math.Pi / 3,
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

func (spot *SpotLight) beginRender() {
	spot.worldPosition = spot.WorldPosition()
	spot.direction = spot.WorldRotation().Forward().Invert()
}

// Light returns the R, G, and B values for the spot light given the world position and normal provided.
func (spot *SpotLight) Light(position, normal Vector) (float32, float32, float32) {

	toVert := position.Sub(spot.worldPosition).Unit()
	cos := toVert.Dot(spot.direction)
	outer := math.Cos(spot.Angle)

	if cos <= outer {
		return 0, 0, 0
	}

	inner := math.Cos(spot.Angle * (1 - clamp(spot.Penumbra, 0, 1)))
	cone := 1.0
	if inner > outer && cos < inner {
		cone = (cos - outer) / (inner - outer)
		cone = cone * cone * (3 - 2*cone)
	}

	f := float32(pointAttenuation(spot.worldPosition, position, normal, spot.Distance)*cone) * spot.Energy
	return spot.Color.R * f, spot.Color.G * f, spot.Color.B * f

}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (spot *SpotLight) AddChildren(children ...INode) {
	spot.addChildren(spot, children...)
}

// Unparent unparents the SpotLight from its parent, removing it from the scenegraph.
func (spot *SpotLight) Unparent() {
	if spot.parent != nil {
		spot.parent.RemoveChildren(spot)
	}
}

func (spot *SpotLight) IsOn() bool { return spot.On }
func (spot *SpotLight) SetOn(on bool) { spot.On = on }
func (spot *SpotLight) Type() NodeType { return NodeTypeSpotLight }

//---------------//

// DirectionalLight represents a directional light of infinite distance. It shines down its local -Z axis.
type DirectionalLight struct {
	*Node
	Color Color // Color is the color of the DirectionalLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience.
	Energy float32
	On     bool // If the light is on and contributing to the scene.

	forward Vector // internal forward vector so we don't have to calculate it for every vertex for every model using this light
}

// NewDirectionalLight creates a new Directional Light with the specified RGB color and energy (assuming 1.0 energy is standard / "100%" lighting).
func NewDirectionalLight(name string, r, g, b, energy float32) *DirectionalLight {
	return &DirectionalLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
}

func (sun *DirectionalLight) beginRender() {
	sun.forward = sun.WorldRotation().Forward()
}

// Light returns the R, G, and B values for the directional light given the world normal provided.
func (sun *DirectionalLight) Light(position, normal Vector) (float32, float32, float32) {
	diffuseFactor := float32(math.Max(normal.Dot(sun.forward), 0.0)) * sun.Energy
	return sun.Color.R * diffuseFactor, sun.Color.G * diffuseFactor, sun.Color.B * diffuseFactor
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (sun *DirectionalLight) AddChildren(children ...INode) {
	sun.addChildren(sun, children...)
}

// Unparent unparents the DirectionalLight from its parent, removing it from the scenegraph.
func (sun *DirectionalLight) Unparent() {
	if sun.parent != nil {
		sun.parent.RemoveChildren(sun)
	}
}

func (sun *DirectionalLight) IsOn() bool { return sun.On }
func (sun *DirectionalLight) SetOn(on bool) { sun.On = on }
func (sun *DirectionalLight) Type() NodeType { return NodeTypeDirectionalLight }

// BeginLighting prepares every light given for a frame of Light calls.
func BeginLighting(lights []ILight) {
	for _, l := range lights {
		l.beginRender()
	}
}

// LightVertex sums the contribution of every light that is on for a surface point.
func LightVertex(lights []ILight, position, normal Vector) Color {
	out := NewColor(0, 0, 0, 1)
	for _, l := range lights {
		if !l.IsOn() {
			continue
		}
		r, g, b := l.Light(position, normal)
		out.R += r
		out.G += g
		out.B += b
	}
	return out
}
