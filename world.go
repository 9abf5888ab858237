package mayjs3d

import "math"

// FogMode controls how a World's fog thickens with depth.
type FogMode int

const (
	FogOff    FogMode = iota // No fog
	FogLinear                // Fog blends linearly from FogNear to FogFar
	FogExp2                  // Fog thickens exponentially with squared depth, scaled by FogDensity
)

// World represents a collection of settings that one uses to control lighting and ambience. This includes the screen clear color, fog color,
// mode, and range, whether lighting is globally enabled or not, and finally the ambient lighting level (using the World's AmbientLight).
type World struct {
	Name       string
	ClearColor Color // The color the renderer clears the screen to before drawing the Scene.

	FogColor   Color   // The Color of any fog present in the Scene.
	FogMode    FogMode // The FogMode, indicating how the fog thickens over depth.
	FogNear    float64 // For FogLinear, the depth at which the fog starts.
	FogFar     float64 // For FogLinear, the depth at which the fog is total.
	FogDensity float64 // For FogExp2, how quickly the fog thickens.

	LightingOn   bool          // If lighting is enabled when rendering the scene.
	AmbientLight *AmbientLight // Ambient lighting for this world
}

// NewWorld creates a new World with the specified name and default values for fog, lighting, etc.
func NewWorld(name string) *World {

	return &World{
		Name:         name,
		ClearColor:   NewColor(0.08, 0.09, 0.1, 1),
		FogColor:     NewColor(0, 0, 0, 1),
		FogMode:      FogOff,
		FogNear:      1,
		FogFar:       1000,
		LightingOn:   true,
		AmbientLight: NewAmbientLight("ambient light", 1, 1, 1, 0),
	}

}

// Clone returns a new World with the same properties as the existing World.
func (world *World) Clone() *World {
	newWorld := *world
	newWorld.AmbientLight = NewAmbientLight(world.AmbientLight.name, world.AmbientLight.Color.R, world.AmbientLight.Color.G, world.AmbientLight.Color.B, world.AmbientLight.Energy)
	newWorld.AmbientLight.On = world.AmbientLight.On
	return &newWorld
}

// SetFogExp2 sets the World to use exponential squared fog of the given color and density.
func (world *World) SetFogExp2(color Color, density float64) {
	world.FogMode = FogExp2
	world.FogColor = color
	world.FogDensity = density
}

// SetFogLinear sets the World to use linear fog of the given color between near and far.
func (world *World) SetFogLinear(color Color, near, far float64) {
	world.FogMode = FogLinear
	world.FogColor = color
	world.FogNear = near
	world.FogFar = far
}

// FogFactor returns how much fog covers a point at the given view depth, from 0 (clear) to 1 (fully fogged).
func (world *World) FogFactor(depth float64) float64 {

	switch world.FogMode {

	case FogLinear:
		if world.FogFar <= world.FogNear {
			if depth >= world.FogFar {
				return 1
			}
			return 0
		}
		return clamp((depth-world.FogNear)/(world.FogFar-world.FogNear), 0, 1)

	case FogExp2:
		d := world.FogDensity * depth
		return clamp(1-math.Exp(-d*d), 0, 1)

	}

	return 0

}
