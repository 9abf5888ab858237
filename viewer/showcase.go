package viewer

import (
	"context"

	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Showcase shows a handful of characters standing on the ground. The camera orbits the origin while the mouse
// drags, and the character under the cursor floats upwards until the cursor leaves it.
type Showcase struct {
	*stage
	Orbit *Orbit

	settings ShowcaseSettings
	hovered  int
	drops    map[int]*gween.Tween
}

// NewShowcase builds the showcase scene and starts loading its models.
func NewShowcase(ctx context.Context, settings ShowcaseSettings, opts Options) *Showcase {

	sc := &Showcase{
		settings: settings,
		hovered:  -1,
		drops:    map[int]*gween.Tween{},
	}

	sc.stage = newStage(ctx, "showcase", settings.Models, opts, func(i int, model *mayjs3d.Model) {
		placeModel(model, settings.Models[i])
	})

	world := sc.Scene.World
	world.ClearColor = colors.ShowcaseBackground()

	ground := mayjs3d.NewModel(mayjs3d.NewPlaneMesh(settings.GroundSize, settings.GroundSize, 20), "ground")
	ground.Mesh.Material.Color = colors.Grass()
	sc.Scene.Root.AddChildren(ground)

	light := mayjs3d.NewSpotLight("spot light", 1, 1, 1, 1)
	light.Angle = mayjs3d.ToRadians(30)
	light.Penumbra = 0.3
	light.Distance = 500
	lightPos := vectorOf(settings.Light)
	light.SetLocalPositionVec(lightPos)
	light.SetLocalRotation(mayjs3d.NewLookAtMatrix(lightPos, mayjs3d.Vector{}, mayjs3d.WorldUp))
	sc.Scene.Root.AddChildren(light)

	// The spot light's cone only reaches the middle of the ground, so a little ambient keeps the rest visible.
	world.AmbientLight.Energy = 0.15

	sc.Camera.SetFieldOfView(settings.FieldOfView)
	sc.Camera.SetNear(settings.Near)
	sc.Camera.SetFar(settings.Far)
	sc.Camera.SetLocalPositionVec(vectorOf(settings.Camera))
	sc.Orbit = NewOrbit(sc.Camera, mayjs3d.Vector{}, settings.MinDistance, settings.MaxDistance, settings.MaxPolarAngle)

	return sc

}

// Update advances the showcase by dt seconds.
func (sc *Showcase) Update(dt float64, in Input) {

	sc.apply()

	if in.DragX != 0 || in.DragY != 0 {
		sc.Orbit.Rotate(-in.DragX*sc.settings.OrbitSensitivity, -in.DragY*sc.settings.OrbitSensitivity)
	}

	if in.Wheel != 0 {
		sc.Orbit.Zoom(1 - in.Wheel*sc.settings.ZoomStep)
	}

	for i, tween := range sc.drops {
		y, finished := tween.Update(float32(dt))
		model := sc.Models[i]
		model.SetLocalPositionVec(model.LocalPosition().SetY(float64(y)))
		if finished {
			delete(sc.drops, i)
		}
	}

	sc.hover(in.MouseX, in.MouseY)

}

// Hovered returns the index of the model under the cursor, or -1.
func (sc *Showcase) Hovered() int {
	return sc.hovered
}

func (sc *Showcase) hover(x, y int) {

	target, ok := sc.pick(x, y)

	if !ok {
		if sc.hovered >= 0 {
			sc.drop(sc.hovered)
			sc.hovered = -1
		}
		return
	}

	if sc.hovered >= 0 && sc.hovered != target {
		sc.drop(sc.hovered)
	}

	delete(sc.drops, target)
	model := sc.Models[target]
	model.Move(0, sc.settings.HoverLift, 0)
	sc.hovered = target

}

// drop settles a model back onto its resting height.
func (sc *Showcase) drop(index int) {

	model := sc.Models[index]
	rest := sc.settings.Models[index].Position[1]

	if sc.settings.DropTime <= 0 {
		model.SetLocalPositionVec(model.LocalPosition().SetY(rest))
		return
	}

	sc.drops[index] = gween.New(float32(model.LocalPosition().Y), float32(rest), float32(sc.settings.DropTime), ease.OutBounce)

}

func vectorOf(v [3]float64) mayjs3d.Vector {
	return mayjs3d.NewVector(v[0], v[1], v[2])
}
