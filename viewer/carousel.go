package viewer

import (
	"context"

	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Carousel lines characters up in a row in front of a fixed camera. Clicking one slides the whole row sideways
// until the clicked character stands in the middle.
type Carousel struct {
	*stage

	settings CarouselSettings
	offset   float64 // How far the row has been shifted along X, in total.

	slide      *gween.Tween
	slideFrom  map[int]float64 // Starting X of each model taking part in the slide.
	slideShift float64
}

// NewCarousel builds the carousel scene and starts loading its models.
func NewCarousel(ctx context.Context, settings CarouselSettings, opts Options) *Carousel {

	cs := &Carousel{settings: settings}

	cs.stage = newStage(ctx, "carousel", settings.Models, opts, func(i int, model *mayjs3d.Model) {
		placeModel(model, settings.Models[i])
		// Models arriving after a click join the row where it now is.
		model.Move(cs.offset, 0, 0)
	})

	world := cs.Scene.World
	world.ClearColor = colors.White()
	world.SetFogLinear(colors.White(), settings.FogNear, settings.FogFar)

	hemi := mayjs3d.NewHemisphereLight("hemisphere light", colors.Sky(), colors.Sand(), 0.6)
	hemi.SetLocalPosition(0, 50, 0)
	cs.Scene.Root.AddChildren(hemi)

	sun := colors.Sunlight()
	dir := mayjs3d.NewDirectionalLight("sun", sun.R, sun.G, sun.B, 1)
	sunPos := mayjs3d.NewVector(-1, 1.75, 1)
	dir.SetLocalPositionVec(sunPos)
	dir.SetLocalRotation(mayjs3d.NewLookAtMatrix(sunPos, mayjs3d.Vector{}, mayjs3d.WorldUp))
	cs.Scene.Root.AddChildren(dir)

	ground := mayjs3d.NewModel(mayjs3d.NewPlaneMesh(settings.GroundSize, settings.GroundSize, 20), "ground")
	ground.Mesh.Material.Color = colors.Sand()
	ground.SetLocalPosition(0, settings.GroundY, 0)
	cs.Scene.Root.AddChildren(ground)

	cs.Camera.SetFieldOfView(settings.FieldOfView)
	cs.Camera.SetNear(settings.Near)
	cs.Camera.SetFar(settings.Far)
	cs.Camera.SetLocalPositionVec(vectorOf(settings.Camera))

	return cs

}

// Update advances the carousel by dt seconds.
func (cs *Carousel) Update(dt float64, in Input) {

	cs.apply()

	if cs.slide != nil {
		t, finished := cs.slide.Update(float32(dt))
		cs.shiftTo(float64(t))
		if finished {
			cs.slide = nil
		}
	}

	if in.Clicked {
		cs.Click(in.MouseX, in.MouseY)
	}

}

// Click centers the model under the given pixel, if there is one, and reports whether one was hit.
func (cs *Carousel) Click(x, y int) bool {

	target, ok := cs.pick(x, y)
	if !ok {
		return false
	}

	// A click during a slide finishes the previous one first.
	if cs.slide != nil {
		cs.shiftTo(1)
		cs.slide = nil
	}

	cs.slideShift = -cs.Models[target].LocalPosition().X
	cs.offset += cs.slideShift

	cs.slideFrom = map[int]float64{}
	for i, m := range cs.Models {
		if m != nil {
			cs.slideFrom[i] = m.LocalPosition().X
		}
	}

	if cs.settings.SlideTime <= 0 {
		cs.shiftTo(1)
		return true
	}

	cs.slide = gween.New(0, 1, float32(cs.settings.SlideTime), ease.InOutQuad)

	return true

}

// Sliding returns true while the row is moving.
func (cs *Carousel) Sliding() bool {
	return cs.slide != nil
}

// shiftTo places every model the given fraction of the way through the current slide.
func (cs *Carousel) shiftTo(t float64) {
	for i, from := range cs.slideFrom {
		m := cs.Models[i]
		m.SetLocalPositionVec(m.LocalPosition().SetX(from + cs.slideShift*t))
	}
}
