// Package viewer holds the two character viewers: a showcase that lifts whichever model the mouse hovers over, and
// a carousel that slides the clicked model to the center of the row.
package viewer

import (
	"context"
	"fmt"

	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/maze"
	log "github.com/sirupsen/logrus"
)

// Options carries what both viewers need from the application.
type Options struct {
	Log       *log.Entry
	LoadModel maze.ModelLoader // Defaults to maze.LoadGLTFModel.
	Width     int
	Height    int
}

// Input is the mouse state a viewer reads each frame.
type Input struct {
	MouseX, MouseY int
	DragX, DragY   float64 // Cursor movement while the left button is held.
	Wheel          float64 // Wheel notches; positive scrolls up.
	Clicked        bool    // The left button went down this frame.
}

type loadedModel struct {
	index int
	res   maze.ModelResult
}

// stage is the scene, camera and model slots shared by both viewers. Slots stay nil until their model arrives.
type stage struct {
	Scene  *mayjs3d.Scene
	Camera *mayjs3d.Camera
	Models []*mayjs3d.Model

	log     *log.Entry
	cancel  context.CancelFunc
	loads   chan loadedModel
	pending int
	place   func(index int, model *mayjs3d.Model)
}

func newStage(ctx context.Context, name string, models []ModelSettings, opts Options, place func(int, *mayjs3d.Model)) *stage {

	if opts.Log == nil {
		opts.Log = log.NewEntry(log.StandardLogger())
	}
	if opts.LoadModel == nil {
		opts.LoadModel = maze.LoadGLTFModel
	}

	ctx, cancel := context.WithCancel(ctx)

	s := &stage{
		Scene:  mayjs3d.NewScene(name),
		Camera: mayjs3d.NewCamera(opts.Width, opts.Height),
		Models: make([]*mayjs3d.Model, len(models)),
		log:    opts.Log.WithField("viewer", name),
		cancel: cancel,
		loads:  make(chan loadedModel, len(models)),
		place:  place,
	}

	s.Scene.Root.AddChildren(s.Camera)

	for i, m := range models {

		if m.Path == "" {
			model := maze.PlaceholderModel(i)
			model.SetName(fmt.Sprintf("model_%d", i))
			s.add(i, model)
			continue
		}

		s.pending++
		results := maze.LoadModelAsync(ctx, m.Path, opts.LoadModel)
		go func(i int) {
			select {
			case res, ok := <-results:
				if ok {
					s.loads <- loadedModel{index: i, res: res}
				}
			case <-ctx.Done():
			}
		}(i)

	}

	return s

}

func (s *stage) add(index int, model *mayjs3d.Model) {
	s.Models[index] = model
	s.place(index, model)
	s.Scene.Root.AddChildren(model)
}

// apply adds any models that finished loading since the last frame.
func (s *stage) apply() {
	for {
		select {
		case l := <-s.loads:
			s.pending--
			if l.res.Err != nil {
				s.log.WithError(l.res.Err).WithField("model", l.index).Warn("Model failed to load")
				continue
			}
			s.add(l.index, l.res.Model)
			s.log.WithField("model", l.index).Debug("Model loaded")
		default:
			return
		}
	}
}

// Pending returns how many models are still loading.
func (s *stage) Pending() int {
	return s.pending
}

// Resize changes the size of the view.
func (s *stage) Resize(w, h int) {
	s.Camera.Resize(w, h)
}

// Dispose stops any loads still in flight.
func (s *stage) Dispose() {
	s.cancel()
}

// pick returns the index of the model under the given pixel.
func (s *stage) pick(x, y int) (int, bool) {

	targets := []mayjs3d.INode{}
	for _, m := range s.Models {
		if m == nil {
			continue
		}
		targets = append(targets, m)
		for _, child := range m.ChildrenRecursive() {
			if cm, ok := child.(*mayjs3d.Model); ok {
				targets = append(targets, cm)
			}
		}
	}

	hit := s.Camera.MouseRayTest(x, y, targets...)
	if hit == nil {
		return -1, false
	}

	// A hit on part of a model counts as a hit on the whole model.
	for node := hit.Object; node != nil; node = node.Parent() {
		for i, m := range s.Models {
			if m != nil && node == mayjs3d.INode(m) {
				return i, true
			}
		}
	}

	return -1, false

}

func placeModel(model *mayjs3d.Model, settings ModelSettings) {
	model.SetLocalPosition(settings.Position[0], settings.Position[1], settings.Position[2])
	model.SetLocalScale(settings.Scale, settings.Scale, settings.Scale)
}
