package maze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/colors"
)

// ErrNoModel is returned when a model file loads but holds nothing to show.
var ErrNoModel = errors.New("maze: model file has no scenes")

// placeholderRadius is the radius of the sphere used for pursuers without a model file. At the default pursuer
// scales it comes out a little smaller than a wall cube.
const placeholderRadius = 40

// ModelLoader loads the Model stored at path.
type ModelLoader func(ctx context.Context, path string) (*mayjs3d.Model, error)

// ModelResult is what LoadModelAsync delivers: a Model, or the error that kept it from loading.
type ModelResult struct {
	Model *mayjs3d.Model
	Err   error
}

// LoadModelAsync calls load on a new goroutine and delivers its single result on the returned channel, which is then
// closed. If ctx is cancelled before the load finishes, the channel is closed without a result.
func LoadModelAsync(ctx context.Context, path string, load ModelLoader) <-chan ModelResult {

	out := make(chan ModelResult, 1)

	go func() {
		defer close(out)
		model, err := load(ctx, path)
		if ctx.Err() != nil {
			return
		}
		out <- ModelResult{Model: model, Err: err}
	}()

	return out

}

// LoadGLTFModel is a ModelLoader reading .gltf and .glb files. The contents of the file's scene are grouped under
// a single Model named after the file.
func LoadGLTFModel(ctx context.Context, path string) (*mayjs3d.Model, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lib, err := mayjs3d.LoadGLTFFile(path, nil)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	model := lib.Model(name)
	if model == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoModel)
	}

	return model, nil

}

// PlaceholderModel returns a colored sphere standing on its origin, used in place of a pursuer model.
func PlaceholderModel(index int) *mayjs3d.Model {
	mesh := mayjs3d.NewIcosphereMesh(placeholderRadius, 2)
	mesh.ApplyMatrix(mayjs3d.NewMatrix4Translate(0, placeholderRadius, 0))
	mesh.Material.Color = colors.Pursuer(index)
	return mayjs3d.NewModel(mesh, fmt.Sprintf("pursuer_%d", index))
}
