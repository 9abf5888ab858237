package viewer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mayjs/mayjs3d"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 400
	testHeight = 300
)

func testOptions(loader func(ctx context.Context, path string) (*mayjs3d.Model, error)) (Options, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return Options{Log: log.NewEntry(logger), LoadModel: loader, Width: testWidth, Height: testHeight}, hook
}

// pixelOf returns the pixel the given world position projects to.
func pixelOf(t *testing.T, camera *mayjs3d.Camera, world mayjs3d.Vector) (int, int) {
	t.Helper()
	screen, ok := camera.WorldToScreenPixels(world)
	require.True(t, ok, "%v is behind the camera", world)
	return int(screen.X), int(screen.Y)
}

func hoverInput(t *testing.T, camera *mayjs3d.Camera, world mayjs3d.Vector) Input {
	x, y := pixelOf(t, camera, world)
	return Input{MouseX: x, MouseY: y}
}

func testShowcaseSettings() ShowcaseSettings {
	settings := DefaultSettings().Showcase
	settings.Models = []ModelSettings{
		{Position: [3]float64{-60, 0, 0}, Scale: 0.5},
		{Position: [3]float64{60, 0, 0}, Scale: 0.5},
	}
	settings.Camera = [3]float64{0, 60, 250}
	settings.DropTime = 0
	return settings
}

func TestShowcaseHover(t *testing.T) {

	opts, _ := testOptions(nil)
	sc := NewShowcase(context.Background(), testShowcaseSettings(), opts)
	t.Cleanup(sc.Dispose)

	require.Len(t, sc.Models, 2)
	left, right := sc.Models[0], sc.Models[1]

	// Placeholder models stand on their origin, so their middle is half their height up.
	leftCenter := mayjs3d.NewVector(-60, 20, 0)
	rightCenter := mayjs3d.NewVector(60, 20, 0)

	sc.Update(1.0/60, hoverInput(t, sc.Camera, leftCenter))
	assert.Equal(t, 0, sc.Hovered())
	assert.InDelta(t, 0.1, left.LocalPosition().Y, 1e-9)

	sc.Update(1.0/60, hoverInput(t, sc.Camera, leftCenter))
	assert.InDelta(t, 0.2, left.LocalPosition().Y, 1e-9, "a hovered model keeps rising")

	sc.Update(1.0/60, hoverInput(t, sc.Camera, rightCenter))
	assert.Equal(t, 1, sc.Hovered())
	assert.InDelta(t, 0, left.LocalPosition().Y, 1e-9, "the previous model drops back down")
	assert.InDelta(t, 0.1, right.LocalPosition().Y, 1e-9)

	sc.Update(1.0/60, Input{})
	assert.Equal(t, -1, sc.Hovered())
	assert.InDelta(t, 0, right.LocalPosition().Y, 1e-9)

}

func TestShowcaseDropIsAnimated(t *testing.T) {

	settings := testShowcaseSettings()
	settings.DropTime = 0.25

	opts, _ := testOptions(nil)
	sc := NewShowcase(context.Background(), settings, opts)
	t.Cleanup(sc.Dispose)

	model := sc.Models[0]
	over := hoverInput(t, sc.Camera, mayjs3d.NewVector(-60, 20, 0))

	for i := 0; i < 10; i++ {
		sc.Update(1.0/60, over)
	}
	require.InDelta(t, 1, model.LocalPosition().Y, 1e-9)

	sc.Update(1.0/60, Input{})
	assert.InDelta(t, 1, model.LocalPosition().Y, 1e-9, "the drop starts on the next frame")

	sc.Update(0.05, Input{})
	y := model.LocalPosition().Y
	assert.Less(t, y, 1.0)

	sc.Update(1, Input{})
	assert.InDelta(t, 0, model.LocalPosition().Y, 1e-4)
	assert.Empty(t, sc.drops)

}

func TestShowcaseOrbitsOnDrag(t *testing.T) {

	opts, _ := testOptions(nil)
	sc := NewShowcase(context.Background(), DefaultSettings().Showcase, opts)
	t.Cleanup(sc.Dispose)

	azimuth, distance := sc.Orbit.Azimuth(), sc.Orbit.Distance()

	sc.Update(1.0/60, Input{DragX: 100})
	assert.InDelta(t, azimuth-0.5, sc.Orbit.Azimuth(), 1e-9)

	sc.Update(1.0/60, Input{Wheel: 1})
	assert.InDelta(t, distance*0.9, sc.Orbit.Distance(), 1e-9)

}

func TestCarouselCentersClickedModel(t *testing.T) {

	settings := DefaultSettings().Carousel
	settings.SlideTime = 0

	opts, _ := testOptions(nil)
	cs := NewCarousel(context.Background(), settings, opts)
	t.Cleanup(cs.Dispose)

	x, y := pixelOf(t, cs.Camera, mayjs3d.NewVector(-40, -23, 0))
	require.True(t, cs.Click(x, y))

	want := []float64{0, 35, 60, 78}
	for i, m := range cs.Models {
		assert.InDelta(t, want[i], m.LocalPosition().X, 1e-9, "model %d", i)
		assert.InDelta(t, -33, m.LocalPosition().Y, 1e-9, "model %d", i)
	}

	assert.False(t, cs.Click(0, 0), "clicking the sky does nothing")
	assert.InDelta(t, 0, cs.Models[0].LocalPosition().X, 1e-9)

}

func TestCarouselSlides(t *testing.T) {

	opts, _ := testOptions(nil)
	cs := NewCarousel(context.Background(), DefaultSettings().Carousel, opts)
	t.Cleanup(cs.Dispose)

	x, y := pixelOf(t, cs.Camera, mayjs3d.NewVector(20, -23, 0))
	cs.Update(1.0/60, Input{MouseX: x, MouseY: y, Clicked: true})
	require.True(t, cs.Sliding())

	cs.Update(0.1, Input{})
	mid := cs.Models[2].LocalPosition().X
	assert.Less(t, mid, 20.0)
	assert.Greater(t, mid, 0.0)

	cs.Update(1, Input{})
	assert.False(t, cs.Sliding())
	assert.InDelta(t, 0, cs.Models[2].LocalPosition().X, 1e-4)
	assert.InDelta(t, -60, cs.Models[0].LocalPosition().X, 1e-4)

}

func TestCarouselLateModelsJoinTheRow(t *testing.T) {

	release := make(chan struct{})
	loader := func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		<-release
		return mayjs3d.NewModel(mayjs3d.NewCubeMesh(40, 80, 40), path), nil
	}

	settings := DefaultSettings().Carousel
	settings.SlideTime = 0
	settings.Models[0].Path = "eggplant.glb"

	opts, _ := testOptions(loader)
	cs := NewCarousel(context.Background(), settings, opts)
	t.Cleanup(cs.Dispose)

	require.Equal(t, 1, cs.Pending())
	assert.Nil(t, cs.Models[0])

	x, y := pixelOf(t, cs.Camera, mayjs3d.NewVector(-5, -23, 0))
	require.True(t, cs.Click(x, y))

	close(release)
	waitForModels(t, func() { cs.Update(0, Input{}) }, cs.stage)

	require.NotNil(t, cs.Models[0])
	assert.InDelta(t, -35, cs.Models[0].LocalPosition().X, 1e-9)
	assert.InDelta(t, 0.25, cs.Models[0].LocalScale().X, 1e-9)

}

func TestViewerLoadFailureIsLogged(t *testing.T) {

	loadErr := errors.New("unsupported file")
	loader := func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		if path == "good.glb" {
			return mayjs3d.NewModel(mayjs3d.NewCubeMesh(10, 10, 10), "good"), nil
		}
		return nil, loadErr
	}

	settings := testShowcaseSettings()
	settings.Models[0].Path = "good.glb"
	settings.Models[1].Path = "bad.glb"

	opts, hook := testOptions(loader)
	sc := NewShowcase(context.Background(), settings, opts)
	t.Cleanup(sc.Dispose)

	waitForModels(t, func() { sc.Update(0, Input{}) }, sc.stage)

	require.NotNil(t, sc.Models[0])
	assert.Nil(t, sc.Models[1])
	assert.InDelta(t, -60, sc.Models[0].LocalPosition().X, 1e-9)
	assert.Same(t, sc.Models[0], sc.Scene.FindNode("good"))

	var warnings []*log.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.WarnLevel {
			warnings = append(warnings, entry)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Data["model"])
	assert.Equal(t, "showcase", warnings[0].Data["viewer"])

	// Hovering over the empty slot's spot finds nothing.
	sc.Update(1.0/60, hoverInput(t, sc.Camera, mayjs3d.NewVector(60, 20, 0)))
	assert.Equal(t, -1, sc.Hovered())

}

func TestDisposeStopsLoads(t *testing.T) {

	started := make(chan struct{})
	loader := func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}

	settings := DefaultSettings().Carousel
	settings.Models = settings.Models[:1]
	settings.Models[0].Path = "slow.glb"

	opts, hook := testOptions(loader)
	cs := NewCarousel(context.Background(), settings, opts)

	<-started
	cs.Dispose()

	time.Sleep(10 * time.Millisecond)
	cs.Update(0, Input{})

	assert.Nil(t, cs.Models[0])
	assert.Equal(t, 1, cs.Pending(), "a cancelled load never completes")
	assert.Empty(t, hook.AllEntries())

}

func TestSettingsValidate(t *testing.T) {

	require.NoError(t, DefaultSettings().Validate())

	settings := DefaultSettings()
	settings.Showcase.Models[2].Scale = 0
	settings.Showcase.MinDistance = 900
	settings.Carousel.FieldOfView = 0

	err := settings.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "showcase.models[2].scale")
	assert.Contains(t, err.Error(), "showcase.max_distance")
	assert.Contains(t, err.Error(), "carousel.field_of_view")

}

func waitForModels(t *testing.T, update func(), s *stage) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("%d models still loading", s.Pending())
		}
		update()
		time.Sleep(time.Millisecond)
	}
}
