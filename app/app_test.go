package app

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mayjs/mayjs3d/maze"
	"github.com/mayjs/mayjs3d/render"
	"github.com/mayjs/mayjs3d/viewer"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	name     string
	disposed bool
	w, h     int
}

func (f *fakeScreen) Update(dt float64, in Input) error { return nil }
func (f *fakeScreen) Draw(dst *ebiten.Image, renderer *render.Renderer) {}
func (f *fakeScreen) Resize(w, h int) { f.w, f.h = w, h }
func (f *fakeScreen) Dispose() { f.disposed = true }

type fakeCursor struct{ captured bool }

func (c *fakeCursor) Capture() { c.captured = true }
func (c *fakeCursor) Release() { c.captured = false }
func (c *fakeCursor) Captured() bool { return c.captured }

func testLog() (*log.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return log.NewEntry(logger), hook
}

func TestRouterNavigate(t *testing.T) {

	entry, hook := testLog()
	router := NewRouter(entry)

	built := map[string]int{}
	screens := map[string]*fakeScreen{}
	for _, path := range []string{RouteShowcase, RouteCarousel} {
		path := path
		router.Handle(path, func(ctx context.Context) (Screen, error) {
			built[path]++
			s := &fakeScreen{name: path}
			screens[path] = s
			return s, nil
		})
	}

	assert.Equal(t, []string{RouteShowcase, RouteCarousel}, router.Routes())

	path, screen := router.Current()
	assert.Empty(t, path)
	assert.Nil(t, screen)

	require.NoError(t, router.Navigate(context.Background(), RouteShowcase))
	first := screens[RouteShowcase]

	require.NoError(t, router.Navigate(context.Background(), RouteShowcase))
	assert.Equal(t, 1, built[RouteShowcase], "navigating to the current route keeps the screen")

	require.NoError(t, router.Navigate(context.Background(), RouteCarousel))
	assert.True(t, first.disposed)

	path, screen = router.Current()
	assert.Equal(t, RouteCarousel, path)
	assert.Same(t, screens[RouteCarousel], screen)

	err := router.Navigate(context.Background(), "/nowhere")
	assert.ErrorIs(t, err, ErrUnknownRoute)
	path, _ = router.Current()
	assert.Equal(t, RouteCarousel, path)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, RouteCarousel, hook.LastEntry().Data["to"])

	router.Close()
	assert.True(t, screens[RouteCarousel].disposed)

}

func TestRouterKeepsScreenWhenFactoryFails(t *testing.T) {

	entry, _ := testLog()
	router := NewRouter(entry)

	current := &fakeScreen{}
	router.Handle(RouteShowcase, func(ctx context.Context) (Screen, error) { return current, nil })
	router.Handle(RouteGame, func(ctx context.Context) (Screen, error) { return nil, errors.New("broken") })

	require.NoError(t, router.Navigate(context.Background(), RouteShowcase))
	require.Error(t, router.Navigate(context.Background(), RouteGame))

	path, screen := router.Current()
	assert.Equal(t, RouteShowcase, path)
	assert.Same(t, current, screen)
	assert.False(t, current.disposed)

}

func TestIntentFromKeys(t *testing.T) {

	pressed := func(keys ...ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, p := range keys {
				if p == k {
					return true
				}
			}
			return false
		}
	}

	assert.Equal(t, maze.MoveIntent{}, intentFromKeys(pressed()))
	assert.Equal(t, maze.MoveIntent{Forward: true}, intentFromKeys(pressed(ebiten.KeyW)))
	assert.Equal(t, maze.MoveIntent{Forward: true}, intentFromKeys(pressed(ebiten.KeyArrowUp)))
	assert.Equal(t, maze.MoveIntent{Backward: true, Right: true}, intentFromKeys(pressed(ebiten.KeyS, ebiten.KeyArrowRight)))
	assert.Equal(t, maze.MoveIntent{Left: true}, intentFromKeys(pressed(ebiten.KeyArrowLeft, ebiten.KeyQ)))

}

func TestInputViewer(t *testing.T) {

	click := Input{MouseX: 10, MouseY: 20, MouseDX: 5, MouseDY: 3, LeftPressed: true, LeftJustPressed: true}
	assert.Equal(t, viewer.Input{MouseX: 10, MouseY: 20, Clicked: true}, click.Viewer())

	drag := Input{MouseX: 15, MouseY: 23, MouseDX: 5, MouseDY: 3, LeftPressed: true, Wheel: -1}
	assert.Equal(t, viewer.Input{MouseX: 15, MouseY: 23, DragX: 5, DragY: 3, Wheel: -1}, drag.Viewer())

	hover := Input{MouseDX: 5}
	assert.Zero(t, hover.Viewer().DragX)

}

func TestNavBarSlides(t *testing.T) {

	nav := NewNavBar(
		NavItem{Label: "a", Route: RouteShowcase},
		NavItem{Label: "b", Route: RouteCarousel},
		NavItem{Label: "c", Route: RouteGame},
	)
	hidden := hiddenOffset()
	require.Equal(t, hidden, nav.Offset())

	// The bottom of the window is nowhere near the bar.
	_, clicked := nav.Update(0.1, Input{MouseX: 10, MouseY: 400, LeftJustPressed: true}, 300)
	assert.False(t, clicked)
	assert.False(t, nav.Open())

	nav.Update(0.1, Input{MouseX: 10, MouseY: 5}, 300)
	assert.True(t, nav.Open())
	assert.Greater(t, nav.Offset(), hidden)
	assert.Less(t, nav.Offset(), 0.0)

	nav.Update(1, Input{MouseX: 10, MouseY: 5}, 300)
	assert.Zero(t, nav.Offset())

	// Fully open, the whole bar is clickable.
	route, clicked := nav.Update(0.1, Input{MouseX: 250, MouseY: navHeight - 2, LeftJustPressed: true}, 300)
	require.True(t, clicked)
	assert.Equal(t, RouteGame, route)

	route, clicked = nav.Update(0.1, Input{MouseX: 120, MouseY: 30, LeftJustPressed: true}, 300)
	require.True(t, clicked)
	assert.Equal(t, RouteCarousel, route)

	nav.Update(0.1, Input{MouseX: 120, MouseY: 200}, 300)
	assert.False(t, nav.Open())
	nav.Update(1, Input{MouseX: 120, MouseY: 200}, 300)
	assert.InDelta(t, hidden, nav.Offset(), 1e-4)

}

func TestBannerFor(t *testing.T) {
	assert.Equal(t, bannerReady, bannerFor(maze.NotStarted, false))
	assert.Equal(t, bannerReady, bannerFor(maze.Running, true))
	assert.Equal(t, bannerNone, bannerFor(maze.Running, false))
	assert.Equal(t, bannerLost, bannerFor(maze.Lost, false))
	assert.Equal(t, bannerWon, bannerFor(maze.Won, true))
	assert.Len(t, banners, 3)
}

func newTestGameScreen(t *testing.T) (*gameScreen, *fakeCursor) {
	t.Helper()
	entry, _ := testLog()
	cursor := &fakeCursor{}
	g, err := newGameScreen(context.Background(), maze.DefaultSettings(), maze.SessionOptions{Log: entry, Width: 320, Height: 240}, cursor, nil)
	require.NoError(t, err)
	t.Cleanup(g.Dispose)
	return g, cursor
}

func TestGameScreenPointerLock(t *testing.T) {

	g, cursor := newTestGameScreen(t)
	s := g.session

	require.NoError(t, g.Update(0.016, Input{Intent: maze.MoveIntent{Forward: true}}))
	assert.Equal(t, maze.NotStarted, s.State())
	assert.Equal(t, bannerReady, g.banner)

	require.NoError(t, g.Update(0.016, Input{LeftJustPressed: true}))
	assert.True(t, cursor.captured)
	assert.Equal(t, maze.Running, s.State())
	assert.Equal(t, bannerNone, g.banner)

	yaw := s.Player.Yaw()
	require.NoError(t, g.Update(0.016, Input{MouseDX: 10}))
	assert.InDelta(t, yaw-10*s.Settings.LookSensitivity, s.Player.Yaw(), 1e-9)

	require.NoError(t, g.Update(0.016, Input{EscapePressed: true}))
	assert.False(t, cursor.captured)
	assert.True(t, s.Paused())
	assert.Equal(t, bannerReady, g.banner)

	// Mouse movement while paused doesn't turn the player.
	yaw = s.Player.Yaw()
	require.NoError(t, g.Update(0.016, Input{MouseDX: 10}))
	assert.Equal(t, yaw, s.Player.Yaw())

	require.NoError(t, g.Update(0.016, Input{LeftJustPressed: true}))
	assert.False(t, s.Paused())

}

func TestGameScreenCursorTakenAway(t *testing.T) {

	g, cursor := newTestGameScreen(t)

	require.NoError(t, g.Update(0.016, Input{LeftJustPressed: true}))

	// The browser releases the pointer itself when Escape is pressed.
	cursor.captured = false
	require.NoError(t, g.Update(0.016, Input{}))
	assert.True(t, g.session.Paused())

}

func TestGameScreenRestartsAfterGameOver(t *testing.T) {

	g, cursor := newTestGameScreen(t)
	s := g.session
	firstID := s.ID

	require.NoError(t, g.Update(0.016, Input{LeftJustPressed: true}))

	door := s.Layout.Door.Position
	s.Player.Camera.SetLocalPosition(door.X-20, door.Y, door.Z)

	require.NoError(t, g.Update(0.016, Input{}))
	require.Equal(t, maze.Won, s.State())
	assert.Equal(t, bannerWon, g.banner)

	require.NoError(t, g.Update(0.016, Input{EscapePressed: true}))
	assert.False(t, cursor.captured)
	assert.Equal(t, maze.NotStarted, s.State())
	assert.NotEqual(t, firstID, s.ID)
	assert.Equal(t, bannerReady, g.banner)

}

func TestGameScreenBannerFades(t *testing.T) {

	g, _ := newTestGameScreen(t)

	assert.Zero(t, g.alpha)
	require.NoError(t, g.Update(0.1, Input{}))
	assert.Greater(t, g.alpha, float32(0))
	assert.Less(t, g.alpha, float32(1))

	require.NoError(t, g.Update(1, Input{}))
	assert.InDelta(t, 1, g.alpha, 1e-6)

}

func TestRegisteredRoutes(t *testing.T) {

	entry, _ := testLog()
	router := NewRouter(entry)

	registerRoutes(router, screenEnv{
		maze:    maze.DefaultSettings(),
		viewers: viewer.DefaultSettings(),
		log:     entry,
		cursor:  &fakeCursor{},
		size:    func() (int, int) { return 320, 240 },
	})
	t.Cleanup(router.Close)

	assert.Equal(t, []string{RouteShowcase, RouteCarousel, RouteGame}, router.Routes())

	for _, path := range router.Routes() {
		require.NoError(t, router.Navigate(context.Background(), path), path)
		_, screen := router.Current()
		require.NoError(t, screen.Update(0.016, Input{}), path)
		screen.Resize(640, 480)
	}

	_, screen := router.Current()
	game, ok := screen.(*gameScreen)
	require.True(t, ok)
	w, h := game.session.Camera.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

}

func TestFrameDelta(t *testing.T) {
	assert.InDelta(t, 1.0/ebiten.DefaultTPS, frameDelta(), 1e-12)
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	require.NoError(t, err)
	assert.NotNil(t, fonts.Title)
	assert.NotNil(t, fonts.Hint)
	assert.NotNil(t, fonts.Nav)
}
