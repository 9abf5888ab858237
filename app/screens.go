package app

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mayjs/mayjs3d/maze"
	"github.com/mayjs/mayjs3d/render"
	"github.com/mayjs/mayjs3d/viewer"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const bannerFadeTime = 0.4

// gameScreen runs a maze session. Clicking captures the cursor and starts or resumes the game; releasing the cursor
// pauses it, or sets up a new game once this one is over.
type gameScreen struct {
	session *maze.Session
	cursor  Cursor
	fonts   *Fonts

	captured bool

	banner bannerKind
	alpha  float32
	fade   *gween.Tween
}

func newGameScreen(ctx context.Context, settings maze.Settings, opts maze.SessionOptions, cursor Cursor, fonts *Fonts) (*gameScreen, error) {

	session, err := maze.NewSession(settings, opts)
	if err != nil {
		return nil, err
	}

	if err := session.Setup(ctx); err != nil {
		return nil, err
	}

	g := &gameScreen{
		session: session,
		cursor:  cursor,
		fonts:   fonts,
	}
	g.showBanner(bannerFor(session.State(), session.Paused()))

	return g, nil

}

func (g *gameScreen) Update(dt float64, in Input) error {

	switch {
	case in.EscapePressed && g.cursor.Captured():
		g.cursor.Release()
	case in.LeftJustPressed && !g.cursor.Captured():
		g.cursor.Capture()
		g.session.Start()
	}

	captured := g.cursor.Captured()
	if g.captured && !captured {
		if err := g.session.Pause(); err != nil {
			return err
		}
	}
	g.captured = captured

	if captured {
		g.session.Look(in.MouseDX, in.MouseDY)
	}

	g.session.Tick(dt, in.Intent)

	if kind := bannerFor(g.session.State(), g.session.Paused()); kind != g.banner {
		g.showBanner(kind)
	}

	if g.fade != nil {
		alpha, finished := g.fade.Update(float32(dt))
		g.alpha = alpha
		if finished {
			g.fade = nil
		}
	}

	return nil

}

func (g *gameScreen) showBanner(kind bannerKind) {
	g.banner = kind
	g.alpha = 0
	g.fade = gween.New(0, 1, bannerFadeTime, ease.OutQuad)
}

func (g *gameScreen) Draw(dst *ebiten.Image, renderer *render.Renderer) {
	renderer.Render(dst, g.session.Scene, g.session.Camera)
	if b, ok := banners[g.banner]; ok && g.fonts != nil {
		drawBanner(dst, g.fonts, b, g.alpha)
	}
}

func (g *gameScreen) Resize(w, h int) {
	g.session.Resize(w, h)
}

func (g *gameScreen) Dispose() {
	g.session.Dispose()
	if g.cursor.Captured() {
		g.cursor.Release()
	}
}

// showcaseScreen and carouselScreen draw a viewer's scene and feed it the mouse.
type showcaseScreen struct {
	*viewer.Showcase
}

func (s showcaseScreen) Update(dt float64, in Input) error {
	s.Showcase.Update(dt, in.Viewer())
	return nil
}

func (s showcaseScreen) Draw(dst *ebiten.Image, renderer *render.Renderer) {
	renderer.Render(dst, s.Scene, s.Camera)
}

type carouselScreen struct {
	*viewer.Carousel
}

func (s carouselScreen) Update(dt float64, in Input) error {
	s.Carousel.Update(dt, in.Viewer())
	return nil
}

func (s carouselScreen) Draw(dst *ebiten.Image, renderer *render.Renderer) {
	renderer.Render(dst, s.Scene, s.Camera)
}

// screenEnv is what the route factories need to build screens.
type screenEnv struct {
	maze      maze.Settings
	viewers   viewer.Settings
	log       *log.Entry
	loadModel maze.ModelLoader
	cursor    Cursor
	fonts     *Fonts
	size      func() (int, int)
}

// registerRoutes adds the three screens to router.
func registerRoutes(router *Router, env screenEnv) {

	router.Handle(RouteShowcase, func(ctx context.Context) (Screen, error) {
		w, h := env.size()
		opts := viewer.Options{Log: env.log.WithField("route", RouteShowcase), LoadModel: env.loadModel, Width: w, Height: h}
		return showcaseScreen{viewer.NewShowcase(ctx, env.viewers.Showcase, opts)}, nil
	})

	router.Handle(RouteCarousel, func(ctx context.Context) (Screen, error) {
		w, h := env.size()
		opts := viewer.Options{Log: env.log.WithField("route", RouteCarousel), LoadModel: env.loadModel, Width: w, Height: h}
		return carouselScreen{viewer.NewCarousel(ctx, env.viewers.Carousel, opts)}, nil
	})

	router.Handle(RouteGame, func(ctx context.Context) (Screen, error) {
		w, h := env.size()
		opts := maze.SessionOptions{Log: env.log.WithField("route", RouteGame), LoadModel: env.loadModel, Width: w, Height: h}
		return newGameScreen(ctx, env.maze, opts, env.cursor, env.fonts)
	})

}
