// Package app ties the screens together into an ebiten game: a router switching between the character viewers and
// the maze game, a navigation bar, and the per-frame input and timing.
package app

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mayjs/mayjs3d/internal/config"
	"github.com/mayjs/mayjs3d/maze"
	"github.com/mayjs/mayjs3d/render"
	log "github.com/sirupsen/logrus"
)

// App implements ebiten.Game.
type App struct {
	cfg config.Config
	ctx context.Context
	log *log.Entry

	Router   *Router
	renderer *render.Renderer
	nav      *NavBar
	fonts    *Fonts
	cursor   Cursor
	input    inputSampler

	width, height int
}

// New builds the application and opens the configured starting route.
func New(ctx context.Context, cfg config.Config, entry *log.Entry) (*App, error) {

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		ctx:      ctx,
		log:      entry,
		renderer: render.NewRenderer(cfg.Window.Width, cfg.Window.Height),
		fonts:    fonts,
		cursor:   ebitenCursor{},
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}

	a.Router = NewRouter(entry)
	registerRoutes(a.Router, screenEnv{
		maze:      cfg.Maze,
		viewers:   cfg.Viewer,
		log:       entry,
		loadModel: maze.LoadGLTFModel,
		cursor:    a.cursor,
		fonts:     fonts,
		size:      func() (int, int) { return a.width, a.height },
	})

	a.nav = NewNavBar(
		NavItem{Label: "Characters", Route: RouteShowcase},
		NavItem{Label: "Characters 2", Route: RouteCarousel},
		NavItem{Label: "Maze", Route: RouteGame},
	)

	if err := a.Router.Navigate(ctx, cfg.Route); err != nil {
		return nil, err
	}

	return a, nil

}

// Run opens the window and blocks until it's closed.
func (a *App) Run() error {

	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetFullscreen(a.cfg.Window.Fullscreen)
	if a.cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	defer a.Router.Close()

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	return nil

}

// frameDelta returns the seconds each Update stands for; ebiten calls Update a fixed number of times per second.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

func (a *App) Update() error {

	dt := frameDelta()
	in := a.input.Sample()

	// The bar is out of reach while the cursor is captured by the game.
	if !a.cursor.Captured() {
		if route, clicked := a.nav.Update(dt, in, a.width); clicked {
			in.LeftJustPressed = false
			if err := a.Router.Navigate(a.ctx, route); err != nil {
				a.log.WithError(err).Error("Couldn't open route")
			}
		}
	}

	_, screen := a.Router.Current()
	if screen == nil {
		return nil
	}

	return screen.Update(dt, in)

}

func (a *App) Draw(screen *ebiten.Image) {

	path, current := a.Router.Current()
	if current != nil {
		current.Draw(screen, a.renderer)
	}

	if !a.cursor.Captured() {
		a.nav.Draw(screen, a.fonts.Nav, path)
	}

}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {

	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.renderer.SetSize(outsideWidth, outsideHeight)
		if _, screen := a.Router.Current(); screen != nil {
			screen.Resize(outsideWidth, outsideHeight)
		}
	}

	return a.width, a.height

}
