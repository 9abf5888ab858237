package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mayjs/mayjs3d/render"
	log "github.com/sirupsen/logrus"
)

const (
	RouteShowcase = "/"
	RouteCarousel = "/mayjs-character2"
	RouteGame     = "/mayjs-game"
)

// ErrUnknownRoute is returned when navigating to a path no screen is registered for.
var ErrUnknownRoute = errors.New("unknown route")

// Screen is one page of the application. Only the current screen is updated and drawn.
type Screen interface {
	Update(dt float64, in Input) error
	Draw(dst *ebiten.Image, renderer *render.Renderer)
	Resize(w, h int)
	Dispose()
}

// ScreenFactory builds the screen for a route each time it's navigated to.
type ScreenFactory func(ctx context.Context) (Screen, error)

// Router maps paths to screens and owns the current one.
type Router struct {
	routes map[string]ScreenFactory
	order  []string

	path   string
	screen Screen

	log *log.Entry
}

func NewRouter(entry *log.Entry) *Router {
	return &Router{
		routes: map[string]ScreenFactory{},
		log:    entry,
	}
}

// Handle registers the factory for path, replacing any earlier one.
func (r *Router) Handle(path string, factory ScreenFactory) {
	if _, exists := r.routes[path]; !exists {
		r.order = append(r.order, path)
	}
	r.routes[path] = factory
}

// Routes returns the registered paths in the order they were registered.
func (r *Router) Routes() []string {
	return append([]string(nil), r.order...)
}

// Has returns true if a screen is registered for path.
func (r *Router) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Navigate switches to the screen for path. The new screen is built before the old one is disposed, so a
// failure leaves the current screen in place. Navigating to the current path does nothing.
func (r *Router) Navigate(ctx context.Context, path string) error {

	factory, ok := r.routes[path]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	if r.screen != nil && path == r.path {
		return nil
	}

	screen, err := factory(ctx)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if r.screen != nil {
		r.screen.Dispose()
	}

	r.log.WithFields(log.Fields{"from": r.path, "to": path}).Info("Navigated")

	r.path = path
	r.screen = screen

	return nil

}

// Current returns the current path and screen; the screen is nil before the first Navigate.
func (r *Router) Current() (string, Screen) {
	return r.path, r.screen
}

// Close disposes the current screen.
func (r *Router) Close() {
	if r.screen != nil {
		r.screen.Dispose()
		r.screen = nil
		r.path = ""
	}
}
