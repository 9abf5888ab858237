package maze

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/colors"
	log "github.com/sirupsen/logrus"
)

// SessionOptions holds the collaborators of a Session. Zero values are replaced with defaults.
type SessionOptions struct {
	Log *log.Entry
	// Rand draws every random number of the Session; defaults to one seeded from the clock.
	Rand *rand.Rand
	// LoadModel loads pursuer models; defaults to LoadGLTFModel.
	LoadModel ModelLoader
	// Width and Height are the initial size of the Camera's view.
	Width, Height int
}

type assetResult struct {
	index int
	ModelResult
}

// Session is one playthrough of the maze. It owns the Scene, the Camera, the collidable Obstacles and the actors.
// All methods must be called from the game goroutine; model loads run on their own goroutines and are applied at
// the start of the next Tick.
type Session struct {
	ID       string
	Settings Settings

	Scene    *mayjs3d.Scene
	Camera   *mayjs3d.Camera
	Layout   *Layout
	Oracle   *Oracle
	Player   *Player
	Pursuers []*Pursuer // Indexed like Settings.Pursuers; nil until the pursuer's model has loaded.

	grid      *Grid
	state     State
	paused    bool
	disposed  bool
	baseLog   *log.Entry
	log       *log.Entry
	rng       *rand.Rand
	loadModel ModelLoader

	width, height int

	parent  context.Context
	cancel  context.CancelFunc
	assets  chan assetResult
	pending int
}

// NewSession validates the Settings and returns a Session ready for Setup.
func NewSession(settings Settings, options SessionOptions) (*Session, error) {

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("maze settings: %w", err)
	}

	grid, err := settings.LoadGrid()
	if err != nil {
		return nil, err
	}

	if options.Log == nil {
		options.Log = log.NewEntry(log.StandardLogger())
	}

	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if options.LoadModel == nil {
		options.LoadModel = LoadGLTFModel
	}

	return &Session{
		Settings:  settings,
		grid:      grid,
		baseLog:   options.Log,
		log:       options.Log,
		rng:       options.Rand,
		loadModel: options.LoadModel,
		width:     max(options.Width, 1),
		height:    max(options.Height, 1),
		disposed:  true,
	}, nil

}

// Setup builds a fresh game: the maze, its lights, the player and the pursuers, starting any model loads.
// Calling Setup on a Session that is already set up discards the previous game first.
func (s *Session) Setup(ctx context.Context) error {

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("maze setup: %w", err)
	}

	if !s.disposed {
		s.Dispose()
	}

	s.ID = uuid.NewString()
	s.log = s.baseLog.WithField("session", s.ID)

	s.parent = ctx
	var loadCtx context.Context
	loadCtx, s.cancel = context.WithCancel(ctx)
	s.assets = make(chan assetResult, len(s.Settings.Pursuers))
	s.pending = 0

	s.state = NotStarted
	s.paused = false
	s.disposed = false

	settings := s.Settings

	s.Scene = mayjs3d.NewScene("maze")
	world := s.Scene.World
	world.SetFogExp2(colors.Fog(), settings.FogDensity)
	world.ClearColor = colors.Fog()

	s.Camera = mayjs3d.NewCamera(s.width, s.height)
	s.Camera.SetFieldOfView(settings.FieldOfView)
	s.Camera.SetNear(settings.Near)
	s.Camera.SetFar(settings.Far)
	s.Camera.SetLocalPosition(0, settings.WallHeight/2, 0)
	s.Scene.Root.AddChildren(s.Camera)

	s.Player = NewPlayer(s.Camera, settings.Player, settings.WallHeight/2)

	s.Layout = Build(s.grid, settings.WallWidth, settings.WallHeight)
	s.Oracle = NewOracle(s.Layout.Obstacles()...)

	s.addLevel()
	s.addLights()

	s.Pursuers = make([]*Pursuer, len(settings.Pursuers))

	for i, p := range settings.Pursuers {

		if p.Model == "" {
			s.addPursuer(i, PlaceholderModel(i))
			continue
		}

		s.pending++

		go func(index int, results <-chan ModelResult, assets chan<- assetResult) {
			res, ok := <-results
			if !ok {
				return
			}
			select {
			case assets <- assetResult{index: index, ModelResult: res}:
			case <-loadCtx.Done():
			}
		}(i, LoadModelAsync(loadCtx, p.Model, s.loadModel), s.assets)

	}

	s.log.WithFields(log.Fields{
		"walls":     len(s.Layout.Walls),
		"obstacles": s.Oracle.Len(),
		"loading":   s.pending,
	}).Info("maze session set up")

	return nil

}

func (s *Session) addLevel() {

	layout := s.Layout
	root := s.Scene.Root

	wallMesh := obstacleMesh(mayjs3d.NewVector(layout.WallWidth, layout.WallHeight, layout.WallWidth))
	wallMesh.Material.Color = colors.Hedge()

	for _, wall := range layout.Walls {
		m := mayjs3d.NewModel(wallMesh, "wall")
		m.SetLocalPositionVec(wall.Position)
		root.AddChildren(m)
	}

	for i, perim := range layout.Perimeter {
		mesh := obstacleMesh(perim.Size)
		mesh.Material.Color = colors.Perimeter()
		m := mayjs3d.NewModel(mesh, fmt.Sprintf("perimeter_%d", i))
		m.SetLocalPositionVec(perim.Position)
		root.AddChildren(m)
	}

	doorMesh := obstacleMesh(layout.Door.Size)
	doorMesh.Material.Color = colors.Door()
	door := mayjs3d.NewModel(doorMesh, "door")
	door.SetLocalPositionVec(layout.Door.Position)
	root.AddChildren(door)

	groundMesh := mayjs3d.NewPlaneMesh(layout.MapSize, layout.MapSize, 20)
	groundMesh.Material.Color = colors.Grass()
	root.AddChildren(mayjs3d.NewModel(groundMesh, "ground"))

}

// obstacleMesh returns a box Mesh of the given size; a size with no thickness along X or Z gives a double-sided wall plane instead.
func obstacleMesh(size mayjs3d.Vector) *mayjs3d.Mesh {

	switch {

	case size.X == 0:
		mesh := mayjs3d.NewPlaneMesh(size.Y, size.Z, 10)
		mesh.ApplyMatrix(mayjs3d.NewMatrix4Rotate(0, 0, 1, math.Pi/2))
		return mesh

	case size.Z == 0:
		mesh := mayjs3d.NewPlaneMesh(size.X, size.Y, 10)
		mesh.ApplyMatrix(mayjs3d.NewMatrix4Rotate(1, 0, 0, math.Pi/2))
		return mesh

	}

	return mayjs3d.NewCubeMesh(size.X, size.Y, size.Z)

}

func (s *Session) addLights() {

	settings := s.Settings
	halfMap := s.Layout.MapSize / 2

	s.Scene.Root.AddChildren(mayjs3d.NewHemisphereLight("hemisphere", colors.HemisphereSky(), colors.HemisphereGround(), 0.2))

	flashlight := mayjs3d.NewSpotLight("flashlight", 1, 1, 1, 1.5)
	flashlight.Distance = 40
	flashlight.SetLocalPosition(0, 0, 1)
	s.Camera.AddChildren(flashlight)

	start := mayjs3d.NewPointLight("start light", 1, 0, 0, 1)
	start.Distance = 100
	start.SetLocalPosition(0, 1, 0)
	s.Scene.Root.AddChildren(start)

	goal := mayjs3d.NewPointLight("goal light", 1, 1, 1, 1)
	goal.Distance = 50
	goal.SetLocalPosition(halfMap-settings.WallWidth/2, settings.WallHeight, halfMap-settings.WallWidth*2)
	s.Scene.Root.AddChildren(goal)

}

func (s *Session) addPursuer(index int, model *mayjs3d.Model) {

	model.SetName(fmt.Sprintf("pursuer_%d", index))

	p := NewPursuer(index, model, s.Settings.Pursuers[index], s.Settings.PursuerCollisionDistance(), rand.New(rand.NewSource(s.rng.Int63())))

	s.Scene.Root.AddChildren(model)
	s.Oracle.Add(p.Obstacle)
	s.Pursuers[index] = p

	s.log.WithFields(log.Fields{"pursuer": index, "position": p.Position()}).Debug("pursuer added")

}

// applyAssets adds every pursuer whose model finished loading since the last call.
func (s *Session) applyAssets() {
	for {
		select {
		case res := <-s.assets:
			s.pending--
			if res.Err != nil {
				s.log.WithError(res.Err).WithField("pursuer", res.index).Warn("pursuer model failed to load; the pursuer stays absent")
				continue
			}
			s.addPursuer(res.index, res.Model)
		default:
			return
		}
	}
}

// Tick advances the game by delta seconds with the movement keys given, and returns the resulting State.
// Finished model loads are applied first. The simulation itself only runs while the game is Running and not paused;
// delta is capped at Settings.MaxDelta.
func (s *Session) Tick(delta float64, intent MoveIntent) State {

	if s.disposed {
		return s.state
	}

	s.applyAssets()

	if s.state != Running || s.paused {
		return s.state
	}

	delta = math.Max(math.Min(delta, s.Settings.MaxDelta), 0)

	s.Player.Tick(delta, intent, s.Oracle)

	loaded := make([]*Pursuer, 0, len(s.Pursuers))
	positions := make([]mayjs3d.Vector, 0, len(s.Pursuers))
	for _, p := range s.Pursuers {
		if p != nil {
			loaded = append(loaded, p)
			positions = append(positions, p.Position())
		}
	}

	outcome := Evaluate(s.state, s.Player.Position(), s.Layout.Door.Position, positions, s.Settings.Thresholds())

	if outcome.State != s.state {
		s.log.WithField("state", outcome.State).Info("game over")
		s.state = outcome.State
	}

	for i, move := range outcome.Move {
		if move {
			loaded[i].Tick(delta, s.Oracle)
		}
	}

	return s.state

}

// Start begins the game, or resumes it if it was paused. It's called when the cursor is captured.
func (s *Session) Start() {
	if s.disposed {
		return
	}
	s.paused = false
	if s.state == NotStarted {
		s.state = Running
		s.log.Info("game started")
	}
}

// Pause pauses a game in progress. It's called when the cursor is released; once the game is over, releasing the
// cursor resets the Session instead.
func (s *Session) Pause() error {
	if s.disposed {
		return nil
	}
	if s.state.Terminal() {
		return s.Reset()
	}
	s.paused = true
	return nil
}

// Reset discards the current game and sets up a fresh one in the NotStarted state.
func (s *Session) Reset() error {
	previous := s.ID
	parent := s.parent
	if parent == nil {
		parent = context.Background()
	}
	if err := s.Setup(parent); err != nil {
		return err
	}
	s.log.WithField("previous", previous).Info("maze session reset")
	return nil
}

// Dispose stops pending model loads and ends the Session; Tick does nothing afterwards. Setup may be called again.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Debug("maze session disposed")
}

// Look turns the player by a mouse movement of dx, dy pixels. It does nothing unless the game is running.
func (s *Session) Look(dx, dy float64) {
	if s.disposed || s.paused || s.state != Running {
		return
	}
	sens := s.Settings.LookSensitivity
	s.Player.Look(-dx*sens, -dy*sens)
}

// Resize changes the size of the Camera's view.
func (s *Session) Resize(w, h int) {
	s.width, s.height = max(w, 1), max(h, 1)
	if s.Camera != nil {
		s.Camera.Resize(s.width, s.height)
	}
}

// State returns the game's State.
func (s *Session) State() State {
	return s.state
}

// Paused returns true while a started game is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Disposed returns true if the Session has been disposed (or never set up).
func (s *Session) Disposed() bool {
	return s.disposed
}

// Pending returns how many pursuer models are still loading.
func (s *Session) Pending() int {
	return s.pending
}

// Grid returns the maze map of the Session.
func (s *Session) Grid() *Grid {
	return s.grid
}
