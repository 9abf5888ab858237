package maze

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/mayjs/mayjs3d"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, settings Settings, loader ModelLoader) (*Session, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	s, err := NewSession(settings, SessionOptions{
		Log:       log.NewEntry(logger),
		Rand:      rand.New(rand.NewSource(7)),
		LoadModel: loader,
		Width:     320,
		Height:    240,
	})
	require.NoError(t, err)
	require.NoError(t, s.Setup(context.Background()))

	t.Cleanup(s.Dispose)

	return s, hook
}

func waitForLoads(t *testing.T, s *Session) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("%d model loads still pending", s.Pending())
		}
		s.Tick(0, MoveIntent{})
		time.Sleep(time.Millisecond)
	}
}

func TestSessionSetup(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, NotStarted, s.State())
	assert.False(t, s.Disposed())
	assert.Zero(t, s.Pending())

	walls := DefaultGrid().WallCount()
	assert.Equal(t, walls+4+1+2, s.Oracle.Len(), "walls, perimeter, door and both placeholder pursuers")

	require.Len(t, s.Pursuers, 2)
	for i, p := range s.Pursuers {
		require.NotNil(t, p, "pursuer %d", i)
	}
	assertVector(t, mayjs3d.NewVector(150, 1, 150), s.Pursuers[0].Position())
	assertVector(t, mayjs3d.NewVector(-150, 1, -150), s.Pursuers[1].Position())

	assertVector(t, mayjs3d.NewVector(0, 15, 0), s.Player.Position())
	assertVector(t, mayjs3d.NewVector(-1, 0, 0), s.Player.LookDirection())

	assert.Equal(t, mayjs3d.FogExp2, s.Scene.World.FogMode)
	assert.Equal(t, 60.0, s.Camera.FieldOfView())
	assert.Equal(t, 2000.0, s.Camera.Far())

	assert.NotNil(t, s.Scene.FindNode("door"))
	assert.NotNil(t, s.Scene.FindNode("ground"))
	assert.NotNil(t, s.Scene.FindNode("flashlight"))
	assert.NotNil(t, s.Scene.FindNode("pursuer_1"))

}

func TestSessionTicksOnlyWhileRunning(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)
	forward := MoveIntent{Forward: true}

	start := s.Player.Position()
	pursuerStart := s.Pursuers[0].Position()

	assert.Equal(t, NotStarted, s.Tick(0.1, forward))
	assertVector(t, start, s.Player.Position(), "nothing moves before the game starts")
	assertVector(t, pursuerStart, s.Pursuers[0].Position())

	s.Start()
	require.Equal(t, Running, s.Tick(0.1, forward))
	assertVector(t, mayjs3d.NewVector(-1.5, 15, 0), s.Player.Position())

	require.NoError(t, s.Pause())
	assert.True(t, s.Paused())
	moved := s.Player.Position()
	s.Tick(0.1, forward)
	assertVector(t, moved, s.Player.Position(), "nothing moves while paused")

	s.Start()
	assert.False(t, s.Paused())
	assert.Equal(t, Running, s.State())

}

func TestSessionClampsDelta(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)
	s.Start()

	s.Tick(5, MoveIntent{Forward: true})

	// A five second stall moves the player as far as a 0.1 second tick.
	assertVector(t, mayjs3d.NewVector(-1.5, 15, 0), s.Player.Position())

}

func TestSessionWinAndReset(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)
	firstID := s.ID

	door := s.Layout.Door.Position
	s.Player.Camera.SetLocalPosition(door.X-30, door.Y, door.Z)

	pursuers := []mayjs3d.Vector{s.Pursuers[0].Position(), s.Pursuers[1].Position()}

	s.Start()
	require.Equal(t, Won, s.Tick(1.0/60, MoveIntent{}))

	for i, p := range s.Pursuers {
		assertVector(t, pursuers[i], p.Position(), "pursuer %d", i)
	}

	// Won is terminal.
	s.Player.Camera.SetLocalPosition(0, 15, 0)
	assert.Equal(t, Won, s.Tick(1.0/60, MoveIntent{}))
	s.Start()
	assert.Equal(t, Won, s.State())

	// Releasing the cursor after the game is over starts a new one.
	require.NoError(t, s.Pause())
	assert.Equal(t, NotStarted, s.State())
	assert.False(t, s.Paused())
	assert.NotEqual(t, firstID, s.ID)
	assertVector(t, mayjs3d.NewVector(0, 15, 0), s.Player.Position())

}

func TestSessionLoss(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)

	catcher := s.Pursuers[0]
	catcher.Model.SetLocalPosition(5, 1, 0)

	other := s.Pursuers[1]
	otherPos, otherForward := other.Position(), other.Forward()

	s.Start()
	require.Equal(t, Lost, s.Tick(1.0/60, MoveIntent{}))

	assertVector(t, mayjs3d.NewVector(5, 1, 0), catcher.Position(), "the catching pursuer stays put")
	assert.True(t, !other.Position().Equals(otherPos) || !other.Forward().Equals(otherForward), "the other pursuer still takes its turn")

	assert.Equal(t, Lost, s.Tick(1.0/60, MoveIntent{Forward: true}))
	assertVector(t, mayjs3d.NewVector(0, 15, 0), s.Player.Position(), "control is disabled once lost")

}

func TestSessionLoadsModels(t *testing.T) {

	settings := DefaultSettings()
	settings.Pursuers[0].Model = "good.glb"
	settings.Pursuers[1].Model = "bad.glb"

	loadErr := errors.New("corrupt file")

	loader := func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		if path == "good.glb" {
			return mayjs3d.NewModel(mayjs3d.NewCubeMesh(40, 40, 40), "monster"), nil
		}
		return nil, loadErr
	}

	s, hook := newTestSession(t, settings, loader)

	walls := DefaultGrid().WallCount()
	assert.Equal(t, walls+4+1, s.Oracle.Len(), "pursuers join the obstacle set only once loaded")

	waitForLoads(t, s)

	require.NotNil(t, s.Pursuers[0])
	assert.Nil(t, s.Pursuers[1], "a pursuer whose model fails to load stays absent")
	assert.Equal(t, walls+4+1+1, s.Oracle.Len())
	assert.Equal(t, "pursuer_0", s.Pursuers[0].Model.Name())
	assertVector(t, mayjs3d.NewVector(0.2, 0.2, 0.2), s.Pursuers[0].Model.LocalScale())

	warned := false
	for _, entry := range hook.AllEntries() {
		err, _ := entry.Data[log.ErrorKey].(error)
		if entry.Level == log.WarnLevel && errors.Is(err, loadErr) {
			warned = true
		}
	}
	assert.True(t, warned, "a failed load is logged as a warning")

	// The game runs with only one pursuer.
	s.Start()
	assert.Equal(t, Running, s.Tick(1.0/60, MoveIntent{}))

}

func TestSessionDisposeCancelsLoads(t *testing.T) {

	settings := DefaultSettings()
	settings.Pursuers[0].Model = "slow.glb"

	cancelled := make(chan struct{})

	loader := func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	}

	s, _ := newTestSession(t, settings, loader)
	require.Equal(t, 1, s.Pending())

	s.Dispose()
	assert.True(t, s.Disposed())

	select {
	case <-cancelled:
	case <-time.After(5 * time.Second):
		t.Fatal("the pending load was not cancelled")
	}

	s.Start()
	assert.Equal(t, NotStarted, s.Tick(0.1, MoveIntent{Forward: true}))
	assertVector(t, mayjs3d.NewVector(0, 15, 0), s.Player.Position())
	assert.Nil(t, s.Pursuers[0])

}

func TestSessionLook(t *testing.T) {

	s, _ := newTestSession(t, DefaultSettings(), nil)
	yaw := s.Player.Yaw()

	s.Look(100, 0)
	assert.Equal(t, yaw, s.Player.Yaw(), "looking around needs a running game")

	s.Start()
	s.Look(100, 50)
	assert.InDelta(t, yaw-100*s.Settings.LookSensitivity, s.Player.Yaw(), 1e-9)
	assert.InDelta(t, -50*s.Settings.LookSensitivity, s.Player.Pitch(), 1e-9)

	s.Resize(800, 600)
	w, h := s.Camera.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

}

func TestNewSessionValidates(t *testing.T) {

	settings := DefaultSettings()
	settings.WallWidth = 0
	settings.Grid = [][]int{{0, 1}, {0}}

	_, err := NewSession(settings, SessionOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRaggedGrid)
	assert.Contains(t, err.Error(), "wall_width")

}

func TestLoadModelAsync(t *testing.T) {

	model := mayjs3d.NewModel(nil, "m")
	results := LoadModelAsync(context.Background(), "x", func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		return model, nil
	})

	res, ok := <-results
	require.True(t, ok)
	assert.NoError(t, res.Err)
	assert.Same(t, model, res.Model)

	_, ok = <-results
	assert.False(t, ok, "only one result is delivered")

	ctx, cancel := context.WithCancel(context.Background())
	results = LoadModelAsync(ctx, "x", func(ctx context.Context, path string) (*mayjs3d.Model, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	cancel()

	_, ok = <-results
	assert.False(t, ok, "a cancelled load delivers nothing")

}

func TestLoadGLTFModelMissingFile(t *testing.T) {
	_, err := LoadGLTFModel(context.Background(), "does-not-exist.glb")
	assert.Error(t, err)
}
