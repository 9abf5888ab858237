package maze

import (
	"errors"
	"fmt"
)

// Settings holds every tunable of a game session.
type Settings struct {
	// Grid is the maze map as rows of 0s and 1s. An empty Grid uses DefaultGrid.
	Grid [][]int `yaml:"grid,omitempty"`

	WallWidth  float64 `yaml:"wall_width"`
	WallHeight float64 `yaml:"wall_height"`

	// ArriveDistance is how close to the door the player must get to win; CatchDistance how close a pursuer must
	// get to the player to catch them.
	ArriveDistance float64 `yaml:"arrive_distance"`
	CatchDistance  float64 `yaml:"catch_distance"`

	// MaxDelta caps the length of a single tick in seconds.
	MaxDelta float64 `yaml:"max_delta"`

	FieldOfView float64 `yaml:"field_of_view"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	FogDensity  float64 `yaml:"fog_density"`

	// LookSensitivity converts mouse movement in pixels to radians of rotation.
	LookSensitivity float64 `yaml:"look_sensitivity"`

	Player   PlayerSettings    `yaml:"player"`
	Pursuers []PursuerSettings `yaml:"pursuers"`
}

// PlayerSettings tunes the Player.
type PlayerSettings struct {
	Speed             float64 `yaml:"speed"`
	Damping           float64 `yaml:"damping"`
	CollisionDistance float64 `yaml:"collision_distance"`
	StartYaw          float64 `yaml:"start_yaw"` // degrees
}

// PursuerSettings tunes one Pursuer.
type PursuerSettings struct {
	// Model is the path of a .gltf or .glb file; empty uses a placeholder sphere.
	Model    string     `yaml:"model"`
	Scale    float64    `yaml:"scale"`
	Speed    float64    `yaml:"speed"`
	Damping  float64    `yaml:"damping"`
	Start    [3]float64 `yaml:"start"`
	StartYaw float64    `yaml:"start_yaw"` // degrees
}

// DefaultSettings returns the settings the game ships with.
func DefaultSettings() Settings {
	const wallWidth = 18.0
	return Settings{
		WallWidth:       wallWidth,
		WallHeight:      30,
		ArriveDistance:  wallWidth * 2,
		CatchDistance:   wallWidth,
		MaxDelta:        0.1,
		FieldOfView:     60,
		Near:            1,
		Far:             2000,
		FogDensity:      0.0015,
		LookSensitivity: 0.002,
		Player: PlayerSettings{
			Speed:             150,
			Damping:           10,
			CollisionDistance: 5,
			StartYaw:          90,
		},
		Pursuers: []PursuerSettings{
			{Scale: 0.2, Speed: 300, Damping: 10, Start: [3]float64{150, 1, 150}},
			{Scale: 0.25, Speed: 300, Damping: 10, Start: [3]float64{-150, 1, -150}},
		},
	}
}

// PursuerCollisionDistance is how far ahead a pursuer looks for walls: half a wall width.
func (settings Settings) PursuerCollisionDistance() float64 {
	return settings.WallWidth / 2
}

// Thresholds returns the evaluator distances of the Settings.
func (settings Settings) Thresholds() Thresholds {
	return Thresholds{Arrive: settings.ArriveDistance, Catch: settings.CatchDistance}
}

// LoadGrid returns the Settings' Grid, or DefaultGrid if none is set.
func (settings Settings) LoadGrid() (*Grid, error) {
	if len(settings.Grid) == 0 {
		return DefaultGrid(), nil
	}
	return NewGrid(settings.Grid)
}

// Validate reports every problem with the Settings at once.
func (settings Settings) Validate() error {

	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("wall_width", settings.WallWidth)
	positive("wall_height", settings.WallHeight)
	positive("arrive_distance", settings.ArriveDistance)
	positive("catch_distance", settings.CatchDistance)
	positive("max_delta", settings.MaxDelta)
	positive("field_of_view", settings.FieldOfView)
	positive("near", settings.Near)
	positive("player.speed", settings.Player.Speed)
	positive("player.collision_distance", settings.Player.CollisionDistance)

	if settings.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field_of_view must be below 180, got %v", settings.FieldOfView))
	}

	if settings.Far <= settings.Near {
		errs = append(errs, fmt.Errorf("far (%v) must be beyond near (%v)", settings.Far, settings.Near))
	}

	if settings.FogDensity < 0 {
		errs = append(errs, fmt.Errorf("fog_density must not be negative, got %v", settings.FogDensity))
	}

	if settings.Player.Damping < 0 {
		errs = append(errs, fmt.Errorf("player.damping must not be negative, got %v", settings.Player.Damping))
	}

	for i, p := range settings.Pursuers {
		positive(fmt.Sprintf("pursuers[%d].scale", i), p.Scale)
		positive(fmt.Sprintf("pursuers[%d].speed", i), p.Speed)
		if p.Damping < 0 {
			errs = append(errs, fmt.Errorf("pursuers[%d].damping must not be negative, got %v", i, p.Damping))
		}
	}

	if _, err := settings.LoadGrid(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)

}
