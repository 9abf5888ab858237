package viewer

import (
	"errors"
	"fmt"
	"math"
)

// ModelSettings places one model in a viewer. An empty Path shows a placeholder shape instead of a model file.
type ModelSettings struct {
	Path     string     `yaml:"path"`
	Position [3]float64 `yaml:"position"`
	Scale    float64    `yaml:"scale"`
}

// ShowcaseSettings configures the character showcase.
type ShowcaseSettings struct {
	Models      []ModelSettings `yaml:"models"`
	Camera      [3]float64      `yaml:"camera"`
	FieldOfView float64         `yaml:"field_of_view"`
	Near        float64         `yaml:"near"`
	Far         float64         `yaml:"far"`
	Light       [3]float64      `yaml:"light"`
	GroundSize  float64         `yaml:"ground_size"`

	HoverLift float64 `yaml:"hover_lift"` // How far the hovered model rises per frame.
	DropTime  float64 `yaml:"drop_time"`  // Seconds a model takes to settle back down; 0 drops it instantly.

	MaxPolarAngle    float64 `yaml:"max_polar_angle"` // Radians from straight up.
	MinDistance      float64 `yaml:"min_distance"`
	MaxDistance      float64 `yaml:"max_distance"`
	OrbitSensitivity float64 `yaml:"orbit_sensitivity"` // Radians per pixel dragged.
	ZoomStep         float64 `yaml:"zoom_step"`         // Fraction of the distance per wheel notch.
}

// CarouselSettings configures the character carousel.
type CarouselSettings struct {
	Models      []ModelSettings `yaml:"models"`
	Camera      [3]float64      `yaml:"camera"`
	FieldOfView float64         `yaml:"field_of_view"`
	Near        float64         `yaml:"near"`
	Far         float64         `yaml:"far"`
	GroundY     float64         `yaml:"ground_y"`
	GroundSize  float64         `yaml:"ground_size"`
	FogNear     float64         `yaml:"fog_near"`
	FogFar      float64         `yaml:"fog_far"`
	SlideTime   float64         `yaml:"slide_time"` // Seconds a click takes to slide the row; 0 moves it instantly.
}

// Settings holds both viewers' settings.
type Settings struct {
	Showcase ShowcaseSettings `yaml:"showcase"`
	Carousel CarouselSettings `yaml:"carousel"`
}

// DefaultSettings returns the viewers as they were first laid out: four characters each, shown as placeholders
// until model paths are configured.
func DefaultSettings() Settings {
	return Settings{
		Showcase: ShowcaseSettings{
			Models: []ModelSettings{
				{Position: [3]float64{-30, 0, -50}, Scale: 0.8},
				{Position: [3]float64{30, 0, 20}, Scale: 1},
				{Position: [3]float64{-50, 0, 20}, Scale: 1},
				{Position: [3]float64{0, 0, 50}, Scale: 1},
			},
			Camera:      [3]float64{-50, 100, 230},
			FieldOfView: 60,
			Near:        1,
			Far:         2000,
			Light:       [3]float64{-10, 200, 160},
			GroundSize:  2000,

			HoverLift: 0.1,
			DropTime:  0.25,

			MaxPolarAngle:    math.Pi * 0.45,
			MinDistance:      100,
			MaxDistance:      800,
			OrbitSensitivity: 0.005,
			ZoomStep:         0.1,
		},
		Carousel: CarouselSettings{
			Models: []ModelSettings{
				{Position: [3]float64{-40, -33, 0}, Scale: 0.25},
				{Position: [3]float64{-5, -33, 0}, Scale: 0.25},
				{Position: [3]float64{20, -33, 0}, Scale: 0.25},
				{Position: [3]float64{38, -33, 0}, Scale: 0.25},
			},
			Camera:      [3]float64{0, 0, 250},
			FieldOfView: 30,
			Near:        1,
			Far:         5000,
			GroundY:     -33,
			GroundSize:  10000,
			FogNear:     1,
			FogFar:      5000,
			SlideTime:   0.3,
		},
	}
}

// Validate reports every setting that would leave a viewer unusable.
func (s Settings) Validate() error {

	var errs []error

	check := func(ok bool, field string, value any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: invalid value %v", field, value))
		}
	}

	checkModels := func(prefix string, models []ModelSettings) {
		for i, m := range models {
			check(m.Scale > 0, fmt.Sprintf("%s.models[%d].scale", prefix, i), m.Scale)
		}
	}

	sc := s.Showcase
	checkModels("showcase", sc.Models)
	check(sc.FieldOfView > 0 && sc.FieldOfView < 180, "showcase.field_of_view", sc.FieldOfView)
	check(sc.Near > 0 && sc.Far > sc.Near, "showcase.far", sc.Far)
	check(sc.HoverLift >= 0, "showcase.hover_lift", sc.HoverLift)
	check(sc.DropTime >= 0, "showcase.drop_time", sc.DropTime)
	check(sc.MaxPolarAngle > 0 && sc.MaxPolarAngle <= math.Pi, "showcase.max_polar_angle", sc.MaxPolarAngle)
	check(sc.MinDistance > 0 && sc.MaxDistance >= sc.MinDistance, "showcase.max_distance", sc.MaxDistance)

	cs := s.Carousel
	checkModels("carousel", cs.Models)
	check(cs.FieldOfView > 0 && cs.FieldOfView < 180, "carousel.field_of_view", cs.FieldOfView)
	check(cs.Near > 0 && cs.Far > cs.Near, "carousel.far", cs.Far)
	check(cs.FogFar >= cs.FogNear, "carousel.fog_far", cs.FogFar)
	check(cs.SlideTime >= 0, "carousel.slide_time", cs.SlideTime)

	return errors.Join(errs...)

}
