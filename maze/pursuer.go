package maze

import (
	"math"
	"math/rand"

	"github.com/mayjs/mayjs3d"
)

// turnMultiples are the choices a blocked pursuer picks from; the turn is -90° times the choice.
var turnMultiples = [2]float64{-1, 1}

// Pursuer is an actor that walks forward along its local +Z axis until something is in the way, then turns left or
// right at random.
type Pursuer struct {
	Index    int
	Model    *mayjs3d.Model
	Obstacle *Obstacle
	Velocity mayjs3d.Vector

	Speed             float64
	Damping           float64
	CollisionDistance float64

	rng *rand.Rand
}

// NewPursuer places a pursuer's Model according to its settings and gives it a bounding box, parented to the Model,
// that covers the Model's meshes. The Model is not added to any Scene.
func NewPursuer(index int, model *mayjs3d.Model, settings PursuerSettings, collisionDistance float64, rng *rand.Rand) *Pursuer {

	model.SetLocalScale(settings.Scale, settings.Scale, settings.Scale)
	model.SetLocalPosition(settings.Start[0], settings.Start[1], settings.Start[2])
	model.SetLocalRotation(mayjs3d.NewMatrix4Rotate(0, 1, 0, mayjs3d.ToRadians(settings.StartYaw)))

	pursuer := &Pursuer{
		Index:             index,
		Model:             model,
		Speed:             settings.Speed,
		Damping:           settings.Damping,
		CollisionDistance: collisionDistance,
		rng:               rng,
	}

	pursuer.Obstacle = pursuer.buildObstacle()

	return pursuer

}

func (pursuer *Pursuer) buildObstacle() *Obstacle {

	model := pursuer.Model
	pos := model.WorldPosition()

	dim, ok := model.HierarchyDimensions()
	if !ok {
		dim = mayjs3d.Dimensions{Min: pos, Max: pos}
	}

	size := dim.Size()
	scale := model.WorldScale()

	bounds := mayjs3d.NewBoundingAABB(KindPursuer.String(), safeDivide(size.X, scale.X), safeDivide(size.Y, scale.Y), safeDivide(size.Z, scale.Z))

	// The box is parented to the Model, so its offset is expressed in the Model's unscaled, unrotated space.
	offset := model.WorldRotation().Transposed().MultVec(dim.Center().Sub(pos))
	bounds.SetLocalPosition(safeDivide(offset.X, scale.X), safeDivide(offset.Y, scale.Y), safeDivide(offset.Z, scale.Z))

	model.AddChildren(bounds)

	return &Obstacle{
		Kind:     KindPursuer,
		Position: dim.Center(),
		Size:     size,
		Bounds:   bounds,
	}

}

// Position returns the pursuer's world position.
func (pursuer *Pursuer) Position() mayjs3d.Vector {
	return pursuer.Model.WorldPosition()
}

// Forward returns the unit direction the pursuer is facing (its local +Z axis).
func (pursuer *Pursuer) Forward() mayjs3d.Vector {
	return pursuer.Model.WorldRotation().Forward().Unit()
}

// Tick advances the pursuer by delta seconds and returns true if it was blocked. Velocity decays, then grows by
// Speed × delta whether or not the way is clear. A clear pursuer steps forward; a blocked one stays put and turns
// by -90° or +90°, chosen at random.
func (pursuer *Pursuer) Tick(delta float64, oracle *Oracle) bool {

	pursuer.Velocity = decay(pursuer.Velocity, pursuer.Damping, delta)

	blocked := oracle.RayIntersect(pursuer.Position(), pursuer.Forward(), pursuer.CollisionDistance)

	pursuer.Velocity.Z += pursuer.Speed * delta

	if !blocked {
		pursuer.Model.MoveLocal(0, 0, pursuer.Velocity.Z*delta)
		return false
	}

	m := turnMultiples[pursuer.rng.Intn(len(turnMultiples))]
	pursuer.Model.Rotate(0, 1, 0, mayjs3d.ToRadians(-90*m))

	return true

}

func safeDivide(a, b float64) float64 {
	if b == 0 || math.IsNaN(b) {
		return 0
	}
	return a / b
}
