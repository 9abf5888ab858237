package maze

import (
	"fmt"
	"math"

	"github.com/mayjs/mayjs3d"
)

// PlayerState describes what the player did on its last tick.
type PlayerState int

const (
	PlayerIdle    PlayerState = iota // No movement key held; the player may still be coasting
	PlayerMoving                     // A movement key is held and the way is clear
	PlayerBlocked                    // The probe ray struck an Obstacle, so the player was stopped
)

func (state PlayerState) String() string {
	switch state {
	case PlayerIdle:
		return "idle"
	case PlayerMoving:
		return "moving"
	case PlayerBlocked:
		return "blocked"
	}
	return fmt.Sprintf("PlayerState(%d)", int(state))
}

// maxPitch keeps the camera from flipping over when looking straight up or down.
const maxPitch = math.Pi/2 - 0.1

// Player is the first-person actor. Its body is a Camera: yaw and pitch turn the view, while movement only follows yaw
// so looking up or down never lifts the player off the ground.
type Player struct {
	Camera   *mayjs3d.Camera
	Velocity mayjs3d.Vector

	Speed             float64
	Damping           float64
	CollisionDistance float64
	// EyeHeight is the Y position the player is held at while moving.
	EyeHeight float64

	yaw, pitch float64
	state      PlayerState
}

// NewPlayer returns a Player looking through the Camera given.
func NewPlayer(camera *mayjs3d.Camera, settings PlayerSettings, eyeHeight float64) *Player {
	player := &Player{
		Camera:            camera,
		Speed:             settings.Speed,
		Damping:           settings.Damping,
		CollisionDistance: settings.CollisionDistance,
		EyeHeight:         eyeHeight,
	}
	player.SetLook(mayjs3d.ToRadians(settings.StartYaw), 0)
	return player
}

// Node returns the Node that carries the player's position and facing.
func (player *Player) Node() *mayjs3d.Node {
	return player.Camera.Node
}

// Position returns the player's world position.
func (player *Player) Position() mayjs3d.Vector {
	return player.Camera.WorldPosition()
}

// State returns what the player did on its last tick.
func (player *Player) State() PlayerState {
	return player.state
}

// Yaw returns the player's rotation about world Y, in radians.
func (player *Player) Yaw() float64 {
	return player.yaw
}

// Pitch returns the player's look tilt, in radians; positive looks up.
func (player *Player) Pitch() float64 {
	return player.pitch
}

// SetLook sets the player's yaw and pitch (in radians). Pitch is limited to just short of straight up or down.
func (player *Player) SetLook(yaw, pitch float64) {
	player.yaw = yaw
	player.pitch = clampPitch(pitch)
	tilt := mayjs3d.NewMatrix4Rotate(1, 0, 0, player.pitch)
	rotate := mayjs3d.NewMatrix4Rotate(0, 1, 0, player.yaw)
	player.Camera.SetLocalRotation(tilt.Mult(rotate))
}

// Look turns the player by the given yaw and pitch deltas (in radians).
func (player *Player) Look(dYaw, dPitch float64) {
	player.SetLook(player.yaw+dYaw, player.pitch+dPitch)
}

// LookDirection returns the unit direction the player is looking in, pitch included.
func (player *Player) LookDirection() mayjs3d.Vector {
	return player.Camera.LookDirection()
}

// ProbeDirection returns the direction the player's collision ray is cast in for the intent given: the look direction,
// turned about world Y by ProbeAngle.
func (player *Player) ProbeDirection(intent MoveIntent) mayjs3d.Vector {
	dir := player.LookDirection()
	if angle, ok := intent.ProbeAngle(); ok {
		dir = dir.Rotate(mayjs3d.WorldUp, angle)
	}
	return dir
}

// Tick advances the player by delta seconds. Velocity decays first; then, unless the probe ray strikes an Obstacle
// within CollisionDistance, held keys accelerate the player, who is moved along the body's right and back axes.
// Travel along the back axis shrinks with pitch the way the probe's horizontal reach does. A blocked player, or one
// whose step would end inside an Obstacle, stops dead.
func (player *Player) Tick(delta float64, intent MoveIntent, oracle *Oracle) PlayerState {

	player.Velocity = decay(player.Velocity, player.Damping, delta)

	if oracle.RayIntersect(player.Position(), player.ProbeDirection(intent), player.CollisionDistance) {
		player.Velocity.X = 0
		player.Velocity.Z = 0
		player.state = PlayerBlocked
		return player.state
	}

	step := player.Speed * delta

	if intent.Forward {
		player.Velocity.Z -= step
	}
	if intent.Backward {
		player.Velocity.Z += step
	}
	if intent.Left {
		player.Velocity.X -= step
	}
	if intent.Right {
		player.Velocity.X += step
	}

	pos := player.Camera.LocalPosition()
	pos.Y = player.EyeHeight

	body := mayjs3d.NewMatrix4Rotate(0, 1, 0, player.yaw)
	pos = pos.Add(body.Right().Scale(player.Velocity.X * delta))
	pos = pos.Add(body.Forward().Scale(player.Velocity.Z * delta * math.Cos(player.pitch)))

	if oracle.Inside(pos) {
		player.Velocity.X = 0
		player.Velocity.Z = 0
		player.state = PlayerBlocked
		return player.state
	}

	player.Camera.SetLocalPositionVec(pos)

	if intent.Any() {
		player.state = PlayerMoving
	} else {
		player.state = PlayerIdle
	}

	return player.state

}

// decay damps the X and Z components of a velocity over delta seconds. The factor is capped at 1 so a long tick
// brings the velocity to zero instead of reversing it.
func decay(velocity mayjs3d.Vector, damping, delta float64) mayjs3d.Vector {
	factor := math.Min(damping*delta, 1)
	if factor < 0 {
		factor = 0
	}
	velocity.X -= velocity.X * factor
	velocity.Z -= velocity.Z * factor
	return velocity
}

func clampPitch(pitch float64) float64 {
	return math.Max(math.Min(pitch, maxPitch), -maxPitch)
}
