package maze

import (
	"fmt"

	"github.com/mayjs/mayjs3d"
)

// ObstacleKind tells the different sorts of Obstacle apart.
type ObstacleKind int

const (
	KindWall      ObstacleKind = iota // A wall cube built from a grid cell
	KindPerimeter                     // One of the four zero-thickness outer walls
	KindDoor                          // The goal door
	KindPursuer                       // A pursuer's body
)

func (kind ObstacleKind) String() string {
	switch kind {
	case KindWall:
		return "wall"
	case KindPerimeter:
		return "perimeter"
	case KindDoor:
		return "door"
	case KindPursuer:
		return "pursuer"
	}
	return fmt.Sprintf("ObstacleKind(%d)", int(kind))
}

// Obstacle is anything raycasts can strike. Position is the center of its volume and Size its extent along each axis
// at the time it was created; Bounds is the box that is actually tested against and may move with its parent.
type Obstacle struct {
	Kind     ObstacleKind
	Position mayjs3d.Vector
	Size     mayjs3d.Vector
	Bounds   *mayjs3d.BoundingAABB
}

// NewObstacle creates an Obstacle of the given kind whose bounding box is centered on position.
func NewObstacle(kind ObstacleKind, position, size mayjs3d.Vector) *Obstacle {
	bounds := mayjs3d.NewBoundingAABB(kind.String(), size.X, size.Y, size.Z)
	bounds.SetLocalPositionVec(position)
	return &Obstacle{
		Kind:     kind,
		Position: position,
		Size:     size,
		Bounds:   bounds,
	}
}

// Layout is the static geometry of a maze: its wall cubes, perimeter walls and goal door.
type Layout struct {
	Walls     []*Obstacle
	Perimeter []*Obstacle
	Door      *Obstacle

	WallWidth  float64
	WallHeight float64
	// MapSize is the length of each side of the square the maze fills.
	MapSize float64
}

// Build lays a Grid out in world space. Each wall cell becomes a width × height × width cube resting on y = 0, with
// the grid centered on the origin; rows run along Z and columns along X. The map is enclosed by four zero-thickness
// perimeter walls and the goal door sits in the +X, +Z corner.
// Build is deterministic; calling it twice with the same arguments gives equal Layouts.
func Build(grid *Grid, width, height float64) *Layout {

	layout := &Layout{
		WallWidth:  width,
		WallHeight: height,
		MapSize:    float64(grid.Columns()) * width,
	}

	half := float64(grid.Columns()) / 2

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Columns(); col++ {

			if !grid.IsWall(row, col) {
				continue
			}

			pos := mayjs3d.NewVector(
				(float64(col)-half)*width+width/2,
				height/2,
				(float64(row)-half)*width+width/2,
			)

			layout.Walls = append(layout.Walls, NewObstacle(KindWall, pos, mayjs3d.NewVector(width, height, width)))

		}
	}

	halfMap := layout.MapSize / 2

	for _, sign := range []float64{1, -1} {
		layout.Perimeter = append(layout.Perimeter,
			// left / right
			NewObstacle(KindPerimeter, mayjs3d.NewVector(halfMap*sign, height/2, 0), mayjs3d.NewVector(0, height, layout.MapSize)),
			// front / back
			NewObstacle(KindPerimeter, mayjs3d.NewVector(0, height/2, halfMap*sign), mayjs3d.NewVector(layout.MapSize, height, 0)),
		)
	}

	layout.Door = NewObstacle(KindDoor,
		mayjs3d.NewVector(halfMap-width/2, height/2, halfMap-width/2),
		mayjs3d.NewVector(width, height, width*2),
	)

	return layout

}

// Obstacles returns every Obstacle of the Layout: walls first, then the perimeter, then the door.
func (layout *Layout) Obstacles() []*Obstacle {
	out := make([]*Obstacle, 0, len(layout.Walls)+len(layout.Perimeter)+1)
	out = append(out, layout.Walls...)
	out = append(out, layout.Perimeter...)
	if layout.Door != nil {
		out = append(out, layout.Door)
	}
	return out
}
