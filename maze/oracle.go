package maze

import "github.com/mayjs/mayjs3d"

// Oracle holds the set of Obstacles actors collide with and answers raycasts against it. Obstacles are only ever added.
type Oracle struct {
	obstacles []*Obstacle
	nodes     []mayjs3d.INode
}

// NewOracle returns an Oracle testing against the Obstacles given.
func NewOracle(obstacles ...*Obstacle) *Oracle {
	oracle := &Oracle{}
	oracle.Add(obstacles...)
	return oracle
}

// Add adds Obstacles to the collidable set.
func (oracle *Oracle) Add(obstacles ...*Obstacle) {
	for _, o := range obstacles {
		if o == nil || o.Bounds == nil {
			continue
		}
		oracle.obstacles = append(oracle.obstacles, o)
		oracle.nodes = append(oracle.nodes, o.Bounds)
	}
}

// Len returns the number of Obstacles in the set.
func (oracle *Oracle) Len() int {
	return len(oracle.obstacles)
}

// Obstacles returns the Obstacles in the order they were added.
func (oracle *Oracle) Obstacles() []*Obstacle {
	return append([]*Obstacle(nil), oracle.obstacles...)
}

// RayIntersect returns true if a ray cast from origin along direction strikes an Obstacle strictly closer than threshold.
// Obstacles containing the origin are ignored, as is a zero direction.
func (oracle *Oracle) RayIntersect(origin, direction mayjs3d.Vector, threshold float64) bool {
	hit := oracle.nearest(origin, direction, threshold)
	return hit != nil && hit.Distance() < threshold
}

// Inside returns true if point lies within any Obstacle.
func (oracle *Oracle) Inside(point mayjs3d.Vector) bool {
	for _, o := range oracle.obstacles {
		if o.Bounds.PointInside(point) {
			return true
		}
	}
	return false
}

// Nearest returns the closest Obstacle struck by a ray cast from origin along direction within maxDistance, and
// the distance to it.
func (oracle *Oracle) Nearest(origin, direction mayjs3d.Vector, maxDistance float64) (*Obstacle, float64, bool) {

	hit := oracle.nearest(origin, direction, maxDistance)
	if hit == nil {
		return nil, 0, false
	}

	for _, o := range oracle.obstacles {
		if o.Bounds == hit.Object {
			return o, hit.Distance(), true
		}
	}

	return nil, 0, false

}

func (oracle *Oracle) nearest(origin, direction mayjs3d.Vector, length float64) *mayjs3d.RayHit {

	if len(oracle.nodes) == 0 || length <= 0 || direction.IsZero() {
		return nil
	}

	return mayjs3d.RayTest(mayjs3d.NewRayTestOptionsDirection(origin, direction, length).WithTestAgainst(oracle.nodes...))

}
