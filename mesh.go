package mayjs3d

import (
	"math"
)

// Mesh represents a collection of triangles, sharing a single Material. Meshes are instanced into the scene with Models.
type Mesh struct {
	Name       string
	Vertices   []*Vertex
	Triangles  []*Triangle
	Material   *Material // The Material to use when rendering the triangles that define this Mesh
	Dimensions Dimensions
	library    *Library // The Library this Mesh was loaded from, if any
}

// NewMesh takes a name and a slice of *Vertex instances, and returns a new Mesh. If you provide *Vertex instances, the number must be divisible by 3,
// or NewMesh will panic.
func NewMesh(name string, verts ...*Vertex) *Mesh {

	mesh := &Mesh{
		Name:       name,
		Vertices:   []*Vertex{},
		Triangles:  []*Triangle{},
		Material:   NewMaterial(name),
		Dimensions: NewEmptyDimensions(),
	}

	if len(verts) > 0 {
		mesh.AddTriangles(verts...)
	}

	return mesh

}

// Clone clones the Mesh, creating a new Mesh that has cloned Triangles and Vertices. The Material is shared.
func (mesh *Mesh) Clone() *Mesh {

	verts := make([]*Vertex, 0, len(mesh.Triangles)*3)
	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertices {
			verts = append(verts, v.Clone())
		}
	}

	newMesh := NewMesh(mesh.Name, verts...)
	newMesh.Material = mesh.Material
	newMesh.library = mesh.library
	return newMesh

}

// Library returns the Library the Mesh was loaded from, or nil if it was created procedurally.
func (mesh *Mesh) Library() *Library {
	return mesh.library
}

// AddTriangles adds triangles to the Mesh, composed of every three vertices given. The number of vertices must be divisible by 3.
func (mesh *Mesh) AddTriangles(verts ...*Vertex) {

	if len(verts)%3 != 0 {
		panic("mayjs3d: NewMesh or AddTriangles called with a vertex count that is not divisible by 3")
	}

	for i := 0; i < len(verts); i += 3 {
		tri := NewTriangle(mesh, verts[i], verts[i+1], verts[i+2])
		mesh.Triangles = append(mesh.Triangles, tri)
		mesh.Vertices = append(mesh.Vertices, verts[i], verts[i+1], verts[i+2])
	}

	mesh.UpdateBounds()

}

// SetVertexColor sets the color of every vertex in the Mesh.
func (mesh *Mesh) SetVertexColor(color Color) {
	for _, v := range mesh.Vertices {
		v.Color = color
	}
}

// ApplyMatrix applies a transformation matrix to the vertices referenced by the Mesh.
func (mesh *Mesh) ApplyMatrix(matrix Matrix4) {

	_, _, rot := matrix.Decompose()

	for _, v := range mesh.Vertices {
		v.Position = matrix.MultVec(v.Position)
		v.Normal = rot.MultVec(v.Normal).Unit()
	}

	for _, tri := range mesh.Triangles {
		tri.RecalculateCenter()
		tri.RecalculateNormal()
	}

	mesh.UpdateBounds()

}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {
	dim := NewEmptyDimensions()
	for _, v := range mesh.Vertices {
		dim = dim.Expand(v.Position)
	}
	mesh.Dimensions = dim
}

// NewCubeMesh returns a new box Mesh of the given width, height and depth, centered on its origin.
func NewCubeMesh(width, height, depth float64) *Mesh {

	mesh := NewMesh("Cube",

		// Top

		NewVertex(-1, 1, -1, 0, 0),
		NewVertex(1, 1, 1, 1, 1),
		NewVertex(1, 1, -1, 1, 0),

		NewVertex(-1, 1, 1, 0, 1),
		NewVertex(1, 1, 1, 1, 1),
		NewVertex(-1, 1, -1, 0, 0),

		// Bottom

		NewVertex(1, -1, -1, 1, 0),
		NewVertex(1, -1, 1, 1, 1),
		NewVertex(-1, -1, -1, 0, 0),

		NewVertex(-1, -1, -1, 0, 0),
		NewVertex(1, -1, 1, 1, 1),
		NewVertex(-1, -1, 1, 0, 1),

		// Front

		NewVertex(-1, 1, 1, 0, 0),
		NewVertex(1, -1, 1, 1, 1),
		NewVertex(1, 1, 1, 1, 0),

		NewVertex(-1, -1, 1, 0, 1),
		NewVertex(1, -1, 1, 1, 1),
		NewVertex(-1, 1, 1, 0, 0),

		// Back

		NewVertex(1, 1, -1, 1, 0),
		NewVertex(1, -1, -1, 1, 1),
		NewVertex(-1, 1, -1, 0, 0),

		NewVertex(-1, 1, -1, 0, 0),
		NewVertex(1, -1, -1, 1, 1),
		NewVertex(-1, -1, -1, 0, 1),

		// Right

		NewVertex(1, 1, -1, 1, 0),
		NewVertex(1, 1, 1, 1, 1),
		NewVertex(1, -1, -1, 0, 0),

		NewVertex(1, -1, -1, 0, 0),
		NewVertex(1, 1, 1, 1, 1),
		NewVertex(1, -1, 1, 0, 1),

		// Left

		NewVertex(-1, -1, -1, 0, 0),
		NewVertex(-1, 1, 1, 1, 1),
		NewVertex(-1, 1, -1, 1, 0),

		NewVertex(-1, -1, 1, 0, 1),
		NewVertex(-1, 1, 1, 1, 1),
		NewVertex(-1, -1, -1, 0, 0),
	)

	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertices {
			v.Normal = tri.Normal
		}
	}

	mesh.ApplyMatrix(NewMatrix4Scale(width/2, height/2, depth/2))

	return mesh

}

// NewPlaneMesh returns a new flat Mesh lying on the XZ plane and facing +Y, width units across X and depth units across Z.
// The plane is split into segments × segments quads so per-vertex lighting has enough detail across large surfaces.
// Planes are rendered double-sided.
func NewPlaneMesh(width, depth float64, segments int) *Mesh {

	segments = max(segments, 1)

	verts := make([]*Vertex, 0, segments*segments*6)

	step := 1.0 / float64(segments)

	for z := 0; z < segments; z++ {
		for x := 0; x < segments; x++ {

			u0, v0 := float64(x)*step, float64(z)*step
			u1, v1 := u0+step, v0+step

			x0, z0 := (u0-0.5)*width, (v0-0.5)*depth
			x1, z1 := (u1-0.5)*width, (v1-0.5)*depth

			verts = append(verts,
				NewVertex(x0, 0, z0, u0, v0),
				NewVertex(x1, 0, z1, u1, v1),
				NewVertex(x1, 0, z0, u1, v0),

				NewVertex(x0, 0, z1, u0, v1),
				NewVertex(x1, 0, z1, u1, v1),
				NewVertex(x0, 0, z0, u0, v0),
			)

		}
	}

	for _, v := range verts {
		v.Normal = WorldUp
	}

	mesh := NewMesh("Plane", verts...)
	mesh.Material.BackfaceCulling = false
	return mesh

}

// NewIcosphereMesh returns a sphere Mesh of the given radius, made by subdividing an icosahedron detail times (0 to 3).
func NewIcosphereMesh(radius float64, detail int) *Mesh {

	detail = clamp(detail, 0, 3)

	t := (1.0 + math.Sqrt(5.0)) / 2.0

	points := []Vector{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	tris := make([][3]Vector, 0, len(faces))
	for _, f := range faces {
		tris = append(tris, [3]Vector{points[f[0]].Unit(), points[f[1]].Unit(), points[f[2]].Unit()})
	}

	for i := 0; i < detail; i++ {
		next := make([][3]Vector, 0, len(tris)*4)
		for _, tri := range tris {
			a := tri[0].Add(tri[1]).Unit()
			b := tri[1].Add(tri[2]).Unit()
			c := tri[2].Add(tri[0]).Unit()
			next = append(next,
				[3]Vector{tri[0], a, c},
				[3]Vector{tri[1], b, a},
				[3]Vector{tri[2], c, b},
				[3]Vector{a, b, c},
			)
		}
		tris = next
	}

	verts := make([]*Vertex, 0, len(tris)*3)
	for _, tri := range tris {
		// Keep every face wound outwards.
		if calculateNormal(tri[0], tri[1], tri[2]).Dot(tri[0].Add(tri[1]).Add(tri[2])) < 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}
		for _, p := range tri {
			v := NewVertex(p.X*radius, p.Y*radius, p.Z*radius, 0.5+math.Atan2(p.Z, p.X)/(2*math.Pi), 0.5-math.Asin(p.Y)/math.Pi)
			v.Normal = p
			verts = append(verts, v)
		}
	}

	return NewMesh("Icosphere", verts...)

}

// A Triangle represents the smallest renderable object in mayjs3d.
type Triangle struct {
	Vertices [3]*Vertex
	Normal   Vector
	Center   Vector
	Mesh     *Mesh
}

// NewTriangle creates a new Triangle owned by the given Mesh out of the three vertices given.
func NewTriangle(mesh *Mesh, v0, v1, v2 *Vertex) *Triangle {
	tri := &Triangle{
		Mesh:     mesh,
		Vertices: [3]*Vertex{v0, v1, v2},
	}
	tri.RecalculateCenter()
	tri.RecalculateNormal()
	return tri
}

// RecalculateCenter recalculates the center for the Triangle. Note that this should only be called if you manually change a vertex's
// individual position.
func (tri *Triangle) RecalculateCenter() {
	tri.Center = tri.Vertices[0].Position.Add(tri.Vertices[1].Position).Add(tri.Vertices[2].Position).Divide(3)
}

// RecalculateNormal recalculates the physical normal for the Triangle. Note that this should only be called if you manually change a vertex's
// individual position.
func (tri *Triangle) RecalculateNormal() {
	tri.Normal = calculateNormal(tri.Vertices[0].Position, tri.Vertices[1].Position, tri.Vertices[2].Position)
}

// Vertex represents a vertex. Vertices are not shared between Triangles.
type Vertex struct {
	Position Vector
	Normal   Vector
	Color    Color
	U, V     float64
}

// NewVertex creates a new white Vertex with the provided position and UV values.
func NewVertex(x, y, z, u, v float64) *Vertex {
	return &Vertex{
		Position: NewVector(x, y, z),
		Color:    NewColor(1, 1, 1, 1),
		U:        u,
		V:        v,
	}
}

// Clone clones the Vertex.
func (vertex *Vertex) Clone() *Vertex {
	newVert := *vertex
	return &newVert
}

func calculateNormal(p1, p2, p3 Vector) Vector {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Unit()
}
