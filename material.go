package mayjs3d

// Material controls how the triangles of a Mesh are shaded.
type Material struct {
	library         *Library // library is a reference to the Library that this Material came from.
	Name            string   // Name is the name of the Material.
	Color           Color    // The overall color of the Material; multiplied with vertex colors.
	BackfaceCulling bool     // If backface culling is enabled (which it is by default), faces turned away from the camera aren't rendered.
	Shadeless       bool     // If true, lights don't affect the Material and it renders at full brightness.
	FogLess         bool     // If true, the World's fog doesn't affect the Material.
}

// NewMaterial creates a new Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:            name,
		Color:           NewColor(1, 1, 1, 1),
		BackfaceCulling: true,
	}
}

// Clone creates a clone of the specified Material.
func (material *Material) Clone() *Material {
	newMat := *material
	return &newMat
}

// Library returns the Library from which this Material was loaded. If it was created through code, this function will return nil.
func (material *Material) Library() *Library {
	return material.library
}
