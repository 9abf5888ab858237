package mayjs3d

// Model represents a singular visual instantiation of a Mesh. A Mesh contains the vertex information (what to draw); a Model references the Mesh to draw it with a specific
// Position, Rotation, and/or Scale (where and how to draw). A Model without a Mesh acts as a group for its children.
type Model struct {
	*Node
	Mesh  *Mesh
	Color Color // The overall color of the Model; multiplied with the Material's color.
}

// NewModel creates a new Model (or instance) of the Mesh and Name provided. A Model represents a singular visual instantiation of a Mesh.
func NewModel(mesh *Mesh, name string) *Model {
	return &Model{
		Node:  NewNode(name),
		Mesh:  mesh,
		Color: NewColor(1, 1, 1, 1),
	}
}

// Clone creates a clone of the Model and its Model children. The Mesh is shared between the clones.
func (model *Model) Clone() *Model {

	newModel := NewModel(model.Mesh, model.name)
	newModel.Color = model.Color
	newModel.visible = model.visible
	newModel.data = model.data
	newModel.SetLocalPositionVec(model.position)
	newModel.SetLocalScale(model.scale.X, model.scale.Y, model.scale.Z)
	newModel.SetLocalRotation(model.rotation)

	for _, child := range model.children {
		if c, ok := child.(*Model); ok {
			newModel.AddChildren(c.Clone())
		}
	}

	return newModel

}

// WorldDimensions returns the axis-aligned world-space bounds of the Model's Mesh. The boolean is false if the Model has no Mesh
// or the Mesh is empty.
func (model *Model) WorldDimensions() (Dimensions, bool) {
	if model.Mesh == nil || !model.Mesh.Dimensions.Valid() {
		return Dimensions{}, false
	}
	return model.Mesh.Dimensions.Transformed(model.Transform()), true
}

// HierarchyDimensions returns the world-space bounds enclosing this Model and every Model beneath it.
func (model *Model) HierarchyDimensions() (Dimensions, bool) {

	out := NewEmptyDimensions()
	found := false

	if dim, ok := model.WorldDimensions(); ok {
		out = out.Expand(dim.Min).Expand(dim.Max)
		found = true
	}

	for _, child := range model.ChildrenRecursive() {
		if m, ok := child.(*Model); ok {
			if dim, ok := m.WorldDimensions(); ok {
				out = out.Expand(dim.Min).Expand(dim.Max)
				found = true
			}
		}
	}

	return out, found

}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (model *Model) AddChildren(children ...INode) {
	// We do this manually so that addChildren() parents the children to the Model, rather than to the Model.Node.
	model.addChildren(model, children...)
}

// Unparent unparents the Model from its parent, removing it from the scenegraph.
func (model *Model) Unparent() {
	if model.parent != nil {
		model.parent.RemoveChildren(model)
	}
}

// Type returns the NodeType for this object.
func (model *Model) Type() NodeType {
	return NodeTypeModel
}
