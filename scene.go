package mayjs3d

// Scene represents a world of sorts, and can contain a variety of Nodes under its Root, and a World for fog, clear color
// and ambient lighting.
type Scene struct {
	Name    string
	library *Library // The library from whence this Scene was created. If the Scene was instantiated through code, this will be nil.
	// Root indicates the root node for the scenegraph. Add Models, lights and Cameras to it to have them rendered.
	Root  INode
	World *World
}

// NewScene creates a new Scene by the name given.
func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		Root:  NewNode("Root"),
		World: NewWorld("World"),
	}
}

// Library returns the Library from which this Scene was loaded. If it was created through code and not associated with a Library, this function will return nil.
func (scene *Scene) Library() *Library {
	return scene.library
}

// Models returns every visible Model in the scenegraph whose parents are also visible, in hierarchy order.
func (scene *Scene) Models() []*Model {
	out := []*Model{}
	var walk func(node INode)
	walk = func(node INode) {
		if !node.Visible() {
			return
		}
		if m, ok := node.(*Model); ok && m.Mesh != nil {
			out = append(out, m)
		}
		for _, child := range node.Children() {
			walk(child)
		}
	}
	walk(scene.Root)
	return out
}

// Lights returns every light in the scenegraph that is on, plus the World's ambient light if it's on and has energy.
func (scene *Scene) Lights() []ILight {
	out := []ILight{}
	if scene.World != nil && scene.World.AmbientLight != nil && scene.World.AmbientLight.On && scene.World.AmbientLight.Energy > 0 {
		out = append(out, scene.World.AmbientLight)
	}
	for _, node := range scene.Root.ChildrenRecursive() {
		if l, ok := node.(ILight); ok && l.IsOn() {
			out = append(out, l)
		}
	}
	return out
}

// FindNode searches the scenegraph for the first Node with the name given, or returns nil.
func (scene *Scene) FindNode(name string) INode {
	for _, node := range scene.Root.ChildrenRecursive() {
		if node.Name() == name {
			return node
		}
	}
	return nil
}
