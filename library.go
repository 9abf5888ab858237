package mayjs3d

// Library represents a collection of Scenes, Meshes and Materials, as loaded from a glTF (.gltf / .glb) file.
type Library struct {
	Scenes        []*Scene             // A slice of Scenes
	ExportedScene *Scene               // The default scene of the file
	Meshes        map[string]*Mesh     // A Map of Meshes to their names
	Materials     map[string]*Material // A Map of Materials to their names
}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{
		Scenes:    []*Scene{},
		Meshes:    map[string]*Mesh{},
		Materials: map[string]*Material{},
	}
}

// FindScene searches all scenes in a Library to find the one with the provided name. If a scene with the given name isn't found,
// FindScene will return nil.
func (lib *Library) FindScene(name string) *Scene {
	for _, scene := range lib.Scenes {
		if scene.Name == name {
			return scene
		}
	}
	return nil
}

// AddScene adds a new Scene with the given name to the Library and returns it.
func (lib *Library) AddScene(sceneName string) *Scene {
	newScene := NewScene(sceneName)
	newScene.library = lib
	lib.Scenes = append(lib.Scenes, newScene)
	return newScene
}

// FindNode allows you to find a node by name by searching through each of a Library's scenes. If the Node with the given name isn't found,
// FindNode will return nil.
func (lib *Library) FindNode(objectName string) INode {
	for _, scene := range lib.Scenes {
		if n := scene.FindNode(objectName); n != nil {
			return n
		}
	}
	return nil
}

// Model returns a single Model holding the contents of the exported (or first) scene, ready to be positioned and added to
// another Scene. The returned Model has no Mesh of its own; the loaded Models are cloned beneath it. It returns nil if the
// Library holds no scenes.
func (lib *Library) Model(name string) *Model {

	scene := lib.ExportedScene
	if scene == nil {
		if len(lib.Scenes) == 0 {
			return nil
		}
		scene = lib.Scenes[0]
	}

	group := NewModel(nil, name)

	for _, child := range scene.Root.Children() {
		if m, ok := child.(*Model); ok {
			group.AddChildren(m.Clone())
		}
	}

	return group

}
