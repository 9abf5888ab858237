package mayjs3d

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFLoadOptions alters how a glTF file is loaded.
type GLTFLoadOptions struct {
	// ConvertColorsTosRGB converts base color factors from linear space to sRGB. Defaults to true.
	ConvertColorsTosRGB bool
	// DoubleSided forces backface culling off for every loaded Material, regardless of the file's doubleSided flags.
	DoubleSided bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		ConvertColorsTosRGB: true,
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. External buffers referenced by a .gltf file are
// resolved relative to the file's directory.
// LoadGLTFFile will return a Library, and an error if the process fails.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Library, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	return loadGLTFDocument(doc, loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. Buffers must be embedded in the data.
// LoadGLTFData will return a Library, and an error if the process fails.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) (*Library, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}

	return loadGLTFDocument(doc, loadOptions)

}

func loadGLTFDocument(doc *gltf.Document, gltfLoadOptions *GLTFLoadOptions) (*Library, error) {

	if gltfLoadOptions == nil {
		gltfLoadOptions = DefaultGLTFLoadOptions()
	}

	library := NewLibrary()

	materials := make([]*Material, len(doc.Materials))

	for i, gltfMat := range doc.Materials {

		name := gltfMat.Name
		if name == "" {
			name = "material" + strconv.Itoa(i)
		}

		newMat := NewMaterial(name)
		newMat.library = library

		if gltfMat.PBRMetallicRoughness != nil && gltfMat.PBRMetallicRoughness.BaseColorFactor != nil {
			color := gltfMat.PBRMetallicRoughness.BaseColorFactor
			newMat.Color = NewColor(float32(color[0]), float32(color[1]), float32(color[2]), float32(color[3]))
		}

		if gltfLoadOptions.ConvertColorsTosRGB {
			newMat.Color = newMat.Color.ConvertTosRGB()
		}

		newMat.BackfaceCulling = !gltfMat.DoubleSided && !gltfLoadOptions.DoubleSided

		materials[i] = newMat
		library.Materials[name] = newMat

	}

	meshes := make([]*Mesh, len(doc.Meshes))

	for i, mesh := range doc.Meshes {

		name := mesh.Name
		if name == "" {
			name = "mesh" + strconv.Itoa(i)
		}

		newMesh := NewMesh(name)
		newMesh.library = library

		for _, prim := range mesh.Primitives {

			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posAccessor, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %s: read positions: %w", name, err)
			}

			var normals [][3]float32

			if normalAccessor, normalExists := prim.Attributes[gltf.NORMAL]; normalExists {
				normals, err = modeler.ReadNormal(doc, doc.Accessors[normalAccessor], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %s: read normals: %w", name, err)
				}
			}

			var uvs [][2]float32

			if texCoordAccessor, texCoordExists := prim.Attributes[gltf.TEXCOORD_0]; texCoordExists {
				uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[texCoordAccessor], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %s: read texture coordinates: %w", name, err)
				}
			}

			var indices []uint32

			if prim.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %s: read indices: %w", name, err)
				}
			} else {
				indices = make([]uint32, len(vertPos))
				for j := range indices {
					indices[j] = uint32(j)
				}
			}

			matColor := NewColor(1, 1, 1, 1)
			if prim.Material != nil && int(*prim.Material) < len(materials) {
				newMesh.Material = materials[int(*prim.Material)]
				matColor = newMesh.Material.Color
			}

			verts := make([]*Vertex, 0, len(indices))

			for _, index := range indices[:len(indices)-len(indices)%3] {

				if int(index) >= len(vertPos) {
					return nil, fmt.Errorf("mesh %s: index %d out of range", name, index)
				}

				p := vertPos[index]
				v := NewVertex(float64(p[0]), float64(p[1]), float64(p[2]), 0, 0)

				if int(index) < len(uvs) {
					v.U = float64(uvs[index][0])
					v.V = -(float64(uvs[index][1]) - 1)
				}

				if int(index) < len(normals) {
					n := normals[index]
					v.Normal = NewVector(float64(n[0]), float64(n[1]), float64(n[2]))
				}

				// Multiple primitives in one Mesh can carry different materials, so the color is baked into the vertices.
				v.Color = matColor
				verts = append(verts, v)

			}

			newMesh.AddTriangles(verts...)

		}

		// Vertex colors hold the primitive colors, so the Mesh-wide Material stays white.
		if newMesh.Material.library == library {
			newMesh.Material = newMesh.Material.Clone()
			newMesh.Material.Color = NewColor(1, 1, 1, 1)
		}

		for _, tri := range newMesh.Triangles {
			for _, v := range tri.Vertices {
				if v.Normal.IsZero() {
					v.Normal = tri.Normal
				}
			}
		}

		meshes[i] = newMesh
		library.Meshes[name] = newMesh

	}

	// Node / Object creation
	objects := make([]*Model, len(doc.Nodes))

	for i, node := range doc.Nodes {

		name := node.Name
		if name == "" {
			name = "node" + strconv.Itoa(i)
		}

		var mesh *Mesh
		if node.Mesh != nil && int(*node.Mesh) < len(meshes) {
			mesh = meshes[int(*node.Mesh)]
		}

		obj := NewModel(mesh, name)

		mtData := node.Matrix

		matrix := NewMatrix4()
		matrix.SetRow(0, Vector{mtData[0], mtData[1], mtData[2], mtData[3]})
		matrix.SetRow(1, Vector{mtData[4], mtData[5], mtData[6], mtData[7]})
		matrix.SetRow(2, Vector{mtData[8], mtData[9], mtData[10], mtData[11]})
		matrix.SetRow(3, Vector{mtData[12], mtData[13], mtData[14], mtData[15]})

		if !matrix.IsIdentity() {

			p, s, r := matrix.Decompose()

			obj.SetLocalPositionVec(p)
			obj.SetLocalScale(s.X, s.Y, s.Z)
			obj.SetLocalRotation(r)

		} else {

			obj.SetLocalPosition(node.Translation[0], node.Translation[1], node.Translation[2])
			obj.SetLocalScale(node.Scale[0], node.Scale[1], node.Scale[2])
			obj.SetLocalRotation(NewMatrix4FromQuaternion(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3]))

		}

		objects[i] = obj

	}

	for i, node := range doc.Nodes {
		for _, childIndex := range node.Children {
			if int(childIndex) < len(objects) {
				objects[i].AddChildren(objects[int(childIndex)])
			}
		}
	}

	// Set up scene roots

	for i, s := range doc.Scenes {

		name := s.Name
		if name == "" {
			name = "scene" + strconv.Itoa(i)
		}

		scene := library.AddScene(name)

		// Parent all parentless objects to the scene root to be visible.
		for _, n := range s.Nodes {
			if int(n) < len(objects) {
				scene.Root.AddChildren(objects[int(n)])
			}
		}

		if doc.Scene != nil && int(*doc.Scene) == i {
			library.ExportedScene = scene
		}

	}

	if len(library.Scenes) == 0 && len(objects) > 0 {
		// No scenes declared; expose every root node in a single scene.
		scene := library.AddScene("scene0")
		for _, obj := range objects {
			if obj.Parent() == nil {
				scene.Root.AddChildren(obj)
			}
		}
	}

	return library, nil

}
