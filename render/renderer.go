// Package render draws mayjs3d Scenes onto ebiten images. Triangles are lit per vertex, fogged by view depth,
// clipped against the camera's near plane and painter-sorted back to front before being drawn with DrawTriangles.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mayjs/mayjs3d"
)

// maxBatchVertices is the most vertices a single DrawTriangles call can address with uint16 indices.
const maxBatchVertices = math.MaxUint16 - 2

// FrameInfo holds counters from the last rendered frame.
type FrameInfo struct {
	Models    int // Models visited
	Triangles int // Triangles (after clipping) drawn
	Culled    int // Triangles rejected by backface culling
	Clipped   int // Triangles fully in front of the near plane or beyond the far plane
	Batches   int // DrawTriangles calls
}

// Renderer rasterizes Scenes with ebiten. It keeps its vertex and triangle buffers between frames, so a single Renderer
// should be reused rather than recreated. Renderer is not safe for concurrent use.
type Renderer struct {
	width, height int

	whiteImage *ebiten.Image

	tris     []sortingTriangle
	vertices []ebiten.Vertex
	indices  []uint16

	// FrameInfo describes the last call to Render.
	FrameInfo FrameInfo
}

// NewRenderer returns a Renderer targeting a w × h screen.
func NewRenderer(w, h int) *Renderer {
	r := &Renderer{}
	r.SetSize(w, h)
	return r
}

// SetSize sets the size of the screen the Renderer draws to. Values lower than 1 are raised to 1.
func (r *Renderer) SetSize(w, h int) {
	r.width = max(w, 1)
	r.height = max(h, 1)
}

// Size returns the size of the screen the Renderer draws to.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// Render clears screen to the Scene's World clear color and draws every visible Model of the Scene from the Camera's point of view.
// The Camera's projection is stretched to the Renderer's size.
func (r *Renderer) Render(screen *ebiten.Image, scene *mayjs3d.Scene, camera *mayjs3d.Camera) {

	var clearColor color.Color = color.Black
	if scene.World != nil {
		clearColor = scene.World.ClearColor.ToNRGBA64()
	}
	screen.Fill(clearColor)

	r.prepare(scene, camera)

	if len(r.tris) == 0 {
		return
	}

	if r.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		// Sampling the center texel keeps filtering from bleeding the image edge into triangles.
		r.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r.draw(screen)

}

// prepare fills the Renderer's triangle buffer with the lit, fogged, clipped and sorted triangles of the Scene.
func (r *Renderer) prepare(scene *mayjs3d.Scene, camera *mayjs3d.Camera) {

	r.FrameInfo = FrameInfo{}
	r.tris = r.tris[:0]

	world := scene.World
	if world == nil {
		world = mayjs3d.NewWorld("default")
	}

	lights := scene.Lights()
	mayjs3d.BeginLighting(lights)

	vp := camera.ViewProjection()
	camPos := camera.WorldPosition()
	near, far := camera.Near(), camera.Far()

	camW, camH := camera.Size()
	scaleX := float64(r.width) / float64(camW)
	scaleY := float64(r.height) / float64(camH)

	for _, model := range scene.Models() {

		r.FrameInfo.Models++

		mesh := model.Mesh
		mat := mesh.Material
		if mat == nil {
			mat = mayjs3d.NewMaterial("default")
		}

		transform := model.Transform()
		_, _, rotation := transform.Decompose()

		baseColor := mat.Color.Multiply(model.Color)

		for _, tri := range mesh.Triangles {

			var poly polygon

			for i, v := range tri.Vertices {
				pv := &poly.verts[i]
				pv.world = transform.MultVec(v.Position)
				pv.normal = rotation.MultVec(v.Normal).Unit()
				pv.color = v.Color.Multiply(baseColor)
			}
			poly.count = 3

			center := poly.verts[0].world.Add(poly.verts[1].world).Add(poly.verts[2].world).Divide(3)
			faceNormal := rotation.MultVec(tri.Normal).Unit()
			facing := faceNormal.Dot(camPos.Sub(center))

			if facing <= 0 {
				if mat.BackfaceCulling {
					r.FrameInfo.Culled++
					continue
				}
				// Double-sided faces are lit from the side the camera sees.
				for i := 0; i < 3; i++ {
					poly.verts[i].normal = poly.verts[i].normal.Invert()
				}
			}

			for i := 0; i < 3; i++ {
				poly.verts[i].clip = vp.MultVecW(poly.verts[i].world)
			}

			if poly.verts[0].clip.W > far && poly.verts[1].clip.W > far && poly.verts[2].clip.W > far {
				r.FrameInfo.Clipped++
				continue
			}

			poly = poly.clipNear(near)
			if poly.count < 3 {
				r.FrameInfo.Clipped++
				continue
			}

			for i := 0; i < poly.count; i++ {

				pv := &poly.verts[i]

				if !mat.Shadeless && world.LightingOn {
					light := mayjs3d.LightVertex(lights, pv.world, pv.normal)
					pv.color.R *= light.R
					pv.color.G *= light.G
					pv.color.B *= light.B
				}

				if !mat.FogLess {
					if f := world.FogFactor(pv.clip.W); f > 0 {
						alpha := pv.color.A
						pv.color = pv.color.Mix(world.FogColor, float32(f))
						pv.color.A = alpha
					}
				}

				pv.color = pv.color.Clamped()

				screenPos := camera.ClipToScreen(pv.clip)
				pv.screenX = float32(screenPos.X * scaleX)
				pv.screenY = float32(screenPos.Y * scaleY)

			}

			// The clipped polygon is convex, so it fans out from its first vertex.
			for i := 1; i+1 < poly.count; i++ {
				st := sortingTriangle{
					verts: [3]polygonVertex{poly.verts[0], poly.verts[i], poly.verts[i+1]},
				}
				st.depth = (st.verts[0].clip.W + st.verts[1].clip.W + st.verts[2].clip.W) / 3
				r.tris = append(r.tris, st)
			}

		}

	}

	sortBackToFront(r.tris)

	r.FrameInfo.Triangles = len(r.tris)

}

func (r *Renderer) draw(screen *ebiten.Image) {

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	flush := func() {
		if len(r.vertices) == 0 {
			return
		}
		screen.DrawTriangles(r.vertices, r.indices, r.whiteImage, nil)
		r.FrameInfo.Batches++
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
	}

	for _, tri := range r.tris {

		if len(r.vertices)+3 > maxBatchVertices {
			flush()
		}

		for _, v := range tri.verts {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.screenX,
				DstY:   v.screenY,
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: v.color.R,
				ColorG: v.color.G,
				ColorB: v.color.B,
				ColorA: v.color.A,
			})
		}

	}

	flush()

}
