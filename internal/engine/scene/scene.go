// Package scene owns the grove geometry, textures and lighting shader,
// and draws the full frame: floor, sky, boundary walls, note billboards
// and the tree model.
package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/dusklight/grovewalk/internal/config"
	"github.com/dusklight/grovewalk/internal/engine/lighting"
	"github.com/dusklight/grovewalk/internal/engine/mesh"
	"github.com/dusklight/grovewalk/internal/engine/model"
	"github.com/dusklight/grovewalk/internal/engine/scene/shaders"
	"github.com/dusklight/grovewalk/internal/engine/shader"
	"github.com/dusklight/grovewalk/internal/engine/texture"
	"github.com/dusklight/grovewalk/internal/logger"
)

// notePositions are the world positions of the three note billboards.
var notePositions = []mgl32.Vec3{
	{-0.3, 1.5, 0.65},
	{-0.3, 1.5, -2.3},
	{0.5, 1.5, -0.6},
}

// Scene holds all drawable content and the lighting shader.
type Scene struct {
	program *shader.Program

	floor *mesh.Quad
	sky   *mesh.Quad
	wall  *mesh.Quad
	note  *mesh.Quad

	floorTex uint32
	skyTex   uint32
	wallTex  uint32
	noteTexs []uint32

	tree *model.Model

	// AlphaThreshold is the cut-out transparency threshold uploaded to
	// the fragment shader each frame.
	AlphaThreshold float32
}

// New compiles the scene shader and loads all geometry and assets.
// Missing textures and a missing tree model are logged and tolerated;
// a shader failure is fatal.
func New(assets config.AssetsConfig) (*Scene, error) {
	s := &Scene{
		AlphaThreshold: lighting.DefaultAlphaThreshold,
	}

	var err error
	s.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	s.floor = mesh.NewQuad(mesh.FloorVertices)
	s.sky = mesh.NewQuad(mesh.SkyVertices)
	s.wall = mesh.NewQuad(mesh.WallVertices)
	s.note = mesh.NewQuad(mesh.NoteVertices)

	s.floorTex = texture.Load(filepath.Join(assets.Dir, assets.FloorTexture), true)
	s.skyTex = texture.Load(filepath.Join(assets.Dir, assets.SkyTexture), true)
	s.wallTex = texture.Load(filepath.Join(assets.Dir, assets.WallTexture), true)
	for _, name := range assets.NoteTextures {
		s.noteTexs = append(s.noteTexs, texture.Load(filepath.Join(assets.Dir, name), true))
	}

	s.tree, err = model.Load(filepath.Join(assets.Dir, assets.TreeModel))
	if err != nil {
		logger.Error("tree model failed to load", zap.Error(err))
		s.tree = nil
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	return s, nil
}

// Render draws one frame with the given matrices and lights.
func (s *Scene) Render(projection, view mgl32.Mat4, viewPos mgl32.Vec3,
	dir lighting.DirectionalLight, spot lighting.SpotLight, spotOn bool) {

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := s.program
	p.Use()

	p.SetVec3("dirLight.direction", dir.Direction)
	p.SetVec3("dirLight.ambient", dir.Ambient)
	p.SetVec3("dirLight.diffuse", dir.Diffuse)
	p.SetVec3("dirLight.specular", dir.Specular)

	p.SetBool("spotLightOn", spotOn)
	p.SetVec3("spotLight.position", spot.Position)
	p.SetVec3("spotLight.direction", spot.Direction)
	p.SetVec3("spotLight.ambient", spot.Ambient)
	p.SetVec3("spotLight.diffuse", spot.Diffuse)
	p.SetVec3("spotLight.specular", spot.Specular)
	p.SetFloat("spotLight.constant", spot.Constant)
	p.SetFloat("spotLight.linear", spot.Linear)
	p.SetFloat("spotLight.quadratic", spot.Quadratic)
	p.SetFloat("spotLight.cutOff", spot.CutOff)
	p.SetFloat("spotLight.outerCutOff", spot.OuterCutOff)

	p.SetVec3("viewPosition", viewPos)
	p.SetFloat("material.shininess", lighting.DefaultShininess)
	p.SetFloat("alphaThreshold", s.AlphaThreshold)
	p.SetInt("material.texture_diffuse1", 0)

	p.SetMat4("projection", projection)
	p.SetMat4("view", view)

	// Floor
	s.bindTexture(s.floorTex)
	p.SetMat4("model", mgl32.Scale3D(15, 15, 15))
	s.floor.Draw()

	// Sky plane far overhead
	s.bindTexture(s.skyTex)
	p.SetMat4("model", mgl32.Translate3D(0, 35, 0).Mul4(mgl32.Scale3D(15, 15, 15)))
	s.sky.Draw()

	// Four boundary walls, each flipped to face inward.
	s.bindTexture(s.wallTex)
	for _, m := range wallTransforms() {
		p.SetMat4("model", m)
		s.wall.Draw()
	}

	// Note billboards use the cut-out path in the fragment shader.
	for i, tex := range s.noteTexs {
		if i >= len(notePositions) {
			break
		}
		s.bindTexture(tex)
		pos := notePositions[i]
		p.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
		s.note.Draw()
	}

	// The tree
	if s.tree != nil {
		p.SetMat4("model", mgl32.Translate3D(0, -3.2, 0).Mul4(mgl32.Scale3D(4.5, 4.5, 4.5)))
		s.tree.Draw()
	}
}

// wallTransforms returns the model matrices for the four boundary walls.
func wallTransforms() [4]mgl32.Mat4 {
	scale := mgl32.Scale3D(75, 75, 75)
	flip := mgl32.HomogRotate3DZ(mgl32.DegToRad(180)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(180)))

	return [4]mgl32.Mat4{
		// front
		mgl32.Translate3D(0, 15, -75).Mul4(scale),
		// back
		mgl32.Translate3D(0, 15, 75).Mul4(flip).Mul4(scale),
		// right
		mgl32.Translate3D(75, 15, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).Mul4(scale),
		// left
		mgl32.Translate3D(-75, 15, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).Mul4(flip).Mul4(scale),
	}
}

func (s *Scene) bindTexture(id uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Destroy releases all GL resources owned by the scene.
func (s *Scene) Destroy() {
	if s.program != nil {
		s.program.Delete()
	}
	for _, q := range []*mesh.Quad{s.floor, s.sky, s.wall, s.note} {
		if q != nil {
			q.Destroy()
		}
	}
	if s.tree != nil {
		s.tree.Destroy()
	}
}
