package model

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/dusklight/grovewalk/internal/engine/texture"
	"github.com/dusklight/grovewalk/internal/logger"
)

// drawGroup is one uploaded material group.
type drawGroup struct {
	vao     uint32
	vbo     uint32
	count   int32
	texture uint32
}

// Model is a textured OBJ model uploaded to the GPU.
type Model struct {
	groups []drawGroup
}

// Load reads an OBJ file, its MTL materials and their diffuse textures.
// Missing textures fall back to white; a missing OBJ file is an error.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", path, err)
	}
	defer f.Close()

	obj, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing model %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	materials := make(map[string]Material)
	for _, mtlFile := range obj.MTLFiles {
		mf, err := os.Open(filepath.Join(dir, mtlFile))
		if err != nil {
			logger.Warn("mtl file not found", zap.String("path", mtlFile), zap.Error(err))
			continue
		}
		parsed, err := ParseMTL(mf)
		mf.Close()
		if err != nil {
			logger.Warn("mtl parse failed", zap.String("path", mtlFile), zap.Error(err))
			continue
		}
		for name, mat := range parsed {
			materials[name] = mat
		}
	}

	m := &Model{}
	textures := make(map[string]uint32)
	fallback := uint32(0)

	for _, group := range obj.Groups {
		dg := drawGroup{
			count: int32(len(group.Vertices)),
		}

		// Resolve the group's diffuse texture, caching by map path.
		mapPath := materials[group.Material].DiffuseMap
		if mapPath != "" {
			if id, ok := textures[mapPath]; ok {
				dg.texture = id
			} else {
				id := texture.Load(filepath.Join(dir, filepath.FromSlash(mapPath)), true)
				textures[mapPath] = id
				dg.texture = id
			}
		} else {
			if fallback == 0 {
				fallback = texture.Fallback()
			}
			dg.texture = fallback
		}

		gl.GenVertexArrays(1, &dg.vao)
		gl.GenBuffers(1, &dg.vbo)
		gl.BindVertexArray(dg.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, dg.vbo)

		stride := int32(unsafe.Sizeof(Vertex{}))
		gl.BufferData(gl.ARRAY_BUFFER, len(group.Vertices)*int(stride), gl.Ptr(group.Vertices), gl.STATIC_DRAW)

		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(unsafe.Offsetof(Vertex{}.Normal)))
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, uintptr(unsafe.Offsetof(Vertex{}.TexCoord)))

		gl.BindVertexArray(0)

		m.groups = append(m.groups, dg)
	}

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("groups", len(m.groups)),
	)

	return m, nil
}

// Draw renders all material groups with their diffuse texture bound to
// texture unit 0.
func (m *Model) Draw() {
	for _, g := range m.groups {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, g.texture)
		gl.BindVertexArray(g.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
	gl.BindVertexArray(0)
}

// Destroy releases the GL buffers.
func (m *Model) Destroy() {
	for i := range m.groups {
		g := &m.groups[i]
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
		if g.vbo != 0 {
			gl.DeleteBuffers(1, &g.vbo)
		}
	}
	m.groups = nil
}
