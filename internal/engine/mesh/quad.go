// Package mesh provides the static quad geometry for the grove scene
// and its OpenGL buffer plumbing. Vertices are interleaved as
// position(3) normal(3) texcoord(2).
package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stride is the byte size of one interleaved vertex.
const Stride = 8 * 4

// FloorVertices is a 10x10 ground quad with the texture tiled 20 times.
var FloorVertices = []float32{
	// positions        normals     texture coords
	5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 20.0, 0.0,
	-5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 0.0, 0.0,
	-5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 0.0, 20.0,

	5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 20.0, 0.0,
	-5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 0.0, 20.0,
	5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 20.0, 20.0,
}

// SkyVertices is the same quad with a coarser 5x tile, placed overhead
// by the scene's model transform.
var SkyVertices = []float32{
	5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 5.0, 0.0,
	-5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 0.0, 0.0,
	-5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 0.0, 5.0,

	5.0, -0.2, 5.0, 0.0, 1.0, 0.0, 5.0, 0.0,
	-5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 0.0, 5.0,
	5.0, -0.2, -5.0, 0.0, 1.0, 0.0, 5.0, 5.0,
}

// WallVertices is a 2:0.5 upright quad; the scene scales and rotates it
// into the four boundary walls.
var WallVertices = []float32{
	1.0, 0.25, 0.0, 0.0, 0.0, -1.0, 1.0, 0.0,
	-1.0, 0.25, 0.0, 0.0, 0.0, -1.0, 0.0, 0.0,
	-1.0, -0.25, 0.0, 0.0, 0.0, -1.0, 0.0, 1.0,

	1.0, 0.25, 0.0, 0.0, 0.0, -1.0, 1.0, 0.0,
	-1.0, -0.25, 0.0, 0.0, 0.0, -1.0, 0.0, 1.0,
	1.0, -0.25, 0.0, 0.0, 0.0, -1.0, 1.0, 1.0,
}

// NoteVertices is the billboard quad for the cut-out note textures.
// Texture y coordinates are swapped because the images load upside down.
var NoteVertices = []float32{
	0.0, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0,
	0.0, -0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 1.0,
	1.0, -0.5, 0.0, 0.0, 1.0, -1.0, 1.0, 1.0,

	0.0, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0, 0.0,
	1.0, -0.5, 0.0, 0.0, 1.0, -1.0, 1.0, 1.0,
	1.0, 0.5, 0.0, 0.0, 1.0, -1.0, 1.0, 0.0,
}

// Quad is uploaded quad geometry.
type Quad struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewQuad uploads interleaved vertex data and configures the attribute
// layout (location 0 position, 1 normal, 2 texcoord).
func NewQuad(vertices []float32) *Quad {
	q := &Quad{
		count: int32(len(vertices) / 8),
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, Stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, Stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, Stride, 6*4)

	gl.BindVertexArray(0)
	return q
}

// Draw binds the quad and issues its triangles.
func (q *Quad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, q.count)
	gl.BindVertexArray(0)
}

// Destroy releases the GL buffers.
func (q *Quad) Destroy() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
