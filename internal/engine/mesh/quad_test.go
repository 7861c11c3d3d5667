package mesh

import "testing"

func TestQuadVertexData(t *testing.T) {
	for name, verts := range map[string][]float32{
		"floor": FloorVertices,
		"sky":   SkyVertices,
		"wall":  WallVertices,
		"note":  NoteVertices,
	} {
		if len(verts)%8 != 0 {
			t.Errorf("%s: vertex data length %d not a multiple of 8", name, len(verts))
		}
		if len(verts)/8 != 6 {
			t.Errorf("%s: expected 6 vertices (two triangles), got %d", name, len(verts)/8)
		}
	}
}

func TestFloorNormalsPointUp(t *testing.T) {
	for i := 0; i < len(FloorVertices); i += 8 {
		nx, ny, nz := FloorVertices[i+3], FloorVertices[i+4], FloorVertices[i+5]
		if nx != 0 || ny != 1 || nz != 0 {
			t.Fatalf("vertex %d: normal (%v,%v,%v), want (0,1,0)", i/8, nx, ny, nz)
		}
	}
}

func TestNoteTexCoordsFlipped(t *testing.T) {
	// Top-left corner of the billboard carries texcoord (0,0): the note
	// images come in upside down and the quad compensates.
	if NoteVertices[1] != 0.5 || NoteVertices[6] != 0 || NoteVertices[7] != 0 {
		t.Errorf("top-left vertex/uv unexpected: y=%v uv=(%v,%v)",
			NoteVertices[1], NoteVertices[6], NoteVertices[7])
	}
}
