// Package model loads Wavefront OBJ models with their MTL materials.
package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Vertex is one interleaved mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Group is a run of triangles sharing one material.
type Group struct {
	Material string
	Vertices []Vertex
}

// Object is a parsed OBJ file.
type Object struct {
	Groups   []Group
	MTLFiles []string
}

// Material holds the subset of MTL attributes the scene uses.
type Material struct {
	DiffuseMap string
}

// ParseOBJ parses Wavefront OBJ data. Faces with more than three
// vertices are fan-triangulated. Unknown directives are skipped.
func ParseOBJ(r io.Reader) (*Object, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		texCoords [][2]float32
	)

	obj := &Object{}
	current := -1 // index into obj.Groups

	ensureGroup := func(material string) {
		if current >= 0 && obj.Groups[current].Material == material {
			return
		}
		obj.Groups = append(obj.Groups, Group{Material: material})
		current = len(obj.Groups) - 1
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 components", lineNo)
			}
			u, err1 := parseFloat(fields[1])
			v, err2 := parseFloat(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad texcoord", lineNo)
			}
			texCoords = append(texCoords, [2]float32{u, v})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			ensureGroup(currentMaterial(obj, current))

			corners := make([]Vertex, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				vert, err := resolveVertex(spec, positions, texCoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, vert)
			}

			// Fan triangulation around the first corner.
			g := &obj.Groups[current]
			for i := 1; i+1 < len(corners); i++ {
				g.Vertices = append(g.Vertices, corners[0], corners[i], corners[i+1])
			}

		case "usemtl":
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			ensureGroup(name)

		case "mtllib":
			obj.MTLFiles = append(obj.MTLFiles, fields[1:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	// Drop empty groups left behind by usemtl with no following faces.
	groups := obj.Groups[:0]
	for _, g := range obj.Groups {
		if len(g.Vertices) > 0 {
			groups = append(groups, g)
		}
	}
	obj.Groups = groups

	return obj, nil
}

// ParseMTL parses material definitions, keeping the diffuse texture map.
func ParseMTL(r io.Reader) (map[string]Material, error) {
	materials := make(map[string]Material)
	current := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				current = fields[1]
				materials[current] = Material{}
			}
		case "map_Kd":
			if current != "" && len(fields) > 1 {
				m := materials[current]
				// The path is the last field; options may precede it.
				m.DiffuseMap = fields[len(fields)-1]
				materials[current] = m
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mtl: %w", err)
	}

	return materials, nil
}

func currentMaterial(obj *Object, current int) string {
	if current < 0 {
		return ""
	}
	return obj.Groups[current].Material
}

// resolveVertex resolves a face corner spec ("v", "v/vt", "v//vn",
// "v/vt/vn") against the attribute lists. Indices are 1-based; negative
// indices count from the end.
func resolveVertex(spec string, positions [][3]float32, texCoords [][2]float32, normals [][3]float32) (Vertex, error) {
	var vert Vertex

	parts := strings.Split(spec, "/")
	if len(parts) == 0 || parts[0] == "" {
		return vert, fmt.Errorf("bad face vertex %q", spec)
	}

	pi, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return vert, fmt.Errorf("face vertex %q: %w", spec, err)
	}
	vert.Position = positions[pi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(texCoords))
		if err != nil {
			return vert, fmt.Errorf("face texcoord %q: %w", spec, err)
		}
		vert.TexCoord = texCoords[ti]
	}

	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return vert, fmt.Errorf("face normal %q: %w", spec, err)
		}
		vert.Normal = normals[ni]
	}

	return vert, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = count + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return idx, nil
}

func parseFloats3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("need 3 components, have %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := parseFloat(fields[i])
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}
