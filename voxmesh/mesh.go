// Package voxmesh turns dense voxel colour grids into triangulated surface
// meshes using greedy face merging, and serializes those meshes to a small
// versioned binary format.
package voxmesh

// Vertex is one corner of a quad: a mesh-local position plus the packed
// RGBA colour of the voxel face it belongs to.
type Vertex struct {
	Position [3]float32
	RGBA     uint32
}

// Quad is a single merged face: 4 coplanar corners in winding order.
// It only lives long enough to be expanded into two triangles.
type Quad struct {
	Colour  uint32
	Corners [4][3]float32
}

// Mesh is a vertex buffer plus a triangle index buffer. Every mesher-produced
// mesh holds 4 vertices and 6 indices per quad.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// AddQuad appends the quad's 4 corners as vertices and 6 indices forming two
// triangles that share the first/third-corner diagonal.
func (m *Mesh) AddQuad(q Quad) {
	k := uint32(len(m.Vertices))
	for _, c := range q.Corners {
		m.Vertices = append(m.Vertices, Vertex{Position: c, RGBA: q.Colour})
	}
	m.Indices = append(m.Indices, k, k+1, k+2, k+2, k+3, k)
}

// QuadCount returns the number of quads in a mesher-produced mesh.
func (m *Mesh) QuadCount() int { return len(m.Indices) / 6 }

// UnitScale returns the per-axis block scale that fits the whole grid into a
// unit cube (reciprocal of each dimension).
func UnitScale(dims [3]int) [3]float32 {
	var s [3]float32
	for a := 0; a < 3; a++ {
		if dims[a] > 0 {
			s[a] = 1 / float32(dims[a])
		}
	}
	return s
}

// CellScale returns a uniform block scale where the grid is measured in
// cells of size 1/cells on every axis.
func CellScale(cells int) [3]float32 {
	s := 1 / float32(cells)
	return [3]float32{s, s, s}
}
