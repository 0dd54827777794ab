package voxmesh

// maskCell records, for one cell of a slice plane, whether a visible face
// exists there, its colour, and whether it faces the negative sweep
// direction. A zero colour means no face.
type maskCell struct {
	colour  uint32
	negFace bool
}

// sampleVoxel returns the colour at p, treating everything outside the grid
// as empty.
func sampleVoxel(grid []uint32, dims [3]int, p [3]int) uint32 {
	if p[0] < 0 || p[1] < 0 || p[2] < 0 ||
		p[0] >= dims[0] || p[1] >= dims[1] || p[2] >= dims[2] {
		return 0
	}
	return grid[p[2]*dims[1]*dims[0]+p[1]*dims[0]+p[0]]
}

// GreedyMesh appends the visible surface of a dense voxel grid to mesh,
// merging coplanar same-coloured same-orientation faces into maximal
// rectangles. grid is indexed z*Y*X + y*X + x and a zero value means empty.
// Output positions are centered on the grid's midpoint and scaled
// component-wise by scale. The output is deterministic for identical input.
//
// GreedyMesh panics if len(grid) does not match dims; that is a caller bug,
// not a recoverable condition. An all-empty grid appends nothing.
func GreedyMesh(grid []uint32, dims [3]int, scale [3]float32, mesh *Mesh) {
	if len(grid) != dims[0]*dims[1]*dims[2] {
		panic("voxmesh: grid length does not match dimensions")
	}

	for d := 0; d < 3; d++ {
		u := (d + 1) % 3
		v := (d + 2) % 3

		// scratch for one slice, cleared cell by cell as quads are emitted
		mask := make([]maskCell, dims[u]*dims[v])
		var x [3]int

		// the -1 start captures faces on the grid's entering boundary
		for x[d] = -1; x[d] < dims[d]; {
			n := 0
			for x[v] = 0; x[v] < dims[v]; x[v]++ {
				for x[u] = 0; x[u] < dims[u]; x[u]++ {
					current := sampleVoxel(grid, dims, x)
					step := x
					step[d]++
					compare := sampleVoxel(grid, dims, step)

					// a face exists only across a solid/empty transition;
					// two touching solids of different colour produce none
					switch {
					case current == 0 && compare != 0:
						mask[n] = maskCell{colour: compare, negFace: true}
					case current != 0 && compare == 0:
						mask[n] = maskCell{colour: current, negFace: false}
					default:
						mask[n] = maskCell{}
					}
					n++
				}
			}

			x[d]++

			n = 0
			for j := 0; j < dims[v]; j++ {
				for i := 0; i < dims[u]; {
					cell := mask[n]
					if cell.colour == 0 {
						i++
						n++
						continue
					}

					// grow along u while the exact (colour, orientation)
					// pair keeps matching
					w := 1
					for i+w < dims[u] && mask[n+w] == cell {
						w++
					}

					// grow along v one full row at a time; a single
					// mismatch rejects the whole row
					h := 1
				grow:
					for j+h < dims[v] {
						for k := 0; k < w; k++ {
							if mask[n+k+h*dims[u]] != cell {
								break grow
							}
						}
						h++
					}

					x[u] = i
					x[v] = j
					var du, dv [3]int
					du[u] = w
					dv[v] = h
					mesh.AddQuad(makeQuad(cell, x, du, dv, dims, scale))

					for hh := 0; hh < h; hh++ {
						for ww := 0; ww < w; ww++ {
							mask[n+ww+hh*dims[u]] = maskCell{}
						}
					}

					i += w
					n += w
				}
			}
		}
	}
}

// makeQuad converts a merged rectangle into a quad: the origin is shifted so
// the grid is centered at the world origin, then everything is scaled. The
// winding is reversed for negative-facing quads so backface culling stays
// consistent on both sides of a sweep.
func makeQuad(cell maskCell, x, du, dv [3]int, dims [3]int, scale [3]float32) Quad {
	var origin, su, sv [3]float32
	for a := 0; a < 3; a++ {
		origin[a] = (float32(x[a]) - float32(dims[a])*0.5) * scale[a]
		su[a] = float32(du[a]) * scale[a]
		sv[a] = float32(dv[a]) * scale[a]
	}

	q := Quad{Colour: cell.colour}
	if cell.negFace {
		q.Corners = [4][3]float32{
			add3(origin, sv),
			add3(add3(origin, su), sv),
			add3(origin, su),
			origin,
		}
	} else {
		q.Corners = [4][3]float32{
			origin,
			add3(origin, su),
			add3(add3(origin, su), sv),
			add3(origin, sv),
		}
	}
	return q
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
