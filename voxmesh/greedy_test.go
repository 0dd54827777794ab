package voxmesh

import (
	"reflect"
	"testing"
)

func meshGrid(t *testing.T, grid []uint32, dims [3]int) *Mesh {
	t.Helper()
	mesh := &Mesh{}
	GreedyMesh(grid, dims, CellScale(1), mesh)
	return mesh
}

func solidGrid(dims [3]int, colour uint32) []uint32 {
	grid := make([]uint32, dims[0]*dims[1]*dims[2])
	for i := range grid {
		grid[i] = colour
	}
	return grid
}

func TestSingleVoxel(t *testing.T) {
	mesh := meshGrid(t, []uint32{0xFF0000FF}, [3]int{1, 1, 1})
	if got := mesh.QuadCount(); got != 6 {
		t.Fatalf("single voxel produced %d quads, want 6", got)
	}
	if len(mesh.Vertices) != 24 || len(mesh.Indices) != 36 {
		t.Fatalf("single voxel produced %d vertices / %d indices, want 24/36",
			len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestSolidBlockMergesToSixQuads(t *testing.T) {
	for _, dims := range [][3]int{
		{4, 1, 1},
		{1, 7, 1},
		{2, 2, 2},
		{3, 2, 5},
	} {
		mesh := meshGrid(t, solidGrid(dims, 0x11223344), dims)
		if got := mesh.QuadCount(); got != 6 {
			t.Fatalf("solid %v block produced %d quads, want 6", dims, got)
		}
	}
}

func TestEmptyGrid(t *testing.T) {
	dims := [3]int{3, 4, 5}
	mesh := meshGrid(t, make([]uint32, 3*4*5), dims)
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Fatalf("empty grid produced %d vertices / %d indices",
			len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestColourBoundaryProducesNoInteriorFace(t *testing.T) {
	// two touching voxels of different colours along x
	dims := [3]int{2, 1, 1}
	mesh := meshGrid(t, []uint32{0xFF0000FF, 0x00FF00FF}, dims)

	// 4 side faces split per voxel plus 2 end caps; an interior face would
	// make it 12
	if got := mesh.QuadCount(); got != 10 {
		t.Fatalf("two-colour pair produced %d quads, want 10", got)
	}

	// the shared plane sits at world x=0 after centering; no quad may lie
	// entirely in it
	for q := 0; q < len(mesh.Vertices); q += 4 {
		interior := true
		for _, v := range mesh.Vertices[q : q+4] {
			if v.Position[0] != 0 {
				interior = false
				break
			}
		}
		if interior {
			t.Fatalf("found a quad on the interior colour boundary at vertex %d", q)
		}
	}
}

func TestQuadColoursStayUniform(t *testing.T) {
	dims := [3]int{2, 1, 1}
	mesh := meshGrid(t, []uint32{0xFF0000FF, 0x00FF00FF}, dims)
	for q := 0; q < len(mesh.Vertices); q += 4 {
		c := mesh.Vertices[q].RGBA
		for _, v := range mesh.Vertices[q : q+4] {
			if v.RGBA != c {
				t.Fatalf("quad at vertex %d mixes colours %08x and %08x", q, c, v.RGBA)
			}
		}
	}
}

func TestIndexInvariants(t *testing.T) {
	dims := [3]int{8, 6, 7}
	grid := make([]uint32, dims[0]*dims[1]*dims[2])
	// deterministic mixed pattern with holes and two colours
	for i := range grid {
		switch i % 5 {
		case 0, 3:
			grid[i] = 0xAA5500FF
		case 1:
			grid[i] = 0x0055AAFF
		}
	}
	mesh := meshGrid(t, grid, dims)

	if len(mesh.Vertices)%4 != 0 {
		t.Fatalf("vertex count %d is not a multiple of 4", len(mesh.Vertices))
	}
	if len(mesh.Indices)%6 != 0 {
		t.Fatalf("index count %d is not a multiple of 6", len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d at %d out of range (%d vertices)", idx, i, len(mesh.Vertices))
		}
	}
}

func TestMeshingIsDeterministic(t *testing.T) {
	dims := [3]int{5, 5, 5}
	grid := make([]uint32, dims[0]*dims[1]*dims[2])
	for i := range grid {
		if i%3 != 0 {
			grid[i] = uint32(i)<<8 | 0xFF
		}
	}
	a := meshGrid(t, grid, dims)
	b := meshGrid(t, grid, dims)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical input produced different meshes")
	}
}

func TestBlockScaleApplied(t *testing.T) {
	// a unit-scaled single voxel spans [-0.5, 0.5] on every axis
	mesh := &Mesh{}
	GreedyMesh([]uint32{0xFFFFFFFF}, [3]int{1, 1, 1}, UnitScale([3]int{1, 1, 1}), mesh)
	for _, v := range mesh.Vertices {
		for a := 0; a < 3; a++ {
			if v.Position[a] != -0.5 && v.Position[a] != 0.5 {
				t.Fatalf("unexpected coordinate %v", v.Position)
			}
		}
	}
}

func TestGridLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a mismatched grid length")
		}
	}()
	GreedyMesh(make([]uint32, 7), [3]int{2, 2, 2}, CellScale(1), &Mesh{})
}
