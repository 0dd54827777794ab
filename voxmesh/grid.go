package voxmesh

// Voxel is one entry of a sparse voxel list: an integer grid position and a
// packed RGBA colour.
type Voxel struct {
	Pos    [3]int
	Colour uint32
}

// AxisConvention selects which vertical axis convention the voxel list uses.
// Lists authored Y-up get their Y and Z swapped when placed into the grid so
// the mesher always sees Z as depth.
type AxisConvention uint8

const (
	AxisZUp AxisConvention = iota
	AxisYUp
)

// ParseAxisConvention maps the CLI spelling to an AxisConvention.
func ParseAxisConvention(s string) (AxisConvention, bool) {
	switch s {
	case "", "z-up":
		return AxisZUp, true
	case "y-up":
		return AxisYUp, true
	}
	return AxisZUp, false
}

// Grid is a dense colour grid indexed z*Y*X + y*X + x. A zero colour means
// no voxel. The mesher treats it as read-only.
type Grid struct {
	Colours []uint32
	Dims    [3]int
}

// BuildGrid computes the bounding box of the voxel list and places every
// colour into a dense grid sized to that box. An empty list yields an empty
// grid. Later duplicates of a position overwrite earlier ones.
func BuildGrid(voxels []Voxel, axes AxisConvention) *Grid {
	if len(voxels) == 0 {
		return &Grid{}
	}

	mins := voxels[0].Pos
	maxs := voxels[0].Pos
	for _, v := range voxels[1:] {
		for a := 0; a < 3; a++ {
			if v.Pos[a] < mins[a] {
				mins[a] = v.Pos[a]
			}
			if v.Pos[a] > maxs[a] {
				maxs[a] = v.Pos[a]
			}
		}
	}
	if axes == AxisYUp {
		mins[1], mins[2] = mins[2], mins[1]
		maxs[1], maxs[2] = maxs[2], maxs[1]
	}

	var dims [3]int
	for a := 0; a < 3; a++ {
		dims[a] = maxs[a] - mins[a] + 1
	}

	grid := &Grid{
		Colours: make([]uint32, dims[0]*dims[1]*dims[2]),
		Dims:    dims,
	}
	for _, v := range voxels {
		p := v.Pos
		if axes == AxisYUp {
			p[1], p[2] = p[2], p[1]
		}
		x := p[0] - mins[0]
		y := p[1] - mins[1]
		z := p[2] - mins[2]
		grid.Colours[z*dims[1]*dims[0]+y*dims[0]+x] = v.Colour
	}
	return grid
}
