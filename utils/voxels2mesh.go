package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rookieCookies/voxel-mesher/voxmesh"
)

// ResolveScale maps the CLI scale argument to a per-axis block scale.
// "unit" (or an empty argument) fits the grid into a unit cube; a positive
// integer is a fixed cell count, giving cells of size 1/count.
func ResolveScale(arg string, dims [3]int) ([3]float32, error) {
	if arg == "" || arg == "unit" {
		return voxmesh.UnitScale(dims), nil
	}
	cells, err := strconv.Atoi(arg)
	if err != nil || cells <= 0 {
		return [3]float32{}, fmt.Errorf("invalid scale %q, expected 'unit' or a positive cell count", arg)
	}
	return voxmesh.CellScale(cells), nil
}

// BuildMeshFromVoxelList parses a textual voxel list and greedy-meshes it.
func BuildMeshFromVoxelList(data []byte, scaleArg, axisArg string) (*voxmesh.Mesh, error) {
	voxels, err := voxmesh.ParseVoxelList(data)
	if err != nil {
		return nil, err
	}
	axes, ok := voxmesh.ParseAxisConvention(axisArg)
	if !ok {
		return nil, fmt.Errorf("invalid axis convention %q, expected 'z-up' or 'y-up'", axisArg)
	}
	grid := voxmesh.BuildGrid(voxels, axes)
	scale, err := ResolveScale(scaleArg, grid.Dims)
	if err != nil {
		return nil, err
	}
	mesh := &voxmesh.Mesh{}
	voxmesh.GreedyMesh(grid.Colours, grid.Dims, scale, mesh)
	return mesh, nil
}

// RunVoxels2Mesh converts a voxel-list file into an encoded .vmesh file.
func RunVoxels2Mesh(inPath, outPath, scaleArg, axisArg string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("unable to read the data file at '%s': %w", inPath, err)
	}
	mesh, err := BuildMeshFromVoxelList(data, scaleArg, axisArg)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, mesh.Encode(), 0o644)
}
