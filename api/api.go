// Package api exposes bytes-in/bytes-out operations suitable for embedding
// and for the wasm bindings.
package api

import (
	"fmt"

	"github.com/rookieCookies/voxel-mesher/utils"
	"github.com/rookieCookies/voxel-mesher/voxmesh"
)

// VoxelsToMesh converts a textual voxel list into encoded .vmesh bytes.
// scale is "unit", a positive cell count, or empty for the default; axis is
// "z-up", "y-up" or empty.
func VoxelsToMesh(voxelList []byte, scale, axis string) ([]byte, error) {
	mesh, err := utils.BuildMeshFromVoxelList(voxelList, scale, axis)
	if err != nil {
		return nil, err
	}
	return mesh.Encode(), nil
}

// MeshToGLB converts encoded .vmesh bytes into binary glTF bytes.
func MeshToGLB(meshBytes []byte) ([]byte, error) {
	mesh, err := voxmesh.DecodeMesh(meshBytes)
	if err != nil {
		return nil, err
	}
	return utils.MeshToGLBBytes(mesh)
}

// PackMeshes builds a .vmeshpack from named .vmesh blobs.
func PackMeshes(files map[string][]byte) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files")
	}
	pack := &voxmesh.Pack{}
	for name, data := range files {
		if _, err := voxmesh.DecodeMesh(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		pack.Entries = append(pack.Entries, voxmesh.PackEntry{Name: name, Data: data})
	}
	return pack.Marshal(voxmesh.PackCompZstd)
}

// UnpackMeshPack returns a map of entry name to .vmesh bytes.
func UnpackMeshPack(packBytes []byte) (map[string][]byte, error) {
	pack, _, err := voxmesh.UnmarshalPack(packBytes)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(pack.Entries))
	for _, e := range pack.Entries {
		out[e.Name] = e.Data
	}
	return out, nil
}
