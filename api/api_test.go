package api

import (
	"bytes"
	"testing"

	"github.com/rookieCookies/voxel-mesher/voxmesh"
)

func TestVoxelsToMesh(t *testing.T) {
	meshBytes, err := VoxelsToMesh([]byte("0 0 0 ff8800\n"), "unit", "")
	if err != nil {
		t.Fatalf("VoxelsToMesh failed: %v", err)
	}
	mesh, err := voxmesh.DecodeMesh(meshBytes)
	if err != nil {
		t.Fatalf("mesh bytes did not decode: %v", err)
	}
	if got := mesh.QuadCount(); got != 6 {
		t.Fatalf("single voxel meshed to %d quads, want 6", got)
	}
}

func TestMeshToGLB(t *testing.T) {
	meshBytes, err := VoxelsToMesh([]byte("0 0 0 ff8800\n1 0 0 ff8800\n"), "4", "")
	if err != nil {
		t.Fatalf("VoxelsToMesh failed: %v", err)
	}
	glb, err := MeshToGLB(meshBytes)
	if err != nil {
		t.Fatalf("MeshToGLB failed: %v", err)
	}
	if !bytes.HasPrefix(glb, []byte("glTF")) {
		t.Fatalf("output is not a binary glTF")
	}
}

func TestPackUnpackMeshes(t *testing.T) {
	a, err := VoxelsToMesh([]byte("0 0 0 112233\n"), "", "")
	if err != nil {
		t.Fatalf("VoxelsToMesh failed: %v", err)
	}
	b, err := VoxelsToMesh([]byte("0 0 0 445566\n0 1 0 445566\n"), "", "y-up")
	if err != nil {
		t.Fatalf("VoxelsToMesh failed: %v", err)
	}

	packed, err := PackMeshes(map[string][]byte{"a.vmesh": a, "b.vmesh": b})
	if err != nil {
		t.Fatalf("PackMeshes failed: %v", err)
	}
	files, err := UnpackMeshPack(packed)
	if err != nil {
		t.Fatalf("UnpackMeshPack failed: %v", err)
	}
	if !bytes.Equal(files["a.vmesh"], a) || !bytes.Equal(files["b.vmesh"], b) {
		t.Fatalf("pack round-trip lost data")
	}
}

func TestPackMeshesRejectsGarbage(t *testing.T) {
	if _, err := PackMeshes(map[string][]byte{"x": []byte("not a mesh")}); err == nil {
		t.Fatalf("expected an error for a non-mesh entry")
	}
}
