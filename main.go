//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"

	"github.com/rookieCookies/voxel-mesher/utils"
	"github.com/rookieCookies/voxel-mesher/voxmesh"
)

func usage() {
	fmt.Println("Usage: voxmesh <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  mesh input.voxels output.vmesh [scale] [axis]   (greedy-mesh a voxel list; scale: 'unit' or cell count; axis: 'z-up'/'y-up')")
	fmt.Println("  mesh2glb input.vmesh output.glb                 (convert .vmesh -> binary glTF)")
	fmt.Println("  pack output.vmeshpack input1.vmesh [...]        (bundle meshes, zstd compressed)")
	fmt.Println("  unpack input.vmeshpack output_dir               (extract .vmesh files from a pack)")
	fmt.Println("  batch jobs.yaml                                 (run a YAML list of conversions)")
	fmt.Println("  gennoise <fill%> <extent> <output.voxels>       (generate a random voxel list)")
	fmt.Println()
	fmt.Println("The bare form 'voxmesh input.voxels output.vmesh [scale]' is also accepted.")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "mesh":
		if len(os.Args) < 4 || len(os.Args) > 6 {
			usage()
			os.Exit(1)
		}
		runMesh(os.Args[2:])
	case "mesh2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunMesh2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "pack":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.CreatePack(os.Args[3:], os.Args[2], voxmesh.PackCompZstd); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "unpack":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.UnpackToDir(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "batch":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunBatch(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		var perc float64
		var extent int
		if _, err := fmt.Sscan(os.Args[2], &perc); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[3], &extent); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenerateNoise(perc, extent, os.Args[4]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		// bare form: voxmesh input.voxels output.vmesh [scale] [axis]
		if len(os.Args) >= 3 && len(os.Args) <= 5 {
			runMesh(os.Args[1:])
			break
		}
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}

func runMesh(args []string) {
	scale, axis := "", ""
	if len(args) >= 3 {
		scale = args[2]
	}
	if len(args) >= 4 {
		axis = args[3]
	}
	if err := utils.RunVoxels2Mesh(args[0], args[1], scale, axis); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
