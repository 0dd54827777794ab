//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/rookieCookies/voxel-mesher/api"
)

func bytesToJS(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

func bytesFromJS(v js.Value) []byte {
	b := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(b, v)
	return b
}

func voxels2mesh(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing voxel list")
	}
	scale, axis := "", ""
	if len(args) >= 2 {
		scale = args[1].String()
	}
	if len(args) >= 3 {
		axis = args[2].String()
	}
	out, err := api.VoxelsToMesh(bytesFromJS(args[0]), scale, axis)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func mesh2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing mesh bytes")
	}
	out, err := api.MeshToGLB(bytesFromJS(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func packMeshes(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing files object")
	}
	filesObj := args[0]
	files := map[string][]byte{}
	keys := js.Global().Get("Object").Call("keys", filesObj)
	for i := 0; i < keys.Length(); i++ {
		k := keys.Index(i).String()
		files[k] = bytesFromJS(filesObj.Get(k))
	}
	out, err := api.PackMeshes(files)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func unpackMeshpack(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing pack bytes")
	}
	files, err := api.UnpackMeshPack(bytesFromJS(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	result := js.Global().Get("Object").New()
	for name, b := range files {
		result.Set(name, bytesToJS(b))
	}
	return result
}

func main() {
	js.Global().Set("voxels2mesh", js.FuncOf(voxels2mesh))
	js.Global().Set("mesh2glb", js.FuncOf(mesh2glb))
	js.Global().Set("packMeshes", js.FuncOf(packMeshes))
	js.Global().Set("unpackMeshpack", js.FuncOf(unpackMeshpack))
	select {}
}
