package voxmesh

// MeshMagic identifies a serialized mesh file.
var MeshMagic = [10]byte{'V', 'O', 'X', 'E', 'L', '_', 'M', 'E', 'S', 'H'}

// MeshVersion is the format version written by Encode and the only version
// accepted by DecodeMesh.
var MeshVersion = [4]byte{0, 0, 0, 1}

// Encode serializes the mesh: magic, version, then the vertex and index
// buffers as little-endian fixed-width fields. It never fails.
func (m *Mesh) Encode() []byte {
	w := newByteWriter(len(MeshMagic) + len(MeshVersion) + 4 + 16*len(m.Vertices) + 4 + 4*len(m.Indices))
	w.writeBytes(MeshMagic[:])
	w.writeBytes(MeshVersion[:])

	w.writeUint32(uint32(len(m.Vertices)))
	for _, v := range m.Vertices {
		w.writeFloat32(v.Position[0])
		w.writeFloat32(v.Position[1])
		w.writeFloat32(v.Position[2])
		w.writeUint32(v.RGBA)
	}

	w.writeUint32(uint32(len(m.Indices)))
	for _, idx := range m.Indices {
		w.writeUint32(idx)
	}
	return w.bytes()
}

// DecodeMesh parses a serialized mesh. It validates the magic marker and the
// version tag, then reads the vertex and index buffers. Any truncation after
// a valid header returns ErrEndOfInput and the whole parse is discarded.
func DecodeMesh(data []byte) (*Mesh, error) {
	r, ok := newByteReader(data)
	if !ok {
		return nil, ErrInvalidReader
	}

	var magic [10]byte
	if !r.readBytes(magic[:]) {
		return nil, ErrEndOfInput
	}
	if magic != MeshMagic {
		return nil, ErrInvalidMagic
	}

	var version [4]byte
	if !r.readBytes(version[:]) {
		return nil, ErrEndOfInput
	}
	if version != MeshVersion {
		return nil, &InvalidVersionError{LibVersion: MeshVersion, FileVersion: version}
	}

	vertexCount, ok := r.readUint32()
	if !ok {
		return nil, ErrEndOfInput
	}
	mesh := &Mesh{}
	for i := uint32(0); i < vertexCount; i++ {
		var v Vertex
		for a := 0; a < 3; a++ {
			if v.Position[a], ok = r.readFloat32(); !ok {
				return nil, ErrEndOfInput
			}
		}
		if v.RGBA, ok = r.readUint32(); !ok {
			return nil, ErrEndOfInput
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	indexCount, ok := r.readUint32()
	if !ok {
		return nil, ErrEndOfInput
	}
	for i := uint32(0); i < indexCount; i++ {
		idx, ok := r.readUint32()
		if !ok {
			return nil, ErrEndOfInput
		}
		mesh.Indices = append(mesh.Indices, idx)
	}
	return mesh, nil
}
