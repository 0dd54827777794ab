package voxmesh

import (
	"encoding/binary"
	"math"
)

type byteWriter struct {
	buf []byte
}

func newByteWriter(capacity int) *byteWriter {
	return &byteWriter{buf: make([]byte, 0, capacity)}
}

func (w *byteWriter) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *byteWriter) writeUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *byteWriter) writeFloat32(v float32) {
	w.writeUint32(math.Float32bits(v))
}

func (w *byteWriter) bytes() []byte { return w.buf }

// byteReader reads little-endian fields from a buffer. Every read reports
// whether the buffer still had enough bytes; callers collapse any false
// into a single end-of-input error.
type byteReader struct {
	data []byte
	pos  int
}

// newByteReader fails only when there is no data to read at all.
func newByteReader(data []byte) (*byteReader, bool) {
	if len(data) == 0 {
		return nil, false
	}
	return &byteReader{data: data}, true
}

func (r *byteReader) readBytes(dst []byte) bool {
	if r.pos+len(dst) > len(r.data) {
		return false
	}
	copy(dst, r.data[r.pos:])
	r.pos += len(dst)
	return true
}

func (r *byteReader) readUint32() (uint32, bool) {
	if r.pos+4 > len(r.data) {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, true
}

func (r *byteReader) readFloat32() (float32, bool) {
	v, ok := r.readUint32()
	return math.Float32frombits(v), ok
}
