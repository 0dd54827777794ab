package voxmesh

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// PackCompression indicates the compression used for the pack content section.
type PackCompression uint8

const (
	PackCompNone PackCompression = 0
	PackCompZlib PackCompression = 1
	PackCompZstd PackCompression = 2
)

const (
	packMagicStr = "VMSHPACK"
	packVersion  = 1
)

// PackEntry is a single named mesh inside a pack. Data holds the encoded
// mesh bytes as produced by Mesh.Encode.
type PackEntry struct {
	Name string
	Data []byte
}

// Pack bundles multiple encoded meshes into one file. Every entry carries an
// xxhash64 checksum that is verified on unmarshal.
type Pack struct {
	Entries []PackEntry
}

// Marshal encodes the pack with the given content compression.
func (p *Pack) Marshal(comp PackCompression) ([]byte, error) {
	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, uint32(len(p.Entries)))
	for _, e := range p.Entries {
		nb := []byte(e.Name)
		if len(nb) > 0xFFFF {
			return nil, fmt.Errorf("entry name too long: %s", e.Name)
		}
		_ = binary.Write(&content, binary.LittleEndian, uint16(len(nb)))
		_, _ = content.Write(nb)
		_ = binary.Write(&content, binary.LittleEndian, xxhash.Sum64(e.Data))
		_ = binary.Write(&content, binary.LittleEndian, uint32(len(e.Data)))
		_, _ = content.Write(e.Data)
	}

	var finalContent []byte
	switch comp {
	case PackCompNone:
		finalContent = content.Bytes()
	case PackCompZlib:
		var buf bytes.Buffer
		zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if _, err := zw.Write(content.Bytes()); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		finalContent = buf.Bytes()
	case PackCompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		finalContent = enc.EncodeAll(content.Bytes(), nil)
	default:
		return nil, fmt.Errorf("unsupported pack compression: %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(packMagicStr)
	_ = binary.Write(&out, binary.LittleEndian, uint8(packVersion))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_, _ = out.Write(finalContent)
	return out.Bytes(), nil
}

// UnmarshalPack parses a pack, decompressing the content section and
// verifying every entry's checksum. It returns the compression that was used.
func UnmarshalPack(data []byte) (*Pack, PackCompression, error) {
	if len(data) < 10 || string(data[:8]) != packMagicStr {
		return nil, 0, fmt.Errorf("not a valid mesh pack")
	}
	if data[8] != packVersion {
		return nil, 0, fmt.Errorf("unsupported pack version: %d", data[8])
	}
	comp := PackCompression(data[9])
	contentBytes := data[10:]
	switch comp {
	case PackCompNone:
		// no-op
	case PackCompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(contentBytes))
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, 0, err
		}
		contentBytes = b
	case PackCompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, 0, err
		}
		defer dec.Close()
		b, err := dec.DecodeAll(contentBytes, nil)
		if err != nil {
			return nil, 0, err
		}
		contentBytes = b
	default:
		return nil, 0, fmt.Errorf("unsupported pack compression: %d", comp)
	}

	r := bytes.NewReader(contentBytes)
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, 0, err
	}
	pack := &Pack{Entries: make([]PackEntry, n)}
	for i := uint32(0); i < n; i++ {
		var nameLen uint16
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, 0, err
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(r, nameBytes); err != nil {
			return nil, 0, err
		}
		var sum uint64
		if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
			return nil, 0, err
		}
		var dlen uint32
		if err := binary.Read(r, binary.LittleEndian, &dlen); err != nil {
			return nil, 0, err
		}
		payload := make([]byte, dlen)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, 0, err
		}
		if xxhash.Sum64(payload) != sum {
			return nil, 0, fmt.Errorf("checksum mismatch for entry %q", string(nameBytes))
		}
		pack.Entries[i] = PackEntry{Name: string(nameBytes), Data: payload}
	}
	return pack, comp, nil
}
