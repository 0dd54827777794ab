package voxmesh

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseVoxelList parses the textual voxel-list format: one voxel per line as
// `x y z rrggbb` with whitespace-separated integer coordinates and a hex RGB
// colour. Blank lines and lines starting with '#' are skipped. The stored
// colour is the RGB value shifted into the high bytes with full alpha.
// Errors carry the 1-based line number of the offending line.
func ParseVoxelList(data []byte) ([]Voxel, error) {
	var voxels []Voxel

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		v, ok := parseVoxelLine(fields)
		if !ok {
			return nil, fmt.Errorf("invalid syntax on line %d, found %q expected '[x] [y] [z] [hex]'", lineNo, line)
		}
		voxels = append(voxels, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
	}
	return voxels, nil
}

func parseVoxelLine(fields []string) (Voxel, bool) {
	if len(fields) != 4 {
		return Voxel{}, false
	}
	var v Voxel
	for a := 0; a < 3; a++ {
		n, err := strconv.Atoi(fields[a])
		if err != nil {
			return Voxel{}, false
		}
		v.Pos[a] = n
	}
	rgb, err := strconv.ParseUint(fields[3], 16, 24)
	if err != nil {
		return Voxel{}, false
	}
	v.Colour = uint32(rgb)<<8 | 0xFF
	return v, true
}
