package utils

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// GenerateNoiseVoxelList returns a voxel-list document with roughly
// percentage percent of an extent^3 cube filled with random colours.
func GenerateNoiseVoxelList(percentage float64, extent int, r *rand.Rand) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	if extent < 1 {
		extent = 1
	}
	total := extent * extent * extent
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// Fisher-Yates over the first 'want' positions only
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# noise %d%% of %dx%dx%d\n", int(percentage), extent, extent, extent)
	for k := 0; k < want; k++ {
		i := idx[k]
		x := i % extent
		y := (i / extent) % extent
		z := i / (extent * extent)
		fmt.Fprintf(&sb, "%d %d %d %06x\n", x, y, z, r.Intn(0xFFFFFF)+1)
	}
	return sb.String()
}

// RunGenerateNoise writes a random voxel-list file for testing and demos.
func RunGenerateNoise(percentage float64, extent int, outPath string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	doc := GenerateNoiseVoxelList(percentage, extent, r)
	return os.WriteFile(outPath, []byte(doc), 0o644)
}
