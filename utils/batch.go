package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchJob is one conversion in a batch file.
type BatchJob struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Scale  string `yaml:"scale"`
	Axis   string `yaml:"axis"`
	GLB    string `yaml:"glb"`
}

// BatchFile is the YAML document consumed by the batch command.
type BatchFile struct {
	Jobs []BatchJob `yaml:"jobs"`
}

// RunBatch runs every job of a YAML batch file in order. Each job converts a
// voxel list to a .vmesh and optionally exports a .glb next to it. The first
// failing job aborts the batch.
func RunBatch(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var batch BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("invalid batch file %s: %w", path, err)
	}
	if len(batch.Jobs) == 0 {
		return fmt.Errorf("batch file %s has no jobs", path)
	}

	for i, job := range batch.Jobs {
		if job.Input == "" || job.Output == "" {
			return fmt.Errorf("job %d: input and output are required", i+1)
		}
		if err := RunVoxels2Mesh(job.Input, job.Output, job.Scale, job.Axis); err != nil {
			return fmt.Errorf("job %d (%s): %w", i+1, job.Input, err)
		}
		if job.GLB != "" {
			if err := RunMesh2GLB(job.Output, job.GLB); err != nil {
				return fmt.Errorf("job %d (%s): %w", i+1, job.Input, err)
			}
		}
		fmt.Printf("[%d/%d] %s -> %s\n", i+1, len(batch.Jobs), job.Input, job.Output)
	}
	return nil
}
