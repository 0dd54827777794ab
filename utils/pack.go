package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rookieCookies/voxel-mesher/voxmesh"
)

// CreatePack reads encoded .vmesh files and writes a .vmeshpack to
// outputFile. Each input must decode as a mesh before it is accepted.
func CreatePack(inputFiles []string, outputFile string, comp voxmesh.PackCompression) error {
	if len(inputFiles) == 0 {
		return fmt.Errorf("no .vmesh files provided")
	}
	type item struct {
		name string
		data []byte
		err  error
	}
	items := make([]item, len(inputFiles))

	var wg sync.WaitGroup
	for i := range inputFiles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := inputFiles[i]
			b, err := os.ReadFile(path)
			if err != nil {
				items[i].err = err
				return
			}
			if _, err := voxmesh.DecodeMesh(b); err != nil {
				items[i].err = fmt.Errorf("%s: %w", path, err)
				return
			}
			items[i] = item{name: filepath.Base(path), data: b}
		}(i)
	}
	wg.Wait()

	pack := &voxmesh.Pack{Entries: make([]voxmesh.PackEntry, len(items))}
	for i, it := range items {
		if it.err != nil {
			return it.err
		}
		pack.Entries[i] = voxmesh.PackEntry{Name: it.name, Data: it.data}
	}
	data, err := pack.Marshal(comp)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, data, 0o644)
}

// UnpackToDir writes the .vmesh entries of a .vmeshpack into outputDir.
func UnpackToDir(packFile, outputDir string) error {
	data, err := os.ReadFile(packFile)
	if err != nil {
		return err
	}
	pack, _, err := voxmesh.UnmarshalPack(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(pack.Entries))
	for _, e := range pack.Entries {
		wg.Add(1)
		go func(e voxmesh.PackEntry) {
			defer wg.Done()
			if err := os.WriteFile(filepath.Join(outputDir, e.Name), e.Data, 0o644); err != nil {
				errCh <- err
			}
		}(e)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}
