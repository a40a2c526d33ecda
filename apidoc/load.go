package apidoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	ao "github.com/Gobd/apidocopenapi"
)

// File names written by the apiDoc extractor.
const (
	DataFile    = "api_data.json"
	ProjectFile = "api_project.json"
)

// Result is everything read from one apiDoc output directory.
type Result struct {
	Project   ao.Project
	Endpoints []ao.Endpoint
}

// LoadDir reads, normalizes and validates the apiDoc output in dir.
func LoadDir(dir string) (*Result, error) {
	project, err := loadFile(filepath.Join(dir, ProjectFile), DecodeProject)
	if err != nil {
		return nil, err
	}
	if err := ValidateProject(project); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ProjectFile, err)
	}

	endpoints, err := loadFile(filepath.Join(dir, DataFile), DecodeEndpoints)
	if err != nil {
		return nil, err
	}
	if err := ValidateEndpoints(endpoints); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", DataFile, err)
	}

	return &Result{Project: project, Endpoints: endpoints}, nil
}

func loadFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
