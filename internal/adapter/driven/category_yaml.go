package driven

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// CategoryYAMLSource reads category overrides from a YAML file of the form:
//
//	categories:
//	  "ESPN HD": Sports
//	  "Local 4 SD": Local
//
// It implements the driven.CategorySource port.
type CategoryYAMLSource struct {
	fs   afero.Fs
	path string
}

// NewCategoryYAMLSource creates a source for the file at path.
// An empty path yields no overrides. If fsys is nil, the OS filesystem is used.
func NewCategoryYAMLSource(fsys afero.Fs, path string) *CategoryYAMLSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &CategoryYAMLSource{fs: fsys, path: path}
}

type categoriesYAML struct {
	Categories map[string]string `yaml:"categories"`
}

// LoadCategories returns the overrides in the file.
// A missing file or empty path yields an empty map.
func (s *CategoryYAMLSource) LoadCategories(ctx context.Context) (map[string]string, error) {
	if s.path == "" {
		return map[string]string{}, nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var doc categoriesYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}

	if doc.Categories == nil {
		return map[string]string{}, nil
	}
	return doc.Categories, nil
}
