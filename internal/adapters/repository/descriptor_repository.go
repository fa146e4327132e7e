package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
)

const indent = "    "

// JSONDescriptorRepository stores descriptors as indented JSON files
type JSONDescriptorRepository struct{}

func NewJSONDescriptorRepository() *JSONDescriptorRepository {
	return &JSONDescriptorRepository{}
}

// Save writes the descriptor to path, truncating any existing file
func (r *JSONDescriptorRepository) Save(ctx context.Context, path string, descriptor *domain.Descriptor) error {
	data, err := Encode(descriptor)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	return nil
}

// Load reads a descriptor from path
func (r *JSONDescriptorRepository) Load(ctx context.Context, path string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d domain.Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	return &d, nil
}

// List returns descriptor files in dir, sorted by name
func (r *JSONDescriptorRepository) List(ctx context.Context, dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsDescriptorFile(entry.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// Encode serializes a descriptor with 4-space indentation
func Encode(descriptor *domain.Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(descriptor); err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	return buf.Bytes(), nil
}
