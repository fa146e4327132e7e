package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
	"github.com/kamal-hamza/icecofin/internal/core/ports"
)

// DescriptorLister finds descriptor files in a directory
type DescriptorLister interface {
	List(ctx context.Context, dir, suffix string) ([]string, error)
}

// InspectService reads descriptors back for display
type InspectService struct {
	repo   ports.DescriptorRepository
	lister DescriptorLister
	suffix string
}

func NewInspectService(repo ports.DescriptorRepository, lister DescriptorLister, suffix string) *InspectService {
	if suffix == "" {
		suffix = domain.DefaultSuffix
	}
	return &InspectService{repo: repo, lister: lister, suffix: suffix}
}

// Load returns the descriptor stored at path
func (s *InspectService) Load(ctx context.Context, path string) (*domain.Descriptor, error) {
	d, err := s.repo.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return d, nil
}

// Candidates lists descriptor files in dir
func (s *InspectService) Candidates(ctx context.Context, dir string) ([]string, error) {
	if s.lister == nil {
		return nil, nil
	}
	paths, err := s.lister.List(ctx, dir, s.suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptors: %w", err)
	}
	return paths, nil
}
