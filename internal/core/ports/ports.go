package ports

import (
	"context"
	"time"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
)

// DescriptorRepository defines the port for descriptor persistence
type DescriptorRepository interface {
	// Save writes the descriptor to path, replacing any existing content
	Save(ctx context.Context, path string, descriptor *domain.Descriptor) error

	// Load reads a descriptor back from path
	Load(ctx context.Context, path string) (*domain.Descriptor, error)
}

// FileTimes defines the port for reading file-system timestamps
type FileTimes interface {
	// Times returns the creation and modification time of path.
	// What "creation" means depends on the platform.
	Times(path string) (created time.Time, modified time.Time, err error)
}
