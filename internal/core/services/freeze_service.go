package services

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
	"github.com/kamal-hamza/icecofin/internal/core/ports"
)

// ProgressFunc builds a writer that receives every byte read from the source.
// Returning nil disables progress for that file.
type ProgressFunc func(size int64, name string) io.Writer

// FreezeService handles freezing files into descriptors
type FreezeService struct {
	repo     ports.DescriptorRepository
	times    ports.FileTimes
	suffix   string
	logger   *slog.Logger
	progress ProgressFunc
}

// FreezeOption configures a FreezeService
type FreezeOption func(*FreezeService)

// WithSuffix sets the suffix used when no destination is given
func WithSuffix(suffix string) FreezeOption {
	return func(s *FreezeService) {
		if suffix != "" {
			s.suffix = suffix
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) FreezeOption {
	return func(s *FreezeService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress attaches a progress writer factory
func WithProgress(fn ProgressFunc) FreezeOption {
	return func(s *FreezeService) {
		s.progress = fn
	}
}

// NewFreezeService creates a new freeze service
func NewFreezeService(repo ports.DescriptorRepository, times ports.FileTimes, opts ...FreezeOption) *FreezeService {
	s := &FreezeService{
		repo:   repo,
		times:  times,
		suffix: domain.DefaultSuffix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FreezeRequest represents a request to freeze a file
type FreezeRequest struct {
	Source      string
	Destination string // optional
}

// FreezeResponse represents the result of a freeze
type FreezeResponse struct {
	Descriptor  *domain.Descriptor
	Destination string
}

// Execute reads the source once, hashes it and writes the descriptor
func (s *FreezeService) Execute(ctx context.Context, req FreezeRequest) (*FreezeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Source must be a regular file
	info, err := os.Stat(req.Source)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, req.Source)
	}

	// 2. Stream contents through hasher and header capture
	size, headerHex, digestHex, err := s.digest(req.Source, info.Size())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("source read", "path", req.Source, "bytes", size)

	// 3. Timestamps are taken after the read
	created, modified, err := s.times.Times(req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", req.Source, err)
	}

	descriptor := domain.NewDescriptor(req.Source, size, created, modified, headerHex, digestHex)

	// 4. Persist
	dest := domain.DestinationPath(req.Source, req.Destination, s.suffix)
	if err := s.repo.Save(ctx, dest, descriptor); err != nil {
		return nil, fmt.Errorf("failed to write descriptor: %w", err)
	}
	s.logger.Debug("descriptor written", "path", dest)

	return &FreezeResponse{
		Descriptor:  descriptor,
		Destination: dest,
	}, nil
}

func (s *FreezeService) digest(path string, expectedSize int64) (int64, string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	hasher := sha512.New()
	header := &headerCapture{limit: domain.HeaderBytes}
	writers := []io.Writer{hasher, header}

	if s.progress != nil {
		if w := s.progress(expectedSize, "freezing "+filepath.Base(path)); w != nil {
			writers = append(writers, w)
		}
	}

	n, err := io.Copy(io.MultiWriter(writers...), f)
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to read source file: %w", err)
	}

	return n, hex.EncodeToString(header.buf), hex.EncodeToString(hasher.Sum(nil)), nil
}

// headerCapture keeps the first limit bytes written to it
type headerCapture struct {
	buf   []byte
	limit int
}

func (h *headerCapture) Write(p []byte) (int, error) {
	if remaining := h.limit - len(h.buf); remaining > 0 {
		if len(p) < remaining {
			remaining = len(p)
		}
		h.buf = append(h.buf, p[:remaining]...)
	}
	return len(p), nil
}
