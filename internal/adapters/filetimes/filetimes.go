// Package filetimes reads creation and modification timestamps from the
// file system.
//
// "Creation" is platform dependent:
//   - linux: statx birth time when the filesystem records it, otherwise the
//     inode status-change time (ctime)
//   - darwin: st_birthtimespec
//   - windows: CreationTime
//   - anything else: modification time
package filetimes

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Source names which field a creation time was taken from
type Source string

const (
	SourceBirth        Source = "birth"
	SourceStatusChange Source = "ctime"
	SourceModified     Source = "mtime"
)

// Stat implements ports.FileTimes on top of the host file system
type Stat struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Stat {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stat{logger: logger}
}

// Times returns the creation and modification time of path
func (s *Stat) Times(path string) (time.Time, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	created, source := creationTime(path, info)
	s.logger.Debug("file times", "path", path, "created_source", string(source))

	return created, info.ModTime(), nil
}
