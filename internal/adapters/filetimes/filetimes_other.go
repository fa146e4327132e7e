//go:build !linux && !darwin && !windows

package filetimes

import (
	"os"
	"time"
)

func creationTime(path string, info os.FileInfo) (time.Time, Source) {
	return info.ModTime(), SourceModified
}
