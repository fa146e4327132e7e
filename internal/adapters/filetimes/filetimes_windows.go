//go:build windows

package filetimes

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string, info os.FileInfo) (time.Time, Source) {
	if attr, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, attr.CreationTime.Nanoseconds()), SourceBirth
	}
	return info.ModTime(), SourceModified
}
