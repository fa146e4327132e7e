//go:build darwin

package filetimes

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string, info os.FileInfo) (time.Time, Source) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Unix()), SourceBirth
	}
	return info.ModTime(), SourceModified
}
