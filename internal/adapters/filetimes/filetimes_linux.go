//go:build linux

package filetimes

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func creationTime(path string, info os.FileInfo) (time.Time, Source) {
	var stx unix.Statx_t
	mask := unix.STATX_BTIME | unix.STATX_CTIME
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, mask, &stx); err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 {
			return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), SourceBirth
		}
		if stx.Mask&unix.STATX_CTIME != 0 {
			return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)), SourceStatusChange
		}
	}

	// Kernels without statx
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Unix()), SourceStatusChange
	}
	return info.ModTime(), SourceModified
}
