package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

const (
	// SchemaVersion is written into every descriptor
	SchemaVersion = "1.0"

	// Note is the fixed annotation carried by every descriptor
	Note = "Decompression scheduled for 10^24 years in the future."

	// HeaderBytes is the size of the header snapshot (512 bits)
	HeaderBytes = 64

	// DefaultSuffix is appended to the source path when no destination is given
	DefaultSuffix = ".icecofin"

	// TimestampLayout is local-time ISO-8601 with microseconds and offset
	TimestampLayout = "2006-01-02T15:04:05.000000-07:00"
)

// ErrSourceNotFound is returned when the source is not an existing regular file
var ErrSourceNotFound = errors.New("file not found")

// Descriptor is the JSON record written next to a frozen file.
// Field order is the order of the serialized object.
type Descriptor struct {
	Version           string `json:"version"`
	OriginalFilename  string `json:"original_filename"`
	OriginalSizeBytes int64  `json:"original_size_bytes"`
	FileExtension     string `json:"file_extension"`
	CreatedTime       string `json:"created_time"`
	ModifiedTime      string `json:"modified_time"`
	HeaderHex         string `json:"header_hex"`
	DigestHex         string `json:"digest_hex"`
	Note              string `json:"note"`
}

// NewDescriptor assembles a descriptor for the given source path
func NewDescriptor(sourcePath string, size int64, created, modified time.Time, headerHex, digestHex string) *Descriptor {
	return &Descriptor{
		Version:           SchemaVersion,
		OriginalFilename:  filepath.Base(sourcePath),
		OriginalSizeBytes: size,
		FileExtension:     Extension(sourcePath),
		CreatedTime:       FormatTimestamp(created),
		ModifiedTime:      FormatTimestamp(modified),
		HeaderHex:         headerHex,
		DigestHex:         digestHex,
		Note:              Note,
	}
}

// DestinationPath resolves where the descriptor for sourcePath is written.
// An explicit destination always wins; otherwise the suffix is appended
// to the full source path, even when the source already has an extension.
func DestinationPath(sourcePath, destination, suffix string) string {
	if destination != "" {
		return destination
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return sourcePath + suffix
}

// Extension returns the suffix of the base name including the leading dot.
// Leading dots do not start an extension, so ".bashrc" has none.
func Extension(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	trimmed := strings.TrimLeft(base, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return ""
	}
	return trimmed[idx:]
}

// FormatTimestamp encodes t in local time
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// IsDescriptorFile reports whether name carries the descriptor suffix
func IsDescriptorFile(name, suffix string) bool {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return strings.HasSuffix(name, suffix) && len(name) > len(suffix)
}
