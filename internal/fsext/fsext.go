// Package fsext wraps the afero filesystem used to read sources and scripts.
package fsext

import (
	"io/fs"
	"time"

	"github.com/spf13/afero"
)

// Fs represents a file system
type Fs = afero.Fs

// NewOsFs returns a new wrapped os filesystem.
func NewOsFs() Fs {
	return afero.NewOsFs()
}

// NewMemMapFs returns a Fs that is in memory
func NewMemMapFs() Fs {
	return afero.NewMemMapFs()
}

// NewReadOnlyFs returns a Fs wrapping the provided one and returning error on any not read operation.
func NewReadOnlyFs(fs Fs) Fs {
	return afero.NewReadOnlyFs(fs)
}

// NewCacheOnReadFs layers an in-memory cache over base. Files read once are
// served from memory until cacheTime expires; a zero cacheTime caches forever.
func NewCacheOnReadFs(base Fs, cacheTime time.Duration) Fs {
	return afero.NewCacheOnReadFs(base, afero.NewMemMapFs(), cacheTime)
}

// WriteFile writes the provided data to the provided fs in the provided filename
func WriteFile(fs Fs, filename string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

// ReadFile reads the whole file from the filesystem
func ReadFile(fs Fs, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

// Exists checks if the provided path exists on the filesystem
func Exists(fs Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}
