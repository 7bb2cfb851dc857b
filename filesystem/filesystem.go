// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"time"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteAtomic writes data next to path and renames it into place, so readers never observe a partial file.
func WriteAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := API().WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := API().Rename(tmp, path); err != nil {
		_ = API().Remove(tmp)
		return err
	}
	return nil
}

// Fresh reports whether path exists and was modified within ttl.
func Fresh(path string, ttl time.Duration) bool {
	info, err := API().Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && time.Since(info.ModTime()) <= ttl
}
