// Package filesystem routes every file access of the application through a swappable afero backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Use replaces the backend and returns a function restoring the previous one.
func Use(fs afero.Fs) (restore func()) {
	previous := backend
	backend = afero.Afero{Fs: fs}
	return func() { backend = previous }
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory backend, used by tests.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
