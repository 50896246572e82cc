package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	createTruncateFlagsConstant = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// OSFileSystem implements filesystem access using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Abs resolves an absolute path.
func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Getwd returns the current working directory.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// CreateFile opens path for writing, truncating any existing content.
func (OSFileSystem) CreateFile(path string, permissions fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(path, createTruncateFlagsConstant, permissions)
}

// DirectoryExists reports whether path exists and is a directory. Regular files
// and missing paths report false; any other stat failure is returned.
func (fileSystem OSFileSystem) DirectoryExists(path string) (bool, error) {
	fileInfo, statError := fileSystem.Stat(path)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return false, nil
		}
		return false, statError
	}
	return fileInfo.IsDir(), nil
}
