package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var (
	ErrFileNotFound = errors.New("maze file not found")
	ErrNotTextFile  = errors.New("maze file must have a .txt extension")
	ErrIsDirectory  = errors.New("maze path is a directory")
	ErrEncoding     = errors.New("maze file is not valid UTF-8")
)

// ResourceError is a failure to obtain maze text, as opposed to a problem
// with the text itself.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ReadMazeFile returns the contents of a .txt maze file. Empty files are
// returned as-is and left for the parser to reject.
func ReadMazeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &ResourceError{Path: path, Err: ErrFileNotFound}
	}
	if err != nil {
		return "", &ResourceError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ResourceError{Path: path, Err: ErrIsDirectory}
	}
	if filepath.Ext(path) != ".txt" {
		return "", &ResourceError{Path: path, Err: ErrNotTextFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ResourceError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ResourceError{Path: path, Err: ErrEncoding}
	}
	return string(data), nil
}
