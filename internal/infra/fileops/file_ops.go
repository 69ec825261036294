// Where: cli/internal/infra/fileops/file_ops.go
// What: Filesystem operations used to materialize a project tree.
// Why: Keep permissions and existence checks consistent across callers.
package fileops

import (
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// CreateDir creates exactly one directory level. It fails if path exists
// or its parent is missing.
func CreateDir(path string) error {
	return os.Mkdir(path, dirPerm)
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// WriteFile writes content, creating the parent directory if needed.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), filePerm)
}

// WriteFileMode rewrites an existing file in place, keeping its permissions.
func WriteFileMode(path string, content []byte) error {
	mode := filePerm
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, content, mode)
}

// FileExists reports a regular (non-directory) entry at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
