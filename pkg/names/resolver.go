package names

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolver locates the source file for a year. Open must return an error
// matching fs.ErrNotExist when the year has no file.
type Resolver interface {
	Open(year int) (io.ReadCloser, error)
}

// FileName is the conventional name of a year file.
func FileName(year int) string {
	return fmt.Sprintf("yob%d.txt", year)
}

// DirResolver reads year files from a directory on disk.
type DirResolver struct {
	Dir string
}

// Open implements Resolver.
func (r DirResolver) Open(year int) (io.ReadCloser, error) {
	return os.Open(filepath.Join(r.Dir, FileName(year)))
}

// FSResolver reads year files from the root of an fs.FS.
type FSResolver struct {
	FS fs.FS
}

// Open implements Resolver.
func (r FSResolver) Open(year int) (io.ReadCloser, error) {
	return r.FS.Open(FileName(year))
}
