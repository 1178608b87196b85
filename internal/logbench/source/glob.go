package source

import (
	"os"
	"path/filepath"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
)

// DefaultPattern matches the files both runners drain.
const DefaultPattern = "*.log"

// Glob enumerates the entries of one directory whose name matches a pattern.
// It does not descend into subdirectories.
type Glob struct {
	pattern string
}

// NewGlob returns a Glob for pattern; an empty pattern means DefaultPattern.
func NewGlob(pattern string) (*Glob, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, pkgerror.NewInvalidArgument("pattern", err)
	}

	return &Glob{pattern: pattern}, nil
}

// Pattern returns the configured name pattern.
func (g *Glob) Pattern() string {
	return g.pattern
}

// List returns the matching files of dir. The order is the one the directory
// listing yields and must not be relied on.
func (g *Glob) List(dir string) ([]entity.FileRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pkgerror.NewIO(err, dir, pkgerror.CodeDirectory)
	}

	refs := make([]entity.FileRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		// pattern validated in NewGlob
		ok, _ := filepath.Match(g.pattern, e.Name())
		if !ok {
			continue
		}

		refs = append(refs, entity.FileRef{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}

	return refs, nil
}
