// Package assets locates the game's resource folder on disk.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a folder or file cannot be located.
var ErrNotFound = errors.New("asset not found")

// Search looks for a folder by name, first in start and up to Parents of its
// ancestors, then in descendants of start up to Kids levels deep.
type Search struct {
	Parents int
	Kids    int
}

// ParentsThenKids creates a Search with the given depths.
func ParentsThenKids(parents, kids int) Search {
	return Search{Parents: parents, Kids: kids}
}

// ForFolder returns the path of the first directory called name.
func (s Search) ForFolder(start, name string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	start = abs

	// Parents: the start directory itself and up to s.Parents ancestors.
	dir := start
	for i := 0; i <= s.Parents; i++ {
		if candidate := filepath.Join(dir, name); isDir(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Kids: breadth-first below start so shallower matches win.
	level := []string{start}
	for depth := 0; depth < s.Kids && len(level) > 0; depth++ {
		var next []string
		for _, d := range level {
			entries, err := os.ReadDir(d)
			if err != nil {
				continue
			}
			// os.ReadDir sorts by name, which keeps the search deterministic.
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				child := filepath.Join(d, e.Name())
				if e.Name() == name {
					return child, nil
				}
				next = append(next, child)
			}
		}
		level = next
	}

	return "", fmt.Errorf("folder %q near %s: %w", name, start, ErrNotFound)
}

// ExecutableDir returns the directory holding the running executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Resolve finds folder near start and returns the path of file inside it.
// The file must exist.
func Resolve(s Search, start, folder, file string) (string, error) {
	dir, err := s.ForFolder(start, folder)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, file)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return path, nil
}

// SearchRoots returns the directories assets are searched from: the
// executable's directory, then the working directory. `go run` builds into
// a temporary directory, so the working directory is still tried.
func SearchRoots() ([]string, error) {
	exeDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}
	roots := []string{exeDir}
	if wd, err := os.Getwd(); err == nil && wd != exeDir {
		roots = append(roots, wd)
	}
	return roots, nil
}

// ResolveFirst tries Resolve from each root in order and returns the first
// match. If none matches, the error names every path that was tried.
func ResolveFirst(s Search, roots []string, folder, file string) (string, error) {
	if len(roots) == 0 {
		return "", fmt.Errorf("no search roots for %s/%s: %w", folder, file, ErrNotFound)
	}
	var errs []error
	for _, root := range roots {
		path, err := Resolve(s, root, folder, file)
		if err == nil {
			return path, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
