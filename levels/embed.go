package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

const ext = ".txt"

// Names lists the embedded levels in play order. Numbered levels sort
// numerically, anything else after them by name.
func Names() ([]string, error) {
	files, err := fs.Glob(LevelsFS, "*"+ext)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ext))
	}
	slices.SortFunc(names, compareNames)
	return names, nil
}

func compareNames(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// Load returns the description of the named level, preferring
// ./levels/<name>.txt on disk so edits show up without rebuilding.
func Load(name string) ([]byte, error) {
	file := fileName(name)
	if data, err := os.ReadFile(DiskPath(name)); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read level %q: %w", name, err)
	}
	return data, nil
}

// DiskPath is where the disk copy of a level lives.
func DiskPath(name string) string {
	return filepath.Join("levels", fileName(name))
}

// NameOf maps a level file path back to its level name.
func NameOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ext)
}

func fileName(name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "levels/")
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}
