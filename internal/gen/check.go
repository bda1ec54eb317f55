package gen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"tlgen/internal/errors"
)

// CheckResult lists how a directory differs from freshly generated files.
type CheckResult struct {
	// Changed files exist on disk with different content.
	Changed []string
	// Missing files are generated but absent on disk.
	Missing []string
	// Stale files are on disk but no longer generated.
	Stale []string
	// Diffs holds a unified diff per changed or missing path, when requested.
	Diffs map[string]string
}

// UpToDate reports whether the directory matches the generated files.
func (r *CheckResult) UpToDate() bool {
	return len(r.Changed) == 0 && len(r.Missing) == 0 && len(r.Stale) == 0
}

// Check compares files against the contents of dir without writing.
func Check(files []GeneratedFile, dir string, withDiff bool) (*CheckResult, error) {
	res := &CheckResult{Diffs: make(map[string]string)}

	onDisk, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	generated := make(map[string]bool, len(files))

	for _, file := range files {
		generated[file.Path] = true

		path, err := outputPath(dir, file.Path)
		if err != nil {
			return nil, err
		}

		current, err := os.ReadFile(path)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Missing = append(res.Missing, file.Path)
		case err != nil:
			return nil, errors.Wrapf(err, "reading %s", file.Path)
		case bytes.Equal(current, file.Content):
			continue
		default:
			res.Changed = append(res.Changed, file.Path)
		}

		if withDiff {
			diff, err := unifiedDiff(file.Path, current, file.Content)
			if err != nil {
				return nil, err
			}

			res.Diffs[file.Path] = diff
		}
	}

	for _, path := range onDisk {
		if !generated[path] {
			res.Stale = append(res.Stale, path)
		}
	}

	sort.Strings(res.Changed)
	sort.Strings(res.Missing)
	sort.Strings(res.Stale)

	return res, nil
}

// listFiles returns the slash-separated paths of all regular files under dir.
// A missing dir has no files.
func listFiles(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		paths = append(paths, filepath.ToSlash(rel))

		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	return paths, nil
}

func unifiedDiff(path string, current, generated []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrapf(err, "diffing %s", path)
	}

	return diff, nil
}
