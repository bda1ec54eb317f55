package gen

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tlgen/internal/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files under outputDir, creating
// directories as needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, file := range files {
		target, err := outputPath(outputDir, file.Path)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return errors.Wrapf(err, "creating directory for %s", file.Path)
		}

		if err := os.WriteFile(target, file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Path)
		}
	}

	return nil
}

// outputPath joins a slash-separated relative path onto dir, rejecting paths
// that leave it.
func outputPath(dir, rel string) (string, error) {
	if rel == "" || filepath.IsAbs(filepath.FromSlash(rel)) {
		return "", errors.Newf("invalid output path %q", rel)
	}

	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Newf("output path %q escapes the output directory", rel)
	}

	return filepath.Join(dir, clean), nil
}

// CleanOutputDir removes the files tlgen generated under dir, then the
// directories left empty. Files without the generated header are kept. A dir
// that contains the working directory or any of the protected paths (the
// schema, the config file) is refused.
func CleanOutputDir(dir string, protected ...string) error {
	abs, err := realPath(dir)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "resolving working directory")
	}

	for _, p := range append([]string{wd}, protected...) {
		if p == "" {
			continue
		}

		pAbs, err := realPath(p)
		if err != nil {
			return err
		}

		if within(abs, pAbs) {
			return errors.WithHint(
				errors.Newf("refusing to clean %s: it contains %s", abs, pAbs),
				"point the output at a dedicated directory, or pass --no-clean",
			)
		}
	}

	files, dirs, err := generatedFiles(abs)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := os.Remove(f); err != nil {
			return errors.Wrapf(err, "removing %s", f)
		}
	}

	// deepest first, so parents empty out after their children
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			return errors.Wrapf(err, "reading %s", d)
		}

		if len(entries) > 0 {
			continue
		}

		if err := os.Remove(d); err != nil {
			return errors.Wrapf(err, "removing %s", d)
		}
	}

	return nil
}

// realPath is the absolute path with symlinks resolved when p exists.
func realPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", p)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	return abs, nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// generatedFiles lists the regular files under root that start with Header,
// and every directory below root including root. A missing root has neither.
func generatedFiles(root string) (files, dirs []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			dirs = append(dirs, path)

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ok, err := hasHeader(path)
		if err != nil {
			return err
		}

		if ok {
			files = append(files, path)
		}

		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, errors.Wrapf(err, "scanning %s", root)
	}

	return files, dirs, nil
}

func hasHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, len(Header))

	_, err = io.ReadFull(f, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return bytes.Equal(buf, []byte(Header)), nil
}
