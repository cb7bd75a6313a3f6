// Package workspace resolves a user-supplied path (a directory or a
// zipped design export) to the directory holding the OUT_* layer
// files that the checks read.
package workspace

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// anchorFile marks a layer directory: every Comsof export has it.
const anchorFile = "OUT_Closures.shp"

// NotFoundError reports that no layer directory exists under Root.
// The message includes the directory hierarchy so the caller can see
// what the bundle actually contained.
type NotFoundError struct {
	Root string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find output folder under %s; directory structure:\n%s",
		e.Root, Tree(e.Root))
}

// Locate finds the layer directory under an extracted export root.
// Preference order: <root>/MRO_*/output, <root>/output, then the first
// directory anywhere below that contains OUT_Closures.shp.
func Locate(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", root, err)
	}

	base := root
	for _, ent := range entries {
		if ent.IsDir() && strings.HasPrefix(ent.Name(), "MRO_") {
			base = filepath.Join(root, ent.Name())
			break
		}
	}

	out := filepath.Join(base, "output")
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return out, nil
	}

	var found string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == anchorFile {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking %s: %w", base, err)
	}
	if found == "" {
		return "", &NotFoundError{Root: root}
	}
	return found, nil
}

// Resolve turns path into the layer directory the engine reads. A
// directory is located in place; a .zip bundle is extracted to a temp
// directory first. The returned cleanup removes any extraction
// directory and is always safe to call.
func Resolve(path string) (string, func(), error) {
	noop := func() {}

	info, err := os.Stat(path)
	if err != nil {
		return "", noop, err
	}
	if info.IsDir() {
		if _, err := os.Stat(filepath.Join(path, anchorFile)); err == nil {
			return path, noop, nil
		}
		dir, err := Locate(path)
		return dir, noop, err
	}

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return "", noop, fmt.Errorf("%s: not a directory or a zip archive", path)
	}

	tmp, err := os.MkdirTemp("", "fibercheck-")
	if err != nil {
		return "", noop, err
	}
	cleanup := func() { os.RemoveAll(tmp) }

	if err := ExtractZip(path, tmp); err != nil {
		cleanup()
		return "", noop, err
	}
	dir, err := Locate(tmp)
	if err != nil {
		cleanup()
		return "", noop, err
	}
	return dir, cleanup, nil
}

// ExtractZip unpacks the archive at src into dest. Entries that would
// escape dest are rejected.
func ExtractZip(src, dest string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if err := extractEntry(f, dest); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractEntry(f *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(f.Name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("entry path escapes extraction directory")
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Tree renders an indented listing of the hierarchy under root, one
// entry per line, directories suffixed with a slash.
func Tree(root string) string {
	var b strings.Builder
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		depth := 0
		if rel, relErr := filepath.Rel(root, path); relErr == nil && rel != "." {
			depth = strings.Count(rel, string(filepath.Separator)) + 1
		}
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString(d.Name())
		if d.IsDir() {
			b.WriteString("/")
		}
		b.WriteString("\n")
		return nil
	})
	return b.String()
}
