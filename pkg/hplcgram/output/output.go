// Package output places generated charts next to their source workbook.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is appended to the workbook name to form the chart file name.
const Suffix = "_cromatograma.png"

// Path returns the default chart path for the workbook at src.
func Path(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + Suffix
}

// StageLocal copies the workbook at src into a fresh temp directory and
// returns the copy's path. cleanup removes the directory and is safe to
// call on every exit path.
func StageLocal(src string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "hplcgram-")
	if err != nil {
		return "", func() {}, fmt.Errorf("create staging dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	in, err := os.Open(src)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}
	defer in.Close()

	dst := filepath.Join(dir, filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("stage %s: %w", filepath.Base(src), err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("stage %s: %w", filepath.Base(src), err)
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("stage %s: %w", filepath.Base(src), err)
	}
	return dst, cleanup, nil
}

// WriteFile writes the contents of r to dest. Data goes to a temp file in
// the destination directory which is synced and renamed over dest, so a
// reader never sees a partial chart. The temp file is removed on failure.
func WriteFile(dest string, r io.WriterTo) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create output: %w", err)
	}
	tmpName := tmp.Name()
	ok := false
	defer func() {
		if !ok {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	n, err := r.WriteTo(tmp)
	if err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return 0, fmt.Errorf("failed to set output mode: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	ok = true
	return n, nil
}
