// Package fsutil has small path helpers shared by the loaders.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// ErrNotRegular is returned by RegularFileSize for directories and devices.
var ErrNotRegular = errors.New("not a regular file")

// RegularFileSize expands path and returns the size of the regular file it
// names.
func RegularFileSize(path string) (int64, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: %w", p, ErrNotRegular)
	}
	return fi.Size(), nil
}
