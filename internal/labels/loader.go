// Package labels loads the ordered class-name list that pairs with the
// model's output vector.
package labels

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wasteclassd/internal/common/fsutil"
)

// fallback is used when the label file cannot be loaded.
var fallback = []string{"plastic", "paper", "metal", "organic", "trash"}

// Fallback returns a fresh copy of the built-in label list.
func Fallback() []string {
	return append([]string(nil), fallback...)
}

// LoadFile reads a JSON array of label names. Position i names output index i.
func LoadFile(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("empty labels path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate rejects empty lists, blank names and duplicates.
func Validate(ls []string) error {
	if len(ls) == 0 {
		return fmt.Errorf("labels: empty list")
	}
	seen := make(map[string]int, len(ls))
	for i, l := range ls {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("labels: blank name at index %d", i)
		}
		if j, ok := seen[l]; ok {
			return fmt.Errorf("labels: duplicate %q at index %d and %d", l, j, i)
		}
		seen[l] = i
	}
	return nil
}
