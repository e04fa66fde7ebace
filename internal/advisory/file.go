package advisory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wasteclassd/internal/common/fsutil"
)

// LoadFile reads an advisory table from disk based on its extension.
// Supports: .yaml/.yml, .json, .toml
func LoadFile(path string) (Table, error) {
	if path == "" {
		return nil, fmt.Errorf("empty advisory path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read advisory: %w", err)
	}
	t := Table{}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &t)
	case ".json":
		err = json.Unmarshal(b, &t)
	case ".toml":
		err = toml.Unmarshal(b, &t)
	default:
		return nil, fmt.Errorf("unsupported advisory extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse advisory %s: %w", filepath.Base(p), err)
	}
	for label := range t {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("advisory %s: empty label key", filepath.Base(p))
		}
	}
	return t, nil
}
