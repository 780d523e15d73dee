package chartspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single chart definition from JSON or YAML bytes.
func Parse(data []byte, source string) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("chartspec: file %s is empty", source)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err == nil {
		return def, nil
	}
	if err := yaml.Unmarshal(data, &def); err == nil {
		return def, nil
	}
	return Definition{}, fmt.Errorf("chartspec: parse %s: invalid JSON or YAML", source)
}

// ParseFile reads and decodes a chart definition from disk.
func ParseFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("chartspec: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks the provided filesystem and parses every JSON/YAML chart
// definition into a Store keyed by definition name (falling back to the file
// name without extension). When fsys is nil or holds no definition files the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("chartspec: read %s: %w", path, err)
		}

		def, err := Parse(data, path)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(def.Name)
		if name == "" {
			base := filepath.Base(path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if _, exists := store.definitions[name]; exists {
			return fmt.Errorf("chartspec: duplicate definition %q (file %s)", name, path)
		}
		def.Name = name
		store.definitions[name] = def
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
