package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoRecord indicates no record has been cached for a dependency.
var ErrNoRecord = errors.New("no cached dependency record")

// recordExt is the suffix for record files, keeping them distinguishable
// from anything else living under a shared cache directory.
const recordExt = ".dep.yml"

// Record is the cached license information for one dependency version.
type Record struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	License string `yaml:"license,omitempty"`
}

// PathFor returns the record location for a dependency under an app's
// cache directory. Dependency names may contain path separators; each
// segment becomes a directory.
func PathFor(cacheDir, depType, name string) string {
	return filepath.Join(cacheDir, depType, filepath.FromSlash(name)+recordExt)
}

// Write stores a record, creating parent directories as needed.
func Write(path string, record Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record for %s: %w", record.Name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}
	return nil
}

// Read loads the record at path. A missing file reports ErrNoRecord.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, fmt.Errorf("%w: %s", ErrNoRecord, path)
		}
		return Record{}, fmt.Errorf("failed to read record %s: %w", path, err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	return record, nil
}
