package series

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a series from a .toml, .yaml or .yml file and validates it.
func Load(path string) (*Series, error) {
	var s Series
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported series format %q", ext)
	}
	if s.Title == "" {
		s.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to path, choosing the encoding from the extension.
func Save(s *Series, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported series format %q", ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if ext == ".toml" {
		return toml.NewEncoder(f).Encode(s)
	}
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(s)
}

// List returns the file names of all series files in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	return names, nil
}
