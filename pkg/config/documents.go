package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lerenn/plugin-builder/pkg/fs"
)

// TSConfig is the subset of tsconfig.json the build reads.
type TSConfig struct {
	CompilerOptions struct {
		Target string `json:"target"`
	} `json:"compilerOptions"`
}

// Manifest is the plugin metadata document (manifest.json).
type Manifest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Version       string `json:"version"`
	MinAppVersion string `json:"minAppVersion"`
	Description   string `json:"description"`
	Author        string `json:"author"`
	AuthorURL     string `json:"authorUrl"`
	HelpURL       string `json:"helpUrl"`
	IsDesktopOnly bool   `json:"isDesktopOnly"`
}

// Validate checks the fields the build depends on.
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name", ErrManifestField)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("%w: version", ErrManifestField)
	}
	return nil
}

// ReadJSON reads the JSON document at path into v.
func ReadJSON(fsys fs.FS, path string, v any) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDocumentParse, path, err)
	}
	return nil
}
