package document

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a page document from raw bytes. JSON is tried first, then YAML,
// matching how config surfaces elsewhere accept either syntax. The source
// string only labels errors.
func Load(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("document: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("document: parse %s: invalid JSON or YAML", source)
		}
	}
	doc.Source = source

	if err := validate(doc, source); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads and parses a single document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Load(data, path)
}

// LoadFS walks fsys and parses every .json/.yaml/.yml file found, in walk
// order. A nil filesystem yields no documents.
func LoadFS(fsys fs.FS) ([]Document, error) {
	if fsys == nil {
		return nil, nil
	}

	var docs []Document
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("document: read %s: %w", path, err)
		}
		doc, err := Load(data, path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func validate(doc Document, source string) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("document: file %s has no title", source)
	}

	seen := make(map[string]struct{}, len(doc.Sections))
	for i, section := range doc.Sections {
		if strings.TrimSpace(section.Heading) == "" && strings.TrimSpace(section.Body) == "" {
			return fmt.Errorf("document: file %s section %d has neither heading nor body", source, i)
		}
		id := strings.TrimSpace(section.ID)
		if id == "" {
			continue
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("document: file %s defines duplicate section id %q", source, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
