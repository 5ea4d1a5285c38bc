package source

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"sigs.k8s.io/yaml"
)

// File reads entries from a YAML or JSON document. The document is either a
// bare list of entries or an object with an "entries" list.
type File struct {
	path string
}

// NewFile returns a source reading path on every Load.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return string(KindFile) + ":" + f.path }

func (f *File) Load(ctx context.Context) ([]catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	entries, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", f.path, err)
	}
	return entries, nil
}

type document struct {
	Entries []catalog.Entry `json:"entries"`
}

// ParseDocument decodes a catalog document.
func ParseDocument(data []byte) ([]catalog.Entry, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(jsonData)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []catalog.Entry{}, nil
	}
	if trimmed[0] == '[' {
		var entries []catalog.Entry
		if err := yaml.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var doc document
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	if doc.Entries == nil {
		return []catalog.Entry{}, nil
	}
	return doc.Entries, nil
}
