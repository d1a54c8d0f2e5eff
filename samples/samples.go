// Package samples ships example schemas and documents for trying the toolkit
// out: three schemas (user, product, blogPost) and data documents that pass
// or fail them, plus a record array for transforms.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed schemas/*.json data/*.json
var files embed.FS

// Kind tells schemas and data documents apart.
type Kind string

const (
	KindSchema Kind = "schemas"
	KindData   Kind = "data"
)

// Names lists the samples of the given kind, sorted.
func Names(kind Kind) []string {
	entries, err := fs.ReadDir(files, string(kind))
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	slices.Sort(out)
	return out
}

// Get returns the JSON text of a named sample.
func Get(kind Kind, name string) ([]byte, error) {
	b, err := files.ReadFile(path.Join(string(kind), name+".json"))
	if err != nil {
		return nil, fmt.Errorf("samples: no %s sample %q (have %s)", kind, name, strings.Join(Names(kind), ", "))
	}
	return b, nil
}

// Schema returns a sample schema.
func Schema(name string) ([]byte, error) { return Get(KindSchema, name) }

// Data returns a sample data document.
func Data(name string) ([]byte, error) { return Get(KindData, name) }

// Find looks name up among schemas first, then data documents.
func Find(name string) ([]byte, error) {
	if b, err := Schema(name); err == nil {
		return b, nil
	}
	if b, err := Data(name); err == nil {
		return b, nil
	}
	return nil, fmt.Errorf("samples: unknown sample %q (schemas: %s; data: %s)", name,
		strings.Join(Names(KindSchema), ", "), strings.Join(Names(KindData), ", "))
}
