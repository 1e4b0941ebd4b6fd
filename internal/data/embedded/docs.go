package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DocsFS holds one markdown page per demo, named <demo>.md.
//
//go:embed docs/*.md
var DocsFS embed.FS

// GoldenFS holds the expected transcript of every demo, named <demo>.expected.
//
//go:embed golden/*.expected
var GoldenFS embed.FS

// LoadDoc returns the markdown page for a demo.
func LoadDoc(name string) (string, error) {
	data, err := DocsFS.ReadFile(path.Join("docs", name+".md"))
	if err != nil {
		return "", fmt.Errorf("no documentation for %q: %w", name, err)
	}
	return string(data), nil
}

// LoadGolden returns the expected transcript for a demo.
func LoadGolden(name string) (string, error) {
	data, err := GoldenFS.ReadFile(path.Join("golden", name+".expected"))
	if err != nil {
		return "", fmt.Errorf("no golden transcript for %q: %w", name, err)
	}
	return string(data), nil
}

// GoldenNames lists the demos that have an embedded transcript.
func GoldenNames() ([]string, error) {
	entries, err := fs.ReadDir(GoldenFS, "golden")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".expected"); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
