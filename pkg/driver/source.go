package driver

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is a program text together with where it came from.
type Source struct {
	Path string
	Text string
}

// LoadSource reads a Mica source file. The text is returned as-is; the lexer
// owns the ASCII check so that the error names the offending byte.
func LoadSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("source: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("source: stat %s: %w", absPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source: %s is a directory", absPath)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", absPath, err)
	}
	return &Source{Path: absPath, Text: string(data)}, nil
}
