package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FixtureSuite is a YAML file of source snippets with their expected outcome.
//
//	description: arithmetic
//	cases:
//	  - name: precedence
//	    source: "1 + 2 * 3"
//	    expect:
//	      result: "7"
//	  - name: reassign constant
//	    source: "const k = 5; k = 6;"
//	    expect:
//	      error: cannot reassign constant
type FixtureSuite struct {
	Path        string        `yaml:"-"`
	Description string        `yaml:"description"`
	Cases       []FixtureCase `yaml:"cases"`
}

// FixtureCase is a single program evaluated in a fresh global environment.
type FixtureCase struct {
	Name   string             `yaml:"name"`
	Source string             `yaml:"source"`
	File   string             `yaml:"file"`
	Expect FixtureExpectation `yaml:"expect"`
}

// FixtureExpectation holds either the rendered result or an error substring.
type FixtureExpectation struct {
	Result *string `yaml:"result"`
	Error  string  `yaml:"error"`
}

// LoadFixtureSuite decodes and validates one fixture file. Cases naming a
// file have it read relative to the suite.
func LoadFixtureSuite(path string) (*FixtureSuite, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var suite FixtureSuite
	if err := decoder.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixtures: %s is empty", absPath)
		}
		return nil, fmt.Errorf("fixtures: parse %s: %w", absPath, err)
	}
	suite.Path = absPath
	if err := suite.resolveFiles(); err != nil {
		return nil, err
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadFixtureDir loads every *.yml and *.yaml suite directly inside dir,
// ordered by file name.
func LoadFixtureDir(dir string) ([]*FixtureSuite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	suites := make([]*FixtureSuite, 0, len(names))
	for _, name := range names {
		suite, err := LoadFixtureSuite(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func (s *FixtureSuite) resolveFiles() error {
	for idx := range s.Cases {
		c := &s.Cases[idx]
		if c.File == "" || c.Source != "" {
			continue
		}
		src, err := LoadSource(filepath.Join(filepath.Dir(s.Path), c.File))
		if err != nil {
			return fmt.Errorf("fixtures: %s case %q: %w", s.Path, c.Name, err)
		}
		c.Source = src.Text
	}
	return nil
}

func (s *FixtureSuite) validate() error {
	var errs ValidationError
	if len(s.Cases) == 0 {
		errs.Issues = append(errs.Issues, "cases must not be empty")
	}
	seen := make(map[string]struct{}, len(s.Cases))
	for idx, c := range s.Cases {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d] must have a name", idx))
		} else if _, dup := seen[name]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("case %q is defined twice", name))
		} else {
			seen[name] = struct{}{}
		}
		if c.File != "" && filepath.Ext(c.File) != SourceExtension {
			errs.Issues = append(errs.Issues, fmt.Sprintf("case %q file must be a %s file", name, SourceExtension))
		}
		if c.Source == "" && c.File == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("case %q needs source or file", name))
		}
		hasResult := c.Expect.Result != nil
		hasError := strings.TrimSpace(c.Expect.Error) != ""
		if hasResult == hasError {
			errs.Issues = append(errs.Issues, fmt.Sprintf("case %q must expect exactly one of result or error", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
