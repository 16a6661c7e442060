package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	domain "github.com/zjrosen/stylebook/internal/domain/style"
)

// StylesDir is the directory, relative to the loader's fs.FS, holding style tables.
const StylesDir = "styles"

// StylesFile is the root structure for a styles/*.yaml table
type StylesFile struct {
	Styles []StyleDef `yaml:"styles"`
}

// StyleDef defines a single style in YAML
type StyleDef struct {
	ID             string `yaml:"id"`              // e.g., "cinematic"
	Name           string `yaml:"name"`            // Human-readable name
	Description    string `yaml:"description"`     // Human-readable summary
	Prompt         string `yaml:"prompt"`          // Template containing {{.Content}} once
	NegativePrompt string `yaml:"negative_prompt"` // Plain text, optional
}

// LoadStylesFromYAML loads built-in styles from all styles/*.yaml files in fsys.
// Files are read in lexical order and entries keep their file order.
func LoadStylesFromYAML(fsys fs.FS) ([]*domain.Style, error) {
	return LoadStylesFromYAMLWithSource(fsys, domain.SourceBuiltIn)
}

// LoadStylesFromYAMLWithSource loads styles from styles/*.yaml, tagging each with source.
// Any invalid file or style fails the whole load. Returns an error if no styles are found.
func LoadStylesFromYAMLWithSource(fsys fs.FS, source domain.Source) ([]*domain.Style, error) {
	paths, err := styleFiles(fsys)
	if err != nil {
		return nil, fmt.Errorf("scan style tables: %w", err)
	}

	var all []*domain.Style
	seen := make(map[string]string)
	for _, path := range paths {
		styles, err := loadStylesFile(fsys, path, source)
		if err != nil {
			return nil, err
		}
		for _, s := range styles {
			if prev, dup := seen[s.ID()]; dup {
				return nil, fmt.Errorf("style %s in %s (first defined in %s): %w", s.ID(), path, prev, domain.ErrDuplicateID)
			}
			seen[s.ID()] = path
			all = append(all, s)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no styles found in %s/*.yaml", StylesDir)
	}
	return all, nil
}

// styleFiles returns the YAML files directly under StylesDir, sorted lexically.
func styleFiles(fsys fs.FS) ([]string, error) {
	var paths []string
	for _, pattern := range []string{StylesDir + "/*.yaml", StylesDir + "/*.yml"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

// loadStylesFile parses one table. Unknown keys are rejected so that typos such
// as "negative-prompt" do not silently drop fields.
func loadStylesFile(fsys fs.FS, path string, source domain.Source) ([]*domain.Style, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file StylesFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	styles := make([]*domain.Style, 0, len(file.Styles))
	for i, def := range file.Styles {
		s, err := buildStyleFromDef(def, source)
		if err != nil {
			return nil, fmt.Errorf("style %d (%q) in %s: %w", i, def.ID, path, err)
		}
		styles = append(styles, s)
	}
	return styles, nil
}

// buildStyleFromDef converts a StyleDef into a domain style.
func buildStyleFromDef(def StyleDef, source domain.Source) (*domain.Style, error) {
	return domain.NewBuilder(def.ID).
		Name(def.Name).
		Description(def.Description).
		Prompt(def.Prompt).
		NegativePrompt(def.NegativePrompt).
		Source(source).
		Build()
}
