package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

var ErrInvalidTable = errors.New("invalid catalog table")

// Table is the source the content index and platform catalog are built from.
// Order is significant in both lists.
type Table struct {
	Platforms []PlatformEntry  `yaml:"platforms"`
	Titles    []PlatformTitles `yaml:"titles"`
}

type PlatformEntry struct {
	ID      string   `yaml:"id"`
	Label   string   `yaml:"label"`
	Aliases []string `yaml:"aliases,omitempty"`
}

type PlatformTitles struct {
	Platform string       `yaml:"platform"`
	Entries  []TitleEntry `yaml:"entries"`
}

type TitleEntry struct {
	Title string `yaml:"title"`
	Genre string `yaml:"genre"`
	Type  string `yaml:"type"`
	Year  *int   `yaml:"year,omitempty"`
}

// Source produces a catalog table.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

type SourceFunc func(ctx context.Context) (*Table, error)

func (f SourceFunc) Load(ctx context.Context) (*Table, error) {
	return f(ctx)
}

// Embedded returns the demo table compiled into the binary.
func Embedded() Source {
	return SourceFunc(func(ctx context.Context) (*Table, error) {
		return Parse(bytes.NewReader(demoYAML))
	})
}

// File returns a source reading a YAML table from path.
func File(path string) Source {
	return SourceFunc(func(ctx context.Context) (*Table, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog %s: %w", path, err)
		}
		defer f.Close()

		t, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return t, nil
	})
}

// Parse decodes and validates a YAML table.
func Parse(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Encode writes t as YAML.
func Encode(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

func (t *Table) Validate() error {
	for i, p := range t.Platforms {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: platform %d has no id", ErrInvalidTable, i)
		}
	}
	for _, group := range t.Titles {
		if strings.TrimSpace(group.Platform) == "" {
			return fmt.Errorf("%w: title group without platform", ErrInvalidTable)
		}
		for _, e := range group.Entries {
			if strings.TrimSpace(e.Title) == "" {
				return fmt.Errorf("%w: blank title on platform %s", ErrInvalidTable, group.Platform)
			}
			if !domain.ValidType(e.Type) {
				return fmt.Errorf("%w: %q has unknown type %q", ErrInvalidTable, e.Title, e.Type)
			}
			if e.Year != nil && *e.Year <= 0 {
				return fmt.Errorf("%w: %q has year %d", ErrInvalidTable, e.Title, *e.Year)
			}
		}
	}
	return nil
}

// DomainPlatforms converts the platform entries to domain platforms.
func (t *Table) DomainPlatforms() []domain.Platform {
	out := make([]domain.Platform, 0, len(t.Platforms))
	for _, p := range t.Platforms {
		out = append(out, domain.Platform{
			ID:      p.ID,
			Label:   p.Label,
			Aliases: append([]string(nil), p.Aliases...),
		})
	}
	return out
}

// TitleCount returns the number of title entries across all platforms.
func (t *Table) TitleCount() int {
	n := 0
	for _, g := range t.Titles {
		n += len(g.Entries)
	}
	return n
}
