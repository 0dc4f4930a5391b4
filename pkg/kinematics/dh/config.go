package dh

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LinkConfig is the on-disk description of a single DH link, the
// configuration-file counterpart of a Go-literal New(...) call.
type LinkConfig struct {
	Theta float64 `yaml:"theta"`
	D     float64 `yaml:"d"`
	A     float64 `yaml:"a"`
	Alpha float64 `yaml:"alpha"`
	Kind  string  `yaml:"kind"` // revolute | prismatic | static
	ID    int     `yaml:"id"`
}

// ChainConfig is a flat ordered list of links, the YAML schema SPEC_FULL.md
// documents for cmd/dhgen.
type ChainConfig struct {
	Links []LinkConfig `yaml:"links"`
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "revolute":
		return Revolute, nil
	case "prismatic":
		return Prismatic, nil
	case "static":
		return Static, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidJointKind, s)
	}
}

// LoadChain reads a YAML chain configuration from path and builds the
// corresponding Chain of link transforms.
func LoadChain(path string) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dh: reading chain config: %w", err)
	}

	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("dh: parsing chain config: %w", err)
	}

	links := make([]*Transform, 0, len(cfg.Links))
	for _, lc := range cfg.Links {
		kind, err := parseKind(lc.Kind)
		if err != nil {
			return nil, err
		}
		t, err := New(lc.Theta, lc.D, lc.A, lc.Alpha, kind, lc.ID)
		if err != nil {
			return nil, err
		}
		links = append(links, t)
	}
	return NewChain(links...), nil
}
