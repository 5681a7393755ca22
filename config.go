package rtree

import (
	"fmt"
	"strings"
)

const (
	// MaxEntries is the fixed fanout: the maximum number of points in a leaf
	// and of children in an internal node.
	MaxEntries = 4
	// MinEntries is the lower occupancy bound for every node but the root.
	MinEntries = MaxEntries / 2
)

const defaultName = "rtree"

// Config configures an R-tree.
type Config struct {
	// Observer, if set, receives reports about mutations and search steps.
	Observer Observer
	// Name tags trace output for the tree. Defaults to "rtree".
	Name string
}

func (cfg Config) normalized() Config {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if strings.ContainsAny(cfg.Name, " \t\r\n") {
		return fmt.Errorf("%w: name %q contains whitespace", ErrInvalidConfig, cfg.Name)
	}
	return nil
}
