package topology

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// TypeRouter is the node type that becomes a graph node; every other type is a relay.
const TypeRouter = "QuantumRouter"

var validate = validator.New()

// NodeSpec is one node of a Snapshot.
type NodeSpec struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Type        string   `yaml:"type" json:"type" validate:"required"`
	Efficiency  *float64 `yaml:"efficiency,omitempty" json:"efficiency,omitempty" validate:"omitempty,gte=0,lte=1"`
	RawFidelity *float64 `yaml:"raw_fidelity,omitempty" json:"raw_fidelity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Priority    string   `yaml:"priority,omitempty" json:"priority,omitempty" validate:"omitempty,oneof=high low"`
}

// IsRouter reports whether the node is a router.
func (n NodeSpec) IsRouter() bool {
	return strings.EqualFold(n.Type, TypeRouter)
}

// ChannelSpec is one quantum channel of a Snapshot.
type ChannelSpec struct {
	From     string  `yaml:"from" json:"from" validate:"required"`
	To       string  `yaml:"to" json:"to" validate:"required,nefield=From"`
	Distance float64 `yaml:"distance" json:"distance" validate:"gte=0"`
}

// Snapshot is a serialisable topology. It implements Source.
type Snapshot struct {
	Nodes    []NodeSpec    `yaml:"nodes" json:"nodes" validate:"required,dive"`
	Channels []ChannelSpec `yaml:"channels" json:"channels" validate:"dive"`
}

// RouterInfos returns the router nodes in file order.
func (s *Snapshot) RouterInfos() []RouterInfo {
	out := make([]RouterInfo, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if !n.IsRouter() {
			continue
		}
		out = append(out, RouterInfo{
			Name:        n.Name,
			Efficiency:  n.Efficiency,
			RawFidelity: n.RawFidelity,
			Priority:    n.Priority,
		})
	}

	return out
}

// ChannelInfos returns every channel in file order.
func (s *Snapshot) ChannelInfos() []ChannelInfo {
	out := make([]ChannelInfo, len(s.Channels))
	for i, c := range s.Channels {
		out[i] = ChannelInfo{From: c.From, To: c.To, Distance: c.Distance}
	}

	return out
}

// Validate checks field constraints, unique names and that every channel
// end names a declared node.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidSnapshot, e.Namespace(), e.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	seen := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if seen[n.Name] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalidSnapshot, n.Name)
		}
		seen[n.Name] = true
	}
	for i, c := range s.Channels {
		for _, end := range []string{c.From, c.To} {
			if !seen[end] {
				return fmt.Errorf("%w: channel %d references unknown node %q", ErrInvalidSnapshot, i, end)
			}
		}
	}

	return nil
}

// Decode reads and validates a YAML or JSON snapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
		}
		return nil, fmt.Errorf("topology: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}
