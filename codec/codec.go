// Package codec provides the serializer/deserializer mapper consumed
// by the safe execution wrapper: JSON and YAML marshaling of Go values
// and node trees, with failures wrapped in *Error.
package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"

	"github.com/signadot/nodeops/gomap"
	"github.com/signadot/nodeops/ir"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

func ParseFormat(v string) (Format, error) {
	switch v {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("unrecognized format %q", v)
}

// Error is the checked failure kind a Mapper operation produces.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Option func(*Mapper)

func WithFormat(f Format) Option {
	return func(m *Mapper) { m.format = f }
}

// Mapper serializes and deserializes Go values in a fixed format.
// The zero-value format is JSON.
type Mapper struct {
	format Format
}

func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mapper) Format() Format { return m.format }

func (m *Mapper) Marshal(v any) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	switch m.format {
	case YAMLFormat:
		d, err = yaml.Marshal(v)
	default:
		d, err = json.Marshal(v)
	}
	if err != nil {
		return nil, &Error{Op: "marshal", Err: err}
	}
	return d, nil
}

func (m *Mapper) Unmarshal(d []byte, v any) error {
	var err error
	switch m.format {
	case YAMLFormat:
		err = yaml.Unmarshal(d, v)
	default:
		err = json.Unmarshal(d, v)
	}
	if err != nil {
		return &Error{Op: "unmarshal", Err: err}
	}
	return nil
}

// MarshalNode encodes a node tree through its native Go value form.
func (m *Mapper) MarshalNode(y *ir.Node) ([]byte, error) {
	return m.Marshal(gomap.ToAny(y))
}

// UnmarshalNode decodes d into a node tree.
func (m *Mapper) UnmarshalNode(d []byte) (*ir.Node, error) {
	var v any
	if err := m.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return gomap.FromAny(v), nil
}
