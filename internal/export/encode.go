package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	Msgpack Format = "msgpack"
)

// ParseFormat accepts the names used by the --format flag and the config file.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case JSON, YAML, Msgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, yaml or msgpack)", name)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == Msgpack
}

func Encode(w io.Writer, f Format, doc *Document) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case Msgpack:
		if err := msgpack.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
	return nil
}

func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case Msgpack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
	return &doc, nil
}
