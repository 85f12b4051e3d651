// Package decode is the byte-buffer driver around the insts decode tree: it
// turns a contiguous little-endian instruction stream into a sequence of
// insts.Instruction records, stamping virtual addresses and applying the
// error and alias policy described by Options.
package decode

import (
	"encoding/json"
	"fmt"
	"os"
)

// Options holds the driver's error and alias policy.
type Options struct {
	// RemapAliases canonicalizes aliased encodings after decode.
	// Default: true.
	RemapAliases bool `json:"remap_aliases"`

	// ContinueOnError substitutes an INVALID instruction for Undefined (and
	// any other unexpected leaf-decoder failure) instead of surfacing it.
	// Default: false.
	ContinueOnError bool `json:"continue_on_error"`

	// ThrowOnUnimplemented surfaces an UNIMPLEMENTED mnemonic as an error
	// instead of returning it inertly. Default: true.
	ThrowOnUnimplemented bool `json:"throw_on_unimplemented"`
}

// DefaultOptions returns the driver's default policy.
func DefaultOptions() *Options {
	return &Options{
		RemapAliases:         true,
		ContinueOnError:      false,
		ThrowOnUnimplemented: true,
	}
}

// LoadOptions loads driver Options from a JSON file, starting from
// DefaultOptions so an omitted field keeps its default rather than
// zeroing out.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read decode options file: %w", err)
	}

	opts := DefaultOptions()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse decode options: %w", err)
	}

	return opts, nil
}

// SaveOptions writes Options to a JSON file.
func (o *Options) SaveOptions(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize decode options: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write decode options file: %w", err)
	}

	return nil
}

// Clone returns a copy of o.
func (o *Options) Clone() *Options {
	clone := *o
	return &clone
}
