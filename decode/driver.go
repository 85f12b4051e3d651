package decode

import (
	"encoding/binary"

	"github.com/sarchlab/a64decoder/insts"
)

// Driver iterates a byte buffer in 4-byte steps, assembling virtual
// addresses and applying the error and alias policy around the insts
// decode tree.
type Driver struct {
	decoder  *insts.Decoder
	opts     *Options
	remapper AliasRemapper
}

// NewDriver creates a Driver with the given Options. A nil opts uses
// DefaultOptions. The alias remapper defaults to a no-op.
func NewDriver(opts *Options) *Driver {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Driver{
		decoder:  insts.NewDecoder(),
		opts:     opts,
		remapper: DefaultAliasRemapper,
	}
}

// WithAliasRemapper returns a Driver that uses remapper instead of the
// default no-op, for callers that supply a real alias collaborator.
func (d *Driver) WithAliasRemapper(remapper AliasRemapper) *Driver {
	d.remapper = remapper
	return d
}

// DecodeAll eagerly decodes every 4-byte word in b, starting at virtual
// address va. It pre-sizes the output to len(b)/4.
func (d *Driver) DecodeAll(b []byte, va uint64) ([]insts.Instruction, error) {
	if len(b)%4 != 0 {
		return nil, &StructuralError{Length: len(b)}
	}

	out := make([]insts.Instruction, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		inst, err := d.decodeOne(b, i, va)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// All returns a lazy, pull-based iterator over b's decoded instructions,
// in the style of a Go 1.23+ range-over-func sequence. A consumer that
// stops ranging early (a "break") performs no further decode work. Errors
// that would otherwise fail DecodeAll are instead yielded as the error
// half of the pair and the iteration stops.
func (d *Driver) All(b []byte, va uint64) func(yield func(insts.Instruction, error) bool) {
	return func(yield func(insts.Instruction, error) bool) {
		if len(b)%4 != 0 {
			yield(insts.Instruction{}, &StructuralError{Length: len(b)})
			return
		}

		for i := 0; i < len(b); i += 4 {
			inst, err := d.decodeOne(b, i, va)
			if !yield(inst, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// decodeOne assembles the word at offset i, decodes it, stamps its
// address, and applies the error and alias policy.
func (d *Driver) decodeOne(b []byte, i int, va uint64) (insts.Instruction, error) {
	word := binary.LittleEndian.Uint32(b[i : i+4])
	address := va + uint64(i)

	inst, err := d.decoder.Decode(word)
	if err != nil {
		if _, ok := err.(*insts.UnimplementedError); ok {
			inst.Mnemonic = insts.MnemonicUnimplemented
			inst.Address = address
			if d.opts.ThrowOnUnimplemented {
				return insts.Instruction{}, &DecodeError{Offset: i, Address: address, Err: err}
			}
			return inst, nil
		}

		if d.opts.ContinueOnError {
			inst = insts.Instruction{Mnemonic: insts.MnemonicInvalid, Address: address}
			return inst, nil
		}
		return insts.Instruction{}, &DecodeError{Offset: i, Address: address, Err: err}
	}

	inst.Address = address
	if d.opts.RemapAliases {
		d.remapper.Remap(&inst)
	}
	return inst, nil
}
