package decode

import "fmt"

// StructuralError reports a byte buffer whose length is not a multiple of
// 4: the driver's only error that is always surfaced, never swallowed by
// ContinueOnError.
type StructuralError struct {
	Length int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("instruction buffer length %d is not a multiple of 4", e.Length)
}

// DecodeError wraps a leaf-decoder failure with the context the driver adds:
// the offset it occurred at and the virtual address it was stamped with.
type DecodeError struct {
	Offset  int
	Address uint64
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at offset %d (address 0x%X): %v", e.Offset, e.Address, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
