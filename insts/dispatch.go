package insts

// Decoder decodes AArch64 instruction words. It is pure and
// single-threaded per call: Decode is a referentially transparent function
// from a 32-bit word to an (Instruction, error) pair, with no shared
// mutable state.
type Decoder struct{}

// NewDecoder creates a new AArch64 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies word by its top-level instruction class (bits [28:25])
// and delegates to the loads/stores subtree when applicable. Every other
// class is modeled as an out-of-scope collaborator seam that reports
// Unimplemented rather than decoding further.
func (d *Decoder) Decode(word uint32) (Instruction, error) {
	t := (word >> 25) & 0xF
	reservedZero := !bitSet(word, 31)

	switch {
	case reservedZero && t == 0b0000:
		return Instruction{}, &UndefinedError{Word: word, Reason: "reserved group"}
	case t == 0b0001 || t == 0b0011:
		return Instruction{}, &UndefinedError{Word: word, Reason: "unallocated type"}
	case t == 0b0000:
		return d.decodeSME(word)
	case t == 0b0010:
		return d.decodeSVE(word)
	case t == 0b1000 || t == 0b1001:
		return d.decodeDataProcessingImmediate(word)
	case t == 0b1010 || t == 0b1011:
		return d.decodeBranchExceptionSystem(word)
	case t == 0b0100 || t == 0b0110 || t == 0b1100 || t == 0b1110:
		return d.decodeLoadsStores(word)
	case t == 0b0101 || t == 0b1101:
		return d.decodeDataProcessingRegister(word)
	default:
		return d.decodeSIMD(word)
	}
}

// The following are collaborator boundaries: instruction classes
// explicitly out of scope for this decoder. Each reports Unimplemented with
// a kind identifying which real collaborator would take over.

func (d *Decoder) decodeSME(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedSME}
}

func (d *Decoder) decodeSVE(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedSVE}
}

func (d *Decoder) decodeDataProcessingImmediate(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedDataProcessingImmediate}
}

func (d *Decoder) decodeDataProcessingRegister(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedDataProcessingRegister}
}

func (d *Decoder) decodeBranchExceptionSystem(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedBranchExceptionSystem}
}

func (d *Decoder) decodeSIMD(word uint32) (Instruction, error) {
	return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedSIMD}
}
