package insts

// RegisterFamily identifies the register bank a decoded operand belongs to.
type RegisterFamily uint8

// Register families used by the loads/stores subtree.
const (
	FamilyNone RegisterFamily = iota
	FamilyW                   // 32-bit general-purpose
	FamilyX                   // 64-bit general-purpose
	FamilyB                   // 8-bit SIMD/FP
	FamilyH                   // 16-bit SIMD/FP
	FamilyS                   // 32-bit SIMD/FP
	FamilyD                   // 64-bit SIMD/FP
	FamilyV                   // 128-bit SIMD/FP (Q register)
	FamilySP                  // stack pointer
)

func (f RegisterFamily) String() string {
	switch f {
	case FamilyW:
		return "W"
	case FamilyX:
		return "X"
	case FamilyB:
		return "B"
	case FamilyH:
		return "H"
	case FamilyS:
		return "S"
	case FamilyD:
		return "D"
	case FamilyV:
		return "V"
	case FamilySP:
		return "SP"
	default:
		return "none"
	}
}

// familyWidth is the number of registers in each family (index range),
// used as the stride between family bases in the dense Register enumeration.
const familyWidth = 32

// familyBase returns the base of the dense enumeration for a family, so that
// a Register's identity is simply base(family) + index.
func familyBase(f RegisterFamily) Register {
	return Register(f-1) * familyWidth
}

// Register is a dense identity for a (family, index) pair: the register
// family's base offset plus the register index (0-31).
type Register uint16

// NewRegister builds the dense Register identity for a (family, index) pair.
// index must be in [0,31].
func NewRegister(family RegisterFamily, index uint8) Register {
	return familyBase(family) + Register(index)
}

// Family returns the register family this Register belongs to.
func (r Register) Family() RegisterFamily {
	return RegisterFamily(r/familyWidth) + 1
}

// Index returns the 0-31 register index within its family.
func (r Register) Index() uint8 {
	return uint8(r % familyWidth)
}

// baseRegister resolves a load/store base-register field (Rn) to its X or
// SP identity: by architectural convention, an Rn field of 31 always
// addresses the stack pointer in load/store addressing, never the zero
// register.
func baseRegister(index uint8) Register {
	if index == 31 {
		return NewRegister(FamilySP, 0)
	}
	return NewRegister(FamilyX, index)
}
