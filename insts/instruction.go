package insts

// OperandKind classifies what an instruction operand slot holds.
type OperandKind uint8

// Operand kinds. This package only ever sets KindRegister and KindMemory
// (unused slots stay KindNone); the remainder (Immediate, FloatImmediate,
// ShiftedImmediate, Condition, PageRelative) are reserved for collaborator
// instruction classes outside the loads/stores subtree and are never set
// by this package, but are part of the closed Instruction record shape.
const (
	KindNone OperandKind = iota
	KindRegister
	KindImmediate
	KindMemory
	KindFloatImmediate
	KindShiftedImmediate
	KindCondition
	KindPageRelative
)

// ExtendType is the extension applied to a register-offset index register.
type ExtendType uint8

// Extend types for register-offset addressing.
const (
	ExtendNone ExtendType = iota
	ExtendUXTW
	ExtendLSL
	ExtendSXTW
	ExtendSXTX
)

// ShiftType is the shift applied to a register-offset index register when
// it is in its shifted-register (LSL) form.
type ShiftType uint8

// Shift types a Memory operand's addend register may carry.
const (
	ShiftNone ShiftType = iota
	ShiftLSL
	ShiftLSR
	ShiftASR
	ShiftROR
)

// MemoryAccessMode distinguishes the three addressing modes a load/store
// immediate or register-offset instruction may use. Offset and PostIndex
// both leave MemIsPreIndexed false, so this explicit mode closes the
// ambiguity between them.
type MemoryAccessMode uint8

const (
	Offset MemoryAccessMode = iota
	PreIndex
	PostIndex
)

// Instruction is the decoded output of this package: mnemonic, operand
// kinds/values, memory-addressing metadata, and (once stamped by the
// driver) the instruction's virtual address. Fields not meaningful for a
// given mnemonic are left at their zero value (None/0/NONE).
type Instruction struct {
	Mnemonic         Mnemonic
	MnemonicCategory MnemonicCategory

	Op0Kind, Op1Kind, Op2Kind, Op3Kind OperandKind
	Op0Reg, Op1Reg, Op2Reg             Register
	Op0Imm, Op1Imm, Op2Imm             int64

	// Memory operand fields, meaningful when one of Op{0,1,2,3}Kind is
	// KindMemory.
	MemBase                Register
	MemHasAddend           bool
	MemAddendReg           Register
	MemOffset              int64
	MemAccessMode          MemoryAccessMode
	MemIsPreIndexed        bool
	MemExtendType          ExtendType
	MemShiftType           ShiftType
	MemExtendOrShiftAmount uint8

	// Address is stamped by the driver after decode.
	Address uint64
}

// setMemory populates the Memory-operand fields shared by every loads/stores
// leaf decoder, keeping MemIsPreIndexed in lock-step with MemAccessMode.
func (inst *Instruction) setMemory(base Register, offset int64, mode MemoryAccessMode) {
	inst.MemBase = base
	inst.MemOffset = offset
	inst.MemAccessMode = mode
	inst.MemIsPreIndexed = mode == PreIndex
}

// setAddend attaches a register-offset index register to the instruction's
// Memory operand.
func (inst *Instruction) setAddend(reg Register, extend ExtendType, shift ShiftType, amount uint8) {
	inst.MemHasAddend = true
	inst.MemAddendReg = reg
	inst.MemExtendType = extend
	inst.MemShiftType = shift
	inst.MemExtendOrShiftAmount = amount
}
