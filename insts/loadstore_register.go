package insts

// decodeRegisterOffset decodes LDR/STR with a register-offset index,
// optionally extended or shifted.
//
// Fields: size, V, opc share the unsigned-offset table's layout;
// Rm = I[20:16]; option = I[15:13]; S = I[12]; Rn, Rt as usual.
func (d *Decoder) decodeRegisterOffset(word uint32) (Instruction, error) {
	size := (word >> 30) & 0x3
	v := bitSet(word, 26)
	opc := (word >> 22) & 0x3
	rm := uint8((word >> 16) & 0x1F)
	option := (word >> 13) & 0x7
	s := bitSet(word, 12)
	rn := uint8((word >> 5) & 0x1F)
	rt := uint8(word & 0x1F)

	mnemonic, ok := scaledMnemonic(opc, size, v)
	if !ok {
		return Instruction{}, &UndefinedError{Word: word, Reason: "register-offset load/store: unallocated (opc,size,V) cell"}
	}
	if mnemonic == MnemonicPRFM {
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedPRFM}
	}

	family := resolveFamily(opc, size, v)

	isShiftedRegister := option == 0b011

	var indexFamily RegisterFamily
	if bitSet(word, 13) { // option[0]
		indexFamily = FamilyX
	} else {
		indexFamily = FamilyW
	}

	var extend ExtendType
	var shift ShiftType
	if isShiftedRegister {
		shift = ShiftLSL
	} else {
		extend = extendTypeFromOption(option)
	}

	var amount uint8
	if s {
		if v && opc == 0b11 && size == 0 {
			amount = 4
		} else {
			amount = uint8(size)
		}
	}

	inst := Instruction{Mnemonic: mnemonic, MnemonicCategory: CategoryLoadStore}
	inst.Op0Kind = KindRegister
	inst.Op0Reg = NewRegister(family, rt)
	inst.Op1Kind = KindMemory
	inst.setMemory(baseRegister(rn), 0, Offset)
	inst.setAddend(NewRegister(indexFamily, rm), extend, shift, amount)

	return inst, nil
}

// extendTypeFromOption maps the 3-bit option field to the extend type used
// for register-offset addressing when not in shifted-register (LSL) form.
// Only UXTW, SXTW and SXTX are architecturally valid for load/store
// register-offset; other encodings are reserved and map to ExtendNone.
func extendTypeFromOption(option uint32) ExtendType {
	switch option {
	case 0b010:
		return ExtendUXTW
	case 0b110:
		return ExtendSXTW
	case 0b111:
		return ExtendSXTX
	default:
		return ExtendNone
	}
}
