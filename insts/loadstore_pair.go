package insts

// decodePair decodes LDP, STP, LDPSW and STGP.
//
// Fields: opc = I[31:30], V = I[26], L = I[22], imm7 = I[21:15] (signed),
// Rt2 = I[14:10], Rn = I[9:5], Rt = I[4:0].
func (d *Decoder) decodePair(word uint32, mode MemoryAccessMode) (Instruction, error) {
	opc := (word >> 30) & 0x3
	v := bitSet(word, 26)
	l := bitSet(word, 22)
	imm7 := (word >> 15) & 0x7F
	rt2 := uint8((word >> 10) & 0x1F)
	rn := uint8((word >> 5) & 0x1F)
	rt := uint8(word & 0x1F)

	if opc == 0b11 {
		return Instruction{}, &UndefinedError{Word: word, Reason: "load/store pair: opc=11 is unallocated"}
	}

	mnemonic := MnemonicSTP
	if l {
		mnemonic = MnemonicLDP
	}
	if opc == 0b01 && !v {
		if l {
			mnemonic = MnemonicLDPSW
		} else {
			mnemonic = MnemonicSTGP
		}
	}

	var family RegisterFamily
	var dataBits uint
	switch {
	case opc == 0b00 && v:
		family, dataBits = FamilyS, 32
	case opc == 0b00 && !v:
		family, dataBits = FamilyW, 32
	case opc == 0b01 && mnemonic == MnemonicSTGP:
		family, dataBits = FamilyW, 32
	case opc == 0b01:
		family, dataBits = FamilyD, 64
	case opc == 0b10 && v:
		family, dataBits = FamilyV, 128
	default: // opc == 0b10, !v
		family, dataBits = FamilyX, 64
	}

	offset := signExtend(uint64(imm7), 7) * int64(dataBits/8)

	inst := Instruction{Mnemonic: mnemonic, MnemonicCategory: CategoryLoadStore}
	inst.Op0Kind = KindRegister
	inst.Op0Reg = NewRegister(family, rt)
	inst.Op1Kind = KindRegister
	inst.Op1Reg = NewRegister(family, rt2)
	inst.Op2Kind = KindMemory
	inst.setMemory(baseRegister(rn), offset, mode)

	return inst, nil
}
