package insts

// decodeUnsignedOffset decodes LDR/STR and friends with a scaled unsigned
// 12-bit immediate offset.
//
// Fields: size = I[31:30], V = I[26], opc = I[23:22], imm12 = I[21:10],
// Rn = I[9:5], Rt = I[4:0].
func (d *Decoder) decodeUnsignedOffset(word uint32) (Instruction, error) {
	size := (word >> 30) & 0x3
	v := bitSet(word, 26)
	opc := (word >> 22) & 0x3
	imm12 := uint64((word >> 10) & 0xFFF)
	rn := uint8((word >> 5) & 0x1F)
	rt := uint8(word & 0x1F)

	mnemonic, ok := scaledMnemonic(opc, size, v)
	if !ok {
		return Instruction{}, &UndefinedError{Word: word, Reason: "unsigned-offset load/store: unallocated (opc,size,V) cell"}
	}
	if mnemonic == MnemonicPRFM {
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedPRFM}
	}

	family := resolveFamily(opc, size, v)
	offset := int64(imm12 << size)

	inst := Instruction{Mnemonic: mnemonic, MnemonicCategory: CategoryLoadStore}
	inst.Op0Kind = KindRegister
	inst.Op0Reg = NewRegister(family, rt)
	inst.Op1Kind = KindMemory
	inst.setMemory(baseRegister(rn), offset, Offset)

	return inst, nil
}
