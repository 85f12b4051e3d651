package insts

// decodeUnscaled decodes the STUR/LDUR family: load/store with an
// unscaled signed 9-bit immediate offset and no addressing-mode update.
//
// Field layout: size, V, opc, imm9 = I[20:12], Rn, Rt.
func (d *Decoder) decodeUnscaled(word uint32) (Instruction, error) {
	size := (word >> 30) & 0x3
	v := bitSet(word, 26)
	opc := (word >> 22) & 0x3
	imm9 := uint64((word >> 12) & 0x1FF)
	rn := uint8((word >> 5) & 0x1F)
	rt := uint8(word & 0x1F)

	mnemonic, ok := unscaledMnemonic(opc, size, v)
	if !ok {
		return Instruction{}, &UndefinedError{Word: word, Reason: "unscaled load/store: unallocated (opc,size,V) cell"}
	}
	if mnemonic == MnemonicPRFUM {
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedPRFUM}
	}

	family := resolveFamily(opc, size, v)
	offset := signExtend(imm9, 9)

	inst := Instruction{Mnemonic: mnemonic, MnemonicCategory: CategoryLoadStore}
	inst.Op0Kind = KindRegister
	inst.Op0Reg = NewRegister(family, rt)
	inst.Op1Kind = KindMemory
	inst.setMemory(baseRegister(rn), offset, Offset)

	return inst, nil
}
