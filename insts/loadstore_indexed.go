package insts

// decodeIndexed decodes LDR/STR with pre-indexed or post-indexed
// addressing: an unscaled signed 9-bit immediate that is always written
// back to Rn, either before (PreIndex) or after (PostIndex) the access.
//
// Fields: size, V, opc, imm9 = I[20:12], Rn, Rt. Which of the two
// addressing modes applies is decided by the caller and passed in as
// mode.
func (d *Decoder) decodeIndexed(word uint32, mode MemoryAccessMode) (Instruction, error) {
	size := (word >> 30) & 0x3
	v := bitSet(word, 26)
	opc := (word >> 22) & 0x3
	imm9 := uint64((word >> 12) & 0x1FF)
	rn := uint8((word >> 5) & 0x1F)
	rt := uint8(word & 0x1F)

	mnemonic, ok := indexedMnemonic(opc, size, v)
	if !ok {
		return Instruction{}, &UndefinedError{Word: word, Reason: "pre/post-indexed load/store: unallocated (opc,size,V) cell"}
	}

	family := resolveFamily(opc, size, v)
	offset := signExtend(imm9, 9)

	inst := Instruction{Mnemonic: mnemonic, MnemonicCategory: CategoryLoadStore}
	inst.Op0Kind = KindRegister
	inst.Op0Reg = NewRegister(family, rt)
	inst.Op1Kind = KindMemory
	inst.setMemory(baseRegister(rn), offset, mode)

	return inst, nil
}
