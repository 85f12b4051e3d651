package insts

// decodeLoadsStores is the loads/stores top classifier. It extracts the
// five opcode fields (op0..op4) that discriminate every load/store
// encoding family and routes to the first matching leaf.
func (d *Decoder) decodeLoadsStores(word uint32) (Instruction, error) {
	op0 := (word >> 28) & 0xF
	op1 := (word >> 26) & 0x1
	op2 := (word >> 23) & 0x3
	op3 := (word >> 16) & 0x3F
	op4 := (word >> 10) & 0x3

	switch {
	case op0&0b1011 == 0:
		return d.decodeSIMDLoadStoreStructure(word, op2, op3)
	case op0 == 0b1101 && op1 == 0 && (op2>>1) == 1 && (op3>>5) == 1:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedMemoryTags}
	case op0&0b1011 == 0b1000:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedExclusivePair}
	}

	switch op0 & 0b11 {
	case 0b00:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedExclusiveOrdered}
	case 0b01:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedUnscaledLiteralMemcpy}
	case 0b10:
		return d.decodeLoadStorePairs(word, op2)
	default: // 0b11
		return d.decodeLoadStoreRegisterOrAtomic(word, op2, op3, op4)
	}
}

// decodeSIMDLoadStoreStructure is the Advanced SIMD load/store structure
// classifier. Both leaves it can reach are out of scope for this decoder
// (SIMD-structure stubs).
func (d *Decoder) decodeSIMDLoadStoreStructure(word, op2, op3 uint32) (Instruction, error) {
	switch {
	case op2 == 0b11:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedSIMDStructureSinglePostIdx}
	case op3&0b11111 == 0:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedSIMDStructureSingle}
	default:
		return Instruction{}, &UndefinedError{Word: word, Reason: "advanced SIMD load/store structure: unallocated op3"}
	}
}

// decodeLoadStorePairs is the load/store pairs secondary dispatcher: it
// resolves the addressing mode from op2 and hands off to the pair decoder.
func (d *Decoder) decodeLoadStorePairs(word, op2 uint32) (Instruction, error) {
	switch op2 {
	case 0b00:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedNoAllocatePair}
	case 0b01:
		return d.decodePair(word, PostIndex)
	case 0b10:
		return d.decodePair(word, Offset)
	default: // 0b11
		return d.decodePair(word, PreIndex)
	}
}

// decodeLoadStoreRegisterOrAtomic is the load/store register-or-atomic
// dispatcher.
func (d *Decoder) decodeLoadStoreRegisterOrAtomic(word, op2, op3, op4 uint32) (Instruction, error) {
	op2h := op2 >> 1
	if op2h == 1 {
		return d.decodeUnsignedOffset(word)
	}

	if op3>>5 == 1 {
		switch op4 {
		case 0b00:
			return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedAtomic}
		case 0b10:
			return d.decodeRegisterOffset(word)
		default:
			return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedPointerAuth}
		}
	}

	switch op4 {
	case 0b00:
		return d.decodeUnscaled(word)
	case 0b01:
		return d.decodeIndexed(word, PostIndex)
	case 0b10:
		return Instruction{}, &UnimplementedError{Word: word, Kind: UnimplementedUnprivileged}
	default: // 0b11
		return d.decodeIndexed(word, PreIndex)
	}
}
