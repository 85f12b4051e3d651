package insts

// This file holds the (opc, size, V) lookup tables shared by the
// loads/stores leaf decoders: the scaled/unsigned-offset table, reused
// almost verbatim by the register-offset decoder and the pre/post-indexed
// decoder, plus the unscaled-immediate table. Expressing each as a small
// 3-D constant table, rather than a ladder of conditionals, keeps every
// undefined cell visible at a glance.

// scaledMnemonics is the unsigned-offset table. A missing entry means
// the cell is architecturally undefined.
var scaledMnemonics = map[[3]uint32]Mnemonic{
	{0b00, 0b00, 0}: MnemonicSTRB, {0b00, 0b00, 1}: MnemonicSTR,
	{0b00, 0b01, 0}: MnemonicSTRH, {0b00, 0b01, 1}: MnemonicSTR,
	{0b00, 0b10, 0}: MnemonicSTR, {0b00, 0b10, 1}: MnemonicSTR,
	{0b00, 0b11, 0}: MnemonicSTR, {0b00, 0b11, 1}: MnemonicSTR,

	{0b01, 0b00, 0}: MnemonicLDRB, {0b01, 0b00, 1}: MnemonicLDR,
	{0b01, 0b01, 0}: MnemonicLDRH, {0b01, 0b01, 1}: MnemonicLDR,
	{0b01, 0b10, 0}: MnemonicLDR, {0b01, 0b10, 1}: MnemonicLDR,
	{0b01, 0b11, 0}: MnemonicLDR, {0b01, 0b11, 1}: MnemonicLDR,

	{0b10, 0b00, 0}: MnemonicLDRSB, {0b10, 0b00, 1}: MnemonicSTR, // STR(128)
	{0b10, 0b01, 0}: MnemonicLDRSH,
	{0b10, 0b10, 0}: MnemonicLDRSW,

	{0b11, 0b00, 0}: MnemonicLDRSB, {0b11, 0b00, 1}: MnemonicLDR, // LDR(128)
	{0b11, 0b01, 0}: MnemonicLDRSH,
	{0b11, 0b10, 0}: MnemonicPRFM,
}

// scaledMnemonic looks up the unsigned-offset table. ok is false for
// every unallocated cell.
func scaledMnemonic(opc, size uint32, v bool) (Mnemonic, bool) {
	m, ok := scaledMnemonics[[3]uint32{opc, size, b2u(v)}]
	return m, ok
}

// indexedMnemonic is the pre/post-indexed variant of the same table: PRFM
// never appears in an indexed form (that cell is undefined instead), and
// a stricter rule applies for size in {0b10, 0b11}: undefined whenever V
// and opc is 0b10 or 0b11, or !V and opc == 0b11. Notably this does NOT
// reject opc=0b10 (LDRSW) at size=0b10 with V=0: AArch64 genuinely has a
// pre/post-indexed LDRSW.
func indexedMnemonic(opc, size uint32, v bool) (Mnemonic, bool) {
	if size == 0b10 || size == 0b11 {
		if v && (opc == 0b10 || opc == 0b11) {
			return 0, false
		}
		if !v && opc == 0b11 {
			return 0, false
		}
	}
	m, ok := scaledMnemonic(opc, size, v)
	if !ok || m == MnemonicPRFM {
		return 0, false
	}
	return m, true
}

// unscaledMnemonics is the STUR-family table: same shape as
// scaledMnemonics with STUR/LDUR-family names, plus the extra undefined
// cells (opc=10, size in {01,10,11}, V=1).
var unscaledMnemonics = map[[3]uint32]Mnemonic{
	{0b00, 0b00, 0}: MnemonicSTURB, {0b00, 0b00, 1}: MnemonicSTUR,
	{0b00, 0b01, 0}: MnemonicSTURH, {0b00, 0b01, 1}: MnemonicSTUR,
	{0b00, 0b10, 0}: MnemonicSTUR, {0b00, 0b10, 1}: MnemonicSTUR,
	{0b00, 0b11, 0}: MnemonicSTUR, {0b00, 0b11, 1}: MnemonicSTUR,

	{0b01, 0b00, 0}: MnemonicLDURB, {0b01, 0b00, 1}: MnemonicLDUR,
	{0b01, 0b01, 0}: MnemonicLDURH, {0b01, 0b01, 1}: MnemonicLDUR,
	{0b01, 0b10, 0}: MnemonicLDUR, {0b01, 0b10, 1}: MnemonicLDUR,
	{0b01, 0b11, 0}: MnemonicLDUR, {0b01, 0b11, 1}: MnemonicLDUR,

	{0b10, 0b00, 0}: MnemonicLDURSB, {0b10, 0b00, 1}: MnemonicSTUR, // STUR(128)
	{0b10, 0b01, 0}: MnemonicLDURSH,
	{0b10, 0b10, 0}: MnemonicLDURSW,

	{0b11, 0b00, 0}: MnemonicLDURSB, {0b11, 0b00, 1}: MnemonicLDUR, // LDUR(128)
	{0b11, 0b01, 0}: MnemonicLDURSH,
	{0b11, 0b10, 0}: MnemonicPRFUM,
}

func unscaledMnemonic(opc, size uint32, v bool) (Mnemonic, bool) {
	m, ok := unscaledMnemonics[[3]uint32{opc, size, b2u(v)}]
	return m, ok
}

func b2u(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// resolveFamily computes the register family of Rt for any of the
// tables above: the rule depends only on (opc, size, V), never on which
// specific mnemonic spelling was resolved, so one function serves the
// unsigned-offset, register-offset, unscaled and pre/post-indexed forms
// alike.
func resolveFamily(opc, size uint32, v bool) RegisterFamily {
	switch {
	case v && opc == 0b00:
		return [4]RegisterFamily{FamilyB, FamilyH, FamilyS, FamilyD}[size]
	case v:
		return FamilyV
	case opc == 0b00 || opc == 0b01:
		if size == 0b10 {
			return FamilyW
		}
		if size == 0b11 {
			return FamilyX
		}
		return FamilyW // byte/halfword forms
	default: // opc == 0b10 || opc == 0b11: signed loads, PRFM, or undefined
		switch size {
		case 0b10: // LDRSW only valid at opc==0b10
			return FamilyX
		default: // byte/halfword signed loads
			if opc == 0b10 {
				return FamilyX
			}
			return FamilyW
		}
	}
}
