package insts

// Mnemonic is a closed set of load/store (and sentinel) opcodes this
// decoder resolves.
type Mnemonic uint16

// Mnemonics covered by the loads/stores subtree, plus the two sentinels
// (Invalid, Unimplemented) the driver substitutes per its error policy.
const (
	MnemonicInvalid Mnemonic = iota
	MnemonicUnimplemented

	MnemonicSTR
	MnemonicLDR
	MnemonicSTRB
	MnemonicLDRB
	MnemonicSTRH
	MnemonicLDRH
	MnemonicLDRSB
	MnemonicLDRSH
	MnemonicLDRSW

	MnemonicSTUR
	MnemonicLDUR
	MnemonicSTURB
	MnemonicLDURB
	MnemonicSTURH
	MnemonicLDURH
	MnemonicLDURSB
	MnemonicLDURSH
	MnemonicLDURSW

	MnemonicSTP
	MnemonicLDP
	MnemonicSTGP
	MnemonicLDPSW

	MnemonicPRFM
	MnemonicPRFUM
)

var mnemonicNames = map[Mnemonic]string{
	MnemonicInvalid:       "INVALID",
	MnemonicUnimplemented: "UNIMPLEMENTED",
	MnemonicSTR:           "STR",
	MnemonicLDR:           "LDR",
	MnemonicSTRB:          "STRB",
	MnemonicLDRB:          "LDRB",
	MnemonicSTRH:          "STRH",
	MnemonicLDRH:          "LDRH",
	MnemonicLDRSB:         "LDRSB",
	MnemonicLDRSH:         "LDRSH",
	MnemonicLDRSW:         "LDRSW",
	MnemonicSTUR:          "STUR",
	MnemonicLDUR:          "LDUR",
	MnemonicSTURB:         "STURB",
	MnemonicLDURB:         "LDURB",
	MnemonicSTURH:         "STURH",
	MnemonicLDURH:         "LDURH",
	MnemonicLDURSB:        "LDURSB",
	MnemonicLDURSH:        "LDURSH",
	MnemonicLDURSW:        "LDURSW",
	MnemonicSTP:           "STP",
	MnemonicLDP:           "LDP",
	MnemonicSTGP:          "STGP",
	MnemonicLDPSW:         "LDPSW",
	MnemonicPRFM:          "PRFM",
	MnemonicPRFUM:         "PRFUM",
}

func (m Mnemonic) String() string {
	if s, ok := mnemonicNames[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// MnemonicCategory is an optional classification tag carried alongside a
// resolved Mnemonic, letting downstream consumers group instructions
// without re-deriving the category from the mnemonic itself.
type MnemonicCategory string

// CategoryLoadStore is the only category this decoder ever assigns: every
// mnemonic it resolves belongs to the loads/stores subtree.
const CategoryLoadStore MnemonicCategory = "LoadStore"
