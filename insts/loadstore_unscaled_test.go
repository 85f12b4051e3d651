package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64decoder/insts"
)

var _ = Describe("unscaled-immediate load/store (STUR family)", func() {
	d := insts.NewDecoder()

	It("decodes STUR with a negative sign-extended imm9", func() {
		// opc=00 size=11 V=0: STUR (64-bit). imm9 = 0x1FF (-1).
		word := unscaledWord(0b00, 0b11, false, 0x1FF, 1, 0)
		inst, err := d.Decode(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic).To(Equal(insts.MnemonicSTUR))
		Expect(inst.MemOffset).To(Equal(int64(-1)))
		Expect(inst.MemAccessMode).To(Equal(insts.Offset))
		Expect(inst.MemIsPreIndexed).To(BeFalse())
	})

	It("decodes LDURSW", func() {
		// opc=10 size=10 V=0
		word := unscaledWord(0b10, 0b10, false, 4, 1, 0)
		inst, err := d.Decode(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic).To(Equal(insts.MnemonicLDURSW))
		Expect(inst.Op0Reg.Family()).To(Equal(insts.FamilyX))
		Expect(inst.MemOffset).To(Equal(int64(4)))
	})

	It("reports PRFUM as unimplemented", func() {
		word := unscaledWord(0b11, 0b10, false, 0, 1, 0)
		_, err := d.Decode(word)
		Expect(err).To(HaveOccurred())
		var unimpl *insts.UnimplementedError
		Expect(err).To(BeAssignableToTypeOf(unimpl))
	})

	It("rejects the Open-Question-resolved extra undefined cell (opc=10, size=01, V=1)", func() {
		word := unscaledWord(0b10, 0b01, true, 0, 1, 0)
		_, err := d.Decode(word)
		Expect(err).To(HaveOccurred())
		var undef *insts.UndefinedError
		Expect(err).To(BeAssignableToTypeOf(undef))
	})
})
