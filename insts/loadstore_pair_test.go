package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64decoder/insts"
)

var _ = Describe("load/store pair", func() {
	d := insts.NewDecoder()

	It("decodes STGP for opc=01, V=0, L=0", func() {
		word := pairWord(0b01, false, false, 1, 1, 2, 0)
		inst, err := d.Decode(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic).To(Equal(insts.MnemonicSTGP))
		Expect(inst.Op0Reg.Family()).To(Equal(insts.FamilyW))
	})

	It("decodes LDPSW for opc=01, V=0, L=1", func() {
		word := pairWord(0b01, false, true, 1, 1, 2, 0)
		inst, err := d.Decode(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic).To(Equal(insts.MnemonicLDPSW))
		Expect(inst.Op0Reg.Family()).To(Equal(insts.FamilyD))
		Expect(inst.MemOffset).To(Equal(int64(8)))
	})

	It("decodes LDP for opc=10, V=1 into the V family", func() {
		word := pairWord(0b10, true, true, 1, 1, 2, 0)
		inst, err := d.Decode(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Mnemonic).To(Equal(insts.MnemonicLDP))
		Expect(inst.Op0Reg.Family()).To(Equal(insts.FamilyV))
		Expect(inst.MemOffset).To(Equal(int64(16)))
	})

	It("rejects opc=11 as unallocated", func() {
		word := pairWord(0b11, false, false, 0, 1, 2, 0)
		_, err := d.Decode(word)
		Expect(err).To(HaveOccurred())
		var undef *insts.UndefinedError
		Expect(err).To(BeAssignableToTypeOf(undef))
	})

	It("decodes a pre-indexed pair and a post-indexed pair distinctly", func() {
		pre := preIndexedPairWord(0b10, false, true, 0, 1, 2, 0)
		post := postIndexedPairWord(0b10, false, true, 0, 1, 2, 0)

		preInst, err := d.Decode(pre)
		Expect(err).NotTo(HaveOccurred())
		Expect(preInst.MemAccessMode).To(Equal(insts.PreIndex))
		Expect(preInst.MemIsPreIndexed).To(BeTrue())

		postInst, err := d.Decode(post)
		Expect(err).NotTo(HaveOccurred())
		Expect(postInst.MemAccessMode).To(Equal(insts.PostIndex))
		Expect(postInst.MemIsPreIndexed).To(BeFalse())
	})
})

// preIndexedPairWord and postIndexedPairWord mirror pairWord but select
// op2 = 0b11 (pre-index) or 0b01 (post-index) instead of 0b10 (offset).
func preIndexedPairWord(opc uint32, v, l bool, imm7, rt2, rn, rt uint32) uint32 {
	word := pairWord(opc, v, l, imm7, rt2, rn, rt)
	return word | 1<<23 // op2 = 0b11
}

func postIndexedPairWord(opc uint32, v, l bool, imm7, rt2, rn, rt uint32) uint32 {
	word := pairWord(opc, v, l, imm7, rt2, rn, rt)
	word &^= 1 << 24
	word |= 1 << 23 // op2 = 0b01
	return word
}
