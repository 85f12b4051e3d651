package decode_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64decoder/decode"
	"github.com/sarchlab/a64decoder/insts"
)

// ldrbWord builds an unsigned-offset LDRB encoding (opc=01 size=00 V=0),
// matching the field layout decoded by insts.decodeUnsignedOffset.
func ldrbWord(imm12, rn, rt uint32) uint32 {
	// size=00 (bits31-30 left clear).
	word := uint32(0)
	word |= 1 << 29
	word |= 1 << 28
	word |= 1 << 27
	word |= 0b01 << 22 // opc
	word |= 1 << 24    // op2h = 1 -> unsigned offset
	word |= (imm12 & 0xFFF) << 10
	word |= (rn & 0x1F) << 5
	word |= rt & 0x1F
	return word
}

func undefinedWord() uint32 {
	// opc=10 size=01 V=1: not in the unsigned-offset table.
	word := uint32(0b01) << 30
	word |= 1 << 29
	word |= 1 << 28
	word |= 1 << 27
	word |= 1 << 26 // V=1
	word |= 0b10 << 22
	word |= 1 << 24
	return word
}

func unimplementedWord() uint32 {
	return 1 << 31 // t=0, bit31 set -> SME, unimplemented
}

func toBytes(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

var _ = Describe("Driver", func() {
	Describe("DecodeAll", func() {
		It("yields exactly len(b)/4 records", func() {
			b := toBytes(ldrbWord(0, 1, 0), ldrbWord(4, 1, 2))
			d := decode.NewDriver(decode.DefaultOptions())
			out, err := d.DecodeAll(b, 0x1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(2))
		})

		It("stamps addresses as virtual_address + 4*i", func() {
			b := toBytes(ldrbWord(0, 1, 0), ldrbWord(0, 1, 0), ldrbWord(0, 1, 0))
			d := decode.NewDriver(decode.DefaultOptions())
			out, err := d.DecodeAll(b, 0x2000)
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Address).To(Equal(uint64(0x2000)))
			Expect(out[1].Address).To(Equal(uint64(0x2004)))
			Expect(out[2].Address).To(Equal(uint64(0x2008)))
		})

		It("rejects a length not divisible by 4", func() {
			d := decode.NewDriver(decode.DefaultOptions())
			_, err := d.DecodeAll([]byte{1, 2, 3}, 0)
			Expect(err).To(HaveOccurred())
			var structural *decode.StructuralError
			Expect(err).To(BeAssignableToTypeOf(structural))
		})

		It("surfaces an Undefined word by default", func() {
			d := decode.NewDriver(decode.DefaultOptions())
			_, err := d.DecodeAll(toBytes(undefinedWord()), 0)
			Expect(err).To(HaveOccurred())
		})

		It("substitutes INVALID for an Undefined word when ContinueOnError is set", func() {
			opts := decode.DefaultOptions()
			opts.ContinueOnError = true
			d := decode.NewDriver(opts)
			out, err := d.DecodeAll(toBytes(undefinedWord()), 0x500)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(1))
			Expect(out[0].Mnemonic).To(Equal(insts.MnemonicInvalid))
			Expect(out[0].Address).To(Equal(uint64(0x500)))
		})

		It("surfaces an Unimplemented word when ThrowOnUnimplemented is set", func() {
			d := decode.NewDriver(decode.DefaultOptions())
			_, err := d.DecodeAll(toBytes(unimplementedWord()), 0)
			Expect(err).To(HaveOccurred())
		})

		It("returns an inert UNIMPLEMENTED mnemonic when ThrowOnUnimplemented is false", func() {
			opts := decode.DefaultOptions()
			opts.ThrowOnUnimplemented = false
			d := decode.NewDriver(opts)
			out, err := d.DecodeAll(toBytes(unimplementedWord()), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Mnemonic).To(Equal(insts.MnemonicUnimplemented))
		})

		It("decodes a well-formed LDRB correctly", func() {
			d := decode.NewDriver(decode.DefaultOptions())
			out, err := d.DecodeAll(toBytes(ldrbWord(5, 1, 0)), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(out[0].Mnemonic).To(Equal(insts.MnemonicLDRB))
		})
	})

	Describe("All (lazy streaming)", func() {
		It("yields the same records as DecodeAll", func() {
			b := toBytes(ldrbWord(0, 1, 0), ldrbWord(4, 1, 2))
			d := decode.NewDriver(decode.DefaultOptions())

			var got []insts.Instruction
			for inst, err := range d.All(b, 0x4000) {
				Expect(err).NotTo(HaveOccurred())
				got = append(got, inst)
			}
			Expect(got).To(HaveLen(2))
			Expect(got[0].Address).To(Equal(uint64(0x4000)))
			Expect(got[1].Address).To(Equal(uint64(0x4004)))

			want, err := d.DecodeAll(b, 0x4000)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("stops after the consumer breaks", func() {
			b := toBytes(ldrbWord(0, 1, 0), ldrbWord(0, 1, 0), ldrbWord(0, 1, 0))
			d := decode.NewDriver(decode.DefaultOptions())

			count := 0
			for range d.All(b, 0) {
				count++
				if count == 1 {
					break
				}
			}
			Expect(count).To(Equal(1))
		})
	})
})
