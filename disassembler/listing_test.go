package disassembler_test

import (
	"errors"
	"strings"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/z80dis/disassembler"
)

// atPC matches an Instruction by start offset.
type atPC int

func (m atPC) Matches(x interface{}) bool {
	inst, ok := x.(disassembler.Instruction)
	return ok && inst.PC == int(m)
}

func (m atPC) String() string {
	return "instruction at offset " + disassembler.Instruction{PC: int(m)}.PCText()
}

var _ = Describe("Listing", func() {
	// PUSH DE; DEC DE; LD A,D; OR E; NOP; JR NZ,-6; POP DE; RET
	sample := []byte{0xD5, 0x1B, 0x7A, 0xB3, 0x00, 0x20, 0xFA, 0xD1, 0xC9}

	var d *disassembler.Decoder

	BeforeEach(func() {
		d = disassembler.New(nil)
	})

	Describe("Disassemble", func() {
		It("should decode one instruction per step until the end", func() {
			l, err := d.Disassemble(sample)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Instructions).To(HaveLen(8))

			pc := 0
			for _, inst := range l.Instructions {
				Expect(inst.PC).To(Equal(pc))
				Expect(inst.Next).To(Equal(pc + inst.Entry.Length))
				pc = inst.Next
			}
			Expect(pc).To(Equal(len(sample)))
		})

		It("should resolve the loop back to offset 1", func() {
			l, err := d.Disassemble(sample)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Instructions[5].Mnemonic).To(Equal("JR NZ,FA  [SYM_0001]"))
			Expect(l.Symbols.Symbols()).To(Equal([]disassembler.Symbol{
				{Label: "SYM_0001", Address: "0001"},
			}))
		})

		It("should produce the same listing twice", func() {
			first, err := d.Disassemble(sample)
			Expect(err).NotTo(HaveOccurred())
			second, err := d.Disassemble(sample)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.String()).To(Equal(first.String()))
			Expect(second.Symbols.Symbols()).To(Equal(first.Symbols.Symbols()))
		})

		It("should return nothing for an empty image", func() {
			l, err := d.Disassemble(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Instructions).To(BeEmpty())
			Expect(l.Symbols.Len()).To(BeZero())
		})

		It("should abandon the pass on a malformed opcode", func() {
			code := append([]byte{0xC3, 0x00, 0x10}, 0xFD, 0x00)
			l, err := d.Disassemble(code)
			Expect(err).To(MatchError(disassembler.ErrMalformedOpcode))
			Expect(l).To(BeNil())
		})

		It("should abandon the pass on a truncated instruction", func() {
			l, err := d.Disassemble([]byte{0x00, 0xCD, 0x00})
			Expect(errors.Is(err, disassembler.ErrTruncated)).To(BeTrue())
			Expect(l).To(BeNil())
		})
	})

	Describe("String", func() {
		It("should format instructions and then symbols", func() {
			text, err := disassembler.Disassemble(sample)
			Expect(err).NotTo(HaveOccurred())
			lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			Expect(lines).To(HaveLen(9))
			Expect(lines[0]).To(Equal("0000 D5           :           PUSH DE"))
			Expect(lines[5]).To(Equal("0005 20 FA        :           JR NZ,FA  [SYM_0001]"))
			Expect(lines[7]).To(Equal("0008 C9           :           RET"))
			Expect(lines[8]).To(Equal("SYM_0001 = 0001"))
		})
	})

	Describe("Emit", func() {
		var (
			mockCtrl *gomock.Controller
			sink     *MockSink
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			sink = NewMockSink(mockCtrl)
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should send instructions in order before symbols", func() {
			code := []byte{
				0xCD, 0x00, 0x20, // CALL 2000
				0x18, 0xFB, // JR 0000
				0xC9, // RET
			}
			l, err := d.Disassemble(code)
			Expect(err).NotTo(HaveOccurred())

			gomock.InOrder(
				sink.EXPECT().Instruction(atPC(0)).Return(nil),
				sink.EXPECT().Instruction(atPC(3)).Return(nil),
				sink.EXPECT().Instruction(atPC(5)).Return(nil),
				sink.EXPECT().Symbol("SYM_2000", "2000").Return(nil),
				sink.EXPECT().Symbol("SYM_0000", "0000").Return(nil),
			)

			Expect(l.Emit(sink)).To(Succeed())
		})

		It("should stop at the first sink error", func() {
			l, err := d.Disassemble([]byte{0x00, 0x00})
			Expect(err).NotTo(HaveOccurred())

			failure := errors.New("disk full")
			sink.EXPECT().Instruction(atPC(0)).Return(failure)

			Expect(l.Emit(sink)).To(MatchError(failure))
		})
	})
})
