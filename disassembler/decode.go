package disassembler

import (
	"fmt"
	"log/slog"

	"github.com/Urethramancer/z80dis/opcode"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	// PC is the offset the instruction starts at.
	PC int
	// Next is the offset of the following instruction.
	Next int
	// Bytes holds a copy of every byte the instruction consumed.
	Bytes []byte
	// Entry is the table entry the opcode resolved to.
	Entry opcode.Entry
	// Mnemonic is the rendered instruction, label annotation included.
	Mnemonic string
	// Label is the symbol generated for the operand, if any.
	Label string
}

// PCText returns the start offset as four uppercase hex digits.
func (i Instruction) PCText() string {
	return fmt.Sprintf("%04X", i.PC)
}

// BytesText returns the raw bytes in a fixed-width column.
func (i Instruction) BytesText() string {
	return padColumn(hexBytes(i.Bytes), byteColumn)
}

// String returns the listing line for the instruction.
func (i Instruction) String() string {
	return fmt.Sprintf("%s %s :           %s", i.PCText(), i.BytesText(), i.Mnemonic)
}

// Decoder turns bytes into instructions using an opcode table set.
type Decoder struct {
	set *opcode.Set
	log *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for pass summaries.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		d.log = l
	}
}

// New returns a decoder for the given tables. A nil set selects the
// built-in Z80 tables.
func New(set *opcode.Set, opts ...Option) *Decoder {
	if set == nil {
		set = opcode.Z80()
	}
	d := &Decoder{set: set}
	for _, o := range opts {
		o(d)
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	return d
}

// Decode decodes the instruction at pc. Labels for address operands are
// added to syms. A nil syms still renders labels but keeps no record of them.
func (d *Decoder) Decode(pc int, mem []byte, syms *SymbolTable) (Instruction, error) {
	if pc < 0 || pc >= len(mem) {
		return Instruction{}, decodeError(pc, nil, ErrOutOfRange)
	}
	if syms == nil {
		syms = NewSymbolTable()
	}

	first := mem[pc]
	family := opcode.Primary
	entry, ok := d.set.Lookup(opcode.Primary, first)
	if !ok {
		family, ok = opcode.FamilyOf(first)
		if !ok {
			return Instruction{}, decodeError(pc, mem[pc:pc+1], ErrMalformedOpcode)
		}
		if pc+1 >= len(mem) {
			return Instruction{}, decodeError(pc, mem[pc:], ErrTruncated)
		}
		entry, ok = d.set.Lookup(family, mem[pc+1])
		if !ok {
			return Instruction{}, decodeError(pc, mem[pc:pc+2], ErrMalformedOpcode)
		}
	}

	end := pc + entry.Length
	if end > len(mem) {
		return Instruction{}, decodeError(pc, mem[pc:], ErrTruncated)
	}

	inst := Instruction{
		PC:    pc,
		Next:  end,
		Bytes: append([]byte(nil), mem[pc:end]...),
		Entry: entry,
	}
	operand := mem[pc+family.OpcodeBytes() : end]

	switch entry.Operand {
	case opcode.None:
		inst.Mnemonic = entry.Render("")

	case opcode.Byte:
		inst.Mnemonic = entry.Render(fmt.Sprintf("%02X", operand[0]))

	case opcode.Relative:
		// The displacement counts from the end of the instruction; the
		// target wraps like the Z80 program counter.
		target := uint16(end + signExtend(operand[0]))
		inst.Label = d.reference(syms, formatAddress(target))
		inst.Mnemonic = annotate(entry.Render(fmt.Sprintf("%02X", operand[0])), inst.Label)

	case opcode.Word:
		lo, hi := operand[0], operand[1]
		address := fmt.Sprintf("%02X%02X", hi, lo)
		inst.Label = d.reference(syms, address)
		inst.Mnemonic = annotate(entry.Render(address), inst.Label)

	case opcode.Displaced:
		inst.Mnemonic = entry.Render(fmt.Sprintf("%02X", operand[0])) + fmt.Sprintf(",%02X", operand[1])

	case opcode.IndexedBit:
		inst.Mnemonic = opcode.IndexedBitMnemonic(entry, operand[0], operand[1])

	default:
		return Instruction{}, decodeError(pc, inst.Bytes, fmt.Errorf("%w: unknown operand kind %d", ErrMalformedOpcode, entry.Operand))
	}

	return inst, nil
}

// reference records an address in the symbol table and returns its label.
func (d *Decoder) reference(syms *SymbolTable, address string) string {
	label := labelName(address)
	syms.Add(label, address)
	return label
}

// annotate appends a label reference to a mnemonic.
func annotate(mnemonic, label string) string {
	return mnemonic + "  [" + label + "]"
}
