// Package opcode holds the Z80 opcode tables used by the disassembler.
//
// A Set is five flat 256-slot tables: the primary table and one table for
// each of the CB, DD, ED and FD prefixes. An Entry describes how long an
// instruction is and what kind of operand follows the opcode bytes; the
// mnemonic is stored as the text on either side of the operand slot.
package opcode

// Family selects one of the five opcode tables.
type Family int

const (
	// Primary is the unprefixed table.
	Primary Family = iota
	// ExtendedCB holds rotate, shift and bit instructions (CB xx).
	ExtendedCB
	// ExtendedDD holds IX instructions (DD xx).
	ExtendedDD
	// ExtendedED holds block, I/O and 16-bit memory loads (ED xx).
	ExtendedED
	// ExtendedFD holds IY instructions (FD xx).
	ExtendedFD

	numFamilies
)

// Prefix bytes introducing the extended tables.
const (
	PrefixCB byte = 0xCB
	PrefixDD byte = 0xDD
	PrefixED byte = 0xED
	PrefixFD byte = 0xFD
)

var familyNames = [numFamilies]string{"primary", "CB", "DD", "ED", "FD"}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return "unknown"
	}
	return familyNames[f]
}

// FamilyOf returns the extended table family introduced by a prefix byte.
func FamilyOf(prefix byte) (Family, bool) {
	switch prefix {
	case PrefixCB:
		return ExtendedCB, true
	case PrefixDD:
		return ExtendedDD, true
	case PrefixED:
		return ExtendedED, true
	case PrefixFD:
		return ExtendedFD, true
	}
	return Primary, false
}

// OpcodeBytes is the number of opcode bytes consumed before any operand:
// one for the primary table, two (prefix and opcode) for the others.
func (f Family) OpcodeBytes() int {
	if f == Primary {
		return 1
	}
	return 2
}

// Operand is the kind of data that follows the opcode bytes.
type Operand int

const (
	// None means the instruction is all opcode.
	None Operand = iota
	// Byte is an 8-bit immediate, port or index displacement.
	Byte
	// Word is a little-endian 16-bit address or immediate.
	Word
	// Relative is a signed 8-bit displacement from the next instruction.
	Relative
	// Displaced is an index displacement followed by an 8-bit immediate.
	Displaced
	// IndexedBit is a displacement followed by a CB sub-opcode (DD CB d op).
	IndexedBit
)

// Size returns the number of operand bytes for the kind.
func (o Operand) Size() int {
	switch o {
	case Byte, Relative:
		return 1
	case Word, Displaced, IndexedBit:
		return 2
	}
	return 0
}

func (o Operand) String() string {
	switch o {
	case None:
		return "none"
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Relative:
		return "relative"
	case Displaced:
		return "displaced"
	case IndexedBit:
		return "indexed-bit"
	}
	return "unknown"
}

// Entry describes one opcode.
type Entry struct {
	// Before is the mnemonic text ahead of the operand, or the whole
	// mnemonic when there is no operand.
	Before string
	// After is the mnemonic text following the operand.
	After string
	// Length is the full instruction length, prefix included.
	Length int
	// Operand is the kind of data following the opcode bytes.
	Operand Operand
}

// HasAddress reports whether the operand refers to a memory location that
// belongs in the symbol table.
func (e Entry) HasAddress() bool {
	return e.Operand == Word || e.Operand == Relative
}

// IsRelative reports whether the operand is a PC-relative displacement.
func (e Entry) IsRelative() bool {
	return e.Operand == Relative
}

// Render returns the mnemonic with operand text placed in the slot.
func (e Entry) Render(operand string) string {
	if e.Operand == None {
		return e.Before
	}
	return e.Before + operand + e.After
}

// Table maps an opcode byte to its entry. A missing byte has no entry.
type Table map[byte]Entry

// Lookup returns the entry for b.
func (t Table) Lookup(b byte) (Entry, bool) {
	e, ok := t[b]
	return e, ok
}

// Set is the complete group of tables the decoder dispatches on.
type Set struct {
	tables [numFamilies]Table
}

// NewSet builds a set from the five tables. Nil tables are treated as empty.
func NewSet(primary, cb, dd, ed, fd Table) *Set {
	s := &Set{}
	s.tables[Primary] = primary
	s.tables[ExtendedCB] = cb
	s.tables[ExtendedDD] = dd
	s.tables[ExtendedED] = ed
	s.tables[ExtendedFD] = fd
	for i := range s.tables {
		if s.tables[i] == nil {
			s.tables[i] = Table{}
		}
	}
	return s
}

// Table returns the table for a family.
func (s *Set) Table(f Family) Table {
	if f < 0 || f >= numFamilies {
		return nil
	}
	return s.tables[f]
}

// Lookup finds b in the table for family f.
func (s *Set) Lookup(f Family, b byte) (Entry, bool) {
	return s.Table(f).Lookup(b)
}

var z80 = NewSet(primaryTable(), cbTable(), indexTable("IX"), edTable(), indexTable("IY"))

// Z80 returns the built-in Zilog Z80 table set. The set is shared and must
// not be modified.
func Z80() *Set {
	return z80
}

// Constructors used by the table files. The length follows from the family
// and the operand kind so a table row cannot disagree with itself.

func op(f Family, text string) Entry {
	return Entry{Before: text, Length: f.OpcodeBytes()}
}

func with(f Family, kind Operand, before, after string) Entry {
	return Entry{Before: before, After: after, Length: f.OpcodeBytes() + kind.Size(), Operand: kind}
}
