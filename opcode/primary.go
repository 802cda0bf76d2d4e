package opcode

import "fmt"

var (
	reg8   = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	reg16  = [4]string{"BC", "DE", "HL", "SP"}
	stack  = [4]string{"BC", "DE", "HL", "AF"}
	conds  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	aluOps = [8]string{"ADD A,", "ADC A,", "SUB A,", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
)

// primaryTable builds the unprefixed opcode table. CB, DD, ED and FD are
// left out; they select the extended tables.
func primaryTable() Table {
	t := Table{
		0x00: op(Primary, "NOP"),
		0x02: op(Primary, "LD (BC),A"),
		0x07: op(Primary, "RLCA"),
		0x08: op(Primary, "EX AF,AF'"),
		0x0A: op(Primary, "LD A,(BC)"),
		0x0F: op(Primary, "RRCA"),
		0x10: with(Primary, Relative, "DJNZ ", ""),
		0x12: op(Primary, "LD (DE),A"),
		0x17: op(Primary, "RLA"),
		0x18: with(Primary, Relative, "JR ", ""),
		0x1A: op(Primary, "LD A,(DE)"),
		0x1F: op(Primary, "RRA"),
		0x22: with(Primary, Word, "LD (", "),HL"),
		0x27: op(Primary, "DAA"),
		0x2A: with(Primary, Word, "LD HL,(", ")"),
		0x2F: op(Primary, "CPL"),
		0x32: with(Primary, Word, "LD (", "),A"),
		0x37: op(Primary, "SCF"),
		0x3A: with(Primary, Word, "LD A,(", ")"),
		0x3F: op(Primary, "CCF"),
		0x76: op(Primary, "HALT"),
		0xC3: with(Primary, Word, "JP ", ""),
		0xC9: op(Primary, "RET"),
		0xCD: with(Primary, Word, "CALL ", ""),
		0xD3: with(Primary, Byte, "OUT (", "),A"),
		0xD9: op(Primary, "EXX"),
		0xDB: with(Primary, Byte, "IN A,(", ")"),
		0xE3: op(Primary, "EX (SP),HL"),
		0xE9: op(Primary, "JP (HL)"),
		0xEB: op(Primary, "EX DE,HL"),
		0xF3: op(Primary, "DI"),
		0xF9: op(Primary, "LD SP,HL"),
		0xFB: op(Primary, "EI"),
	}

	// JR cc only exists for the first four conditions.
	for i := 0; i < 4; i++ {
		t[byte(0x20+i<<3)] = with(Primary, Relative, "JR "+conds[i]+",", "")
	}

	for i, rr := range reg16 {
		base := byte(i << 4)
		t[base|0x01] = with(Primary, Word, "LD "+rr+",", "")
		t[base|0x03] = op(Primary, "INC "+rr)
		t[base|0x09] = op(Primary, "ADD HL,"+rr)
		t[base|0x0B] = op(Primary, "DEC "+rr)
	}

	for i, r := range reg8 {
		base := byte(i << 3)
		t[base|0x04] = op(Primary, "INC "+r)
		t[base|0x05] = op(Primary, "DEC "+r)
		t[base|0x06] = with(Primary, Byte, "LD "+r+",", "")
	}

	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			b := byte(0x40 | dst<<3 | src)
			if b == 0x76 {
				continue
			}
			t[b] = op(Primary, "LD "+reg8[dst]+","+reg8[src])
		}
	}

	for i, alu := range aluOps {
		for src, r := range reg8 {
			t[byte(0x80|i<<3|src)] = op(Primary, alu+r)
		}
		t[byte(0xC6|i<<3)] = with(Primary, Byte, alu, "")
	}

	for i, cc := range conds {
		base := byte(0xC0 | i<<3)
		t[base] = op(Primary, "RET "+cc)
		t[base|0x02] = with(Primary, Word, "JP "+cc+",", "")
		t[base|0x04] = with(Primary, Word, "CALL "+cc+",", "")
		t[base|0x07] = op(Primary, fmt.Sprintf("RST %02X", i<<3))
	}

	for i, qq := range stack {
		base := byte(0xC0 | i<<4)
		t[base|0x01] = op(Primary, "POP "+qq)
		t[base|0x05] = op(Primary, "PUSH "+qq)
	}

	return t
}
