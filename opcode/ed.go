package opcode

// edTable builds the ED xx table. Only the documented opcodes are present;
// the rest of the ED page has no entry.
func edTable() Table {
	t := Table{
		0x44: op(ExtendedED, "NEG"),
		0x45: op(ExtendedED, "RETN"),
		0x46: op(ExtendedED, "IM 0"),
		0x47: op(ExtendedED, "LD I,A"),
		0x4D: op(ExtendedED, "RETI"),
		0x4F: op(ExtendedED, "LD R,A"),
		0x56: op(ExtendedED, "IM 1"),
		0x57: op(ExtendedED, "LD A,I"),
		0x5E: op(ExtendedED, "IM 2"),
		0x5F: op(ExtendedED, "LD A,R"),
		0x67: op(ExtendedED, "RRD"),
		0x6F: op(ExtendedED, "RLD"),

		0xA0: op(ExtendedED, "LDI"),
		0xA1: op(ExtendedED, "CPI"),
		0xA2: op(ExtendedED, "INI"),
		0xA3: op(ExtendedED, "OUTI"),
		0xA8: op(ExtendedED, "LDD"),
		0xA9: op(ExtendedED, "CPD"),
		0xAA: op(ExtendedED, "IND"),
		0xAB: op(ExtendedED, "OUTD"),
		0xB0: op(ExtendedED, "LDIR"),
		0xB1: op(ExtendedED, "CPIR"),
		0xB2: op(ExtendedED, "INIR"),
		0xB3: op(ExtendedED, "OTIR"),
		0xB8: op(ExtendedED, "LDDR"),
		0xB9: op(ExtendedED, "CPDR"),
		0xBA: op(ExtendedED, "INDR"),
		0xBB: op(ExtendedED, "OTDR"),
	}

	for i, r := range reg8 {
		base := byte(0x40 | i<<3)
		switch r {
		case "(HL)":
			// ED 70 only sets flags, ED 71 writes zero.
			t[base] = op(ExtendedED, "IN F,(C)")
			t[base|0x01] = op(ExtendedED, "OUT (C),0")
		default:
			t[base] = op(ExtendedED, "IN "+r+",(C)")
			t[base|0x01] = op(ExtendedED, "OUT (C),"+r)
		}
	}

	for i, rr := range reg16 {
		base := byte(0x40 | i<<4)
		t[base|0x02] = op(ExtendedED, "SBC HL,"+rr)
		t[base|0x03] = with(ExtendedED, Word, "LD (", "),"+rr)
		t[base|0x0A] = op(ExtendedED, "ADC HL,"+rr)
		t[base|0x0B] = with(ExtendedED, Word, "LD "+rr+",(", ")")
	}

	return t
}
