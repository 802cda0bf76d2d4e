package opcode

// indexTable builds the DD (IX) or FD (IY) table. Both pages share one
// layout and differ only in the register name.
func indexTable(ix string) Table {
	f := ExtendedDD
	if ix == "IY" {
		f = ExtendedFD
	}
	hi, lo := ix+"H", ix+"L"
	mem := "(" + ix + "+"

	t := Table{
		0x21: with(f, Word, "LD "+ix+",", ""),
		0x22: with(f, Word, "LD (", "),"+ix),
		0x23: op(f, "INC "+ix),
		0x24: op(f, "INC "+hi),
		0x25: op(f, "DEC "+hi),
		0x26: with(f, Byte, "LD "+hi+",", ""),
		0x2A: with(f, Word, "LD "+ix+",(", ")"),
		0x2B: op(f, "DEC "+ix),
		0x2C: op(f, "INC "+lo),
		0x2D: op(f, "DEC "+lo),
		0x2E: with(f, Byte, "LD "+lo+",", ""),
		0x34: with(f, Byte, "INC "+mem, ")"),
		0x35: with(f, Byte, "DEC "+mem, ")"),
		0x36: with(f, Displaced, "LD "+mem, ")"),
		0xCB: with(f, IndexedBit, mem, ")"),
		0xE1: op(f, "POP "+ix),
		0xE3: op(f, "EX (SP),"+ix),
		0xE5: op(f, "PUSH "+ix),
		0xE9: op(f, "JP ("+ix+")"),
		0xF9: op(f, "LD SP,"+ix),
	}

	// ADD IX,rr with HL replaced by the index register.
	for i, rr := range reg16 {
		if rr == "HL" {
			rr = ix
		}
		t[byte(i<<4|0x09)] = op(f, "ADD "+ix+","+rr)
	}

	// Register names as seen through the prefix: H and L become the index
	// halves, (HL) becomes (IX+d).
	swapped := [8]string{"B", "C", "D", "E", hi, lo, "", "A"}

	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			b := byte(0x40 | dst<<3 | src)
			switch {
			case b == 0x76:
			case dst == 6:
				// LD (IX+d),r keeps the plain H and L.
				t[b] = with(f, Byte, "LD "+mem, "),"+reg8[src])
			case src == 6:
				t[b] = with(f, Byte, "LD "+reg8[dst]+","+mem, ")")
			case dst == 4 || dst == 5 || src == 4 || src == 5:
				t[b] = op(f, "LD "+swapped[dst]+","+swapped[src])
			}
		}
	}

	for i, alu := range aluOps {
		base := byte(0x80 | i<<3)
		t[base|0x04] = op(f, alu+hi)
		t[base|0x05] = op(f, alu+lo)
		t[base|0x06] = with(f, Byte, alu+mem, ")")
	}

	return t
}
