package opcode

import "fmt"

var rotOps = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

// cbTable builds the CB xx table. It is fully populated.
func cbTable() Table {
	t := make(Table, 256)
	for i := 0; i < 256; i++ {
		b := byte(i)
		n := (b >> 3) & 7
		r := reg8[b&7]
		switch b >> 6 {
		case 0:
			t[b] = op(ExtendedCB, rotOps[n]+" "+r)
		case 1:
			t[b] = op(ExtendedCB, fmt.Sprintf("BIT %d,%s", n, r))
		case 2:
			t[b] = op(ExtendedCB, fmt.Sprintf("RES %d,%s", n, r))
		case 3:
			t[b] = op(ExtendedCB, fmt.Sprintf("SET %d,%s", n, r))
		}
	}
	return t
}
