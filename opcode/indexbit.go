package opcode

import "fmt"

// IndexedBitMnemonic renders DD CB d op / FD CB d op. e is the IndexedBit
// entry of the DD or FD table, disp the displacement byte and sub the CB
// sub-opcode. Rotates, RES and SET with a register field other than (HL)
// also copy the result into that register, which is shown as a trailing
// operand.
func IndexedBitMnemonic(e Entry, disp, sub byte) string {
	mem := e.Render(fmt.Sprintf("%02X", disp))
	n := (sub >> 3) & 7

	var text string
	switch sub >> 6 {
	case 0:
		text = rotOps[n] + " " + mem
	case 1:
		return fmt.Sprintf("BIT %d,%s", n, mem)
	case 2:
		text = fmt.Sprintf("RES %d,%s", n, mem)
	default:
		text = fmt.Sprintf("SET %d,%s", n, mem)
	}

	if r := sub & 7; r != 6 {
		text += "," + reg8[r]
	}
	return text
}
