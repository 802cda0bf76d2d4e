package disassembler

import (
	"fmt"
	"strings"
)

// byteColumn is the display width of the raw byte field in a listing line.
const byteColumn = 12

// hexBytes formats bytes as space-separated two-digit uppercase hex.
func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

// padColumn pads s with spaces to width, or cuts it down to width.
func padColumn(s string, width int) string {
	return fmt.Sprintf("%-*.*s", width, width, s)
}

// formatAddress returns the canonical four-digit form of a 16-bit address.
func formatAddress(addr uint16) string {
	return fmt.Sprintf("%04X", addr)
}

// labelName generates the label for an address string.
func labelName(address string) string {
	return "SYM_" + address
}

// signExtend interprets b as a two's complement displacement.
func signExtend(b byte) int {
	return int(int8(b))
}
