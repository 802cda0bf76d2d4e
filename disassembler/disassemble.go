package disassembler

import (
	"strings"
)

// Listing is the result of one complete disassembly pass.
type Listing struct {
	Instructions []Instruction
	Symbols      *SymbolTable
}

// Disassemble walks the image from offset zero to the end, one instruction
// after the other. Nothing is returned unless the whole image decodes.
func (d *Decoder) Disassemble(mem []byte) (*Listing, error) {
	syms := NewSymbolTable()
	var insts []Instruction
	for pc := 0; pc < len(mem); {
		inst, err := d.Decode(pc, mem, syms)
		if err != nil {
			d.log.Debug("disassembly aborted", "pc", pc, "error", err)
			return nil, err
		}
		insts = append(insts, inst)
		pc = inst.Next
	}

	d.log.Debug("disassembly complete",
		"bytes", len(mem),
		"instructions", len(insts),
		"symbols", syms.Len(),
	)
	return &Listing{Instructions: insts, Symbols: syms}, nil
}

// Disassemble takes a byte slice of Z80 machine code and returns it as a
// formatted listing followed by the symbol table.
func Disassemble(code []byte) (string, error) {
	l, err := New(nil).Disassemble(code)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

// Emit sends every instruction and then every symbol to s.
func (l *Listing) Emit(s Sink) error {
	for _, inst := range l.Instructions {
		if err := s.Instruction(inst); err != nil {
			return err
		}
	}
	for _, sym := range l.Symbols.Symbols() {
		if err := s.Symbol(sym.Label, sym.Address); err != nil {
			return err
		}
	}
	return nil
}

func (l *Listing) String() string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_, _ = l.WriteTo(&sb)
	return sb.String()
}
