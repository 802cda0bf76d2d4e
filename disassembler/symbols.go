package disassembler

// Symbol is one entry of a symbol table.
type Symbol struct {
	Label   string
	Address string
}

// SymbolTable maps generated labels to the addresses they name. Entries keep
// the order in which they were first referenced.
type SymbolTable struct {
	entries map[string]string
	order   []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]string)}
}

// Add records label -> address. Adding a label again overwrites the address
// but keeps its original position.
func (t *SymbolTable) Add(label, address string) {
	if t.entries == nil {
		t.entries = make(map[string]string)
	}
	if _, ok := t.entries[label]; !ok {
		t.order = append(t.order, label)
	}
	t.entries[label] = address
}

// Lookup returns the address for label.
func (t *SymbolTable) Lookup(label string) (string, bool) {
	a, ok := t.entries[label]
	return a, ok
}

// Len returns the number of symbols.
func (t *SymbolTable) Len() int {
	return len(t.order)
}

// Symbols returns the entries in insertion order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, l := range t.order {
		out = append(out, Symbol{Label: l, Address: t.entries[l]})
	}
	return out
}
