package opcode

import (
	"errors"
	"fmt"
)

// Validate checks every entry of the set: lengths must fit the family,
// agree with the operand kind, and the primary table must leave the four
// prefix bytes free.
func (s *Set) Validate() error {
	var errs []error
	for f := Primary; f < numFamilies; f++ {
		for b, e := range s.tables[f] {
			if err := validateEntry(f, e); err != nil {
				errs = append(errs, fmt.Errorf("%s %02X: %w", f, b, err))
			}
		}
	}

	for _, p := range []byte{PrefixCB, PrefixDD, PrefixED, PrefixFD} {
		if _, ok := s.tables[Primary][p]; ok {
			errs = append(errs, fmt.Errorf("primary %02X: prefix byte has an entry", p))
		}
	}

	return errors.Join(errs...)
}

func validateEntry(f Family, e Entry) error {
	shortest, longest := 1, 3
	if f != Primary {
		shortest, longest = 2, 4
	}
	if e.Length < shortest || e.Length > longest {
		return fmt.Errorf("length %d outside %d..%d", e.Length, shortest, longest)
	}
	if want := f.OpcodeBytes() + e.Operand.Size(); e.Length != want {
		return fmt.Errorf("length %d does not match %s operand (want %d)", e.Length, e.Operand, want)
	}
	if e.Before == "" {
		return errors.New("empty mnemonic")
	}
	if e.Operand == None && e.After != "" {
		return errors.New("text after a missing operand")
	}
	if e.Operand == IndexedBit && f != ExtendedDD && f != ExtendedFD {
		return errors.New("indexed bit operand outside an index table")
	}
	return nil
}
