package asn1

/*
enumerated.go implements ENUMERATED (tag 10): identical wire encoding
and canonical-form rules to INTEGER (integer.go), just under a different
tag number.
*/

import "math/big"

// Enumerated decodes the receiver's value octets as an ENUMERATED.
func (e *Element) Enumerated() (int, error) {
	v, err := e.integerValue(TagEnum, "ENUMERATED")
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newErr(KindValueOverflow, "ENUMERATED: value does not fit in a 64-bit signed int")
	}
	return int(v.Int64()), nil
}

// SetEnumerated encodes v as an ENUMERATED.
func (e *Element) SetEnumerated(v int) { e.setIntegerValue(TagEnum, big.NewInt(int64(v))) }
