package asn1

/*
boolean.go implements the BOOLEAN universal type (tag 1, primitive,
1 content octet). BER accepts any non-zero octet as TRUE; CER/DER
require exactly 0xFF for TRUE and 0x00 for FALSE.
*/

// Boolean decodes the receiver's value octets as a BOOLEAN.
func (e *Element) Boolean() (bool, error) {
	if e.construction != Primitive {
		return false, newErr(KindConstruction, "BOOLEAN must be primitive")
	}
	if len(e.value) != 1 {
		return false, newErr(KindValueSize, "BOOLEAN value must be exactly one octet")
	}
	b := e.value[0]
	switch e.rule {
	case BER:
		return b != 0x00, nil
	default: // CER, DER
		switch b {
		case 0x00:
			return false, nil
		case 0xFF:
			return true, nil
		default:
			return false, newErr(KindValue, "BOOLEAN: canonical encoding requires 0x00 or 0xFF, got ", itoa(int(b)))
		}
	}
}

// SetBoolean encodes v as a BOOLEAN, replacing the receiver's tag and
// value. Every rule uses 0xFF for TRUE and 0x00 for FALSE on encode;
// only BER's decoder is permissive about what it accepts.
func (e *Element) SetBoolean(v bool) {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	e.setRaw(ClassUniversal, Primitive, TagBoolean, []byte{b})
}
