package asn1

/*
length.go implements the three length forms of X.690 §8.1.3: short
form, long form, and indefinite form, along with the canonical-form
checks that distinguish BER from CER/DER.
*/

// encodeLength appends the length octets for n to dst, following the
// canonical-form rules of rule. A negative n requests the indefinite
// form (single 0x80 octet); callers must only pass a negative n when
// rule.allowsIndefinite().
func encodeLength(dst []byte, rule Rule, n int) []byte {
	if n < 0 {
		return append(dst, 0x80)
	}
	if n < 0x80 {
		return append(dst, byte(n))
	}
	var tmp []byte
	v := n
	for v > 0 {
		tmp = append([]byte{byte(v & 0xff)}, tmp...)
		v >>= 8
	}
	dst = append(dst, 0x80|byte(len(tmp)))
	return append(dst, tmp...)
}

// decodeLength parses the length octets at the start of src under the
// given rule, returning the decoded length (or -1 for indefinite) and
// the number of octets consumed.
func decodeLength(src []byte, rule Rule) (length int, n int, err error) {
	if len(src) == 0 {
		err = errTruncatedLength
		return
	}
	b0 := src[0]
	if b0 < 0x80 {
		return int(b0), 1, nil
	}
	if b0 == 0x80 {
		if !rule.allowsIndefinite() {
			err = errIndefiniteDER
			return
		}
		return -1, 1, nil
	}
	if b0 == 0xFF {
		err = errLengthUndefined
		return
	}

	count := int(b0 & 0x7f)
	if len(src) < 1+count {
		err = errTruncatedLength
		return
	}
	if count > 4 {
		err = errLengthOverflow
		return
	}
	raw := src[1 : 1+count]
	if rule != BER {
		if raw[0] == 0x00 {
			// leading zero octet: never minimal
			err = errLengthNonMinimal
			return
		}
	}
	v := 0
	for _, b := range raw {
		v = (v << 8) | int(b)
	}
	if rule != BER {
		if v < 0x80 {
			// could have been encoded in short form
			err = errLengthNonMinimal
			return
		}
	}
	return v, 1 + count, nil
}
