package asn1

/*
tag.go implements identifier-octet (tag) encoding and decoding,
shared verbatim by all three encoding rules: the class/construction
bits and low-tag-number live in the first octet; tag numbers >= 31
continue in base-128, big-endian, high-bit-terminated octets.
*/

// encodeTag appends the identifier octets for (class, construction,
// tag) to dst and returns the result.
func encodeTag(dst []byte, class Class, construction Construction, tag int) []byte {
	var id byte = byte(class) << 6
	if construction == Constructed {
		id |= 0x20
	}
	if tag < 31 {
		id |= byte(tag)
		return append(dst, id)
	}
	id |= 0x1F
	dst = append(dst, id)
	return append(dst, encodeBase128(tag)...)
}

// encodeBase128 encodes n as base-128, MSB-first, continuation bit
// set on every octet but the last. Used for both long-form tag
// numbers and OID/RELATIVE-OID node encoding.
func encodeBase128(n int) []byte {
	if n == 0 {
		return []byte{0x00}
	}
	var tmp []byte
	for n > 0 {
		tmp = append(tmp, byte(n&0x7f))
		n >>= 7
	}
	out := make([]byte, len(tmp))
	for i, b := range tmp {
		o := len(tmp) - 1 - i
		if o != len(tmp)-1 {
			b |= 0x80
		}
		out[o] = b
	}
	return out
}

// decodeTag parses the identifier octets at the start of src,
// returning class, construction, tag number and the octet count
// consumed.
func decodeTag(src []byte) (class Class, construction Construction, tag int, n int, err error) {
	if len(src) == 0 {
		err = errTruncatedTag
		return
	}
	b := src[0]
	class = Class((b >> 6) & 0x03)
	if b&0x20 != 0 {
		construction = Constructed
	}
	low := int(b & 0x1f)
	if low < 31 {
		tag = low
		n = 1
		return
	}

	if len(src) < 2 {
		err = errTruncatedTag
		return
	}
	if src[1] == 0x80 {
		err = errTagPadding
		return
	}

	n = 1
	for {
		if n >= len(src) {
			err = errTruncatedTag
			return
		}
		c := src[n]
		n++
		if tag > (1<<24)-1 { // guard against overflow before next shift
			err = errTagOverflow
			return
		}
		tag = (tag << 7) | int(c&0x7f)
		if c&0x80 == 0 {
			break
		}
	}
	return
}
