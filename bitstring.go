package asn1

/*
bitstring.go implements BIT STRING (tag 3). The primitive wire form is
an unused-bit-count octet (0..7) followed by the bit data, MSB-first;
CER additionally requires constructed segmentation once the value
would exceed 1000 octets. decodeSegmentedBitString below mirrors
decodeSegmented in segment.go (the fragment walk shared by OCTET STRING
and the string types), adding the per-fragment unused-bit octet.
*/

// BitString is the native value of the BIT STRING universal type:
// whole bytes of bit data plus a count of trailing padding bits in
// the final byte (0 if Bytes is empty).
type BitString struct {
	Bytes      []byte
	UnusedBits int
}

func checkBitStringPadding(data []byte, unused int) error {
	if unused == 0 || len(data) == 0 {
		return nil
	}
	mask := byte(0xFF) >> uint(8-unused)
	if data[len(data)-1]&mask != 0 {
		return newErr(KindValue, "BIT STRING: padding bits must be zero")
	}
	return nil
}

func decodePrimitiveBitString(value []byte, rule Rule) (BitString, error) {
	if len(value) == 0 {
		return BitString{}, newErr(KindValueSize, "BIT STRING value may not be empty")
	}
	unused := int(value[0])
	if unused < 0 || unused > 7 {
		return BitString{}, newErr(KindValue, "BIT STRING: unused-bit count out of range")
	}
	data := value[1:]
	if len(data) == 0 && unused != 0 {
		return BitString{}, newErr(KindValue, "BIT STRING: unused-bit count must be 0 when no data octets follow")
	}
	if rule != BER {
		if err := checkBitStringPadding(data, unused); err != nil {
			return BitString{}, err
		}
	}
	return BitString{Bytes: append([]byte(nil), data...), UnusedBits: unused}, nil
}

func decodeSegmentedBitString(e *Element) (BitString, error) {
	children, err := decodeChildren(e.value, e.rule, 0)
	if err != nil {
		return BitString{}, err
	}
	if len(children) < 2 {
		return BitString{}, newErr(KindValue, "BIT STRING: constructed encoding requires at least two fragments")
	}
	var data []byte
	var finalUnused int
	for i := range children {
		c := children[i]
		if c.class != e.class || c.tag != e.tag {
			return BitString{}, newErr(KindTagNumber, "BIT STRING: fragment tag/class mismatch")
		}
		if c.construction != Primitive {
			return BitString{}, newErr(KindConstruction, "BIT STRING: fragment must be primitive")
		}
		if len(c.value) == 0 {
			return BitString{}, newErr(KindValueSize, "BIT STRING: empty fragment")
		}
		unused := int(c.value[0])
		frag := c.value[1:]
		last := i == len(children)-1
		if !last {
			if len(c.value) != segmentThreshold {
				return BitString{}, newErr(KindValueSize, "BIT STRING: non-final fragment must contain exactly 1000 content octets")
			}
			if unused != 0 {
				return BitString{}, newErr(KindValue, "BIT STRING: only the final fragment may carry unused bits")
			}
		} else {
			if len(c.value) < 1 || len(c.value) > segmentThreshold {
				return BitString{}, newErr(KindValueSize, "BIT STRING: final fragment content out of range")
			}
			finalUnused = unused
		}
		data = append(data, frag...)
	}
	if err := checkBitStringPadding(data, finalUnused); err != nil {
		return BitString{}, err
	}
	return BitString{Bytes: data, UnusedBits: finalUnused}, nil
}

// BitString decodes the receiver's value as a BIT STRING.
func (e *Element) BitString() (BitString, error) {
	if e.tag != TagBitString {
		return BitString{}, newErr(KindTagNumber, "BIT STRING: unexpected tag ", itoa(e.tag))
	}
	switch e.construction {
	case Primitive:
		return decodePrimitiveBitString(e.value, e.rule)
	default:
		if e.rule == DER {
			return BitString{}, newErr(KindConstruction, "DER forbids constructed BIT STRING")
		}
		return decodeSegmentedBitString(e)
	}
}

// SetBitString encodes bs as a BIT STRING. Under CER, values whose
// encoded length would exceed 1000 octets are automatically segmented
// into a constructed sequence of 1000-octet fragments, wrapped in the
// indefinite length form as X.690 requires.
func (e *Element) SetBitString(bs BitString) error {
	if bs.UnusedBits < 0 || bs.UnusedBits > 7 {
		return newErr(KindValue, "BIT STRING: unused-bit count out of range")
	}
	if len(bs.Bytes) == 0 && bs.UnusedBits != 0 {
		return newErr(KindValue, "BIT STRING: unused-bit count must be 0 with no data octets")
	}
	if e.rule != BER {
		if err := checkBitStringPadding(bs.Bytes, bs.UnusedBits); err != nil {
			return err
		}
	}

	if e.rule == CER && 1+len(bs.Bytes) > segmentThreshold {
		return e.setSegmentedBitString(bs)
	}
	value := append([]byte{byte(bs.UnusedBits)}, bs.Bytes...)
	e.setRaw(ClassUniversal, Primitive, TagBitString, value)
	e.indefinite = false
	return nil
}

func (e *Element) setSegmentedBitString(bs BitString) error {
	const chunkData = segmentThreshold - 1 // leaves room for the unused-bit octet
	var out []byte
	for off := 0; off < len(bs.Bytes); off += chunkData {
		end := off + chunkData
		last := end >= len(bs.Bytes)
		if last {
			end = len(bs.Bytes)
		}
		unused := 0
		if last {
			unused = bs.UnusedBits
		}
		frag := Element{rule: CER, class: ClassUniversal, construction: Primitive, tag: TagBitString}
		frag.value = append([]byte{byte(unused)}, bs.Bytes[off:end]...)
		out = append(out, frag.Bytes()...)
	}
	e.setRaw(ClassUniversal, Constructed, TagBitString, out)
	e.indefinite = true
	return nil
}
