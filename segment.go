package asn1

/*
segment.go implements the CER constructed-substring mechanism shared
by OCTET STRING and every restricted character-string type (spec.md
§4.3): once a value would exceed 1000 content octets, CER requires it
be re-expressed as a constructed sequence of primitive fragments of
exactly 1000 octets, except the last (1..1000 octets), wrapped in
indefinite length.
*/

// decodeSegmented reassembles a (possibly CER-fragmented) octet
// payload from e, validating fragment shape along the way. typeName
// is used only for error messages.
func decodeSegmented(e *Element, typeName string) ([]byte, error) {
	switch e.construction {
	case Primitive:
		if e.rule == CER && len(e.value) > segmentThreshold {
			return nil, newErr(KindValueSize, typeName, ": primitive encoding exceeds 1000 octets under CER")
		}
		return append([]byte(nil), e.value...), nil
	default:
		if e.rule == DER {
			return nil, newErr(KindConstruction, typeName, ": DER forbids constructed encoding")
		}
		children, err := decodeChildren(e.value, e.rule, 0)
		if err != nil {
			return nil, err
		}
		if len(children) < 2 {
			return nil, newErr(KindValue, typeName, ": constructed encoding requires at least two fragments")
		}
		var out []byte
		for i := range children {
			c := children[i]
			if c.class != e.class || c.tag != e.tag {
				return nil, newErr(KindTagNumber, typeName, ": fragment tag/class mismatch")
			}
			if c.construction != Primitive {
				return nil, newErr(KindConstruction, typeName, ": fragment must be primitive")
			}
			last := i == len(children)-1
			switch {
			case !last && len(c.value) != segmentThreshold:
				return nil, newErr(KindValueSize, typeName, ": non-final fragment must contain exactly 1000 content octets")
			case last && (len(c.value) < 1 || len(c.value) > segmentThreshold):
				return nil, newErr(KindValueSize, typeName, ": final fragment content out of range")
			}
			out = append(out, c.value...)
		}
		return out, nil
	}
}

// setSegmented encodes data under (class, tag), splitting it into
// 1000-octet CER fragments when the receiver's rule is CER and data
// exceeds the threshold.
func (e *Element) setSegmented(class Class, tag int, data []byte) {
	if e.rule == CER && len(data) > segmentThreshold {
		var out []byte
		for off := 0; off < len(data); off += segmentThreshold {
			end := off + segmentThreshold
			if end > len(data) {
				end = len(data)
			}
			frag := Element{rule: CER, class: class, construction: Primitive, tag: tag, value: append([]byte(nil), data[off:end]...)}
			out = append(out, frag.Bytes()...)
		}
		e.setRaw(class, Constructed, tag, out)
		e.indefinite = true
		return
	}
	e.setRaw(class, Primitive, tag, append([]byte(nil), data...))
	e.indefinite = false
}
