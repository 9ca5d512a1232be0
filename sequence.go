package asn1

/*
sequence.go implements SEQUENCE (tag 16) and SET (tag 17): constructed
containers whose value is the concatenation of child element
encodings. Decoding a container's children is bounded by the "value
recursion" counter described in spec.md §4.1 (decodeChildren in
element.go); unlike indefinite-length EOC scanning, this recursion
happens once per nesting level regardless of definite/indefinite form.
*/

import "sort"

// Encodable is satisfied by BERElement, CERElement and DERElement (and
// *Element itself): anything that can serialize itself to wire bytes.
type Encodable interface {
	Bytes() []byte
}

// Sequence decodes the receiver's children, returning them as raw
// Elements for the caller to further interpret.
func (e *Element) Sequence() ([]Element, error) {
	if e.tag != TagSequence {
		return nil, newErr(KindTagNumber, "SEQUENCE: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Constructed {
		return nil, newErr(KindConstruction, "SEQUENCE must be constructed")
	}
	return decodeChildren(e.value, e.rule, 0)
}

// SetSequence encodes children, in order, as a SEQUENCE.
func (e *Element) SetSequence(children ...Encodable) {
	var value []byte
	for _, c := range children {
		value = append(value, c.Bytes()...)
	}
	e.setRaw(ClassUniversal, Constructed, TagSequence, value)
}

// Set decodes the receiver's children as a SET.
func (e *Element) Set() ([]Element, error) {
	if e.tag != TagSet {
		return nil, newErr(KindTagNumber, "SET: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Constructed {
		return nil, newErr(KindConstruction, "SET must be constructed")
	}
	return decodeChildren(e.value, e.rule, 0)
}

// SetSet encodes children as a SET. Under DER, X.690 additionally
// requires SET OF elements to appear in ascending order of their own
// encoded octets; this is applied automatically here since it is the
// one DER SET invariant that affects the on-wire bytes (and is not
// contradicted by anything CER or BER require).
func (e *Element) SetSet(children ...Encodable) {
	encoded := make([][]byte, len(children))
	for i, c := range children {
		encoded[i] = c.Bytes()
	}
	if e.rule == DER {
		sort.Slice(encoded, func(i, j int) bool {
			return lessBytes(encoded[i], encoded[j])
		})
	}
	var value []byte
	for _, b := range encoded {
		value = append(value, b...)
	}
	e.setRaw(ClassUniversal, Constructed, TagSet, value)
}

func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
