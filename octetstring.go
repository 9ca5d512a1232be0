package asn1

/*
octetstring.go implements OCTET STRING (tag 4): like BIT STRING but
without padding bits. segment.go carries the fragment-walking logic
shared by this and every restricted string type under CER
segmentation.
*/

// OctetString decodes the receiver's value as an OCTET STRING.
func (e *Element) OctetString() ([]byte, error) {
	if e.tag != TagOctetString {
		return nil, newErr(KindTagNumber, "OCTET STRING: unexpected tag ", itoa(e.tag))
	}
	return decodeSegmented(e, "OCTET STRING")
}

// SetOctetString encodes data as an OCTET STRING, applying CER
// segmentation automatically when data exceeds 1000 octets.
func (e *Element) SetOctetString(data []byte) {
	e.setSegmented(ClassUniversal, TagOctetString, data)
}
