package asn1

/*
oid.go implements OBJECT IDENTIFIER (tag 6) and RELATIVE-OID (tag 13):
both pack node numbers in base-128, MSB-first, continuation-bit
terminated groups, via decodeBase128Nodes/encodeBase128Nodes; the
latter builds on encodeBase128 in tag.go, which also encodes long-form
tag numbers. OBJECT IDENTIFIER
additionally packs its first two nodes into a single octet.
*/

// OIDNode is a single arc of an ObjectIdentifier: a non-negative
// number plus an optional human-readable descriptor (restricted to
// 0x20..0x7E, matching ObjectDescriptor's character set).
type OIDNode struct {
	Number     int
	Descriptor string
}

// ObjectIdentifier is an ordered sequence of OIDNode arcs, length >= 2.
type ObjectIdentifier struct {
	Nodes []OIDNode
}

// NewObjectIdentifier validates and builds an ObjectIdentifier from
// bare arc numbers.
func NewObjectIdentifier(nums ...int) (ObjectIdentifier, error) {
	if len(nums) < 2 {
		return ObjectIdentifier{}, newErr(KindValueSize, "OBJECT IDENTIFIER requires at least two nodes")
	}
	if nums[0] < 0 || nums[0] > 2 {
		return ObjectIdentifier{}, newErr(KindValue, "OBJECT IDENTIFIER: first node must be 0, 1 or 2")
	}
	if nums[0] < 2 && nums[1] > 39 {
		return ObjectIdentifier{}, newErr(KindValue, "OBJECT IDENTIFIER: second node must be <= 39 when first node is 0 or 1")
	}
	if nums[0] == 2 && nums[1] > 175 {
		return ObjectIdentifier{}, newErr(KindValue, "OBJECT IDENTIFIER: second node must be <= 175 when first node is 2")
	}
	nodes := make([]OIDNode, len(nums))
	for i, n := range nums {
		if n < 0 {
			return ObjectIdentifier{}, newErr(KindValue, "OBJECT IDENTIFIER: node may not be negative")
		}
		nodes[i] = OIDNode{Number: n}
	}
	return ObjectIdentifier{Nodes: nodes}, nil
}

// Dotted returns the familiar dotted-decimal string form, e.g. "1.3.6.4.1".
func (o ObjectIdentifier) Dotted() string {
	s := ""
	for i, n := range o.Nodes {
		if i > 0 {
			s += "."
		}
		s += itoa(n.Number)
	}
	return s
}

// decodeBase128Nodes decodes a run of concatenated base-128 node
// encodings, rejecting any node whose encoding begins with a
// redundant leading 0x80 octet (ValuePaddingError).
func decodeBase128Nodes(data []byte) ([]int, error) {
	var nodes []int
	i := 0
	for i < len(data) {
		if data[i] == 0x80 {
			return nil, newErr(KindValuePadding, "non-minimal base-128 node encoding")
		}
		n := 0
		for {
			if i >= len(data) {
				return nil, errTruncatedValue
			}
			b := data[i]
			i++
			n = (n << 7) | int(b&0x7f)
			if b&0x80 == 0 {
				break
			}
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func encodeBase128Nodes(nums []int) []byte {
	var out []byte
	for _, n := range nums {
		out = append(out, encodeBase128(n)...)
	}
	return out
}

// ObjectIdentifier decodes the receiver's value as an OBJECT
// IDENTIFIER.
func (e *Element) ObjectIdentifier() (ObjectIdentifier, error) {
	if e.tag != TagOID {
		return ObjectIdentifier{}, newErr(KindTagNumber, "OBJECT IDENTIFIER: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Primitive {
		return ObjectIdentifier{}, newErr(KindConstruction, "OBJECT IDENTIFIER must be primitive")
	}
	if len(e.value) == 0 {
		return ObjectIdentifier{}, newErr(KindValueSize, "OBJECT IDENTIFIER value may not be empty")
	}
	first := int(e.value[0])
	var node0, node1 int
	if first < 80 {
		node0, node1 = first/40, first%40
	} else {
		node0, node1 = 2, first-80
	}
	rest, err := decodeBase128Nodes(e.value[1:])
	if err != nil {
		return ObjectIdentifier{}, err
	}
	nums := append([]int{node0, node1}, rest...)
	nodes := make([]OIDNode, len(nums))
	for i, n := range nums {
		nodes[i] = OIDNode{Number: n}
	}
	return ObjectIdentifier{Nodes: nodes}, nil
}

// SetObjectIdentifier encodes oid as an OBJECT IDENTIFIER.
func (e *Element) SetObjectIdentifier(oid ObjectIdentifier) error {
	nums := make([]int, len(oid.Nodes))
	for i, n := range oid.Nodes {
		nums[i] = n.Number
	}
	if _, err := NewObjectIdentifier(nums...); err != nil {
		return err
	}
	first := 40*nums[0] + nums[1]
	value := append([]byte{byte(first)}, encodeBase128Nodes(nums[2:])...)
	e.setRaw(ClassUniversal, Primitive, TagOID, value)
	return nil
}

// RelativeOID decodes the receiver's value as a RELATIVE-OID: a
// (possibly empty) sequence of base-128 node numbers.
func (e *Element) RelativeOID() ([]int, error) {
	if e.tag != TagRelativeOID {
		return nil, newErr(KindTagNumber, "RELATIVE-OID: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Primitive {
		return nil, newErr(KindConstruction, "RELATIVE-OID must be primitive")
	}
	return decodeBase128Nodes(e.value)
}

// SetRelativeOID encodes nums as a RELATIVE-OID.
func (e *Element) SetRelativeOID(nums []int) error {
	for _, n := range nums {
		if n < 0 {
			return newErr(KindValue, "RELATIVE-OID: node may not be negative")
		}
	}
	e.setRaw(ClassUniversal, Primitive, TagRelativeOID, encodeBase128Nodes(nums))
	return nil
}
