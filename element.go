package asn1

/*
element.go implements the Element concept of the design: a decoded or
to-be-encoded TLV unit carrying (tag-class, construction, tag-number,
value-octets), plus the constructors and serializer shared by all
three concrete codecs. Per-universal-type accessors are implemented as
methods on *Element in the sibling per-type files (boolean.go,
integer.go, ...); BERElement,
CERElement and DERElement embed Element purely to give each encoding
rule its own named type per the constructor surface in spec.md §6,
while the validation and conversion logic lives once, keyed off
Element.rule.
*/

// Element is a single TLV unit. Construction=Constructed implies
// Value is the concatenation of child Element encodings; Primitive
// means Value is a type-specific payload.
type Element struct {
	rule         Rule
	class        Class
	construction Construction
	tag          int
	value        []byte
	indefinite   bool // set on decode when the source used the indefinite form, and by CER segmenting setters
}

// Rule returns the encoding rule this element was built or decoded
// under.
func (e *Element) Rule() Rule { return e.rule }

// Class returns the element's tag class.
func (e *Element) Class() Class { return e.class }

// Construction returns Primitive or Constructed.
func (e *Element) Construction() Construction { return e.construction }

// Tag returns the element's tag number.
func (e *Element) Tag() int { return e.tag }

// Value returns the element's raw content octets. The returned slice
// is a copy; mutating it does not affect the element.
func (e *Element) Value() []byte { return append([]byte(nil), e.value...) }

// setRaw replaces the element's four observable attributes directly.
// Used by typed setters once they have produced canonical value
// octets.
func (e *Element) setRaw(class Class, construction Construction, tag int, value []byte) {
	e.class = class
	e.construction = construction
	e.tag = tag
	e.value = value
}

// Bytes serializes the element as tag-octets + length-octets +
// value-octets. Definite length is used unless the receiver is marked
// indefinite -- either because it was decoded from an indefinite-length
// source, or because a CER typed setter segmented a string value over
// 1000 octets, which X.690 requires to be wrapped in indefinite form.
func (e *Element) Bytes() []byte {
	if e.indefinite && e.rule.allowsIndefinite() && e.construction == Constructed {
		out, err := e.EncodeIndefinite()
		if err == nil {
			return out
		}
	}
	out := encodeTag(nil, e.class, e.construction, e.tag)
	out = encodeLength(out, e.rule, len(e.value))
	return append(out, e.value...)
}

// EncodeIndefinite serializes a constructed element using the
// indefinite length form, terminated by an end-of-content marker.
// Returns an error if the receiver's rule forbids indefinite length
// or the element is not constructed.
func (e *Element) EncodeIndefinite() ([]byte, error) {
	if !e.rule.allowsIndefinite() {
		return nil, errIndefiniteDER
	}
	if e.construction != Constructed {
		return nil, newErr(KindConstruction, "EncodeIndefinite: element is not constructed")
	}
	out := encodeTag(nil, e.class, e.construction, e.tag)
	out = encodeLength(out, e.rule, -1)
	out = append(out, e.value...)
	return append(out, 0x00, 0x00), nil
}

// decodeElement parses a single element from src under rule, bounding
// indefinite-length EOC scanning by lenDepth (the "length recursion"
// counter of spec.md §4.1). It returns the decoded Element and the
// number of octets consumed, including any trailing end-of-content
// marker.
func decodeElement(src []byte, rule Rule, lenDepth int) (el Element, consumed int, err error) {
	class, construction, tag, tn, err := decodeTag(src)
	if err != nil {
		return
	}
	rest := src[tn:]
	length, ln, err := decodeLength(rest, rule)
	if err != nil {
		return
	}
	body := rest[ln:]

	if length >= 0 {
		if len(body) < length {
			err = errTruncatedValue
			return
		}
		value := append([]byte(nil), body[:length]...)
		el = Element{rule: rule, class: class, construction: construction, tag: tag, value: value}
		consumed = tn + ln + length
		return
	}

	// indefinite form
	if construction != Constructed {
		err = errIndefiniteBER
		return
	}
	if lenDepth >= recursionLimit {
		err = errRecursion
		return
	}

	var value []byte
	off := 0
	for {
		if off >= len(body) {
			err = errTruncatedValue
			return
		}
		if body[off] == 0x00 && off+1 < len(body) && body[off+1] == 0x00 {
			off += 2
			break
		}
		_, childN, cerr := decodeElement(body[off:], rule, lenDepth+1)
		if cerr != nil {
			err = cerr
			return
		}
		value = append(value, body[off:off+childN]...)
		off += childN
	}
	el = Element{rule: rule, class: class, construction: construction, tag: tag, value: value, indefinite: true}
	consumed = tn + ln + off
	return
}

// decodeChildren splits a constructed element's value octets into its
// immediate child elements, bounding nesting by valDepth (the "value
// recursion" counter of spec.md §4.1 -- kept independent of the
// length-walking counter in decodeElement).
func decodeChildren(value []byte, rule Rule, valDepth int) (children []Element, err error) {
	if valDepth >= recursionLimit {
		err = errRecursion
		return
	}
	off := 0
	for off < len(value) {
		var child Element
		var n int
		child, n, err = decodeElement(value[off:], rule, 0)
		if err != nil {
			return
		}
		children = append(children, child)
		off += n
	}
	return
}

// BERElement is an [Element] built or decoded under Basic Encoding
// Rules: the permissive regime. All three length forms are accepted
// on decode and indefinite length is supported for constructed types.
type BERElement struct{ Element }

// CERElement is an [Element] built or decoded under Canonical
// Encoding Rules: string types exceeding 1000 content octets must use
// constructed segmentation, and padding/canonical-form invariants are
// enforced on every typed accessor.
type CERElement struct{ Element }

// DERElement is an [Element] built or decoded under Distinguished
// Encoding Rules: definite length only, plus the same canonical-form
// invariants as CER.
type DERElement struct{ Element }

// NewBERElement constructs an empty BER element (defaults to
// UNIVERSAL/Primitive/tag 0, i.e. an END-OF-CONTENT marker) from the
// given tag class, construction and tag number.
func NewBERElement(class Class, construction Construction, tag int) *BERElement {
	return &BERElement{Element{rule: BER, class: class, construction: construction, tag: tag}}
}

// NewCERElement constructs an empty CER element.
func NewCERElement(class Class, construction Construction, tag int) *CERElement {
	return &CERElement{Element{rule: CER, class: class, construction: construction, tag: tag}}
}

// NewDERElement constructs an empty DER element.
func NewDERElement(class Class, construction Construction, tag int) *DERElement {
	return &DERElement{Element{rule: DER, class: class, construction: construction, tag: tag}}
}

// DecodeBERElement parses a single element from src under BER,
// returning the element and the number of octets consumed. Callers
// decoding a stream of multiple elements iterate, advancing by the
// returned count, until the input is exhausted (the cursor-passing
// protocol of spec.md §4.1).
func DecodeBERElement(src []byte) (*BERElement, int, error) {
	el, n, err := decodeElement(src, BER, 0)
	if err != nil {
		return nil, 0, err
	}
	return &BERElement{el}, n, nil
}

// DecodeCERElement parses a single element from src under CER.
func DecodeCERElement(src []byte) (*CERElement, int, error) {
	el, n, err := decodeElement(src, CER, 0)
	if err != nil {
		return nil, 0, err
	}
	return &CERElement{el}, n, nil
}

// DecodeDERElement parses a single element from src under DER.
func DecodeDERElement(src []byte) (*DERElement, int, error) {
	el, n, err := decodeElement(src, DER, 0)
	if err != nil {
		return nil, 0, err
	}
	return &DERElement{el}, n, nil
}
