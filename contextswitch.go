package asn1

/*
contextswitch.go implements the ContextSwitchingTypeID tagged union
(the "Identification" CHOICE shared by EXTERNAL, EmbeddedPDV and
CharacterString) and the three structured types built on top of it.

Under automatic tagging the six CHOICE alternatives are themselves
implicitly tagged [0]..[5] context-specific. Because identification is
a CHOICE-typed field, automatic tagging wraps the whole field in its
own explicit context tag ([0] for EXTERNAL/EmbeddedPDV/CharacterString
alike) whose value octets are the complete TLV of the chosen
alternative -- the alternative's own 0..5 tag travels unchanged inside
that wrapper. The non-CHOICE fields that follow (data-value-descriptor,
data-value) are plain IMPLICIT context tags instead: the field's
context tag simply replaces the universal tag the underlying type
would otherwise carry, with no extra wrapping layer. Field numbering is
fixed by position in the type definition, so data-value is always [2]
for EXTERNAL/EmbeddedPDV (data-value-descriptor occupies [1] whether or
not it is present on the wire) but [1] for CharacterString, which has
no descriptor field at all.

For EmbeddedPDV and CharacterString, CER/DER restrict encode to the
syntaxes, syntax, transfer-syntax and fixed alternatives; per the Open
Question recorded in spec.md §9 (and resolved in SPEC_FULL.md §4),
encoding an unsupported alternative under CER/DER silently downgrades
to fixed rather than raising an error, matching the source this library
is grounded on. EXTERNAL under CER/DER accepts only the syntax
alternative and rejects every other one (see SetExternal).
*/

// IdentificationKind discriminates the ContextSwitchingTypeID union.
type IdentificationKind uint8

const (
	IDSyntaxes IdentificationKind = iota
	IDSyntax
	IDPresentationContextID
	IDContextNegotiation
	IDTransferSyntax
	IDFixed
)

// ContextSwitchingTypeID is the tagged union used by EXTERNAL,
// EmbeddedPDV and CharacterString's "identification" field. Only the
// fields relevant to Kind are meaningful.
type ContextSwitchingTypeID struct {
	Kind                  IdentificationKind
	AbstractSyntax        ObjectIdentifier // syntaxes.abstract
	TransferSyntax        ObjectIdentifier // syntaxes.transfer / transfer-syntax
	Syntax                ObjectIdentifier // syntax
	PresentationContextID int              // presentation-context-id / context-negotiation.presentation-context-id
}

func encodeIdentification(id ContextSwitchingTypeID, rule Rule) (Element, error) {
	kind := id.Kind
	if rule != BER {
		switch kind {
		case IDPresentationContextID, IDContextNegotiation:
			kind = IDFixed
		}
	}
	switch kind {
	case IDSyntaxes:
		a := &Element{rule: rule}
		if err := a.SetObjectIdentifier(id.AbstractSyntax); err != nil {
			return Element{}, err
		}
		t := &Element{rule: rule}
		if err := t.SetObjectIdentifier(id.TransferSyntax); err != nil {
			return Element{}, err
		}
		value := append(a.Bytes(), t.Bytes()...)
		return Element{rule: rule, class: ClassContextSpecific, construction: Constructed, tag: 0, value: value}, nil
	case IDSyntax:
		o := &Element{rule: rule}
		if err := o.SetObjectIdentifier(id.Syntax); err != nil {
			return Element{}, err
		}
		return Element{rule: rule, class: ClassContextSpecific, construction: Primitive, tag: 1, value: o.value}, nil
	case IDPresentationContextID:
		i := &Element{rule: rule}
		i.SetInteger(id.PresentationContextID)
		return Element{rule: rule, class: ClassContextSpecific, construction: Primitive, tag: 2, value: i.value}, nil
	case IDContextNegotiation:
		p := &Element{rule: rule}
		p.SetInteger(id.PresentationContextID)
		t := &Element{rule: rule}
		if err := t.SetObjectIdentifier(id.TransferSyntax); err != nil {
			return Element{}, err
		}
		value := append(p.Bytes(), t.Bytes()...)
		return Element{rule: rule, class: ClassContextSpecific, construction: Constructed, tag: 3, value: value}, nil
	case IDTransferSyntax:
		o := &Element{rule: rule}
		if err := o.SetObjectIdentifier(id.TransferSyntax); err != nil {
			return Element{}, err
		}
		return Element{rule: rule, class: ClassContextSpecific, construction: Primitive, tag: 4, value: o.value}, nil
	default: // IDFixed
		return Element{rule: rule, class: ClassContextSpecific, construction: Primitive, tag: 5, value: nil}, nil
	}
}

func decodeIdentification(el Element) (ContextSwitchingTypeID, error) {
	if el.class != ClassContextSpecific {
		return ContextSwitchingTypeID{}, newErr(KindTagClass, "identification: expected context-specific class")
	}
	switch el.tag {
	case 0:
		if el.construction != Constructed {
			return ContextSwitchingTypeID{}, newErr(KindConstruction, "identification: syntaxes must be constructed")
		}
		children, err := decodeChildren(el.value, el.rule, 0)
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		if len(children) != 2 {
			return ContextSwitchingTypeID{}, newErr(KindValue, "identification: syntaxes requires exactly two members")
		}
		abs, err := children[0].ObjectIdentifier()
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		trans, err := children[1].ObjectIdentifier()
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		return ContextSwitchingTypeID{Kind: IDSyntaxes, AbstractSyntax: abs, TransferSyntax: trans}, nil
	case 1:
		tmp := Element{rule: el.rule, class: ClassUniversal, construction: Primitive, tag: TagOID, value: el.value}
		oid, err := tmp.ObjectIdentifier()
		return ContextSwitchingTypeID{Kind: IDSyntax, Syntax: oid}, err
	case 2:
		tmp := Element{rule: el.rule, class: ClassUniversal, construction: Primitive, tag: TagInteger, value: el.value}
		i, err := tmp.Integer()
		return ContextSwitchingTypeID{Kind: IDPresentationContextID, PresentationContextID: i}, err
	case 3:
		if el.construction != Constructed {
			return ContextSwitchingTypeID{}, newErr(KindConstruction, "identification: context-negotiation must be constructed")
		}
		children, err := decodeChildren(el.value, el.rule, 0)
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		if len(children) != 2 {
			return ContextSwitchingTypeID{}, newErr(KindValue, "identification: context-negotiation requires exactly two members")
		}
		pid, err := children[0].Integer()
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		trans, err := children[1].ObjectIdentifier()
		if err != nil {
			return ContextSwitchingTypeID{}, err
		}
		return ContextSwitchingTypeID{Kind: IDContextNegotiation, PresentationContextID: pid, TransferSyntax: trans}, nil
	case 4:
		tmp := Element{rule: el.rule, class: ClassUniversal, construction: Primitive, tag: TagOID, value: el.value}
		oid, err := tmp.ObjectIdentifier()
		return ContextSwitchingTypeID{Kind: IDTransferSyntax, TransferSyntax: oid}, err
	case 5:
		return ContextSwitchingTypeID{Kind: IDFixed}, nil
	default:
		return ContextSwitchingTypeID{}, newErr(KindValue, "identification: unrecognized alternative tag ", itoa(el.tag))
	}
}

// External implements the (deprecated, retained for legacy wire
// compatibility) EXTERNAL type (tag 8): identification CHOICE,
// optional data-value-descriptor, and an OCTET STRING payload.
type External struct {
	Identification      ContextSwitchingTypeID
	DataValueDescriptor *string
	DataValue           []byte
}

// wrapIdentification builds the [0] identification field wrapper: its
// value is the complete TLV of the chosen CHOICE alternative,
// unchanged. Per the ground-truth wire vector the wrapper's own
// construction bit is primitive even though its content is itself a
// nested tag+length+value.
func wrapIdentification(id ContextSwitchingTypeID, rule Rule) (Element, error) {
	alt, err := encodeIdentification(id, rule)
	if err != nil {
		return Element{}, err
	}
	return Element{rule: rule, class: ClassContextSpecific, construction: Primitive, tag: 0, value: alt.Bytes()}, nil
}

// unwrapIdentification recovers the CHOICE alternative nested inside the
// [0] identification field wrapper and decodes it. The wrapper's own
// value octets are the complete tag+length+value of the chosen
// alternative; its own construction bit carries no meaning beyond
// framing and is not required to be either primitive or constructed.
func unwrapIdentification(field Element, typeName string) (ContextSwitchingTypeID, error) {
	if field.class != ClassContextSpecific || field.tag != 0 {
		return ContextSwitchingTypeID{}, newErr(KindTagNumber, typeName, ": expected identification as context [0]")
	}
	alt, _, err := decodeElement(field.value, field.rule, 0)
	if err != nil {
		return ContextSwitchingTypeID{}, err
	}
	return decodeIdentification(alt)
}

func (e *Element) decodeExternalLike(tag int, typeName string) (id ContextSwitchingTypeID, desc *string, data []byte, err error) {
	if e.tag != tag {
		err = newErr(KindTagNumber, typeName, ": unexpected tag ", itoa(e.tag))
		return
	}
	if e.construction != Constructed {
		err = newErr(KindConstruction, typeName, " must be constructed")
		return
	}
	var children []Element
	if children, err = decodeChildren(e.value, e.rule, 0); err != nil {
		return
	}
	if len(children) < 2 || len(children) > 3 {
		err = newErr(KindValue, typeName, ": expected 2 or 3 members")
		return
	}
	if id, err = unwrapIdentification(children[0], typeName); err != nil {
		return
	}
	idx := 1
	if len(children) == 3 {
		descField := children[1]
		if descField.class != ClassContextSpecific || descField.tag != 1 {
			err = newErr(KindTagNumber, typeName, ": expected data-value-descriptor as context [1]")
			return
		}
		var d string
		if d, err = descField.getRestrictedString(1, typeName+": data-value-descriptor", isGraphicChar); err != nil {
			return
		}
		desc = &d
		idx = 2
	}
	dataField := children[idx]
	if dataField.class != ClassContextSpecific || dataField.tag != 2 {
		err = newErr(KindTagNumber, typeName, ": expected data-value as context [2]")
		return
	}
	data, err = decodeSegmented(&dataField, typeName+": data-value")
	return
}

func (e *Element) encodeExternalLike(tag int, id ContextSwitchingTypeID, desc *string, data []byte) error {
	idField, err := wrapIdentification(id, e.rule)
	if err != nil {
		return err
	}
	value := idField.Bytes()
	if desc != nil {
		for _, b := range []byte(*desc) {
			if !isGraphicChar(b) {
				return newErr(KindValueCharacters, "data-value-descriptor: disallowed character")
			}
		}
		d := &Element{rule: e.rule}
		d.setSegmented(ClassContextSpecific, 1, []byte(*desc))
		value = append(value, d.Bytes()...)
	}
	dv := &Element{rule: e.rule}
	dv.setSegmented(ClassContextSpecific, 2, data)
	value = append(value, dv.Bytes()...)
	e.setRaw(ClassUniversal, Constructed, tag, value)
	return nil
}

// External decodes the receiver as an EXTERNAL.
func (e *Element) External() (External, error) {
	id, desc, data, err := e.decodeExternalLike(TagExternal, "EXTERNAL")
	if err != nil {
		return External{}, err
	}
	return External{Identification: id, DataValueDescriptor: desc, DataValue: data}, nil
}

// SetExternal encodes ext as an EXTERNAL. Under CER/DER only the
// syntax identification alternative is permitted by X.690; any other
// alternative is rejected with a ValueError.
func (e *Element) SetExternal(ext External) error {
	if e.rule != BER && ext.Identification.Kind != IDSyntax {
		return newErr(KindValue, "EXTERNAL: CER/DER permit only the syntax identification alternative")
	}
	return e.encodeExternalLike(TagExternal, ext.Identification, ext.DataValueDescriptor, ext.DataValue)
}

// EmbeddedPDV implements the EMBEDDED PDV type (tag 11).
type EmbeddedPDV struct {
	Identification      ContextSwitchingTypeID
	DataValueDescriptor *string
	DataValue           []byte
}

// EmbeddedPDV decodes the receiver as an EMBEDDED PDV.
func (e *Element) EmbeddedPDV() (EmbeddedPDV, error) {
	id, desc, data, err := e.decodeExternalLike(TagEmbeddedPDV, "EMBEDDED PDV")
	if err != nil {
		return EmbeddedPDV{}, err
	}
	return EmbeddedPDV{Identification: id, DataValueDescriptor: desc, DataValue: data}, nil
}

// SetEmbeddedPDV encodes pdv as an EMBEDDED PDV.
func (e *Element) SetEmbeddedPDV(pdv EmbeddedPDV) error {
	return e.encodeExternalLike(TagEmbeddedPDV, pdv.Identification, pdv.DataValueDescriptor, pdv.DataValue)
}

// CharacterString implements the CHARACTER STRING type (tag 29):
// structurally identical to EmbeddedPDV but without the optional
// data-value-descriptor.
type CharacterString struct {
	Identification ContextSwitchingTypeID
	StringValue    []byte
}

// CharacterStringValue decodes the receiver as a CHARACTER STRING. Unlike
// EXTERNAL/EmbeddedPDV there is no data-value-descriptor field, so
// string-value occupies [1] rather than [2].
func (e *Element) CharacterStringValue() (CharacterString, error) {
	if e.tag != TagCharacterString {
		return CharacterString{}, newErr(KindTagNumber, "CHARACTER STRING: unexpected tag ", itoa(e.tag))
	}
	if e.construction != Constructed {
		return CharacterString{}, newErr(KindConstruction, "CHARACTER STRING must be constructed")
	}
	children, err := decodeChildren(e.value, e.rule, 0)
	if err != nil {
		return CharacterString{}, err
	}
	if len(children) != 2 {
		return CharacterString{}, newErr(KindValue, "CHARACTER STRING: expected exactly 2 members")
	}
	id, err := unwrapIdentification(children[0], "CHARACTER STRING")
	if err != nil {
		return CharacterString{}, err
	}
	svField := children[1]
	if svField.class != ClassContextSpecific || svField.tag != 1 {
		return CharacterString{}, newErr(KindTagNumber, "CHARACTER STRING: expected string-value as context [1]")
	}
	sv, err := decodeSegmented(&svField, "CHARACTER STRING: string-value")
	if err != nil {
		return CharacterString{}, err
	}
	return CharacterString{Identification: id, StringValue: sv}, nil
}

// SetCharacterStringValue encodes cs as a CHARACTER STRING.
func (e *Element) SetCharacterStringValue(cs CharacterString) error {
	idField, err := wrapIdentification(cs.Identification, e.rule)
	if err != nil {
		return err
	}
	sv := &Element{rule: e.rule}
	sv.setSegmented(ClassContextSpecific, 1, cs.StringValue)
	value := append(idField.Bytes(), sv.Bytes()...)
	e.setRaw(ClassUniversal, Constructed, TagCharacterString, value)
	return nil
}
