package asn1

/*
stringtypes.go implements the restricted-character-set and opaque
string universal types: NumericString, PrintableString, TeletexString,
VideotexString, IA5String, GraphicString, VisibleString, GeneralString,
ObjectDescriptor, UTF8String, UniversalString and BMPString. All share
the CER segmentation machinery in segment.go; what differs per type is
the (optional) character-set validator and, for UniversalString and
BMPString, the multi-byte wire transform.
*/

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

func isNumericChar(b byte) bool { return (b >= '0' && b <= '9') || b == ' ' }
func isIA5Char(b byte) bool     { return b < 0x80 }
func isGeneralChar(b byte) bool { return b < 0x80 }
func isGraphicChar(b byte) bool { return b >= 0x20 && b <= 0x7E }
func isVisibleChar(b byte) bool { return b >= 0x20 && b <= 0x7E }

func isPrintableChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func (e *Element) getRestrictedString(tag int, typeName string, valid func(byte) bool) (string, error) {
	if e.tag != tag {
		return "", newErr(KindTagNumber, typeName, ": unexpected tag ", itoa(e.tag))
	}
	data, err := decodeSegmented(e, typeName)
	if err != nil {
		return "", err
	}
	if valid != nil {
		for _, b := range data {
			if !valid(b) {
				return "", newErr(KindValueCharacters, typeName, ": disallowed character")
			}
		}
	}
	return string(data), nil
}

func (e *Element) setRestrictedString(tag int, typeName string, s string, valid func(byte) bool) error {
	data := []byte(s)
	if valid != nil {
		for _, b := range data {
			if !valid(b) {
				return newErr(KindValueCharacters, typeName, ": disallowed character")
			}
		}
	}
	e.setSegmented(ClassUniversal, tag, data)
	return nil
}

// NumericString decodes the receiver as a NumericString (digits and space only).
func (e *Element) NumericString() (string, error) {
	return e.getRestrictedString(TagNumericString, "NumericString", isNumericChar)
}

// SetNumericString encodes s as a NumericString.
func (e *Element) SetNumericString(s string) error {
	return e.setRestrictedString(TagNumericString, "NumericString", s, isNumericChar)
}

// PrintableString decodes the receiver as a PrintableString.
func (e *Element) PrintableString() (string, error) {
	return e.getRestrictedString(TagPrintableString, "PrintableString", isPrintableChar)
}

// SetPrintableString encodes s as a PrintableString.
func (e *Element) SetPrintableString(s string) error {
	return e.setRestrictedString(TagPrintableString, "PrintableString", s, isPrintableChar)
}

// IA5String decodes the receiver as an IA5String (ASCII only).
func (e *Element) IA5String() (string, error) {
	return e.getRestrictedString(TagIA5String, "IA5String", isIA5Char)
}

// SetIA5String encodes s as an IA5String.
func (e *Element) SetIA5String(s string) error {
	return e.setRestrictedString(TagIA5String, "IA5String", s, isIA5Char)
}

// GraphicString decodes the receiver as a GraphicString (0x20..0x7E).
func (e *Element) GraphicString() (string, error) {
	return e.getRestrictedString(TagGraphicString, "GraphicString", isGraphicChar)
}

// SetGraphicString encodes s as a GraphicString.
func (e *Element) SetGraphicString(s string) error {
	return e.setRestrictedString(TagGraphicString, "GraphicString", s, isGraphicChar)
}

// VisibleString decodes the receiver as a VisibleString (0x20..0x7E).
func (e *Element) VisibleString() (string, error) {
	return e.getRestrictedString(TagVisibleString, "VisibleString", isVisibleChar)
}

// SetVisibleString encodes s as a VisibleString.
func (e *Element) SetVisibleString(s string) error {
	return e.setRestrictedString(TagVisibleString, "VisibleString", s, isVisibleChar)
}

// GeneralString decodes the receiver as a GeneralString (ASCII only).
func (e *Element) GeneralString() (string, error) {
	return e.getRestrictedString(TagGeneralString, "GeneralString", isGeneralChar)
}

// SetGeneralString encodes s as a GeneralString.
func (e *Element) SetGeneralString(s string) error {
	return e.setRestrictedString(TagGeneralString, "GeneralString", s, isGeneralChar)
}

// ObjectDescriptor decodes the receiver as an ObjectDescriptor
// (tag 7, graphical characters plus space).
func (e *Element) ObjectDescriptor() (string, error) {
	return e.getRestrictedString(TagObjectDescriptor, "ObjectDescriptor", isGraphicChar)
}

// SetObjectDescriptor encodes s as an ObjectDescriptor.
func (e *Element) SetObjectDescriptor(s string) error {
	return e.setRestrictedString(TagObjectDescriptor, "ObjectDescriptor", s, isGraphicChar)
}

// TeletexString decodes the receiver as a TeletexString. Teletex
// character-set validation is a known non-goal (left octet-opaque).
func (e *Element) TeletexString() ([]byte, error) {
	if e.tag != TagT61String {
		return nil, newErr(KindTagNumber, "TeletexString: unexpected tag ", itoa(e.tag))
	}
	return decodeSegmented(e, "TeletexString")
}

// SetTeletexString encodes data as a TeletexString.
func (e *Element) SetTeletexString(data []byte) {
	e.setSegmented(ClassUniversal, TagT61String, data)
}

// VideotexString decodes the receiver as a VideotexString (opaque).
func (e *Element) VideotexString() ([]byte, error) {
	if e.tag != TagVideotexString {
		return nil, newErr(KindTagNumber, "VideotexString: unexpected tag ", itoa(e.tag))
	}
	return decodeSegmented(e, "VideotexString")
}

// SetVideotexString encodes data as a VideotexString.
func (e *Element) SetVideotexString(data []byte) {
	e.setSegmented(ClassUniversal, TagVideotexString, data)
}

// UTF8String decodes the receiver as a UTF8String.
func (e *Element) UTF8String() (string, error) {
	if e.tag != TagUTF8String {
		return "", newErr(KindTagNumber, "UTF8String: unexpected tag ", itoa(e.tag))
	}
	data, err := decodeSegmented(e, "UTF8String")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", newErr(KindValueCharacters, "UTF8String: invalid UTF-8")
	}
	return string(data), nil
}

// SetUTF8String encodes s as a UTF8String.
func (e *Element) SetUTF8String(s string) {
	e.setSegmented(ClassUniversal, TagUTF8String, []byte(s))
}

// UniversalString decodes the receiver as a UniversalString: UTF-32,
// big-endian, four octets per character.
func (e *Element) UniversalString() (string, error) {
	if e.tag != TagUniversalString {
		return "", newErr(KindTagNumber, "UniversalString: unexpected tag ", itoa(e.tag))
	}
	data, err := decodeSegmented(e, "UniversalString")
	if err != nil {
		return "", err
	}
	if len(data)%4 != 0 {
		return "", newErr(KindValueSize, "UniversalString: value length must be divisible by 4")
	}
	runes := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		v := uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		runes = append(runes, rune(v))
	}
	return string(runes), nil
}

// SetUniversalString encodes s as a UniversalString.
func (e *Element) SetUniversalString(s string) {
	data := make([]byte, 0, len(s)*4)
	for _, r := range s {
		data = append(data, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
	}
	e.setSegmented(ClassUniversal, TagUniversalString, data)
}

var bmpCodec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// BMPString decodes the receiver as a BMPString: UTF-16, big-endian.
func (e *Element) BMPString() (string, error) {
	if e.tag != TagBMPString {
		return "", newErr(KindTagNumber, "BMPString: unexpected tag ", itoa(e.tag))
	}
	data, err := decodeSegmented(e, "BMPString")
	if err != nil {
		return "", err
	}
	if len(data)%2 != 0 {
		return "", newErr(KindValueSize, "BMPString: value length must be divisible by 2")
	}
	out, err := bmpCodec.NewDecoder().Bytes(data)
	if err != nil {
		return "", newErr(KindValueCharacters, "BMPString: invalid UTF-16")
	}
	return string(out), nil
}

// SetBMPString encodes s as a BMPString.
func (e *Element) SetBMPString(s string) error {
	data, err := bmpCodec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return newErr(KindValueCharacters, "BMPString: value not representable in UTF-16")
	}
	e.setSegmented(ClassUniversal, TagBMPString, data)
	return nil
}
