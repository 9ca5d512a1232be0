package descriptor

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvcodec/asn1"
)

// Encode builds the wire bytes for one descriptor under the given rule.
func Encode(d Descriptor, rule asn1.Rule) ([]byte, error) {
	el := newElement(rule, d.Class, d.Construction, d.Tag)
	switch strings.ToLower(d.Type) {
	case "bool", "boolean":
		v, err := strconv.ParseBool(d.Literal)
		if err != nil {
			return nil, fmt.Errorf("descriptor: bad boolean literal %q: %w", d.Literal, err)
		}
		el.SetBoolean(v)
	case "int", "integer":
		v, err := strconv.Atoi(d.Literal)
		if err != nil {
			return nil, fmt.Errorf("descriptor: bad integer literal %q: %w", d.Literal, err)
		}
		el.SetInteger(v)
	case "null":
		el.SetNull()
	case "oid":
		nums, err := parseDottedOID(d.Literal)
		if err != nil {
			return nil, err
		}
		oid, err := asn1.NewObjectIdentifier(nums...)
		if err != nil {
			return nil, err
		}
		if err := el.SetObjectIdentifier(oid); err != nil {
			return nil, err
		}
	case "octet", "octetstring":
		data, err := hex.DecodeString(d.Literal)
		if err != nil {
			return nil, fmt.Errorf("descriptor: bad hex octet literal %q: %w", d.Literal, err)
		}
		el.SetOctetString(data)
	case "utf8":
		el.SetUTF8String(d.Literal)
	case "ia5":
		if err := el.SetIA5String(d.Literal); err != nil {
			return nil, err
		}
	case "printable":
		if err := el.SetPrintableString(d.Literal); err != nil {
			return nil, err
		}
	case "numeric":
		if err := el.SetNumericString(d.Literal); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("descriptor: unsupported type %q", d.Type)
	}
	return el.Bytes(), nil
}

func parseDottedOID(s string) ([]int, error) {
	parts := strings.Split(s, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("descriptor: bad OID node %q: %w", p, err)
		}
		nums[i] = n
	}
	return nums, nil
}

func newElement(rule asn1.Rule, class asn1.Class, construction asn1.Construction, tag int) *asn1.Element {
	switch rule {
	case asn1.CER:
		return &asn1.NewCERElement(class, construction, tag).Element
	case asn1.DER:
		return &asn1.NewDERElement(class, construction, tag).Element
	default:
		return &asn1.NewBERElement(class, construction, tag).Element
	}
}
