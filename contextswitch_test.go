package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedPDVSyntaxRoundTrip(t *testing.T) {
	oid, err := NewObjectIdentifier(1, 3, 6, 1, 4, 1)
	require.NoError(t, err)

	pdv := EmbeddedPDV{
		Identification: ContextSwitchingTypeID{Kind: IDSyntax, Syntax: oid},
		DataValue:      []byte("hello"),
	}
	el := &Element{rule: DER}
	require.NoError(t, el.SetEmbeddedPDV(pdv))

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.EmbeddedPDV()
	require.NoError(t, err)
	require.Equal(t, IDSyntax, got.Identification.Kind)
	require.Equal(t, "1.3.6.1.4.1", got.Identification.Syntax.Dotted())
	require.Equal(t, []byte("hello"), got.DataValue)
	require.Nil(t, got.DataValueDescriptor)
}

func TestEmbeddedPDVWithDescriptor(t *testing.T) {
	pdv := EmbeddedPDV{
		Identification: ContextSwitchingTypeID{Kind: IDFixed},
		DataValue:      []byte{0x01, 0x02},
	}
	desc := "a descriptor"
	pdv.DataValueDescriptor = &desc

	el := &Element{rule: BER}
	require.NoError(t, el.SetEmbeddedPDV(pdv))

	decoded, _, err := DecodeBERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.EmbeddedPDV()
	require.NoError(t, err)
	require.NotNil(t, got.DataValueDescriptor)
	require.Equal(t, desc, *got.DataValueDescriptor)
}

func TestEmbeddedPDVDERDowngradesPresentationContextID(t *testing.T) {
	pdv := EmbeddedPDV{
		Identification: ContextSwitchingTypeID{Kind: IDPresentationContextID, PresentationContextID: 7},
		DataValue:      []byte{0x01},
	}
	el := &Element{rule: DER}
	require.NoError(t, el.SetEmbeddedPDV(pdv))

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.EmbeddedPDV()
	require.NoError(t, err)
	require.Equal(t, IDFixed, got.Identification.Kind)
}

func TestEmbeddedPDVDecodesSpecWireVector(t *testing.T) {
	// identification [0] wraps a fixed NULL alternative (context [5],
	// primitive, empty value); data-value is the context [2] field
	// carrying its octets directly, with no nested OCTET STRING TLV.
	wire := []byte{0x2B, 0x80, 0x80, 0x02, 0x85, 0x00, 0x82, 0x04, 0x01, 0x02, 0x03, 0x04, 0x00, 0x00}
	decoded, n, err := DecodeCERElement(wire)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)

	got, err := decoded.EmbeddedPDV()
	require.NoError(t, err)
	require.Equal(t, IDFixed, got.Identification.Kind)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, got.DataValue)
	require.Nil(t, got.DataValueDescriptor)
}

func TestCharacterStringRoundTrip(t *testing.T) {
	oid, err := NewObjectIdentifier(2, 1, 1)
	require.NoError(t, err)
	cs := CharacterString{
		Identification: ContextSwitchingTypeID{Kind: IDTransferSyntax, TransferSyntax: oid},
		StringValue:    []byte("payload"),
	}
	el := &Element{rule: CER}
	require.NoError(t, el.SetCharacterStringValue(cs))

	decoded, _, err := DecodeCERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.CharacterStringValue()
	require.NoError(t, err)
	require.Equal(t, IDTransferSyntax, got.Identification.Kind)
	require.Equal(t, "2.1.1", got.Identification.TransferSyntax.Dotted())
	require.Equal(t, []byte("payload"), got.StringValue)
}
