package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectIdentifierRoundTrip(t *testing.T) {
	oid, err := NewObjectIdentifier(1, 3, 6, 4, 1)
	require.NoError(t, err)
	require.Equal(t, "1.3.6.4.1", oid.Dotted())

	el := &Element{rule: DER}
	require.NoError(t, el.SetObjectIdentifier(oid))
	require.Equal(t, []byte{0x06, 0x04, 0x2B, 0x06, 0x04, 0x01}, el.Bytes())

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.ObjectIdentifier()
	require.NoError(t, err)
	require.Equal(t, "1.3.6.4.1", got.Dotted())
}

func TestObjectIdentifierRejectsBadFirstNodes(t *testing.T) {
	_, err := NewObjectIdentifier(1, 40)
	require.Error(t, err)

	_, err = NewObjectIdentifier(3, 1)
	require.Error(t, err)
}

func TestObjectIdentifierRejectsLeadingPaddingNode(t *testing.T) {
	// 0x2B, then a node encoded with a redundant leading 0x80 octet.
	el, _, err := DecodeDERElement([]byte{0x06, 0x03, 0x2B, 0x80, 0x01})
	require.NoError(t, err)
	_, err = el.ObjectIdentifier()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValuePadding))
}

func TestRelativeOIDRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	require.NoError(t, el.SetRelativeOID([]int{8571, 1}))

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.RelativeOID()
	require.NoError(t, err)
	require.Equal(t, []int{8571, 1}, got)
}

func TestRelativeOIDMayBeEmpty(t *testing.T) {
	el := &Element{rule: DER}
	require.NoError(t, el.SetRelativeOID(nil))
	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.RelativeOID()
	require.NoError(t, err)
	require.Empty(t, got)
}
