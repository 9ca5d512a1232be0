package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctetStringRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	el.SetOctetString([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Equal(t, []byte{0x04, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}, el.Bytes())

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.OctetString()
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)
}

func TestOctetStringCERSegmentsOverThreshold(t *testing.T) {
	data := make([]byte, 2500)
	for i := range data {
		data[i] = byte(i % 251)
	}
	el := &Element{rule: CER}
	el.SetOctetString(data)
	require.True(t, el.indefinite)

	decoded, _, err := DecodeCERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.OctetString()
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestOctetStringDERForbidsConstructed(t *testing.T) {
	el := &Element{rule: DER, class: ClassUniversal, construction: Constructed, tag: TagOctetString, value: []byte{0x04, 0x01, 0x00}}
	_, err := el.OctetString()
	require.Error(t, err)
	require.True(t, IsKind(err, KindConstruction))
}

func TestEnumeratedRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	el.SetEnumerated(2)
	require.Equal(t, []byte{0x0A, 0x01, 0x02}, el.Bytes())

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.Enumerated()
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestNullRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	el.SetNull()
	require.Equal(t, []byte{0x05, 0x00}, el.Bytes())

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	require.NoError(t, decoded.Null())
}

func TestNullRejectsNonEmptyValue(t *testing.T) {
	el := &Element{rule: DER, class: ClassUniversal, construction: Primitive, tag: TagNull, value: []byte{0x01}}
	require.Error(t, el.Null())
}
