package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitStringRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	require.NoError(t, el.SetBitString(BitString{Bytes: []byte{0b10100000}, UnusedBits: 3}))
	require.Equal(t, []byte{0x03, 0x02, 0x03, 0xA0}, el.Bytes())

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.BitString()
	require.NoError(t, err)
	require.Equal(t, BitString{Bytes: []byte{0b10100000}, UnusedBits: 3}, got)
}

func TestBitStringDERRejectsNonZeroPadding(t *testing.T) {
	el, _, err := DecodeDERElement([]byte{0x03, 0x02, 0x03, 0xA7})
	require.NoError(t, err)
	_, err = el.BitString()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValue))
}

func TestBitStringCERSegmentsLargeValues(t *testing.T) {
	data := make([]byte, 1500)
	for i := range data {
		data[i] = byte(i)
	}
	el := &Element{rule: CER}
	require.NoError(t, el.SetBitString(BitString{Bytes: data, UnusedBits: 0}))
	require.True(t, el.indefinite)
	require.Equal(t, Constructed, el.construction)
	require.Equal(t, TagBitString, el.tag)

	wire := el.Bytes()
	decoded, n, err := DecodeCERElement(wire)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)
	got, err := decoded.BitString()
	require.NoError(t, err)
	require.Equal(t, data, got.Bytes)
	require.Equal(t, 0, got.UnusedBits)
}

func TestBitStringDERForbidsConstructed(t *testing.T) {
	el := &Element{rule: DER, class: ClassUniversal, construction: Constructed, tag: TagBitString}
	_, err := el.BitString()
	require.Error(t, err)
	require.True(t, IsKind(err, KindConstruction))
}
