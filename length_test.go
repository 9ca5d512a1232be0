package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeLengthBERAcceptsLeadingZeroLongForm(t *testing.T) {
	// 0x82 0x00 0x05: long form, two content octets with a leading
	// zero, value 5 -- BER accepts all three length forms regardless
	// of minimality.
	n, consumed, err := decodeLength([]byte{0x82, 0x00, 0x05}, BER)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 3, consumed)
}

func TestDecodeLengthCERRejectsLeadingZeroLongForm(t *testing.T) {
	_, _, err := decodeLength([]byte{0x81, 0x00}, CER)
	require.Error(t, err)
	require.True(t, IsKind(err, KindLength))
}

func TestDecodeLengthDERRejectsLeadingZeroLongForm(t *testing.T) {
	_, _, err := decodeLength([]byte{0x81, 0x00}, DER)
	require.Error(t, err)
	require.True(t, IsKind(err, KindLength))
}

func TestDecodeLengthBERAcceptsNonMinimalLongForm(t *testing.T) {
	// 0x81 0x05: length 5 could have fit the short form, but BER is
	// permissive about which of the three forms is used.
	n, consumed, err := decodeLength([]byte{0x81, 0x05}, BER)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 2, consumed)
}

func TestDecodeLengthDERRejectsNonMinimalLongForm(t *testing.T) {
	_, _, err := decodeLength([]byte{0x81, 0x05}, DER)
	require.Error(t, err)
	require.True(t, IsKind(err, KindLength))
}
