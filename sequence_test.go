package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceRoundTrip(t *testing.T) {
	a := &Element{rule: DER}
	a.SetInteger(1)
	b := &Element{rule: DER}
	b.SetBoolean(true)

	el := &Element{rule: DER}
	el.SetSequence(a, b)

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	children, err := decoded.Sequence()
	require.NoError(t, err)
	require.Len(t, children, 2)

	v1, err := children[0].Integer()
	require.NoError(t, err)
	require.Equal(t, 1, v1)

	v2, err := children[1].Boolean()
	require.NoError(t, err)
	require.True(t, v2)
}

func TestSetOrdersLexicographicallyUnderDER(t *testing.T) {
	a := &Element{rule: DER}
	a.SetInteger(300) // encodes to 0x02 0x02 0x01 0x2C
	b := &Element{rule: DER}
	b.SetInteger(1) // encodes to 0x02 0x01 0x01

	el := &Element{rule: DER}
	el.SetSet(a, b)

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	children, err := decoded.Set()
	require.NoError(t, err)
	require.Len(t, children, 2)

	first, err := children[0].Integer()
	require.NoError(t, err)
	require.Equal(t, 1, first)

	second, err := children[1].Integer()
	require.NoError(t, err)
	require.Equal(t, 300, second)
}
