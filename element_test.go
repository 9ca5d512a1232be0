package asn1

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementIndefiniteEncodeDecodeRoundTrip(t *testing.T) {
	inner := &Element{rule: BER}
	inner.SetInteger(5)

	outer := &Element{rule: BER, class: ClassUniversal, construction: Constructed, tag: TagSequence, indefinite: true}
	outer.value = inner.Bytes()

	wire, err := outer.EncodeIndefinite()
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(wire, []byte{0x00, 0x00}))

	decoded, n, err := DecodeBERElement(wire)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)
	require.True(t, decoded.indefinite)

	children, err := decoded.Sequence()
	require.NoError(t, err)
	require.Len(t, children, 1)
	v, err := children[0].Integer()
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestDecodeRejectsExcessiveIndefiniteNesting(t *testing.T) {
	// recursionLimit nested indefinite-length constructed wrappers,
	// one past the limit the innermost is never given a chance to
	// close: depth 0..recursionLimit, the decoder must bail with
	// RecursionError before running out of input.
	var wire []byte
	for i := 0; i < recursionLimit+1; i++ {
		wire = append(wire, 0x2C, 0x80) // context/application-agnostic constructed tag 12, indefinite length
	}
	for i := 0; i < recursionLimit+1; i++ {
		wire = append(wire, 0x00, 0x00)
	}
	_, _, err := DecodeBERElement(wire)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRecursion))
}

func TestDecodeMultipleElementsCursor(t *testing.T) {
	a := &Element{rule: DER}
	a.SetInteger(1)
	b := &Element{rule: DER}
	b.SetBoolean(false)
	wire := append(a.Bytes(), b.Bytes()...)

	el1, n1, err := DecodeDERElement(wire)
	require.NoError(t, err)
	el2, n2, err := DecodeDERElement(wire[n1:])
	require.NoError(t, err)
	require.Equal(t, len(wire), n1+n2)

	v1, err := el1.Integer()
	require.NoError(t, err)
	require.Equal(t, 1, v1)
	v2, err := el2.Boolean()
	require.NoError(t, err)
	require.False(t, v2)
}

func TestDERRejectsIndefiniteLength(t *testing.T) {
	_, _, err := DecodeDERElement([]byte{0x2C, 0x80, 0x00, 0x00})
	require.Error(t, err)
	require.True(t, IsKind(err, KindLength))
}
