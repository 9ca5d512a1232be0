package asn1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    int
		want []byte
	}{
		{"zero", 0, []byte{0x02, 0x01, 0x00}},
		{"positive-needs-no-padding", 127, []byte{0x02, 0x01, 0x7F}},
		{"positive-needs-padding", 128, []byte{0x02, 0x02, 0x00, 0x80}},
		{"negative-one", -1, []byte{0x02, 0x01, 0xFF}},
		{"negative-128", -128, []byte{0x02, 0x01, 0x80}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			el := &Element{rule: DER}
			el.SetInteger(c.v)
			require.Equal(t, c.want, el.Bytes())

			decoded, _, err := DecodeDERElement(c.want)
			require.NoError(t, err)
			got, err := decoded.Integer()
			require.NoError(t, err)
			require.Equal(t, c.v, got)
		})
	}
}

func TestIntegerNonMinimalRejectedUnderDER(t *testing.T) {
	// 0x00 0x01 is a non-canonical two-octet encoding of 1.
	el, _, err := DecodeDERElement([]byte{0x02, 0x02, 0x00, 0x01})
	require.NoError(t, err)
	_, err = el.Integer()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValuePadding))
}

func TestIntegerNonMinimalRejectedUnderBER(t *testing.T) {
	// spec.md §4.2: the minimal-octet rule applies under all three
	// rules, BER included.
	el, _, err := DecodeBERElement([]byte{0x02, 0x02, 0x00, 0x01})
	require.NoError(t, err)
	_, err = el.Integer()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValuePadding))
}

func TestBigIntRoundTrip(t *testing.T) {
	v := new(big.Int)
	v.SetString("123456789012345678901234567890", 10)
	el := &Element{rule: DER}
	el.SetBigInt(v)

	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.BigInt()
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(got))
}

func TestIntGenericOverflow(t *testing.T) {
	el := &Element{rule: DER}
	el.SetInteger(300)
	_, err := Int[int8](el)
	require.Error(t, err)
	require.True(t, IsKind(err, KindValueOverflow))
}

func TestIntGenericRoundTrip(t *testing.T) {
	el := &Element{rule: DER}
	SetInt[int16](el, -1000)
	got, err := Int[int16](el)
	require.NoError(t, err)
	require.Equal(t, int16(-1000), got)
}
