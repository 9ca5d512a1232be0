package asn1

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRealSpecialValues(t *testing.T) {
	cases := map[string]float64{
		"plus-inf":  math.Inf(1),
		"minus-inf": math.Inf(-1),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			el := &Element{rule: DER}
			require.NoError(t, el.SetReal(v))
			decoded, _, err := DecodeDERElement(el.Bytes())
			require.NoError(t, err)
			got, err := decoded.Real()
			require.NoError(t, err)
			require.Equal(t, v, got)
		})
	}
}

func TestRealNaN(t *testing.T) {
	el := &Element{rule: DER}
	require.NoError(t, el.SetReal(math.NaN()))
	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.Real()
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}

func TestRealZero(t *testing.T) {
	el := &Element{rule: DER}
	require.NoError(t, el.SetReal(0))
	require.Empty(t, el.value)
	decoded, _, err := DecodeDERElement(el.Bytes())
	require.NoError(t, err)
	got, err := decoded.Real()
	require.NoError(t, err)
	require.Equal(t, float64(0), got)
}

func TestRealBinaryRoundTrip(t *testing.T) {
	for _, v := range []float64{1.5, -1.5, 100.0, 0.125, 3.14159} {
		el := &Element{rule: DER}
		require.NoError(t, el.SetReal(v))
		decoded, _, err := DecodeDERElement(el.Bytes())
		require.NoError(t, err)
		got, err := decoded.Real()
		require.NoError(t, err)
		require.InDelta(t, v, got, 1e-9)
	}
}

func TestRealRejectsReservedBase(t *testing.T) {
	// info octet 0x80 | base-bits 11 (0x30) -> reserved base value.
	el, _, err := DecodeDERElement([]byte{0x09, 0x01, 0xB0})
	require.NoError(t, err)
	_, err = el.Real()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValueUndefined))
}
