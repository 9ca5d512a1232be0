package asn1

/*
integer.go implements the INTEGER universal type (tag 2, primitive):
arbitrary-length big-endian two's complement, plus the canonical
minimal-octet check shared by all three rules. ENUMERATED (tag 10)
reuses the identical wire format; see enumerated.go.

The source this library is grounded on instantiates a template
integer<T> per signed width; here a single generic bounded-width
accessor (Int) replaces that, parameterized over [constraints.Signed].
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// canonicalInteger reports whether value is the minimal-octet
// two's-complement encoding of its magnitude: the first two octets
// must not be (0x00, high-bit-clear) nor (0xFF, high-bit-set).
func canonicalInteger(value []byte) bool {
	if len(value) < 2 {
		return true
	}
	if value[0] == 0x00 && value[1]&0x80 == 0 {
		return false
	}
	if value[0] == 0xFF && value[1]&0x80 != 0 {
		return false
	}
	return true
}

func encodeBigInt(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// negative: two's complement over the smallest sufficient width
	bitLen := new(big.Int).Not(v).BitLen() // bits of |v|-1, so -2^k needs no extra octet
	nBytes := bitLen/8 + 1
	twos := new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8)))
	b := twos.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

func decodeBigInt(value []byte) (*big.Int, error) {
	if len(value) == 0 {
		return nil, newErr(KindValueSize, "INTEGER value may not be empty")
	}
	neg := value[0]&0x80 != 0
	mag := append([]byte(nil), value...)
	v := new(big.Int)
	if !neg {
		v.SetBytes(mag)
		return v, nil
	}
	twos := new(big.Int).SetBytes(mag)
	full := new(big.Int).Lsh(big.NewInt(1), uint(len(mag)*8))
	v.Sub(twos, full)
	return v, nil
}

func (e *Element) integerValue(tagNumber int, typeName string) (*big.Int, error) {
	if e.construction != Primitive {
		return nil, newErr(KindConstruction, typeName, " must be primitive")
	}
	if e.tag != tagNumber {
		return nil, newErr(KindTagNumber, typeName, ": unexpected tag ", itoa(e.tag))
	}
	if len(e.value) == 0 {
		return nil, newErr(KindValueSize, typeName, " value may not be empty")
	}
	if !canonicalInteger(e.value) {
		return nil, newErr(KindValuePadding, typeName, ": non-minimal encoding")
	}
	return decodeBigInt(e.value)
}

func (e *Element) setIntegerValue(tagNumber int, v *big.Int) {
	e.setRaw(ClassUniversal, Primitive, tagNumber, encodeBigInt(v))
}

// BigInt decodes the receiver's value octets as an arbitrary-precision
// INTEGER.
func (e *Element) BigInt() (*big.Int, error) {
	return e.integerValue(TagInteger, "INTEGER")
}

// SetBigInt encodes v as an INTEGER.
func (e *Element) SetBigInt(v *big.Int) { e.setIntegerValue(TagInteger, v) }

// Integer decodes the receiver's value octets as a native int,
// failing with a ValueOverflowError if the decoded magnitude does not
// fit.
func (e *Element) Integer() (int, error) {
	v, err := e.integerValue(TagInteger, "INTEGER")
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newErr(KindValueOverflow, "INTEGER: value does not fit in a 64-bit signed int")
	}
	return int(v.Int64()), nil
}

// SetInteger encodes v as an INTEGER.
func (e *Element) SetInteger(v int) { e.setIntegerValue(TagInteger, big.NewInt(int64(v))) }

// Int decodes the receiver's value octets into a bounded-width signed
// integer type T, failing with a ValueOverflowError if the decoded
// value does not fit in T.
func Int[T constraints.Signed](e *Element) (T, error) {
	v, err := e.integerValue(TagInteger, "INTEGER")
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newErr(KindValueOverflow, "INTEGER: value does not fit in target type")
	}
	i64 := v.Int64()
	t := T(i64)
	if int64(t) != i64 {
		return 0, newErr(KindValueOverflow, "INTEGER: value does not fit in target type")
	}
	return t, nil
}

// SetInt encodes a bounded-width signed integer v as an INTEGER.
func SetInt[T constraints.Signed](e *Element, v T) {
	e.setIntegerValue(TagInteger, big.NewInt(int64(v)))
}
