package word

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
)

func TestAddWraps(t *testing.T) {
	got := MaxWord().Add(One)
	require.True(t, got.IsZero())
}

func TestSubUnderflowWraps(t *testing.T) {
	got := Zero.Sub(One)
	require.Equal(t, MaxWord(), got)
}

func TestMulWraps(t *testing.T) {
	two := FromUint64(2)
	got := MaxWord().Add(One).Sub(One).Mul(two) // (2^256-1)*2 mod 2^256
	require.Equal(t, MaxWord().Sub(One), got)
}

func TestDivByZeroIsZero(t *testing.T) {
	require.True(t, FromUint64(10).Div(Zero).IsZero())
}

func TestModByZeroIsZero(t *testing.T) {
	require.True(t, FromUint64(10).Mod(Zero).IsZero())
}

func TestDivMod(t *testing.T) {
	a := FromUint64(17)
	b := FromUint64(5)
	require.Equal(t, FromUint64(3), a.Div(b))
	require.Equal(t, FromUint64(2), a.Mod(b))
}

// intMin is 2^255, the most negative two's-complement 256-bit value.
func intMin() Word {
	return FromUint64(1).Lsh(FromUint64(255))
}

func minusOne() Word {
	return Zero.Sub(One)
}

func TestSDivIntMinByMinusOneSaturates(t *testing.T) {
	got := intMin().SDiv(minusOne())
	require.Equal(t, intMin(), got)
}

func TestSDivByZeroIsZero(t *testing.T) {
	require.True(t, FromUint64(10).SDiv(Zero).IsZero())
}

func TestSModIntMinByMinusOneIsZero(t *testing.T) {
	got := intMin().SMod(minusOne())
	require.True(t, got.IsZero())
}

func TestSDivNegatives(t *testing.T) {
	// -10 / 3 == -3 (truncating division)
	negTen := Zero.Sub(FromUint64(10))
	three := FromUint64(3)
	got := negTen.SDiv(three)
	require.Equal(t, Zero.Sub(FromUint64(3)), got)
}

func TestAddModMulMod(t *testing.T) {
	a, b, m := FromUint64(10), FromUint64(10), FromUint64(8)
	require.Equal(t, FromUint64(4), a.AddMod(b, m))
	require.Equal(t, FromUint64(4), a.MulMod(b, m))
	require.True(t, a.AddMod(b, Zero).IsZero())
	require.True(t, a.MulMod(b, Zero).IsZero())
}

func TestExp(t *testing.T) {
	got := FromUint64(2).Exp(FromUint64(10))
	require.Equal(t, FromUint64(1024), got)
}

func TestBitwise(t *testing.T) {
	a := FromUint64(0b1100)
	b := FromUint64(0b1010)
	require.Equal(t, FromUint64(0b1000), a.And(b))
	require.Equal(t, FromUint64(0b1110), a.Or(b))
	require.Equal(t, FromUint64(0b0110), a.Xor(b))
	require.Equal(t, MaxWord().Sub(a), a.Not())
}

func TestLshRshBeyond255Zero(t *testing.T) {
	require.True(t, One.Lsh(FromUint64(256)).IsZero())
	require.True(t, One.Lsh(FromUint64(1000)).IsZero())
	require.True(t, MaxWord().Rsh(FromUint64(256)).IsZero())
}

func TestLshRsh(t *testing.T) {
	require.Equal(t, FromUint64(8), One.Lsh(FromUint64(3)))
	require.Equal(t, FromUint64(1), FromUint64(8).Rsh(FromUint64(3)))
}

func TestSarPositiveBeyond255IsZero(t *testing.T) {
	require.True(t, One.Sar(FromUint64(300)).IsZero())
}

func TestSarNegativeBeyond255IsMinusOne(t *testing.T) {
	got := minusOne().Sar(FromUint64(300))
	require.Equal(t, MaxWord(), got)
}

func TestSarSignExtends(t *testing.T) {
	// -8 >> 1 == -4
	negEight := Zero.Sub(FromUint64(8))
	got := negEight.Sar(One)
	require.Equal(t, Zero.Sub(FromUint64(4)), got)
}

func TestSignExtendNoOpBeyond31(t *testing.T) {
	v := FromUint64(0xff)
	require.Equal(t, v, FromUint64(31).SignExtend(v))
	require.Equal(t, v, FromUint64(32).SignExtend(v))
}

func TestSignExtendNegative(t *testing.T) {
	// sign-extending a single 0xff byte (back=0) should produce all-ones.
	v := FromUint64(0xff)
	got := FromUint64(0).SignExtend(v)
	require.Equal(t, MaxWord(), got)
}

func TestSignExtendPositive(t *testing.T) {
	v := FromUint64(0x7f)
	got := FromUint64(0).SignExtend(v)
	require.Equal(t, v, got)
}

func TestByteExtraction(t *testing.T) {
	v := FromUint64(0x0102030405060708)
	require.Equal(t, FromUint64(0x08), Byte(FromUint64(31), v))
	require.Equal(t, FromUint64(0x01), Byte(FromUint64(24), v))
}

func TestByteOutOfRangeIsZero(t *testing.T) {
	v := FromUint64(0xff)
	require.True(t, Byte(FromUint64(32), v).IsZero())
	require.True(t, Byte(FromUint64(1000), v).IsZero())
}

func TestBytes32FullsizeRoundTrip(t *testing.T) {
	var buf [32]byte
	for i := range buf {
		buf[i] = 0xa0 + byte(i)
	}
	require.Equal(t, buf, FromBytes(buf[:]).Bytes32())
}

func TestBytes32RoundTrip(t *testing.T) {
	v := FromUint64(0xdeadbeef)
	b := v.Bytes32()
	require.Equal(t, v, FromBytes(b[:]))
}

func TestBytesNoLeadingZeros(t *testing.T) {
	require.Equal(t, []byte{}, Zero.Bytes())
	require.Equal(t, []byte{0x01}, One.Bytes())
}

func TestHexRendersNoLeadingZeroDigits(t *testing.T) {
	require.Equal(t, "0x0", Zero.Hex())
	require.Equal(t, "0x2a", FromUint64(42).Hex())
}

func TestFromHexOddDigitCount(t *testing.T) {
	w, err := FromHex("0xabc")
	require.NoError(t, err)
	require.Equal(t, FromBytes([]byte{0x0a, 0xbc}), w)
}

func TestToBigRoundTrip(t *testing.T) {
	b := big.NewInt(123456789)
	require.Equal(t, b, FromBig(b).ToBig())
}

func TestUint64RoundTrip(t *testing.T) {
	w := FromUint64(9999)
	require.True(t, w.IsUint64())
	require.Equal(t, uint64(9999), w.Uint64())
	require.False(t, MaxWord().IsUint64())
}

func TestAddressRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x990ccf8a0cde606e3423b9c8e0e9e3c1b1a8c5d9")
	require.Equal(t, addr, FromAddress(addr).Address())
}

func TestHashRoundTrip(t *testing.T) {
	h := common.HexToHash("0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcd")
	require.Equal(t, h, FromHash(h).Hash())
}

func TestComparisons(t *testing.T) {
	a, b := FromUint64(5), FromUint64(10)
	require.True(t, a.Lt(b))
	require.True(t, b.Gt(a))
	require.True(t, a.Eq(FromUint64(5)))
	require.False(t, a.Eq(b))
}

func TestSignedComparisons(t *testing.T) {
	neg := minusOne()
	pos := One
	require.True(t, neg.Slt(pos))
	require.True(t, pos.Sgt(neg))
	// unsigned view disagrees: minusOne (all-ones) is numerically huge.
	require.True(t, pos.Lt(neg))
}
