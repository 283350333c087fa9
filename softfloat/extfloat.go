// extfloat.go - Extended-precision software float (64-bit mantissa, 16-bit exponent)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionVulkan

License: GPLv3 or later
*/

package softfloat

import (
	"math"
	"math/bits"
)

// ExtendedFloat is an IEEE-style binary float with a full 64-bit mantissa, a
// 16-bit biased exponent and a sign bit. A normalized nonzero value keeps the
// leading 1 explicit in mantissa bit 63, so every finite float64 converts in
// and back out exactly. All arithmetic rounds to nearest, ties to even, on the
// final extracted 64-bit mantissa.
//
// Encoding:
//
//	exponent == 0x0000, mantissa == 0  ->  zero (signed)
//	exponent == 0x0000, mantissa != 0  ->  denormal
//	exponent == 0xFFFF, mantissa == 0  ->  infinity
//	exponent == 0xFFFF, mantissa != 0  ->  NaN
type ExtendedFloat struct {
	Mantissa uint64
	Exponent uint16
	Sign     bool
}

const (
	infinityNaNExponent = 0xFFFF
	exponentBias        = 0x7FFF

	normalizedMantissaMin = 0x8000000000000000
)

// Zero returns a signed zero.
func Zero(sign bool) ExtendedFloat {
	return ExtendedFloat{Sign: sign}
}

// Infinity returns a signed infinity.
func Infinity(sign bool) ExtendedFloat {
	return ExtendedFloat{Exponent: infinityNaNExponent, Sign: sign}
}

// NaN returns the canonical quiet NaN.
func NaN() ExtendedFloat {
	return ExtendedFloat{Mantissa: 1, Exponent: infinityNaNExponent}
}

// One returns 1.0.
func One() ExtendedFloat {
	return ExtendedFloat{Mantissa: normalizedMantissaMin, Exponent: exponentBias}
}

// TwoToThe64 returns 2^64.
func TwoToThe64() ExtendedFloat {
	return ExtendedFloat{Mantissa: normalizedMantissaMin, Exponent: exponentBias + 64}
}

func normalize64(mantissa uint64, exponent uint16, sign bool) ExtendedFloat {
	if exponent == infinityNaNExponent {
		return ExtendedFloat{Mantissa: mantissa, Exponent: exponent, Sign: sign}
	}
	if mantissa == 0 {
		return Zero(sign)
	}
	shift := uint16(bits.LeadingZeros64(mantissa))
	if shift > 0 && exponent >= shift {
		return ExtendedFloat{Mantissa: mantissa << shift, Exponent: exponent - shift, Sign: sign}
	}
	return ExtendedFloat{Mantissa: mantissa, Exponent: exponent, Sign: sign}
}

func normalize128(mantissa UInt128, exponent uint16, sign bool) ExtendedFloat {
	if exponent == infinityNaNExponent {
		m := uint64(0)
		if !mantissa.IsZero() {
			m = 1
		}
		return ExtendedFloat{Mantissa: m, Exponent: infinityNaNExponent, Sign: sign}
	}
	if mantissa.IsZero() {
		return Zero(sign)
	}
	shift := mantissa.LeadingZeros()
	if shift > 0 && uint(exponent) >= shift {
		return ExtendedFloat{Mantissa: mantissa.Shl(shift).Hi, Exponent: exponent - uint16(shift), Sign: sign}
	}
	return ExtendedFloat{Mantissa: mantissa.Hi, Exponent: exponent, Sign: sign}
}

// FromUint64 converts an unsigned integer exactly.
func FromUint64(v uint64) ExtendedFloat {
	return normalize64(v, exponentBias+63, false)
}

// FromInt64 converts a signed integer exactly.
func FromInt64(v int64) ExtendedFloat {
	if v < 0 {
		return normalize64(-uint64(v), exponentBias+63, true)
	}
	return normalize64(uint64(v), exponentBias+63, false)
}

// FromFloat64 converts a host double exactly; every finite float64 fits.
func FromFloat64(value float64) ExtendedFloat {
	sign := math.Signbit(value)
	value = math.Abs(value)
	if math.IsNaN(value) {
		v := NaN()
		v.Sign = sign
		return v
	}
	if math.IsInf(value, 0) {
		return Infinity(sign)
	}
	if value == 0 {
		return Zero(sign)
	}
	log2Value := math.Ilogb(value)
	var exponent uint16
	if log2Value <= -exponentBias {
		exponent = 0
	} else {
		exponent = uint16(log2Value + exponentBias)
	}
	value = math.Ldexp(value, 63-int(exponent)+exponentBias)
	return ExtendedFloat{Mantissa: uint64(value), Exponent: exponent, Sign: sign}
}

// FromHalfBits converts an IEEE half-precision encoding.
func FromHalfBits(value uint16) ExtendedFloat {
	sign := value&0x8000 != 0
	exponentField := (value & 0x7C00) >> 10
	mantissaField := value & 0x3FF
	if exponentField == 0x1F {
		if mantissaField != 0 {
			return NaN()
		}
		return Infinity(sign)
	}
	if exponentField != 0 {
		mantissaField |= 0x400 // add in implicit 1
	} else {
		exponentField = 1
	}
	return normalize64(uint64(mantissaField),
		uint16(int(exponentField)-15-10+exponentBias+63), sign)
}

// Float64 converts to the nearest host double.
func (v ExtendedFloat) Float64() float64 {
	if v.Exponent == infinityNaNExponent {
		retval := math.Inf(1)
		if v.Mantissa != 0 {
			retval = math.NaN()
		}
		if v.Sign {
			return -retval
		}
		return retval
	}
	if v.IsZero() {
		if v.Sign {
			return math.Copysign(0, -1)
		}
		return 0
	}
	value := math.Ldexp(float64(v.Mantissa), int(v.Exponent)-exponentBias-63)
	if v.Sign {
		return -value
	}
	return value
}

func (v ExtendedFloat) IsNaN() bool {
	return v.Exponent == infinityNaNExponent && v.Mantissa != 0
}

func (v ExtendedFloat) IsInfinite() bool {
	return v.Exponent == infinityNaNExponent && v.Mantissa == 0
}

func (v ExtendedFloat) IsFinite() bool {
	return v.Exponent != infinityNaNExponent
}

func (v ExtendedFloat) IsNormal() bool {
	return v.Exponent != infinityNaNExponent && v.Exponent != 0
}

func (v ExtendedFloat) IsDenormal() bool {
	return v.Exponent == 0 && v.Mantissa != 0
}

func (v ExtendedFloat) IsZero() bool {
	return v.Exponent == 0 && v.Mantissa == 0
}

func (v ExtendedFloat) SignBit() bool {
	return v.Sign
}

// Neg flips the sign, NaN included.
func (v ExtendedFloat) Neg() ExtendedFloat {
	v.Sign = !v.Sign
	return v
}

// shiftInto128 positions a 64-bit mantissa in the high half of a 128-bit
// accumulator, then shifts right; shifts of 128 or more flush to zero.
func shiftInto128(a uint64, shift uint) UInt128 {
	if shift >= 128 {
		return UInt128{}
	}
	return U128(a, 0).Shr(shift)
}

// finalRound extracts a 64-bit mantissa from a 65.63 fixed-point intermediate
// with round-to-nearest-even.
func finalRound(v UInt128) UInt128 {
	if v.Lo == normalizedMantissaMin && v.Hi&1 == 0 {
		return U128From64(v.Hi)
	}
	return v.Shr(1).Add(U128From64(0x4000000000000000)).Shr(63)
}

func addMagnitudes(aMantissa uint64, aExponent uint16, bMantissa uint64, bExponent uint16, sign bool) ExtendedFloat {
	maxExponent := aExponent
	if bExponent > maxExponent {
		maxExponent = bExponent
	}
	sum := shiftInto128(aMantissa, uint(maxExponent-aExponent)+1).
		Add(shiftInto128(bMantissa, uint(maxExponent-bExponent)+1))
	if sum.Cmp(U128(normalizedMantissaMin, 0)) >= 0 {
		if maxExponent+1 == infinityNaNExponent {
			return Infinity(sign)
		}
		return normalize128(finalRound(sum), maxExponent+65, sign)
	}
	return normalize128(finalRound(sum.Shl(1)), maxExponent+64, sign)
}

func subMagnitudes(aMantissa uint64, aExponent uint16, bMantissa uint64, bExponent uint16) ExtendedFloat {
	maxExponent := aExponent
	if bExponent > maxExponent {
		maxExponent = bExponent
	}
	a128 := shiftInto128(aMantissa, uint(maxExponent-aExponent))
	b128 := shiftInto128(bMantissa, uint(maxExponent-bExponent))
	cmp := a128.Cmp(b128)
	if cmp == 0 {
		return Zero(false)
	}
	var diff UInt128
	sign := false
	if cmp < 0 {
		diff = b128.Sub(a128)
		sign = true
	} else {
		diff = a128.Sub(b128)
	}
	shift := diff.LeadingZeros()
	if shift > uint(maxExponent) {
		shift = uint(maxExponent)
	}
	return normalize128(finalRound(diff.Shl(shift)), maxExponent-uint16(shift)+64, sign)
}

// Add returns a+b.
func (a ExtendedFloat) Add(b ExtendedFloat) ExtendedFloat {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsInfinite():
		if b.IsInfinite() && a.Sign != b.Sign {
			return NaN()
		}
		return a
	case b.IsInfinite():
		return b
	case a.IsZero():
		if b.IsZero() {
			return Zero(a.Sign && b.Sign)
		}
		return b
	case b.IsZero():
		return a
	case a.Sign == b.Sign:
		return addMagnitudes(a.Mantissa, a.Exponent, b.Mantissa, b.Exponent, a.Sign)
	case a.Sign:
		return subMagnitudes(b.Mantissa, b.Exponent, a.Mantissa, a.Exponent)
	default:
		return subMagnitudes(a.Mantissa, a.Exponent, b.Mantissa, b.Exponent)
	}
}

// Sub returns a-b.
func (a ExtendedFloat) Sub(b ExtendedFloat) ExtendedFloat {
	return a.Add(b.Neg())
}

// roundScaled reduces a 128-bit product/quotient at unbiased scale `exponent`
// back to a normalized value, saturating to infinity or flushing to zero.
func roundScaled(mantissa UInt128, exponent int32, sign bool) ExtendedFloat {
	switch {
	case exponent >= infinityNaNExponent:
		return Infinity(sign)
	case exponent <= -128:
		return Zero(sign)
	case exponent < 0:
		return normalize128(finalRound(mantissa.Shr(uint(-exponent))), 64, sign)
	default:
		return normalize128(finalRound(mantissa), uint16(exponent)+64, sign)
	}
}

// Mul returns a*b.
func (a ExtendedFloat) Mul(b ExtendedFloat) ExtendedFloat {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsInfinite():
		if b.IsZero() {
			return NaN()
		}
		return Infinity(a.Sign != b.Sign)
	case b.IsInfinite():
		if a.IsZero() {
			return NaN()
		}
		return Infinity(a.Sign != b.Sign)
	}
	sign := a.Sign != b.Sign
	product := Mul64(a.Mantissa, b.Mantissa)
	exponent := int32(a.Exponent) + int32(b.Exponent) - exponentBias + 1
	if product.IsZero() {
		return Zero(sign)
	}
	shift := product.LeadingZeros()
	return roundScaled(product.Shl(shift), exponent-int32(shift), sign)
}

// Div returns a/b. 0/0 and inf/inf are NaN; x/0 is infinity.
func (a ExtendedFloat) Div(b ExtendedFloat) ExtendedFloat {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsInfinite():
		if b.IsInfinite() {
			return NaN()
		}
		return Infinity(a.Sign != b.Sign)
	case b.IsZero():
		if a.IsZero() {
			return NaN()
		}
		return Infinity(a.Sign != b.Sign)
	case b.IsInfinite() || a.IsZero():
		return Zero(a.Sign != b.Sign)
	}
	sign := a.Sign != b.Sign
	aShift := uint(bits.LeadingZeros64(a.Mantissa))
	bShift := uint(bits.LeadingZeros64(b.Mantissa))
	aMantissa := a.Mantissa << aShift
	bMantissa := b.Mantissa << bShift
	exponent := int32(a.Exponent) - int32(aShift) - (int32(b.Exponent) - int32(bShift)) + exponentBias - 1
	quo, rem := U128(aMantissa, 0).DivMod(U128From64(bMantissa))
	// quotient has 64 or 65 significant bits; the doubled remainder against the
	// denominator supplies the sticky comparison for the round bit
	shift := quo.LeadingZeros()
	roundCompare := U128From64(bMantissa).Cmp(rem.Shl(1))
	mantissa := quo.Shl(2).Or(U128From64(uint64(2 - roundCompare))).Shl(shift - 2)
	return roundScaled(mantissa, exponent-int32(shift)+64, sign)
}

// Eq reports exact equality; NaN never compares equal, zeros of both signs do.
func (a ExtendedFloat) Eq(b ExtendedFloat) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() {
		return b.IsZero()
	}
	return a.Exponent == b.Exponent && a.Mantissa == b.Mantissa && a.Sign == b.Sign
}

func compareFinite(a, b ExtendedFloat) int {
	if a.IsZero() {
		if b.IsZero() {
			return 0
		}
		if b.Sign {
			return 1
		}
		return -1
	}
	if b.IsZero() {
		if a.Sign {
			return -1
		}
		return 1
	}
	if a.Sign != b.Sign {
		if a.Sign {
			return -1
		}
		return 1
	}
	if a.Exponent != b.Exponent {
		if (a.Exponent < b.Exponent) != a.Sign {
			return -1
		}
		return 1
	}
	if a.Mantissa == b.Mantissa {
		return 0
	}
	if (a.Mantissa < b.Mantissa) != a.Sign {
		return -1
	}
	return 1
}

// Cmp returns -1, 0 or 1; ok is false when either side is NaN.
func (a ExtendedFloat) Cmp(b ExtendedFloat) (result int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	return compareFinite(a, b), true
}

func (a ExtendedFloat) Less(b ExtendedFloat) bool {
	r, ok := a.Cmp(b)
	return ok && r < 0
}

func (a ExtendedFloat) LessEq(b ExtendedFloat) bool {
	r, ok := a.Cmp(b)
	return ok && r <= 0
}

func (a ExtendedFloat) Greater(b ExtendedFloat) bool {
	r, ok := a.Cmp(b)
	return ok && r > 0
}

func (a ExtendedFloat) GreaterEq(b ExtendedFloat) bool {
	r, ok := a.Cmp(b)
	return ok && r >= 0
}

// integer truncation toward zero of the magnitude
func truncMagnitude(mantissa uint64, exponent uint16) ExtendedFloat {
	if exponent < exponentBias {
		return Zero(false)
	}
	if exponent >= exponentBias+63 {
		return ExtendedFloat{Mantissa: mantissa, Exponent: exponent}
	}
	return FromUint64(U128(mantissa, 0).Shr(uint(exponentBias - exponent + 63)).Hi)
}

// smallest integer not below the magnitude
func ceilMagnitude(mantissa uint64, exponent uint16) ExtendedFloat {
	if exponent < exponentBias {
		return One()
	}
	if exponent >= exponentBias+63 {
		return ExtendedFloat{Mantissa: mantissa, Exponent: exponent}
	}
	shifted := U128(mantissa, 0).Shr(uint(exponentBias - exponent + 63))
	if shifted.Lo != 0 {
		if shifted.Hi == ^uint64(0) {
			return TwoToThe64()
		}
		return FromUint64(shifted.Hi + 1)
	}
	return FromUint64(shifted.Hi)
}

func roundMagnitude(mantissa uint64, exponent uint16) ExtendedFloat {
	if int32(exponent) < exponentBias-2 {
		return Zero(false)
	}
	if exponent >= exponentBias+63 {
		return ExtendedFloat{Mantissa: mantissa, Exponent: exponent}
	}
	v := U128(mantissa, 0).Shr(uint(exponentBias-exponent+64)).
		Add(U128From64(0x4000000000000000)).Shr(63)
	return normalize128(v, exponentBias+127, false)
}

// Floor rounds toward negative infinity.
func (v ExtendedFloat) Floor() ExtendedFloat {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	if v.Sign {
		return ceilMagnitude(v.Mantissa, v.Exponent).Neg()
	}
	return truncMagnitude(v.Mantissa, v.Exponent)
}

// Ceil rounds toward positive infinity.
func (v ExtendedFloat) Ceil() ExtendedFloat {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	if v.Sign {
		return truncMagnitude(v.Mantissa, v.Exponent).Neg()
	}
	return ceilMagnitude(v.Mantissa, v.Exponent)
}

// Trunc rounds toward zero.
func (v ExtendedFloat) Trunc() ExtendedFloat {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	if v.Sign {
		return truncMagnitude(v.Mantissa, v.Exponent).Neg()
	}
	return truncMagnitude(v.Mantissa, v.Exponent)
}

// Round rounds half away from zero.
func (v ExtendedFloat) Round() ExtendedFloat {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	if v.Sign {
		return roundMagnitude(v.Mantissa, v.Exponent).Neg()
	}
	return roundMagnitude(v.Mantissa, v.Exponent)
}

// Uint64 converts with saturation; NaN converts to 0, negatives clamp to 0.
func (v ExtendedFloat) Uint64() uint64 {
	switch {
	case v.IsNaN():
		return 0
	case v.IsInfinite():
		if v.Sign {
			return 0
		}
		return ^uint64(0)
	case v.Exponent < exponentBias || v.Sign:
		return 0
	case v.GreaterEq(TwoToThe64()):
		return ^uint64(0)
	}
	return U128(v.Mantissa, 0).Shr(uint(exponentBias - v.Exponent + 63)).Hi
}

// Int64 converts with saturation; NaN converts to 0.
func (v ExtendedFloat) Int64() int64 {
	if v.IsNaN() {
		return 0
	}
	if v.Sign {
		u := v.Neg().Uint64()
		if u > normalizedMantissaMin {
			return math.MinInt64
		}
		return -int64(u)
	}
	u := v.Uint64()
	if u >= normalizedMantissaMin {
		return math.MaxInt64
	}
	return int64(u)
}

// Pow raises base to an integer power by binary exponentiation; negative
// exponents go through the reciprocal.
func Pow(base ExtendedFloat, exponent int64) ExtendedFloat {
	if exponent < 0 {
		return powUint(One().Div(base), uint64(-exponent))
	}
	return powUint(base, uint64(exponent))
}

func powUint(base ExtendedFloat, exponent uint64) ExtendedFloat {
	current := One()
	for exponent != 0 {
		if exponent == 1 {
			return current.Mul(base)
		}
		if exponent == 2 {
			return current.Mul(base.Mul(base))
		}
		if exponent&1 != 0 {
			current = current.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return current
}

// ILogB returns the unbiased base-2 exponent. Zero reports math.MinInt32,
// NaN and infinity report math.MaxInt32, matching the stdlib convention.
func (v ExtendedFloat) ILogB() int {
	switch {
	case v.IsNaN():
		return math.MaxInt32
	case v.IsZero():
		return math.MinInt32
	case v.IsInfinite():
		return math.MaxInt32
	}
	return int(v.Exponent) - exponentBias - bits.LeadingZeros64(v.Mantissa)
}

// ScalbN returns v*2^exponent, exactly when no overflow/underflow occurs.
func (v ExtendedFloat) ScalbN(exponent int64) ExtendedFloat {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	e := int64(v.Exponent) + exponent
	switch {
	case e >= infinityNaNExponent:
		return Infinity(v.Sign)
	case e <= -128:
		return Zero(v.Sign)
	case e < 0:
		return normalize128(finalRound(U128(v.Mantissa, 0).Shr(uint(-e))), 64, v.Sign)
	default:
		return normalize128(finalRound(U128(v.Mantissa, 0)), uint16(e)+64, v.Sign)
	}
}

// log2Round collapses a squared 128-bit mantissa back to 64 bits, ties to even.
func log2Round(mantissa UInt128) uint64 {
	if ^mantissa.Hi == 0 || (mantissa.Hi&1 == 0 && mantissa.Lo == normalizedMantissaMin) {
		return mantissa.Hi
	}
	return mantissa.Add(U128From64(normalizedMantissaMin)).Hi
}

// log2Fraction extracts fraction bits of log2 by iterated squaring: square the
// mantissa, shift the carry-out bit into the result, repeat.
func log2Fraction(mantissa uint64, bitsLeft uint) UInt128 {
	squared := Mul64(mantissa, mantissa)
	var rec UInt128
	if bitsLeft > 0 {
		shift := uint(1)
		if squared.Hi&normalizedMantissaMin != 0 {
			shift = 0
		}
		rec = log2Fraction(log2Round(squared.Shl(shift)), bitsLeft-1).Shr(1)
	}
	return rec.Or(U128(squared.Hi&normalizedMantissaMin, 0))
}

// Log2 returns the base-2 logarithm; the fraction carries 67 computed bits so
// the final 64-bit mantissa is correctly rounded in the common case.
func (v ExtendedFloat) Log2() ExtendedFloat {
	switch {
	case v.IsNaN():
		return v
	case v.IsZero():
		return Infinity(true)
	case v.Sign:
		return NaN()
	case v.IsInfinite():
		return v
	}
	shift := uint(bits.LeadingZeros64(v.Mantissa))
	fraction := log2Fraction(v.Mantissa<<shift, 67)
	return normalize128(finalRound(fraction), exponentBias-1+64, false).
		Add(FromInt64(int64(v.Exponent) - exponentBias - int64(shift)))
}

// log10(2) and ln(2) as pre-normalized mantissas
func log10Of2() ExtendedFloat {
	return ExtendedFloat{Mantissa: 0x9A209A84FBCFF799, Exponent: exponentBias - 2}
}

func logOf2() ExtendedFloat {
	return ExtendedFloat{Mantissa: 0xB17217F7D1CF79AC, Exponent: exponentBias - 1}
}

// Log10 returns the base-10 logarithm.
func (v ExtendedFloat) Log10() ExtendedFloat {
	return v.Log2().Mul(log10Of2())
}

// Log returns the natural logarithm.
func (v ExtendedFloat) Log() ExtendedFloat {
	return v.Log2().Mul(logOf2())
}
