// uint128.go - 128-bit unsigned integer arithmetic for the extended float core

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

import "math/bits"

// UInt128 is an unsigned 128-bit integer. It backs the extended float's
// double-width mantissa products and quotients.
type UInt128 struct {
	Hi, Lo uint64
}

// U128 builds a UInt128 from its high and low halves.
func U128(hi, lo uint64) UInt128 {
	return UInt128{Hi: hi, Lo: lo}
}

// U128From64 builds a UInt128 holding a 64-bit value.
func U128From64(lo uint64) UInt128 {
	return UInt128{Lo: lo}
}

func (a UInt128) Add(b UInt128) UInt128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return UInt128{Hi: hi, Lo: lo}
}

func (a UInt128) Sub(b UInt128) UInt128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return UInt128{Hi: hi, Lo: lo}
}

// Mul returns the low 128 bits of a*b.
func (a UInt128) Mul(b UInt128) UInt128 {
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	hi += a.Hi*b.Lo + a.Lo*b.Hi
	return UInt128{Hi: hi, Lo: lo}
}

// Mul64 returns the full 128-bit product of two 64-bit values.
func Mul64(a, b uint64) UInt128 {
	hi, lo := bits.Mul64(a, b)
	return UInt128{Hi: hi, Lo: lo}
}

func (a UInt128) Neg() UInt128 {
	if a.Lo != 0 {
		return UInt128{Hi: ^a.Hi, Lo: -a.Lo}
	}
	return UInt128{Hi: -a.Hi}
}

func (a UInt128) Or(b UInt128) UInt128 {
	return UInt128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo}
}

// Shl shifts left; the shift amount must be below 128.
func (a UInt128) Shl(n uint) UInt128 {
	switch {
	case n == 0:
		return a
	case n < 64:
		return UInt128{Hi: a.Hi<<n | a.Lo>>(64-n), Lo: a.Lo << n}
	case n == 64:
		return UInt128{Hi: a.Lo}
	default:
		return UInt128{Hi: a.Lo << (n - 64)}
	}
}

// Shr shifts right; the shift amount must be below 128.
func (a UInt128) Shr(n uint) UInt128 {
	switch {
	case n == 0:
		return a
	case n < 64:
		return UInt128{Hi: a.Hi >> n, Lo: a.Lo>>n | a.Hi<<(64-n)}
	case n == 64:
		return UInt128{Lo: a.Hi}
	default:
		return UInt128{Lo: a.Hi >> (n - 64)}
	}
}

func (a UInt128) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// Cmp returns -1, 0 or 1.
func (a UInt128) Cmp(b UInt128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

func (a UInt128) Less(b UInt128) bool {
	return a.Cmp(b) < 0
}

func (a UInt128) LeadingZeros() uint {
	if a.Hi == 0 {
		return 64 + uint(bits.LeadingZeros64(a.Lo))
	}
	return uint(bits.LeadingZeros64(a.Hi))
}

func (a UInt128) TrailingZeros() uint {
	if a.Lo == 0 {
		return 64 + uint(bits.TrailingZeros64(a.Hi))
	}
	return uint(bits.TrailingZeros64(a.Lo))
}

const (
	divDigitCount = 4
	divDigitBits  = 32
	divDigitMax   = 1<<divDigitBits - 1
)

// DivMod computes the quotient and remainder of a/b. The long-division path is
// Algorithm D (Knuth, TAOCP vol. 2, 4.3.1) over 32-bit digits. Division by zero
// is a precondition violation.
func (a UInt128) DivMod(b UInt128) (quo, rem UInt128) {
	numerator := [divDigitCount]uint32{
		uint32(a.Hi >> divDigitBits),
		uint32(a.Hi & divDigitMax),
		uint32(a.Lo >> divDigitBits),
		uint32(a.Lo & divDigitMax),
	}
	denominator := [divDigitCount]uint32{
		uint32(b.Hi >> divDigitBits),
		uint32(b.Hi & divDigitMax),
		uint32(b.Lo >> divDigitBits),
		uint32(b.Lo & divDigitMax),
	}
	var quotient, remainder [divDigitCount]uint32
	m := divDigitCount
	for i := 0; i < divDigitCount; i++ {
		if denominator[i] != 0 {
			m = i
			break
		}
	}
	n := divDigitCount - m
	if n <= 1 {
		// single-digit denominator: plain short division
		var current uint32
		for i := 0; i < divDigitCount; i++ {
			value := uint64(current)<<divDigitBits | uint64(numerator[i])
			quotient[i] = uint32(value / uint64(denominator[divDigitCount-1]))
			current = uint32(value % uint64(denominator[divDigitCount-1]))
		}
		remainder[divDigitCount-1] = current
	} else {
		log2D := uint(bits.LeadingZeros32(denominator[m]))
		var u [divDigitCount + 1]uint32
		u[divDigitCount] = uint32(uint64(numerator[divDigitCount-1]) << log2D & divDigitMax)
		u[0] = uint32(uint64(numerator[0]) << log2D >> divDigitBits & divDigitMax)
		for i := 1; i < divDigitCount; i++ {
			value := uint64(numerator[i-1])<<divDigitBits | uint64(numerator[i])
			value <<= log2D
			u[i] = uint32(value >> divDigitBits & divDigitMax)
		}
		var v [divDigitCount + 1]uint32
		v[n] = uint32(uint64(denominator[divDigitCount-1]) << log2D & divDigitMax)
		for i := 1; i < n; i++ {
			value := uint64(denominator[m+i-1])<<divDigitBits | uint64(denominator[m+i])
			value <<= log2D
			v[i] = uint32(value >> divDigitBits & divDigitMax)
			quotient[i-1] = 0
		}
		for j := 0; j <= m; j++ {
			var qHat uint64
			if u[j] == v[1] {
				qHat = divDigitMax
			} else {
				qHat = (uint64(u[j])<<divDigitBits | uint64(u[j+1])) / uint64(v[1])
			}
			{
				lhs := uint64(v[2]) * qHat
				rhsHigh := (uint64(u[j])<<divDigitBits | uint64(u[j+1])) - qHat*uint64(v[1])
				rhsLow := u[j+2]
				if rhsHigh < 1<<divDigitBits && lhs > rhsHigh<<divDigitBits|uint64(rhsLow) {
					qHat--
					lhs -= uint64(v[2])
					rhsHigh += uint64(v[1])
					if rhsHigh < 1<<divDigitBits && lhs > rhsHigh<<divDigitBits|uint64(rhsLow) {
						qHat--
					}
				}
			}
			borrow := false
			var mulCarry uint32
			for i := n; i > 0; i-- {
				product := qHat*uint64(v[i]) + uint64(mulCarry)
				mulCarry = uint32(product >> divDigitBits)
				product &= divDigitMax
				digit := uint64(u[j+i]) - product
				if borrow {
					digit--
				}
				borrow = digit != digit&divDigitMax
				u[j+i] = uint32(digit & divDigitMax)
			}
			digit := uint64(u[j]) - uint64(mulCarry)
			if borrow {
				digit--
			}
			borrow = digit != digit&divDigitMax
			u[j] = uint32(digit & divDigitMax)
			qj := uint32(qHat)
			if borrow {
				// qHat was one too large; add the denominator back
				qj--
				carry := false
				for i := n; i > 0; i-- {
					digit := uint64(u[j+i]) + uint64(v[i])
					if carry {
						digit++
					}
					carry = digit != digit&divDigitMax
					u[j+i] = uint32(digit & divDigitMax)
				}
				if carry {
					u[j] = uint32((uint64(u[j]) + 1) & divDigitMax)
				}
			}
			quotient[j+n-1] = qj
		}
		for i := 0; i < divDigitCount; i++ {
			value := uint64(u[i])<<divDigitBits | uint64(u[i+1])
			remainder[i] = uint32(value >> log2D)
		}
	}
	quo = U128(uint64(quotient[0])<<divDigitBits|uint64(quotient[1]),
		uint64(quotient[2])<<divDigitBits|uint64(quotient[3]))
	rem = U128(uint64(remainder[0])<<divDigitBits|uint64(remainder[1]),
		uint64(remainder[2])<<divDigitBits|uint64(remainder[3]))
	return quo, rem
}

func (a UInt128) Div(b UInt128) UInt128 {
	quo, _ := a.DivMod(b)
	return quo
}

func (a UInt128) Mod(b UInt128) UInt128 {
	_, rem := a.DivMod(b)
	return rem
}
