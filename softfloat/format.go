// format.go - Host-independent number formatting in bases 2..36

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
	"errors"
	"math"
)

// MinBase and MaxBase bound the digit alphabet 0-9a-z.
const (
	MinBase     = 2
	MaxBase     = 36
	DefaultBase = 10 // the json spec only supports base 10
)

// max number of digits is base 2 with 64 digits
const maxIntegerBufferSize = 64

func digitChar(digit uint, uppercase bool) byte {
	if digit < 10 {
		return '0' + byte(digit)
	}
	if uppercase {
		return byte(digit) - 10 + 'A'
	}
	return byte(digit) - 10 + 'a'
}

// DigitValue returns the value of a digit character in the given base, or -1.
func DigitValue(ch byte, base uint) int {
	var v uint
	switch {
	case ch >= '0' && ch <= '9':
		v = uint(ch - '0')
	case ch >= 'a' && ch <= 'z':
		v = uint(ch-'a') + 0xA
	case ch >= 'A' && ch <= 'Z':
		v = uint(ch-'A') + 0xA
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return int(v)
}

func writeUint(emit func(byte), value uint64, base uint, minDigits int) {
	var buffer [maxIntegerBufferSize]byte
	used := 0
	for {
		buffer[used] = digitChar(uint(value%uint64(base)), false)
		used++
		value /= uint64(base)
		if value == 0 {
			break
		}
	}
	for used < minDigits && used < maxIntegerBufferSize {
		buffer[used] = '0'
		used++
	}
	for i := used - 1; i >= 0; i-- {
		emit(buffer[i])
	}
}

func writeInt(emit func(byte), value int64, base uint) {
	if value < 0 {
		emit('-')
		// negate as unsigned to survive the minimum value
		writeUint(emit, -uint64(value), base, 1)
		return
	}
	writeUint(emit, uint64(value), base, 1)
}

// AppendUint appends the base-b digits of value, zero padded to minDigits.
func AppendUint(dst []byte, value uint64, base uint, minDigits int) []byte {
	writeUint(func(ch byte) { dst = append(dst, ch) }, value, base, minDigits)
	return dst
}

// AppendInt appends the base-b digits of value with a leading '-' if negative.
func AppendInt(dst []byte, value int64, base uint) []byte {
	writeInt(func(ch byte) { dst = append(dst, ch) }, value, base)
	return dst
}

// bufferEmitter bounds writes to a fixed buffer and never writes past it.
type bufferEmitter struct {
	buf   []byte
	used  int
	limit int
}

func (b *bufferEmitter) emit(ch byte) {
	if b.used < b.limit {
		b.buf[b.used] = ch
		b.used++
	}
}

func finishBuffer(b *bufferEmitter, nullTerminate bool) int {
	if nullTerminate || b.used < len(b.buf) {
		if b.used < len(b.buf) {
			b.buf[b.used] = 0
		}
	}
	return b.used
}

// UintToBuffer formats into a fixed buffer, returning the bytes used excluding
// any terminator. With nullTerminate set, one byte is reserved for a NUL.
func UintToBuffer(value uint64, buf []byte, nullTerminate bool, base uint, minDigits int) int {
	if len(buf) == 0 {
		return 0
	}
	b := &bufferEmitter{buf: buf, limit: len(buf)}
	if nullTerminate {
		b.limit--
	}
	writeUint(b.emit, value, base, minDigits)
	return finishBuffer(b, nullTerminate)
}

// IntToBuffer is the signed counterpart of UintToBuffer.
func IntToBuffer(value int64, buf []byte, nullTerminate bool, base uint) int {
	if len(buf) == 0 {
		return 0
	}
	b := &bufferEmitter{buf: buf, limit: len(buf)}
	if nullTerminate {
		b.limit--
	}
	writeInt(b.emit, value, base)
	return finishBuffer(b, nullTerminate)
}

// FloatToBuffer is the float counterpart of UintToBuffer.
func FloatToBuffer(value float64, buf []byte, nullTerminate bool, base uint) int {
	if len(buf) == 0 {
		return 0
	}
	b := &bufferEmitter{buf: buf, limit: len(buf)}
	if nullTerminate {
		b.limit--
	}
	writeFloat(b.emit, value, base)
	return finishBuffer(b, nullTerminate)
}

var base2Logs = func() [MaxBase + 1]ExtendedFloat {
	var logs [MaxBase + 1]ExtendedFloat
	for i := range logs {
		logs[i] = FromUint64(uint64(i)).Log2()
	}
	return logs
}()

// exponentChar picks the scientific-notation marker: 'e' would be a digit in
// bases above 14, so hex uses 'h', octal 'o' and everything else 'E'.
func exponentChar(base uint) byte {
	switch base {
	case 10:
		return 'e'
	case 16:
		return 'h'
	case 8:
		return 'o'
	}
	return 'E'
}

// writeFloat is the ECMAScript ToString algorithm for numbers, generalized to
// an arbitrary base and computed entirely in ExtendedFloat so the output is
// identical on every host. It finds the smallest digit count k such that the
// emitted digits, scaled back, reproduce the input exactly.
func writeFloat(emit func(byte), valueIn float64, base uint) {
	value := FromFloat64(valueIn)
	baseF := FromUint64(uint64(base))
	invBaseF := One().Div(baseF)
	limit21 := FromUint64(21).Mul(base2Logs[10].Div(base2Logs[base])).Round().Int64()
	limit6 := FromUint64(6).Mul(base2Logs[10].Div(base2Logs[base])).Round().Int64()
	if value.IsNaN() {
		for _, ch := range []byte("NaN") {
			emit(ch)
		}
		return
	}
	if value.IsZero() {
		if value.SignBit() {
			emit('-')
		}
		emit('0')
		return
	}
	if value.IsInfinite() {
		if value.SignBit() {
			emit('-')
		}
		for _, ch := range []byte("Infinity") {
			emit(ch)
		}
		return
	}
	if value.SignBit() {
		emit('-')
		value = value.Neg()
		valueIn = -valueIn
	}
	// n such that base^(n-1) <= value < base^n
	nF := value.Log2().Div(base2Logs[base]).Add(One())
	n := nF.Floor().Int64()
	baseToTheN := Pow(baseF, n)
	baseToTheMinusN := One().Div(baseToTheN)
	scaledValue := value.Mul(baseToTheMinusN)
	// the epsilon absorbs round-off from the log-derived estimate
	if scaledValue.Add(One().ScalbN(-62)).Less(invBaseF) {
		n--
		baseToTheN = baseToTheN.Mul(invBaseF)
		baseToTheMinusN = baseToTheMinusN.Mul(baseF)
		scaledValue = value.Mul(baseToTheMinusN)
	} else if scaledValue.GreaterEq(One()) {
		n++
		baseToTheN = baseToTheN.Mul(baseF)
		baseToTheMinusN = baseToTheMinusN.Mul(invBaseF)
		scaledValue = value.Mul(baseToTheMinusN)
	}
	var k int64
	sF := One()
	baseToTheK := One()
	for sF.Less(TwoToThe64()) {
		k++
		baseToTheK = baseToTheK.Mul(baseF)
		sF = scaledValue.Mul(baseToTheK).Round()
		// scale back exactly as ParseFloat does: digits times base^(n-k)
		if valueIn == sF.Mul(Pow(baseF, n-k)).Float64() {
			break
		}
	}
	s := sF.Uint64()
	// rounding can carry into one more digit (s == base^k); the value is
	// then base^n, written as one fewer trailing zero and an exponent one up
	if sF.GreaterEq(baseToTheK) {
		s /= uint64(base)
		n++
	}
	var sDigits [maxIntegerBufferSize]byte
	sDigitsSize := 0
	writeUint(func(ch byte) {
		sDigits[sDigitsSize] = ch
		sDigitsSize++
	}, s, base, int(k))
	expChar := exponentChar(base)
	switch {
	case k <= n && n <= limit21:
		for i := 0; i < sDigitsSize; i++ {
			emit(sDigits[i])
		}
		for i := n - k; i > 0; i-- {
			emit('0')
		}
	case 0 < n && n <= limit21:
		for i := int64(0); i < n; i++ {
			emit(sDigits[i])
		}
		emit('.')
		for i := n; i < k; i++ {
			emit(sDigits[i])
		}
	case -limit6 < n && n <= 0:
		emit('0')
		emit('.')
		for i := -n; i > 0; i-- {
			emit('0')
		}
		for i := 0; i < sDigitsSize; i++ {
			emit(sDigits[i])
		}
	case k == 1:
		emit(sDigits[0])
		emit(expChar)
		if n-1 >= 0 {
			emit('+')
		}
		writeInt(emit, n-1, 10)
	default:
		emit(sDigits[0])
		emit('.')
		for i := int64(1); i < k; i++ {
			emit(sDigits[i])
		}
		emit(expChar)
		if n-1 >= 0 {
			emit('+')
		}
		writeInt(emit, n-1, 10)
	}
}

// AppendFloat appends the shortest base-b representation of value that parses
// back to the identical float64, signed zero included.
func AppendFloat(dst []byte, value float64, base uint) []byte {
	writeFloat(func(ch byte) { dst = append(dst, ch) }, value, base)
	return dst
}

// FormatFloat is AppendFloat into a fresh string.
func FormatFloat(value float64, base uint) string {
	return string(AppendFloat(nil, value, base))
}

var errSyntax = errors.New("invalid number syntax")

// ParseFloat parses the output of AppendFloat in the given base. The mantissa
// and the scaling power are recombined in ExtendedFloat, mirroring the writer,
// so formatted values round-trip exactly.
func ParseFloat(s string, base uint) (float64, error) {
	if base < MinBase || base > MaxBase {
		return 0, errSyntax
	}
	i := 0
	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}
	rest := s[i:]
	switch rest {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		if negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	// In bases above 14 the exponent marker is also a valid digit; the writer
	// always follows the marker with an explicit sign, which a digit never is,
	// so marker-then-sign ends the digit run.
	expChar := exponentChar(base)
	isExponentMarker := func(at int) bool {
		if s[at] != expChar && s[at] != upper(expChar) {
			return false
		}
		return at+1 < len(s) && (s[at+1] == '+' || s[at+1] == '-')
	}
	mantissa := Zero(false)
	gotDigit := false
	exponentOffset := int64(0)
	baseF := FromUint64(uint64(base))
	for i < len(s) && !isExponentMarker(i) {
		d := DigitValue(s[i], base)
		if d < 0 {
			break
		}
		mantissa = mantissa.Mul(baseF).Add(FromUint64(uint64(d)))
		gotDigit = true
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && !isExponentMarker(i) {
			d := DigitValue(s[i], base)
			if d < 0 {
				break
			}
			mantissa = mantissa.Mul(baseF).Add(FromUint64(uint64(d)))
			exponentOffset--
			gotDigit = true
			i++
		}
	}
	if !gotDigit {
		return 0, errSyntax
	}
	exponent := int64(0)
	if i < len(s) && (s[i] == expChar || s[i] == upper(expChar)) && i+1 < len(s) {
		j := i + 1
		expNegative := false
		if s[j] == '-' || s[j] == '+' {
			expNegative = s[j] == '-'
			j++
		}
		gotExpDigit := false
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			exponent = exponent*10 + int64(s[j]-'0')
			gotExpDigit = true
			j++
		}
		if !gotExpDigit {
			return 0, errSyntax
		}
		if expNegative {
			exponent = -exponent
		}
		i = j
	}
	if i != len(s) {
		return 0, errSyntax
	}
	value := mantissa.Mul(Pow(baseF, exponent+exponentOffset))
	if negative {
		value = value.Neg()
	}
	return value.Float64(), nil
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
