// literal_string.go - Byte view over literal strings packed into word arrays

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

package spirv

// LiteralString is a random-access view of UTF-8 bytes stored four to a word
// inside a host-order word array, read in ascending byte-address order. It is
// O(1) to construct and O(n) only when materialized.
type LiteralString struct {
	words     []Word
	byteCount int
}

// NewLiteralString views byteCount bytes of the given words. The caller keeps
// ownership of the word array.
func NewLiteralString(words []Word, byteCount int) LiteralString {
	return LiteralString{words: words, byteCount: byteCount}
}

// ParseLiteralString reads a null-terminated literal starting at the given
// operand words. It returns the view (terminator excluded) and the number of
// words the literal occupies, padding included; ok is false when no
// terminator is present.
func ParseLiteralString(words []Word) (s LiteralString, wordCount int, ok bool) {
	for i := 0; i < 4*len(words); i++ {
		if byteAt(words, i) == 0 {
			return LiteralString{words: words, byteCount: i}, i/4 + 1, true
		}
	}
	return LiteralString{}, 0, false
}

func byteAt(words []Word, i int) byte {
	return byte(words[i/4] >> (8 * (i % 4)))
}

func (s LiteralString) Len() int {
	return s.byteCount
}

// At returns the i'th byte; i must be below Len.
func (s LiteralString) At(i int) byte {
	return byteAt(s.words, i)
}

// WordCount returns the words the literal occupies including the terminator
// and padding.
func (s LiteralString) WordCount() int {
	return s.byteCount/4 + 1
}

// String materializes the view into an owned string.
func (s LiteralString) String() string {
	buffer := make([]byte, s.byteCount)
	for i := range buffer {
		buffer[i] = s.At(i)
	}
	return string(buffer)
}

// Compare orders two views lexicographically, returning -1, 0 or 1.
func (s LiteralString) Compare(other LiteralString) int {
	n := s.byteCount
	if other.byteCount < n {
		n = other.byteCount
	}
	for i := 0; i < n; i++ {
		a, b := s.At(i), other.At(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.byteCount < other.byteCount:
		return -1
	case s.byteCount > other.byteCount:
		return 1
	}
	return 0
}

// CompareString orders the view against a plain string.
func (s LiteralString) CompareString(other string) int {
	n := s.byteCount
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		a, b := s.At(i), other[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.byteCount < len(other):
		return -1
	case s.byteCount > len(other):
		return 1
	}
	return 0
}

// EqualString reports equality with a plain string without materializing.
func (s LiteralString) EqualString(other string) bool {
	return s.byteCount == len(other) && s.CompareString(other) == 0
}
