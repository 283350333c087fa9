// loader.go - SPIR-V binary loading with endian detection

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

// Package spirv reads SPIR-V binaries: endian-detected word streams, the
// module header, instruction iteration, and in-place literal string views.
package spirv

import (
	"errors"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Word is one 32-bit SPIR-V word in host order.
type Word uint32

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber Word = 0x07230203

var (
	ErrTruncated = errors.New("spirv: file size is not a multiple of the word size")
	ErrBadMagic  = errors.New("spirv: first word is not the magic number")
	ErrTooShort  = errors.New("spirv: missing module header")
)

// Header is the five-word module header.
type Header struct {
	Version   Word // high byte-pair is major.minor
	Generator Word
	Bound     Word
	Schema    Word
}

// HeaderWordCount is the number of words before the first instruction.
const HeaderWordCount = 5

func (h Header) VersionMajor() uint32 {
	return uint32(h.Version) >> 16 & 0xFF
}

func (h Header) VersionMinor() uint32 {
	return uint32(h.Version) >> 8 & 0xFF
}

// Module is a decoded SPIR-V binary with every word in host order.
type Module struct {
	Header Header
	Words  []Word // full word array, header included
}

// Instructions returns the words after the header.
func (m *Module) Instructions() []Word {
	return m.Words[HeaderWordCount:]
}

func swapWord(w Word) Word {
	return w<<24 | w<<8&0xFF0000 | w>>8&0xFF00 | w>>24
}

// Decode converts raw bytes to a host-order module. The byte order is
// detected from the magic word: a byte-reversed magic means every word of the
// file is byte-reversed.
func Decode(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, ErrTruncated
	}
	words := make([]Word, len(data)/4)
	for i := range words {
		words[i] = Word(data[4*i]) | Word(data[4*i+1])<<8 |
			Word(data[4*i+2])<<16 | Word(data[4*i+3])<<24
	}
	if len(words) < HeaderWordCount {
		return nil, ErrTooShort
	}
	switch words[0] {
	case MagicNumber:
	case swapWord(MagicNumber):
		for i := range words {
			words[i] = swapWord(words[i])
		}
	default:
		return nil, ErrBadMagic
	}
	return &Module{
		Header: Header{
			Version:   words[1],
			Generator: words[2],
			Bound:     words[3],
			Schema:    words[4],
		},
		Words: words,
	}, nil
}

// Load reads and decodes a SPIR-V file, using a memory mapping when the file
// supports one.
func Load(path string) (*Module, error) {
	data, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func readWholeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return os.ReadFile(path)
	}
	defer m.Unmap()
	data := make([]byte, len(m))
	copy(data, m)
	return data, nil
}

// Instruction is one decoded instruction: the opcode and its operand words.
type Instruction struct {
	Opcode   uint16
	Operands []Word
}

// ForEachInstruction walks the instruction stream. The word count lives in
// the high half of each instruction's first word, the opcode in the low half.
func (m *Module) ForEachInstruction(visit func(Instruction) error) error {
	words := m.Instructions()
	for len(words) > 0 {
		wordCount := int(words[0] >> 16)
		opcode := uint16(words[0] & 0xFFFF)
		if wordCount == 0 || wordCount > len(words) {
			return errors.New("spirv: malformed instruction word count")
		}
		if err := visit(Instruction{Opcode: opcode, Operands: words[1:wordCount]}); err != nil {
			return err
		}
		words = words[wordCount:]
	}
	return nil
}
