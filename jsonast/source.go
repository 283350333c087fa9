// source.go - Immutable text sources with line/column lookup

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

package jsonast

import (
	"io"
	"os"
	"sort"

	"github.com/edsrzf/mmap-go"
	"github.com/intuitionamiga/IntuitionVulkan/softfloat"
)

// Source is an immutable byte buffer with a file name and a precomputed index
// of line starts. Locations share the Source by pointer, so lookup needs no
// copy of the text.
type Source struct {
	FileName string
	Contents []byte

	// byte index at which every line after the first begins; strictly increasing
	lineStartIndexes []int
}

// DefaultTabSize is the tab stop used by Location formatting.
const DefaultTabSize = 8

// NewSource wraps a byte buffer. The buffer must not be modified afterwards.
func NewSource(fileName string, contents []byte) *Source {
	return &Source{
		FileName:         fileName,
		Contents:         contents,
		lineStartIndexes: findLineStartIndexes(contents),
	}
}

// LoadFile reads a whole file into a Source. The read goes through a memory
// mapping when the file supports one, with a plain read fallback.
func LoadFile(path string) (*Source, error) {
	contents, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, contents), nil
}

// LoadStdin reads standard input to EOF into a Source named "stdin".
func LoadStdin() (*Source, error) {
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return NewSource("stdin", contents), nil
}

// readWholeFile maps the file and copies it out, so the returned slice owns
// its memory and the mapping can be dropped immediately.
func readWholeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// pipes and empty files refuse to map
		return os.ReadFile(path)
	}
	defer m.Unmap()
	contents := make([]byte, len(m))
	copy(contents, m)
	return contents, nil
}

func isNewLine(ch byte) bool {
	return ch == '\r' || ch == '\n'
}

// findLineStartIndexes records where each line after the first starts. A \r\n
// pair counts as a single newline and never starts a line between its bytes.
func findLineStartIndexes(contents []byte) []int {
	var indexes []int
	for i := 0; i < len(contents); i++ {
		ch := contents[i]
		if ch == '\r' && i+1 < len(contents) && contents[i+1] == '\n' {
			indexes = append(indexes, i+2)
			i++
			continue
		}
		if isNewLine(ch) {
			indexes = append(indexes, i+1)
		}
	}
	return indexes
}

func (s *Source) Size() int {
	return len(s.Contents)
}

// lineAndStartIndex finds the 1-based line holding charIndex and that line's
// first byte index.
func (s *Source) lineAndStartIndex(charIndex int) (line, startIndex int) {
	// first entry past charIndex; everything before it starts at or before it
	n := sort.SearchInts(s.lineStartIndexes, charIndex+1)
	if n == 0 {
		return 1, 0
	}
	return n + 1, s.lineStartIndexes[n-1]
}

func columnAfterTab(column, tabSize int) int {
	if tabSize == 0 || column == 0 {
		return column + 1
	}
	return column + (tabSize - (column-1)%tabSize)
}

// LineAndColumn maps a byte index to a 1-based line and column, expanding tabs
// at the given tab stop.
func (s *Source) LineAndColumn(charIndex, tabSize int) (line, column int) {
	line, startIndex := s.lineAndStartIndex(charIndex)
	column = 1
	for i := startIndex; i < charIndex && i < len(s.Contents); i++ {
		if s.Contents[i] == '\t' {
			column = columnAfterTab(column, tabSize)
		} else {
			column++
		}
	}
	return line, column
}

// Location cites a byte position inside a Source. The zero Location has no
// source and formats as an empty position.
type Location struct {
	Source *Source
	Index  int
}

// String renders "<file>:<line>:<column>".
func (l Location) String() string {
	if l.Source == nil {
		return ""
	}
	line, column := l.Source.LineAndColumn(l.Index, DefaultTabSize)
	buf := append([]byte(l.Source.FileName), ':')
	buf = softfloat.AppendUint(buf, uint64(line), 10, 1)
	buf = append(buf, ':')
	buf = softfloat.AppendUint(buf, uint64(column), 10, 1)
	return string(buf)
}

// ParseError is a syntax error with the position it was detected at.
type ParseError struct {
	Loc Location
	Msg string
}

func (e *ParseError) Error() string {
	if e.Loc.Source == nil {
		return "error: " + e.Msg
	}
	return e.Loc.String() + ": error: " + e.Msg
}
