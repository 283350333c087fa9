// writer.go - Compact and pretty JSON writers

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
	"sort"

	"github.com/intuitionamiga/IntuitionVulkan/softfloat"
)

// WriteOptions selects between compact and pretty output.
type WriteOptions struct {
	// CompositeValueElementsOnSeparateLines puts each array element and object
	// entry on its own indented line.
	CompositeValueElementsOnSeparateLines bool

	// SortObjectValues emits object entries sorted by key instead of in
	// insertion order.
	SortObjectValues bool

	// IndentText is written once per indent level.
	IndentText string
}

// Defaults returns compact single-line output options.
func Defaults() WriteOptions {
	return WriteOptions{}
}

// Pretty returns one-element-per-line output with the given indent text.
func Pretty(indentText string) WriteOptions {
	return WriteOptions{
		CompositeValueElementsOnSeparateLines: true,
		IndentText:                            indentText,
	}
}

type writeState struct {
	w           io.Writer
	options     WriteOptions
	indentLevel int
	err         error
}

func (s *writeState) write(text string) {
	if s.err == nil {
		_, s.err = io.WriteString(s.w, text)
	}
}

func (s *writeState) writeByte(ch byte) {
	if s.err == nil {
		_, s.err = s.w.Write([]byte{ch})
	}
}

func (s *writeState) writeIndent() {
	for i := 0; i < s.indentLevel; i++ {
		s.write(s.options.IndentText)
	}
}

func (s *writeState) newlineAndIndent() {
	if s.options.CompositeValueElementsOnSeparateLines {
		s.writeByte('\n')
		s.writeIndent()
	}
}

// Write serializes v. Number output goes through the software float formatter
// so the bytes are identical on every host.
func Write(w io.Writer, v Value, options WriteOptions) error {
	s := &writeState{w: w, options: options}
	s.writeValue(v)
	return s.err
}

func (s *writeState) writeValue(v Value) {
	switch value := v.(type) {
	case *Null:
		s.write("null")
	case *Boolean:
		if value.Value {
			s.write("true")
		} else {
			s.write("false")
		}
	case *String:
		s.writeString(value.Value)
	case *Number:
		s.write(string(softfloat.AppendFloat(nil, value.Value, softfloat.DefaultBase)))
	case *Array:
		s.writeArray(value)
	case *Object:
		s.writeObject(value)
	}
}

func (s *writeState) writeString(value string) {
	s.writeByte('"')
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch ch {
		case '\\', '"':
			s.writeByte('\\')
			s.writeByte(ch)
		case '\b':
			s.write("\\b")
		case '\f':
			s.write("\\f")
		case '\n':
			s.write("\\n")
		case '\r':
			s.write("\\r")
		case '\t':
			s.write("\\t")
		default:
			if ch < 0x20 {
				s.write("\\u00")
				s.writeByte(hexDigit(ch >> 4))
				s.writeByte(hexDigit(ch & 0xF))
			} else {
				s.writeByte(ch)
			}
		}
	}
	s.writeByte('"')
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return v - 10 + 'A'
}

func (s *writeState) writeArray(v *Array) {
	s.writeByte('[')
	if len(v.Values) != 0 {
		s.indentLevel++
		for i, element := range v.Values {
			if i != 0 {
				s.writeByte(',')
			}
			s.newlineAndIndent()
			s.writeValue(element)
		}
		s.indentLevel--
		s.newlineAndIndent()
	}
	s.writeByte(']')
}

func (s *writeState) writeObject(v *Object) {
	s.writeByte('{')
	if v.Len() != 0 {
		s.indentLevel++
		keys := v.keys
		if s.options.SortObjectValues {
			keys = append([]string(nil), v.keys...)
			sort.Strings(keys)
		}
		for i, key := range keys {
			if i != 0 {
				s.writeByte(',')
			}
			s.newlineAndIndent()
			s.writeString(key)
			s.writeByte(':')
			value, _ := v.Get(key)
			s.writeValue(value)
		}
		s.indentLevel--
		s.newlineAndIndent()
	}
	s.writeByte('}')
}
