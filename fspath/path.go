// path.go - Lexical path operations for POSIX- and DOS-style paths

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

// Package fspath implements purely lexical path manipulation: parsing into
// tagged parts, normalization, and relative-path computation. No operation
// ever consults the filesystem. Both POSIX- and DOS-style roots are handled
// so the code generator behaves identically on every host.
package fspath

import "strings"

// Flavor selects the root-name grammar and preferred separator.
type Flavor int

const (
	// Posix uses '/' and only //name absolute root names.
	Posix Flavor = iota
	// Windows uses '\' preferred, accepts '/', and adds C: relative root names.
	Windows
)

func (f Flavor) preferredSeparator() byte {
	if f == Windows {
		return '\\'
	}
	return '/'
}

func (f Flavor) isSeparator(ch byte) bool {
	if ch == '/' {
		return true
	}
	return f == Windows && ch == '\\'
}

// PartKind tags one parsed component of a path.
type PartKind int

const (
	PartRelativeRootName PartKind = iota
	PartAbsoluteRootName
	PartRootDir
	PartFileName
	PartPathSeparator
	// PartMultiple is only ever returned by Path.Kind for compound paths.
	PartMultiple
)

// Part is one tagged component.
type Part struct {
	Kind PartKind
	Text string
}

// Path is an immutable parsed path. The zero value is the empty path with
// POSIX flavor.
type Path struct {
	flavor Flavor

	rootName     string
	rootNameKind PartKind // PartRelativeRootName or PartAbsoluteRootName
	hasRootDir   bool

	// file name components; a trailing empty component records a trailing
	// separator
	components []string
}

// New parses a POSIX-flavored path.
func New(text string) Path {
	return NewWith(Posix, text)
}

// NewWith parses a path under the given flavor.
func NewWith(flavor Flavor, text string) Path {
	p := Path{flavor: flavor}
	rest := text

	// root name
	if flavor == Windows && len(rest) >= 2 && rest[1] == ':' && isDriveLetter(rest[0]) {
		p.rootName = rest[:2]
		p.rootNameKind = PartRelativeRootName
		rest = rest[2:]
	} else if len(rest) >= 3 && flavor.isSeparator(rest[0]) && flavor.isSeparator(rest[1]) &&
		!flavor.isSeparator(rest[2]) {
		// //server or \\server
		end := 3
		for end < len(rest) && !flavor.isSeparator(rest[end]) {
			end++
		}
		p.rootName = rest[:end]
		p.rootNameKind = PartAbsoluteRootName
		rest = rest[end:]
	}

	// root directory: any leading run of separators
	i := 0
	for i < len(rest) && flavor.isSeparator(rest[i]) {
		i++
	}
	if i > 0 {
		p.hasRootDir = true
		rest = rest[i:]
	}

	// components split on separator runs; a trailing run records as ""
	for len(rest) > 0 {
		end := 0
		for end < len(rest) && !flavor.isSeparator(rest[end]) {
			end++
		}
		p.components = append(p.components, rest[:end])
		rest = rest[end:]
		j := 0
		for j < len(rest) && flavor.isSeparator(rest[j]) {
			j++
		}
		rest = rest[j:]
		if j > 0 && len(rest) == 0 {
			p.components = append(p.components, "")
		}
	}
	return p
}

func isDriveLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// Flavor returns the path's flavor.
func (p Path) Flavor() Flavor {
	return p.flavor
}

// IsEmpty reports whether the path has no parts at all.
func (p Path) IsEmpty() bool {
	return p.rootName == "" && !p.hasRootDir && len(p.components) == 0
}

// RootName returns the root name part, or the empty path.
func (p Path) RootName() Path {
	return Path{flavor: p.flavor, rootName: p.rootName, rootNameKind: p.rootNameKind}
}

// HasRootDir reports whether the path has a root directory.
func (p Path) HasRootDir() bool {
	return p.hasRootDir
}

// IsAbsolute follows the host rules: POSIX needs a root directory, DOS needs
// both a root name and a root directory (an absolute root name counts alone).
func (p Path) IsAbsolute() bool {
	if p.flavor == Windows {
		return p.rootName != "" && (p.hasRootDir || p.rootNameKind == PartAbsoluteRootName)
	}
	return p.hasRootDir
}

// Parts returns the tagged parts in order, separators included between file
// names.
func (p Path) Parts() []Part {
	var parts []Part
	if p.rootName != "" {
		parts = append(parts, Part{Kind: p.rootNameKind, Text: p.rootName})
	}
	sep := string(p.flavor.preferredSeparator())
	if p.hasRootDir {
		parts = append(parts, Part{Kind: PartRootDir, Text: sep})
	}
	for i, c := range p.components {
		if i > 0 {
			parts = append(parts, Part{Kind: PartPathSeparator, Text: sep})
		}
		parts = append(parts, Part{Kind: PartFileName, Text: c})
	}
	return parts
}

// Kind returns the single part's kind, or PartMultiple for compound paths.
func (p Path) Kind() PartKind {
	parts := p.Parts()
	if len(parts) == 1 {
		return parts[0].Kind
	}
	return PartMultiple
}

// String renders with the preferred separator throughout.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.rootName)
	sep := p.flavor.preferredSeparator()
	if p.hasRootDir {
		sb.WriteByte(sep)
	}
	for i, c := range p.components {
		if i > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// Eq compares parsed forms: root name, root directory and components.
func (p Path) Eq(other Path) bool {
	if p.rootName != other.rootName || p.hasRootDir != other.hasRootDir ||
		len(p.components) != len(other.components) {
		return false
	}
	for i := range p.components {
		if p.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

func (p Path) clone() Path {
	p.components = append([]string(nil), p.components...)
	return p
}

// Join implements the append operator: an absolute right side replaces the
// left, a differing root name replaces, a rooted right side keeps only the
// left root name.
func (p Path) Join(other Path) Path {
	if other.IsAbsolute() || (other.rootName != "" && other.rootName != p.rootName) {
		return other.clone()
	}
	result := p.clone()
	if other.hasRootDir {
		result.hasRootDir = true
		result.components = append([]string(nil), other.components...)
		return result
	}
	// drop a trailing directory marker before appending
	if n := len(result.components); n > 0 && result.components[n-1] == "" {
		result.components = result.components[:n-1]
	}
	result.components = append(result.components, other.components...)
	return result
}

// JoinString parses text under the same flavor and joins.
func (p Path) JoinString(text string) Path {
	return p.Join(NewWith(p.flavor, text))
}

// Concat appends at the byte level and reparses.
func (p Path) Concat(text string) Path {
	return NewWith(p.flavor, p.String()+text)
}

// Normalize returns the lexically normal form: no dot elements, no resolvable
// dot-dot elements, preferred separators only, "." for an otherwise empty
// path.
func (p Path) Normalize() Path {
	result := Path{
		flavor:       p.flavor,
		rootName:     p.rootName,
		rootNameKind: p.rootNameKind,
		hasRootDir:   p.hasRootDir,
	}
	hadTrailingSeparator := false
	var components []string
	for i, c := range p.components {
		if c == "" {
			if i == len(p.components)-1 {
				hadTrailingSeparator = true
			}
			continue
		}
		if c == "." {
			continue
		}
		if c == ".." {
			if n := len(components); n > 0 && components[n-1] != ".." {
				components = components[:n-1]
				continue
			}
			if p.hasRootDir && len(components) == 0 {
				// dot-dot at the root stays at the root
				continue
			}
			components = append(components, "..")
			continue
		}
		components = append(components, c)
	}
	if hadTrailingSeparator && len(components) > 0 {
		components = append(components, "")
	}
	result.components = components
	if result.IsEmpty() {
		result.components = []string{"."}
	}
	return result
}

func meaningful(c string) bool {
	return c != "" && c != "."
}

// RelativeTo computes the lexically relative path from base to p. The result
// is empty when the root names differ, when absoluteness differs, or when p
// lacks a root directory that base has.
func (p Path) RelativeTo(base Path) Path {
	empty := Path{flavor: p.flavor}
	if p.rootName != base.rootName {
		return empty
	}
	if p.IsAbsolute() != base.IsAbsolute() {
		return empty
	}
	if !p.hasRootDir && base.hasRootDir {
		return empty
	}
	a, b := p.components, base.components
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	// count the base components left after the common prefix
	n := 0
	for _, c := range b[i:] {
		switch {
		case c == "..":
			n--
		case meaningful(c):
			n++
		}
	}
	if n < 0 {
		return empty
	}
	rest := a[i:]
	hasRest := false
	for _, c := range rest {
		if meaningful(c) {
			hasRest = true
		}
	}
	result := Path{flavor: p.flavor}
	if n == 0 && !hasRest {
		result.components = []string{"."}
		return result
	}
	for ; n > 0; n-- {
		result.components = append(result.components, "..")
	}
	for _, c := range rest {
		if meaningful(c) {
			result.components = append(result.components, c)
		}
	}
	return result
}

// ProximateTo is RelativeTo, falling back to p itself when that is empty.
func (p Path) ProximateTo(base Path) Path {
	relative := p.RelativeTo(base)
	if relative.IsEmpty() {
		return p.clone()
	}
	return relative
}
