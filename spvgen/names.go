// names.go - Identifier construction with reserved-word avoidance

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

package spvgen

import "strings"

// goReservedWords is fixed at generation time: the language keywords plus the
// predeclared identifiers that generated code could otherwise shadow.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"for": true, "func": true, "go": true, "goto": true, "if": true,
	"import": true, "interface": true, "map": true, "package": true,
	"range": true, "return": true, "select": true, "struct": true,
	"switch": true, "type": true, "var": true,
	"bool": true, "byte": true, "error": true, "float32": true,
	"float64": true, "int": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint32": true, "uint64": true,
}

// splitWords cuts an input into lowercase words on underscores, spaces, dots,
// dashes, and lower-to-upper case boundaries. Digit runs stick to the word
// before them.
func splitWords(input string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	prevLowerOrDigit := false
	prevUpper := false
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '_' || ch == ' ' || ch == '.' || ch == '-' || ch == '\'':
			flush()
			prevLowerOrDigit = false
			prevUpper = false
		case ch >= 'A' && ch <= 'Z':
			// split on lower->upper, and on the last upper of an acronym run
			// when a lowercase letter follows ("ABCDef" -> "abc", "def")
			nextIsLower := i+1 < len(input) && input[i+1] >= 'a' && input[i+1] <= 'z'
			if prevLowerOrDigit || (prevUpper && nextIsLower) {
				flush()
			}
			current.WriteByte(ch - 'A' + 'a')
			prevUpper = true
			prevLowerOrDigit = false
		default:
			current.WriteByte(ch)
			prevLowerOrDigit = true
			prevUpper = false
		}
	}
	flush()
	return words
}

func splitAllWords(inputs []string) []string {
	var words []string
	for _, input := range inputs {
		words = append(words, splitWords(input)...)
	}
	return words
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	if word[0] >= 'a' && word[0] <= 'z' {
		return string(word[0]-'a'+'A') + word[1:]
	}
	return word
}

func escapeReserved(name string) string {
	if goReservedWords[name] {
		return name + "_"
	}
	return name
}

// NameFromWordsInitialCapital renders CamelCase: "image operands" becomes
// "ImageOperands".
func NameFromWordsInitialCapital(inputs ...string) string {
	var sb strings.Builder
	for _, word := range splitAllWords(inputs) {
		sb.WriteString(capitalize(word))
	}
	return escapeReserved(sb.String())
}

// NameFromWordsAllLowercase renders snake_case.
func NameFromWordsAllLowercase(inputs ...string) string {
	return escapeReserved(strings.Join(splitAllWords(inputs), "_"))
}

// NameFromWordsAllUppercase renders SCREAMING_SNAKE_CASE.
func NameFromWordsAllUppercase(inputs ...string) string {
	return escapeReserved(strings.ToUpper(strings.Join(splitAllWords(inputs), "_")))
}

// NameFromWordsAllUppercaseWithTrailingUnderscore renders guard-macro style
// names; the trailing underscore makes reserved-word escapes unnecessary.
func NameFromWordsAllUppercaseWithTrailingUnderscore(inputs ...string) string {
	return strings.ToUpper(strings.Join(splitAllWords(inputs), "_")) + "_"
}
