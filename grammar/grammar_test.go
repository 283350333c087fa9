// grammar_test.go - Grammar reader and patch tests

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

package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/intuitionamiga/IntuitionVulkan/jsonast"
)

const minimalGrammar = `{
	"copyright": ["c1"],
	"magic_number": "0x07230203",
	"major_version": 1,
	"minor_version": 2,
	"revision": 3,
	"instructions": [
		{
			"opname": "OpNop",
			"opcode": 0
		},
		{
			"opname": "OpExtInst",
			"opcode": 12,
			"operands": [
				{"kind": "IdResultType"},
				{"kind": "IdRef", "name": "'Set'"},
				{"kind": "IdRef", "quantifier": "*"}
			]
		}
	],
	"operand_kinds": [
		{
			"category": "ValueEnum",
			"kind": "K",
			"enumerants": [
				{"enumerant": "A", "value": 0},
				{"enumerant": "B", "value": 1, "capabilities": ["Cap"]}
			]
		},
		{
			"category": "BitEnum",
			"kind": "ImageOperands",
			"enumerants": [
				{"enumerant": "None", "value": "0x0000"},
				{
					"enumerant": "Grad",
					"value": "0x0004",
					"parameters": [{"kind": "IdRef"}, {"kind": "IdRef"}]
				}
			]
		},
		{
			"category": "ValueEnum",
			"kind": "Capability",
			"enumerants": [
				{"enumerant": "Cap", "value": 0, "extensions": ["SPV_TEST_ext"]}
			]
		},
		{
			"category": "Literal",
			"kind": "Lit",
			"doc": "a literal"
		},
		{
			"category": "Id",
			"kind": "IdRef",
			"doc": "a reference"
		},
		{
			"category": "Id",
			"kind": "IdResultType",
			"doc": "a result type"
		},
		{
			"category": "Composite",
			"kind": "PairIdRefIdRef",
			"bases": ["IdRef", "IdRef"]
		}
	]
}`

func parseGrammarText(t *testing.T, text string) (*TopLevel, error) {
	t.Helper()
	files := &Files{Core: jsonast.NewSource(CoreGrammarFileName, []byte(text))}
	return Parse(files)
}

func mustParseGrammar(t *testing.T, text string) *TopLevel {
	t.Helper()
	topLevel, err := parseGrammarText(t, text)
	if err != nil {
		t.Fatal(err)
	}
	return topLevel
}

func TestParseMinimalGrammar(t *testing.T) {
	topLevel := mustParseGrammar(t, minimalGrammar)
	if topLevel.MagicNumber != 0x07230203 {
		t.Fatalf("magic: %08x", topLevel.MagicNumber)
	}
	if topLevel.MajorVersion != 1 || topLevel.MinorVersion != 2 || topLevel.Revision != 3 {
		t.Fatal("versions")
	}
	if len(topLevel.Copyright.Lines) != 1 || topLevel.Copyright.Lines[0] != "c1" {
		t.Fatal("copyright")
	}
	if len(topLevel.Instructions) != 2 || topLevel.Instructions[1].Opname != "OpExtInst" {
		t.Fatal("instructions")
	}
	operands := topLevel.Instructions[1].Operands
	if len(operands) != 3 || operands[2].Quantifier != QuantifierVariadic ||
		operands[1].Name != "'Set'" {
		t.Fatalf("operands: %v", operands)
	}
	k := topLevel.FindOperandKind("K")
	if k == nil || k.Category != CategoryValueEnum || len(k.Enumerants) != 2 {
		t.Fatal("K enum")
	}
	if k.Enumerants[1].Capabilities[0] != "Cap" {
		t.Fatal("capabilities")
	}
	image := topLevel.FindOperandKind("ImageOperands")
	if image.Category != CategoryBitEnum || image.Enumerants[1].Value != 4 {
		t.Fatal("hex bit enum value")
	}
	if topLevel.FindOperandKind("Lit").Doc != "a literal" {
		t.Fatal("literal doc")
	}
	if got := topLevel.FindOperandKind("PairIdRefIdRef").Bases; len(got) != 2 {
		t.Fatal("composite bases")
	}
	if !reflect.DeepEqual(topLevel.ExtensionNames, []string{"SPV_TEST_ext"}) {
		t.Fatalf("inferred extensions: %v", topLevel.ExtensionNames)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		mutate func(string) string
		msg    string
	}{
		{func(s string) string {
			return strings.Replace(s, `"magic_number"`, `"magic"`, 1)
		}, `root["magic"]: error: unknown key`},
		{func(s string) string {
			return strings.Replace(s, `"0x07230203"`, `"723"`, 1)
		}, "not a valid hex number"},
		{func(s string) string {
			return strings.Replace(s, `"major_version": 1`, `"major_version": 1.5`, 1)
		}, "major_version is not an integer"},
		{func(s string) string {
			return strings.Replace(s, `{"enumerant": "A", "value": 0}`,
				`{"enumerant": "B", "value": 0}`, 1)
		}, "duplicate enumerant B in K"},
		{func(s string) string {
			return strings.Replace(s, `"capabilities": ["Cap"]`,
				`"capabilities": ["Missing"]`, 1)
		}, "unknown capability: Missing"},
		{func(s string) string {
			return strings.Replace(s, `"doc": "a literal"`, `"bases": ["x"]`, 1)
		}, "category Literal requires doc"},
		{func(s string) string {
			return strings.Replace(s, `"quantifier": "*"`, `"quantifier": "x"`, 1)
		}, "unknown quantifier: x"},
	}
	for _, c := range cases {
		_, err := parseGrammarText(t, c.mutate(minimalGrammar))
		if err == nil {
			t.Fatalf("expected error mentioning %q", c.msg)
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Fatalf("error %q does not mention %q", err, c.msg)
		}
	}
}

func TestErrorPathBreadcrumbs(t *testing.T) {
	text := strings.Replace(minimalGrammar, `{"enumerant": "A", "value": 0}`,
		`{"enumerant": "A", "value": 0, "bogus": 1}`, 1)
	_, err := parseGrammarText(t, text)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `root["operand_kinds"][0]["enumerants"][0]["bogus"]: error: unknown key`
	if err.Error() != want {
		t.Fatalf("error %q want %q", err, want)
	}
}

func TestGradPatch(t *testing.T) {
	topLevel := mustParseGrammar(t, minimalGrammar)
	patches := Patches()
	var log strings.Builder
	RunPatches(topLevel, patches, &log)
	grad := topLevel.FindOperandKind("ImageOperands").Enumerants[1]
	if grad.Parameters[0].Name != "dx" || grad.Parameters[1].Name != "dy" {
		t.Fatalf("grad parameters: %v", grad.Parameters)
	}
	if !strings.Contains(log.String(), "add_image_operands_grad_parameter_names: applied") {
		t.Fatalf("log: %q", log.String())
	}
}

func TestPatchIdempotence(t *testing.T) {
	patchedOnce := mustParseGrammar(t, minimalGrammar)
	RunPatches(patchedOnce, Patches(), nil)
	patchedTwice := mustParseGrammar(t, minimalGrammar)
	RunPatches(patchedTwice, Patches(), nil)
	var log strings.Builder
	RunPatches(patchedTwice, Patches(), &log)
	if !reflect.DeepEqual(patchedOnce, patchedTwice) {
		t.Fatal("second patch run must not change the AST")
	}
	if !strings.Contains(log.String(), "not applicable") {
		t.Fatalf("second run should report not applicable: %q", log.String())
	}
}

func TestReadRequiredFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CoreGrammarFileName),
		[]byte(minimalGrammar), 0o644); err != nil {
		t.Fatal(err)
	}
	extension := `{"copyright": ["c"], "version": 100, "revision": 2, "instructions": [
		{"opname": "Round", "opcode": 1}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "extinst.glsl.std.450.grammar.json"),
		[]byte(extension), 0o644); err != nil {
		t.Fatal(err)
	}
	files, err := ReadRequiredFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	topLevel, err := Parse(files)
	if err != nil {
		t.Fatal(err)
	}
	if len(topLevel.ExtensionInstructionSets) != 1 {
		t.Fatalf("extension sets: %d", len(topLevel.ExtensionInstructionSets))
	}
	set := topLevel.ExtensionInstructionSets[0]
	if set.ImportName != "GLSL.std.450" || set.Version != 100 ||
		len(set.Instructions) != 1 || set.Instructions[0].Opname != "Round" {
		t.Fatalf("extension set: %+v", set)
	}
}

func TestReadRequiredFilesMissingCore(t *testing.T) {
	_, err := ReadRequiredFiles(t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FilesystemError, got %T", err)
	}
}
