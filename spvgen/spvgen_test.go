// spvgen_test.go - Code generator determinism and naming tests

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

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/intuitionamiga/IntuitionVulkan/fspath"
	"github.com/intuitionamiga/IntuitionVulkan/grammar"
)

// minimalTopLevel is the S1 fixture: one value enum, one literal, one
// instruction.
func minimalTopLevel() *grammar.TopLevel {
	return &grammar.TopLevel{
		Copyright:    grammar.Copyright{Lines: []string{"c1"}},
		MagicNumber:  0x07230203,
		MajorVersion: 1,
		MinorVersion: 2,
		Revision:     3,
		Instructions: []grammar.Instruction{
			{Opname: "OpNop", Opcode: 0},
		},
		OperandKinds: []grammar.OperandKind{
			{
				Category: grammar.CategoryValueEnum,
				Kind:     "K",
				Enumerants: []grammar.Enumerant{
					{Name: "A", Value: 0},
					{Name: "B", Value: 1},
				},
			},
			{Category: grammar.CategoryLiteral, Kind: "Lit", Doc: "doc"},
		},
	}
}

func TestGenerateDeterminism(t *testing.T) {
	first, err := Generate(minimalTopLevel())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(minimalTopLevel())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same AST must produce byte-identical files")
	}
	if len(first) != 2 {
		t.Fatalf("expected two output files, got %d", len(first))
	}
}

func TestRunGeneratorsWritesIdenticalFiles(t *testing.T) {
	topLevel := minimalTopLevel()
	dirA, dirB := t.TempDir(), t.TempDir()
	if err := RunGenerators(dirA, topLevel); err != nil {
		t.Fatal(err)
	}
	if err := RunGenerators(dirB, topLevel); err != nil {
		t.Fatal(err)
	}
	for _, generator := range Generators() {
		a, err := os.ReadFile(filepath.Join(dirA, generator.FileName()))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, generator.FileName()))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Fatalf("%s differs between runs", generator.FileName())
		}
	}
}

func TestGeneratedModelContent(t *testing.T) {
	outputs, err := Generate(minimalTopLevel())
	if err != nil {
		t.Fatal(err)
	}
	model := outputs["spirv_model.go"]
	for _, want := range []string{
		"// Code generated by generate_spirv_parser from the SPIR-V grammar. DO NOT EDIT.",
		"// c1",
		"package spirv",
		"const MagicNumber Word = 0x07230203",
		"GrammarMajorVersion = 1",
		"GrammarMinorVersion = 2",
		"GrammarRevision = 3",
		"type K uint32",
		"KA K = 0",
		"KB K = 1",
		"var KValues = [...]K{",
		"func (v K) String() string {",
		"return \"A\"",
		"func (v K) DirectlyRequiredCapabilities() []Capability {",
		"func (v K) DirectlyRequiredExtensions() []Extension {",
		"type Lit = Word",
		"type Capability uint32",
		"type ExtensionInstructionSet uint32",
	} {
		if !strings.Contains(model, want) {
			t.Fatalf("model output missing %q:\n%s", want, model)
		}
	}
	if strings.Contains(model, "#error") {
		t.Fatal("placeholder error directives must not be emitted")
	}
	parser := outputs["spirv_parser.go"]
	for _, want := range []string{
		"func OpcodeName(opcode uint16) string {",
		"return \"OpNop\"",
		"func LookupExtensionInstructionSet(importName string) ExtensionInstructionSet {",
	} {
		if !strings.Contains(parser, want) {
			t.Fatalf("parser output missing %q:\n%s", want, parser)
		}
	}
}

func TestGeneratedAliasesShareOneCase(t *testing.T) {
	topLevel := minimalTopLevel()
	topLevel.OperandKinds[0].Enumerants = append(topLevel.OperandKinds[0].Enumerants,
		grammar.Enumerant{Name: "AAlias", Value: 0})
	outputs, err := Generate(topLevel)
	if err != nil {
		t.Fatal(err)
	}
	model := outputs["spirv_model.go"]
	if !strings.Contains(model, "KAAlias K = 0") {
		t.Fatal("alias constant must still be declared")
	}
	if strings.Contains(model, "case KAAlias:") {
		t.Fatal("alias values must not emit a second case")
	}
}

func TestGeneratedParameterStructs(t *testing.T) {
	topLevel := minimalTopLevel()
	topLevel.OperandKinds = append(topLevel.OperandKinds,
		grammar.OperandKind{Category: grammar.CategoryID, Kind: "IdRef", Doc: "id"},
		grammar.OperandKind{
			Category: grammar.CategoryBitEnum,
			Kind:     "ImageOperands",
			Enumerants: []grammar.Enumerant{
				{Name: "None", Value: 0},
				{Name: "Grad", Value: 4, Parameters: []grammar.Parameter{
					{Kind: "IdRef", Name: "dx"},
					{Kind: "IdRef", Name: "dy"},
				}},
			},
		})
	outputs, err := Generate(topLevel)
	if err != nil {
		t.Fatal(err)
	}
	model := outputs["spirv_model.go"]
	for _, want := range []string{
		"type ImageOperandsGradParameters struct {",
		"Dx IdRef",
		"Dy IdRef",
		"type ImageOperandsParameters struct {",
		"Grad *ImageOperandsGradParameters",
	} {
		if !strings.Contains(model, want) {
			t.Fatalf("parameter structs missing %q:\n%s", want, model)
		}
	}
}

func TestNameCases(t *testing.T) {
	cases := []struct {
		fn   func(...string) string
		in   []string
		want string
	}{
		{NameFromWordsInitialCapital, []string{"image operands"}, "ImageOperands"},
		{NameFromWordsInitialCapital, []string{"GLSL.std.450"}, "GlslStd450"},
		{NameFromWordsInitialCapital, []string{"SPV_KHR_shader_ballot"}, "SpvKhrShaderBallot"},
		{NameFromWordsInitialCapital, []string{"IdRef"}, "IdRef"},
		{NameFromWordsInitialCapital, []string{"'dx'"}, "Dx"},
		{NameFromWordsAllLowercase, []string{"ImageOperands"}, "image_operands"},
		{NameFromWordsAllUppercase, []string{"ImageOperands"}, "IMAGE_OPERANDS"},
		{NameFromWordsAllUppercaseWithTrailingUnderscore, []string{"spirv model h"},
			"SPIRV_MODEL_H_"},
	}
	for _, c := range cases {
		if got := c.fn(c.in...); got != c.want {
			t.Fatalf("name of %v: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestReservedWordEscape(t *testing.T) {
	if got := NameFromWordsAllLowercase("type"); got != "type_" {
		t.Fatalf("reserved word: %q", got)
	}
	if got := NameFromWordsAllLowercase("range"); got != "range_" {
		t.Fatalf("reserved word: %q", got)
	}
	if got := NameFromWordsInitialCapital("type"); got != "Type" {
		t.Fatalf("capitalized names never collide: %q", got)
	}
}

func TestOutputStreamIndentation(t *testing.T) {
	out := NewOutputStream(fspath.New("out.go"))
	out.Write("a {\n@+b\nc {\n@+d\n@-}\n@-}\n")
	text, err := out.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := "a {\n    b\n    c {\n        d\n    }\n}\n"
	if text != want {
		t.Fatalf("rendered %q want %q", text, want)
	}
}

func TestOutputStreamStartColumnAndRestart(t *testing.T) {
	out := NewOutputStream(fspath.New("out.go"))
	out.Write("@+@(x\n@+y\n@_z\n@)@-")
	text, err := out.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := "    x\n        y\n    z\n"
	if text != want {
		t.Fatalf("rendered %q want %q", text, want)
	}
}

func TestOutputStreamLiteralEscape(t *testing.T) {
	out := NewOutputStream(fspath.New("out.go"))
	out.WriteLiteral("a@b")
	text, err := out.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "a@b" {
		t.Fatalf("rendered %q", text)
	}
}

func TestOutputStreamUnbalanced(t *testing.T) {
	out := NewOutputStream(fspath.New("out.go"))
	out.Write("@+")
	if _, err := out.Render(); err == nil {
		t.Fatal("unbalanced stream must fail to render")
	}
}
