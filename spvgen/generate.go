// generate.go - Emitters for the generated SPIR-V model and parser files

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
	"github.com/intuitionamiga/IntuitionVulkan/fspath"
	"github.com/intuitionamiga/IntuitionVulkan/grammar"
)

// Generator emits one output file from the loaded grammar.
type Generator interface {
	FileName() string
	Run(out *OutputStream, topLevel *grammar.TopLevel) error
}

// Generators returns the configured output files in emission order.
func Generators() []Generator {
	return []Generator{
		modelGenerator{},
		parserGenerator{},
	}
}

// RunGenerators emits every output file into the output directory. Output is
// a pure function of the AST: running twice produces byte-identical files.
func RunGenerators(outputDirectory string, topLevel *grammar.TopLevel) error {
	for _, generator := range Generators() {
		out := NewOutputStream(fspath.New(outputDirectory).JoinString(generator.FileName()))
		if err := generator.Run(out, topLevel); err != nil {
			return err
		}
		if err := out.WriteToFile(); err != nil {
			return err
		}
	}
	return nil
}

// Generate renders every output file to memory, keyed by file name. The CLI
// writes files; tests compare bytes.
func Generate(topLevel *grammar.TopLevel) (map[string]string, error) {
	outputs := make(map[string]string)
	for _, generator := range Generators() {
		out := NewOutputStream(fspath.New(generator.FileName()))
		if err := generator.Run(out, topLevel); err != nil {
			return nil, err
		}
		text, err := out.Render()
		if err != nil {
			return nil, err
		}
		outputs[generator.FileName()] = text
	}
	return outputs, nil
}

const generatedPackageName = "spirv"

func writeFileHeader(out *OutputStream, topLevel *grammar.TopLevel) {
	out.Write("// Code generated by generate_spirv_parser from the SPIR-V grammar. DO NOT EDIT.\n")
	if len(topLevel.Copyright.Lines) > 0 {
		out.Write("//\n")
		for _, line := range topLevel.Copyright.Lines {
			if line == "" {
				out.Write("//\n")
				continue
			}
			out.Write("// ").WriteLiteral(line).Write("\n")
		}
	}
	out.Write("\npackage " + generatedPackageName + "\n\n")
}

// literalTypeNames maps the predefined literal kinds onto Go types.
var literalTypeNames = map[string]string{
	"LiteralInteger":                "Word",
	"LiteralString":                 "string",
	"LiteralContextDependentNumber": "[]Word",
	"LiteralExtInstInteger":         "Word",
	"LiteralSpecConstantOpInteger":  "Word",
}

func literalUnderlyingType(kind string) string {
	if name, ok := literalTypeNames[kind]; ok {
		return name
	}
	return "Word"
}

// kindTypeName resolves the Go type name an operand kind is emitted as.
func kindTypeName(kind string) string {
	return NameFromWordsInitialCapital(kind)
}

func enumerantConstName(kind, enumerant string) string {
	return NameFromWordsInitialCapital(kind) + NameFromWordsInitialCapital(enumerant)
}

// uniqueValueEnumerants keeps the first enumerant of every value; later
// aliases share the first one's emitted case.
func uniqueValueEnumerants(enumerants []grammar.Enumerant) []grammar.Enumerant {
	seen := map[uint32]bool{}
	var unique []grammar.Enumerant
	for _, enumerant := range enumerants {
		if seen[enumerant.Value] {
			continue
		}
		seen[enumerant.Value] = true
		unique = append(unique, enumerant)
	}
	return unique
}

type modelGenerator struct{}

func (modelGenerator) FileName() string {
	return "spirv_model.go"
}

func (modelGenerator) Run(out *OutputStream, topLevel *grammar.TopLevel) error {
	writeFileHeader(out, topLevel)

	out.Write("// Word is one 32-bit unit of a SPIR-V module, in host byte order.\n")
	out.Write("type Word uint32\n\n")
	out.Write("// Id is the single scalar every id operand kind aliases.\n")
	out.Write("type Id = Word\n\n")
	out.Write("// MagicNumber identifies a SPIR-V module and its byte order.\n")
	out.Write("const MagicNumber Word = ")
	out.WriteUnsignedHex(uint64(topLevel.MagicNumber), 8)
	out.Write("\n\n")
	out.Write("// Grammar version the model was generated from.\nconst (\n@+")
	out.Write("GrammarMajorVersion = ").WriteUnsigned(uint64(topLevel.MajorVersion)).Write("\n")
	out.Write("GrammarMinorVersion = ").WriteUnsigned(uint64(topLevel.MinorVersion)).Write("\n")
	out.Write("GrammarRevision = ").WriteUnsigned(uint64(topLevel.Revision)).Write("\n")
	out.Write("@-)\n\n")

	// id and literal kinds become type aliases over the Id/Word scalar
	for _, kind := range topLevel.OperandKinds {
		switch kind.Category {
		case grammar.CategoryID:
			out.Write("type " + kindTypeName(kind.Kind) + " = Id\n")
		case grammar.CategoryLiteral:
			out.Write("type " + kindTypeName(kind.Kind) + " = " +
				literalUnderlyingType(kind.Kind) + "\n")
		}
	}
	out.Write("\n")

	// composite kinds become structs over their bases
	for _, kind := range topLevel.OperandKinds {
		if kind.Category != grammar.CategoryComposite {
			continue
		}
		out.Write("type " + kindTypeName(kind.Kind) + " struct {\n@+")
		for i, base := range kind.Bases {
			out.Write(fieldName(base, i, len(kind.Bases) > 1) + " " +
				kindTypeName(base) + "\n")
		}
		out.Write("@-}\n\n")
	}

	writeExtensionEnum(out, topLevel)
	writeExtensionInstructionSetEnum(out, topLevel)

	hasCapabilityEnum := false
	for _, kind := range topLevel.OperandKinds {
		if kind.Category.IsEnum() {
			if kind.Kind == "Capability" {
				hasCapabilityEnum = true
			}
			writeEnum(out, topLevel, kind)
		}
	}
	if !hasCapabilityEnum {
		out.Write("// Capability is declared for the requirement sets even when the\n")
		out.Write("// grammar carries no capability enum.\n")
		out.Write("type Capability uint32\n\n")
	}
	return nil
}

// fieldName derives a struct field name from a kind, numbering repeats.
func fieldName(kind string, index int, numbered bool) string {
	name := NameFromWordsInitialCapital(kind)
	if numbered {
		return name + string(rune('0'+index))
	}
	return name
}

func writeExtensionEnum(out *OutputStream, topLevel *grammar.TopLevel) {
	out.Write("// Extension is the inferred enum of every extension name the grammar's\n")
	out.Write("// enumerants and core instructions reference.\n")
	out.Write("type Extension uint32\n\n")
	if len(topLevel.ExtensionNames) > 0 {
		out.Write("const (\n@+")
		for i, name := range topLevel.ExtensionNames {
			out.Write("Extension" + NameFromWordsInitialCapital(name) + " Extension = ")
			out.WriteUnsigned(uint64(i)).Write("\n")
		}
		out.Write("@-)\n\n")
	}
	out.Write("func (v Extension) String() string {\n@+")
	out.Write("switch v {\n")
	for i, name := range topLevel.ExtensionNames {
		out.Write("case ")
		out.WriteUnsigned(uint64(i))
		out.Write(":\n@+return \"").WriteLiteral(name).Write("\"\n@-")
	}
	out.Write("}\nreturn \"\"\n@-}\n\n")
}

func writeExtensionInstructionSetEnum(out *OutputStream, topLevel *grammar.TopLevel) {
	out.Write("// ExtensionInstructionSet enumerates the importable instruction sets;\n")
	out.Write("// unrecognized import names map to Unknown.\n")
	out.Write("type ExtensionInstructionSet uint32\n\n")
	out.Write("const (\n@+")
	out.Write("ExtensionInstructionSetUnknown ExtensionInstructionSet = ")
	out.WriteUnsigned(0).Write("\n")
	for i, set := range topLevel.ExtensionInstructionSets {
		out.Write("ExtensionInstructionSet" + NameFromWordsInitialCapital(set.ImportName) +
			" ExtensionInstructionSet = ")
		out.WriteUnsigned(uint64(i + 1)).Write("\n")
	}
	out.Write("@-)\n\n")
}

func writeEnum(out *OutputStream, topLevel *grammar.TopLevel, kind grammar.OperandKind) {
	typeName := kindTypeName(kind.Kind)
	out.Write("type " + typeName + " uint32\n\n")
	if len(kind.Enumerants) > 0 {
		out.Write("const (\n@+")
		for _, enumerant := range kind.Enumerants {
			out.Write(enumerantConstName(kind.Kind, enumerant.Name) + " " + typeName + " = ")
			if kind.Category == grammar.CategoryBitEnum {
				out.WriteUnsignedHex(uint64(enumerant.Value), 4)
			} else {
				out.WriteUnsigned(uint64(enumerant.Value))
			}
			out.Write("\n")
		}
		out.Write("@-)\n\n")
	}
	unique := uniqueValueEnumerants(kind.Enumerants)

	// traits: every distinct value in declaration order
	out.Write("var " + typeName + "Values = [...]" + typeName + "{\n@+")
	for _, enumerant := range unique {
		out.Write(enumerantConstName(kind.Kind, enumerant.Name) + ",\n")
	}
	out.Write("@-}\n\n")

	// enumerant name lookup; aliases report the first declared name
	out.Write("func (v " + typeName + ") String() string {\n@+")
	out.Write("switch v {\n")
	for _, enumerant := range unique {
		out.Write("case " + enumerantConstName(kind.Kind, enumerant.Name) + ":\n@+")
		out.Write("return \"").WriteLiteral(enumerant.Name).Write("\"\n@-")
	}
	out.Write("}\nreturn \"\"\n@-}\n\n")

	// required capability and extension sets
	out.Write("func (v " + typeName + ") DirectlyRequiredCapabilities() []Capability {\n@+")
	out.Write("switch v {\n")
	for _, enumerant := range unique {
		if len(enumerant.Capabilities) == 0 {
			continue
		}
		out.Write("case " + enumerantConstName(kind.Kind, enumerant.Name) + ":\n@+")
		out.Write("return []Capability{")
		for i, capability := range enumerant.Capabilities {
			if i > 0 {
				out.Write(", ")
			}
			out.Write(enumerantConstName("Capability", capability))
		}
		out.Write("}\n@-")
	}
	out.Write("}\nreturn nil\n@-}\n\n")

	out.Write("func (v " + typeName + ") DirectlyRequiredExtensions() []Extension {\n@+")
	out.Write("switch v {\n")
	for _, enumerant := range unique {
		if len(enumerant.Extensions) == 0 {
			continue
		}
		out.Write("case " + enumerantConstName(kind.Kind, enumerant.Name) + ":\n@+")
		out.Write("return []Extension{")
		for i, extension := range enumerant.Extensions {
			if i > 0 {
				out.Write(", ")
			}
			out.Write("Extension" + NameFromWordsInitialCapital(extension))
		}
		out.Write("}\n@-")
	}
	out.Write("}\nreturn nil\n@-}\n\n")

	writeEnumParameterStructs(out, topLevel, kind)
}

func writeEnumParameterStructs(out *OutputStream, topLevel *grammar.TopLevel, kind grammar.OperandKind) {
	typeName := kindTypeName(kind.Kind)
	var withParameters []grammar.Enumerant
	for _, enumerant := range uniqueValueEnumerants(kind.Enumerants) {
		if len(enumerant.Parameters) > 0 {
			withParameters = append(withParameters, enumerant)
		}
	}
	if len(withParameters) == 0 {
		return
	}
	for _, enumerant := range withParameters {
		structName := NameFromWordsInitialCapital(kind.Kind, enumerant.Name, "parameters")
		out.Write("type " + structName + " struct {\n@+")
		for i, parameter := range enumerant.Parameters {
			// anonymous parameters fall back to their kind, numbered to stay
			// unique
			name := fieldName(parameter.Kind, i, len(enumerant.Parameters) > 1)
			if parameter.Name != "" {
				name = NameFromWordsInitialCapital(parameter.Name)
			}
			out.Write(name + " " + parameterTypeName(topLevel, parameter.Kind) + "\n")
		}
		out.Write("@-}\n\n")
	}
	// the aggregate: bit enums get one optional slot per parameter-bearing
	// enumerant, value enums add the selecting value
	aggregateName := typeName + "Parameters"
	out.Write("type " + aggregateName + " struct {\n@+")
	if kind.Category == grammar.CategoryValueEnum {
		out.Write("Value " + typeName + "\n")
	}
	for _, enumerant := range withParameters {
		structName := NameFromWordsInitialCapital(kind.Kind, enumerant.Name, "parameters")
		out.Write(NameFromWordsInitialCapital(enumerant.Name) + " *" + structName + "\n")
	}
	out.Write("@-}\n\n")
}

// parameterTypeName maps a parameter's operand kind to the emitted Go type.
// Kinds the grammar does not declare fall back to the raw word scalar.
func parameterTypeName(topLevel *grammar.TopLevel, kind string) string {
	if topLevel.FindOperandKind(kind) == nil {
		return "Word"
	}
	return kindTypeName(kind)
}

type parserGenerator struct{}

func (parserGenerator) FileName() string {
	return "spirv_parser.go"
}

func (parserGenerator) Run(out *OutputStream, topLevel *grammar.TopLevel) error {
	writeFileHeader(out, topLevel)

	// opcode name lookup over the core instructions; duplicate opcodes keep
	// the first declaration
	out.Write("// OpcodeName returns the opname of a core instruction, or \"\".\n")
	out.Write("func OpcodeName(opcode uint16) string {\n@+")
	out.Write("switch opcode {\n")
	seen := map[uint32]bool{}
	for _, instruction := range topLevel.Instructions {
		if seen[instruction.Opcode] {
			continue
		}
		seen[instruction.Opcode] = true
		out.Write("case ")
		out.WriteUnsigned(uint64(instruction.Opcode))
		out.Write(":\n@+return \"").WriteLiteral(instruction.Opname).Write("\"\n@-")
	}
	out.Write("}\nreturn \"\"\n@-}\n\n")

	out.Write("// LookupExtensionInstructionSet maps an OpExtInstImport name onto the\n")
	out.Write("// ExtensionInstructionSet enum.\n")
	out.Write("func LookupExtensionInstructionSet(importName string) ExtensionInstructionSet {\n@+")
	out.Write("switch importName {\n")
	for _, set := range topLevel.ExtensionInstructionSets {
		out.Write("case \"").WriteLiteral(set.ImportName).Write("\":\n@+")
		out.Write("return ExtensionInstructionSet" +
			NameFromWordsInitialCapital(set.ImportName) + "\n@-")
	}
	out.Write("}\nreturn ExtensionInstructionSetUnknown\n@-}\n\n")

	for _, set := range topLevel.ExtensionInstructionSets {
		setName := NameFromWordsInitialCapital(set.ImportName)
		out.Write("const (\n@+")
		out.Write("Version" + setName + " = ").WriteUnsigned(uint64(set.Version)).Write("\n")
		out.Write("Revision" + setName + " = ").WriteUnsigned(uint64(set.Revision)).Write("\n")
		out.Write("@-)\n\n")

		out.Write("// OpcodeName" + setName + " returns the opname of a " +
			set.ImportName + " instruction, or \"\".\n")
		out.Write("func OpcodeName" + setName + "(opcode uint16) string {\n@+")
		out.Write("switch opcode {\n")
		seenSet := map[uint32]bool{}
		for _, instruction := range set.Instructions {
			if seenSet[instruction.Opcode] {
				continue
			}
			seenSet[instruction.Opcode] = true
			out.Write("case ")
			out.WriteUnsigned(uint64(instruction.Opcode))
			out.Write(":\n@+return \"").WriteLiteral(instruction.Opname).Write("\"\n@-")
		}
		out.Write("}\nreturn \"\"\n@-}\n\n")
	}
	return nil
}
