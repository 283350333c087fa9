// ast.go - Typed model of the SPIR-V grammar JSON

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

// Package grammar loads the machine-readable SPIR-V grammar into a typed AST,
// applies fix-up patches, and feeds the code generator.
package grammar

// Category classifies an operand kind.
type Category int

const (
	CategoryBitEnum Category = iota
	CategoryValueEnum
	CategoryID
	CategoryLiteral
	CategoryComposite
)

var categoryJSONNames = map[string]Category{
	"BitEnum":   CategoryBitEnum,
	"ValueEnum": CategoryValueEnum,
	"Id":        CategoryID,
	"Literal":   CategoryLiteral,
	"Composite": CategoryComposite,
}

func (c Category) String() string {
	for name, category := range categoryJSONNames {
		if category == c {
			return name
		}
	}
	return "unknown"
}

// IsEnum reports whether the category carries enumerants.
func (c Category) IsEnum() bool {
	return c == CategoryBitEnum || c == CategoryValueEnum
}

// Copyright is the grammar's copyright header, one string per line.
type Copyright struct {
	Lines []string
}

// Parameter is one operand a parameter-bearing enumerant carries.
type Parameter struct {
	Kind string
	Name string // optional; empty when the upstream grammar omits it
}

// Enumerant is a single named value of a bit or value enum.
type Enumerant struct {
	Name         string
	Value        uint32
	Capabilities []string
	Extensions   []string
	Parameters   []Parameter
}

// OperandKind is one entry of operand_kinds. Exactly one of Enumerants, Doc
// and Bases is populated, selected by Category.
type OperandKind struct {
	Category   Category
	Kind       string
	Enumerants []Enumerant // BitEnum, ValueEnum
	Doc        string      // Id, Literal
	Bases      []string    // Composite
}

// Quantifier describes how often an instruction operand appears.
type Quantifier int

const (
	QuantifierOne Quantifier = iota
	QuantifierOptional
	QuantifierVariadic
)

// Operand is one operand slot of an instruction.
type Operand struct {
	Kind       string
	Name       string // optional
	Quantifier Quantifier
}

// Instruction is one instruction of the core grammar or an extension set.
type Instruction struct {
	Opname       string
	Opcode       uint32
	Operands     []Operand
	Capabilities []string
	Extensions   []string
}

// ExtensionInstructionSet is an importable instruction set grammar.
type ExtensionInstructionSet struct {
	ImportName   string
	Version      uint32
	Revision     uint32
	Instructions []Instruction
}

// TopLevel is the whole loaded grammar.
type TopLevel struct {
	Copyright    Copyright
	MagicNumber  uint32
	MajorVersion uint32
	MinorVersion uint32
	Revision     uint32
	Instructions []Instruction
	OperandKinds []OperandKind

	ExtensionInstructionSets []ExtensionInstructionSet

	// ExtensionNames is the inferred Extension enum: every extension string
	// referenced by an operand-kind enumerant or a core instruction, sorted
	// and deduplicated. Extension-set instructions are not scanned.
	ExtensionNames []string
}

// FindOperandKind returns the operand kind with the given name.
func (t *TopLevel) FindOperandKind(kind string) *OperandKind {
	for i := range t.OperandKinds {
		if t.OperandKinds[i].Kind == kind {
			return &t.OperandKinds[i]
		}
	}
	return nil
}
