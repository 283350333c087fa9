// reader.go - Grammar JSON loading and validation

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
	"sort"

	"github.com/intuitionamiga/IntuitionVulkan/fspath"
	"github.com/intuitionamiga/IntuitionVulkan/jsonast"
	"github.com/intuitionamiga/IntuitionVulkan/softfloat"
)

// CoreGrammarFileName is the required core grammar file.
const CoreGrammarFileName = "spirv.core.grammar.json"

// extensionSetFileNames maps the known extension instruction set grammar
// files to their import names.
var extensionSetFileNames = []struct {
	FileName   string
	ImportName string
}{
	{"extinst.glsl.std.450.grammar.json", "GLSL.std.450"},
	{"extinst.opencl.std.100.grammar.json", "OpenCL.std"},
}

// FilesystemError wraps an I/O failure with the path it happened on.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Files holds the loaded grammar sources before parsing.
type Files struct {
	Core          *jsonast.Source
	ExtensionSets []ExtensionSetFile
}

// ExtensionSetFile pairs an extension set source with its import name.
type ExtensionSetFile struct {
	ImportName string
	Source     *jsonast.Source
}

// ReadRequiredFiles loads the core grammar and any known extension set
// grammars present in the directory. Only the core file is mandatory.
func ReadRequiredFiles(directory string) (*Files, error) {
	dir := fspath.New(directory)
	corePath := dir.JoinString(CoreGrammarFileName).String()
	core, err := jsonast.LoadFile(corePath)
	if err != nil {
		return nil, &FilesystemError{Op: "open", Path: corePath, Err: err}
	}
	files := &Files{Core: core}
	for _, entry := range extensionSetFileNames {
		path := dir.JoinString(entry.FileName).String()
		source, err := jsonast.LoadFile(path)
		if err != nil {
			continue
		}
		files.ExtensionSets = append(files.ExtensionSets, ExtensionSetFile{
			ImportName: entry.ImportName,
			Source:     source,
		})
	}
	return files, nil
}

// ParseError is a grammar validation failure with the JSON breadcrumb path
// it was detected at.
type ParseError struct {
	Path string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "error: " + e.Msg
	}
	return e.Path + ": error: " + e.Msg
}

// pathBuilder forms breadcrumbs like root["operand_kinds"][7]["enumerants"]
// without building strings until an error actually fires.
type pathBuilder struct {
	parent  *pathBuilder
	key     string
	index   int
	isIndex bool
}

func (b *pathBuilder) child(key string) *pathBuilder {
	return &pathBuilder{parent: b, key: key}
}

func (b *pathBuilder) element(index int) *pathBuilder {
	return &pathBuilder{parent: b, index: index, isIndex: true}
}

func (b *pathBuilder) String() string {
	if b == nil {
		return "root"
	}
	prefix := b.parent.String()
	if b.isIndex {
		return prefix + "[" + string(softfloat.AppendInt(nil, int64(b.index), 10)) + "]"
	}
	return prefix + "[\"" + b.key + "\"]"
}

func (b *pathBuilder) errorf(msg string) error {
	return &ParseError{Path: b.String(), Msg: msg}
}

// Parse builds and validates the AST from loaded grammar files.
func Parse(files *Files) (*TopLevel, error) {
	coreValue, err := jsonast.Parse(files.Core, jsonast.Options{})
	if err != nil {
		return nil, err
	}
	topLevel, err := parseCore(coreValue)
	if err != nil {
		return nil, err
	}
	for _, extensionSet := range files.ExtensionSets {
		value, err := jsonast.Parse(extensionSet.Source, jsonast.Options{})
		if err != nil {
			return nil, err
		}
		parsed, err := parseExtensionSet(extensionSet.ImportName, value)
		if err != nil {
			return nil, err
		}
		topLevel.ExtensionInstructionSets = append(topLevel.ExtensionInstructionSets, *parsed)
	}
	if err := validate(topLevel); err != nil {
		return nil, err
	}
	return topLevel, nil
}

func asObject(v jsonast.Value) (*jsonast.Object, bool) {
	object, ok := v.(*jsonast.Object)
	return object, ok
}

func parseString(v jsonast.Value, b *pathBuilder, name string) (string, error) {
	s, ok := v.(*jsonast.String)
	if !ok {
		return "", b.errorf(name + " is not a string")
	}
	return s.Value, nil
}

func parseUint32(v jsonast.Value, b *pathBuilder, name string) (uint32, error) {
	n, ok := v.(*jsonast.Number)
	if !ok {
		return 0, b.errorf(name + " is not a number")
	}
	retval := uint32(n.Value)
	if float64(retval) != n.Value {
		return 0, b.errorf(name + " is not an integer")
	}
	return retval, nil
}

// parseHexString reads a "0x..."-style string into an integer.
func parseHexString(v jsonast.Value, b *pathBuilder, name string) (uint32, error) {
	s, ok := v.(*jsonast.String)
	if !ok {
		return 0, b.errorf(name + " is not a string")
	}
	text := s.Value
	if len(text) < 3 || text[0] != '0' || (text[1] != 'x' && text[1] != 'X') {
		return 0, b.errorf(name + " is not a valid hex number in a string")
	}
	var retval uint64
	for i := 2; i < len(text); i++ {
		digit := softfloat.DigitValue(text[i], 16)
		if digit < 0 {
			return 0, b.errorf(name + ": not a valid hex digit")
		}
		retval = retval<<4 | uint64(digit)
		if retval > 0xFFFFFFFF {
			return 0, b.errorf(name + ": value too big")
		}
	}
	return uint32(retval), nil
}

// parseEnumValue accepts either a plain number (value enums) or a hex string
// (bit enums).
func parseEnumValue(v jsonast.Value, b *pathBuilder, name string) (uint32, error) {
	if _, ok := v.(*jsonast.String); ok {
		return parseHexString(v, b, name)
	}
	return parseUint32(v, b, name)
}

func parseStringArray(v jsonast.Value, b *pathBuilder, name string) ([]string, error) {
	array, ok := v.(*jsonast.Array)
	if !ok {
		return nil, b.errorf(name + " is not an array")
	}
	retval := make([]string, 0, len(array.Values))
	for i, element := range array.Values {
		s, err := parseString(element, b.element(i), name+" element")
		if err != nil {
			return nil, err
		}
		retval = append(retval, s)
	}
	return retval, nil
}

func parseCore(value jsonast.Value) (*TopLevel, error) {
	object, ok := asObject(value)
	if !ok {
		return nil, (*pathBuilder)(nil).errorf("top level value is not an object")
	}
	topLevel := &TopLevel{}
	seen := map[string]bool{}
	for _, key := range object.Keys() {
		entry, _ := object.Get(key)
		b := (*pathBuilder)(nil).child(key)
		var err error
		switch key {
		case "copyright":
			topLevel.Copyright.Lines, err = parseStringArray(entry, b, "copyright")
		case "magic_number":
			topLevel.MagicNumber, err = parseHexString(entry, b, "magic_number")
		case "major_version":
			topLevel.MajorVersion, err = parseUint32(entry, b, "major_version")
		case "minor_version":
			topLevel.MinorVersion, err = parseUint32(entry, b, "minor_version")
		case "revision":
			topLevel.Revision, err = parseUint32(entry, b, "revision")
		case "instructions":
			topLevel.Instructions, err = parseInstructions(entry, b)
		case "operand_kinds":
			topLevel.OperandKinds, err = parseOperandKinds(entry, b)
		default:
			err = b.errorf("unknown key")
		}
		if err != nil {
			return nil, err
		}
		seen[key] = true
	}
	for _, required := range []string{
		"copyright", "magic_number", "major_version", "minor_version",
		"revision", "instructions", "operand_kinds",
	} {
		if !seen[required] {
			return nil, (*pathBuilder)(nil).errorf("missing " + required)
		}
	}
	return topLevel, nil
}

func parseExtensionSet(importName string, value jsonast.Value) (*ExtensionInstructionSet, error) {
	object, ok := asObject(value)
	if !ok {
		return nil, (*pathBuilder)(nil).errorf("top level value is not an object")
	}
	set := &ExtensionInstructionSet{ImportName: importName}
	for _, key := range object.Keys() {
		entry, _ := object.Get(key)
		b := (*pathBuilder)(nil).child(key)
		var err error
		switch key {
		case "copyright":
			_, err = parseStringArray(entry, b, "copyright")
		case "version":
			set.Version, err = parseUint32(entry, b, "version")
		case "revision":
			set.Revision, err = parseUint32(entry, b, "revision")
		case "instructions":
			set.Instructions, err = parseInstructions(entry, b)
		default:
			err = b.errorf("unknown key")
		}
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

func parseInstructions(value jsonast.Value, parent *pathBuilder) ([]Instruction, error) {
	array, ok := value.(*jsonast.Array)
	if !ok {
		return nil, parent.errorf("instructions is not an array")
	}
	instructions := make([]Instruction, 0, len(array.Values))
	for i, element := range array.Values {
		instruction, err := parseInstruction(element, parent.element(i))
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, *instruction)
	}
	return instructions, nil
}

func parseInstruction(value jsonast.Value, b *pathBuilder) (*Instruction, error) {
	object, ok := asObject(value)
	if !ok {
		return nil, b.errorf("instruction is not an object")
	}
	instruction := &Instruction{}
	gotOpname, gotOpcode := false, false
	for _, key := range object.Keys() {
		entry, _ := object.Get(key)
		kb := b.child(key)
		var err error
		switch key {
		case "opname":
			instruction.Opname, err = parseString(entry, kb, "opname")
			gotOpname = true
		case "opcode":
			instruction.Opcode, err = parseUint32(entry, kb, "opcode")
			gotOpcode = true
		case "operands":
			instruction.Operands, err = parseOperands(entry, kb)
		case "capabilities":
			instruction.Capabilities, err = parseStringArray(entry, kb, "capabilities")
		case "extensions":
			instruction.Extensions, err = parseStringArray(entry, kb, "extensions")
		default:
			err = kb.errorf("unknown key")
		}
		if err != nil {
			return nil, err
		}
	}
	if !gotOpname {
		return nil, b.errorf("missing opname")
	}
	if !gotOpcode {
		return nil, b.errorf("missing opcode")
	}
	return instruction, nil
}

func parseOperands(value jsonast.Value, parent *pathBuilder) ([]Operand, error) {
	array, ok := value.(*jsonast.Array)
	if !ok {
		return nil, parent.errorf("operands is not an array")
	}
	operands := make([]Operand, 0, len(array.Values))
	for i, element := range array.Values {
		b := parent.element(i)
		object, ok := asObject(element)
		if !ok {
			return nil, b.errorf("operand is not an object")
		}
		operand := Operand{}
		for _, key := range object.Keys() {
			entry, _ := object.Get(key)
			kb := b.child(key)
			var err error
			switch key {
			case "kind":
				operand.Kind, err = parseString(entry, kb, "kind")
			case "name":
				operand.Name, err = parseString(entry, kb, "name")
			case "quantifier":
				var q string
				q, err = parseString(entry, kb, "quantifier")
				if err == nil {
					switch q {
					case "?":
						operand.Quantifier = QuantifierOptional
					case "*":
						operand.Quantifier = QuantifierVariadic
					default:
						err = kb.errorf("unknown quantifier: " + q)
					}
				}
			default:
				err = kb.errorf("unknown key")
			}
			if err != nil {
				return nil, err
			}
		}
		if operand.Kind == "" {
			return nil, b.errorf("missing kind")
		}
		operands = append(operands, operand)
	}
	return operands, nil
}

func parseOperandKinds(value jsonast.Value, parent *pathBuilder) ([]OperandKind, error) {
	array, ok := value.(*jsonast.Array)
	if !ok {
		return nil, parent.errorf("operand_kinds is not an array")
	}
	kinds := make([]OperandKind, 0, len(array.Values))
	for i, element := range array.Values {
		kind, err := parseOperandKind(element, parent.element(i))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, *kind)
	}
	return kinds, nil
}

func parseOperandKind(value jsonast.Value, b *pathBuilder) (*OperandKind, error) {
	object, ok := asObject(value)
	if !ok {
		return nil, b.errorf("operand kind is not an object")
	}
	kind := &OperandKind{Category: -1}
	gotEnumerants, gotDoc, gotBases := false, false, false
	for _, key := range object.Keys() {
		entry, _ := object.Get(key)
		kb := b.child(key)
		var err error
		switch key {
		case "category":
			var name string
			name, err = parseString(entry, kb, "category")
			if err == nil {
				category, known := categoryJSONNames[name]
				if !known {
					err = kb.errorf("unknown category: " + name)
				} else {
					kind.Category = category
				}
			}
		case "kind":
			kind.Kind, err = parseString(entry, kb, "kind")
		case "enumerants":
			kind.Enumerants, err = parseEnumerants(entry, kb)
			gotEnumerants = true
		case "doc":
			kind.Doc, err = parseString(entry, kb, "doc")
			gotDoc = true
		case "bases":
			kind.Bases, err = parseStringArray(entry, kb, "bases")
			gotBases = true
		default:
			err = kb.errorf("unknown key")
		}
		if err != nil {
			return nil, err
		}
	}
	if kind.Category < 0 {
		return nil, b.errorf("missing category")
	}
	if kind.Kind == "" {
		return nil, b.errorf("missing kind")
	}
	// the category dictates which payload the entry must carry
	switch kind.Category {
	case CategoryBitEnum, CategoryValueEnum:
		if !gotEnumerants || gotDoc || gotBases {
			return nil, b.errorf("category " + kind.Category.String() + " requires enumerants")
		}
	case CategoryID, CategoryLiteral:
		if !gotDoc || gotEnumerants || gotBases {
			return nil, b.errorf("category " + kind.Category.String() + " requires doc")
		}
	case CategoryComposite:
		if !gotBases || gotEnumerants || gotDoc {
			return nil, b.errorf("category Composite requires bases")
		}
	}
	return kind, nil
}

func parseEnumerants(value jsonast.Value, parent *pathBuilder) ([]Enumerant, error) {
	array, ok := value.(*jsonast.Array)
	if !ok {
		return nil, parent.errorf("enumerants is not an array")
	}
	enumerants := make([]Enumerant, 0, len(array.Values))
	for i, element := range array.Values {
		b := parent.element(i)
		object, ok := asObject(element)
		if !ok {
			return nil, b.errorf("enumerant is not an object")
		}
		enumerant := Enumerant{}
		gotValue := false
		for _, key := range object.Keys() {
			entry, _ := object.Get(key)
			kb := b.child(key)
			var err error
			switch key {
			case "enumerant":
				enumerant.Name, err = parseString(entry, kb, "enumerant")
			case "value":
				enumerant.Value, err = parseEnumValue(entry, kb, "value")
				gotValue = true
			case "capabilities":
				enumerant.Capabilities, err = parseStringArray(entry, kb, "capabilities")
			case "extensions":
				enumerant.Extensions, err = parseStringArray(entry, kb, "extensions")
			case "parameters":
				enumerant.Parameters, err = parseParameters(entry, kb)
			default:
				err = kb.errorf("unknown key")
			}
			if err != nil {
				return nil, err
			}
		}
		if enumerant.Name == "" {
			return nil, b.errorf("missing enumerant")
		}
		if !gotValue {
			return nil, b.errorf("missing value")
		}
		enumerants = append(enumerants, enumerant)
	}
	return enumerants, nil
}

func parseParameters(value jsonast.Value, parent *pathBuilder) ([]Parameter, error) {
	array, ok := value.(*jsonast.Array)
	if !ok {
		return nil, parent.errorf("parameters is not an array")
	}
	parameters := make([]Parameter, 0, len(array.Values))
	for i, element := range array.Values {
		b := parent.element(i)
		object, ok := asObject(element)
		if !ok {
			return nil, b.errorf("parameter is not an object")
		}
		parameter := Parameter{}
		for _, key := range object.Keys() {
			entry, _ := object.Get(key)
			kb := b.child(key)
			var err error
			switch key {
			case "kind":
				parameter.Kind, err = parseString(entry, kb, "kind")
			case "name":
				parameter.Name, err = parseString(entry, kb, "name")
			default:
				err = kb.errorf("unknown key")
			}
			if err != nil {
				return nil, err
			}
		}
		if parameter.Kind == "" {
			return nil, b.errorf("missing kind")
		}
		parameters = append(parameters, parameter)
	}
	return parameters, nil
}

// validate enforces the cross-entry invariants: unique enum names, resolvable
// capabilities, and collects the inferred Extension enum.
func validate(topLevel *TopLevel) error {
	seenKinds := map[string]bool{}
	for _, kind := range topLevel.OperandKinds {
		if seenKinds[kind.Kind] {
			return &ParseError{Path: "root[\"operand_kinds\"]",
				Msg: "duplicate operand kind: " + kind.Kind}
		}
		seenKinds[kind.Kind] = true
	}
	capabilities := map[string]bool{}
	if capabilityKind := topLevel.FindOperandKind("Capability"); capabilityKind != nil {
		for _, enumerant := range capabilityKind.Enumerants {
			capabilities[enumerant.Name] = true
		}
	}
	extensions := map[string]bool{}
	checkCapabilities := func(names []string, where string) error {
		for _, name := range names {
			if !capabilities[name] {
				return &ParseError{Path: where, Msg: "unknown capability: " + name}
			}
		}
		return nil
	}
	for _, kind := range topLevel.OperandKinds {
		seenNames := map[string]bool{}
		for _, enumerant := range kind.Enumerants {
			if seenNames[enumerant.Name] {
				return &ParseError{Path: "root[\"operand_kinds\"]",
					Msg: "duplicate enumerant " + enumerant.Name + " in " + kind.Kind}
			}
			seenNames[enumerant.Name] = true
			if kind.Kind != "Capability" {
				if err := checkCapabilities(enumerant.Capabilities,
					"root[\"operand_kinds\"]"); err != nil {
					return err
				}
			}
			for _, extension := range enumerant.Extensions {
				extensions[extension] = true
			}
		}
	}
	for _, instruction := range topLevel.Instructions {
		if err := checkCapabilities(instruction.Capabilities,
			"root[\"instructions\"]"); err != nil {
			return err
		}
		for _, extension := range instruction.Extensions {
			extensions[extension] = true
		}
	}
	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	topLevel.ExtensionNames = names
	return nil
}
