// entry_points.go - OpEntryPoint extraction

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

package spirv

import "errors"

// Execution models of OpEntryPoint.
const (
	ExecutionModelVertex   Word = 0
	ExecutionModelFragment Word = 4
)

const opEntryPoint uint16 = 15

// EntryPoint is one OpEntryPoint declaration.
type EntryPoint struct {
	ExecutionModel Word
	ID             Word
	Name           string
	Interface      []Word // ids of the in/out variables forming the interface
}

// EntryPoints scans the module for OpEntryPoint instructions. The name is
// read straight out of the word array through a LiteralString view.
func (m *Module) EntryPoints() ([]EntryPoint, error) {
	var entryPoints []EntryPoint
	err := m.ForEachInstruction(func(instruction Instruction) error {
		if instruction.Opcode != opEntryPoint {
			return nil
		}
		if len(instruction.Operands) < 3 {
			return errors.New("spirv: OpEntryPoint is too short")
		}
		name, nameWords, ok := ParseLiteralString(instruction.Operands[2:])
		if !ok {
			return errors.New("spirv: OpEntryPoint name is not terminated")
		}
		entryPoints = append(entryPoints, EntryPoint{
			ExecutionModel: instruction.Operands[0],
			ID:             instruction.Operands[1],
			Name:           name.String(),
			Interface:      instruction.Operands[2+nameWords:],
		})
		return nil
	})
	return entryPoints, err
}

// FindEntryPoint locates an entry point by name and execution model.
func (m *Module) FindEntryPoint(name string, executionModel Word) (*EntryPoint, error) {
	entryPoints, err := m.EntryPoints()
	if err != nil {
		return nil, err
	}
	for i := range entryPoints {
		if entryPoints[i].ExecutionModel == executionModel && entryPoints[i].Name == name {
			return &entryPoints[i], nil
		}
	}
	return nil, nil
}
