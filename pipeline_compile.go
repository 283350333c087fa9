// pipeline_compile.go - Entry point analysis and executable construction

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

package main

import (
	"errors"

	"github.com/intuitionamiga/IntuitionVulkan/spirv"
)

// The opcode and enum subset the entry point analysis needs.
const (
	opDecorate uint16 = 71
	opVariable uint16 = 59

	decorationBuiltIn  spirv.Word = 11
	decorationLocation spirv.Word = 30

	storageClassInput spirv.Word = 1
)

// shaderInputLocations collects the Location decorations of the entry point's
// input interface variables. Built-in inputs carry no location and are
// skipped.
func shaderInputLocations(module *spirv.Module, entryPoint *spirv.EntryPoint) (map[uint32]bool, error) {
	locations := map[spirv.Word]spirv.Word{}
	builtins := map[spirv.Word]bool{}
	inputVariables := map[spirv.Word]bool{}
	err := module.ForEachInstruction(func(instruction spirv.Instruction) error {
		switch instruction.Opcode {
		case opDecorate:
			if len(instruction.Operands) >= 3 {
				switch instruction.Operands[1] {
				case decorationLocation:
					locations[instruction.Operands[0]] = instruction.Operands[2]
				case decorationBuiltIn:
					builtins[instruction.Operands[0]] = true
				}
			}
		case opVariable:
			if len(instruction.Operands) >= 3 &&
				instruction.Operands[2] == storageClassInput {
				inputVariables[instruction.Operands[1]] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	inputLocations := map[uint32]bool{}
	for _, id := range entryPoint.Interface {
		if !inputVariables[id] {
			continue
		}
		location, ok := locations[id]
		if !ok {
			if builtins[id] {
				continue
			}
			return nil, errors.New("shader input variable carries no location")
		}
		inputLocations[uint32(location)] = true
	}
	return inputLocations, nil
}

// vertexExecutable turns fetched attributes into one clip-space position.
type vertexExecutable interface {
	run(attributes map[uint32][4]float32, vertexIndex, instanceID uint32) [4]float32
}

// fragmentExecutable writes one pixel in the attachment's format.
type fragmentExecutable interface {
	run(pixel []byte)
}

// positionPassthrough is the reach of the in-tree shader compiler's vertex
// side: the lowest-numbered input location streams through as the clip-space
// position.
type positionPassthrough struct {
	positionLocation uint32
}

func (v positionPassthrough) run(attributes map[uint32][4]float32, vertexIndex, instanceID uint32) [4]float32 {
	return attributes[v.positionLocation]
}

// solidColor is the fragment side: one opaque color in B8G8R8A8 byte order.
type solidColor struct {
	b, g, r, a byte
}

func (f solidColor) run(pixel []byte) {
	pixel[0] = f.b
	pixel[1] = f.g
	pixel[2] = f.r
	pixel[3] = f.a
}

func compileVertexEntryPoint(module *spirv.Module, entryPoint *spirv.EntryPoint,
	inputLocations map[uint32]bool) (vertexExecutable, error) {
	position := uint32(0)
	first := true
	for location := range inputLocations {
		if first || location < position {
			position = location
			first = false
		}
	}
	if first {
		return nil, errors.New("vertex entry point declares no input locations")
	}
	return positionPassthrough{positionLocation: position}, nil
}

func compileFragmentEntryPoint(module *spirv.Module, entryPoint *spirv.EntryPoint) (fragmentExecutable, error) {
	return solidColor{b: 0xFF, g: 0xFF, r: 0xFF, a: 0xFF}, nil
}

// RunFragmentShader invokes the compiled fragment entry point on one pixel,
// written in B8G8R8A8 byte order.
func (p *GraphicsPipeline) RunFragmentShader(pixel []byte) {
	p.fragmentExec.run(pixel)
}
