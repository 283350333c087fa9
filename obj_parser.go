// obj_parser.go - Wavefront OBJ mesh loading for the demo

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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	vk "github.com/goki/vulkan"
)

// VertexInput is the demo's per-vertex layout: one clip-space position.
type VertexInput struct {
	Position [4]float32
}

// Vertex input configuration matching VertexInput.
const (
	VertexInputPositionLocation = 0
	VertexInputStride           = 16
)

// VertexInputPositionFormat is the position attribute's format.
const VertexInputPositionFormat = vk.FormatR32g32b32a32Sfloat

// ObjParseError is a mesh loading failure with file and line context.
type ObjParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ObjParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

type objVertex struct {
	x, y, z float32
}

// parseFloats parses whitespace-separated decimal numbers; strconv is
// locale-independent by construction.
func parseFloats(fields []string) ([]float32, bool) {
	values := make([]float32, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, false
		}
		values = append(values, float32(v))
	}
	return values, true
}

// resolveIndex maps a 1-based or negative OBJ index onto the slice.
func resolveIndex(index, count int) (int, bool) {
	if index == 0 || index > count || index < -count {
		return 0, false
	}
	if index < 0 {
		return index + count, true
	}
	return index - 1, true
}

// transformVertex converts an OBJ-space vertex into a clip-space position:
// OBJ to OpenGL axes, a fixed camera offset, perspective projection, and the
// 4:3 aspect correction of the demo's output image.
func transformVertex(v objVertex) VertexInput {
	globalX := v.x
	globalY := -v.z
	globalZ := v.y
	cameraX := globalX
	cameraY := globalY
	cameraZ := globalZ - 1
	const farPlane = 10
	const factor = 1.0 / farPlane
	projectedX := factor * cameraX
	projectedY := -factor * cameraY
	projectedZ := -factor * cameraZ
	projectedW := -factor * cameraZ
	const xAspectRatioCorrection = 3.0 / 4
	return VertexInput{Position: [4]float32{
		projectedX * xAspectRatioCorrection,
		projectedY,
		projectedZ,
		projectedW,
	}}
}

// LoadWavefrontObj reads a mesh and returns one transformed vertex triple per
// triangle, faces fan-triangulated. Supported commands: comments, v, vt, vn,
// "s off", and f with v, v/vt, v/vt/vn or v//vn references; negative indices
// count from the end.
func LoadWavefrontObj(path string) ([]VertexInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ObjParseError{File: path, Line: 0, Msg: "failed to open file"}
	}
	defer f.Close()

	var retval []VertexInput
	var vertexes []objVertex
	textureCount, normalCount := 0, 0

	fail := func(line int, msg string) error {
		return &ObjParseError{File: path, Line: line, Msg: msg}
	}

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		command := fields[0]
		args := fields[1:]
		switch command {
		case "v":
			values, ok := parseFloats(args)
			if !ok || len(values) != 3 {
				return nil, fail(lineNumber, "parsing vertex command failed")
			}
			vertexes = append(vertexes, objVertex{values[0], values[1], values[2]})
		case "vt":
			values, ok := parseFloats(args)
			if !ok || len(values) != 2 {
				return nil, fail(lineNumber, "parsing vertex texture command failed")
			}
			textureCount++
		case "vn":
			values, ok := parseFloats(args)
			if !ok || len(values) != 3 {
				return nil, fail(lineNumber, "parsing vertex normal command failed")
			}
			normalCount++
		case "s":
			// smoothing groups are accepted and ignored
			if len(args) != 1 || args[0] != "off" {
				return nil, fail(lineNumber, "unimplemented smoothing group: "+line)
			}
		case "f":
			if len(args) < 3 {
				return nil, fail(lineNumber, "faces must have at least 3 vertexes")
			}
			transformed := make([]VertexInput, 0, len(args))
			for _, reference := range args {
				parts := strings.Split(reference, "/")
				if len(parts) > 3 {
					return nil, fail(lineNumber, "invalid face vertex: "+reference)
				}
				index, err := strconv.Atoi(parts[0])
				if err != nil {
					return nil, fail(lineNumber, "invalid vertex index: "+parts[0])
				}
				resolved, ok := resolveIndex(index, len(vertexes))
				if !ok {
					return nil, fail(lineNumber, "invalid vertex index: "+parts[0])
				}
				// texture and normal references only need to be in range
				if len(parts) > 1 && parts[1] != "" {
					ti, err := strconv.Atoi(parts[1])
					if err != nil {
						return nil, fail(lineNumber,
							"invalid texture vertex index: "+parts[1])
					}
					if _, ok := resolveIndex(ti, textureCount); !ok {
						return nil, fail(lineNumber,
							"invalid texture vertex index: "+parts[1])
					}
				}
				if len(parts) > 2 && parts[2] != "" {
					ni, err := strconv.Atoi(parts[2])
					if err != nil {
						return nil, fail(lineNumber,
							"invalid normal vertex index: "+parts[2])
					}
					if _, ok := resolveIndex(ni, normalCount); !ok {
						return nil, fail(lineNumber,
							"invalid normal vertex index: "+parts[2])
					}
				}
				transformed = append(transformed, transformVertex(vertexes[resolved]))
			}
			// fan triangulation around the first face vertex
			for leading := 2; leading < len(transformed); leading++ {
				retval = append(retval, transformed[0],
					transformed[leading-1], transformed[leading])
			}
		default:
			return nil, fail(lineNumber, "unimplemented command: "+command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fail(lineNumber, "read failed: "+err.Error())
	}
	return retval, nil
}
