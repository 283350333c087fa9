// patch.go - Ordered fix-up transforms applied to the loaded grammar

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
	"fmt"
	"io"
)

// Patch is one named transform over the AST. Apply returns whether a change
// was made; applying a patch twice must leave the AST as after one
// application.
type Patch interface {
	Name() string
	Apply(topLevel *TopLevel) bool
}

// Patches returns the configured transforms, in application order.
func Patches() []Patch {
	return []Patch{
		addImageOperandsGradParameterNames{},
	}
}

// RunPatches applies every patch in order, logging one line per patch to
// logOutput when it is non-nil.
func RunPatches(topLevel *TopLevel, patches []Patch, logOutput io.Writer) {
	for _, patch := range patches {
		applied := patch.Apply(topLevel)
		if logOutput != nil {
			if applied {
				fmt.Fprintf(logOutput, "PATCH %s: applied\n", patch.Name())
			} else {
				fmt.Fprintf(logOutput, "PATCH %s: not applicable\n", patch.Name())
			}
		}
	}
}

// addImageOperandsGradParameterNames names the two Grad parameters of
// ImageOperands, which the upstream grammar leaves anonymous.
type addImageOperandsGradParameterNames struct{}

func (addImageOperandsGradParameterNames) Name() string {
	return "add_image_operands_grad_parameter_names"
}

func (addImageOperandsGradParameterNames) Apply(topLevel *TopLevel) bool {
	kind := topLevel.FindOperandKind("ImageOperands")
	if kind == nil || !kind.Category.IsEnum() {
		return false
	}
	for i := range kind.Enumerants {
		enumerant := &kind.Enumerants[i]
		if enumerant.Name != "Grad" {
			continue
		}
		if len(enumerant.Parameters) != 2 {
			return false
		}
		dx, dy := &enumerant.Parameters[0], &enumerant.Parameters[1]
		if dx.Name != "" || dy.Name != "" {
			return false
		}
		dx.Name = "dx"
		dy.Name = "dy"
		return true
	}
	return false
}
