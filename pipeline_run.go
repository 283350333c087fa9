// pipeline_run.go - Vertex fetch, primitive assembly and triangle rasterization

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
	"encoding/binary"
	"math"

	vk "github.com/goki/vulkan"
)

// decodeAttribute reads one attribute per its format; missing components take
// the (0, 0, 0, 1) defaults.
func decodeAttribute(format vk.Format, data []byte) [4]float32 {
	component := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	value := [4]float32{0, 0, 0, 1}
	switch format {
	case vk.FormatR32Sfloat:
		value[0] = component(0)
	case vk.FormatR32g32Sfloat:
		value[0], value[1] = component(0), component(1)
	case vk.FormatR32g32b32Sfloat:
		value[0], value[1], value[2] = component(0), component(1), component(2)
	case vk.FormatR32g32b32a32Sfloat:
		value[0], value[1], value[2], value[3] =
			component(0), component(1), component(2), component(3)
	}
	return value
}

// screenVertex is a vertex after perspective divide and viewport transform.
type screenVertex struct {
	x, y, z float32
}

// Run executes the pipeline synchronously: fetch the vertex range from the
// bindings, run the vertex entry point, assemble triangles, rasterize into
// the color attachment, and invoke the fragment entry point per covered
// pixel. Run returns only after every fragment has been written; results are
// bit-deterministic for a given pipeline and inputs.
func (p *GraphicsPipeline) Run(vertexStart, vertexEnd, instanceID uint32,
	colorAttachment *Image, vertexBindings [][]byte) {
	if p.rasterization.RasterizerDiscardEnable {
		return
	}
	vertexCount := vertexEnd - vertexStart
	positions := make([][4]float32, vertexCount)
	attributes := map[uint32][4]float32{}
	strides := map[uint32]uint32{}
	for _, binding := range p.vertexInput.Bindings {
		strides[binding.Binding] = binding.Stride
	}
	for i := uint32(0); i < vertexCount; i++ {
		for _, attribute := range p.vertexInput.Attributes {
			base := i*strides[attribute.Binding] + attribute.Offset
			size := uint32(formatPixelSize(attribute.Format))
			data := vertexBindings[attribute.Binding][base : base+size]
			attributes[attribute.Location] = decodeAttribute(attribute.Format, data)
		}
		positions[i] = p.vertexExec.run(attributes, vertexStart+i, instanceID)
	}
	// the demo path draws independent triangles
	if p.inputAssembly.Topology != vk.PrimitiveTopologyTriangleList {
		return
	}
	for i := 0; i+2 < len(positions); i += 3 {
		p.rasterizeTriangle(colorAttachment,
			positions[i], positions[i+1], positions[i+2])
	}
}

// toScreen performs the perspective divide and viewport transform.
func toScreen(clip [4]float32, viewport vk.Viewport) screenVertex {
	invW := 1 / clip[3]
	ndcX, ndcY, ndcZ := clip[0]*invW, clip[1]*invW, clip[2]*invW
	return screenVertex{
		x: viewport.X + (ndcX+1)*0.5*viewport.Width,
		y: viewport.Y + (ndcY+1)*0.5*viewport.Height,
		z: viewport.MinDepth + ndcZ*(viewport.MaxDepth-viewport.MinDepth),
	}
}

// edgeFunction computes the signed area of the parallelogram spanned by
// (a->b) and (a->c).
func edgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func (p *GraphicsPipeline) rasterizeTriangle(attachment *Image, c0, c1, c2 [4]float32) {
	// triangles reaching behind the eye are dropped whole; the demo geometry
	// never straddles the near plane
	const minW = 1e-6
	if c0[3] <= minW || c1[3] <= minW || c2[3] <= minW {
		return
	}
	if len(p.viewport.Viewports) == 0 {
		return
	}
	viewport := p.viewport.Viewports[0]
	v0 := toScreen(c0, viewport)
	v1 := toScreen(c1, viewport)
	v2 := toScreen(c2, viewport)

	area := edgeFunction(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// with the axes of framebuffer space (y pointing down), a negative signed
	// area means the vertices wind clockwise on screen
	clockwise := area < 0
	frontFacing := clockwise == (p.rasterization.FrontFace == vk.FrontFaceClockwise)
	cullMode := vk.CullModeFlagBits(p.rasterization.CullMode)
	if frontFacing && cullMode&vk.CullModeFrontBit != 0 {
		return
	}
	if !frontFacing && cullMode&vk.CullModeBackBit != 0 {
		return
	}
	if area < 0 {
		v0, v2 = v2, v0
		area = -area
	}

	minX := int(floorf(min3(v0.x, v1.x, v2.x)))
	maxX := int(ceilf(max3(v0.x, v1.x, v2.x)))
	minY := int(floorf(min3(v0.y, v1.y, v2.y)))
	maxY := int(ceilf(max3(v0.y, v1.y, v2.y)))

	width := int(attachment.Descriptor.Extent.Width)
	height := int(attachment.Descriptor.Extent.Height)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, width), min(maxY, height)
	if len(p.viewport.Scissors) > 0 {
		scissor := p.viewport.Scissors[0]
		minX = max(minX, int(scissor.Offset.X))
		minY = max(minY, int(scissor.Offset.Y))
		maxX = min(maxX, int(scissor.Offset.X)+int(scissor.Extent.Width))
		maxY = min(maxY, int(scissor.Offset.Y)+int(scissor.Extent.Height))
	}

	stride := attachment.Descriptor.MemoryStride()
	pixelSize := formatPixelSize(attachment.Descriptor.Format)
	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		rowBase := y * stride
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFunction(v1.x, v1.y, v2.x, v2.y, px, py)
			w1 := edgeFunction(v2.x, v2.y, v0.x, v0.y, px, py)
			w2 := edgeFunction(v0.x, v0.y, v1.x, v1.y, px, py)
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				offset := rowBase + x*pixelSize
				p.fragmentExec.run(attachment.Memory[offset : offset+pixelSize])
			}
		}
	}
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func ceilf(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func min3(a, b, c float32) float32 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func max3(a, b, c float32) float32 {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
