// main.go - Demo entry point: render an OBJ mesh through the software pipeline

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
	"flag"
	"fmt"
	"math"
	"os"

	vk "github.com/goki/vulkan"
	"golang.org/x/term"
)

// Output image shape: width a multiple of 4, height three quarters of it.
const (
	windowWidth  = 1024
	windowHeight = windowWidth * 3 / 4
)

// Bundled demo assets used when no arguments are given.
const (
	defaultVertexShader   = "test-files/tri.vert.spv"
	defaultFragmentShader = "test-files/tri.frag.spv"
	defaultMesh           = "test-files/demo-text.obj"
)

func main() {
	display := flag.Bool("display", false, "Show the rendered frame in a window")
	outputFile := flag.String("o", "output.bmp", "Output image file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: demo [<file.vert.spv> <file.frag.spv> <vertexes.obj>]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	vertexShaderFile := defaultVertexShader
	fragmentShaderFile := defaultFragmentShader
	meshFile := defaultMesh
	if flag.NArg() > 0 {
		if flag.NArg() != 3 {
			flag.Usage()
			os.Exit(1)
		}
		vertexShaderFile = flag.Arg(0)
		fragmentShaderFile = flag.Arg(1)
		meshFile = flag.Arg(2)
	}

	if err := runDemo(vertexShaderFile, fragmentShaderFile, meshFile,
		*outputFile, *display); err != nil {
		prefix := "error:"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			prefix = "\x1b[31merror:\x1b[0m"
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
		os.Exit(1)
	}
}

func runDemo(vertexShaderFile, fragmentShaderFile, meshFile, outputFile string,
	display bool) error {
	vertexShader, err := LoadShaderModule(vertexShaderFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", vertexShaderFile, err)
	}
	fragmentShader, err := LoadShaderModule(fragmentShaderFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", fragmentShaderFile, err)
	}
	vertexes, err := LoadWavefrontObj(meshFile)
	if err != nil {
		return err
	}

	pipelineLayout := NewPipelineLayout(PipelineLayoutCreateInfo{})
	renderPass, err := NewRenderPass(RenderPassCreateInfo{
		Attachments: []vk.AttachmentDescription{
			{
				Format:         vk.FormatB8g8r8a8Unorm,
				Samples:        vk.SampleCount1Bit,
				LoadOp:         vk.AttachmentLoadOpClear,
				StoreOp:        vk.AttachmentStoreOpStore,
				StencilLoadOp:  vk.AttachmentLoadOpDontCare,
				StencilStoreOp: vk.AttachmentStoreOpDontCare,
				InitialLayout:  vk.ImageLayoutUndefined,
				FinalLayout:    vk.ImageLayoutPresentSrc,
			},
		},
		Subpasses: []SubpassDescription{
			{
				PipelineBindPoint: vk.PipelineBindPointGraphics,
				ColorAttachments: []vk.AttachmentReference{
					{Attachment: 0, Layout: vk.ImageLayoutColorAttachmentOptimal},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	pipeline, err := NewGraphicsPipeline(nil, GraphicsPipelineCreateInfo{
		Stages: []ShaderStageInfo{
			{
				Stage:          vk.ShaderStageVertexBit,
				Module:         vertexShader,
				EntryPointName: "main",
			},
			{
				Stage:          vk.ShaderStageFragmentBit,
				Module:         fragmentShader,
				EntryPointName: "main",
			},
		},
		VertexInput: VertexInputState{
			Bindings: []vk.VertexInputBindingDescription{
				{
					Binding:   0,
					Stride:    VertexInputStride,
					InputRate: vk.VertexInputRateVertex,
				},
			},
			Attributes: []vk.VertexInputAttributeDescription{
				{
					Location: VertexInputPositionLocation,
					Binding:  0,
					Format:   VertexInputPositionFormat,
					Offset:   0,
				},
			},
		},
		InputAssembly: InputAssemblyState{
			Topology: vk.PrimitiveTopologyTriangleList,
		},
		Viewport: ViewportState{
			Viewports: []vk.Viewport{
				{
					X: 0, Y: 0,
					Width: windowWidth, Height: windowHeight,
					MinDepth: 0, MaxDepth: 1,
				},
			},
			Scissors: []vk.Rect2D{
				{
					Offset: vk.Offset2D{X: 0, Y: 0},
					Extent: vk.Extent2D{Width: windowWidth, Height: windowHeight},
				},
			},
		},
		Rasterization: RasterizationState{
			PolygonMode: vk.PolygonModeFill,
			CullMode:    vk.CullModeFlags(vk.CullModeNone),
			FrontFace:   vk.FrontFaceCounterClockwise,
			LineWidth:   1,
		},
		Multisample: MultisampleState{
			RasterizationSamples: vk.SampleCount1Bit,
		},
		ColorBlend: ColorBlendState{
			Attachments: []vk.PipelineColorBlendAttachmentState{
				{
					BlendEnable:         vk.False,
					SrcColorBlendFactor: vk.BlendFactorSrcColor,
					DstColorBlendFactor: vk.BlendFactorZero,
					ColorBlendOp:        vk.BlendOpAdd,
					SrcAlphaBlendFactor: vk.BlendFactorSrcAlpha,
					DstAlphaBlendFactor: vk.BlendFactorZero,
					AlphaBlendOp:        vk.BlendOpAdd,
					ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit |
						vk.ColorComponentGBit | vk.ColorComponentBBit |
						vk.ColorComponentABit),
				},
			},
		},
		Layout:     pipelineLayout,
		RenderPass: renderPass,
	})
	if err != nil {
		return err
	}

	colorAttachment, err := NewImage(ImageCreateInfo{
		ImageType: vk.ImageType2d,
		Format:    vk.FormatB8g8r8a8Unorm,
		Extent:    vk.Extent3D{Width: windowWidth, Height: windowHeight, Depth: 1},
		Tiling:    vk.ImageTilingLinear,
		Usage: vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit |
			vk.ImageUsageTransferSrcBit),
	})
	if err != nil {
		return err
	}
	colorAttachment.Clear([4]float32{0.25, 0.25, 0.25, 1})

	vertexData := make([]byte, 0, len(vertexes)*VertexInputStride)
	for _, vertex := range vertexes {
		vertexData = appendVertex(vertexData, vertex)
	}
	pipeline.Run(0, uint32(len(vertexes)), 0, colorAttachment, [][]byte{vertexData})

	if err := SaveBMP(colorAttachment, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved output image to %s\n", outputFile)

	if display {
		return ShowPreviewWindow(colorAttachment)
	}
	return nil
}

// appendVertex encodes one vertex in the binding's byte layout.
func appendVertex(dst []byte, vertex VertexInput) []byte {
	for _, component := range vertex.Position {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(component))
	}
	return dst
}
