// pipeline.go - Shader modules, layouts, render passes and graphics pipelines

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
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/intuitionamiga/IntuitionVulkan/spirv"
)

// ShaderModule owns a decoded SPIR-V word array. Creation validates only the
// magic word and word-count consistency; semantic checks wait for pipeline
// creation.
type ShaderModule struct {
	Module *spirv.Module
}

// NewShaderModule decodes SPIR-V bytes into a module.
func NewShaderModule(code []byte) (*ShaderModule, error) {
	module, err := spirv.Decode(code)
	if err != nil {
		return nil, err
	}
	return &ShaderModule{Module: module}, nil
}

// LoadShaderModule reads a SPIR-V file into a module.
func LoadShaderModule(path string) (*ShaderModule, error) {
	module, err := spirv.Load(path)
	if err != nil {
		return nil, err
	}
	return &ShaderModule{Module: module}, nil
}

// PipelineLayoutCreateInfo describes descriptor set layouts and push constant
// ranges; the demo pipeline uses an empty layout.
type PipelineLayoutCreateInfo struct {
	SetLayouts         []DescriptorSetLayout
	PushConstantRanges []vk.PushConstantRange
}

// DescriptorSetLayout is a placeholder shape for the unsupported descriptor
// path; the software pipeline accepts any layout and never reads its bindings.
type DescriptorSetLayout struct {
	Bindings []vk.DescriptorSetLayoutBinding
}

// PipelineLayout is the shareable layout object.
type PipelineLayout struct {
	Info PipelineLayoutCreateInfo
}

// NewPipelineLayout copies the create info into a layout handle.
func NewPipelineLayout(info PipelineLayoutCreateInfo) *PipelineLayout {
	return &PipelineLayout{Info: info}
}

// SubpassDescription mirrors the API's subpass description with slices.
type SubpassDescription struct {
	PipelineBindPoint      vk.PipelineBindPoint
	InputAttachments       []vk.AttachmentReference
	ColorAttachments       []vk.AttachmentReference
	ResolveAttachments     []vk.AttachmentReference
	DepthStencilAttachment *vk.AttachmentReference
	PreserveAttachments    []uint32
}

// RenderPassCreateInfo mirrors the API's render pass description.
type RenderPassCreateInfo struct {
	Attachments  []vk.AttachmentDescription
	Subpasses    []SubpassDescription
	Dependencies []vk.SubpassDependency
}

// RenderPass is the shareable render pass object.
type RenderPass struct {
	Info RenderPassCreateInfo
}

// NewRenderPass validates attachment references and copies the description.
func NewRenderPass(info RenderPassCreateInfo) (*RenderPass, error) {
	for _, subpass := range info.Subpasses {
		references := make([]vk.AttachmentReference, 0,
			len(subpass.ColorAttachments)+len(subpass.InputAttachments)+
				len(subpass.ResolveAttachments))
		references = append(references, subpass.ColorAttachments...)
		references = append(references, subpass.InputAttachments...)
		references = append(references, subpass.ResolveAttachments...)
		for _, reference := range references {
			if int(reference.Attachment) >= len(info.Attachments) {
				return nil, fmt.Errorf(
					"render pass: attachment reference %d out of range",
					reference.Attachment)
			}
		}
	}
	return &RenderPass{Info: info}, nil
}

// ShaderStageInfo binds one shader module to a pipeline stage.
type ShaderStageInfo struct {
	Stage          vk.ShaderStageFlagBits
	Module         *ShaderModule
	EntryPointName string
}

// VertexInputState is the fixed-function vertex fetch configuration.
type VertexInputState struct {
	Bindings   []vk.VertexInputBindingDescription
	Attributes []vk.VertexInputAttributeDescription
}

// InputAssemblyState selects the primitive topology.
type InputAssemblyState struct {
	Topology               vk.PrimitiveTopology
	PrimitiveRestartEnable bool
}

// ViewportState carries the static viewports and scissors.
type ViewportState struct {
	Viewports []vk.Viewport
	Scissors  []vk.Rect2D
}

// RasterizationState is the rasterizer's fixed-function configuration.
type RasterizationState struct {
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             vk.PolygonMode
	CullMode                vk.CullModeFlags
	FrontFace               vk.FrontFace
	LineWidth               float32
}

// MultisampleState carries the sample configuration; only one sample per
// pixel is supported.
type MultisampleState struct {
	RasterizationSamples vk.SampleCountFlagBits
}

// ColorBlendState carries the per-attachment blend configuration.
type ColorBlendState struct {
	Attachments    []vk.PipelineColorBlendAttachmentState
	BlendConstants [4]float32
}

// GraphicsPipelineCreateInfo aggregates all state a graphics pipeline copies
// at creation.
type GraphicsPipelineCreateInfo struct {
	Stages        []ShaderStageInfo
	VertexInput   VertexInputState
	InputAssembly InputAssemblyState
	Viewport      ViewportState
	Rasterization RasterizationState
	Multisample   MultisampleState
	ColorBlend    ColorBlendState
	Layout        *PipelineLayout
	RenderPass    *RenderPass
	Subpass       uint32
}

// PipelineCache is accepted for API shape; the software pipeline has nothing
// to cache.
type PipelineCache struct{}

// GraphicsPipeline owns copies of all fixed-function state and shares
// ownership of its shader modules, so the client may destroy the modules
// right after creation.
type GraphicsPipeline struct {
	layout     *PipelineLayout
	renderPass *RenderPass

	vertexModule   *ShaderModule
	fragmentModule *ShaderModule

	vertexInput   VertexInputState
	inputAssembly InputAssemblyState
	viewport      ViewportState
	rasterization RasterizationState
	multisample   MultisampleState
	colorBlend    ColorBlendState

	vertexExec   vertexExecutable
	fragmentExec fragmentExecutable
}

var (
	errMissingVertexStage   = errors.New("graphics pipeline: missing vertex stage")
	errMissingFragmentStage = errors.New("graphics pipeline: missing fragment stage")
)

// NewGraphicsPipeline resolves and copies the referenced state, validates the
// vertex input configuration against the vertex entry point, and compiles the
// two entry points to internal executables.
func NewGraphicsPipeline(cache *PipelineCache, info GraphicsPipelineCreateInfo) (*GraphicsPipeline, error) {
	_ = cache
	pipeline := &GraphicsPipeline{
		layout:        info.Layout,
		renderPass:    info.RenderPass,
		vertexInput:   copyVertexInput(info.VertexInput),
		inputAssembly: info.InputAssembly,
		viewport:      copyViewport(info.Viewport),
		rasterization: info.Rasterization,
		multisample:   info.Multisample,
		colorBlend:    copyColorBlend(info.ColorBlend),
	}
	var vertexEntry, fragmentEntry string
	for _, stage := range info.Stages {
		switch stage.Stage {
		case vk.ShaderStageVertexBit:
			pipeline.vertexModule = stage.Module
			vertexEntry = stage.EntryPointName
		case vk.ShaderStageFragmentBit:
			pipeline.fragmentModule = stage.Module
			fragmentEntry = stage.EntryPointName
		}
	}
	if pipeline.vertexModule == nil {
		return nil, errMissingVertexStage
	}
	if pipeline.fragmentModule == nil {
		return nil, errMissingFragmentStage
	}
	vertexEntryPoint, err := pipeline.vertexModule.Module.FindEntryPoint(
		vertexEntry, spirv.ExecutionModelVertex)
	if err != nil {
		return nil, err
	}
	if vertexEntryPoint == nil {
		return nil, fmt.Errorf("graphics pipeline: vertex entry point %q not found", vertexEntry)
	}
	fragmentEntryPoint, err := pipeline.fragmentModule.Module.FindEntryPoint(
		fragmentEntry, spirv.ExecutionModelFragment)
	if err != nil {
		return nil, err
	}
	if fragmentEntryPoint == nil {
		return nil, fmt.Errorf("graphics pipeline: fragment entry point %q not found",
			fragmentEntry)
	}
	inputLocations, err := shaderInputLocations(pipeline.vertexModule.Module, vertexEntryPoint)
	if err != nil {
		return nil, err
	}
	if err := validateVertexInput(pipeline.vertexInput, inputLocations); err != nil {
		return nil, err
	}
	pipeline.vertexExec, err = compileVertexEntryPoint(pipeline.vertexModule.Module,
		vertexEntryPoint, inputLocations)
	if err != nil {
		return nil, err
	}
	pipeline.fragmentExec, err = compileFragmentEntryPoint(pipeline.fragmentModule.Module,
		fragmentEntryPoint)
	if err != nil {
		return nil, err
	}
	return pipeline, nil
}

func copyVertexInput(state VertexInputState) VertexInputState {
	return VertexInputState{
		Bindings:   append([]vk.VertexInputBindingDescription(nil), state.Bindings...),
		Attributes: append([]vk.VertexInputAttributeDescription(nil), state.Attributes...),
	}
}

func copyViewport(state ViewportState) ViewportState {
	return ViewportState{
		Viewports: append([]vk.Viewport(nil), state.Viewports...),
		Scissors:  append([]vk.Rect2D(nil), state.Scissors...),
	}
}

func copyColorBlend(state ColorBlendState) ColorBlendState {
	return ColorBlendState{
		Attachments:    append([]vk.PipelineColorBlendAttachmentState(nil), state.Attachments...),
		BlendConstants: state.BlendConstants,
	}
}

// validateVertexInput checks every attribute against its binding and the
// vertex shader's declared input locations.
func validateVertexInput(state VertexInputState, inputLocations map[uint32]bool) error {
	bindings := map[uint32]vk.VertexInputBindingDescription{}
	for _, binding := range state.Bindings {
		bindings[binding.Binding] = binding
	}
	coveredLocations := map[uint32]bool{}
	for _, attribute := range state.Attributes {
		binding, ok := bindings[attribute.Binding]
		if !ok {
			return fmt.Errorf("vertex input: attribute at location %d uses undeclared binding %d",
				attribute.Location, attribute.Binding)
		}
		size := formatPixelSize(attribute.Format)
		if size == 0 {
			return fmt.Errorf("vertex input: attribute at location %d has unsupported format",
				attribute.Location)
		}
		if attribute.Offset+uint32(size) > binding.Stride {
			return fmt.Errorf(
				"vertex input: attribute at location %d overruns binding %d stride %d",
				attribute.Location, attribute.Binding, binding.Stride)
		}
		if !inputLocations[attribute.Location] {
			return fmt.Errorf(
				"vertex input: attribute location %d is not an input of the vertex entry point",
				attribute.Location)
		}
		coveredLocations[attribute.Location] = true
	}
	for location := range inputLocations {
		if !coveredLocations[location] {
			return fmt.Errorf("vertex input: shader input location %d has no attribute", location)
		}
	}
	return nil
}

// Layout returns the shared pipeline layout.
func (p *GraphicsPipeline) Layout() *PipelineLayout {
	return p.layout
}

// RenderPass returns the shared render pass.
func (p *GraphicsPipeline) RenderPass() *RenderPass {
	return p.renderPass
}
