// vulkan_device.go - Software physical device reporting

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
	vk "github.com/goki/vulkan"
)

const (
	// the driver exposes exactly one queue family holding one queue,
	// supporting graphics, compute and transfer together
	queueFamilyCount = 1
	queuesPerFamily  = 1

	// maximum image dimension the device reports in its limits
	maxImageDimension = 16384
)

// apiVersion is the API revision the software device implements.
var apiVersion = vk.MakeVersion(1, 0, 0)

// driverVersion is this driver's own version stamp.
var driverVersion = vk.MakeVersion(0, 1, 0)

// Features reports the optional feature set; the software device advertises
// none of the optional features yet.
func (pd *PhysicalDevice) Features() vk.PhysicalDeviceFeatures {
	return vk.PhysicalDeviceFeatures{}
}

// DeviceLimits is the subset of implementation limits the device reports.
// Image and pipeline creation do not check them.
type DeviceLimits struct {
	MaxImageDimension2D    uint32
	MaxViewports           uint32
	MaxFramebufferWidth    uint32
	MaxFramebufferHeight   uint32
	MaxVertexInputBindings uint32
}

// PhysicalDeviceProperties describes the software device.
type PhysicalDeviceProperties struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    vk.PhysicalDeviceType
	DeviceName    string
	Limits        DeviceLimits
}

// Properties reports the device identity and limits.
func (pd *PhysicalDevice) Properties() PhysicalDeviceProperties {
	return PhysicalDeviceProperties{
		APIVersion:    apiVersion,
		DriverVersion: driverVersion,
		DeviceType:    vk.PhysicalDeviceTypeCpu,
		DeviceName:    DriverName,
		Limits: DeviceLimits{
			MaxImageDimension2D:    maxImageDimension,
			MaxViewports:           1,
			MaxFramebufferWidth:    maxImageDimension,
			MaxFramebufferHeight:   maxImageDimension,
			MaxVertexInputBindings: 16,
		},
	}
}

// QueueFamilyProperties reports the single all-purpose queue family.
func (pd *PhysicalDevice) QueueFamilyProperties(count *uint32,
	out []vk.QueueFamilyProperties) vk.Result {
	families := []vk.QueueFamilyProperties{
		{
			QueueFlags: vk.QueueFlags(vk.QueueGraphicsBit |
				vk.QueueComputeBit | vk.QueueTransferBit),
			QueueCount:         queuesPerFamily,
			TimestampValidBits: 0,
			MinImageTransferGranularity: vk.Extent3D{
				Width: 1, Height: 1, Depth: 1,
			},
		},
	}
	return enumerateHelper(count, out, families)
}

// MemoryProperties reports one host-visible, host-coherent memory type over
// one heap covering addressable host memory.
func (pd *PhysicalDevice) MemoryProperties() vk.PhysicalDeviceMemoryProperties {
	properties := vk.PhysicalDeviceMemoryProperties{
		MemoryTypeCount: 1,
		MemoryHeapCount: 1,
	}
	properties.MemoryTypes[0] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit |
			vk.MemoryPropertyHostCoherentBit | vk.MemoryPropertyHostCachedBit |
			vk.MemoryPropertyDeviceLocalBit),
		HeapIndex: 0,
	}
	properties.MemoryHeaps[0] = vk.MemoryHeap{
		Size:  1 << 40,
		Flags: vk.MemoryHeapFlags(vk.MemoryHeapDeviceLocalBit),
	}
	return properties
}

// FormatProperties reports what the software rasterizer can do with a format.
func (pd *PhysicalDevice) FormatProperties(format vk.Format) vk.FormatProperties {
	switch format {
	case vk.FormatB8g8r8a8Unorm, vk.FormatR8g8b8a8Unorm:
		return vk.FormatProperties{
			LinearTilingFeatures: vk.FormatFeatureFlags(
				vk.FormatFeatureColorAttachmentBit |
					vk.FormatFeatureTransferSrcBit |
					vk.FormatFeatureTransferDstBit),
		}
	case vk.FormatR32Sfloat, vk.FormatR32g32Sfloat,
		vk.FormatR32g32b32Sfloat, vk.FormatR32g32b32a32Sfloat:
		return vk.FormatProperties{
			BufferFeatures: vk.FormatFeatureFlags(vk.FormatFeatureVertexBufferBit),
		}
	}
	return vk.FormatProperties{}
}
