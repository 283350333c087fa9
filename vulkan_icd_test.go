// vulkan_icd_test.go - Loader interface and lifecycle tests

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
	"testing"

	vk "github.com/goki/vulkan"
)

func TestNegotiateVersion(t *testing.T) {
	loader := Loader()
	if got := loader.NegotiateVersion(3); got != 3 {
		t.Fatalf("negotiate 3: got %d", got)
	}
	if got := loader.NegotiateVersion(99); got != LoaderVersion {
		t.Fatalf("negotiate 99: got %d", got)
	}
	if loader.NegotiatedVersion() != LoaderVersion {
		t.Fatal("negotiated version not recorded")
	}
}

func TestCreateInstance(t *testing.T) {
	instance, result := CreateInstance(&InstanceCreateInfo{
		ApplicationName: "test",
		APIVersion:      apiVersion,
	}, nil)
	if result != vk.Success || instance == nil {
		t.Fatalf("create instance: %v", result)
	}
	defer DestroyInstance(instance, nil)

	var count uint32
	if result := instance.EnumeratePhysicalDevices(&count, nil); result != vk.Success {
		t.Fatalf("count physical devices: %v", result)
	}
	if count != 1 {
		t.Fatalf("physical device count: %d", count)
	}
	devices := make([]*PhysicalDevice, count)
	if result := instance.EnumeratePhysicalDevices(&count, devices); result != vk.Success {
		t.Fatalf("enumerate physical devices: %v", result)
	}
	if devices[0] == nil {
		t.Fatal("missing software device")
	}
}

func TestCreateInstanceUnknownExtension(t *testing.T) {
	_, result := CreateInstance(&InstanceCreateInfo{
		EnabledExtensions: []string{"VK_KHR_nonexistent"},
	}, nil)
	if result != vk.ErrorExtensionNotPresent {
		t.Fatalf("unknown extension: %v", result)
	}
}

func TestAllocatorCallbacksRejected(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("non-nil allocator callbacks must be rejected")
		}
	}()
	CreateInstance(&InstanceCreateInfo{}, &AllocationCallbacks{})
}

func testPhysicalDevice(t *testing.T) (*Instance, *PhysicalDevice) {
	t.Helper()
	instance, result := CreateInstance(&InstanceCreateInfo{}, nil)
	if result != vk.Success {
		t.Fatalf("create instance: %v", result)
	}
	t.Cleanup(func() { DestroyInstance(instance, nil) })
	return instance, &instance.physicalDevice
}

func TestPhysicalDeviceReporting(t *testing.T) {
	_, pd := testPhysicalDevice(t)

	properties := pd.Properties()
	if properties.DeviceType != vk.PhysicalDeviceTypeCpu {
		t.Fatalf("device type: %v", properties.DeviceType)
	}
	if properties.DeviceName != DriverName {
		t.Fatalf("device name: %q", properties.DeviceName)
	}

	var count uint32
	if result := pd.QueueFamilyProperties(&count, nil); result != vk.Success || count != 1 {
		t.Fatalf("queue family count: %d (%v)", count, result)
	}
	families := make([]vk.QueueFamilyProperties, count)
	pd.QueueFamilyProperties(&count, families)
	wantFlags := vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit)
	if families[0].QueueFlags&wantFlags != wantFlags {
		t.Fatalf("queue flags: %x", families[0].QueueFlags)
	}

	memory := pd.MemoryProperties()
	if memory.MemoryTypeCount != 1 || memory.MemoryHeapCount != 1 {
		t.Fatal("memory properties")
	}
	hostVisible := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)
	if memory.MemoryTypes[0].PropertyFlags&hostVisible == 0 {
		t.Fatal("memory type must be host visible")
	}

	colorFormat := pd.FormatProperties(vk.FormatB8g8r8a8Unorm)
	if colorFormat.LinearTilingFeatures&
		vk.FormatFeatureFlags(vk.FormatFeatureColorAttachmentBit) == 0 {
		t.Fatal("color attachment format support")
	}
	vertexFormat := pd.FormatProperties(vk.FormatR32g32b32a32Sfloat)
	if vertexFormat.BufferFeatures&
		vk.FormatFeatureFlags(vk.FormatFeatureVertexBufferBit) == 0 {
		t.Fatal("vertex buffer format support")
	}
}

func TestDeviceLifecycle(t *testing.T) {
	_, pd := testPhysicalDevice(t)
	device, result := pd.CreateDevice(&DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueueCount: 1},
		},
	}, nil)
	if result != vk.Success {
		t.Fatalf("create device: %v", result)
	}
	queue := device.GetQueue(0, 0)
	if queue == nil {
		t.Fatal("queue must exist")
	}
	if queue.WaitIdle() != vk.Success || device.WaitIdle() != vk.Success {
		t.Fatal("wait idle")
	}
	if device.GetQueue(1, 0) != nil || device.GetQueue(0, 1) != nil {
		t.Fatal("out-of-range queues must be nil")
	}
	DestroyDevice(device, nil)
}

func TestCreateDeviceBadQueueRequest(t *testing.T) {
	_, pd := testPhysicalDevice(t)
	if _, result := pd.CreateDevice(&DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{
			{QueueFamilyIndex: 2, QueueCount: 1},
		},
	}, nil); result != vk.ErrorInitializationFailed {
		t.Fatalf("bad family: %v", result)
	}
	if _, result := pd.CreateDevice(&DeviceCreateInfo{
		EnabledExtensions: []string{"VK_KHR_swapchain"},
	}, nil); result != vk.ErrorExtensionNotPresent {
		t.Fatalf("bad extension: %v", result)
	}
}

func TestProcAddrScopes(t *testing.T) {
	// library scope: nil instance resolves only pre-instance functions
	if GetInstanceProcAddr(nil, "vkCreateInstance") == nil {
		t.Fatal("vkCreateInstance must resolve without an instance")
	}
	if GetInstanceProcAddr(nil, "vkEnumerateInstanceExtensionProperties") == nil {
		t.Fatal("extension enumeration must resolve without an instance")
	}
	if GetInstanceProcAddr(nil, "vkCreateDevice") != nil {
		t.Fatal("instance-scope function must not resolve without an instance")
	}

	instance, _ := CreateInstance(&InstanceCreateInfo{}, nil)
	defer DestroyInstance(instance, nil)
	for _, name := range []string{
		"vkCreateDevice", "vkEnumeratePhysicalDevices",
		"vkGetPhysicalDeviceProperties", "vkGetDeviceProcAddr",
		"vkCreateShaderModule", "vkCreateGraphicsPipelines",
	} {
		if GetInstanceProcAddr(instance, name) == nil {
			t.Fatalf("%s must resolve with an instance", name)
		}
	}

	if GetInstanceProcAddr(instance, "vkNotARealFunction") != nil {
		t.Fatal("unknown names must resolve to nil")
	}
}

func TestUnimplementedEntryPointsResolveToNil(t *testing.T) {
	instance, _ := CreateInstance(&InstanceCreateInfo{}, nil)
	defer DestroyInstance(instance, nil)
	for _, name := range []string{"vkAllocateMemory", "vkQueueSubmit", "vkCreateFence"} {
		if GetInstanceProcAddr(instance, name) != nil {
			t.Fatalf("%s is unimplemented and must resolve to nil", name)
		}
	}
}

func TestGetDeviceProcAddr(t *testing.T) {
	_, pd := testPhysicalDevice(t)
	device, _ := pd.CreateDevice(&DeviceCreateInfo{}, nil)
	defer DestroyDevice(device, nil)
	if GetDeviceProcAddr(device, "vkDeviceWaitIdle") == nil {
		t.Fatal("device function must resolve")
	}
	if GetDeviceProcAddr(device, "vkCreateInstance") != nil {
		t.Fatal("library function must not resolve at device scope")
	}
	if GetDeviceProcAddr(nil, "vkDeviceWaitIdle") != nil {
		t.Fatal("nil device must resolve nothing")
	}
}

func TestEnumerateHelperIncomplete(t *testing.T) {
	generated := []int{1, 2, 3}
	var count uint32
	if result := enumerateHelper(&count, nil, generated); result != vk.Success || count != 3 {
		t.Fatalf("count query: %d (%v)", count, result)
	}
	out := make([]int, 2)
	count = 2
	if result := enumerateHelper(&count, out, generated); result != vk.Incomplete {
		t.Fatalf("short buffer must report Incomplete, got %v", result)
	}
	if count != 2 || out[0] != 1 || out[1] != 2 {
		t.Fatalf("short copy: count %d out %v", count, out)
	}
	out = make([]int, 3)
	count = 3
	if result := enumerateHelper(&count, out, generated); result != vk.Success || count != 3 {
		t.Fatalf("full copy: %v", result)
	}
}
