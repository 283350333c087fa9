// vulkan_icd.go - Loader interface: proc resolution and object lifecycles

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

// DriverName identifies the software device to clients.
const DriverName = "IntuitionVulkan software renderer"

// LoaderVersion is the highest loader interface version the driver speaks.
const LoaderVersion uint32 = 5

// ProcedureAddressScope selects which slice of the entry point table a lookup
// may see.
type ProcedureAddressScope int

const (
	// ScopeLibrary resolves the handful of functions callable without an
	// instance.
	ScopeLibrary ProcedureAddressScope = iota
	// ScopeInstance resolves everything reachable through an instance.
	ScopeInstance
	// ScopeDevice resolves device-level functions.
	ScopeDevice
)

// LoaderInterface is the per-process singleton holding the negotiated loader
// version. It is explicitly initialized during negotiation, never implicitly.
type LoaderInterface struct {
	negotiatedVersion uint32
}

var loaderInterface LoaderInterface

// Loader returns the process-wide loader interface.
func Loader() *LoaderInterface {
	return &loaderInterface
}

// NegotiateVersion clamps the loader's requested interface version to what
// the driver supports and records it.
func (l *LoaderInterface) NegotiateVersion(requested uint32) uint32 {
	version := min(requested, LoaderVersion)
	l.negotiatedVersion = version
	return version
}

// NegotiatedVersion reports the recorded version, zero before negotiation.
func (l *LoaderInterface) NegotiatedVersion() uint32 {
	return l.negotiatedVersion
}

// AllocationCallbacks stands in for the API's allocator callback table. The
// driver performs all allocation itself; passing callbacks is a precondition
// violation.
type AllocationCallbacks struct{}

func validateAllocator(allocator *AllocationCallbacks) {
	if allocator != nil {
		panic("allocator callbacks are not supported")
	}
}

// Instance is the client-owned instance object. It exclusively owns the one
// software physical device.
type Instance struct {
	physicalDevice    PhysicalDevice
	enabledExtensions []string
}

// PhysicalDevice is the software device, owned by its instance.
type PhysicalDevice struct {
	instance *Instance
}

// Queue is one queue of a device.
type Queue struct {
	device *Device
}

// Device is the client-owned logical device.
type Device struct {
	physicalDevice *PhysicalDevice
	queues         [][]*Queue
}

// InstanceCreateInfo carries the application info fields the software driver
// looks at.
type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
	EnabledExtensions  []string
}

// ExtensionProperties describes one supported extension.
type ExtensionProperties struct {
	Name        string
	SpecVersion uint32
}

// instanceExtensions is the driver's advertised instance extension set. The
// software device presents no surface extensions yet.
var instanceExtensions = []ExtensionProperties{}

// deviceExtensions is the advertised device extension set.
var deviceExtensions = []ExtensionProperties{}

// CreateInstance validates the requested extensions against the advertised
// set and builds the instance with its physical device.
func CreateInstance(info *InstanceCreateInfo, allocator *AllocationCallbacks) (*Instance, vk.Result) {
	validateAllocator(allocator)
	for _, requested := range info.EnabledExtensions {
		if !hasExtension(instanceExtensions, requested) {
			return nil, vk.ErrorExtensionNotPresent
		}
	}
	instance := &Instance{
		enabledExtensions: append([]string(nil), info.EnabledExtensions...),
	}
	instance.physicalDevice.instance = instance
	return instance, vk.Success
}

// DestroyInstance releases the instance; the physical device dies with it.
func DestroyInstance(instance *Instance, allocator *AllocationCallbacks) {
	validateAllocator(allocator)
	if instance != nil {
		instance.physicalDevice.instance = nil
	}
}

func hasExtension(available []ExtensionProperties, name string) bool {
	for _, extension := range available {
		if extension.Name == name {
			return true
		}
	}
	return false
}

// enumerateHelper implements the count/pointer convention: a nil output
// queries the count, a short output copies what fits and reports Incomplete.
func enumerateHelper[T any](count *uint32, out []T, generated []T) vk.Result {
	if out == nil {
		*count = uint32(len(generated))
		return vk.Success
	}
	copyLength := min(int(*count), len(generated))
	copy(out[:copyLength], generated[:copyLength])
	*count = uint32(copyLength)
	if copyLength < len(generated) {
		return vk.Incomplete
	}
	return vk.Success
}

// EnumerateInstanceExtensionProperties lists the advertised instance
// extensions; layer names are not supported.
func EnumerateInstanceExtensionProperties(layerName string, count *uint32,
	out []ExtensionProperties) vk.Result {
	if layerName != "" {
		return vk.ErrorLayerNotPresent
	}
	return enumerateHelper(count, out, instanceExtensions)
}

// EnumeratePhysicalDevices reports the single software device.
func (instance *Instance) EnumeratePhysicalDevices(count *uint32,
	out []*PhysicalDevice) vk.Result {
	return enumerateHelper(count, out, []*PhysicalDevice{&instance.physicalDevice})
}

// EnumerateDeviceExtensionProperties lists the advertised device extensions.
func (pd *PhysicalDevice) EnumerateDeviceExtensionProperties(layerName string,
	count *uint32, out []ExtensionProperties) vk.Result {
	if layerName != "" {
		return vk.ErrorLayerNotPresent
	}
	return enumerateHelper(count, out, deviceExtensions)
}

// DeviceQueueCreateInfo requests queues from one family.
type DeviceQueueCreateInfo struct {
	QueueFamilyIndex uint32
	QueueCount       uint32
}

// DeviceCreateInfo carries the queue requests and device extensions.
type DeviceCreateInfo struct {
	QueueCreateInfos  []DeviceQueueCreateInfo
	EnabledExtensions []string
}

// CreateDevice builds the logical device with its queue objects. The driver
// exposes one queue family with one queue.
func (pd *PhysicalDevice) CreateDevice(info *DeviceCreateInfo,
	allocator *AllocationCallbacks) (*Device, vk.Result) {
	validateAllocator(allocator)
	for _, requested := range info.EnabledExtensions {
		if !hasExtension(deviceExtensions, requested) {
			return nil, vk.ErrorExtensionNotPresent
		}
	}
	device := &Device{
		physicalDevice: pd,
		queues:         make([][]*Queue, queueFamilyCount),
	}
	for _, queueInfo := range info.QueueCreateInfos {
		if queueInfo.QueueFamilyIndex >= queueFamilyCount ||
			queueInfo.QueueCount > queuesPerFamily {
			return nil, vk.ErrorInitializationFailed
		}
		for i := uint32(0); i < queueInfo.QueueCount; i++ {
			device.queues[queueInfo.QueueFamilyIndex] = append(
				device.queues[queueInfo.QueueFamilyIndex], &Queue{device: device})
		}
	}
	return device, vk.Success
}

// GetQueue returns a queue created with the device.
func (d *Device) GetQueue(family, index uint32) *Queue {
	if family >= uint32(len(d.queues)) || index >= uint32(len(d.queues[family])) {
		return nil
	}
	return d.queues[family][index]
}

// WaitIdle blocks until all queue work has finished. Every operation in the
// software driver completes inline, so there is never outstanding work.
func (d *Device) WaitIdle() vk.Result {
	return vk.Success
}

// WaitIdle on a queue mirrors device-level waiting.
func (q *Queue) WaitIdle() vk.Result {
	return q.device.WaitIdle()
}

// DestroyDevice waits for outstanding work, then releases the device.
func DestroyDevice(device *Device, allocator *AllocationCallbacks) {
	validateAllocator(allocator)
	if device != nil {
		device.WaitIdle()
		device.queues = nil
	}
}

// ProcAddr is a resolved entry point; nil means unknown or deliberately
// unimplemented.
type ProcAddr any

// libraryScopeNames are the functions callable with a nil instance.
var libraryScopeNames = []string{
	"vkCreateInstance",
	"vkEnumerateInstanceExtensionProperties",
}

// unimplementedNames are entry points of the full API surface this driver
// deliberately does not provide. They resolve to nil so no caller can
// mistake a stub for success.
var unimplementedNames = []string{
	"vkAllocateMemory",
	"vkFreeMemory",
	"vkMapMemory",
	"vkUnmapMemory",
	"vkCreateFence",
	"vkDestroyFence",
	"vkResetFences",
	"vkWaitForFences",
	"vkCreateSemaphore",
	"vkDestroySemaphore",
	"vkCreateEvent",
	"vkDestroyEvent",
	"vkCreateBuffer",
	"vkDestroyBuffer",
	"vkCreateCommandPool",
	"vkDestroyCommandPool",
	"vkAllocateCommandBuffers",
	"vkFreeCommandBuffers",
	"vkQueueSubmit",
	"vkCreateDescriptorPool",
	"vkDestroyDescriptorPool",
	"vkCreateDescriptorSetLayout",
	"vkDestroyDescriptorSetLayout",
	"vkCreateFramebuffer",
	"vkDestroyFramebuffer",
	"vkCreateComputePipelines",
	"vkCreateSampler",
	"vkDestroySampler",
}

func procedureTable() map[string]ProcAddr {
	return map[string]ProcAddr{
		"vkCreateInstance": CreateInstance,
		"vkDestroyInstance": DestroyInstance,
		"vkEnumerateInstanceExtensionProperties": EnumerateInstanceExtensionProperties,
		"vkEnumeratePhysicalDevices": (*Instance).EnumeratePhysicalDevices,
		"vkGetPhysicalDeviceFeatures": (*PhysicalDevice).Features,
		"vkGetPhysicalDeviceProperties": (*PhysicalDevice).Properties,
		"vkGetPhysicalDeviceQueueFamilyProperties": (*PhysicalDevice).QueueFamilyProperties,
		"vkGetPhysicalDeviceMemoryProperties": (*PhysicalDevice).MemoryProperties,
		"vkGetPhysicalDeviceFormatProperties": (*PhysicalDevice).FormatProperties,
		"vkEnumerateDeviceExtensionProperties": (*PhysicalDevice).EnumerateDeviceExtensionProperties,
		"vkCreateDevice": (*PhysicalDevice).CreateDevice,
		"vkDestroyDevice": DestroyDevice,
		"vkGetDeviceQueue": (*Device).GetQueue,
		"vkDeviceWaitIdle": (*Device).WaitIdle,
		"vkQueueWaitIdle": (*Queue).WaitIdle,
		"vkGetInstanceProcAddr": GetInstanceProcAddr,
		"vkGetDeviceProcAddr": GetDeviceProcAddr,
		"vkCreateShaderModule": NewShaderModule,
		"vkCreatePipelineLayout": NewPipelineLayout,
		"vkCreateRenderPass": NewRenderPass,
		"vkCreateGraphicsPipelines": NewGraphicsPipeline,
	}
}

// deviceScopeNames are the device-level functions.
var deviceScopeNames = []string{
	"vkGetDeviceQueue",
	"vkDeviceWaitIdle",
	"vkQueueWaitIdle",
	"vkDestroyDevice",
	"vkCreateShaderModule",
	"vkCreatePipelineLayout",
	"vkCreateRenderPass",
	"vkCreateGraphicsPipelines",
}

func nameInList(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

// GetProcedureAddress is the scoped resolver behind the two public lookup
// entry points. There is no dispatch table, only the flat name mapping.
func (l *LoaderInterface) GetProcedureAddress(name string, scope ProcedureAddressScope) ProcAddr {
	if nameInList(unimplementedNames, name) {
		return nil
	}
	table := procedureTable()
	addr, known := table[name]
	if !known {
		return nil
	}
	switch scope {
	case ScopeLibrary:
		if !nameInList(libraryScopeNames, name) {
			return nil
		}
	case ScopeDevice:
		if !nameInList(deviceScopeNames, name) {
			return nil
		}
	}
	return addr
}

// GetInstanceProcAddr is the loader's entry point: a nil instance restricts
// resolution to library scope.
func GetInstanceProcAddr(instance *Instance, name string) ProcAddr {
	scope := ScopeInstance
	if instance == nil {
		scope = ScopeLibrary
	}
	return Loader().GetProcedureAddress(name, scope)
}

// GetDeviceProcAddr resolves device-level entry points.
func GetDeviceProcAddr(device *Device, name string) ProcAddr {
	if device == nil {
		return nil
	}
	return Loader().GetProcedureAddress(name, ScopeDevice)
}
