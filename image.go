// image.go - Image descriptors and linear-tiling backing memory

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

	vk "github.com/goki/vulkan"
)

// ImageCreateInfo describes an image the way the API's create info does, with
// Go-native fields where the C struct uses count+pointer pairs.
type ImageCreateInfo struct {
	ImageType     vk.ImageType
	Format        vk.Format
	Extent        vk.Extent3D
	MipLevels     uint32
	ArrayLayers   uint32
	Samples       vk.SampleCountFlagBits
	Tiling        vk.ImageTiling
	Usage         vk.ImageUsageFlags
	InitialLayout vk.ImageLayout
}

// ImageDescriptor is the immutable shape of an image.
type ImageDescriptor struct {
	ImageCreateInfo
}

// NewImageDescriptor normalizes a create info into a descriptor.
func NewImageDescriptor(info ImageCreateInfo) ImageDescriptor {
	if info.MipLevels == 0 {
		info.MipLevels = 1
	}
	if info.ArrayLayers == 0 {
		info.ArrayLayers = 1
	}
	if info.Samples == 0 {
		info.Samples = vk.SampleCount1Bit
	}
	return ImageDescriptor{ImageCreateInfo: info}
}

// formatPixelSize returns the byte size of one pixel, or 0 for unsupported
// formats.
func formatPixelSize(format vk.Format) int {
	switch format {
	case vk.FormatB8g8r8a8Unorm, vk.FormatR8g8b8a8Unorm:
		return 4
	case vk.FormatR32Sfloat:
		return 4
	case vk.FormatR32g32Sfloat:
		return 8
	case vk.FormatR32g32b32Sfloat:
		return 12
	case vk.FormatR32g32b32a32Sfloat:
		return 16
	}
	return 0
}

// MemoryStride is the byte distance between rows for linear tilings.
func (d ImageDescriptor) MemoryStride() int {
	return formatPixelSize(d.Format) * int(d.Extent.Width)
}

// MemorySize is the total backing allocation for one linear-tiled layer.
func (d ImageDescriptor) MemorySize() int {
	return d.MemoryStride() * int(d.Extent.Height)
}

var errUnsupportedImage = errors.New("unsupported image format or tiling")

// Image is a linear-tiled image owning its backing memory.
type Image struct {
	Descriptor ImageDescriptor
	Memory     []byte
}

// NewImage creates the image and allocates its memory.
func NewImage(info ImageCreateInfo) (*Image, error) {
	descriptor := NewImageDescriptor(info)
	if formatPixelSize(descriptor.Format) == 0 || descriptor.Tiling != vk.ImageTilingLinear {
		return nil, errUnsupportedImage
	}
	return &Image{
		Descriptor: descriptor,
		Memory:     make([]byte, descriptor.MemorySize()),
	}, nil
}

// PixelOffset locates a pixel's first byte in the backing memory.
func (img *Image) PixelOffset(x, y int) int {
	return y*img.Descriptor.MemoryStride() + x*formatPixelSize(img.Descriptor.Format)
}

func floatToUnormByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// Clear fills every pixel with the given RGBA color, encoded per the image
// format.
func (img *Image) Clear(color [4]float32) {
	var pixel [4]byte
	switch img.Descriptor.Format {
	case vk.FormatB8g8r8a8Unorm:
		pixel[0] = floatToUnormByte(color[2])
		pixel[1] = floatToUnormByte(color[1])
		pixel[2] = floatToUnormByte(color[0])
		pixel[3] = floatToUnormByte(color[3])
	case vk.FormatR8g8b8a8Unorm:
		pixel[0] = floatToUnormByte(color[0])
		pixel[1] = floatToUnormByte(color[1])
		pixel[2] = floatToUnormByte(color[2])
		pixel[3] = floatToUnormByte(color[3])
	default:
		return
	}
	for i := 0; i < len(img.Memory); i += 4 {
		copy(img.Memory[i:i+4], pixel[:])
	}
}

// PixelRGBA reads one pixel back as RGBA bytes.
func (img *Image) PixelRGBA(x, y int) [4]byte {
	offset := img.PixelOffset(x, y)
	switch img.Descriptor.Format {
	case vk.FormatB8g8r8a8Unorm:
		return [4]byte{
			img.Memory[offset+2], img.Memory[offset+1],
			img.Memory[offset+0], img.Memory[offset+3],
		}
	default:
		return [4]byte{
			img.Memory[offset+0], img.Memory[offset+1],
			img.Memory[offset+2], img.Memory[offset+3],
		}
	}
}
