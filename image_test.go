// image_test.go - Image descriptor and backing memory tests

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
	"os"
	"path/filepath"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestImageDescriptor(t *testing.T) {
	descriptor := NewImageDescriptor(ImageCreateInfo{
		ImageType: vk.ImageType2d,
		Format:    vk.FormatB8g8r8a8Unorm,
		Extent:    vk.Extent3D{Width: 16, Height: 12, Depth: 1},
		Tiling:    vk.ImageTilingLinear,
	})
	if descriptor.MipLevels != 1 || descriptor.ArrayLayers != 1 ||
		descriptor.Samples != vk.SampleCount1Bit {
		t.Fatal("descriptor defaults")
	}
	if descriptor.MemoryStride() != 64 {
		t.Fatalf("stride: %d", descriptor.MemoryStride())
	}
	if descriptor.MemorySize() != 64*12 {
		t.Fatalf("size: %d", descriptor.MemorySize())
	}
}

func TestImageClearAndReadback(t *testing.T) {
	img, err := NewImage(ImageCreateInfo{
		ImageType: vk.ImageType2d,
		Format:    vk.FormatB8g8r8a8Unorm,
		Extent:    vk.Extent3D{Width: 4, Height: 4, Depth: 1},
		Tiling:    vk.ImageTilingLinear,
	})
	if err != nil {
		t.Fatal(err)
	}
	img.Clear([4]float32{1, 0.5, 0, 1})
	// B8G8R8A8 stores blue first
	offset := img.PixelOffset(2, 1)
	if img.Memory[offset] != 0 || img.Memory[offset+1] != 128 ||
		img.Memory[offset+2] != 255 || img.Memory[offset+3] != 255 {
		t.Fatalf("cleared bytes: %v", img.Memory[offset:offset+4])
	}
	if got := img.PixelRGBA(2, 1); got != [4]byte{255, 128, 0, 255} {
		t.Fatalf("readback: %v", got)
	}
}

func TestImageUnsupported(t *testing.T) {
	if _, err := NewImage(ImageCreateInfo{
		Format: vk.FormatB8g8r8a8Unorm,
		Extent: vk.Extent3D{Width: 4, Height: 4, Depth: 1},
		Tiling: vk.ImageTilingOptimal,
	}); err == nil {
		t.Fatal("optimal tiling must be rejected")
	}
	if _, err := NewImage(ImageCreateInfo{
		Format: vk.FormatUndefined,
		Extent: vk.Extent3D{Width: 4, Height: 4, Depth: 1},
		Tiling: vk.ImageTilingLinear,
	}); err == nil {
		t.Fatal("unsupported format must be rejected")
	}
}

func TestSaveBMP(t *testing.T) {
	img, err := NewImage(ImageCreateInfo{
		Format: vk.FormatB8g8r8a8Unorm,
		Extent: vk.Extent3D{Width: 8, Height: 6, Depth: 1},
		Tiling: vk.ImageTilingLinear,
	})
	if err != nil {
		t.Fatal(err)
	}
	img.Clear([4]float32{0.25, 0.25, 0.25, 1})
	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := SaveBMP(img, path); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("bmp file: %v", err)
	}
}
