// main_test.go - End-to-end demo test over the bundled assets

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

	"golang.org/x/image/bmp"
)

func TestDemoEndToEnd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.bmp")
	err := runDemo(defaultVertexShader, defaultFragmentShader, defaultMesh,
		output, false)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != windowWidth || bounds.Dy() != windowHeight {
		t.Fatalf("image size: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// the corners stay at the 25% gray clear color
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 64 || g>>8 != 64 || b>>8 != 64 {
		t.Fatalf("corner color: %d %d %d", r>>8, g>>8, b>>8)
	}

	// the mesh must have covered something with the fragment color
	covered := 0
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("demo mesh rendered no pixels")
	}
}

func TestDemoMissingAsset(t *testing.T) {
	err := runDemo("missing.vert.spv", defaultFragmentShader, defaultMesh,
		filepath.Join(t.TempDir(), "out.bmp"), false)
	if err == nil {
		t.Fatal("missing shader must fail the demo")
	}
}

func TestDemoEndToEndIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	render := func(name string) []byte {
		path := filepath.Join(dir, name)
		if err := runDemo(defaultVertexShader, defaultFragmentShader, defaultMesh,
			path, false); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	if string(render("a.bmp")) != string(render("b.bmp")) {
		t.Fatal("demo output must be byte-identical across runs")
	}
}
