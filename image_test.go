package xbr

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

var _ image.Image = (*Image)(nil)

func newTestImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: testPattern(width, height)}
}

func TestFromImageNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img := FromImage(src)
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", img.Width, img.Height)
	}
	if img.Pix[0] != Pack(10, 20, 30) {
		t.Errorf("Pix[0] = %#06x, want %#06x", uint32(img.Pix[0]), uint32(Pack(10, 20, 30)))
	}
	if img.Pix[5] != Pack(200, 100, 50) {
		t.Errorf("Pix[5] = %#06x, want %#06x", uint32(img.Pix[5]), uint32(Pack(200, 100, 50)))
	}
}

func TestFromImageRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 0, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})

	img := FromImage(src)
	if img.Pix[1] != 0x123456 {
		t.Errorf("Pix[1] = %#06x, want 0x123456", uint32(img.Pix[1]))
	}
}

func TestFromImageGenericPath(t *testing.T) {
	// Non-RGBA inputs go through the draw conversion; gray 128 must come out
	// as an even gray pixel.
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 128
	}
	img := FromImage(src)
	for i, p := range img.Pix {
		if p != Pack(128, 128, 128) {
			t.Errorf("Pix[%d] = %#06x, want gray", i, uint32(p))
		}
	}
}

func TestToRGBARoundTrip(t *testing.T) {
	img := newTestImage(7, 5)
	back := FromImage(img.ToRGBA())
	if back.Width != img.Width || back.Height != img.Height {
		t.Fatalf("dims changed: %dx%d", back.Width, back.Height)
	}
	for i := range img.Pix {
		if back.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d] = %#06x, want %#06x", i, uint32(back.Pix[i]), uint32(img.Pix[i]))
		}
	}
}

func TestImageInterface(t *testing.T) {
	img := newTestImage(4, 3)
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	r, g, b, a := img.At(1, 2).RGBA()
	p := img.Pix[2*4+1]
	if uint8(r>>8) != p.R() || uint8(g>>8) != p.G() || uint8(b>>8) != p.B() || a != 0xFFFF {
		t.Errorf("At(1,2) = (%d,%d,%d,%d), want opaque %#06x", r, g, b, a, uint32(p))
	}
	// Out of bounds reads are transparent, not a panic.
	if _, _, _, a := img.At(-1, 0).RGBA(); a != 0 {
		t.Error("At(-1,0) should be empty")
	}
}

func TestScale2x(t *testing.T) {
	img := newTestImage(10, 6)
	out := img.Scale2x()
	if out.Width != 20 || out.Height != 12 || len(out.Pix) != 240 {
		t.Fatalf("Scale2x dims = %dx%d len %d", out.Width, out.Height, len(out.Pix))
	}

	// Convenience wrapper and raw API must agree.
	dst, _, _ := NewBuffer(img.Width, img.Height)
	Apply(dst, img.Pix, img.Width, img.Height)
	for i := range dst {
		if out.Pix[i] != dst[i] {
			t.Fatalf("Scale2x diverges from Apply at %d", i)
		}
	}
}

func TestResize(t *testing.T) {
	img := newTestImage(8, 8)
	for _, mode := range []InterpolationMode{InterpNearest, InterpBilinear, InterpCatmullRom} {
		out := img.Resize(16, 16, mode)
		if out.Width != 16 || out.Height != 16 {
			t.Errorf("mode %d: dims = %dx%d, want 16x16", mode, out.Width, out.Height)
		}
	}

	// Nearest on a uniform image is exact.
	uni := NewImage(4, 4)
	for i := range uni.Pix {
		uni.Pix[i] = 0x336699
	}
	out := uni.Resize(8, 8, InterpNearest)
	for i, p := range out.Pix {
		if p != 0x336699 {
			t.Fatalf("nearest resize changed uniform color at %d: %#06x", i, uint32(p))
		}
	}
}

func TestSaveLoadPNG(t *testing.T) {
	img := newTestImage(13, 9)
	path := filepath.Join(t.TempDir(), "roundtrip.png")

	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	back, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if back.Width != img.Width || back.Height != img.Height {
		t.Fatalf("dims = %dx%d, want %dx%d", back.Width, back.Height, img.Width, img.Height)
	}
	for i := range img.Pix {
		if back.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d] = %#06x, want %#06x", i, uint32(back.Pix[i]), uint32(img.Pix[i]))
		}
	}
}

func TestLoadPNGMissing(t *testing.T) {
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
