package xbr

import (
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// BenchmarkApply measures the serial scan across typical pixel-art sizes.
func BenchmarkApply(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"32x32", 32, 32},
		{"256x224", 256, 224}, // SNES frame
		{"320x200", 320, 200},
		{"512x512", 512, 512},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			src := testPattern(size.width, size.height)
			dst, _, _ := NewBuffer(size.width, size.height)
			b.ReportAllocs()
			b.SetBytes(int64(size.width * size.height * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Apply(dst, src, size.width, size.height)
			}
		})
	}
}

// BenchmarkApplyParallel compares pooled row-band execution against serial
// on a frame-sized input.
func BenchmarkApplyParallel(b *testing.B) {
	const width, height = 512, 512
	src := testPattern(width, height)
	dst, _, _ := NewBuffer(width, height)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(benchName(workers), func(b *testing.B) {
			pool := workerpool.New(workers)
			defer pool.Close()
			b.ReportAllocs()
			b.SetBytes(int64(width * height * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Apply(dst, src, width, height, WithPool(pool))
			}
		})
	}
}

func benchName(workers int) string {
	names := map[int]string{1: "1worker", 2: "2workers", 4: "4workers", 8: "8workers"}
	return names[workers]
}

// BenchmarkDiff measures the perceptual metric, the hot inner function of
// the rule engine (28 calls per source pixel).
func BenchmarkDiff(b *testing.B) {
	b.ReportAllocs()
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += Diff(Pixel(i)&0xFFFFFF, Pixel(i*7)&0xFFFFFF)
	}
	_ = sink
}

// BenchmarkBlend measures the 50/50 blend used on detected edges.
func BenchmarkBlend(b *testing.B) {
	b.ReportAllocs()
	var sink Pixel
	for i := 0; i < b.N; i++ {
		sink ^= Blend(Pixel(i)&0xFFFFFF, Pixel(i*7)&0xFFFFFF, 0.5)
	}
	_ = sink
}

// BenchmarkResize measures the conventional x/image scalers the filter is
// usually compared against.
func BenchmarkResize(b *testing.B) {
	img := &Image{Width: 256, Height: 224, Pix: testPattern(256, 224)}
	modes := []struct {
		name string
		mode InterpolationMode
	}{
		{"nearest", InterpNearest},
		{"bilinear", InterpBilinear},
		{"catmullrom", InterpCatmullRom},
	}
	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = img.Resize(512, 448, m.mode)
			}
		})
	}
}
