// Package xbr implements a 2x pixel-art upscaling filter from the xBR family.
//
// # Overview
//
// xbr takes a rectangular bitmap of packed 24-bit RGB pixels and produces an
// output bitmap of exactly twice the width and height. New pixels are
// synthesized by detecting local edge direction in a 21-cell diamond
// neighborhood and blending adjacent colors, so diagonal edges come out
// smooth instead of blocky. The filter is deterministic and allocation-light,
// which makes it suitable for image/video pipelines and emulators.
//
// # Quick Start
//
//	import "github.com/gogpu/xbr"
//
//	// Raw packed-pixel API:
//	dst, ow, oh := xbr.NewBuffer(w, h)
//	xbr.Apply(dst, src, w, h)
//
//	// Or through the image bridge:
//	img, _ := xbr.LoadPNG("sprite.png")
//	img.Scale2x().SavePNG("sprite@2x.png")
//
// # Concurrency
//
// Apply is single-threaded by default. Every source pixel writes four
// disjoint destination cells, so the scan parallelizes cleanly over row
// bands; pass WithWorkers or WithPool to enable that:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	for _, frame := range frames {
//		xbr.Apply(dst, frame, w, h, xbr.WithPool(pool))
//	}
//
// Serial and parallel runs produce byte-identical output.
//
// # Color model
//
// All core functions operate on [Pixel], a uint32 whose low 24 bits encode
// RGB. There is no alpha channel; decoders must flatten to opaque RGB before
// calling the filter. [FromImage] and [ReadFrame] do this for the common
// cases.
package xbr

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
