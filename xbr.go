package xbr

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Scale is the only scale factor the rule engine supports. Larger factors
// are produced by chaining whole 2x passes (see cmd/xbrscale).
const Scale = 2

// edgeBlendAlpha is the blend weight used when a rule detects an edge: the
// chosen neighbor and the center pixel contribute equally.
const edgeBlendAlpha = 0.5

// sampler binds a source buffer to its dimensions so neighborhood reads can
// resolve out-of-bounds coordinates. Anything outside [0,width) x [0,height)
// reads as black, which biases edge detection near borders toward "no edge".
type sampler struct {
	src    []Pixel
	width  int
	height int
}

func (s *sampler) at(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.src[y*s.width+x]
}

// gather fills m with the diamond-shaped 21-cell window centered at (x, y).
// The layout skips the four corners of the enclosing 5x5 square:
//
//	     -2 | -1 |  0 | +1 | +2   (x)
//	-2 |      [ 0][ 1][ 2]
//	-1 | [ 3][ 4][ 5][ 6][ 7]
//	 0 | [ 8][ 9][10][11][12]
//	+1 | [13][14][15][16][17]
//	+2 |     [18][19][20]
//	(y)
//
// Index 10 is always the center pixel.
func (s *sampler) gather(x, y int, m *[21]Pixel) {
	m[0] = s.at(x-1, y-2)
	m[1] = s.at(x, y-2)
	m[2] = s.at(x+1, y-2)
	m[3] = s.at(x-2, y-1)
	m[4] = s.at(x-1, y-1)
	m[5] = s.at(x, y-1)
	m[6] = s.at(x+1, y-1)
	m[7] = s.at(x+2, y-1)
	m[8] = s.at(x-2, y)
	m[9] = s.at(x-1, y)
	m[10] = s.at(x, y)
	m[11] = s.at(x+1, y)
	m[12] = s.at(x+2, y)
	m[13] = s.at(x-2, y+1)
	m[14] = s.at(x-1, y+1)
	m[15] = s.at(x, y+1)
	m[16] = s.at(x+1, y+1)
	m[17] = s.at(x+2, y+1)
	m[18] = s.at(x-1, y+2)
	m[19] = s.at(x, y+2)
	m[20] = s.at(x+1, y+2)
}

// kernel2x evaluates the four edge-detection rules for the window m and
// returns the 2x2 output block (top-left, top-right, bottom-left,
// bottom-right). Each rule compares a weighted sum of differences along one
// diagonal against the mirrored sum; when the first wins, the quadrant gets
// the closer of two adjacent neighbors blended 50/50 with the center,
// otherwise the center passes through unchanged.
func kernel2x(m *[21]Pixel) (tl, tr, bl, br Pixel) {
	d10_9 := Diff(m[10], m[9])
	d10_5 := Diff(m[10], m[5])
	d10_11 := Diff(m[10], m[11])
	d10_15 := Diff(m[10], m[15])
	d10_14 := Diff(m[10], m[14])
	d10_6 := Diff(m[10], m[6])
	d4_8 := Diff(m[4], m[8])
	d4_1 := Diff(m[4], m[1])
	d9_5 := Diff(m[9], m[5])
	d9_15 := Diff(m[9], m[15])
	d9_3 := Diff(m[9], m[3])
	d5_11 := Diff(m[5], m[11])
	d5_0 := Diff(m[5], m[0])
	d10_4 := Diff(m[10], m[4])
	d10_16 := Diff(m[10], m[16])
	d6_12 := Diff(m[6], m[12])
	d6_1 := Diff(m[6], m[1])
	d11_15 := Diff(m[11], m[15])
	d11_7 := Diff(m[11], m[7])
	d5_2 := Diff(m[5], m[2])
	d14_8 := Diff(m[14], m[8])
	d14_19 := Diff(m[14], m[19])
	d15_18 := Diff(m[15], m[18])
	d9_13 := Diff(m[9], m[13])
	d16_12 := Diff(m[16], m[12])
	d16_19 := Diff(m[16], m[19])
	d15_20 := Diff(m[15], m[20])
	d15_17 := Diff(m[15], m[17])

	// Top left
	a := d10_14 + d10_6 + d4_8 + d4_1 + 4*d9_5
	b := d9_15 + d9_3 + d5_11 + d5_0 + 4*d10_4
	if a < b {
		pick := m[5]
		if d10_9 <= d10_5 {
			pick = m[9]
		}
		tl = Blend(pick, m[10], edgeBlendAlpha)
	} else {
		tl = m[10]
	}

	// Top right
	a = d10_16 + d10_4 + d6_12 + d6_1 + 4*d5_11
	b = d11_15 + d11_7 + d9_5 + d5_2 + 4*d10_6
	if a < b {
		pick := m[11]
		if d10_5 <= d10_11 {
			pick = m[5]
		}
		tr = Blend(pick, m[10], edgeBlendAlpha)
	} else {
		tr = m[10]
	}

	// Bottom left
	a = d10_4 + d10_16 + d14_8 + d14_19 + 4*d9_15
	b = d9_5 + d9_13 + d11_15 + d15_18 + 4*d10_14
	if a < b {
		pick := m[15]
		if d10_9 <= d10_15 {
			pick = m[9]
		}
		bl = Blend(pick, m[10], edgeBlendAlpha)
	} else {
		bl = m[10]
	}

	// Bottom right
	a = d10_6 + d10_14 + d16_12 + d16_19 + 4*d11_15
	b = d9_15 + d15_20 + d15_17 + d5_11 + 4*d10_16
	if a < b {
		pick := m[15]
		if d10_11 <= d10_15 {
			pick = m[11]
		}
		br = Blend(pick, m[10], edgeBlendAlpha)
	} else {
		br = m[10]
	}

	return tl, tr, bl, br
}

// scaleBand runs the scan over source rows [y0, y1) and writes the
// corresponding destination rows. Bands write disjoint destination cells, so
// concurrent calls on distinct bands need no locking.
func (s *sampler) scaleBand(dst []Pixel, y0, y1 int) {
	dstWidth := s.width * Scale
	var m [21]Pixel
	for y := y0; y < y1; y++ {
		for x := 0; x < s.width; x++ {
			s.gather(x, y, &m)
			tl, tr, bl, br := kernel2x(&m)
			top := (y*Scale)*dstWidth + x*Scale
			bottom := top + dstWidth
			dst[top] = tl
			dst[top+1] = tr
			dst[bottom] = bl
			dst[bottom+1] = br
		}
	}
}

// Apply upscales src (a row-major width x height buffer of packed pixels) by
// 2x into dst, overwriting every cell of dst. dst must have length
// (2*width)*(2*height) and src must have length width*height; Apply panics
// otherwise. The transform is deterministic: identical inputs always produce
// byte-identical output, serial or parallel.
func Apply(dst, src []Pixel, width, height int, opts ...Option) {
	if len(src) != width*height {
		panic(fmt.Sprintf("xbr: source length %d does not match %dx%d", len(src), width, height))
	}
	if len(dst) != Scale*width*Scale*height {
		panic(fmt.Sprintf("xbr: destination length %d does not match %dx%d at 2x", len(dst), width, height))
	}
	if width == 0 || height == 0 {
		return
	}

	cfg := newConfig(opts)
	s := &sampler{src: src, width: width, height: height}

	pool := cfg.pool
	if pool == nil && cfg.parallel {
		pool = workerpool.New(cfg.workers)
		defer pool.Close()
	}
	if pool == nil {
		s.scaleBand(dst, 0, height)
		return
	}

	Logger().Debug("parallel scan",
		"width", width, "height", height, "workers", pool.NumWorkers())
	pool.ParallelFor(height, func(start, end int) {
		s.scaleBand(dst, start, end)
	})
}

// NewBuffer allocates a zero-filled destination buffer for a width x height
// source at 2x scale and returns it together with the scaled dimensions.
func NewBuffer(width, height int) ([]Pixel, int, int) {
	return make([]Pixel, Scale*width*Scale*height), Scale * width, Scale * height
}
