package xbr

// Weights applied after the Y'UV decomposition. Emphasizing luminance (Y) is
// what makes the edge detector track perceived edges; these are tuning
// constants of the algorithm and are fixed at compile time.
const (
	yWeight = 48.0
	uWeight = 7.0
	vWeight = 6.0
)

// Diff computes the weighted perceptual difference between two pixels.
//
// The absolute per-channel differences are decomposed into Y'UV, separating
// brightness from color, and the components are combined with weights that
// favor luminance. Taking abs() before the transform is intentional: it is
// not the standard RGB to YUV conversion, but it is what the xBR family of
// filters is tuned around. The result is only meaningful for relative
// comparisons.
func Diff(a, b Pixel) float32 {
	r := abs32(a.RF() - b.RF())
	g := abs32(a.GF() - b.GF())
	bl := abs32(a.BF() - b.BF())

	y := r*0.299000 + g*0.587000 + bl*0.114000
	u := r*-0.168736 + g*-0.331264 + bl*0.500000
	v := r*0.500000 + g*-0.418688 + bl*-0.081312

	return y*yWeight + u*uWeight + v*vWeight
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
