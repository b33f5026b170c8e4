package xbr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Frame container errors.
var (
	// ErrBadMagic means the stream does not start with the xBRF magic.
	ErrBadMagic = errors.New("xbr: not an xBRF frame")
	// ErrBadFrame means the header and payload disagree about the frame size.
	ErrBadFrame = errors.New("xbr: corrupt frame payload")
)

// frameMagic identifies the raw frame container.
const frameMagic = "xBRF"

// maxFrameDim bounds header dimensions so a corrupt header cannot trigger a
// huge allocation before decompression even starts.
const maxFrameDim = 1 << 16

// WriteFrame serializes img to w in the xBRF container: the 4-byte magic,
// big-endian uint32 width and height, then the row-major RGB24 payload
// compressed with zstd. The container exists so pipeline stages can hand
// packed frames around without a PNG round trip.
func WriteFrame(w io.Writer, img *Image) error {
	if _, err := io.WriteString(w, frameMagic); err != nil {
		return err
	}
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(img.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return err
	}

	payload := make([]byte, 0, len(img.Pix)*3)
	for _, px := range img.Pix {
		payload = append(payload, px.R(), px.G(), px.B())
	}
	if _, err := enc.Write(payload); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadFrame parses an xBRF container from r. See WriteFrame for the layout.
func ReadFrame(r io.Reader) (*Image, error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if string(hdr[0:4]) != frameMagic {
		return nil, ErrBadMagic
	}
	width := int(binary.BigEndian.Uint32(hdr[4:8]))
	height := int(binary.BigEndian.Uint32(hdr[8:12]))
	if width > maxFrameDim || height > maxFrameDim {
		return nil, fmt.Errorf("%w: implausible dimensions %dx%d", ErrBadFrame, width, height)
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload := make([]byte, width*height*3)
	if _, err := io.ReadFull(dec, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFrame, err)
	}

	img := NewImage(width, height)
	for i := range img.Pix {
		j := i * 3
		img.Pix[i] = Pack(payload[j], payload[j+1], payload[j+2])
	}
	return img, nil
}
