package bjpeg

import (
	"strings"

	"github.com/pkg/errors"
)

// maxDimension is the largest width or height SOF0's 16-bit fields can
// carry.
const maxDimension = 0xFFFF

// Encode writes a baseline sequential JFIF JPEG for the given pixel buffer
// to sink. pixels is row-major, either one byte per pixel (grayscale) or
// three (rgb=true, interleaved R,G,B). opts may be nil, which behaves like
// a zero-value *Options (see Options for defaults).
//
// Encode validates its arguments, builds the quality's quantization and
// Huffman tables fresh for this call, and drives the container format end
// to end: SOI, APP0, optional COM, DQT, SOF0, DHT,
// SOS, entropy-coded scan data, and EOI. It returns a *SinkError if sink
// ever returns a non-nil error, and panics converted to *InvariantError
// are recovered and returned as an ordinary error — neither indicates a
// problem with the caller's input.
func Encode(sink Sink, pixels []byte, width, height int, rgb bool, opts *Options) (err error) {
	if pixels == nil {
		return errors.WithStack(ErrNilPixels)
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	channels := 1
	if rgb {
		channels = 3
	}
	if len(pixels) != width*height*channels {
		return errors.Wrapf(ErrInvalidDimensions, "got %d bytes, want %d for %dx%d at %d channels", len(pixels), width*height*channels, width, height, channels)
	}
	quality := opts.quality()
	if quality < 1 || quality > 100 {
		return errors.Wrapf(ErrInvalidQuality, "got %d", quality)
	}
	comment := opts.comment()
	if strings.IndexByte(comment, 0xFF) >= 0 {
		return errors.WithStack(ErrInvalidComment)
	}
	downsample := rgb && opts.downsample() == Downsample420

	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	t := buildTables(quality)
	bw := newBitWriter(sink)

	writeSOI(bw)
	writeAPP0(bw)
	if comment != "" {
		writeCOM(bw, comment)
	}
	writeDQT(bw, t, rgb)
	writeSOF0(bw, width, height, rgb, downsample)
	writeDHT(bw, rgb)
	writeSOS(bw, rgb)

	switch {
	case !rgb:
		encodeGrayscale(bw, pixels, width, height, t)
	case downsample:
		encodeRGB420(bw, pixels, width, height, t)
	default:
		encodeRGB444(bw, pixels, width, height, t)
	}

	bw.flush()
	writeEOI(bw)

	if bw.err != nil {
		return &SinkError{Err: bw.err}
	}
	return nil
}

func writeSOI(bw *bitWriter) { bw.rawWrite([]byte{0xFF, 0xD8}) }
func writeEOI(bw *bitWriter) { bw.rawWrite([]byte{0xFF, 0xD9}) }

func writeAPP0(bw *bitWriter) {
	bw.marker(0xE0, 16)
	bw.rawWrite([]byte{'J', 'F', 'I', 'F', 0x00})
	bw.rawWrite([]byte{0x01, 0x01})             // version 1.1
	bw.rawWrite([]byte{0x00})                   // units: aspect ratio only
	bw.rawWrite([]byte{0x00, 0x01, 0x00, 0x01}) // Xdensity=1, Ydensity=1
	bw.rawWrite([]byte{0x00, 0x00})             // no thumbnail
}

func writeCOM(bw *bitWriter, comment string) {
	length := uint16(2 + len(comment))
	bw.marker(0xFE, length)
	bw.rawWrite([]byte(comment))
}

func writeDQT(bw *bitWriter, t *tables, rgb bool) {
	n := 1
	if rgb {
		n = 2
	}
	bw.marker(0xDB, uint16(2+n*65))
	bw.rawWrite([]byte{0x00})
	bw.rawWrite(t.lumaQuant[:])
	if rgb {
		bw.rawWrite([]byte{0x01})
		bw.rawWrite(t.chromaQuant[:])
	}
}

func writeSOF0(bw *bitWriter, width, height int, rgb, downsample bool) {
	nc := 1
	if rgb {
		nc = 3
	}
	bw.marker(0xC0, uint16(2+6+3*nc))
	bw.rawWrite([]byte{0x08})
	bw.rawWrite([]byte{byte(height >> 8), byte(height)})
	bw.rawWrite([]byte{byte(width >> 8), byte(width)})
	bw.rawWrite([]byte{byte(nc)})

	ySampling := byte(0x11)
	if downsample {
		ySampling = 0x22
	}
	bw.rawWrite([]byte{0x01, ySampling, 0x00})
	if rgb {
		bw.rawWrite([]byte{0x02, 0x11, 0x01})
		bw.rawWrite([]byte{0x03, 0x11, 0x01})
	}
}

// dhtEntry pairs a DHT class/id byte with the spec it encodes.
type dhtEntry struct {
	class byte
	spec  huffSpec
}

func writeDHT(bw *bitWriter, rgb bool) {
	specs := []dhtEntry{
		{0x00, theHuffmanSpec[huffLumaDC]},
		{0x10, theHuffmanSpec[huffLumaAC]},
	}
	if rgb {
		specs = append(specs,
			dhtEntry{0x01, theHuffmanSpec[huffChromaDC]},
			dhtEntry{0x11, theHuffmanSpec[huffChromaAC]},
		)
	}

	length := 2
	for _, s := range specs {
		length += 1 + 16 + len(s.spec.value)
	}
	bw.marker(0xC4, uint16(length))
	for _, s := range specs {
		bw.rawWrite([]byte{s.class})
		bw.rawWrite(s.spec.count[:])
		bw.rawWrite(s.spec.value)
	}
}

func writeSOS(bw *bitWriter, rgb bool) {
	nc := 1
	if rgb {
		nc = 3
	}
	bw.marker(0xDA, uint16(2+1+2*nc+3))
	bw.rawWrite([]byte{byte(nc)})
	bw.rawWrite([]byte{0x01, 0x00})
	if rgb {
		bw.rawWrite([]byte{0x02, 0x11})
		bw.rawWrite([]byte{0x03, 0x11})
	}
	bw.rawWrite([]byte{0x00, 0x3F, 0x00})
}
