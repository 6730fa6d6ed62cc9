// Package bjpeg implements a baseline sequential JFIF/JPEG encoder.
//
// It takes an in-memory 8-bit grayscale or interleaved RGB raster and
// produces a compliant baseline JPEG byte stream through a caller-supplied
// Sink. The encoder is a single-pass pipeline: MCU extraction, RGB→YCbCr
// conversion, an 8-point AAN forward DCT, quantization, zig-zag reordering,
// DC differential coding, AC run-length coding, and canonical Huffman
// coding with bit-level packing and byte stuffing.
//
// Progressive JPEG, arithmetic coding, restart markers, multi-scan images,
// CMYK, and decoding are out of scope.
package bjpeg
