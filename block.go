package bjpeg

import "math"

// encodeBlock runs the forward DCT over an 8x8 block already centered on
// zero, quantizes and zig-zags it, and emits the DC difference and
// run-length-coded AC coefficients as Huffman bit codes. It returns the
// block's quantized DC value, for use as prevDC on the next block of the
// same channel.
func encodeBlock(bw *bitWriter, block *[blockSize]float32, scaled *[blockSize]float32, huffDC, huffAC *huffmanTable, prevDC int32) int32 {
	dct2D(block)

	for i := 0; i < blockSize; i++ {
		block[i] *= scaled[i]
	}

	dc := int32(math.RoundToEven(float64(block[0])))

	var quantized [blockSize]int32
	posNonZero := 0
	for i := 1; i < blockSize; i++ {
		v := int32(math.RoundToEven(float64(block[zigzag[i]])))
		quantized[i] = v
		if v != 0 {
			posNonZero = i
		}
	}

	// DC: delta against the previous block of this channel.
	diff := dc - prevDC
	if diff == 0 {
		bw.putBitCode(huffDC[0x00])
	} else {
		cw := codeword(diff)
		bw.putBitCode(huffDC[cw.bits])
		bw.putBitCode(cw)
	}

	// AC: zero runs in the high nibble, magnitude category in the low
	// nibble, ZRL (0xF0) for every full run of 16 zeros.
	i := 1
	for i <= posNonZero {
		run := int32(0)
		for quantized[i] == 0 {
			run += 0x10
			i++
			if run > 0xF0 {
				bw.putBitCode(huffAC[0xF0])
				run = 0
			}
		}
		cw := codeword(quantized[i])
		bw.putBitCode(huffAC[run|int32(cw.bits)])
		bw.putBitCode(cw)
		i++
	}
	if posNonZero < blockSize-1 {
		bw.putBitCode(huffAC[0x00])
	}

	return dc
}
