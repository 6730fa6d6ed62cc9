package bjpeg

// qualityToScale maps a user quality in [1,100] to the libjpeg scaling
// factor used to derive a quantization table from the Annex K defaults.
func qualityToScale(quality int) int {
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - 2*quality
}

// quantTable scales a default 64-entry quantization matrix (zig-zag order)
// by the given quality, clamping every entry to [1,255]. The result stays
// in zig-zag order, as required on the wire.
func quantTable(defaults [blockSize]byte, quality int) [blockSize]byte {
	scale := qualityToScale(quality)
	var q [blockSize]byte
	for i := 0; i < blockSize; i++ {
		v := (int(defaults[i])*scale + 50) / 100
		switch {
		case v < 1:
			v = 1
		case v > 255:
			v = 255
		}
		q[i] = byte(v)
	}
	return q
}

// scaledDequant fuses a zig-zag-order quantization table with the AAN
// post-scaling factors into a single natural-order float table: one
// multiply per coefficient replaces a separate AAN-scale step and a
// quantization divide in the block encoder's hot loop.
func scaledDequant(q [blockSize]byte) [blockSize]float32 {
	var s [blockSize]float32
	for i := 0; i < blockSize; i++ {
		nat := zigzag[i]
		row, col := nat/8, nat%8
		s[nat] = 1 / (aanScale[row] * aanScale[col] * 8 * float32(q[i]))
	}
	return s
}
