package bjpeg

import "math"

// AAN butterfly constants (5 multiplies, 29 adds per 1-D pass). Computed
// once at init instead of hand-written float literals so the derivation
// stays legible.
var (
	sqrtHalfSqrt = float32(math.Sqrt((2 + math.Sqrt2) / 2))
	invSqrt      = float32(1 / math.Sqrt2)
	halfSqrtSqrt = float32(math.Sqrt(2-math.Sqrt2) / 2)
	invSqrtSqrt  = float32(1 / math.Sqrt(2+math.Sqrt2))
)

// dct1D applies the in-place 8-point forward AAN DCT to the 8 samples of
// block starting at base, spaced stride apart (stride 1 for a row pass,
// stride 8 for a column pass). The result is the unscaled AAN transform;
// the final 1/(aan*aan*8*Q) correction is folded into the scaled dequant
// table and applied once, in the block encoder.
func dct1D(block *[blockSize]float32, base, stride int) {
	at := func(n int) int { return base + n*stride }

	b0, b1, b2, b3 := block[at(0)], block[at(1)], block[at(2)], block[at(3)]
	b4, b5, b6, b7 := block[at(4)], block[at(5)], block[at(6)], block[at(7)]

	a07, d07 := b0+b7, b0-b7
	a16, d16 := b1+b6, b1-b6
	a25, d25 := b2+b5, b2-b5
	a34, d34 := b3+b4, b3-b4

	evenSum, evenDiff := a07+a34, a07-a34
	oddSum, oddDiff := a16+a25, a16-a25

	block[at(0)] = evenSum + oddSum
	block[at(4)] = evenSum - oddSum

	z1 := (oddDiff + evenDiff) * invSqrt
	block[at(2)] = evenDiff + z1
	block[at(6)] = evenDiff - z1

	t1 := d25 + d34
	t2 := d16 + d25
	t3 := d16 + d07

	z5 := (t1 - t3) * halfSqrtSqrt
	z2 := t1*invSqrtSqrt + z5
	z3 := t2 * invSqrt
	z4 := t3*sqrtHalfSqrt + z5
	z6 := d07 + z3
	z7 := d07 - z3

	block[at(1)] = z6 + z4
	block[at(7)] = z6 - z4
	block[at(5)] = z7 + z2
	block[at(3)] = z7 - z2
}

// dct2D runs the two-pass 2-D AAN DCT on an 8x8 block in natural (row
// major) order: all 8 rows, then all 8 columns.
func dct2D(block *[blockSize]float32) {
	for row := 0; row < 8; row++ {
		dct1D(block, row*8, 1)
	}
	for col := 0; col < 8; col++ {
		dct1D(block, col, 8)
	}
}
