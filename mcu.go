package bjpeg

// pixelRGB reads the RGB triplet at (x, y), clamping both coordinates to
// the image bounds (border replication).
func pixelRGB(pixels []byte, width, height, x, y int) (r, g, b float32) {
	if x > width-1 {
		x = width - 1
	}
	if y > height-1 {
		y = height - 1
	}
	off := (y*width + x) * 3
	return float32(pixels[off]), float32(pixels[off+1]), float32(pixels[off+2])
}

// pixelGray reads the grayscale sample at (x, y), clamping both
// coordinates to the image bounds.
func pixelGray(pixels []byte, width, height, x, y int) float32 {
	if x > width-1 {
		x = width - 1
	}
	if y > height-1 {
		y = height - 1
	}
	return float32(pixels[y*width+x])
}

func rgbToY(r, g, b float32) float32  { return 0.299*r + 0.587*g + 0.114*b }
func rgbToCb(r, g, b float32) float32 { return -0.16874*r - 0.33126*g + 0.5*b }
func rgbToCr(r, g, b float32) float32 { return 0.5*r - 0.41869*g - 0.08131*b }

// fillGrayBlock fills an 8x8 luma block, centered on zero, from a
// grayscale pixel buffer, with border replication at top-left (ox, oy).
func fillGrayBlock(block *[blockSize]float32, pixels []byte, width, height, ox, oy int) {
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			block[dy*8+dx] = pixelGray(pixels, width, height, ox+dx, oy+dy) - 128
		}
	}
}

// fillYBlock fills an 8x8 luma block from an RGB pixel buffer, with
// border replication at top-left (ox, oy).
func fillYBlock(block *[blockSize]float32, pixels []byte, width, height, ox, oy int) {
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			r, g, b := pixelRGB(pixels, width, height, ox+dx, oy+dy)
			block[dy*8+dx] = rgbToY(r, g, b) - 128
		}
	}
}

// fillChromaBlocks444 fills 8x8 Cb and Cr blocks from an RGB pixel buffer
// at 4:4:4 (one sample per pixel), with border replication.
func fillChromaBlocks444(cb, cr *[blockSize]float32, pixels []byte, width, height, ox, oy int) {
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			r, g, b := pixelRGB(pixels, width, height, ox+dx, oy+dy)
			idx := dy*8 + dx
			cb[idx] = rgbToCb(r, g, b)
			cr[idx] = rgbToCr(r, g, b)
		}
	}
}

// fillChromaBlocks420 fills 8x8 Cb and Cr blocks by averaging 2x2 pixel
// windows across the 16x16 area at top-left (ox, oy), dividing the summed
// RGB-to-chroma conversion by 4 (equivalent to averaging RGB first, since
// the conversion is linear), with per-sample border replication.
func fillChromaBlocks420(cb, cr *[blockSize]float32, pixels []byte, width, height, ox, oy int) {
	for dy := 0; dy < 8; dy++ {
		for dx := 0; dx < 8; dx++ {
			x, y := ox+2*dx, oy+2*dy
			r0, g0, b0 := pixelRGB(pixels, width, height, x, y)
			r1, g1, b1 := pixelRGB(pixels, width, height, x+1, y)
			r2, g2, b2 := pixelRGB(pixels, width, height, x, y+1)
			r3, g3, b3 := pixelRGB(pixels, width, height, x+1, y+1)
			r := r0 + r1 + r2 + r3
			g := g0 + g1 + g2 + g3
			b := b0 + b1 + b2 + b3
			idx := dy*8 + dx
			cb[idx] = rgbToCb(r, g, b) / 4
			cr[idx] = rgbToCr(r, g, b) / 4
		}
	}
}

// yOffsets420 are the sub-block top-left offsets within a 4:2:0 16x16 MCU,
// in raster order: top-left, top-right, bottom-left, bottom-right.
var yOffsets420 = [4][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}}

// encodeGrayscale drives the 4:4:4-only grayscale MCU loop: one 8x8 Y
// block per MCU.
func encodeGrayscale(bw *bitWriter, pixels []byte, width, height int, t *tables) {
	var block [blockSize]float32
	var lastY int32
	for my := 0; my < height; my += 8 {
		for mx := 0; mx < width; mx += 8 {
			fillGrayBlock(&block, pixels, width, height, mx, my)
			lastY = encodeBlock(bw, &block, &t.scaledLuma, &t.huffLumaDC, &t.huffLumaAC, lastY)
		}
	}
}

// encodeRGB444 drives the 4:4:4 RGB MCU loop: one 8x8 Y, Cb and Cr block
// per MCU.
func encodeRGB444(bw *bitWriter, pixels []byte, width, height int, t *tables) {
	var y, cb, cr [blockSize]float32
	var lastY, lastCb, lastCr int32
	for my := 0; my < height; my += 8 {
		for mx := 0; mx < width; mx += 8 {
			fillYBlock(&y, pixels, width, height, mx, my)
			fillChromaBlocks444(&cb, &cr, pixels, width, height, mx, my)
			lastY = encodeBlock(bw, &y, &t.scaledLuma, &t.huffLumaDC, &t.huffLumaAC, lastY)
			lastCb = encodeBlock(bw, &cb, &t.scaledChroma, &t.huffChromaDC, &t.huffChromaAC, lastCb)
			lastCr = encodeBlock(bw, &cr, &t.scaledChroma, &t.huffChromaDC, &t.huffChromaAC, lastCr)
		}
	}
}

// encodeRGB420 drives the 4:2:0 RGB MCU loop: four 8x8 Y blocks (raster
// order within the 16x16 MCU) followed by one 8x8 Cb and one 8x8 Cr block,
// chroma averaged over the full 16x16 MCU area.
func encodeRGB420(bw *bitWriter, pixels []byte, width, height int, t *tables) {
	var y, cb, cr [blockSize]float32
	var lastY, lastCb, lastCr int32
	for my := 0; my < height; my += 16 {
		for mx := 0; mx < width; mx += 16 {
			for _, off := range yOffsets420 {
				fillYBlock(&y, pixels, width, height, mx+off[0], my+off[1])
				lastY = encodeBlock(bw, &y, &t.scaledLuma, &t.huffLumaDC, &t.huffLumaAC, lastY)
			}
			fillChromaBlocks420(&cb, &cr, pixels, width, height, mx, my)
			lastCb = encodeBlock(bw, &cb, &t.scaledChroma, &t.huffChromaDC, &t.huffChromaAC, lastCb)
			lastCr = encodeBlock(bw, &cr, &t.scaledChroma, &t.huffChromaDC, &t.huffChromaAC, lastCr)
		}
	}
}
