package bjpeg

import "github.com/pkg/errors"

// huffmanTable is a dense symbol→bitCode map, keyed by the 8-bit JPEG
// symbol (a magnitude category for DC, or a run/size nibble pair for AC).
type huffmanTable [256]bitCode

// buildHuffmanTable compiles a canonical Huffman code from a
// (bits-per-length, values) specification, per JPEG's bit-length-ordered
// canonical assignment: walk lengths 1..16, assigning consecutive codes to
// each length's symbols in value order, left-shifting the running code
// after each length.
//
// It rejects any spec whose accumulated code would need more than 16 bits
// to represent, instead of silently truncating — malformed specs must
// fail loudly rather than produce a corrupt bitstream.
func buildHuffmanTable(spec huffSpec) (huffmanTable, error) {
	var t huffmanTable
	code := uint32(0)
	k := 0
	for length := 1; length <= 16; length++ {
		count := spec.count[length-1]
		for i := byte(0); i < count; i++ {
			if code >= uint32(1)<<uint(length) {
				return t, errors.Errorf("bjpeg: huffman code overflows %d bits", length)
			}
			if k >= len(spec.value) {
				return t, errors.Errorf("bjpeg: huffman spec has fewer values than its counts require")
			}
			t[spec.value[k]] = bitCode{code: uint16(code), bits: uint8(length)}
			code++
			k++
		}
		code <<= 1
	}
	return t, nil
}

// staticHuffman holds the compiled form of theHuffmanSpec, built once at
// package initialization since these four tables never vary with quality.
var staticHuffman = buildStaticHuffman()

type huffmanSet struct {
	lumaDC, lumaAC, chromaDC, chromaAC huffmanTable
}

func buildStaticHuffman() huffmanSet {
	var s huffmanSet
	var err error
	if s.lumaDC, err = buildHuffmanTable(theHuffmanSpec[huffLumaDC]); err != nil {
		panic(err)
	}
	if s.lumaAC, err = buildHuffmanTable(theHuffmanSpec[huffLumaAC]); err != nil {
		panic(err)
	}
	if s.chromaDC, err = buildHuffmanTable(theHuffmanSpec[huffChromaDC]); err != nil {
		panic(err)
	}
	if s.chromaAC, err = buildHuffmanTable(theHuffmanSpec[huffChromaAC]); err != nil {
		panic(err)
	}
	return s
}
